package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"edu-connect.backend/internal/domain/entities"
	domainerrors "edu-connect.backend/internal/domain/errors"
	"edu-connect.backend/internal/interfaces/http/middleware"
	"edu-connect.backend/internal/interfaces/http/response"
	"edu-connect.backend/internal/metrics"
	"edu-connect.backend/internal/usecases"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
	recorder    metrics.Recorder
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase, recorder metrics.Recorder) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		recorder:    recorder,
	}
}

// Register handles the first registration step
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, _, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrAlreadyExists {
			response.Error(c, domainerrors.BadRequest("Email or phone already registered"))
			return
		}
		response.Error(c, err)
		return
	}

	h.recorder.RecordRegistration()

	// The code itself is never returned; it is delivered out of band.
	response.Success(c, http.StatusCreated, gin.H{
		"message": "OTP sent to your phone. Please verify to complete registration.",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"phone": user.Phone,
		},
	})
}

// VerifyPhone handles the second registration step
// POST /api/auth/verify
func (h *AuthHandler) VerifyPhone(c *gin.Context) {
	var input entities.VerifyPhoneInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.VerifyPhone(c.Request.Context(), &input)
	if err != nil {
		h.recorder.RecordVerification(false)
		response.Error(c, err)
		return
	}

	h.recorder.RecordVerification(true)
	response.Success(c, http.StatusOK, authResponse)
}

// Login handles user login
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		h.recorder.RecordLogin(false)
		response.Error(c, err)
		return
	}

	h.recorder.RecordLogin(true)
	response.Success(c, http.StatusOK, authResponse)
}

// GetMe returns the authenticated user's profile
// GET /api/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	user, err := h.authUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
