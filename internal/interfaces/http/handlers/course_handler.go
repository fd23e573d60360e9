package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"edu-connect.backend/internal/domain/entities"
	domainerrors "edu-connect.backend/internal/domain/errors"
	"edu-connect.backend/internal/interfaces/http/middleware"
	"edu-connect.backend/internal/interfaces/http/response"
	"edu-connect.backend/internal/metrics"
	"edu-connect.backend/internal/usecases"
)

// CourseHandler handles teacher-facing course endpoints and course detail
type CourseHandler struct {
	courseUsecase *usecases.CourseUsecase
	enrollUsecase *usecases.EnrollmentUsecase
	recorder      metrics.Recorder
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(courseUsecase *usecases.CourseUsecase, enrollUsecase *usecases.EnrollmentUsecase, recorder metrics.Recorder) *CourseHandler {
	return &CourseHandler{
		courseUsecase: courseUsecase,
		enrollUsecase: enrollUsecase,
		recorder:      recorder,
	}
}

// ListOwned returns the courses owned by the authenticated teacher
// GET /api/courses
func (h *CourseHandler) ListOwned(c *gin.Context) {
	teacherID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	courses, err := h.courseUsecase.ListOwned(c.Request.Context(), teacherID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, courses)
}

// Create creates a course owned by the authenticated teacher
// POST /api/courses
func (h *CourseHandler) Create(c *gin.Context) {
	teacherID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.CreateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	course, err := h.courseUsecase.Create(c.Request.Context(), teacherID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, course)
}

// GetDetail returns the full course with roster, reviews and rating
// GET /api/courses/:id
func (h *CourseHandler) GetDetail(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid course id"))
		return
	}

	course, err := h.courseUsecase.GetDetail(c.Request.Context(), courseID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Course not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, course)
}

// AddReview records a review by an enrolled student
// POST /api/courses/:id/reviews
func (h *CourseHandler) AddReview(c *gin.Context) {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid course id"))
		return
	}

	var input entities.AddReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	review, err := h.enrollUsecase.AddReview(c.Request.Context(), courseID, studentID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recorder.RecordReview()
	response.Success(c, http.StatusOK, review)
}
