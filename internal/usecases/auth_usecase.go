package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"edu-connect.backend/internal/domain/entities"
	domainerrors "edu-connect.backend/internal/domain/errors"
	"edu-connect.backend/internal/domain/repositories"
	"edu-connect.backend/pkg/crypto"
	"edu-connect.backend/pkg/jwt"
	"edu-connect.backend/pkg/logger"
)

// AuthUsecase handles the two-step registration flow and login
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
	otpTTL     time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService, otpTTL time.Duration) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
		otpTTL:     otpTTL,
	}
}

// Register reserves an identity and issues a one-time phone code. The
// reservation is not an account yet: it cannot log in until the phone is
// verified, and a later registration for the same email or phone may evict it.
// Returns the pending user and the plaintext code.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, string, error) {
	role := entities.UserRole(input.Role)
	if !role.Valid() {
		return nil, "", domainerrors.ErrInvalidInput
	}

	// Email ownership is case-insensitive: addresses are stored and looked up
	// lowercased.
	email := strings.ToLower(input.Email)

	// A verified account owns its email and phone permanently. An unverified
	// reservation only holds them until someone registers over it.
	existing, err := u.userRepo.GetByEmailOrPhone(ctx, email, input.Phone)
	if err == nil {
		if existing.IsPhoneVerified {
			return nil, "", domainerrors.ErrAlreadyExists
		}
		if err := u.userRepo.Delete(ctx, existing.ID); err != nil {
			return nil, "", err
		}
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, "", err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	otp, err := crypto.GenerateOTP()
	if err != nil {
		return nil, "", err
	}

	user := &entities.User{
		Email:           email,
		Phone:           input.Phone,
		PasswordHash:    passwordHash,
		Role:            role,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Age:             input.Age,
		Location:        input.Location,
		Qualification:   input.Qualification,
		PhoneOTP:        null.StringFrom(otp),
		PhoneOTPExpires: null.TimeFrom(time.Now().Add(u.otpTTL)),
		IsPhoneVerified: false,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	// No SMS provider is wired; the code is delivered via the server log.
	logger.Info(ctx, "Phone verification code issued",
		zap.String("phone", user.Phone),
		zap.String("otp", otp),
	)

	return user, otp, nil
}

// VerifyPhone completes registration. On a matching, unexpired code the
// identity becomes a verified account exactly once and a session token is
// issued. The code is consumed on success so it cannot be replayed.
func (u *AuthUsecase) VerifyPhone(ctx context.Context, input *entities.VerifyPhoneInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.VerifyPhone(ctx, input.Phone, input.OTP, time.Now())
	if err != nil {
		return nil, err
	}

	token, err := u.jwtService.GenerateSessionToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}

// Login authenticates a verified account and returns a session token
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(input.Email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			// An unknown email is reported the same way as a wrong password.
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	// A pending reservation holds a password hash but is not yet an account.
	if !user.IsPhoneVerified {
		return nil, domainerrors.ErrPhoneNotVerified
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateSessionToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
