package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"edu-connect.backend/internal/domain/entities"
	domainerrors "edu-connect.backend/internal/domain/errors"
	"edu-connect.backend/internal/infrastructure/models"
)

// UserRepository implements identity data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new identity record
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m := &models.User{
		ID:              user.ID,
		Email:           user.Email,
		Phone:           user.Phone,
		PasswordHash:    user.PasswordHash,
		Role:            string(user.Role),
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Age:             user.Age,
		Location:        user.Location,
		Qualification:   user.Qualification,
		PhoneOTP:        user.PhoneOTP.Ptr(),
		PhoneOTPExpires: user.PhoneOTPExpires.Ptr(),
		IsPhoneVerified: user.IsPhoneVerified,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an identity by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets an identity by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmailOrPhone gets an identity matching either key, verified or not
func (r *UserRepository) GetByEmailOrPhone(ctx context.Context, email, phone string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ? OR phone = ?", email, phone).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// Delete hard-deletes an identity. Used to evict superseded reservations.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// VerifyPhone performs the pending -> verified transition as a single
// conditional update so that concurrent attempts race at the storage layer and
// only one wins. The cleared code makes a replay fail the match.
func (r *UserRepository) VerifyPhone(ctx context.Context, phone, otp string, now time.Time) (*entities.User, error) {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("phone = ? AND phone_otp = ? AND phone_otp_expires > ? AND is_phone_verified = ?", phone, otp, now, false).
		Updates(map[string]interface{}{
			"is_phone_verified": true,
			"phone_otp":         nil,
			"phone_otp_expires": nil,
			"updated_at":        now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrInvalidOTP
	}

	var m models.User
	if err := r.db.WithContext(ctx).Where("phone = ? AND is_phone_verified = ?", phone, true).First(&m).Error; err != nil {
		return nil, err
	}
	return userToEntity(&m), nil
}

// DeleteExpiredReservations removes unverified identities whose otp expired
// before the cutoff
func (r *UserRepository) DeleteExpiredReservations(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("is_phone_verified = ? AND phone_otp_expires <= ?", false, cutoff).
		Delete(&models.User{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:              m.ID,
		Email:           m.Email,
		Phone:           m.Phone,
		PasswordHash:    m.PasswordHash,
		Role:            entities.UserRole(m.Role),
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Age:             m.Age,
		Location:        m.Location,
		Qualification:   m.Qualification,
		PhoneOTP:        null.StringFromPtr(m.PhoneOTP),
		PhoneOTPExpires: null.TimeFromPtr(m.PhoneOTPExpires),
		IsPhoneVerified: m.IsPhoneVerified,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
