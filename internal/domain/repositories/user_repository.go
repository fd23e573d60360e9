package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"edu-connect.backend/internal/domain/entities"
)

// UserRepository defines identity data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// GetByEmailOrPhone returns the first identity matching either key,
	// verified or not. Used to detect duplicates and stale reservations.
	GetByEmailOrPhone(ctx context.Context, email, phone string) (*entities.User, error)
	// Delete hard-deletes an identity. Only unverified reservations are ever
	// deleted; verified accounts are permanent in this scope.
	Delete(ctx context.Context, id uuid.UUID) error
	// VerifyPhone atomically transitions a pending identity to verified when
	// phone and otp match and the otp has not expired, clearing the code so it
	// cannot be replayed. Returns ErrInvalidOTP when no identity matched.
	VerifyPhone(ctx context.Context, phone, otp string, now time.Time) (*entities.User, error)
	// DeleteExpiredReservations removes unverified identities whose otp
	// expired before the cutoff. Returns the number of rows removed.
	DeleteExpiredReservations(ctx context.Context, cutoff time.Time) (int64, error)
}
