package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleTeacher UserRole = "teacher"
)

// Valid reports whether the role is one of the known roles
func (r UserRole) Valid() bool {
	return r == UserRoleStudent || r == UserRoleTeacher
}

// User represents an identity. Until the phone is verified the record is a
// reservation: it may be evicted by a new registration attempt for the same
// email or phone, and it cannot log in.
type User struct {
	ID              uuid.UUID   `json:"id"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	PasswordHash    string      `json:"-"`
	Role            UserRole    `json:"role"`
	FirstName       string      `json:"firstName"`
	LastName        string      `json:"lastName"`
	Age             int         `json:"age"`
	Location        string      `json:"location"`
	Qualification   string      `json:"qualification"`
	PhoneOTP        null.String `json:"-"`
	PhoneOTPExpires null.Time   `json:"-"`
	IsPhoneVerified bool        `json:"isPhoneVerified"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// RegisterInput represents input for the first registration step
type RegisterInput struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	Role          string `json:"role" binding:"required,oneof=student teacher"`
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Age           int    `json:"age" binding:"required,gt=0"`
	Location      string `json:"location" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Qualification string `json:"qualification" binding:"required"`
}

// VerifyPhoneInput represents input for the second registration step
type VerifyPhoneInput struct {
	Phone string `json:"phone" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// PublicUser is the minimal profile returned alongside a session token
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	FirstName string    `json:"firstName"`
}

// Public returns the minimal public profile of the user
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
	}
}

// AuthResponse represents a successful login or verification response
type AuthResponse struct {
	Token string      `json:"token"`
	User  *PublicUser `json:"user"`
}
