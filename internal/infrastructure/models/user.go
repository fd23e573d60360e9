package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email           string     `gorm:"type:varchar(255);not null;index"`
	Phone           string     `gorm:"type:varchar(32);not null;index"`
	PasswordHash    string     `gorm:"type:varchar(255);not null"`
	Role            string     `gorm:"type:varchar(20);not null"`
	FirstName       string     `gorm:"type:varchar(100);not null"`
	LastName        string     `gorm:"type:varchar(100);not null"`
	Age             int        `gorm:"not null"`
	Location        string     `gorm:"type:varchar(255);not null"`
	Qualification   string     `gorm:"type:varchar(255);not null"`
	PhoneOTP        *string    `gorm:"type:varchar(8)"`
	PhoneOTPExpires *time.Time `gorm:"type:timestamp"`
	IsPhoneVerified bool       `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
