package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CourseID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_course_student"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_course_student"`
	Rating       int       `gorm:"not null"`
	Comment      string    `gorm:"type:text"`
	ReviewerName string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}
