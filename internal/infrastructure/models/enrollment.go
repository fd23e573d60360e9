package models

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment is the single authoritative relation between students and
// courses. The unique pair index gives the roster set semantics.
type Enrollment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_course_student"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_course_student"`
	CreatedAt time.Time
}
