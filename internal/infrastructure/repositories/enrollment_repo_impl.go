package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"edu-connect.backend/internal/infrastructure/models"
)

// EnrollmentRepository implements roster operations on the authoritative
// enrollment relation
type EnrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Add inserts the (course, student) pair. The conflict target is the unique
// pair index, so re-enrolling is a no-op rather than an error.
func (r *EnrollmentRepository) Add(ctx context.Context, courseID, studentID uuid.UUID) error {
	m := &models.Enrollment{
		ID:        uuid.New(),
		CourseID:  courseID,
		StudentID: studentID,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "course_id"}, {Name: "student_id"}},
			DoNothing: true,
		}).
		Create(m).Error
}

// Exists reports whether the student is on the course roster
func (r *EnrollmentRepository) Exists(ctx context.Context, courseID, studentID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
