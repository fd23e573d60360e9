package repositories

import (
	"context"

	"github.com/google/uuid"
	"edu-connect.backend/internal/domain/entities"
)

// CourseRepository defines course aggregate operations
type CourseRepository interface {
	// Create persists a course with its modules and lessons in authored order.
	Create(ctx context.Context, course *entities.Course) error
	// GetByID returns the full course: ordered modules/lessons, roster and
	// reviews (newest first). Returns ErrNotFound if no such course.
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Course, error)
	// ListByTeacher returns courses owned by the teacher, newest created first.
	ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*entities.Course, error)
	// ListPublished returns published courses with the owner's display name
	// resolved, newest created first.
	ListPublished(ctx context.Context) ([]*entities.Course, error)
	// ListByStudent returns courses whose roster contains the student.
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entities.Course, error)
	// Exists reports whether a course with the given id exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// EnrollmentRepository defines roster operations. Enrollment is stored as a
// single authoritative relation; the student's enrolled-set is derived from
// it on read, so there is no mirrored dual write to diverge.
type EnrollmentRepository interface {
	// Add inserts the (course, student) pair. Re-enrolling is a no-op.
	Add(ctx context.Context, courseID, studentID uuid.UUID) error
	// Exists reports whether the student is on the course roster.
	Exists(ctx context.Context, courseID, studentID uuid.UUID) (bool, error)
}

// ReviewRepository defines review operations
type ReviewRepository interface {
	// Create inserts a review. Returns ErrAlreadyReviewed when the student has
	// already reviewed the course.
	Create(ctx context.Context, review *entities.Review) error
	// ListByCourse returns reviews for a course, newest first.
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]entities.Review, error)
}
