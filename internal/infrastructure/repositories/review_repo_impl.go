package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"edu-connect.backend/internal/domain/entities"
	domainerrors "edu-connect.backend/internal/domain/errors"
	"edu-connect.backend/internal/infrastructure/models"
)

// ReviewRepository implements review operations
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a review. The unique (course, student) index enforces one
// review per student per course; a constraint violation surfaces as
// ErrAlreadyReviewed.
func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	m := &models.Review{
		ID:           review.ID,
		CourseID:     review.CourseID,
		StudentID:    review.StudentID,
		Rating:       review.Rating,
		Comment:      review.Comment,
		ReviewerName: review.ReviewerName,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKeyError(err) {
			return domainerrors.ErrAlreadyReviewed
		}
		return err
	}
	review.CreatedAt = m.CreatedAt
	return nil
}

// ListByCourse returns reviews for a course, newest first
func (r *ReviewRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]entities.Review, error) {
	var reviewModels []models.Review
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]entities.Review, 0, len(reviewModels))
	for i := range reviewModels {
		reviews = append(reviews, reviewToEntity(&reviewModels[i]))
	}
	return reviews, nil
}

func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Driver-specific messages: sqlite "UNIQUE constraint failed",
	// postgres "duplicate key value violates unique constraint"
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
