package usecases

import (
	"context"

	"github.com/google/uuid"
	"edu-connect.backend/internal/domain/entities"
	domainerrors "edu-connect.backend/internal/domain/errors"
	"edu-connect.backend/internal/domain/repositories"
)

// EnrollmentUsecase handles enrollment and review business logic
type EnrollmentUsecase struct {
	courseRepo repositories.CourseRepository
	enrollRepo repositories.EnrollmentRepository
	reviewRepo repositories.ReviewRepository
	userRepo   repositories.UserRepository
}

// NewEnrollmentUsecase creates a new enrollment usecase
func NewEnrollmentUsecase(
	courseRepo repositories.CourseRepository,
	enrollRepo repositories.EnrollmentRepository,
	reviewRepo repositories.ReviewRepository,
	userRepo repositories.UserRepository,
) *EnrollmentUsecase {
	return &EnrollmentUsecase{
		courseRepo: courseRepo,
		enrollRepo: enrollRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

// Enroll adds the student to the course roster. Enrolling twice is a no-op,
// so the roster keeps set semantics under concurrent requests.
func (u *EnrollmentUsecase) Enroll(ctx context.Context, courseID, studentID uuid.UUID) error {
	exists, err := u.courseRepo.Exists(ctx, courseID)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.ErrNotFound
	}
	return u.enrollRepo.Add(ctx, courseID, studentID)
}

// AddReview records a review by an enrolled student. The reviewer name is
// snapshotted from the student's current profile. A student reviews a course
// at most once; a second attempt fails with ErrAlreadyReviewed.
func (u *EnrollmentUsecase) AddReview(ctx context.Context, courseID, studentID uuid.UUID, input *entities.AddReviewInput) (*entities.Review, error) {
	exists, err := u.courseRepo.Exists(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domainerrors.ErrNotFound
	}

	enrolled, err := u.enrollRepo.Exists(ctx, courseID, studentID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, domainerrors.ErrNotEnrolled
	}

	student, err := u.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	review := &entities.Review{
		CourseID:     courseID,
		StudentID:    studentID,
		Rating:       input.Rating,
		Comment:      input.Comment,
		ReviewerName: displayName(student),
	}
	if err := u.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
