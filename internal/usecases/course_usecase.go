package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"edu-connect.backend/internal/domain/entities"
	"edu-connect.backend/internal/domain/repositories"
)

// CourseUsecase handles course catalog business logic
type CourseUsecase struct {
	courseRepo repositories.CourseRepository
	userRepo   repositories.UserRepository
}

// NewCourseUsecase creates a new course usecase
func NewCourseUsecase(courseRepo repositories.CourseRepository, userRepo repositories.UserRepository) *CourseUsecase {
	return &CourseUsecase{
		courseRepo: courseRepo,
		userRepo:   userRepo,
	}
}

// Create creates a course owned by the teacher. The teacher snapshot in the
// payload wins; blank snapshot fields fall back to the owner's profile.
func (u *CourseUsecase) Create(ctx context.Context, teacherID uuid.UUID, input *entities.CreateCourseInput) (*entities.Course, error) {
	teacher, err := u.userRepo.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	info := entities.TeacherInfo{
		Name:       input.TeacherInfo.Name,
		Email:      input.TeacherInfo.Email,
		Experience: input.TeacherInfo.Experience,
		About:      input.TeacherInfo.About,
	}
	if strings.TrimSpace(info.Name) == "" {
		info.Name = displayName(teacher)
	}
	if strings.TrimSpace(info.Email) == "" {
		info.Email = teacher.Email
	}

	course := &entities.Course{
		TeacherID:   teacherID,
		Name:        input.Name,
		Fee:         input.Fee,
		Description: input.Description,
		Duration:    input.Duration,
		Level:       input.Level,
		Category:    input.Category,
		TeacherInfo: info,
		Status:      entities.CourseStatusPublished,
		Modules:     modulesFromInput(input.Modules),
	}

	if err := u.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// ListOwned returns the courses owned by the teacher, newest first
func (u *CourseUsecase) ListOwned(ctx context.Context, teacherID uuid.UUID) ([]*entities.Course, error) {
	return u.courseRepo.ListByTeacher(ctx, teacherID)
}

// ListPublished returns the published catalog visible to students
func (u *CourseUsecase) ListPublished(ctx context.Context) ([]*entities.Course, error) {
	return u.courseRepo.ListPublished(ctx)
}

// ListEnrolled returns the courses the student is enrolled in
func (u *CourseUsecase) ListEnrolled(ctx context.Context, studentID uuid.UUID) ([]*entities.Course, error) {
	return u.courseRepo.ListByStudent(ctx, studentID)
}

// GetDetail returns the full course with roster, reviews and derived rating
func (u *CourseUsecase) GetDetail(ctx context.Context, id uuid.UUID) (*entities.Course, error) {
	return u.courseRepo.GetByID(ctx, id)
}

func modulesFromInput(inputs []entities.ModuleInput) []entities.CourseModule {
	modules := make([]entities.CourseModule, 0, len(inputs))
	for _, m := range inputs {
		lessons := make([]entities.Lesson, 0, len(m.Lessons))
		for _, l := range m.Lessons {
			lessons = append(lessons, entities.Lesson{
				Title:       l.Title,
				Duration:    l.Duration,
				Description: l.Description,
			})
		}
		modules = append(modules, entities.CourseModule{
			Title:       m.Title,
			Description: m.Description,
			Lessons:     lessons,
		})
	}
	return modules
}

func displayName(u *entities.User) string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
