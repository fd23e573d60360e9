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

// CourseRepository implements course aggregate operations
type CourseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create persists a course with its modules and lessons in authored order
func (r *CourseRepository) Create(ctx context.Context, course *entities.Course) error {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}

	m := &models.Course{
		ID:                course.ID,
		TeacherID:         course.TeacherID,
		Name:              course.Name,
		Fee:               course.Fee,
		Description:       course.Description,
		Duration:          course.Duration,
		Level:             course.Level,
		Category:          course.Category,
		TeacherName:       course.TeacherInfo.Name,
		TeacherEmail:      course.TeacherInfo.Email,
		TeacherExperience: course.TeacherInfo.Experience,
		TeacherAbout:      course.TeacherInfo.About,
		Status:            string(course.Status),
	}
	for mi, mod := range course.Modules {
		mm := models.CourseModule{
			ID:          uuid.New(),
			CourseID:    m.ID,
			Position:    mi,
			Title:       mod.Title,
			Description: mod.Description,
		}
		for li, lesson := range mod.Lessons {
			mm.Lessons = append(mm.Lessons, models.Lesson{
				ID:          uuid.New(),
				ModuleID:    mm.ID,
				Position:    li,
				Title:       lesson.Title,
				Duration:    lesson.Duration,
				Description: lesson.Description,
			})
		}
		m.Modules = append(m.Modules, mm)
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	course.CreatedAt = m.CreatedAt
	course.UpdatedAt = m.UpdatedAt
	course.Modules = modulesToEntities(m.Modules)
	return nil
}

// GetByID returns the full course aggregate: ordered modules and lessons, the
// roster and reviews newest first
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Course, error) {
	var m models.Course
	err := r.db.WithContext(ctx).
		Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	course := courseToEntity(&m)

	var enrollments []models.Enrollment
	if err := r.db.WithContext(ctx).Where("course_id = ?", id).Find(&enrollments).Error; err != nil {
		return nil, err
	}
	for _, e := range enrollments {
		course.Students = append(course.Students, e.StudentID)
	}

	var reviews []models.Review
	if err := r.db.WithContext(ctx).Where("course_id = ?", id).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	for _, rv := range reviews {
		course.Reviews = append(course.Reviews, reviewToEntity(&rv))
	}
	course.AverageRating = course.ComputeAverageRating()

	return course, nil
}

// ListByTeacher returns courses owned by the teacher, newest created first
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*entities.Course, error) {
	var courseModels []models.Course
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&courseModels).Error
	if err != nil {
		return nil, err
	}
	return r.toSummaries(ctx, courseModels, false)
}

// ListPublished returns published courses with the owner's display name
// attached, newest created first
func (r *CourseRepository) ListPublished(ctx context.Context) ([]*entities.Course, error) {
	var courseModels []models.Course
	err := r.db.WithContext(ctx).
		Where("status = ?", string(entities.CourseStatusPublished)).
		Order("created_at DESC").
		Find(&courseModels).Error
	if err != nil {
		return nil, err
	}
	return r.toSummaries(ctx, courseModels, true)
}

// ListByStudent returns courses whose roster contains the student
func (r *CourseRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entities.Course, error) {
	var courseModels []models.Course
	err := r.db.WithContext(ctx).
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.student_id = ?", studentID).
		Order("courses.created_at DESC").
		Find(&courseModels).Error
	if err != nil {
		return nil, err
	}
	return r.toSummaries(ctx, courseModels, true)
}

// Exists reports whether a course with the given id exists
func (r *CourseRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Course{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// toSummaries maps course rows to entities with ratings attached, resolving
// owner display names in one batched lookup when requested
func (r *CourseRepository) toSummaries(ctx context.Context, courseModels []models.Course, withTeacherNames bool) ([]*entities.Course, error) {
	teacherNames := map[uuid.UUID]string{}
	if withTeacherNames && len(courseModels) > 0 {
		ids := make([]uuid.UUID, 0, len(courseModels))
		for _, m := range courseModels {
			ids = append(ids, m.TeacherID)
		}
		var teachers []models.User
		if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&teachers).Error; err != nil {
			return nil, err
		}
		for _, t := range teachers {
			teacherNames[t.ID] = strings.TrimSpace(t.FirstName + " " + t.LastName)
		}
	}

	courses := make([]*entities.Course, 0, len(courseModels))
	for i := range courseModels {
		course := courseToEntity(&courseModels[i])
		course.TeacherName = teacherNames[course.TeacherID]

		var reviews []models.Review
		if err := r.db.WithContext(ctx).Where("course_id = ?", course.ID).Order("created_at DESC").Find(&reviews).Error; err != nil {
			return nil, err
		}
		for _, rv := range reviews {
			course.Reviews = append(course.Reviews, reviewToEntity(&rv))
		}
		course.AverageRating = course.ComputeAverageRating()
		courses = append(courses, course)
	}
	return courses, nil
}

func courseToEntity(m *models.Course) *entities.Course {
	return &entities.Course{
		ID:          m.ID,
		TeacherID:   m.TeacherID,
		Name:        m.Name,
		Fee:         m.Fee,
		Description: m.Description,
		Duration:    m.Duration,
		Level:       m.Level,
		Category:    m.Category,
		TeacherInfo: entities.TeacherInfo{
			Name:       m.TeacherName,
			Email:      m.TeacherEmail,
			Experience: m.TeacherExperience,
			About:      m.TeacherAbout,
		},
		Status:    entities.CourseStatus(m.Status),
		Modules:   modulesToEntities(m.Modules),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func modulesToEntities(moduleModels []models.CourseModule) []entities.CourseModule {
	var mods []entities.CourseModule
	for _, mm := range moduleModels {
		mod := entities.CourseModule{
			ID:          mm.ID,
			Title:       mm.Title,
			Description: mm.Description,
		}
		for _, lm := range mm.Lessons {
			mod.Lessons = append(mod.Lessons, entities.Lesson{
				ID:          lm.ID,
				Title:       lm.Title,
				Duration:    lm.Duration,
				Description: lm.Description,
			})
		}
		mods = append(mods, mod)
	}
	return mods
}

func reviewToEntity(m *models.Review) entities.Review {
	return entities.Review{
		ID:           m.ID,
		CourseID:     m.CourseID,
		StudentID:    m.StudentID,
		Rating:       m.Rating,
		Comment:      m.Comment,
		ReviewerName: m.ReviewerName,
		CreatedAt:    m.CreatedAt,
	}
}
