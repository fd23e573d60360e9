package entities

import (
	"time"

	"github.com/google/uuid"
)

// CourseStatus represents the publication state of a course
type CourseStatus string

const (
	CourseStatusDraft     CourseStatus = "Draft"
	CourseStatusPublished CourseStatus = "Published"
)

// TeacherInfo is a snapshot of teacher details captured at course creation
type TeacherInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Experience string `json:"experience"`
	About      string `json:"about"`
}

// Lesson is a single lesson inside a module, kept in authored order
type Lesson struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
}

// CourseModule groups an ordered list of lessons
type CourseModule struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Lessons     []Lesson  `json:"lessons"`
}

// Review belongs to exactly one course and one student. ReviewerName is a
// snapshot of the student's display name at creation time and is not kept in
// sync with later name changes.
type Review struct {
	ID           uuid.UUID `json:"id"`
	CourseID     uuid.UUID `json:"courseId"`
	StudentID    uuid.UUID `json:"studentId"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	ReviewerName string    `json:"reviewerName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Course is owned by exactly one teacher. The roster and review list are
// append-only; enrollment membership has set semantics.
type Course struct {
	ID            uuid.UUID      `json:"id"`
	TeacherID     uuid.UUID      `json:"teacherId"`
	TeacherName   string         `json:"teacherName,omitempty"`
	Name          string         `json:"name"`
	Fee           int            `json:"fee"`
	Description   string         `json:"description"`
	Duration      string         `json:"duration"`
	Level         string         `json:"level"`
	Category      string         `json:"category"`
	TeacherInfo   TeacherInfo    `json:"teacherInfo"`
	Status        CourseStatus   `json:"status"`
	Modules       []CourseModule `json:"modules"`
	Students      []uuid.UUID    `json:"students,omitempty"`
	Reviews       []Review       `json:"reviews,omitempty"`
	AverageRating float64        `json:"averageRating"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// ComputeAverageRating returns the arithmetic mean of all review ratings,
// 0 if there are no reviews. It is derived on read, never stored.
func (c *Course) ComputeAverageRating() float64 {
	if len(c.Reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range c.Reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(c.Reviews))
}

// LessonInput is a lesson in a course creation payload
type LessonInput struct {
	Title       string `json:"title" binding:"required"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// ModuleInput is a module in a course creation payload
type ModuleInput struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	Lessons     []LessonInput `json:"lessons" binding:"dive"`
}

// TeacherInfoInput is the teacher snapshot in a course creation payload
type TeacherInfoInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Experience string `json:"experience"`
	About      string `json:"about"`
}

// CreateCourseInput represents input for creating a course
type CreateCourseInput struct {
	Name        string           `json:"courseName" binding:"required"`
	Fee         int              `json:"courseFee"`
	Description string           `json:"courseDescription" binding:"required"`
	Duration    string           `json:"duration"`
	Level       string           `json:"level"`
	Category    string           `json:"category"`
	TeacherInfo TeacherInfoInput `json:"teacherInfo"`
	Modules     []ModuleInput    `json:"modules" binding:"dive"`
}

// AddReviewInput represents input for reviewing a course
type AddReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
