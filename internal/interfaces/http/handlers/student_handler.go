package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "edu-connect.backend/internal/domain/errors"
	"edu-connect.backend/internal/interfaces/http/middleware"
	"edu-connect.backend/internal/interfaces/http/response"
	"edu-connect.backend/internal/metrics"
	"edu-connect.backend/internal/usecases"
)

// StudentHandler handles student-facing catalog and enrollment endpoints
type StudentHandler struct {
	courseUsecase *usecases.CourseUsecase
	enrollUsecase *usecases.EnrollmentUsecase
	recorder      metrics.Recorder
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(courseUsecase *usecases.CourseUsecase, enrollUsecase *usecases.EnrollmentUsecase, recorder metrics.Recorder) *StudentHandler {
	return &StudentHandler{
		courseUsecase: courseUsecase,
		enrollUsecase: enrollUsecase,
		recorder:      recorder,
	}
}

// ListAvailable returns the published course catalog
// GET /api/student/courses/available
func (h *StudentHandler) ListAvailable(c *gin.Context) {
	courses, err := h.courseUsecase.ListPublished(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, courses)
}

// ListEnrolled returns the courses the authenticated student is enrolled in
// GET /api/student/courses/enrolled
func (h *StudentHandler) ListEnrolled(c *gin.Context) {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	courses, err := h.courseUsecase.ListEnrolled(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, courses)
}

// Enroll adds the authenticated student to a course roster
// POST /api/student/courses/:id/enroll
func (h *StudentHandler) Enroll(c *gin.Context) {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid course id"))
		return
	}

	if err := h.enrollUsecase.Enroll(c.Request.Context(), courseID, studentID); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Course not found"))
			return
		}
		response.Error(c, err)
		return
	}

	h.recorder.RecordEnrollment()
	response.Success(c, http.StatusOK, gin.H{
		"message": "Enrolled successfully",
	})
}
