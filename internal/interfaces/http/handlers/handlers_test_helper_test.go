package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"edu-connect.backend/internal/domain/entities"
	domainerrors "edu-connect.backend/internal/domain/errors"
	"edu-connect.backend/internal/interfaces/http/handlers"
	"edu-connect.backend/internal/interfaces/http/middleware"
	"edu-connect.backend/internal/metrics"
	"edu-connect.backend/internal/usecases"
	"edu-connect.backend/pkg/jwt"
	"edu-connect.backend/pkg/logger"
)

func init() {
	logger.Init("development")
}

// In-memory repository stubs backing the full handler stack.

type stubUserRepo struct {
	users map[uuid.UUID]*entities.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*entities.User)}
}

func (s *stubUserRepo) Create(_ context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubUserRepo) GetByEmailOrPhone(_ context.Context, email, phone string) (*entities.User, error) {
	for _, u := range s.users {
		if u.Email == email || u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.users, id)
	return nil
}

func (s *stubUserRepo) VerifyPhone(_ context.Context, phone, otp string, now time.Time) (*entities.User, error) {
	for _, u := range s.users {
		if u.Phone == phone && !u.IsPhoneVerified && u.PhoneOTP.Valid && u.PhoneOTP.String == otp &&
			u.PhoneOTPExpires.Valid && now.Before(u.PhoneOTPExpires.Time) {
			u.IsPhoneVerified = true
			u.PhoneOTP.Valid = false
			u.PhoneOTPExpires.Valid = false
			cp := *u
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrInvalidOTP
}

func (s *stubUserRepo) DeleteExpiredReservations(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for id, u := range s.users {
		if !u.IsPhoneVerified && u.PhoneOTPExpires.Valid && u.PhoneOTPExpires.Time.Before(cutoff) {
			delete(s.users, id)
			n++
		}
	}
	return n, nil
}

func (s *stubUserRepo) byPhone(phone string) *entities.User {
	for _, u := range s.users {
		if u.Phone == phone {
			return u
		}
	}
	return nil
}

type stubCourseRepo struct {
	courses map[uuid.UUID]*entities.Course
	enrolls *stubEnrollRepo
	reviews *stubReviewRepo
}

func newStubCourseRepo(enrolls *stubEnrollRepo, reviews *stubReviewRepo) *stubCourseRepo {
	return &stubCourseRepo{
		courses: make(map[uuid.UUID]*entities.Course),
		enrolls: enrolls,
		reviews: reviews,
	}
}

func (s *stubCourseRepo) Create(_ context.Context, course *entities.Course) error {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	course.CreatedAt = time.Now()
	cp := *course
	s.courses[course.ID] = &cp
	return nil
}

func (s *stubCourseRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Course, error) {
	course, ok := s.courses[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *course
	cp.Students = s.enrolls.roster(id)
	cp.Reviews = s.reviews.byCourse(id)
	cp.AverageRating = cp.ComputeAverageRating()
	return &cp, nil
}

func (s *stubCourseRepo) ListByTeacher(_ context.Context, teacherID uuid.UUID) ([]*entities.Course, error) {
	var out []*entities.Course
	for _, c := range s.courses {
		if c.TeacherID == teacherID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *stubCourseRepo) ListPublished(_ context.Context) ([]*entities.Course, error) {
	var out []*entities.Course
	for _, c := range s.courses {
		if c.Status == entities.CourseStatusPublished {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *stubCourseRepo) ListByStudent(_ context.Context, studentID uuid.UUID) ([]*entities.Course, error) {
	var out []*entities.Course
	for _, c := range s.courses {
		for _, enrolled := range s.enrolls.roster(c.ID) {
			if enrolled == studentID {
				cp := *c
				out = append(out, &cp)
				break
			}
		}
	}
	return out, nil
}

func (s *stubCourseRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := s.courses[id]
	return ok, nil
}

type enrollKey struct {
	courseID  uuid.UUID
	studentID uuid.UUID
}

type stubEnrollRepo struct {
	pairs map[enrollKey]bool
}

func newStubEnrollRepo() *stubEnrollRepo {
	return &stubEnrollRepo{pairs: make(map[enrollKey]bool)}
}

func (s *stubEnrollRepo) Add(_ context.Context, courseID, studentID uuid.UUID) error {
	s.pairs[enrollKey{courseID, studentID}] = true
	return nil
}

func (s *stubEnrollRepo) Exists(_ context.Context, courseID, studentID uuid.UUID) (bool, error) {
	return s.pairs[enrollKey{courseID, studentID}], nil
}

func (s *stubEnrollRepo) roster(courseID uuid.UUID) []uuid.UUID {
	var out []uuid.UUID
	for k := range s.pairs {
		if k.courseID == courseID {
			out = append(out, k.studentID)
		}
	}
	return out
}

type stubReviewRepo struct {
	reviews []entities.Review
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{}
}

func (s *stubReviewRepo) Create(_ context.Context, review *entities.Review) error {
	for _, r := range s.reviews {
		if r.CourseID == review.CourseID && r.StudentID == review.StudentID {
			return domainerrors.ErrAlreadyReviewed
		}
	}
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	review.CreatedAt = time.Now()
	s.reviews = append(s.reviews, *review)
	return nil
}

func (s *stubReviewRepo) ListByCourse(_ context.Context, courseID uuid.UUID) ([]entities.Review, error) {
	return s.byCourse(courseID), nil
}

func (s *stubReviewRepo) byCourse(courseID uuid.UUID) []entities.Review {
	var out []entities.Review
	for _, r := range s.reviews {
		if r.CourseID == courseID {
			out = append(out, r)
		}
	}
	return out
}

// testServer wires the full handler stack over in-memory repositories.
type testServer struct {
	router   *gin.Engine
	jwtSvc   *jwt.JWTService
	userRepo *stubUserRepo
	enrolls  *stubEnrollRepo
	reviews  *stubReviewRepo
	courses  *stubCourseRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := newStubUserRepo()
	enrolls := newStubEnrollRepo()
	reviews := newStubReviewRepo()
	courses := newStubCourseRepo(enrolls, reviews)

	jwtSvc := jwt.NewJWTService("test-secret", 3*time.Hour)
	collector := metrics.NewCollector()

	authUC := usecases.NewAuthUsecase(userRepo, jwtSvc, time.Hour)
	courseUC := usecases.NewCourseUsecase(courses, userRepo)
	enrollUC := usecases.NewEnrollmentUsecase(courses, enrolls, reviews, userRepo)

	authHandler := handlers.NewAuthHandler(authUC, collector)
	courseHandler := handlers.NewCourseHandler(courseUC, enrollUC, collector)
	studentHandler := handlers.NewStudentHandler(courseUC, enrollUC, collector)

	r := gin.New()
	auth := middleware.AuthMiddleware(jwtSvc)

	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/verify", authHandler.VerifyPhone)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/me", auth, authHandler.GetMe)

		api.GET("/courses", auth, middleware.RequireTeacher(), courseHandler.ListOwned)
		api.POST("/courses", auth, middleware.RequireTeacher(), courseHandler.Create)
		api.GET("/courses/:id", auth, courseHandler.GetDetail)
		api.POST("/courses/:id/reviews", auth, middleware.RequireStudent(), courseHandler.AddReview)

		student := api.Group("/student", auth)
		{
			student.GET("/courses/available", studentHandler.ListAvailable)
			student.GET("/courses/enrolled", studentHandler.ListEnrolled)
			student.POST("/courses/:id/enroll", middleware.RequireStudent(), studentHandler.Enroll)
		}
	}

	return &testServer{
		router:   r,
		jwtSvc:   jwtSvc,
		userRepo: userRepo,
		enrolls:  enrolls,
		reviews:  reviews,
		courses:  courses,
	}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.AuthTokenHeader, token)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// registerVerified creates a verified account and returns its id and a token.
func (ts *testServer) registerVerified(t *testing.T, email, phone, role string) (uuid.UUID, string) {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/api/auth/register", "", registerBody(email, phone, role))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	pending := ts.userRepo.byPhone(phone)
	require.NotNil(t, pending)
	otp := pending.PhoneOTP.String

	rec = ts.do(t, http.MethodPost, "/api/auth/verify", "", gin.H{"phone": phone, "otp": otp})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID uuid.UUID `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.User.ID, resp.Token
}

func registerBody(email, phone, role string) gin.H {
	return gin.H{
		"email":         email,
		"password":      "Password123!",
		"role":          role,
		"firstName":     "Asha",
		"lastName":      "Patel",
		"age":           21,
		"location":      "Pune",
		"phone":         phone,
		"qualification": "BSc",
	}
}
