package handler_test

import (
	"context"
	"mime/multipart"
	"time"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Manual function-field mocks so each test wires only what it needs.

type MockAuthService struct {
	RegisterFunc      func(ctx context.Context, req *dto.RegisterRequest) (*domain.User, string, error)
	LoginFunc         func(ctx context.Context, req *dto.LoginRequest) (*domain.User, string, error)
	LogoutFunc        func(ctx context.Context, tokenString string) error
	GetUserFunc       func(ctx context.Context, userID string) (*domain.User, error)
	ValidateTokenFunc func(ctx context.Context, tokenString string) (*domain.Identity, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, string, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	panic("MockAuthService.RegisterFunc not implemented")
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*domain.User, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	panic("MockAuthService.LoginFunc not implemented")
}

func (m *MockAuthService) Logout(ctx context.Context, tokenString string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, tokenString)
	}
	panic("MockAuthService.LogoutFunc not implemented")
}

func (m *MockAuthService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, userID)
	}
	panic("MockAuthService.GetUserFunc not implemented")
}

func (m *MockAuthService) ValidateToken(ctx context.Context, tokenString string) (*domain.Identity, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, tokenString)
	}
	panic("MockAuthService.ValidateTokenFunc not implemented")
}

func (m *MockAuthService) TokenTTL() time.Duration { return time.Hour }

type MockCourseService struct {
	ListPublishedCoursesFunc  func(ctx context.Context) ([]domain.CourseWithCounts, error)
	GetCourseDetailFunc       func(ctx context.Context, id string) (*domain.CourseDetail, error)
	ListInstructorCoursesFunc func(ctx context.Context, instructorID string) ([]domain.Course, error)
	CreateCourseFunc          func(ctx context.Context, identity domain.Identity, req *dto.CreateCourseRequest) (*domain.Course, error)
	UpdateCourseFunc          func(ctx context.Context, identity domain.Identity, id string, req *dto.UpdateCourseRequest) (*domain.Course, error)
	DeleteCourseFunc          func(ctx context.Context, identity domain.Identity, id string) error
	ListLessonsFunc           func(ctx context.Context, courseID string) ([]domain.Lesson, error)
	CreateLessonFunc          func(ctx context.Context, identity domain.Identity, courseID string, req *dto.CreateLessonRequest) (*domain.Lesson, error)
	UpdateLessonFunc          func(ctx context.Context, identity domain.Identity, lessonID string, req *dto.UpdateLessonRequest) (*domain.Lesson, error)
	DeleteLessonFunc          func(ctx context.Context, identity domain.Identity, lessonID string) error
	ListReviewsFunc           func(ctx context.Context, courseID string) ([]domain.ReviewWithUser, error)
	CreateReviewFunc          func(ctx context.Context, identity domain.Identity, courseID string, req *dto.CreateReviewRequest) (*domain.Review, error)
	EnrollFunc                func(ctx context.Context, identity domain.Identity, courseID string) (*domain.Enrollment, error)
	ListUserEnrollmentsFunc   func(ctx context.Context, userID string) ([]domain.EnrollmentWithCourse, error)
	ListCourseEnrollmentsFunc func(ctx context.Context, identity domain.Identity, courseID string) ([]domain.EnrollmentWithUser, error)
	UpdateProgressFunc        func(ctx context.Context, identity domain.Identity, courseID string, progress int) (*domain.Enrollment, error)
}

func (m *MockCourseService) ListPublishedCourses(ctx context.Context) ([]domain.CourseWithCounts, error) {
	if m.ListPublishedCoursesFunc != nil {
		return m.ListPublishedCoursesFunc(ctx)
	}
	panic("MockCourseService.ListPublishedCoursesFunc not implemented")
}

func (m *MockCourseService) GetCourseDetail(ctx context.Context, id string) (*domain.CourseDetail, error) {
	if m.GetCourseDetailFunc != nil {
		return m.GetCourseDetailFunc(ctx, id)
	}
	panic("MockCourseService.GetCourseDetailFunc not implemented")
}

func (m *MockCourseService) ListInstructorCourses(ctx context.Context, instructorID string) ([]domain.Course, error) {
	if m.ListInstructorCoursesFunc != nil {
		return m.ListInstructorCoursesFunc(ctx, instructorID)
	}
	panic("MockCourseService.ListInstructorCoursesFunc not implemented")
}

func (m *MockCourseService) CreateCourse(ctx context.Context, identity domain.Identity, req *dto.CreateCourseRequest) (*domain.Course, error) {
	if m.CreateCourseFunc != nil {
		return m.CreateCourseFunc(ctx, identity, req)
	}
	panic("MockCourseService.CreateCourseFunc not implemented")
}

func (m *MockCourseService) UpdateCourse(ctx context.Context, identity domain.Identity, id string, req *dto.UpdateCourseRequest) (*domain.Course, error) {
	if m.UpdateCourseFunc != nil {
		return m.UpdateCourseFunc(ctx, identity, id, req)
	}
	panic("MockCourseService.UpdateCourseFunc not implemented")
}

func (m *MockCourseService) DeleteCourse(ctx context.Context, identity domain.Identity, id string) error {
	if m.DeleteCourseFunc != nil {
		return m.DeleteCourseFunc(ctx, identity, id)
	}
	panic("MockCourseService.DeleteCourseFunc not implemented")
}

func (m *MockCourseService) ListLessons(ctx context.Context, courseID string) ([]domain.Lesson, error) {
	if m.ListLessonsFunc != nil {
		return m.ListLessonsFunc(ctx, courseID)
	}
	panic("MockCourseService.ListLessonsFunc not implemented")
}

func (m *MockCourseService) CreateLesson(ctx context.Context, identity domain.Identity, courseID string, req *dto.CreateLessonRequest) (*domain.Lesson, error) {
	if m.CreateLessonFunc != nil {
		return m.CreateLessonFunc(ctx, identity, courseID, req)
	}
	panic("MockCourseService.CreateLessonFunc not implemented")
}

func (m *MockCourseService) UpdateLesson(ctx context.Context, identity domain.Identity, lessonID string, req *dto.UpdateLessonRequest) (*domain.Lesson, error) {
	if m.UpdateLessonFunc != nil {
		return m.UpdateLessonFunc(ctx, identity, lessonID, req)
	}
	panic("MockCourseService.UpdateLessonFunc not implemented")
}

func (m *MockCourseService) DeleteLesson(ctx context.Context, identity domain.Identity, lessonID string) error {
	if m.DeleteLessonFunc != nil {
		return m.DeleteLessonFunc(ctx, identity, lessonID)
	}
	panic("MockCourseService.DeleteLessonFunc not implemented")
}

func (m *MockCourseService) ListReviews(ctx context.Context, courseID string) ([]domain.ReviewWithUser, error) {
	if m.ListReviewsFunc != nil {
		return m.ListReviewsFunc(ctx, courseID)
	}
	panic("MockCourseService.ListReviewsFunc not implemented")
}

func (m *MockCourseService) CreateReview(ctx context.Context, identity domain.Identity, courseID string, req *dto.CreateReviewRequest) (*domain.Review, error) {
	if m.CreateReviewFunc != nil {
		return m.CreateReviewFunc(ctx, identity, courseID, req)
	}
	panic("MockCourseService.CreateReviewFunc not implemented")
}

func (m *MockCourseService) Enroll(ctx context.Context, identity domain.Identity, courseID string) (*domain.Enrollment, error) {
	if m.EnrollFunc != nil {
		return m.EnrollFunc(ctx, identity, courseID)
	}
	panic("MockCourseService.EnrollFunc not implemented")
}

func (m *MockCourseService) ListUserEnrollments(ctx context.Context, userID string) ([]domain.EnrollmentWithCourse, error) {
	if m.ListUserEnrollmentsFunc != nil {
		return m.ListUserEnrollmentsFunc(ctx, userID)
	}
	panic("MockCourseService.ListUserEnrollmentsFunc not implemented")
}

func (m *MockCourseService) ListCourseEnrollments(ctx context.Context, identity domain.Identity, courseID string) ([]domain.EnrollmentWithUser, error) {
	if m.ListCourseEnrollmentsFunc != nil {
		return m.ListCourseEnrollmentsFunc(ctx, identity, courseID)
	}
	panic("MockCourseService.ListCourseEnrollmentsFunc not implemented")
}

func (m *MockCourseService) UpdateProgress(ctx context.Context, identity domain.Identity, courseID string, progress int) (*domain.Enrollment, error) {
	if m.UpdateProgressFunc != nil {
		return m.UpdateProgressFunc(ctx, identity, courseID, progress)
	}
	panic("MockCourseService.UpdateProgressFunc not implemented")
}

type MockLiveClassService struct {
	ListLiveClassesFunc           func(ctx context.Context) ([]domain.LiveClassWithCount, error)
	GetLiveClassDetailFunc        func(ctx context.Context, id string) (*domain.LiveClassDetail, error)
	ListInstructorLiveClassesFunc func(ctx context.Context, instructorID string) ([]domain.LiveClass, error)
	CreateLiveClassFunc           func(ctx context.Context, identity domain.Identity, req *dto.CreateLiveClassRequest) (*domain.LiveClass, error)
	UpdateLiveClassFunc           func(ctx context.Context, identity domain.Identity, id string, req *dto.UpdateLiveClassRequest) (*domain.LiveClass, error)
	DeleteLiveClassFunc           func(ctx context.Context, identity domain.Identity, id string) error
	JoinFunc                      func(ctx context.Context, identity domain.Identity, id string) (*domain.LiveClassParticipant, error)
	LeaveFunc                     func(ctx context.Context, identity domain.Identity, id string) error
}

func (m *MockLiveClassService) ListLiveClasses(ctx context.Context) ([]domain.LiveClassWithCount, error) {
	if m.ListLiveClassesFunc != nil {
		return m.ListLiveClassesFunc(ctx)
	}
	panic("MockLiveClassService.ListLiveClassesFunc not implemented")
}

func (m *MockLiveClassService) GetLiveClassDetail(ctx context.Context, id string) (*domain.LiveClassDetail, error) {
	if m.GetLiveClassDetailFunc != nil {
		return m.GetLiveClassDetailFunc(ctx, id)
	}
	panic("MockLiveClassService.GetLiveClassDetailFunc not implemented")
}

func (m *MockLiveClassService) ListInstructorLiveClasses(ctx context.Context, instructorID string) ([]domain.LiveClass, error) {
	if m.ListInstructorLiveClassesFunc != nil {
		return m.ListInstructorLiveClassesFunc(ctx, instructorID)
	}
	panic("MockLiveClassService.ListInstructorLiveClassesFunc not implemented")
}

func (m *MockLiveClassService) CreateLiveClass(ctx context.Context, identity domain.Identity, req *dto.CreateLiveClassRequest) (*domain.LiveClass, error) {
	if m.CreateLiveClassFunc != nil {
		return m.CreateLiveClassFunc(ctx, identity, req)
	}
	panic("MockLiveClassService.CreateLiveClassFunc not implemented")
}

func (m *MockLiveClassService) UpdateLiveClass(ctx context.Context, identity domain.Identity, id string, req *dto.UpdateLiveClassRequest) (*domain.LiveClass, error) {
	if m.UpdateLiveClassFunc != nil {
		return m.UpdateLiveClassFunc(ctx, identity, id, req)
	}
	panic("MockLiveClassService.UpdateLiveClassFunc not implemented")
}

func (m *MockLiveClassService) DeleteLiveClass(ctx context.Context, identity domain.Identity, id string) error {
	if m.DeleteLiveClassFunc != nil {
		return m.DeleteLiveClassFunc(ctx, identity, id)
	}
	panic("MockLiveClassService.DeleteLiveClassFunc not implemented")
}

func (m *MockLiveClassService) Join(ctx context.Context, identity domain.Identity, id string) (*domain.LiveClassParticipant, error) {
	if m.JoinFunc != nil {
		return m.JoinFunc(ctx, identity, id)
	}
	panic("MockLiveClassService.JoinFunc not implemented")
}

func (m *MockLiveClassService) Leave(ctx context.Context, identity domain.Identity, id string) error {
	if m.LeaveFunc != nil {
		return m.LeaveFunc(ctx, identity, id)
	}
	panic("MockLiveClassService.LeaveFunc not implemented")
}

type MockAiService struct {
	GenerateQuizFunc               func(ctx context.Context, req *dto.GenerateQuizRequest) ([]domain.QuizQuestion, error)
	GenerateCourseStructureFunc    func(ctx context.Context, req *dto.GenerateStructureRequest) (*domain.CourseStructure, error)
	AnalyzeContentFunc             func(ctx context.Context, content string) (*domain.ContentAnalysis, error)
	GenerateSummaryFunc            func(ctx context.Context, content string) (string, error)
	DetectInappropriateContentFunc func(ctx context.Context, content string) (bool, error)
	ListContentBySourceFunc        func(ctx context.Context, sourceID, sourceType string) ([]domain.AiContent, error)
}

func (m *MockAiService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) ([]domain.QuizQuestion, error) {
	if m.GenerateQuizFunc != nil {
		return m.GenerateQuizFunc(ctx, req)
	}
	panic("MockAiService.GenerateQuizFunc not implemented")
}

func (m *MockAiService) GenerateCourseStructure(ctx context.Context, req *dto.GenerateStructureRequest) (*domain.CourseStructure, error) {
	if m.GenerateCourseStructureFunc != nil {
		return m.GenerateCourseStructureFunc(ctx, req)
	}
	panic("MockAiService.GenerateCourseStructureFunc not implemented")
}

func (m *MockAiService) AnalyzeContent(ctx context.Context, content string) (*domain.ContentAnalysis, error) {
	if m.AnalyzeContentFunc != nil {
		return m.AnalyzeContentFunc(ctx, content)
	}
	panic("MockAiService.AnalyzeContentFunc not implemented")
}

func (m *MockAiService) GenerateSummary(ctx context.Context, content string) (string, error) {
	if m.GenerateSummaryFunc != nil {
		return m.GenerateSummaryFunc(ctx, content)
	}
	panic("MockAiService.GenerateSummaryFunc not implemented")
}

func (m *MockAiService) DetectInappropriateContent(ctx context.Context, content string) (bool, error) {
	if m.DetectInappropriateContentFunc != nil {
		return m.DetectInappropriateContentFunc(ctx, content)
	}
	panic("MockAiService.DetectInappropriateContentFunc not implemented")
}

func (m *MockAiService) ListContentBySource(ctx context.Context, sourceID, sourceType string) ([]domain.AiContent, error) {
	if m.ListContentBySourceFunc != nil {
		return m.ListContentBySourceFunc(ctx, sourceID, sourceType)
	}
	panic("MockAiService.ListContentBySourceFunc not implemented")
}

type MockStatsService struct {
	GetDashboardStatsFunc func(ctx context.Context, identity *domain.Identity) (*domain.DashboardStats, error)
}

func (m *MockStatsService) GetDashboardStats(ctx context.Context, identity *domain.Identity) (*domain.DashboardStats, error) {
	if m.GetDashboardStatsFunc != nil {
		return m.GetDashboardStatsFunc(ctx, identity)
	}
	panic("MockStatsService.GetDashboardStatsFunc not implemented")
}

type MockUploadService struct {
	StoreFunc   func(fileHeader *multipart.FileHeader) (*dto.UploadResponse, error)
	ResolveFunc func(filename string) (string, error)
}

func (m *MockUploadService) Store(fileHeader *multipart.FileHeader) (*dto.UploadResponse, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(fileHeader)
	}
	panic("MockUploadService.StoreFunc not implemented")
}

func (m *MockUploadService) Resolve(filename string) (string, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(filename)
	}
	panic("MockUploadService.ResolveFunc not implemented")
}

// newTestApp builds a fiber app with the production error handler.
func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
}

// withIdentity wraps a handler so the route behaves as if RequireAuth had
// authenticated the given identity.
func withIdentity(identity *domain.Identity, h fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if identity != nil {
			c.Locals(middleware.IdentityKey, identity)
		}
		return h(c)
	}
}
