package service

import (
	"context"
	"time"

	"learnhub/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockCourseRepository ---
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) ListPublishedWithCounts(ctx context.Context) ([]domain.CourseWithCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CourseWithCounts), args.Error(1)
}

func (m *MockCourseRepository) GetDetail(ctx context.Context, id string) (*domain.CourseDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CourseDetail), args.Error(1)
}

func (m *MockCourseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockCourseRepository) ListByInstructor(ctx context.Context, instructorID string) ([]domain.Course, error) {
	args := m.Called(ctx, instructorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *MockCourseRepository) Create(ctx context.Context, course *domain.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) Update(ctx context.Context, course *domain.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockLessonRepository ---
type MockLessonRepository struct {
	mock.Mock
}

func (m *MockLessonRepository) ListByCourse(ctx context.Context, courseID string) ([]domain.Lesson, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lesson), args.Error(1)
}

func (m *MockLessonRepository) GetByID(ctx context.Context, id string) (*domain.Lesson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lesson), args.Error(1)
}

func (m *MockLessonRepository) Create(ctx context.Context, lesson *domain.Lesson) error {
	args := m.Called(ctx, lesson)
	return args.Error(0)
}

func (m *MockLessonRepository) Update(ctx context.Context, lesson *domain.Lesson) error {
	args := m.Called(ctx, lesson)
	return args.Error(0)
}

func (m *MockLessonRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockEnrollmentRepository ---
type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) ListByUser(ctx context.Context, userID string) ([]domain.EnrollmentWithCourse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EnrollmentWithCourse), args.Error(1)
}

func (m *MockEnrollmentRepository) ListByCourse(ctx context.Context, courseID string) ([]domain.EnrollmentWithUser, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EnrollmentWithUser), args.Error(1)
}

func (m *MockEnrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	args := m.Called(ctx, enrollment)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) UpdateProgress(ctx context.Context, userID, courseID string, progress int) (*domain.Enrollment, error) {
	args := m.Called(ctx, userID, courseID, progress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}

// --- MockReviewRepository ---
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) ListByCourse(ctx context.Context, courseID string) ([]domain.ReviewWithUser, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReviewWithUser), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

// --- MockLiveClassRepository ---
type MockLiveClassRepository struct {
	mock.Mock
}

func (m *MockLiveClassRepository) ListWithCounts(ctx context.Context) ([]domain.LiveClassWithCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LiveClassWithCount), args.Error(1)
}

func (m *MockLiveClassRepository) GetDetail(ctx context.Context, id string) (*domain.LiveClassDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LiveClassDetail), args.Error(1)
}

func (m *MockLiveClassRepository) GetByID(ctx context.Context, id string) (*domain.LiveClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LiveClass), args.Error(1)
}

func (m *MockLiveClassRepository) ListByInstructor(ctx context.Context, instructorID string) ([]domain.LiveClass, error) {
	args := m.Called(ctx, instructorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LiveClass), args.Error(1)
}

func (m *MockLiveClassRepository) Create(ctx context.Context, class *domain.LiveClass) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

func (m *MockLiveClassRepository) Update(ctx context.Context, class *domain.LiveClass) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

func (m *MockLiveClassRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockLiveClassRepository) AddParticipant(ctx context.Context, participant *domain.LiveClassParticipant) error {
	args := m.Called(ctx, participant)
	return args.Error(0)
}

func (m *MockLiveClassRepository) RemoveParticipant(ctx context.Context, liveClassID, userID string) (bool, error) {
	args := m.Called(ctx, liveClassID, userID)
	return args.Bool(0), args.Error(1)
}

// --- MockContentGenerator ---
type MockContentGenerator struct {
	mock.Mock
}

func (m *MockContentGenerator) GenerateQuiz(ctx context.Context, topic string, level domain.Level) ([]domain.QuizQuestion, error) {
	args := m.Called(ctx, topic, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizQuestion), args.Error(1)
}

func (m *MockContentGenerator) GenerateCourseStructure(ctx context.Context, title, category string, level domain.Level) (*domain.CourseStructure, error) {
	args := m.Called(ctx, title, category, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CourseStructure), args.Error(1)
}

func (m *MockContentGenerator) AnalyzeContent(ctx context.Context, content string) (*domain.ContentAnalysis, error) {
	args := m.Called(ctx, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentAnalysis), args.Error(1)
}

func (m *MockContentGenerator) GenerateSummary(ctx context.Context, content string) (string, error) {
	args := m.Called(ctx, content)
	return args.String(0), args.Error(1)
}

func (m *MockContentGenerator) DetectInappropriateContent(ctx context.Context, content string) (bool, error) {
	args := m.Called(ctx, content)
	return args.Bool(0), args.Error(1)
}

// --- MockAiContentRepository ---
type MockAiContentRepository struct {
	mock.Mock
}

func (m *MockAiContentRepository) Create(ctx context.Context, content *domain.AiContent) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func (m *MockAiContentRepository) ListBySource(ctx context.Context, sourceID, sourceType string) ([]domain.AiContent, error) {
	args := m.Called(ctx, sourceID, sourceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AiContent), args.Error(1)
}

// --- MockStatsRepository ---
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) CountCourses(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) CountLiveClasses(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) CountCoursesByInstructor(ctx context.Context, instructorID string) (int, error) {
	args := m.Called(ctx, instructorID)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) CountEnrollmentsByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}
