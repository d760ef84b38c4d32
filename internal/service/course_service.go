package service

import (
	"context"
	"errors"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/logger"

	"go.uber.org/zap"
)

// CourseService defines the interface for course, lesson, review and
// enrollment operations.
type CourseService interface {
	ListPublishedCourses(ctx context.Context) ([]domain.CourseWithCounts, error)
	GetCourseDetail(ctx context.Context, id string) (*domain.CourseDetail, error)
	ListInstructorCourses(ctx context.Context, instructorID string) ([]domain.Course, error)
	CreateCourse(ctx context.Context, identity domain.Identity, req *dto.CreateCourseRequest) (*domain.Course, error)
	UpdateCourse(ctx context.Context, identity domain.Identity, id string, req *dto.UpdateCourseRequest) (*domain.Course, error)
	DeleteCourse(ctx context.Context, identity domain.Identity, id string) error

	ListLessons(ctx context.Context, courseID string) ([]domain.Lesson, error)
	CreateLesson(ctx context.Context, identity domain.Identity, courseID string, req *dto.CreateLessonRequest) (*domain.Lesson, error)
	UpdateLesson(ctx context.Context, identity domain.Identity, lessonID string, req *dto.UpdateLessonRequest) (*domain.Lesson, error)
	DeleteLesson(ctx context.Context, identity domain.Identity, lessonID string) error

	ListReviews(ctx context.Context, courseID string) ([]domain.ReviewWithUser, error)
	CreateReview(ctx context.Context, identity domain.Identity, courseID string, req *dto.CreateReviewRequest) (*domain.Review, error)

	Enroll(ctx context.Context, identity domain.Identity, courseID string) (*domain.Enrollment, error)
	ListUserEnrollments(ctx context.Context, userID string) ([]domain.EnrollmentWithCourse, error)
	ListCourseEnrollments(ctx context.Context, identity domain.Identity, courseID string) ([]domain.EnrollmentWithUser, error)
	UpdateProgress(ctx context.Context, identity domain.Identity, courseID string, progress int) (*domain.Enrollment, error)
}

type courseService struct {
	courseRepo     domain.CourseRepository
	lessonRepo     domain.LessonRepository
	reviewRepo     domain.ReviewRepository
	enrollmentRepo domain.EnrollmentRepository
}

// NewCourseService creates a new instance of CourseService.
func NewCourseService(
	courseRepo domain.CourseRepository,
	lessonRepo domain.LessonRepository,
	reviewRepo domain.ReviewRepository,
	enrollmentRepo domain.EnrollmentRepository,
) CourseService {
	return &courseService{
		courseRepo:     courseRepo,
		lessonRepo:     lessonRepo,
		reviewRepo:     reviewRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *courseService) ListPublishedCourses(ctx context.Context) ([]domain.CourseWithCounts, error) {
	courses, err := s.courseRepo.ListPublishedWithCounts(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list courses", err)
	}
	return courses, nil
}

func (s *courseService) GetCourseDetail(ctx context.Context, id string) (*domain.CourseDetail, error) {
	detail, err := s.courseRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get course", err)
	}
	if detail == nil {
		return nil, domain.NewNotFoundError("Course not found")
	}
	return detail, nil
}

func (s *courseService) ListInstructorCourses(ctx context.Context, instructorID string) ([]domain.Course, error) {
	courses, err := s.courseRepo.ListByInstructor(ctx, instructorID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list instructor courses", err)
	}
	return courses, nil
}

func (s *courseService) CreateCourse(ctx context.Context, identity domain.Identity, req *dto.CreateCourseRequest) (*domain.Course, error) {
	if !identity.Role.Can(domain.ActionCreateCourse) {
		return nil, domain.NewForbiddenError("Only instructors can create courses")
	}

	course := &domain.Course{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Level:        domain.Level(req.Level),
		Price:        req.Price,
		Duration:     req.Duration,
		Thumbnail:    req.Thumbnail,
		InstructorID: identity.UserID,
		IsPublished:  req.IsPublished,
	}
	if err := course.Validate(); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, domain.NewInternalError("failed to create course", err)
	}

	logger.Get().Info("Course created",
		zap.String("course_id", course.ID),
		zap.String("instructor_id", course.InstructorID),
	)
	return course, nil
}

func (s *courseService) UpdateCourse(ctx context.Context, identity domain.Identity, id string, req *dto.UpdateCourseRequest) (*domain.Course, error) {
	course, err := s.ownedCourse(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Category != nil {
		course.Category = *req.Category
	}
	if req.Level != nil {
		course.Level = domain.Level(*req.Level)
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if req.Thumbnail != nil {
		course.Thumbnail = *req.Thumbnail
	}
	if req.IsPublished != nil {
		course.IsPublished = *req.IsPublished
	}
	if err := course.Validate(); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, domain.NewInternalError("failed to update course", err)
	}
	return course, nil
}

func (s *courseService) DeleteCourse(ctx context.Context, identity domain.Identity, id string) error {
	if _, err := s.ownedCourse(ctx, identity, id); err != nil {
		return err
	}

	deleted, err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return err
		}
		return domain.NewInternalError("failed to delete course", err)
	}
	if !deleted {
		return domain.NewNotFoundError("Course not found")
	}

	logger.Get().Info("Course deleted", zap.String("course_id", id))
	return nil
}

func (s *courseService) ListLessons(ctx context.Context, courseID string) ([]domain.Lesson, error) {
	if _, err := s.existingCourse(ctx, courseID); err != nil {
		return nil, err
	}
	lessons, err := s.lessonRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list lessons", err)
	}
	return lessons, nil
}

func (s *courseService) CreateLesson(ctx context.Context, identity domain.Identity, courseID string, req *dto.CreateLessonRequest) (*domain.Lesson, error) {
	if _, err := s.ownedCourse(ctx, identity, courseID); err != nil {
		return nil, err
	}

	lesson := &domain.Lesson{
		CourseID:    courseID,
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		MaterialURL: req.MaterialURL,
		Position:    req.Order,
		Duration:    req.Duration,
	}
	if err := lesson.Validate(); err != nil {
		return nil, err
	}

	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, domain.NewInternalError("failed to create lesson", err)
	}
	return lesson, nil
}

func (s *courseService) UpdateLesson(ctx context.Context, identity domain.Identity, lessonID string, req *dto.UpdateLessonRequest) (*domain.Lesson, error) {
	lesson, err := s.ownedLesson(ctx, identity, lessonID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.Description != nil {
		lesson.Description = *req.Description
	}
	if req.VideoURL != nil {
		lesson.VideoURL = *req.VideoURL
	}
	if req.MaterialURL != nil {
		lesson.MaterialURL = *req.MaterialURL
	}
	if req.Order != nil {
		lesson.Position = *req.Order
	}
	if req.Duration != nil {
		lesson.Duration = *req.Duration
	}
	if err := lesson.Validate(); err != nil {
		return nil, err
	}

	if err := s.lessonRepo.Update(ctx, lesson); err != nil {
		return nil, domain.NewInternalError("failed to update lesson", err)
	}
	return lesson, nil
}

func (s *courseService) DeleteLesson(ctx context.Context, identity domain.Identity, lessonID string) error {
	if _, err := s.ownedLesson(ctx, identity, lessonID); err != nil {
		return err
	}

	deleted, err := s.lessonRepo.Delete(ctx, lessonID)
	if err != nil {
		return domain.NewInternalError("failed to delete lesson", err)
	}
	if !deleted {
		return domain.NewNotFoundError("Lesson not found")
	}
	return nil
}

func (s *courseService) ListReviews(ctx context.Context, courseID string) ([]domain.ReviewWithUser, error) {
	if _, err := s.existingCourse(ctx, courseID); err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list reviews", err)
	}
	return reviews, nil
}

func (s *courseService) CreateReview(ctx context.Context, identity domain.Identity, courseID string, req *dto.CreateReviewRequest) (*domain.Review, error) {
	if _, err := s.existingCourse(ctx, courseID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		UserID:   identity.UserID,
		CourseID: courseID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	if err := review.Validate(); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, domain.NewInternalError("failed to create review", err)
	}
	return review, nil
}

// Enroll registers the caller in a course. Enrolling twice creates a
// second enrollment row; the storage layer does not dedupe pairs.
func (s *courseService) Enroll(ctx context.Context, identity domain.Identity, courseID string) (*domain.Enrollment, error) {
	if _, err := s.existingCourse(ctx, courseID); err != nil {
		return nil, err
	}

	enrollment := &domain.Enrollment{
		UserID:   identity.UserID,
		CourseID: courseID,
		Progress: 0,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to create enrollment", err)
	}

	logger.Get().Info("User enrolled",
		zap.String("user_id", identity.UserID),
		zap.String("course_id", courseID),
	)
	return enrollment, nil
}

func (s *courseService) ListUserEnrollments(ctx context.Context, userID string) ([]domain.EnrollmentWithCourse, error) {
	enrollments, err := s.enrollmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list enrollments", err)
	}
	return enrollments, nil
}

func (s *courseService) ListCourseEnrollments(ctx context.Context, identity domain.Identity, courseID string) ([]domain.EnrollmentWithUser, error) {
	if _, err := s.ownedCourse(ctx, identity, courseID); err != nil {
		return nil, err
	}
	enrollments, err := s.enrollmentRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list course enrollments", err)
	}
	return enrollments, nil
}

func (s *courseService) UpdateProgress(ctx context.Context, identity domain.Identity, courseID string, progress int) (*domain.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.UpdateProgress(ctx, identity.UserID, courseID, progress)
	if err != nil {
		return nil, domain.NewInternalError("failed to update progress", err)
	}
	if enrollment == nil {
		return nil, domain.NewNotFoundError("Enrollment not found")
	}
	return enrollment, nil
}

// existingCourse loads a course or reports not found.
func (s *courseService) existingCourse(ctx context.Context, id string) (*domain.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get course", err)
	}
	if course == nil {
		return nil, domain.NewNotFoundError("Course not found")
	}
	return course, nil
}

// ownedCourse loads a course and enforces the ownership rule for
// mutations: the owning instructor or an admin.
func (s *courseService) ownedCourse(ctx context.Context, identity domain.Identity, id string) (*domain.Course, error) {
	course, err := s.existingCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if !identity.CanModifyResource(course.InstructorID) {
		return nil, domain.NewForbiddenError("You do not own this course")
	}
	return course, nil
}

// ownedLesson loads a lesson and enforces ownership of its course.
func (s *courseService) ownedLesson(ctx context.Context, identity domain.Identity, lessonID string) (*domain.Lesson, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get lesson", err)
	}
	if lesson == nil {
		return nil, domain.NewNotFoundError("Lesson not found")
	}
	if _, err := s.ownedCourse(ctx, identity, lesson.CourseID); err != nil {
		return nil, err
	}
	return lesson, nil
}
