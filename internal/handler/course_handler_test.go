package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var professorTestIdentity = &domain.Identity{UserID: "prof-1", Role: domain.RoleProfessor}
var alunoTestIdentity = &domain.Identity{UserID: "aluno-1", Role: domain.RoleAluno}

func TestCourseHandler_ListCourses(t *testing.T) {
	mockCourses := &MockCourseService{
		ListPublishedCoursesFunc: func(ctx context.Context) ([]domain.CourseWithCounts, error) {
			return []domain.CourseWithCounts{
				{
					Course: domain.Course{
						ID:           "course-2",
						Title:        "Advanced Go",
						InstructorID: "prof-1",
						IsPublished:  true,
						CreatedAt:    time.Now(),
					},
					Instructor:      &domain.User{ID: "prof-1", Username: "prof", Name: "Prof"},
					EnrollmentCount: 12,
					ReviewCount:     3,
				},
			}, nil
		},
	}
	courseHandler := handler.NewCourseHandler(mockCourses)

	app := newTestApp()
	app.Get("/api/courses", courseHandler.ListCourses)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/courses", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var items []dto.CourseListItemResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "course-2", items[0].ID)
	assert.Equal(t, 12, items[0].EnrollmentCount)
	require.NotNil(t, items[0].Instructor)
	assert.Equal(t, "prof", items[0].Instructor.Username)
}

func TestCourseHandler_GetCourse(t *testing.T) {
	t.Run("Unknown course maps to 404", func(t *testing.T) {
		mockCourses := &MockCourseService{
			GetCourseDetailFunc: func(ctx context.Context, id string) (*domain.CourseDetail, error) {
				return nil, domain.NewNotFoundError("Course not found")
			},
		}
		courseHandler := handler.NewCourseHandler(mockCourses)

		app := newTestApp()
		app.Get("/api/courses/:id", courseHandler.GetCourse)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("Detail carries ordered lessons", func(t *testing.T) {
		mockCourses := &MockCourseService{
			GetCourseDetailFunc: func(ctx context.Context, id string) (*domain.CourseDetail, error) {
				assert.Equal(t, "course-1", id)
				return &domain.CourseDetail{
					Course: domain.Course{ID: "course-1", Title: "Go Basics", InstructorID: "prof-1"},
					Lessons: []domain.Lesson{
						{ID: "lesson-1", CourseID: "course-1", Title: "Intro", Position: 1},
						{ID: "lesson-2", CourseID: "course-1", Title: "Types", Position: 2},
					},
					Reviews: []domain.ReviewWithUser{},
				}, nil
			},
		}
		courseHandler := handler.NewCourseHandler(mockCourses)

		app := newTestApp()
		app.Get("/api/courses/:id", courseHandler.GetCourse)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/course-1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var detail dto.CourseDetailResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
		require.Len(t, detail.Lessons, 2)
		assert.Equal(t, 1, detail.Lessons[0].Order)
		assert.Equal(t, 2, detail.Lessons[1].Order)
	})
}

func TestCourseHandler_CreateCourse(t *testing.T) {
	validRequest := dto.CreateCourseRequest{
		Title:       "Go Basics",
		Description: "An introduction",
		Category:    "programming",
		Level:       "iniciante",
		Price:       49.9,
	}

	t.Run("Instructor creates a course", func(t *testing.T) {
		mockCourses := &MockCourseService{
			CreateCourseFunc: func(ctx context.Context, identity domain.Identity, req *dto.CreateCourseRequest) (*domain.Course, error) {
				assert.Equal(t, "prof-1", identity.UserID)
				return &domain.Course{ID: "course-1", Title: req.Title, InstructorID: identity.UserID}, nil
			},
		}
		courseHandler := handler.NewCourseHandler(mockCourses)

		app := newTestApp()
		app.Post("/api/courses", withIdentity(professorTestIdentity, courseHandler.CreateCourse))

		body, _ := json.Marshal(validRequest)
		req := httptest.NewRequest("POST", "/api/courses", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var course dto.CourseResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&course))
		assert.Equal(t, "prof-1", course.InstructorID)
	})

	t.Run("Student is rejected with 403", func(t *testing.T) {
		mockCourses := &MockCourseService{
			CreateCourseFunc: func(ctx context.Context, identity domain.Identity, req *dto.CreateCourseRequest) (*domain.Course, error) {
				return nil, domain.NewForbiddenError("Only instructors can create courses")
			},
		}
		courseHandler := handler.NewCourseHandler(mockCourses)

		app := newTestApp()
		app.Post("/api/courses", withIdentity(alunoTestIdentity, courseHandler.CreateCourse))

		body, _ := json.Marshal(validRequest)
		req := httptest.NewRequest("POST", "/api/courses", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("Missing title never reaches the service", func(t *testing.T) {
		mockCourses := &MockCourseService{
			CreateCourseFunc: func(ctx context.Context, identity domain.Identity, req *dto.CreateCourseRequest) (*domain.Course, error) {
				t.Fatal("CreateCourse should not be called for an invalid request")
				return nil, nil
			},
		}
		courseHandler := handler.NewCourseHandler(mockCourses)

		app := newTestApp()
		app.Post("/api/courses", withIdentity(professorTestIdentity, courseHandler.CreateCourse))

		invalid := validRequest
		invalid.Title = ""
		body, _ := json.Marshal(invalid)
		req := httptest.NewRequest("POST", "/api/courses", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestCourseHandler_CreateReview(t *testing.T) {
	t.Run("Review is created with the caller as author", func(t *testing.T) {
		mockCourses := &MockCourseService{
			CreateReviewFunc: func(ctx context.Context, identity domain.Identity, courseID string, req *dto.CreateReviewRequest) (*domain.Review, error) {
				assert.Equal(t, "aluno-1", identity.UserID)
				assert.Equal(t, "course-1", courseID)
				return &domain.Review{
					ID:       "review-1",
					UserID:   identity.UserID,
					CourseID: courseID,
					Rating:   req.Rating,
					Comment:  req.Comment,
				}, nil
			},
		}
		courseHandler := handler.NewCourseHandler(mockCourses)

		app := newTestApp()
		app.Post("/api/courses/:id/reviews", withIdentity(alunoTestIdentity, courseHandler.CreateReview))

		body, _ := json.Marshal(dto.CreateReviewRequest{Rating: 5, Comment: "Great course"})
		req := httptest.NewRequest("POST", "/api/courses/course-1/reviews", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var review dto.ReviewResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&review))
		assert.Equal(t, 5, review.Rating)
		assert.Equal(t, "aluno-1", review.UserID)
	})

	t.Run("Flat route takes the course from the body", func(t *testing.T) {
		mockCourses := &MockCourseService{
			CreateReviewFunc: func(ctx context.Context, identity domain.Identity, courseID string, req *dto.CreateReviewRequest) (*domain.Review, error) {
				assert.Equal(t, "course-2", courseID)
				return &domain.Review{ID: "review-2", UserID: identity.UserID, CourseID: courseID, Rating: req.Rating}, nil
			},
		}
		courseHandler := handler.NewCourseHandler(mockCourses)

		app := newTestApp()
		app.Post("/api/reviews", withIdentity(alunoTestIdentity, courseHandler.CreateReview))

		body, _ := json.Marshal(dto.CreateReviewRequest{CourseID: "course-2", Rating: 4})
		req := httptest.NewRequest("POST", "/api/reviews", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var review dto.ReviewResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&review))
		assert.Equal(t, "course-2", review.CourseID)
	})

	t.Run("Flat route without a course id is rejected", func(t *testing.T) {
		courseHandler := handler.NewCourseHandler(&MockCourseService{})

		app := newTestApp()
		app.Post("/api/reviews", withIdentity(alunoTestIdentity, courseHandler.CreateReview))

		body, _ := json.Marshal(dto.CreateReviewRequest{Rating: 4})
		req := httptest.NewRequest("POST", "/api/reviews", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Out-of-range rating is rejected", func(t *testing.T) {
		mockCourses := &MockCourseService{}
		courseHandler := handler.NewCourseHandler(mockCourses)

		app := newTestApp()
		app.Post("/api/courses/:id/reviews", withIdentity(alunoTestIdentity, courseHandler.CreateReview))

		body, _ := json.Marshal(dto.CreateReviewRequest{Rating: 6})
		req := httptest.NewRequest("POST", "/api/courses/course-1/reviews", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestCourseHandler_Enroll(t *testing.T) {
	mockCourses := &MockCourseService{
		EnrollFunc: func(ctx context.Context, identity domain.Identity, courseID string) (*domain.Enrollment, error) {
			return &domain.Enrollment{
				ID:       "enr-1",
				UserID:   identity.UserID,
				CourseID: courseID,
				Progress: 0,
			}, nil
		},
	}
	courseHandler := handler.NewCourseHandler(mockCourses)

	app := newTestApp()
	app.Post("/api/courses/:id/enroll", withIdentity(alunoTestIdentity, courseHandler.Enroll))
	app.Post("/api/enrollments", withIdentity(alunoTestIdentity, courseHandler.Enroll))

	t.Run("Nested route takes the course from the path", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/api/courses/course-1/enroll", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var enrollment dto.EnrollmentResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&enrollment))
		assert.Equal(t, "aluno-1", enrollment.UserID)
		assert.Equal(t, 0, enrollment.Progress)
	})

	t.Run("Flat route takes the course from the body", func(t *testing.T) {
		body, _ := json.Marshal(dto.EnrollRequest{CourseID: "course-2"})
		req := httptest.NewRequest("POST", "/api/enrollments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var enrollment dto.EnrollmentResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&enrollment))
		assert.Equal(t, "course-2", enrollment.CourseID)
	})

	t.Run("Flat route without a course id is rejected", func(t *testing.T) {
		body, _ := json.Marshal(dto.EnrollRequest{})
		req := httptest.NewRequest("POST", "/api/enrollments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestCourseHandler_UpdateProgress(t *testing.T) {
	t.Run("Progress is updated for the caller", func(t *testing.T) {
		mockCourses := &MockCourseService{
			UpdateProgressFunc: func(ctx context.Context, identity domain.Identity, courseID string, progress int) (*domain.Enrollment, error) {
				assert.Equal(t, "course-1", courseID)
				assert.Equal(t, 80, progress)
				return &domain.Enrollment{ID: "enr-1", UserID: identity.UserID, CourseID: courseID, Progress: progress}, nil
			},
		}
		courseHandler := handler.NewCourseHandler(mockCourses)

		app := newTestApp()
		app.Put("/api/enrollments/:courseId/progress", withIdentity(alunoTestIdentity, courseHandler.UpdateProgress))

		body, _ := json.Marshal(dto.UpdateProgressRequest{Progress: 80})
		req := httptest.NewRequest("PUT", "/api/enrollments/course-1/progress", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var enrollment dto.EnrollmentResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&enrollment))
		assert.Equal(t, 80, enrollment.Progress)
	})

	t.Run("Missing enrollment maps to 404", func(t *testing.T) {
		mockCourses := &MockCourseService{
			UpdateProgressFunc: func(ctx context.Context, identity domain.Identity, courseID string, progress int) (*domain.Enrollment, error) {
				return nil, domain.NewNotFoundError("Enrollment not found")
			},
		}
		courseHandler := handler.NewCourseHandler(mockCourses)

		app := newTestApp()
		app.Put("/api/enrollments/:courseId/progress", withIdentity(alunoTestIdentity, courseHandler.UpdateProgress))

		body, _ := json.Marshal(dto.UpdateProgressRequest{Progress: 50})
		req := httptest.NewRequest("PUT", "/api/enrollments/course-1/progress", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("Progress above 100 is rejected", func(t *testing.T) {
		courseHandler := handler.NewCourseHandler(&MockCourseService{})

		app := newTestApp()
		app.Put("/api/enrollments/:courseId/progress", withIdentity(alunoTestIdentity, courseHandler.UpdateProgress))

		body, _ := json.Marshal(dto.UpdateProgressRequest{Progress: 120})
		req := httptest.NewRequest("PUT", "/api/enrollments/course-1/progress", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestCourseHandler_ListCourseEnrollments(t *testing.T) {
	t.Run("Non-owner is rejected with 403", func(t *testing.T) {
		mockCourses := &MockCourseService{
			ListCourseEnrollmentsFunc: func(ctx context.Context, identity domain.Identity, courseID string) ([]domain.EnrollmentWithUser, error) {
				return nil, domain.NewForbiddenError("You do not own this course")
			},
		}
		courseHandler := handler.NewCourseHandler(mockCourses)

		app := newTestApp()
		app.Get("/api/courses/:id/enrollments", withIdentity(alunoTestIdentity, courseHandler.ListCourseEnrollments))

		resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/course-1/enrollments", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("Owner gets the roster", func(t *testing.T) {
		mockCourses := &MockCourseService{
			ListCourseEnrollmentsFunc: func(ctx context.Context, identity domain.Identity, courseID string) ([]domain.EnrollmentWithUser, error) {
				return []domain.EnrollmentWithUser{
					{
						Enrollment: domain.Enrollment{ID: "enr-1", UserID: "aluno-1", CourseID: courseID, Progress: 30},
						User:       &domain.User{ID: "aluno-1", Username: "student"},
					},
				}, nil
			},
		}
		courseHandler := handler.NewCourseHandler(mockCourses)

		app := newTestApp()
		app.Get("/api/courses/:id/enrollments", withIdentity(professorTestIdentity, courseHandler.ListCourseEnrollments))

		resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/course-1/enrollments", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var roster []dto.EnrollmentWithUserResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&roster))
		require.Len(t, roster, 1)
		require.NotNil(t, roster[0].User)
		assert.Equal(t, "student", roster[0].User.Username)
	})
}
