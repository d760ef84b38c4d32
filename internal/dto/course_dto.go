package dto

import (
	"time"

	"learnhub/internal/domain"
)

// CreateCourseRequest represents the request body for creating a course.
// @Description Request body for creating or updating a course
type CreateCourseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Level       string  `json:"level"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration,omitempty"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
	IsPublished bool    `json:"isPublished"`
}

// UpdateCourseRequest uses pointers so absent fields keep their current
// values instead of being zeroed.
type UpdateCourseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Level       *string  `json:"level"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	Thumbnail   *string  `json:"thumbnail"`
	IsPublished *bool    `json:"isPublished"`
}

// CourseResponse represents a course in the API response.
// @Description Course information
type CourseResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Level        string    `json:"level"`
	Price        float64   `json:"price"`
	Duration     int       `json:"duration,omitempty"`
	Thumbnail    string    `json:"thumbnail,omitempty"`
	InstructorID string    `json:"instructorId"`
	IsPublished  bool      `json:"isPublished"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CourseListItemResponse is a course annotated with its instructor and
// aggregate counts for the published listing.
type CourseListItemResponse struct {
	CourseResponse
	Instructor      *UserResponse `json:"instructor,omitempty"`
	EnrollmentCount int           `json:"enrollmentCount"`
	ReviewCount     int           `json:"reviewCount"`
}

// CourseDetailResponse is a course with instructor, ordered lessons and
// reviews.
type CourseDetailResponse struct {
	CourseResponse
	Instructor *UserResponse    `json:"instructor,omitempty"`
	Lessons    []LessonResponse `json:"lessons"`
	Reviews    []ReviewResponse `json:"reviews"`
}

// CreateLessonRequest represents the request body for creating a lesson.
// The display sequence travels as "order" on the wire.
type CreateLessonRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
	MaterialURL string `json:"materialUrl,omitempty"`
	Order       int    `json:"order"`
	Duration    int    `json:"duration,omitempty"`
}

// UpdateLessonRequest uses pointers for partial updates.
type UpdateLessonRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	VideoURL    *string `json:"videoUrl"`
	MaterialURL *string `json:"materialUrl"`
	Order       *int    `json:"order"`
	Duration    *int    `json:"duration"`
}

// LessonResponse represents a lesson in the API response.
// @Description Lesson information
type LessonResponse struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	VideoURL    string    `json:"videoUrl,omitempty"`
	MaterialURL string    `json:"materialUrl,omitempty"`
	Order       int       `json:"order"`
	Duration    int       `json:"duration,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateReviewRequest represents the request body for reviewing a course.
// CourseID is taken from the URL on the nested route and from the body on
// the flat one.
type CreateReviewRequest struct {
	CourseID string `json:"courseId,omitempty"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment,omitempty"`
}

// EnrollRequest represents the request body for enrolling in a course.
type EnrollRequest struct {
	CourseID string `json:"courseId"`
}

// ReviewResponse represents a review with its author.
// @Description Review information
type ReviewResponse struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	CourseID  string        `json:"courseId"`
	Rating    int           `json:"rating"`
	Comment   string        `json:"comment,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	User      *UserResponse `json:"user,omitempty"`
}

// UpdateProgressRequest represents the request body for reporting course
// completion progress.
type UpdateProgressRequest struct {
	Progress int `json:"progress"`
}

// EnrollmentResponse represents an enrollment in the API response.
// @Description Enrollment information
type EnrollmentResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	CourseID   string    `json:"courseId"`
	Progress   int       `json:"progress"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

// EnrollmentWithCourseResponse annotates an enrollment with its course
// for the "my enrollments" listing.
type EnrollmentWithCourseResponse struct {
	EnrollmentResponse
	Course CourseListItemResponse `json:"course"`
}

// EnrollmentWithUserResponse annotates an enrollment with the enrolled
// user for the per-course roster.
type EnrollmentWithUserResponse struct {
	EnrollmentResponse
	User *UserResponse `json:"user,omitempty"`
}

// ToCourseResponse converts a domain course.
func ToCourseResponse(c *domain.Course) CourseResponse {
	return CourseResponse{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		Category:     c.Category,
		Level:        string(c.Level),
		Price:        c.Price,
		Duration:     c.Duration,
		Thumbnail:    c.Thumbnail,
		InstructorID: c.InstructorID,
		IsPublished:  c.IsPublished,
		CreatedAt:    c.CreatedAt,
	}
}

// ToCourseListItemResponse converts an annotated course.
func ToCourseListItemResponse(c *domain.CourseWithCounts) CourseListItemResponse {
	return CourseListItemResponse{
		CourseResponse:  ToCourseResponse(&c.Course),
		Instructor:      ToUserResponse(c.Instructor),
		EnrollmentCount: c.EnrollmentCount,
		ReviewCount:     c.ReviewCount,
	}
}

// ToCourseDetailResponse converts a course detail aggregate.
func ToCourseDetailResponse(d *domain.CourseDetail) CourseDetailResponse {
	lessons := make([]LessonResponse, len(d.Lessons))
	for i := range d.Lessons {
		lessons[i] = ToLessonResponse(&d.Lessons[i])
	}
	reviews := make([]ReviewResponse, len(d.Reviews))
	for i := range d.Reviews {
		reviews[i] = ToReviewResponse(&d.Reviews[i])
	}
	return CourseDetailResponse{
		CourseResponse: ToCourseResponse(&d.Course),
		Instructor:     ToUserResponse(d.Instructor),
		Lessons:        lessons,
		Reviews:        reviews,
	}
}

// ToLessonResponse converts a domain lesson.
func ToLessonResponse(l *domain.Lesson) LessonResponse {
	return LessonResponse{
		ID:          l.ID,
		CourseID:    l.CourseID,
		Title:       l.Title,
		Description: l.Description,
		VideoURL:    l.VideoURL,
		MaterialURL: l.MaterialURL,
		Order:       l.Position,
		Duration:    l.Duration,
		CreatedAt:   l.CreatedAt,
	}
}

// ToReviewResponse converts a review with its author.
func ToReviewResponse(r *domain.ReviewWithUser) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		CourseID:  r.CourseID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		User:      ToUserResponse(r.User),
	}
}

// ToEnrollmentResponse converts a domain enrollment.
func ToEnrollmentResponse(e *domain.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		CourseID:   e.CourseID,
		Progress:   e.Progress,
		EnrolledAt: e.EnrolledAt,
	}
}

// ToEnrollmentWithCourseResponse converts an annotated enrollment.
func ToEnrollmentWithCourseResponse(e *domain.EnrollmentWithCourse) EnrollmentWithCourseResponse {
	return EnrollmentWithCourseResponse{
		EnrollmentResponse: ToEnrollmentResponse(&e.Enrollment),
		Course: CourseListItemResponse{
			CourseResponse: ToCourseResponse(&e.Course),
			Instructor:     ToUserResponse(e.Instructor),
		},
	}
}

// ToEnrollmentWithUserResponse converts a roster entry.
func ToEnrollmentWithUserResponse(e *domain.EnrollmentWithUser) EnrollmentWithUserResponse {
	return EnrollmentWithUserResponse{
		EnrollmentResponse: ToEnrollmentResponse(&e.Enrollment),
		User:               ToUserResponse(e.User),
	}
}
