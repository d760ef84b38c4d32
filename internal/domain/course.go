package domain

import (
	"context"
	"time"
)

// Level is the closed set of course difficulty levels.
type Level string

const (
	LevelIniciante     Level = "iniciante"
	LevelIntermediario Level = "intermediario"
	LevelAvancado      Level = "avancado"
)

func (l Level) Valid() bool {
	switch l {
	case LevelIniciante, LevelIntermediario, LevelAvancado:
		return true
	}
	return false
}

// Course is a unit of published or draft teaching material owned by an
// instructor.
type Course struct {
	ID           string
	Title        string
	Description  string
	Category     string
	Level        Level
	Price        float64
	Duration     int // hours, 0 when unset
	Thumbnail    string
	InstructorID string
	IsPublished  bool
	CreatedAt    time.Time
}

func (c *Course) Validate() error {
	var errs ValidationErrors
	if c.Title == "" {
		errs = append(errs, NewMissingFieldError("title"))
	}
	if c.Description == "" {
		errs = append(errs, NewMissingFieldError("description"))
	}
	if c.Category == "" {
		errs = append(errs, NewMissingFieldError("category"))
	}
	if !c.Level.Valid() {
		errs = append(errs, NewInvalidFieldError("level", "must be one of iniciante, intermediario, avancado"))
	}
	if c.Price < 0 {
		errs = append(errs, NewInvalidFieldError("price", "must not be negative"))
	}
	if c.InstructorID == "" {
		errs = append(errs, NewMissingFieldError("instructor_id"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Lesson belongs to a course; Position defines the display sequence.
type Lesson struct {
	ID          string
	CourseID    string
	Title       string
	Description string
	VideoURL    string
	MaterialURL string
	Position    int
	Duration    int // minutes, 0 when unset
	CreatedAt   time.Time
}

func (l *Lesson) Validate() error {
	var errs ValidationErrors
	if l.CourseID == "" {
		errs = append(errs, NewMissingFieldError("course_id"))
	}
	if l.Title == "" {
		errs = append(errs, NewMissingFieldError("title"))
	}
	if l.Position < 0 {
		errs = append(errs, NewInvalidFieldError("order", "must not be negative"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Review is a rating left by an enrolled (or any authenticated) user.
type Review struct {
	ID        string
	UserID    string
	CourseID  string
	Rating    int // 1-5
	Comment   string
	CreatedAt time.Time
}

func (r *Review) Validate() error {
	var errs ValidationErrors
	if r.UserID == "" {
		errs = append(errs, NewMissingFieldError("user_id"))
	}
	if r.CourseID == "" {
		errs = append(errs, NewMissingFieldError("course_id"))
	}
	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, NewOutOfRangeError("rating", 1, 5))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Enrollment links a user to a course and tracks completion progress.
// Duplicate (user, course) pairs are permitted; see the schema notes.
type Enrollment struct {
	ID         string
	UserID     string
	CourseID   string
	Progress   int // percent, 0-100
	EnrolledAt time.Time
}

func (e *Enrollment) Validate() error {
	var errs ValidationErrors
	if e.UserID == "" {
		errs = append(errs, NewMissingFieldError("user_id"))
	}
	if e.CourseID == "" {
		errs = append(errs, NewMissingFieldError("course_id"))
	}
	if e.Progress < 0 || e.Progress > 100 {
		errs = append(errs, NewOutOfRangeError("progress", 0, 100))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CourseWithCounts is a course annotated with its instructor and aggregate
// counts, as returned by the published-course listing.
type CourseWithCounts struct {
	Course
	Instructor      *User
	EnrollmentCount int
	ReviewCount     int
}

// ReviewWithUser annotates a review with its author.
type ReviewWithUser struct {
	Review
	User *User
}

// CourseDetail is a course with its instructor, ordered lessons and reviews.
type CourseDetail struct {
	Course
	Instructor *User
	Lessons    []Lesson
	Reviews    []ReviewWithUser
}

// EnrollmentWithCourse annotates an enrollment with the course and its
// instructor for the "my enrollments" listing.
type EnrollmentWithCourse struct {
	Enrollment
	Course     Course
	Instructor *User
}

// EnrollmentWithUser annotates an enrollment with the enrolled user.
type EnrollmentWithUser struct {
	Enrollment
	User *User
}

// CourseRepository defines persistence for courses and their aggregates.
type CourseRepository interface {
	// ListPublishedWithCounts returns published courses, newest first, each
	// annotated with instructor and enrollment/review counts.
	ListPublishedWithCounts(ctx context.Context) ([]CourseWithCounts, error)
	// GetDetail returns the course with instructor, lessons ordered by
	// position and reviews newest first, or nil when absent.
	GetDetail(ctx context.Context, id string) (*CourseDetail, error)
	GetByID(ctx context.Context, id string) (*Course, error)
	ListByInstructor(ctx context.Context, instructorID string) ([]Course, error)
	Create(ctx context.Context, course *Course) error
	Update(ctx context.Context, course *Course) error
	Delete(ctx context.Context, id string) (bool, error)
}

// LessonRepository defines persistence for lessons.
type LessonRepository interface {
	ListByCourse(ctx context.Context, courseID string) ([]Lesson, error)
	GetByID(ctx context.Context, id string) (*Lesson, error)
	Create(ctx context.Context, lesson *Lesson) error
	Update(ctx context.Context, lesson *Lesson) error
	Delete(ctx context.Context, id string) (bool, error)
}

// EnrollmentRepository defines persistence for enrollments.
type EnrollmentRepository interface {
	ListByUser(ctx context.Context, userID string) ([]EnrollmentWithCourse, error)
	ListByCourse(ctx context.Context, courseID string) ([]EnrollmentWithUser, error)
	Create(ctx context.Context, enrollment *Enrollment) error
	UpdateProgress(ctx context.Context, userID, courseID string, progress int) (*Enrollment, error)
}

// ReviewRepository defines persistence for reviews.
type ReviewRepository interface {
	ListByCourse(ctx context.Context, courseID string) ([]ReviewWithUser, error)
	Create(ctx context.Context, review *Review) error
}
