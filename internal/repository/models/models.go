package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

// User represents a row of the users table.
type User struct {
	ID           string         `db:"id"` // ULID
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Name         string         `db:"name"`
	Role         string         `db:"role"`
	Avatar       sql.NullString `db:"avatar"`
	CreatedAt    time.Time      `db:"created_at"`
}

// Course represents a row of the courses table.
type Course struct {
	ID           string         `db:"id"`
	Title        string         `db:"title"`
	Description  string         `db:"description"`
	Category     string         `db:"category"`
	Level        string         `db:"level"`
	Price        float64        `db:"price"`
	Duration     sql.NullInt64  `db:"duration"` // hours
	Thumbnail    sql.NullString `db:"thumbnail"`
	InstructorID string         `db:"instructor_id"`
	IsPublished  bool           `db:"is_published"`
	CreatedAt    time.Time      `db:"created_at"`
}

// Lesson represents a row of the lessons table. The display sequence
// column is named position because "order" is reserved in SQL.
type Lesson struct {
	ID          string         `db:"id"`
	CourseID    string         `db:"course_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	VideoURL    sql.NullString `db:"video_url"`
	MaterialURL sql.NullString `db:"material_url"`
	Position    int            `db:"position"`
	Duration    sql.NullInt64  `db:"duration"` // minutes
	CreatedAt   time.Time      `db:"created_at"`
}

// Enrollment represents a row of the enrollments table.
type Enrollment struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	CourseID   string    `db:"course_id"`
	Progress   int       `db:"progress"`
	EnrolledAt time.Time `db:"enrolled_at"`
}

// Review represents a row of the reviews table.
type Review struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	CourseID  string         `db:"course_id"`
	Rating    int            `db:"rating"`
	Comment   sql.NullString `db:"comment"`
	CreatedAt time.Time      `db:"created_at"`
}

// LiveClass represents a row of the live_classes table.
type LiveClass struct {
	ID              string         `db:"id"`
	Title           string         `db:"title"`
	Description     sql.NullString `db:"description"`
	InstructorID    string         `db:"instructor_id"`
	ScheduledAt     time.Time      `db:"scheduled_at"`
	Duration        int            `db:"duration"` // minutes
	Platform        string         `db:"platform"`
	MeetingURL      sql.NullString `db:"meeting_url"`
	MaxParticipants int            `db:"max_participants"`
	CreatedAt       time.Time      `db:"created_at"`
}

// LiveClassParticipant represents a row of the live_class_participants table.
type LiveClassParticipant struct {
	ID          string    `db:"id"`
	LiveClassID string    `db:"live_class_id"`
	UserID      string    `db:"user_id"`
	JoinedAt    time.Time `db:"joined_at"`
}

// AiContent represents a row of the ai_contents table. Content is stored
// as JSONB and kept opaque here.
type AiContent struct {
	ID         string          `db:"id"`
	Type       string          `db:"type"`
	Content    json.RawMessage `db:"content"`
	SourceID   sql.NullString  `db:"source_id"`
	SourceType sql.NullString  `db:"source_type"`
	CreatedAt  time.Time       `db:"created_at"`
}
