package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"learnhub/internal/domain"
	"learnhub/internal/repository/models"
	"learnhub/internal/util"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

const courseColumns = `id, title, description, category, level, price, duration, thumbnail, instructor_id, is_published, created_at`

// instructorColumns projects the user row joined as instructor. The
// password hash is deliberately left out of every joined projection.
const instructorColumns = `u.username AS instructor_username, u.email AS instructor_email,
	u.name AS instructor_name, u.role AS instructor_role, u.avatar AS instructor_avatar,
	u.created_at AS instructor_created_at`

type sqlxCourseRepository struct {
	db *sqlx.DB
}

// NewSQLXCourseRepository creates a course repository backed by sqlx.
func NewSQLXCourseRepository(db *sqlx.DB) domain.CourseRepository {
	return &sqlxCourseRepository{db: db}
}

// courseListRow is the scan target for the published-course listing.
type courseListRow struct {
	models.Course
	InstructorUsername  string         `db:"instructor_username"`
	InstructorEmail     string         `db:"instructor_email"`
	InstructorName      string         `db:"instructor_name"`
	InstructorRole      string         `db:"instructor_role"`
	InstructorAvatar    sql.NullString `db:"instructor_avatar"`
	InstructorCreatedAt time.Time      `db:"instructor_created_at"`
	EnrollmentCount     int            `db:"enrollment_count"`
	ReviewCount         int            `db:"review_count"`
}

func (row *courseListRow) instructor() *domain.User {
	return &domain.User{
		ID:        row.InstructorID,
		Username:  row.InstructorUsername,
		Email:     row.InstructorEmail,
		Name:      row.InstructorName,
		Role:      domain.Role(row.InstructorRole),
		Avatar:    util.NullStringToString(row.InstructorAvatar),
		CreatedAt: row.InstructorCreatedAt,
	}
}

// ListPublishedWithCounts returns published courses newest first, each
// carrying its instructor and enrollment/review counts. The counts come
// from a single grouped query rather than N+1 lookups.
func (r *sqlxCourseRepository) ListPublishedWithCounts(ctx context.Context) ([]domain.CourseWithCounts, error) {
	query := `SELECT c.id, c.title, c.description, c.category, c.level, c.price, c.duration,
			c.thumbnail, c.instructor_id, c.is_published, c.created_at,
			` + instructorColumns + `,
			COUNT(DISTINCT e.id) AS enrollment_count,
			COUNT(DISTINCT r.id) AS review_count
		FROM courses c
		JOIN users u ON u.id = c.instructor_id
		LEFT JOIN enrollments e ON e.course_id = c.id
		LEFT JOIN reviews r ON r.course_id = c.id
		WHERE c.is_published = TRUE
		GROUP BY c.id, u.id
		ORDER BY c.created_at DESC`

	var rows []courseListRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list published courses: %w", err)
	}

	result := make([]domain.CourseWithCounts, len(rows))
	for i := range rows {
		result[i] = domain.CourseWithCounts{
			Course:          *toDomainCourse(&rows[i].Course),
			Instructor:      rows[i].instructor(),
			EnrollmentCount: rows[i].EnrollmentCount,
			ReviewCount:     rows[i].ReviewCount,
		}
	}
	return result, nil
}

// GetDetail returns the course with its instructor, lessons in display
// order and reviews newest first, or nil, nil when the course is absent.
func (r *sqlxCourseRepository) GetDetail(ctx context.Context, id string) (*domain.CourseDetail, error) {
	courseQuery := `SELECT c.id, c.title, c.description, c.category, c.level, c.price, c.duration,
			c.thumbnail, c.instructor_id, c.is_published, c.created_at,
			` + instructorColumns + `
		FROM courses c
		JOIN users u ON u.id = c.instructor_id
		WHERE c.id = $1`

	var row courseListRow
	if err := r.db.GetContext(ctx, &row, courseQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course %s: %w", id, err)
	}

	lessonsQuery := `SELECT ` + lessonColumns + ` FROM lessons WHERE course_id = $1 ORDER BY position ASC`
	var lessonRows []models.Lesson
	if err := r.db.SelectContext(ctx, &lessonRows, lessonsQuery, id); err != nil {
		return nil, fmt.Errorf("failed to list lessons for course %s: %w", id, err)
	}
	lessons := make([]domain.Lesson, len(lessonRows))
	for i := range lessonRows {
		lessons[i] = *toDomainLesson(&lessonRows[i])
	}

	reviews, err := listReviewsByCourse(ctx, r.db, id)
	if err != nil {
		return nil, err
	}

	return &domain.CourseDetail{
		Course:     *toDomainCourse(&row.Course),
		Instructor: row.instructor(),
		Lessons:    lessons,
		Reviews:    reviews,
	}, nil
}

// GetByID retrieves a bare course row. Returns nil, nil when absent.
func (r *sqlxCourseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	var model models.Course
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`
	if err := r.db.GetContext(ctx, &model, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course %s: %w", id, err)
	}
	return toDomainCourse(&model), nil
}

// ListByInstructor returns all courses owned by an instructor, including
// unpublished drafts, newest first.
func (r *sqlxCourseRepository) ListByInstructor(ctx context.Context, instructorID string) ([]domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE instructor_id = $1 ORDER BY created_at DESC`
	var rows []models.Course
	if err := r.db.SelectContext(ctx, &rows, query, instructorID); err != nil {
		return nil, fmt.Errorf("failed to list courses for instructor %s: %w", instructorID, err)
	}
	courses := make([]domain.Course, len(rows))
	for i := range rows {
		courses[i] = *toDomainCourse(&rows[i])
	}
	return courses, nil
}

// Create inserts a new course, assigning ID and CreatedAt.
func (r *sqlxCourseRepository) Create(ctx context.Context, course *domain.Course) error {
	model := fromDomainCourse(course)
	model.ID = util.NewULID()
	model.CreatedAt = time.Now()

	query := `INSERT INTO courses (id, title, description, category, level, price, duration, thumbnail, instructor_id, is_published, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		model.ID,
		model.Title,
		model.Description,
		model.Category,
		model.Level,
		model.Price,
		model.Duration,
		model.Thumbnail,
		model.InstructorID,
		model.IsPublished,
		model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	course.ID = model.ID
	course.CreatedAt = model.CreatedAt
	return nil
}

// Update rewrites all mutable columns of the course.
func (r *sqlxCourseRepository) Update(ctx context.Context, course *domain.Course) error {
	model := fromDomainCourse(course)

	query := `UPDATE courses SET title = $1, description = $2, category = $3, level = $4,
			price = $5, duration = $6, thumbnail = $7, is_published = $8
		WHERE id = $9`

	result, err := r.db.ExecContext(ctx, query,
		model.Title,
		model.Description,
		model.Category,
		model.Level,
		model.Price,
		model.Duration,
		model.Thumbnail,
		model.IsPublished,
		model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update course %s: %w", course.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a course and reports whether a row was deleted. There is
// no cascade; a course that still has lessons, enrollments or reviews hits
// the foreign keys and is reported as invalid input.
func (r *sqlxCourseRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return false, domain.NewInvalidInputError("Course still has lessons, enrollments or reviews")
		}
		return false, fmt.Errorf("failed to delete course %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

func toDomainCourse(m *models.Course) *domain.Course {
	return &domain.Course{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Category:     m.Category,
		Level:        domain.Level(m.Level),
		Price:        m.Price,
		Duration:     util.NullInt64ToInt(m.Duration),
		Thumbnail:    util.NullStringToString(m.Thumbnail),
		InstructorID: m.InstructorID,
		IsPublished:  m.IsPublished,
		CreatedAt:    m.CreatedAt,
	}
}

func fromDomainCourse(c *domain.Course) *models.Course {
	return &models.Course{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		Category:     c.Category,
		Level:        string(c.Level),
		Price:        c.Price,
		Duration:     util.IntToNullInt64(c.Duration),
		Thumbnail:    util.StringToNullString(c.Thumbnail),
		InstructorID: c.InstructorID,
		IsPublished:  c.IsPublished,
		CreatedAt:    c.CreatedAt,
	}
}
