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

const pgForeignKeyViolation = "23503"

type sqlxEnrollmentRepository struct {
	db *sqlx.DB
}

// NewSQLXEnrollmentRepository creates an enrollment repository backed by sqlx.
func NewSQLXEnrollmentRepository(db *sqlx.DB) domain.EnrollmentRepository {
	return &sqlxEnrollmentRepository{db: db}
}

// enrollmentWithCourseRow is the scan target for the per-user listing.
type enrollmentWithCourseRow struct {
	models.Enrollment
	Course              models.Course  `db:"course"`
	InstructorUsername  string         `db:"instructor_username"`
	InstructorEmail     string         `db:"instructor_email"`
	InstructorName      string         `db:"instructor_name"`
	InstructorRole      string         `db:"instructor_role"`
	InstructorAvatar    sql.NullString `db:"instructor_avatar"`
	InstructorCreatedAt time.Time      `db:"instructor_created_at"`
}

// ListByUser returns a user's enrollments with the enrolled course and
// its instructor, most recent enrollment first.
func (r *sqlxEnrollmentRepository) ListByUser(ctx context.Context, userID string) ([]domain.EnrollmentWithCourse, error) {
	query := `SELECT e.id, e.user_id, e.course_id, e.progress, e.enrolled_at,
			c.id AS "course.id", c.title AS "course.title", c.description AS "course.description",
			c.category AS "course.category", c.level AS "course.level", c.price AS "course.price",
			c.duration AS "course.duration", c.thumbnail AS "course.thumbnail",
			c.instructor_id AS "course.instructor_id", c.is_published AS "course.is_published",
			c.created_at AS "course.created_at",
			u.username AS instructor_username, u.email AS instructor_email, u.name AS instructor_name,
			u.role AS instructor_role, u.avatar AS instructor_avatar, u.created_at AS instructor_created_at
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		JOIN users u ON u.id = c.instructor_id
		WHERE e.user_id = $1
		ORDER BY e.enrolled_at DESC`

	var rows []enrollmentWithCourseRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list enrollments for user %s: %w", userID, err)
	}

	result := make([]domain.EnrollmentWithCourse, len(rows))
	for i := range rows {
		result[i] = domain.EnrollmentWithCourse{
			Enrollment: *toDomainEnrollment(&rows[i].Enrollment),
			Course:     *toDomainCourse(&rows[i].Course),
			Instructor: &domain.User{
				ID:        rows[i].Course.InstructorID,
				Username:  rows[i].InstructorUsername,
				Email:     rows[i].InstructorEmail,
				Name:      rows[i].InstructorName,
				Role:      domain.Role(rows[i].InstructorRole),
				Avatar:    util.NullStringToString(rows[i].InstructorAvatar),
				CreatedAt: rows[i].InstructorCreatedAt,
			},
		}
	}
	return result, nil
}

// enrollmentWithUserRow is the scan target for the per-course listing.
type enrollmentWithUserRow struct {
	models.Enrollment
	StudentUsername  string         `db:"student_username"`
	StudentEmail     string         `db:"student_email"`
	StudentName      string         `db:"student_name"`
	StudentRole      string         `db:"student_role"`
	StudentAvatar    sql.NullString `db:"student_avatar"`
	StudentCreatedAt time.Time      `db:"student_created_at"`
}

// ListByCourse returns the enrollments of a course with each enrolled user.
func (r *sqlxEnrollmentRepository) ListByCourse(ctx context.Context, courseID string) ([]domain.EnrollmentWithUser, error) {
	query := `SELECT e.id, e.user_id, e.course_id, e.progress, e.enrolled_at,
			u.username AS student_username, u.email AS student_email, u.name AS student_name,
			u.role AS student_role, u.avatar AS student_avatar, u.created_at AS student_created_at
		FROM enrollments e
		JOIN users u ON u.id = e.user_id
		WHERE e.course_id = $1
		ORDER BY e.enrolled_at DESC`

	var rows []enrollmentWithUserRow
	if err := r.db.SelectContext(ctx, &rows, query, courseID); err != nil {
		return nil, fmt.Errorf("failed to list enrollments for course %s: %w", courseID, err)
	}

	result := make([]domain.EnrollmentWithUser, len(rows))
	for i := range rows {
		result[i] = domain.EnrollmentWithUser{
			Enrollment: *toDomainEnrollment(&rows[i].Enrollment),
			User: &domain.User{
				ID:        rows[i].UserID,
				Username:  rows[i].StudentUsername,
				Email:     rows[i].StudentEmail,
				Name:      rows[i].StudentName,
				Role:      domain.Role(rows[i].StudentRole),
				Avatar:    util.NullStringToString(rows[i].StudentAvatar),
				CreatedAt: rows[i].StudentCreatedAt,
			},
		}
	}
	return result, nil
}

// Create inserts a new enrollment, assigning ID and EnrolledAt. There is
// no uniqueness constraint on (user, course); repeated enrollments insert
// additional rows. A dangling course or user id surfaces as an invalid
// input error via the foreign key violation.
func (r *sqlxEnrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	id := util.NewULID()
	now := time.Now()

	query := `INSERT INTO enrollments (id, user_id, course_id, progress, enrolled_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query, id, enrollment.UserID, enrollment.CourseID, enrollment.Progress, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.NewInvalidInputError("referenced user or course does not exist")
		}
		return fmt.Errorf("failed to create enrollment: %w", err)
	}

	enrollment.ID = id
	enrollment.EnrolledAt = now
	return nil
}

// UpdateProgress sets the progress of the user's enrollment in a course
// and returns the updated row, or nil, nil when no enrollment exists.
// When duplicate enrollments exist for the pair, all of them move to the
// same progress value and the most recent one is returned.
func (r *sqlxEnrollmentRepository) UpdateProgress(ctx context.Context, userID, courseID string, progress int) (*domain.Enrollment, error) {
	query := `UPDATE enrollments SET progress = $1
		WHERE user_id = $2 AND course_id = $3
		RETURNING id, user_id, course_id, progress, enrolled_at`

	var rows []models.Enrollment
	if err := r.db.SelectContext(ctx, &rows, query, progress, userID, courseID); err != nil {
		return nil, fmt.Errorf("failed to update enrollment progress: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	latest := &rows[0]
	for i := range rows {
		if rows[i].EnrolledAt.After(latest.EnrolledAt) {
			latest = &rows[i]
		}
	}
	return toDomainEnrollment(latest), nil
}

func toDomainEnrollment(m *models.Enrollment) *domain.Enrollment {
	return &domain.Enrollment{
		ID:         m.ID,
		UserID:     m.UserID,
		CourseID:   m.CourseID,
		Progress:   m.Progress,
		EnrolledAt: m.EnrolledAt,
	}
}
