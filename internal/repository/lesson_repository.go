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

	"github.com/jmoiron/sqlx"
)

const lessonColumns = `id, course_id, title, description, video_url, material_url, position, duration, created_at`

type sqlxLessonRepository struct {
	db *sqlx.DB
}

// NewSQLXLessonRepository creates a lesson repository backed by sqlx.
func NewSQLXLessonRepository(db *sqlx.DB) domain.LessonRepository {
	return &sqlxLessonRepository{db: db}
}

// ListByCourse returns the lessons of a course in display order.
func (r *sqlxLessonRepository) ListByCourse(ctx context.Context, courseID string) ([]domain.Lesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE course_id = $1 ORDER BY position ASC`
	var rows []models.Lesson
	if err := r.db.SelectContext(ctx, &rows, query, courseID); err != nil {
		return nil, fmt.Errorf("failed to list lessons for course %s: %w", courseID, err)
	}
	lessons := make([]domain.Lesson, len(rows))
	for i := range rows {
		lessons[i] = *toDomainLesson(&rows[i])
	}
	return lessons, nil
}

// GetByID retrieves a lesson. Returns nil, nil when absent.
func (r *sqlxLessonRepository) GetByID(ctx context.Context, id string) (*domain.Lesson, error) {
	var model models.Lesson
	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE id = $1`
	if err := r.db.GetContext(ctx, &model, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lesson %s: %w", id, err)
	}
	return toDomainLesson(&model), nil
}

// Create inserts a new lesson, assigning ID and CreatedAt.
func (r *sqlxLessonRepository) Create(ctx context.Context, lesson *domain.Lesson) error {
	model := fromDomainLesson(lesson)
	model.ID = util.NewULID()
	model.CreatedAt = time.Now()

	query := `INSERT INTO lessons (id, course_id, title, description, video_url, material_url, position, duration, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		model.ID,
		model.CourseID,
		model.Title,
		model.Description,
		model.VideoURL,
		model.MaterialURL,
		model.Position,
		model.Duration,
		model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}

	lesson.ID = model.ID
	lesson.CreatedAt = model.CreatedAt
	return nil
}

// Update rewrites all mutable columns of the lesson.
func (r *sqlxLessonRepository) Update(ctx context.Context, lesson *domain.Lesson) error {
	model := fromDomainLesson(lesson)

	query := `UPDATE lessons SET title = $1, description = $2, video_url = $3,
			material_url = $4, position = $5, duration = $6
		WHERE id = $7`

	result, err := r.db.ExecContext(ctx, query,
		model.Title,
		model.Description,
		model.VideoURL,
		model.MaterialURL,
		model.Position,
		model.Duration,
		model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update lesson %s: %w", lesson.ID, err)
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

// Delete removes a lesson and reports whether a row was deleted.
func (r *sqlxLessonRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM lessons WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete lesson %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

func toDomainLesson(m *models.Lesson) *domain.Lesson {
	return &domain.Lesson{
		ID:          m.ID,
		CourseID:    m.CourseID,
		Title:       m.Title,
		Description: util.NullStringToString(m.Description),
		VideoURL:    util.NullStringToString(m.VideoURL),
		MaterialURL: util.NullStringToString(m.MaterialURL),
		Position:    m.Position,
		Duration:    util.NullInt64ToInt(m.Duration),
		CreatedAt:   m.CreatedAt,
	}
}

func fromDomainLesson(l *domain.Lesson) *models.Lesson {
	return &models.Lesson{
		ID:          l.ID,
		CourseID:    l.CourseID,
		Title:       l.Title,
		Description: util.StringToNullString(l.Description),
		VideoURL:    util.StringToNullString(l.VideoURL),
		MaterialURL: util.StringToNullString(l.MaterialURL),
		Position:    l.Position,
		Duration:    util.IntToNullInt64(l.Duration),
		CreatedAt:   l.CreatedAt,
	}
}
