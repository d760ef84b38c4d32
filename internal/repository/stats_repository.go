package repository

import (
	"context"
	"fmt"

	"learnhub/internal/domain"

	"github.com/jmoiron/sqlx"
)

type sqlxStatsRepository struct {
	db *sqlx.DB
}

// NewSQLXStatsRepository creates a stats repository backed by sqlx.
// Every count hits the database; dashboard numbers are never cached.
func NewSQLXStatsRepository(db *sqlx.DB) domain.StatsRepository {
	return &sqlxStatsRepository{db: db}
}

func (r *sqlxStatsRepository) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *sqlxStatsRepository) CountCourses(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM courses`)
}

func (r *sqlxStatsRepository) CountLiveClasses(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM live_classes`)
}

func (r *sqlxStatsRepository) CountCoursesByInstructor(ctx context.Context, instructorID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM courses WHERE instructor_id = $1`, instructorID)
}

func (r *sqlxStatsRepository) CountEnrollmentsByUser(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM enrollments WHERE user_id = $1`, userID)
}

func (r *sqlxStatsRepository) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return n, nil
}
