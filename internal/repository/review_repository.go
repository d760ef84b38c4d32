package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"learnhub/internal/domain"
	"learnhub/internal/repository/models"
	"learnhub/internal/util"

	"github.com/jmoiron/sqlx"
)

type sqlxReviewRepository struct {
	db *sqlx.DB
}

// NewSQLXReviewRepository creates a review repository backed by sqlx.
func NewSQLXReviewRepository(db *sqlx.DB) domain.ReviewRepository {
	return &sqlxReviewRepository{db: db}
}

// reviewWithUserRow is the scan target for review listings joined with
// the author.
type reviewWithUserRow struct {
	models.Review
	AuthorUsername  string         `db:"author_username"`
	AuthorEmail     string         `db:"author_email"`
	AuthorName      string         `db:"author_name"`
	AuthorRole      string         `db:"author_role"`
	AuthorAvatar    sql.NullString `db:"author_avatar"`
	AuthorCreatedAt time.Time      `db:"author_created_at"`
}

// ListByCourse returns the reviews of a course, newest first, each with
// its author.
func (r *sqlxReviewRepository) ListByCourse(ctx context.Context, courseID string) ([]domain.ReviewWithUser, error) {
	return listReviewsByCourse(ctx, r.db, courseID)
}

// listReviewsByCourse is shared with the course detail query.
func listReviewsByCourse(ctx context.Context, db *sqlx.DB, courseID string) ([]domain.ReviewWithUser, error) {
	query := `SELECT r.id, r.user_id, r.course_id, r.rating, r.comment, r.created_at,
			u.username AS author_username, u.email AS author_email, u.name AS author_name,
			u.role AS author_role, u.avatar AS author_avatar, u.created_at AS author_created_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.course_id = $1
		ORDER BY r.created_at DESC`

	var rows []reviewWithUserRow
	if err := db.SelectContext(ctx, &rows, query, courseID); err != nil {
		return nil, fmt.Errorf("failed to list reviews for course %s: %w", courseID, err)
	}

	reviews := make([]domain.ReviewWithUser, len(rows))
	for i := range rows {
		reviews[i] = domain.ReviewWithUser{
			Review: domain.Review{
				ID:        rows[i].ID,
				UserID:    rows[i].UserID,
				CourseID:  rows[i].CourseID,
				Rating:    rows[i].Rating,
				Comment:   util.NullStringToString(rows[i].Comment),
				CreatedAt: rows[i].CreatedAt,
			},
			User: &domain.User{
				ID:        rows[i].UserID,
				Username:  rows[i].AuthorUsername,
				Email:     rows[i].AuthorEmail,
				Name:      rows[i].AuthorName,
				Role:      domain.Role(rows[i].AuthorRole),
				Avatar:    util.NullStringToString(rows[i].AuthorAvatar),
				CreatedAt: rows[i].AuthorCreatedAt,
			},
		}
	}
	return reviews, nil
}

// Create inserts a new review, assigning ID and CreatedAt.
func (r *sqlxReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	id := util.NewULID()
	now := time.Now()

	query := `INSERT INTO reviews (id, user_id, course_id, rating, comment, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		id,
		review.UserID,
		review.CourseID,
		review.Rating,
		util.StringToNullString(review.Comment),
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	review.ID = id
	review.CreatedAt = now
	return nil
}
