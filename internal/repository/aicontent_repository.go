package repository

import (
	"context"
	"fmt"
	"time"

	"learnhub/internal/domain"
	"learnhub/internal/repository/models"
	"learnhub/internal/util"

	"github.com/jmoiron/sqlx"
)

type sqlxAiContentRepository struct {
	db *sqlx.DB
}

// NewSQLXAiContentRepository creates an AI content repository backed by sqlx.
func NewSQLXAiContentRepository(db *sqlx.DB) domain.AiContentRepository {
	return &sqlxAiContentRepository{db: db}
}

// Create persists a generated artifact, assigning ID and CreatedAt. The
// content payload is stored opaquely; its schema is fixed at generation
// time and never re-validated here.
func (r *sqlxAiContentRepository) Create(ctx context.Context, content *domain.AiContent) error {
	id := util.NewULID()
	now := time.Now()

	query := `INSERT INTO ai_contents (id, type, content, source_id, source_type, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		id,
		string(content.Type),
		[]byte(content.Content),
		util.StringToNullString(content.SourceID),
		util.StringToNullString(content.SourceType),
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create ai content: %w", err)
	}

	content.ID = id
	content.CreatedAt = now
	return nil
}

// ListBySource returns stored artifacts for a source reference, newest
// first.
func (r *sqlxAiContentRepository) ListBySource(ctx context.Context, sourceID, sourceType string) ([]domain.AiContent, error) {
	query := `SELECT id, type, content, source_id, source_type, created_at
		FROM ai_contents
		WHERE source_id = $1 AND source_type = $2
		ORDER BY created_at DESC`

	var rows []models.AiContent
	if err := r.db.SelectContext(ctx, &rows, query, sourceID, sourceType); err != nil {
		return nil, fmt.Errorf("failed to list ai contents for source %s/%s: %w", sourceType, sourceID, err)
	}

	contents := make([]domain.AiContent, len(rows))
	for i := range rows {
		contents[i] = domain.AiContent{
			ID:         rows[i].ID,
			Type:       domain.AiContentType(rows[i].Type),
			Content:    rows[i].Content,
			SourceID:   util.NullStringToString(rows[i].SourceID),
			SourceType: util.NullStringToString(rows[i].SourceType),
			CreatedAt:  rows[i].CreatedAt,
		}
	}
	return contents, nil
}
