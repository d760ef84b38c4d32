package dto

import (
	"encoding/json"
	"time"

	"learnhub/internal/domain"
)

// GenerateQuizRequest represents the request body for quiz generation.
// @Description Request body for generating a quiz on a topic
type GenerateQuizRequest struct {
	Topic      string `json:"topic"`
	Level      string `json:"level"`
	SourceID   string `json:"sourceId,omitempty"`
	SourceType string `json:"sourceType,omitempty"`
}

// GenerateStructureRequest represents the request body for course
// structure generation.
type GenerateStructureRequest struct {
	Title      string `json:"title"`
	Category   string `json:"category"`
	Level      string `json:"level"`
	SourceID   string `json:"sourceId,omitempty"`
	SourceType string `json:"sourceType,omitempty"`
}

// AnalyzeContentRequest represents the request body for the content
// analysis, summary and moderation operations.
type AnalyzeContentRequest struct {
	Content string `json:"content"`
}

// QuizResponse carries the generated questions.
type QuizResponse struct {
	Questions []domain.QuizQuestion `json:"questions"`
}

// SummaryResponse carries a generated summary.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// ModerationResponse carries the moderation verdict.
type ModerationResponse struct {
	Inappropriate bool `json:"inappropriate"`
}

// AiContentResponse represents a stored AI artifact.
// @Description Stored AI-generated artifact
type AiContentResponse struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Content    json.RawMessage `json:"content"`
	SourceID   string          `json:"sourceId,omitempty"`
	SourceType string          `json:"sourceType,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToAiContentResponse converts a stored artifact.
func ToAiContentResponse(c *domain.AiContent) AiContentResponse {
	return AiContentResponse{
		ID:         c.ID,
		Type:       string(c.Type),
		Content:    c.Content,
		SourceID:   c.SourceID,
		SourceType: c.SourceType,
		CreatedAt:  c.CreatedAt,
	}
}
