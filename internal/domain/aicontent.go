package domain

import (
	"context"
	"encoding/json"
	"time"
)

// AiContentType tags a stored AI artifact. The payload schema varies by
// type and is validated only at generation time, not at storage time.
type AiContentType string

const (
	AiContentQuiz      AiContentType = "quiz"
	AiContentSummary   AiContentType = "summary"
	AiContentStructure AiContentType = "structure"
)

func (t AiContentType) Valid() bool {
	switch t {
	case AiContentQuiz, AiContentSummary, AiContentStructure:
		return true
	}
	return false
}

// AiContent is an opaque structured artifact produced by the generator,
// loosely referencing a course or lesson by id plus type tag.
type AiContent struct {
	ID         string
	Type       AiContentType
	Content    json.RawMessage
	SourceID   string
	SourceType string // "course" or "lesson", empty when unattached
	CreatedAt  time.Time
}

// QuizQuestion is one generated question with exactly four options and a
// zero-based index into them.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// StructureLesson is one lesson inside a generated course module.
type StructureLesson struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	EstimatedDuration int    `json:"estimatedDuration"` // minutes
}

// StructureModule is one module of a generated course structure.
type StructureModule struct {
	Title   string            `json:"title"`
	Lessons []StructureLesson `json:"lessons"`
}

// CourseStructure is the full generated outline for a course.
type CourseStructure struct {
	Title   string            `json:"title"`
	Modules []StructureModule `json:"modules"`
}

// ContentAnalysis holds improvement suggestions for educational content.
type ContentAnalysis struct {
	Improvements  []string `json:"improvements"`
	MissingTopics []string `json:"missingTopics"`
	Difficulty    string   `json:"difficulty"`
	Score         int      `json:"score"` // 0-100
}

// ContentGenerator produces educational artifacts via an external language
// model. Every operation is a stateless single-shot call: no retry, no
// caching, no shared mutable state between concurrent calls.
type ContentGenerator interface {
	GenerateQuiz(ctx context.Context, topic string, level Level) ([]QuizQuestion, error)
	GenerateCourseStructure(ctx context.Context, title, category string, level Level) (*CourseStructure, error)
	AnalyzeContent(ctx context.Context, content string) (*ContentAnalysis, error)
	GenerateSummary(ctx context.Context, content string) (string, error)
	// DetectInappropriateContent fails open: on any transport or parse
	// error it reports the content as appropriate instead of surfacing
	// the error. Flipping this to fail-closed would change product
	// behavior from admit-on-error to block-on-error.
	DetectInappropriateContent(ctx context.Context, content string) (bool, error)
}

// AiContentRepository defines persistence for generated artifacts.
type AiContentRepository interface {
	Create(ctx context.Context, content *AiContent) error
	ListBySource(ctx context.Context, sourceID, sourceType string) ([]AiContent, error)
}
