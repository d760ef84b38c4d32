package service

import (
	"context"
	"encoding/json"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/logger"

	"go.uber.org/zap"
)

// AiService defines the interface for AI content operations. Generation
// results for quizzes and course structures are persisted as artifacts;
// analysis, summary and moderation results are transient.
type AiService interface {
	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) ([]domain.QuizQuestion, error)
	GenerateCourseStructure(ctx context.Context, req *dto.GenerateStructureRequest) (*domain.CourseStructure, error)
	AnalyzeContent(ctx context.Context, content string) (*domain.ContentAnalysis, error)
	GenerateSummary(ctx context.Context, content string) (string, error)
	DetectInappropriateContent(ctx context.Context, content string) (bool, error)
	ListContentBySource(ctx context.Context, sourceID, sourceType string) ([]domain.AiContent, error)
}

type aiService struct {
	generator   domain.ContentGenerator
	contentRepo domain.AiContentRepository
}

// NewAiService creates a new instance of AiService.
func NewAiService(generator domain.ContentGenerator, contentRepo domain.AiContentRepository) AiService {
	return &aiService{
		generator:   generator,
		contentRepo: contentRepo,
	}
}

func (s *aiService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) ([]domain.QuizQuestion, error) {
	questions, err := s.generator.GenerateQuiz(ctx, req.Topic, domain.Level(req.Level))
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx, domain.AiContentQuiz, questions, req.SourceID, req.SourceType); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *aiService) GenerateCourseStructure(ctx context.Context, req *dto.GenerateStructureRequest) (*domain.CourseStructure, error) {
	structure, err := s.generator.GenerateCourseStructure(ctx, req.Title, req.Category, domain.Level(req.Level))
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx, domain.AiContentStructure, structure, req.SourceID, req.SourceType); err != nil {
		return nil, err
	}
	return structure, nil
}

func (s *aiService) AnalyzeContent(ctx context.Context, content string) (*domain.ContentAnalysis, error) {
	return s.generator.AnalyzeContent(ctx, content)
}

func (s *aiService) GenerateSummary(ctx context.Context, content string) (string, error) {
	return s.generator.GenerateSummary(ctx, content)
}

func (s *aiService) DetectInappropriateContent(ctx context.Context, content string) (bool, error) {
	return s.generator.DetectInappropriateContent(ctx, content)
}

func (s *aiService) ListContentBySource(ctx context.Context, sourceID, sourceType string) ([]domain.AiContent, error) {
	contents, err := s.contentRepo.ListBySource(ctx, sourceID, sourceType)
	if err != nil {
		return nil, domain.NewInternalError("failed to list ai contents", err)
	}
	return contents, nil
}

func (s *aiService) persist(ctx context.Context, contentType domain.AiContentType, payload interface{}, sourceID, sourceType string) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return domain.NewInternalError("failed to encode generated content", err)
	}

	artifact := &domain.AiContent{
		Type:       contentType,
		Content:    raw,
		SourceID:   sourceID,
		SourceType: sourceType,
	}
	if err := s.contentRepo.Create(ctx, artifact); err != nil {
		return domain.NewInternalError("failed to store generated content", err)
	}

	logger.Get().Info("AI content stored",
		zap.String("content_id", artifact.ID),
		zap.String("type", string(contentType)),
	)
	return nil
}
