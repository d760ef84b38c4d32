package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"learnhub/internal/config"
	"learnhub/internal/domain"
	"learnhub/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// openAIGenerator implements domain.ContentGenerator with a single-shot
// prompt-and-parse call per operation. There is no retry, no backoff and
// no result caching; each call stands alone.
type openAIGenerator struct {
	llm     llms.Model
	timeout time.Duration
}

// NewOpenAIGenerator builds a generator backed by the OpenAI chat API.
func NewOpenAIGenerator(cfg config.OpenAIConfig) (domain.ContentGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is not configured")
	}
	model, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}
	return NewGenerator(model, cfg.Timeout), nil
}

// NewGenerator wraps an existing llms.Model. Used by tests to substitute
// a fake model.
func NewGenerator(model llms.Model, timeout time.Duration) domain.ContentGenerator {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &openAIGenerator{llm: model, timeout: timeout}
}

func (g *openAIGenerator) GenerateQuiz(ctx context.Context, topic string, level domain.Level) ([]domain.QuizQuestion, error) {
	prompt := fmt.Sprintf(`Crie um quiz de 5 perguntas sobre "%s" para nível %s em português brasileiro.
Responda em formato JSON com o seguinte schema:
{
  "questions": [
    {
      "question": "pergunta aqui",
      "options": ["opção A", "opção B", "opção C", "opção D"],
      "correctAnswer": 0,
      "explanation": "explicação da resposta correta"
    }
  ]
}`, topic, level)

	response, err := g.call(ctx, prompt, llms.WithJSONMode())
	if err != nil {
		return nil, domain.NewGenerationError(err)
	}

	var result struct {
		Questions []domain.QuizQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(cleanJSONResponse(response)), &result); err != nil {
		return nil, domain.NewGenerationError(fmt.Errorf("failed to parse quiz response: %w", err))
	}
	if result.Questions == nil {
		return []domain.QuizQuestion{}, nil
	}
	return result.Questions, nil
}

func (g *openAIGenerator) GenerateCourseStructure(ctx context.Context, title, category string, level domain.Level) (*domain.CourseStructure, error) {
	prompt := fmt.Sprintf(`Crie uma estrutura completa de curso para "%s" na categoria "%s" para nível %s.
O curso deve ter 3-5 módulos, cada módulo com 3-6 aulas. Responda em português brasileiro.
Responda em formato JSON com o seguinte schema:
{
  "title": "título do curso",
  "modules": [
    {
      "title": "nome do módulo",
      "lessons": [
        {
          "title": "título da aula",
          "description": "descrição da aula",
          "estimatedDuration": 30
        }
      ]
    }
  ]
}`, title, category, level)

	response, err := g.call(ctx, prompt, llms.WithJSONMode())
	if err != nil {
		return nil, domain.NewGenerationError(err)
	}

	var structure domain.CourseStructure
	if err := json.Unmarshal([]byte(cleanJSONResponse(response)), &structure); err != nil {
		return nil, domain.NewGenerationError(fmt.Errorf("failed to parse course structure response: %w", err))
	}
	return &structure, nil
}

func (g *openAIGenerator) AnalyzeContent(ctx context.Context, content string) (*domain.ContentAnalysis, error) {
	prompt := fmt.Sprintf(`Analise o seguinte conteúdo educacional e forneça sugestões de melhoria:
"%s"

Responda em português brasileiro no formato JSON:
{
  "improvements": ["sugestão 1", "sugestão 2"],
  "missingTopics": ["tópico ausente 1", "tópico ausente 2"],
  "difficulty": "iniciante|intermediario|avancado",
  "score": 85
}`, content)

	response, err := g.call(ctx, prompt, llms.WithJSONMode())
	if err != nil {
		return nil, domain.NewGenerationError(err)
	}

	var analysis domain.ContentAnalysis
	if err := json.Unmarshal([]byte(cleanJSONResponse(response)), &analysis); err != nil {
		return nil, domain.NewGenerationError(fmt.Errorf("failed to parse content analysis response: %w", err))
	}
	return &analysis, nil
}

func (g *openAIGenerator) GenerateSummary(ctx context.Context, content string) (string, error) {
	prompt := fmt.Sprintf(`Crie um resumo conciso e didático do seguinte conteúdo educacional em português brasileiro:
"%s"`, content)

	response, err := g.call(ctx, prompt)
	if err != nil {
		return "", domain.NewGenerationError(err)
	}
	return strings.TrimSpace(response), nil
}

// DetectInappropriateContent fails open: a transport or parse failure
// admits the content rather than blocking it.
func (g *openAIGenerator) DetectInappropriateContent(ctx context.Context, content string) (bool, error) {
	prompt := fmt.Sprintf(`Analise se o seguinte conteúdo contém material inadequado para uma plataforma educacional (spam, ofensivo, plágio óbvio, etc.):
"%s"

Responda apenas "true" se inadequado ou "false" se apropriado.`, content)

	response, err := g.call(ctx, prompt)
	if err != nil {
		logger.Get().Warn("Moderation call failed, admitting content", zap.Error(err))
		return false, nil
	}
	return strings.EqualFold(strings.TrimSpace(response), "true"), nil
}

// call issues one prompt with the transport timeout applied.
func (g *openAIGenerator) call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	response, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, options...)
	if err != nil {
		return "", err
	}
	return response, nil
}

// cleanJSONResponse strips markdown code fences some models wrap around
// JSON payloads.
func cleanJSONResponse(response string) string {
	s := strings.TrimSpace(response)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
