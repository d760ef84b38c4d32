package handler

import (
	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/service"
	"learnhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AiHandler struct {
	aiService service.AiService
	validator *validation.Validator
}

func NewAiHandler(aiService service.AiService) *AiHandler {
	return &AiHandler{
		aiService: aiService,
		validator: validation.NewValidator(),
	}
}

// GenerateQuiz generates a quiz for a topic and stores the artifact.
// @Summary Generate a quiz
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Quiz parameters"
// @Success 200 {object} dto.QuizResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/ai/generate-quiz [post]
func (h *AiHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateGenerateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	questions, err := h.aiService.GenerateQuiz(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(dto.QuizResponse{Questions: questions})
}

// GenerateStructure generates a course outline and stores the artifact.
// @Summary Generate a course structure
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.GenerateStructureRequest true "Structure parameters"
// @Success 200 {object} domain.CourseStructure
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/ai/generate-structure [post]
func (h *AiHandler) GenerateStructure(c *fiber.Ctx) error {
	var req dto.GenerateStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateGenerateStructureRequest(&req); len(errs) > 0 {
		return errs
	}

	structure, err := h.aiService.GenerateCourseStructure(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(structure)
}

// AnalyzeContent returns improvement suggestions for submitted content.
// @Summary Analyze educational content
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeContentRequest true "Content to analyze"
// @Success 200 {object} domain.ContentAnalysis
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/ai/analyze-content [post]
func (h *AiHandler) AnalyzeContent(c *fiber.Ctx) error {
	var req dto.AnalyzeContentRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateContentRequest(&req); len(errs) > 0 {
		return errs
	}

	analysis, err := h.aiService.AnalyzeContent(c.Context(), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(analysis)
}

// GenerateSummary summarizes submitted content. The result is not stored.
// @Summary Summarize content
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeContentRequest true "Content to summarize"
// @Success 200 {object} dto.SummaryResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/ai/generate-summary [post]
func (h *AiHandler) GenerateSummary(c *fiber.Ctx) error {
	var req dto.AnalyzeContentRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateContentRequest(&req); len(errs) > 0 {
		return errs
	}

	summary, err := h.aiService.GenerateSummary(c.Context(), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(dto.SummaryResponse{Summary: summary})
}

// ModerateContent reports whether submitted content is inappropriate.
// @Summary Moderate content
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeContentRequest true "Content to moderate"
// @Success 200 {object} dto.ModerationResponse
// @Router /api/ai/moderate-content [post]
func (h *AiHandler) ModerateContent(c *fiber.Ctx) error {
	var req dto.AnalyzeContentRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateContentRequest(&req); len(errs) > 0 {
		return errs
	}

	inappropriate, err := h.aiService.DetectInappropriateContent(c.Context(), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(dto.ModerationResponse{Inappropriate: inappropriate})
}

// ListContent returns stored artifacts for a course or lesson.
// @Summary List stored AI artifacts
// @Tags ai
// @Produce json
// @Param sourceId query string true "Course or lesson ID"
// @Param sourceType query string true "Source type (course or lesson)"
// @Success 200 {array} dto.AiContentResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /api/ai/content [get]
func (h *AiHandler) ListContent(c *fiber.Ctx) error {
	sourceID := c.Query("sourceId")
	sourceType := c.Query("sourceType")
	if sourceID == "" || sourceType == "" {
		return domain.NewInvalidInputError("sourceId and sourceType are required")
	}
	if sourceType != "course" && sourceType != "lesson" {
		return domain.NewInvalidInputError("sourceType must be course or lesson")
	}

	contents, err := h.aiService.ListContentBySource(c.Context(), sourceID, sourceType)
	if err != nil {
		return err
	}

	response := make([]dto.AiContentResponse, len(contents))
	for i := range contents {
		response[i] = dto.ToAiContentResponse(&contents[i])
	}
	return c.JSON(response)
}
