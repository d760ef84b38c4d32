package handler

import (
	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/service"
	"learnhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type LiveClassHandler struct {
	liveClassService service.LiveClassService
	validator        *validation.Validator
}

func NewLiveClassHandler(liveClassService service.LiveClassService) *LiveClassHandler {
	return &LiveClassHandler{
		liveClassService: liveClassService,
		validator:        validation.NewValidator(),
	}
}

// ListLiveClasses returns all scheduled live classes, soonest first.
// @Summary List live classes
// @Tags live-classes
// @Produce json
// @Success 200 {array} dto.LiveClassListItemResponse
// @Router /api/live-classes [get]
func (h *LiveClassHandler) ListLiveClasses(c *fiber.Ctx) error {
	classes, err := h.liveClassService.ListLiveClasses(c.Context())
	if err != nil {
		return err
	}

	response := make([]dto.LiveClassListItemResponse, len(classes))
	for i := range classes {
		response[i] = dto.ToLiveClassListItemResponse(&classes[i])
	}
	return c.JSON(response)
}

// GetLiveClass returns one live class with its participant list.
// @Summary Get live class detail
// @Tags live-classes
// @Produce json
// @Param id path string true "Live class ID"
// @Success 200 {object} dto.LiveClassDetailResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/live-classes/{id} [get]
func (h *LiveClassHandler) GetLiveClass(c *fiber.Ctx) error {
	detail, err := h.liveClassService.GetLiveClassDetail(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.ToLiveClassDetailResponse(detail))
}

// ListMyLiveClasses returns the caller's scheduled live classes.
// @Summary List own live classes
// @Tags live-classes
// @Produce json
// @Success 200 {array} dto.LiveClassResponse
// @Router /api/my-live-classes [get]
func (h *LiveClassHandler) ListMyLiveClasses(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	classes, err := h.liveClassService.ListInstructorLiveClasses(c.Context(), identity.UserID)
	if err != nil {
		return err
	}

	response := make([]dto.LiveClassResponse, len(classes))
	for i := range classes {
		response[i] = dto.ToLiveClassResponse(&classes[i])
	}
	return c.JSON(response)
}

// CreateLiveClass schedules a live class owned by the caller.
// @Summary Schedule a live class
// @Tags live-classes
// @Accept json
// @Produce json
// @Param request body dto.CreateLiveClassRequest true "Live class details"
// @Success 201 {object} dto.LiveClassResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /api/live-classes [post]
func (h *LiveClassHandler) CreateLiveClass(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.CreateLiveClassRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateCreateLiveClassRequest(&req); len(errs) > 0 {
		return errs
	}

	class, err := h.liveClassService.CreateLiveClass(c.Context(), identity, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToLiveClassResponse(class))
}

// UpdateLiveClass partially updates an owned live class.
// @Summary Update a live class
// @Tags live-classes
// @Accept json
// @Produce json
// @Param id path string true "Live class ID"
// @Param request body dto.UpdateLiveClassRequest true "Fields to update"
// @Success 200 {object} dto.LiveClassResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/live-classes/{id} [put]
func (h *LiveClassHandler) UpdateLiveClass(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.UpdateLiveClassRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	class, err := h.liveClassService.UpdateLiveClass(c.Context(), identity, c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToLiveClassResponse(class))
}

// DeleteLiveClass removes an owned live class.
// @Summary Delete a live class
// @Tags live-classes
// @Produce json
// @Param id path string true "Live class ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/live-classes/{id} [delete]
func (h *LiveClassHandler) DeleteLiveClass(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	if err := h.liveClassService.DeleteLiveClass(c.Context(), identity, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Live class deleted"})
}

// Join registers the caller as a participant.
// @Summary Join a live class
// @Tags live-classes
// @Produce json
// @Param id path string true "Live class ID"
// @Success 201 {object} dto.ParticipantResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/live-classes/{id}/join [post]
func (h *LiveClassHandler) Join(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	participant, err := h.liveClassService.Join(c.Context(), identity, c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ParticipantResponse{
		ID:          participant.ID,
		LiveClassID: participant.LiveClassID,
		UserID:      participant.UserID,
		JoinedAt:    participant.JoinedAt,
	})
}

// Leave removes the caller from the participant list.
// @Summary Leave a live class
// @Tags live-classes
// @Produce json
// @Param id path string true "Live class ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/live-classes/{id}/leave [post]
func (h *LiveClassHandler) Leave(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	if err := h.liveClassService.Leave(c.Context(), identity, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Left live class"})
}
