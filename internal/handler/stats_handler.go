package handler

import (
	"learnhub/internal/dto"
	"learnhub/internal/middleware"
	"learnhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetDashboardStats returns platform counts plus the caller's own
// authored-course and enrollment counts.
// @Summary Dashboard statistics
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /api/dashboard/stats [get]
func (h *StatsHandler) GetDashboardStats(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)

	stats, err := h.statsService.GetDashboardStats(c.Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToDashboardStatsResponse(stats))
}
