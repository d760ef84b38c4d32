package handler

import (
	"learnhub/internal/domain"
	"learnhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	uploadService service.UploadService
}

func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload stores a multipart file under a generated name.
// @Summary Upload a file
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /api/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.NewInvalidInputError("A file field is required")
	}

	response, err := h.uploadService.Store(fileHeader)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// Serve streams a previously uploaded file.
// @Summary Download an uploaded file
// @Tags uploads
// @Produce octet-stream
// @Param filename path string true "Stored filename"
// @Success 200 {file} binary
// @Failure 404 {object} middleware.ErrorResponse
// @Router /uploads/{filename} [get]
func (h *UploadHandler) Serve(c *fiber.Ctx) error {
	path, err := h.uploadService.Resolve(c.Params("filename"))
	if err != nil {
		return err
	}
	return c.SendFile(path)
}
