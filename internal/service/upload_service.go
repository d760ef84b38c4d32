package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"learnhub/internal/config"
	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/logger"
	"learnhub/internal/util"

	"go.uber.org/zap"
)

// allowedUploadTypes is the closed set of accepted upload MIME types:
// course videos, PDF materials and images.
var allowedUploadTypes = map[string]bool{
	"video/mp4":        true,
	"video/avi":        true,
	"video/quicktime":  true,
	"video/x-matroska": true,
	"application/pdf":  true,
	"image/jpeg":       true,
	"image/png":        true,
	"image/gif":        true,
}

// UploadService stores course material files on local disk and resolves
// stored filenames for serving.
type UploadService interface {
	// Store validates and persists an uploaded file, returning its
	// served location. Files are renamed to a ULID; the original name
	// only contributes its extension.
	Store(fileHeader *multipart.FileHeader) (*dto.UploadResponse, error)
	// Resolve maps a stored filename to its path on disk, rejecting
	// anything that would escape the upload directory.
	Resolve(filename string) (string, error)
}

type uploadService struct {
	cfg config.UploadConfig
}

// NewUploadService creates a new instance of UploadService, creating the
// upload directory if needed.
func NewUploadService(cfg config.UploadConfig) (UploadService, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &uploadService{cfg: cfg}, nil
}

func (s *uploadService) Store(fileHeader *multipart.FileHeader) (*dto.UploadResponse, error) {
	if fileHeader.Size > s.cfg.MaxSizeBytes {
		return nil, domain.NewInvalidInputError(
			fmt.Sprintf("File exceeds the maximum size of %d bytes", s.cfg.MaxSizeBytes))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedUploadTypes[contentType] {
		return nil, domain.NewInvalidInputError("Unsupported file type: " + contentType)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := util.NewULID() + ext
	destination := filepath.Join(s.cfg.Dir, filename)

	src, err := fileHeader.Open()
	if err != nil {
		return nil, domain.NewInternalError("failed to open uploaded file", err)
	}
	defer src.Close()

	dst, err := os.Create(destination)
	if err != nil {
		return nil, domain.NewInternalError("failed to create file", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(destination)
		return nil, domain.NewInternalError("failed to write file", err)
	}

	logger.Get().Info("File uploaded",
		zap.String("filename", filename),
		zap.String("content_type", contentType),
		zap.Int64("size", fileHeader.Size),
	)

	return &dto.UploadResponse{
		URL:      "/uploads/" + filename,
		Filename: filename,
		Size:     fileHeader.Size,
		Mimetype: contentType,
	}, nil
}

func (s *uploadService) Resolve(filename string) (string, error) {
	// A stored name never contains a path separator; anything else is a
	// traversal attempt.
	if filename == "" || filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		return "", domain.NewInvalidInputError("Invalid filename")
	}

	path := filepath.Join(s.cfg.Dir, filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", domain.NewNotFoundError("File not found")
		}
		return "", domain.NewInternalError("failed to stat file", err)
	}
	return path, nil
}
