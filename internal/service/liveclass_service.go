package service

import (
	"context"
	"errors"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/logger"

	"go.uber.org/zap"
)

// defaultMaxParticipants applies when a live class is scheduled without
// an explicit capacity.
const defaultMaxParticipants = 50

// LiveClassService defines the interface for live class operations.
type LiveClassService interface {
	ListLiveClasses(ctx context.Context) ([]domain.LiveClassWithCount, error)
	GetLiveClassDetail(ctx context.Context, id string) (*domain.LiveClassDetail, error)
	ListInstructorLiveClasses(ctx context.Context, instructorID string) ([]domain.LiveClass, error)
	CreateLiveClass(ctx context.Context, identity domain.Identity, req *dto.CreateLiveClassRequest) (*domain.LiveClass, error)
	UpdateLiveClass(ctx context.Context, identity domain.Identity, id string, req *dto.UpdateLiveClassRequest) (*domain.LiveClass, error)
	DeleteLiveClass(ctx context.Context, identity domain.Identity, id string) error
	Join(ctx context.Context, identity domain.Identity, id string) (*domain.LiveClassParticipant, error)
	Leave(ctx context.Context, identity domain.Identity, id string) error
}

type liveClassService struct {
	liveClassRepo domain.LiveClassRepository
}

// NewLiveClassService creates a new instance of LiveClassService.
func NewLiveClassService(liveClassRepo domain.LiveClassRepository) LiveClassService {
	return &liveClassService{liveClassRepo: liveClassRepo}
}

func (s *liveClassService) ListLiveClasses(ctx context.Context) ([]domain.LiveClassWithCount, error) {
	classes, err := s.liveClassRepo.ListWithCounts(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list live classes", err)
	}
	return classes, nil
}

func (s *liveClassService) GetLiveClassDetail(ctx context.Context, id string) (*domain.LiveClassDetail, error) {
	detail, err := s.liveClassRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get live class", err)
	}
	if detail == nil {
		return nil, domain.NewNotFoundError("Live class not found")
	}
	return detail, nil
}

func (s *liveClassService) ListInstructorLiveClasses(ctx context.Context, instructorID string) ([]domain.LiveClass, error) {
	classes, err := s.liveClassRepo.ListByInstructor(ctx, instructorID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list instructor live classes", err)
	}
	return classes, nil
}

func (s *liveClassService) CreateLiveClass(ctx context.Context, identity domain.Identity, req *dto.CreateLiveClassRequest) (*domain.LiveClass, error) {
	if !identity.Role.Can(domain.ActionScheduleLiveClass) {
		return nil, domain.NewForbiddenError("Only instructors can schedule live classes")
	}

	maxParticipants := req.MaxParticipants
	if maxParticipants == 0 {
		maxParticipants = defaultMaxParticipants
	}

	class := &domain.LiveClass{
		Title:           req.Title,
		Description:     req.Description,
		InstructorID:    identity.UserID,
		ScheduledAt:     req.ScheduledAt,
		Duration:        req.Duration,
		Platform:        domain.Platform(req.Platform),
		MeetingURL:      req.MeetingURL,
		MaxParticipants: maxParticipants,
	}
	if err := class.Validate(); err != nil {
		return nil, err
	}

	if err := s.liveClassRepo.Create(ctx, class); err != nil {
		return nil, domain.NewInternalError("failed to create live class", err)
	}

	logger.Get().Info("Live class scheduled",
		zap.String("live_class_id", class.ID),
		zap.String("instructor_id", class.InstructorID),
		zap.Time("scheduled_at", class.ScheduledAt),
	)
	return class, nil
}

func (s *liveClassService) UpdateLiveClass(ctx context.Context, identity domain.Identity, id string, req *dto.UpdateLiveClassRequest) (*domain.LiveClass, error) {
	class, err := s.ownedLiveClass(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		class.Title = *req.Title
	}
	if req.Description != nil {
		class.Description = *req.Description
	}
	if req.ScheduledAt != nil {
		class.ScheduledAt = *req.ScheduledAt
	}
	if req.Duration != nil {
		class.Duration = *req.Duration
	}
	if req.Platform != nil {
		class.Platform = domain.Platform(*req.Platform)
	}
	if req.MeetingURL != nil {
		class.MeetingURL = *req.MeetingURL
	}
	if req.MaxParticipants != nil {
		class.MaxParticipants = *req.MaxParticipants
	}
	if err := class.Validate(); err != nil {
		return nil, err
	}

	if err := s.liveClassRepo.Update(ctx, class); err != nil {
		return nil, domain.NewInternalError("failed to update live class", err)
	}
	return class, nil
}

func (s *liveClassService) DeleteLiveClass(ctx context.Context, identity domain.Identity, id string) error {
	if _, err := s.ownedLiveClass(ctx, identity, id); err != nil {
		return err
	}

	deleted, err := s.liveClassRepo.Delete(ctx, id)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return err
		}
		return domain.NewInternalError("failed to delete live class", err)
	}
	if !deleted {
		return domain.NewNotFoundError("Live class not found")
	}
	return nil
}

// Join adds the caller to a live class, refusing once the participant
// count has reached the class capacity.
func (s *liveClassService) Join(ctx context.Context, identity domain.Identity, id string) (*domain.LiveClassParticipant, error) {
	detail, err := s.liveClassRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get live class", err)
	}
	if detail == nil {
		return nil, domain.NewNotFoundError("Live class not found")
	}

	if len(detail.Participants) >= detail.MaxParticipants {
		return nil, domain.NewInvalidInputError("Live class is full")
	}
	for _, p := range detail.Participants {
		if p.UserID == identity.UserID {
			return nil, domain.NewInvalidInputError("Already joined this live class")
		}
	}

	participant := &domain.LiveClassParticipant{
		LiveClassID: id,
		UserID:      identity.UserID,
	}
	if err := s.liveClassRepo.AddParticipant(ctx, participant); err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to join live class", err)
	}

	logger.Get().Info("User joined live class",
		zap.String("user_id", identity.UserID),
		zap.String("live_class_id", id),
	)
	return participant, nil
}

func (s *liveClassService) Leave(ctx context.Context, identity domain.Identity, id string) error {
	removed, err := s.liveClassRepo.RemoveParticipant(ctx, id, identity.UserID)
	if err != nil {
		return domain.NewInternalError("failed to leave live class", err)
	}
	if !removed {
		return domain.NewNotFoundError("Participation not found")
	}
	return nil
}

func (s *liveClassService) ownedLiveClass(ctx context.Context, identity domain.Identity, id string) (*domain.LiveClass, error) {
	class, err := s.liveClassRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get live class", err)
	}
	if class == nil {
		return nil, domain.NewNotFoundError("Live class not found")
	}
	if !identity.CanModifyResource(class.InstructorID) {
		return nil, domain.NewForbiddenError("You do not own this live class")
	}
	return class, nil
}
