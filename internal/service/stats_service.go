package service

import (
	"context"

	"learnhub/internal/domain"

	"golang.org/x/sync/errgroup"
)

// StatsService assembles dashboard statistics. Counts are recomputed on
// every call; the dashboard is never served from a cache.
type StatsService interface {
	// GetDashboardStats returns the global counts, plus per-user counts
	// when an identity is given.
	GetDashboardStats(ctx context.Context, identity *domain.Identity) (*domain.DashboardStats, error)
}

type statsService struct {
	statsRepo domain.StatsRepository
}

// NewStatsService creates a new instance of StatsService.
func NewStatsService(statsRepo domain.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetDashboardStats(ctx context.Context, identity *domain.Identity) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.statsRepo.CountUsers(gctx)
		stats.TotalUsers = n
		return err
	})
	g.Go(func() error {
		n, err := s.statsRepo.CountCourses(gctx)
		stats.TotalCourses = n
		return err
	})
	g.Go(func() error {
		n, err := s.statsRepo.CountLiveClasses(gctx)
		stats.TotalLiveClasses = n
		return err
	})

	if identity != nil {
		userID := identity.UserID
		g.Go(func() error {
			n, err := s.statsRepo.CountCoursesByInstructor(gctx, userID)
			stats.UserCourses = &n
			return err
		})
		g.Go(func() error {
			n, err := s.statsRepo.CountEnrollmentsByUser(gctx, userID)
			stats.UserEnrollments = &n
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("failed to compute dashboard stats", err)
	}
	return stats, nil
}
