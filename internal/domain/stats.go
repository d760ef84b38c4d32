package domain

import "context"

// DashboardStats carries the global platform counts plus per-user counts
// when the caller is known. Recomputed on every call; never cached.
type DashboardStats struct {
	TotalUsers       int
	TotalCourses     int
	TotalLiveClasses int
	UserCourses      *int
	UserEnrollments  *int
}

// StatsRepository exposes the count queries backing the dashboard.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int, error)
	CountCourses(ctx context.Context) (int, error)
	CountLiveClasses(ctx context.Context) (int, error)
	CountCoursesByInstructor(ctx context.Context, instructorID string) (int, error)
	CountEnrollmentsByUser(ctx context.Context, userID string) (int, error)
}
