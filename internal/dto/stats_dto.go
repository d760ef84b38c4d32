package dto

import "learnhub/internal/domain"

// DashboardStatsResponse carries the platform counts plus per-caller
// counts when present.
// @Description Dashboard statistics
type DashboardStatsResponse struct {
	TotalUsers       int  `json:"totalUsers"`
	TotalCourses     int  `json:"totalCourses"`
	TotalLiveClasses int  `json:"totalLiveClasses"`
	UserCourses      *int `json:"userCourses,omitempty"`
	UserEnrollments  *int `json:"userEnrollments,omitempty"`
}

// ToDashboardStatsResponse converts domain stats.
func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalUsers:       s.TotalUsers,
		TotalCourses:     s.TotalCourses,
		TotalLiveClasses: s.TotalLiveClasses,
		UserCourses:      s.UserCourses,
		UserEnrollments:  s.UserEnrollments,
	}
}

// UploadResponse carries the served URL of a stored file.
// @Description Uploaded file location
type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Mimetype string `json:"mimetype"`
}
