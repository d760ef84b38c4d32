package dto

import (
	"time"

	"learnhub/internal/domain"
)

// CreateLiveClassRequest represents the request body for scheduling a
// live class.
// @Description Request body for scheduling a live class
type CreateLiveClassRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	Duration        int       `json:"duration"`
	Platform        string    `json:"platform"`
	MeetingURL      string    `json:"meetingUrl,omitempty"`
	MaxParticipants int       `json:"maxParticipants,omitempty"`
}

// UpdateLiveClassRequest uses pointers for partial updates.
type UpdateLiveClassRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	ScheduledAt     *time.Time `json:"scheduledAt"`
	Duration        *int       `json:"duration"`
	Platform        *string    `json:"platform"`
	MeetingURL      *string    `json:"meetingUrl"`
	MaxParticipants *int       `json:"maxParticipants"`
}

// LiveClassResponse represents a live class in the API response.
// @Description Live class information
type LiveClassResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	InstructorID    string    `json:"instructorId"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	Duration        int       `json:"duration"`
	Platform        string    `json:"platform"`
	MeetingURL      string    `json:"meetingUrl,omitempty"`
	MaxParticipants int       `json:"maxParticipants"`
	CreatedAt       time.Time `json:"createdAt"`
}

// LiveClassListItemResponse annotates a live class with its instructor
// and participant count.
type LiveClassListItemResponse struct {
	LiveClassResponse
	Instructor       *UserResponse `json:"instructor,omitempty"`
	ParticipantCount int           `json:"participantCount"`
}

// ParticipantResponse represents a participant row with the user.
type ParticipantResponse struct {
	ID          string        `json:"id"`
	LiveClassID string        `json:"liveClassId"`
	UserID      string        `json:"userId"`
	JoinedAt    time.Time     `json:"joinedAt"`
	User        *UserResponse `json:"user,omitempty"`
}

// LiveClassDetailResponse is a live class with instructor and the full
// participant list.
type LiveClassDetailResponse struct {
	LiveClassResponse
	Instructor   *UserResponse         `json:"instructor,omitempty"`
	Participants []ParticipantResponse `json:"participants"`
}

// ToLiveClassResponse converts a domain live class.
func ToLiveClassResponse(lc *domain.LiveClass) LiveClassResponse {
	return LiveClassResponse{
		ID:              lc.ID,
		Title:           lc.Title,
		Description:     lc.Description,
		InstructorID:    lc.InstructorID,
		ScheduledAt:     lc.ScheduledAt,
		Duration:        lc.Duration,
		Platform:        string(lc.Platform),
		MeetingURL:      lc.MeetingURL,
		MaxParticipants: lc.MaxParticipants,
		CreatedAt:       lc.CreatedAt,
	}
}

// ToLiveClassListItemResponse converts an annotated live class.
func ToLiveClassListItemResponse(lc *domain.LiveClassWithCount) LiveClassListItemResponse {
	return LiveClassListItemResponse{
		LiveClassResponse: ToLiveClassResponse(&lc.LiveClass),
		Instructor:        ToUserResponse(lc.Instructor),
		ParticipantCount:  lc.ParticipantCount,
	}
}

// ToLiveClassDetailResponse converts a live class detail aggregate.
func ToLiveClassDetailResponse(d *domain.LiveClassDetail) LiveClassDetailResponse {
	participants := make([]ParticipantResponse, len(d.Participants))
	for i := range d.Participants {
		participants[i] = ParticipantResponse{
			ID:          d.Participants[i].ID,
			LiveClassID: d.Participants[i].LiveClassID,
			UserID:      d.Participants[i].UserID,
			JoinedAt:    d.Participants[i].JoinedAt,
			User:        ToUserResponse(d.Participants[i].User),
		}
	}
	return LiveClassDetailResponse{
		LiveClassResponse: ToLiveClassResponse(&d.LiveClass),
		Instructor:        ToUserResponse(d.Instructor),
		Participants:      participants,
	}
}
