package domain

import (
	"context"
	"time"
)

// Platform is the closed set of external video-conferencing platforms a
// live class can be hosted on. The platform is referenced by URL only.
type Platform string

const (
	PlatformGoogleMeet Platform = "google_meet"
	PlatformZoom       Platform = "zoom"
	PlatformTeams      Platform = "teams"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformGoogleMeet, PlatformZoom, PlatformTeams:
		return true
	}
	return false
}

// LiveClass is a scheduled synchronous session hosted by an instructor.
type LiveClass struct {
	ID              string
	Title           string
	Description     string
	InstructorID    string
	ScheduledAt     time.Time
	Duration        int // minutes
	Platform        Platform
	MeetingURL      string
	MaxParticipants int
	CreatedAt       time.Time
}

func (lc *LiveClass) Validate() error {
	var errs ValidationErrors
	if lc.Title == "" {
		errs = append(errs, NewMissingFieldError("title"))
	}
	if lc.InstructorID == "" {
		errs = append(errs, NewMissingFieldError("instructor_id"))
	}
	if lc.ScheduledAt.IsZero() {
		errs = append(errs, NewMissingFieldError("scheduled_at"))
	}
	if lc.Duration <= 0 {
		errs = append(errs, NewInvalidFieldError("duration", "must be a positive number of minutes"))
	}
	if !lc.Platform.Valid() {
		errs = append(errs, NewInvalidFieldError("platform", "must be one of google_meet, zoom, teams"))
	}
	if lc.MaxParticipants <= 0 {
		errs = append(errs, NewInvalidFieldError("max_participants", "must be positive"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LiveClassParticipant records a user having joined a live class.
type LiveClassParticipant struct {
	ID          string
	LiveClassID string
	UserID      string
	JoinedAt    time.Time
}

// LiveClassWithCount annotates a live class with its instructor and the
// number of participants.
type LiveClassWithCount struct {
	LiveClass
	Instructor       *User
	ParticipantCount int
}

// ParticipantWithUser annotates a participant row with the user record.
type ParticipantWithUser struct {
	LiveClassParticipant
	User *User
}

// LiveClassDetail is a live class with instructor and full participant list.
type LiveClassDetail struct {
	LiveClass
	Instructor   *User
	Participants []ParticipantWithUser
}

// LiveClassRepository defines persistence for live classes and participants.
type LiveClassRepository interface {
	// ListWithCounts returns all live classes ordered by scheduled time
	// ascending, annotated with instructor and participant counts.
	ListWithCounts(ctx context.Context) ([]LiveClassWithCount, error)
	GetDetail(ctx context.Context, id string) (*LiveClassDetail, error)
	GetByID(ctx context.Context, id string) (*LiveClass, error)
	ListByInstructor(ctx context.Context, instructorID string) ([]LiveClass, error)
	Create(ctx context.Context, class *LiveClass) error
	Update(ctx context.Context, class *LiveClass) error
	Delete(ctx context.Context, id string) (bool, error)
	AddParticipant(ctx context.Context, participant *LiveClassParticipant) error
	RemoveParticipant(ctx context.Context, liveClassID, userID string) (bool, error)
}
