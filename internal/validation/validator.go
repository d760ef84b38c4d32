package validation

import (
	"regexp"
	"strings"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
)

// Validator provides request validation functionality.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRegisterRequest validates the account creation request.
func (v *Validator) ValidateRegisterRequest(req *dto.RegisterRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Username) == "" {
		errors = append(errors, domain.NewMissingFieldError("username"))
	} else if len(req.Username) < 3 || len(req.Username) > 50 {
		errors = append(errors, domain.NewInvalidFieldError("username", "must be between 3 and 50 characters"))
	}

	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	} else if !isValidEmail(req.Email) {
		errors = append(errors, domain.NewInvalidFieldError("email", "must be a valid email address"))
	}

	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	} else if len(req.Password) < 6 {
		errors = append(errors, domain.NewInvalidFieldError("password", "must be at least 6 characters"))
	}

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	}

	if req.Role != "" && !domain.Role(req.Role).Valid() {
		errors = append(errors, domain.NewInvalidFieldError("role", "must be one of aluno, professor, equipe, admin"))
	}

	return errors
}

// ValidateLoginRequest validates the login request.
func (v *Validator) ValidateLoginRequest(req *dto.LoginRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Username) == "" {
		errors = append(errors, domain.NewMissingFieldError("username"))
	}
	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	}

	return errors
}

// ValidateCreateCourseRequest validates the course creation request.
func (v *Validator) ValidateCreateCourseRequest(req *dto.CreateCourseRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	}
	if strings.TrimSpace(req.Description) == "" {
		errors = append(errors, domain.NewMissingFieldError("description"))
	}
	if strings.TrimSpace(req.Category) == "" {
		errors = append(errors, domain.NewMissingFieldError("category"))
	}
	if !domain.Level(req.Level).Valid() {
		errors = append(errors, domain.NewInvalidFieldError("level", "must be one of iniciante, intermediario, avancado"))
	}
	if req.Price < 0 {
		errors = append(errors, domain.NewInvalidFieldError("price", "must not be negative"))
	}
	if req.Duration < 0 {
		errors = append(errors, domain.NewInvalidFieldError("duration", "must not be negative"))
	}

	return errors
}

// ValidateCreateLessonRequest validates the lesson creation request.
func (v *Validator) ValidateCreateLessonRequest(req *dto.CreateLessonRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	}
	if req.Order < 0 {
		errors = append(errors, domain.NewInvalidFieldError("order", "must not be negative"))
	}
	if req.Duration < 0 {
		errors = append(errors, domain.NewInvalidFieldError("duration", "must not be negative"))
	}

	return errors
}

// ValidateCreateReviewRequest validates the review creation request.
func (v *Validator) ValidateCreateReviewRequest(req *dto.CreateReviewRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Rating < 1 || req.Rating > 5 {
		errors = append(errors, domain.NewOutOfRangeError("rating", 1, 5))
	}
	if len(req.Comment) > 2000 {
		errors = append(errors, domain.NewInvalidFieldError("comment", "must not exceed 2000 characters"))
	}

	return errors
}

// ValidateProgressRequest validates the progress update request.
func (v *Validator) ValidateProgressRequest(req *dto.UpdateProgressRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Progress < 0 || req.Progress > 100 {
		errors = append(errors, domain.NewOutOfRangeError("progress", 0, 100))
	}

	return errors
}

// ValidateCreateLiveClassRequest validates the live class scheduling
// request.
func (v *Validator) ValidateCreateLiveClassRequest(req *dto.CreateLiveClassRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	}
	if req.ScheduledAt.IsZero() {
		errors = append(errors, domain.NewMissingFieldError("scheduledAt"))
	}
	if req.Duration <= 0 {
		errors = append(errors, domain.NewInvalidFieldError("duration", "must be a positive number of minutes"))
	}
	if !domain.Platform(req.Platform).Valid() {
		errors = append(errors, domain.NewInvalidFieldError("platform", "must be one of google_meet, zoom, teams"))
	}
	if req.MaxParticipants < 0 {
		errors = append(errors, domain.NewInvalidFieldError("maxParticipants", "must not be negative"))
	}

	return errors
}

// ValidateGenerateQuizRequest validates the quiz generation request.
func (v *Validator) ValidateGenerateQuizRequest(req *dto.GenerateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Topic) == "" {
		errors = append(errors, domain.NewMissingFieldError("topic"))
	}
	if !domain.Level(req.Level).Valid() {
		errors = append(errors, domain.NewInvalidFieldError("level", "must be one of iniciante, intermediario, avancado"))
	}
	errors = append(errors, validateSourceRef(req.SourceID, req.SourceType)...)

	return errors
}

// ValidateGenerateStructureRequest validates the course structure
// generation request.
func (v *Validator) ValidateGenerateStructureRequest(req *dto.GenerateStructureRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	}
	if strings.TrimSpace(req.Category) == "" {
		errors = append(errors, domain.NewMissingFieldError("category"))
	}
	if !domain.Level(req.Level).Valid() {
		errors = append(errors, domain.NewInvalidFieldError("level", "must be one of iniciante, intermediario, avancado"))
	}
	errors = append(errors, validateSourceRef(req.SourceID, req.SourceType)...)

	return errors
}

// ValidateContentRequest validates the analysis, summary and moderation
// requests, which all carry a single content field.
func (v *Validator) ValidateContentRequest(req *dto.AnalyzeContentRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Content) == "" {
		errors = append(errors, domain.NewMissingFieldError("content"))
	}

	return errors
}

// ValidateID validates a path parameter that must be a ULID.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFieldError(field, "must be a valid identifier"))
	}

	return errors
}

// validateSourceRef checks the optional source reference pair. Both
// fields must be present together or absent together.
func validateSourceRef(sourceID, sourceType string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if sourceID == "" && sourceType == "" {
		return nil
	}
	if sourceID == "" || sourceType == "" {
		errors = append(errors, domain.NewInvalidFieldError("sourceId", "sourceId and sourceType must be provided together"))
		return errors
	}
	if sourceType != "course" && sourceType != "lesson" {
		errors = append(errors, domain.NewInvalidFieldError("sourceType", "must be course or lesson"))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format.
func isValidULID(s string) bool {
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

// isValidEmail applies a permissive structural check.
func isValidEmail(s string) bool {
	if len(s) > 254 {
		return false
	}
	validEmail := regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	return validEmail.MatchString(s)
}
