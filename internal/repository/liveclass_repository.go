package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"learnhub/internal/domain"
	"learnhub/internal/repository/models"
	"learnhub/internal/util"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

const liveClassColumns = `id, title, description, instructor_id, scheduled_at, duration, platform, meeting_url, max_participants, created_at`

type sqlxLiveClassRepository struct {
	db *sqlx.DB
}

// NewSQLXLiveClassRepository creates a live class repository backed by sqlx.
func NewSQLXLiveClassRepository(db *sqlx.DB) domain.LiveClassRepository {
	return &sqlxLiveClassRepository{db: db}
}

// liveClassListRow is the scan target for the live class listing.
type liveClassListRow struct {
	models.LiveClass
	InstructorUsername  string         `db:"instructor_username"`
	InstructorEmail     string         `db:"instructor_email"`
	InstructorName      string         `db:"instructor_name"`
	InstructorRole      string         `db:"instructor_role"`
	InstructorAvatar    sql.NullString `db:"instructor_avatar"`
	InstructorCreatedAt time.Time      `db:"instructor_created_at"`
	ParticipantCount    int            `db:"participant_count"`
}

func (row *liveClassListRow) instructor() *domain.User {
	return &domain.User{
		ID:        row.InstructorID,
		Username:  row.InstructorUsername,
		Email:     row.InstructorEmail,
		Name:      row.InstructorName,
		Role:      domain.Role(row.InstructorRole),
		Avatar:    util.NullStringToString(row.InstructorAvatar),
		CreatedAt: row.InstructorCreatedAt,
	}
}

// ListWithCounts returns all live classes in chronological order, each
// with its instructor and current participant count.
func (r *sqlxLiveClassRepository) ListWithCounts(ctx context.Context) ([]domain.LiveClassWithCount, error) {
	query := `SELECT lc.id, lc.title, lc.description, lc.instructor_id, lc.scheduled_at,
			lc.duration, lc.platform, lc.meeting_url, lc.max_participants, lc.created_at,
			u.username AS instructor_username, u.email AS instructor_email, u.name AS instructor_name,
			u.role AS instructor_role, u.avatar AS instructor_avatar, u.created_at AS instructor_created_at,
			COUNT(p.id) AS participant_count
		FROM live_classes lc
		JOIN users u ON u.id = lc.instructor_id
		LEFT JOIN live_class_participants p ON p.live_class_id = lc.id
		GROUP BY lc.id, u.id
		ORDER BY lc.scheduled_at ASC`

	var rows []liveClassListRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list live classes: %w", err)
	}

	result := make([]domain.LiveClassWithCount, len(rows))
	for i := range rows {
		result[i] = domain.LiveClassWithCount{
			LiveClass:        *toDomainLiveClass(&rows[i].LiveClass),
			Instructor:       rows[i].instructor(),
			ParticipantCount: rows[i].ParticipantCount,
		}
	}
	return result, nil
}

// participantWithUserRow is the scan target for the participant listing.
type participantWithUserRow struct {
	models.LiveClassParticipant
	MemberUsername  string         `db:"member_username"`
	MemberEmail     string         `db:"member_email"`
	MemberName      string         `db:"member_name"`
	MemberRole      string         `db:"member_role"`
	MemberAvatar    sql.NullString `db:"member_avatar"`
	MemberCreatedAt time.Time      `db:"member_created_at"`
}

// GetDetail returns the live class with instructor and full participant
// list, or nil, nil when absent.
func (r *sqlxLiveClassRepository) GetDetail(ctx context.Context, id string) (*domain.LiveClassDetail, error) {
	classQuery := `SELECT lc.id, lc.title, lc.description, lc.instructor_id, lc.scheduled_at,
			lc.duration, lc.platform, lc.meeting_url, lc.max_participants, lc.created_at,
			u.username AS instructor_username, u.email AS instructor_email, u.name AS instructor_name,
			u.role AS instructor_role, u.avatar AS instructor_avatar, u.created_at AS instructor_created_at,
			0 AS participant_count
		FROM live_classes lc
		JOIN users u ON u.id = lc.instructor_id
		WHERE lc.id = $1`

	var row liveClassListRow
	if err := r.db.GetContext(ctx, &row, classQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get live class %s: %w", id, err)
	}

	participantsQuery := `SELECT p.id, p.live_class_id, p.user_id, p.joined_at,
			u.username AS member_username, u.email AS member_email, u.name AS member_name,
			u.role AS member_role, u.avatar AS member_avatar, u.created_at AS member_created_at
		FROM live_class_participants p
		JOIN users u ON u.id = p.user_id
		WHERE p.live_class_id = $1
		ORDER BY p.joined_at ASC`

	var participantRows []participantWithUserRow
	if err := r.db.SelectContext(ctx, &participantRows, participantsQuery, id); err != nil {
		return nil, fmt.Errorf("failed to list participants for live class %s: %w", id, err)
	}

	participants := make([]domain.ParticipantWithUser, len(participantRows))
	for i := range participantRows {
		participants[i] = domain.ParticipantWithUser{
			LiveClassParticipant: domain.LiveClassParticipant{
				ID:          participantRows[i].ID,
				LiveClassID: participantRows[i].LiveClassID,
				UserID:      participantRows[i].UserID,
				JoinedAt:    participantRows[i].JoinedAt,
			},
			User: &domain.User{
				ID:        participantRows[i].UserID,
				Username:  participantRows[i].MemberUsername,
				Email:     participantRows[i].MemberEmail,
				Name:      participantRows[i].MemberName,
				Role:      domain.Role(participantRows[i].MemberRole),
				Avatar:    util.NullStringToString(participantRows[i].MemberAvatar),
				CreatedAt: participantRows[i].MemberCreatedAt,
			},
		}
	}

	return &domain.LiveClassDetail{
		LiveClass:    *toDomainLiveClass(&row.LiveClass),
		Instructor:   row.instructor(),
		Participants: participants,
	}, nil
}

// GetByID retrieves a bare live class row. Returns nil, nil when absent.
func (r *sqlxLiveClassRepository) GetByID(ctx context.Context, id string) (*domain.LiveClass, error) {
	var model models.LiveClass
	query := `SELECT ` + liveClassColumns + ` FROM live_classes WHERE id = $1`
	if err := r.db.GetContext(ctx, &model, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get live class %s: %w", id, err)
	}
	return toDomainLiveClass(&model), nil
}

// ListByInstructor returns the live classes hosted by an instructor in
// chronological order.
func (r *sqlxLiveClassRepository) ListByInstructor(ctx context.Context, instructorID string) ([]domain.LiveClass, error) {
	query := `SELECT ` + liveClassColumns + ` FROM live_classes WHERE instructor_id = $1 ORDER BY scheduled_at ASC`
	var rows []models.LiveClass
	if err := r.db.SelectContext(ctx, &rows, query, instructorID); err != nil {
		return nil, fmt.Errorf("failed to list live classes for instructor %s: %w", instructorID, err)
	}
	classes := make([]domain.LiveClass, len(rows))
	for i := range rows {
		classes[i] = *toDomainLiveClass(&rows[i])
	}
	return classes, nil
}

// Create inserts a new live class, assigning ID and CreatedAt.
func (r *sqlxLiveClassRepository) Create(ctx context.Context, class *domain.LiveClass) error {
	model := fromDomainLiveClass(class)
	model.ID = util.NewULID()
	model.CreatedAt = time.Now()

	query := `INSERT INTO live_classes (id, title, description, instructor_id, scheduled_at, duration, platform, meeting_url, max_participants, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		model.ID,
		model.Title,
		model.Description,
		model.InstructorID,
		model.ScheduledAt,
		model.Duration,
		model.Platform,
		model.MeetingURL,
		model.MaxParticipants,
		model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create live class: %w", err)
	}

	class.ID = model.ID
	class.CreatedAt = model.CreatedAt
	return nil
}

// Update rewrites all mutable columns of the live class.
func (r *sqlxLiveClassRepository) Update(ctx context.Context, class *domain.LiveClass) error {
	model := fromDomainLiveClass(class)

	query := `UPDATE live_classes SET title = $1, description = $2, scheduled_at = $3,
			duration = $4, platform = $5, meeting_url = $6, max_participants = $7
		WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		model.Title,
		model.Description,
		model.ScheduledAt,
		model.Duration,
		model.Platform,
		model.MeetingURL,
		model.MaxParticipants,
		model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update live class %s: %w", class.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a live class and reports whether a row was deleted.
// Participant rows referencing the class are left in place.
func (r *sqlxLiveClassRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM live_classes WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return false, domain.NewInvalidInputError("Live class still has participants")
		}
		return false, fmt.Errorf("failed to delete live class %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// AddParticipant records a user joining a live class, assigning ID and
// JoinedAt. Capacity is enforced in the service layer, not here.
func (r *sqlxLiveClassRepository) AddParticipant(ctx context.Context, participant *domain.LiveClassParticipant) error {
	id := util.NewULID()
	now := time.Now()

	query := `INSERT INTO live_class_participants (id, live_class_id, user_id, joined_at)
	          VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, id, participant.LiveClassID, participant.UserID, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.NewInvalidInputError("referenced live class or user does not exist")
		}
		return fmt.Errorf("failed to add participant: %w", err)
	}

	participant.ID = id
	participant.JoinedAt = now
	return nil
}

// RemoveParticipant deletes the user's participation rows for a live
// class and reports whether any row was deleted.
func (r *sqlxLiveClassRepository) RemoveParticipant(ctx context.Context, liveClassID, userID string) (bool, error) {
	query := `DELETE FROM live_class_participants WHERE live_class_id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, liveClassID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to remove participant: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

func toDomainLiveClass(m *models.LiveClass) *domain.LiveClass {
	return &domain.LiveClass{
		ID:              m.ID,
		Title:           m.Title,
		Description:     util.NullStringToString(m.Description),
		InstructorID:    m.InstructorID,
		ScheduledAt:     m.ScheduledAt,
		Duration:        m.Duration,
		Platform:        domain.Platform(m.Platform),
		MeetingURL:      util.NullStringToString(m.MeetingURL),
		MaxParticipants: m.MaxParticipants,
		CreatedAt:       m.CreatedAt,
	}
}

func fromDomainLiveClass(lc *domain.LiveClass) *models.LiveClass {
	return &models.LiveClass{
		ID:              lc.ID,
		Title:           lc.Title,
		Description:     util.StringToNullString(lc.Description),
		InstructorID:    lc.InstructorID,
		ScheduledAt:     lc.ScheduledAt,
		Duration:        lc.Duration,
		Platform:        string(lc.Platform),
		MeetingURL:      util.StringToNullString(lc.MeetingURL),
		MaxParticipants: lc.MaxParticipants,
		CreatedAt:       lc.CreatedAt,
	}
}
