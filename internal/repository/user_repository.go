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

	"github.com/jmoiron/sqlx"
)

const userColumns = `id, username, email, password_hash, name, role, avatar, created_at`

type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a user repository backed by sqlx.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

// Create inserts a new user. The ID and CreatedAt are assigned here and
// written back into the given struct.
func (r *sqlxUserRepository) Create(ctx context.Context, user *domain.User) error {
	model := fromDomainUser(user)
	model.ID = util.NewULID()
	model.CreatedAt = time.Now()

	query := `INSERT INTO users (id, username, email, password_hash, name, role, avatar, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		model.ID,
		model.Username,
		model.Email,
		model.PasswordHash,
		model.Name,
		model.Role,
		model.Avatar,
		model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = model.ID
	user.CreatedAt = model.CreatedAt
	return nil
}

// GetByID retrieves a user by internal ID. Returns nil, nil when absent.
func (r *sqlxUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByUsername retrieves a user by username. Returns nil, nil when absent.
func (r *sqlxUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// GetByEmail retrieves a user by email. Returns nil, nil when absent.
func (r *sqlxUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *sqlxUserRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var model models.User
	err := r.db.GetContext(ctx, &model, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toDomainUser(&model), nil
}

func toDomainUser(m *models.User) *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Role:         domain.Role(m.Role),
		Avatar:       util.NullStringToString(m.Avatar),
		CreatedAt:    m.CreatedAt,
	}
}

func fromDomainUser(u *domain.User) *models.User {
	return &models.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Role:         string(u.Role),
		Avatar:       util.StringToNullString(u.Avatar),
		CreatedAt:    u.CreatedAt,
	}
}
