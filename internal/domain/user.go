package domain

import (
	"context"
	"fmt"
	"time"
)

// Role is the closed set of user roles. Access decisions go through
// Role.Can rather than string comparisons in handlers.
type Role string

const (
	RoleAluno     Role = "aluno"
	RoleProfessor Role = "professor"
	RoleEquipe    Role = "equipe"
	RoleAdmin     Role = "admin"
)

// ParseRole converts a raw string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAluno, RoleProfessor, RoleEquipe, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Action is a capability that a role may or may not hold.
type Action string

const (
	ActionCreateCourse      Action = "course:create"
	ActionScheduleLiveClass Action = "live_class:schedule"
	ActionManageAnyResource Action = "resource:manage_any"
)

// Can reports whether the role holds the given capability.
func (r Role) Can(a Action) bool {
	switch a {
	case ActionCreateCourse, ActionScheduleLiveClass:
		return r == RoleProfessor || r == RoleAdmin
	case ActionManageAnyResource:
		return r == RoleAdmin
	}
	return false
}

// Identity is the authenticated caller of a request. The route layer builds
// it from the session token and passes it explicitly into services; there is
// no ambient current-user state.
type Identity struct {
	UserID string
	Role   Role
}

// CanModifyResource applies the ownership rule shared by course and live
// class mutations: the instructor who owns the resource, or an admin.
func (id Identity) CanModifyResource(instructorID string) bool {
	return id.UserID == instructorID || id.Role.Can(ActionManageAnyResource)
}

// User represents a platform account.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	Avatar       string
	CreatedAt    time.Time
}

// Validate checks required fields and the role set.
func (u *User) Validate() error {
	var errs ValidationErrors
	if u.Username == "" {
		errs = append(errs, NewMissingFieldError("username"))
	}
	if u.Email == "" {
		errs = append(errs, NewMissingFieldError("email"))
	}
	if u.Name == "" {
		errs = append(errs, NewMissingFieldError("name"))
	}
	if !u.Role.Valid() {
		errs = append(errs, NewInvalidFieldError("role", "must be one of aluno, professor, equipe, admin"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UserRepository defines the interface for user data persistence.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
