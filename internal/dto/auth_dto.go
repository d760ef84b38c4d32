package dto

import (
	"time"

	"learnhub/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims defines the custom claims carried by the session JWT.
// The jti registered claim identifies the token for revocation.
type AuthClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// RegisterRequest represents the request body for account creation.
// @Description Request body for registering a new account
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// LoginRequest represents the request body for logging in.
// @Description Request body for logging in with username and password
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the public projection of a user. The password hash
// never appears in any response payload.
// @Description User information
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain user into its public projection.
func ToUserResponse(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}
