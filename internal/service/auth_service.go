package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"learnhub/internal/cache"
	"learnhub/internal/config"
	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/logger"
	"learnhub/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// revokedMarker is the value stored under a revoked token's jti key.
const revokedMarker = "revoked"

// AuthService defines the interface for authentication operations.
type AuthService interface {
	// Register creates an account and returns the user with a fresh
	// session token.
	Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, string, error)
	// Login verifies credentials and returns the user with a fresh
	// session token.
	Login(ctx context.Context, req *dto.LoginRequest) (*domain.User, string, error)
	// Logout revokes the given token until its natural expiry.
	Logout(ctx context.Context, tokenString string) error
	// GetUser loads the account behind an identity.
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	// ValidateToken parses and verifies a session token, rejecting
	// revoked ones, and resolves the caller's identity.
	ValidateToken(ctx context.Context, tokenString string) (*domain.Identity, error)
	// TokenTTL reports the configured session lifetime.
	TokenTTL() time.Duration
}

type authService struct {
	userRepo domain.UserRepository
	cache    domain.Cache
	jwtCfg   config.JWTConfig
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo domain.UserRepository, cacheClient domain.Cache, jwtCfg config.JWTConfig) (AuthService, error) {
	if len(jwtCfg.SecretKey) < 32 {
		return nil, errors.New("jwt secret key must be at least 32 bytes long")
	}
	return &authService{
		userRepo: userRepo,
		cache:    cacheClient,
		jwtCfg:   jwtCfg,
	}, nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, string, error) {
	existing, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", domain.NewInternalError("failed to check username", err)
	}
	if existing != nil {
		return nil, "", domain.NewInvalidInputError("Username already exists")
	}

	existing, err = s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", domain.NewInternalError("failed to check email", err)
	}
	if existing != nil {
		return nil, "", domain.NewInvalidInputError("Email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", domain.NewInternalError("failed to hash password", err)
	}

	role := domain.RoleAluno
	if req.Role != "" {
		role = domain.Role(req.Role)
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
		Avatar:       req.Avatar,
	}
	if err := user.Validate(); err != nil {
		return nil, "", err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", domain.NewInternalError("failed to create user", err)
	}

	token, err := s.createToken(user)
	if err != nil {
		return nil, "", domain.NewInternalError("failed to create session token", err)
	}

	logger.Get().Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*domain.User, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		// Same response as a wrong password so usernames cannot be probed.
		return nil, "", domain.NewUnauthenticatedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", domain.NewUnauthenticatedError("Invalid credentials")
	}

	token, err := s.createToken(user)
	if err != nil {
		return nil, "", domain.NewInternalError("failed to create session token", err)
	}

	logger.Get().Info("User logged in", zap.String("user_id", user.ID))
	return user, token, nil
}

// Logout marks the token's jti as revoked for its remaining lifetime.
// An already-expired or malformed token is a no-op success; the session
// it names cannot be used either way.
func (s *authService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return nil
	}
	if claims.ExpiresAt == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	key := cache.RevokedTokenKey(claims.ID)
	if err := s.cache.Set(ctx, key, revokedMarker, ttl); err != nil {
		return domain.NewInternalError("failed to revoke session token", err)
	}
	return nil
}

func (s *authService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}
	return user, nil
}

func (s *authService) ValidateToken(ctx context.Context, tokenString string) (*domain.Identity, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return nil, domain.NewUnauthenticatedError("Invalid or expired session")
	}

	if claims.ID != "" {
		_, err := s.cache.Get(ctx, cache.RevokedTokenKey(claims.ID))
		switch {
		case err == nil:
			return nil, domain.NewUnauthenticatedError("Session has been revoked")
		case errors.Is(err, domain.ErrCacheMiss):
			// Not revoked.
		default:
			// The denylist is best effort; a cache outage must not lock
			// every user out.
			logger.Get().Warn("Revocation check failed",
				zap.String("jti", claims.ID),
				zap.Error(err),
			)
		}
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, domain.NewUnauthenticatedError("Invalid or expired session")
	}

	return &domain.Identity{UserID: claims.Subject, Role: role}, nil
}

func (s *authService) TokenTTL() time.Duration {
	return s.jwtCfg.AccessTokenTTL
}

func (s *authService) createToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := dto.AuthClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        util.NewULID(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtCfg.AccessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.SecretKey))
}

func (s *authService) parseClaims(tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtCfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
