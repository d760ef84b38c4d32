package handler

import (
	"time"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/middleware"
	"learnhub/internal/service"
	"learnhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validation.Validator
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validation.NewValidator(),
	}
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(h.authService.TokenTTL()),
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: "Lax",
		Path:     "/",
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: "Lax",
		Path:     "/",
	})
}

// Register creates a new account and opens a session.
// @Summary Register a new account
// @Description Creates an account and sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /api/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateRegisterRequest(&req); len(errs) > 0 {
		return errs
	}

	user, token, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token)
	return c.Status(fiber.StatusCreated).JSON(dto.ToUserResponse(user))
}

// Login verifies credentials and opens a session.
// @Summary Log in
// @Description Verifies username and password and sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateLoginRequest(&req); len(errs) > 0 {
		return errs
	}

	user, token, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token)
	return c.JSON(dto.ToUserResponse(user))
}

// Logout revokes the current session.
// @Summary Log out
// @Description Revokes the session token and clears the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /api/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(middleware.SessionCookie); token != "" {
		if err := h.authService.Logout(c.Context(), token); err != nil {
			return err
		}
	}

	h.clearSessionCookie(c)
	return c.JSON(dto.MessageResponse{Message: "Logged out"})
}

// Me returns the authenticated user's account.
// @Summary Get current user
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /api/user [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)
	if identity == nil {
		return domain.NewUnauthenticatedError("Authentication required")
	}

	user, err := h.authService.GetUser(c.Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToUserResponse(user))
}
