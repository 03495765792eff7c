package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// refreshCookieName nombre de la cookie httponly con el refresh token.
const refreshCookieName = "refresh_token"

// AuthHandler peticiones HTTP de /auth (público).
type AuthHandler struct {
	uc          *auth.UseCase
	refreshDays int
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase, refreshDays int) *AuthHandler {
	return &AuthHandler{uc: uc, refreshDays: refreshDays}
}

// Login POST /auth/login. El access token viaja en el body; el refresh
// únicamente como cookie httponly, fuera del alcance de JavaScript.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return writeError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    out.RefreshToken,
		Expires:  time.Now().Add(time.Duration(h.refreshDays) * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return c.JSON(dto.LoginResponse{
		AccessToken: out.AccessToken,
		TokenType:   "bearer",
		User:        out.User,
	})
}
