package handler

import (
	"net/http"

	"feriapos/internal/config"
	"feriapos/internal/dto"
	"feriapos/internal/middleware"
	"feriapos/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc service.AuthService
	cfg *config.Config
}

func NewAuthHandler(svc service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg}
}

// setSessionCookie writes the httpOnly session cookie. Production runs behind
// HTTPS with the SPA on another origin, so Secure + SameSite=None; development
// stays on Lax over plain HTTP.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	if h.cfg.IsProd() {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", h.cfg.IsProd(), true)
}

// Login godoc
// @Summary Inicia sesión y entrega el token en una cookie httpOnly
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	token, user, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, token, h.cfg.JWTExpirationHours*3600)
	c.JSON(http.StatusOK, gin.H{
		"mensaje": "Inicio de sesión exitoso",
		"usuario": user,
	})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, dto.LoginResponse{Mensaje: "Sesión cerrada"})
}

// Verify echoes the claims of the current session so the SPA can restore its
// state after a reload.
func (h *AuthHandler) Verify(c *gin.Context) {
	claims := middleware.GetClaims(c)
	c.JSON(http.StatusOK, gin.H{
		"id":      claims.ID,
		"usuario": claims.Usuario,
		"nombre":  claims.Nombre,
		"rol":     claims.Rol,
	})
}
