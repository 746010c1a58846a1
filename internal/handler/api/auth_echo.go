package api

import (
	"strings"

	"TradeLite/internal/domain/models"
	domsvc "TradeLite/internal/domain/service"
	xhttp "TradeLite/pkg/http"
	xlogger "TradeLite/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AuthEchoHandler relays auth operations to the identity provider. It never
// inspects credentials or tokens beyond (de)serialization.
type AuthEchoHandler struct {
	logger   *xlogger.Logger
	identity domsvc.Identity
}

func NewAuthEchoHandler(logger *xlogger.Logger, identity domsvc.Identity) *AuthEchoHandler {
	return &AuthEchoHandler{logger: logger, identity: identity}
}

func (h *AuthEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/auth")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
	g.POST("/reset-password", h.ResetPassword)
}

func (h *AuthEchoHandler) Register(c echo.Context) error {
	req := &models.RegisterRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	user, err := h.identity.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("identity register error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("registration failed").WithError(err))
	}
	return xhttp.CreatedResponse(c, user)
}

func (h *AuthEchoHandler) Login(c echo.Context) error {
	req := &models.LoginRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	token, err := h.identity.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("identity login rejected", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UnauthorizedError("invalid credentials").WithError(err))
	}
	return xhttp.SuccessResponse(c, token)
}

func (h *AuthEchoHandler) Logout(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return xhttp.AppErrorResponse(c, xhttp.UnauthorizedError("missing bearer token"))
	}

	if err := h.identity.Logout(c.Request().Context(), token); err != nil {
		h.logger.Error("identity logout error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("logout failed").WithError(err))
	}
	return xhttp.SuccessResponse(c, map[string]string{"message": "Successfully logged out"})
}

func (h *AuthEchoHandler) ResetPassword(c echo.Context) error {
	req := &models.ResetPasswordRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if err := h.identity.ResetPassword(c.Request().Context(), req.Email); err != nil {
		h.logger.Error("identity reset error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("password reset failed").WithError(err))
	}
	return xhttp.SuccessResponse(c, map[string]string{"message": "Password reset email sent"})
}

func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
