package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mall-storefront/internal/service"
)

type SessionHandler struct {
	sessions service.SessionService
	notifier service.Notifier
}

func NewSessionHandler(sessions service.SessionService, notifier service.Notifier) *SessionHandler {
	return &SessionHandler{sessions: sessions, notifier: notifier}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *SessionHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	sess, err := h.sessions.Login(ctx, req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	// Send the user back to wherever a forced login interrupted them.
	redirectTo := h.sessions.ConsumeRedirectPath()
	if redirectTo == "" {
		redirectTo = "/"
	}

	return respond(c, http.StatusOK, echo.Map{
		"session":    sess,
		"redirectTo": redirectTo,
	}, "Logged in")
}

func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, nil, "Logged out")
}

func (h *SessionHandler) Profile(c echo.Context) error {
	profile, err := h.sessions.Profile(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, profile, "")
}

func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	var req struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		Avatar   string `json:"avatar"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	ctx := c.Request().Context()
	profile, err := h.sessions.Profile(ctx)
	if err != nil {
		return respondError(c, err)
	}

	profile.FullName = req.FullName
	profile.Email = req.Email
	profile.Phone = req.Phone
	profile.Address = req.Address
	profile.Avatar = req.Avatar

	if err := h.sessions.UpdateProfile(ctx, profile); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, profile, "Profile updated")
}

// Notifications exposes the active toasts for the presentation layer to
// render; dismissal is time-driven, not acknowledged.
func (h *SessionHandler) Notifications(c echo.Context) error {
	return respond(c, http.StatusOK, h.notifier.Active(), "")
}
