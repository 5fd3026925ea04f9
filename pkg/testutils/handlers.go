package testutils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shishobooks/bottomnav/pkg/auth"
	"github.com/shishobooks/bottomnav/pkg/settings"
	"github.com/shishobooks/bottomnav/pkg/visibility"
)

type handler struct {
	authService     *auth.Service
	settingsService *settings.Service
}

// createTokenRequest is the request body for minting a test token.
type createTokenRequest struct {
	UserID       string   `json:"user_id" validate:"required"`
	Roles        []string `json:"roles"`
	Capabilities []string `json:"capabilities"`
}

type createTokenResponse struct {
	Token string `json:"token"`
}

// createToken signs a token for an arbitrary user.
// POST /test/tokens.
func (h *handler) createToken(c echo.Context) error {
	var req createTokenRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}

	roles := req.Roles
	if roles == nil {
		roles = []string{}
	}

	token, err := h.authService.GenerateToken(visibility.User{ID: req.UserID, Roles: roles}, req.Capabilities...)
	if err != nil {
		return errors.Wrap(err, "failed to sign token")
	}

	return c.JSON(http.StatusCreated, createTokenResponse{Token: token})
}

// deleteSettings drops the persisted document so the next load gets the
// defaults.
// DELETE /test/settings.
func (h *handler) deleteSettings(c echo.Context) error {
	ctx := c.Request().Context()

	if _, err := h.settingsService.Reset(ctx); err != nil {
		return errors.Wrap(err, "failed to reset settings")
	}

	return c.NoContent(http.StatusNoContent)
}
