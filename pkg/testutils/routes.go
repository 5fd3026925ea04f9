// Package testutils provides test-only API endpoints.
// These routes are only registered when ENVIRONMENT=test.
package testutils

import (
	"github.com/labstack/echo/v4"
	"github.com/shishobooks/bottomnav/pkg/auth"
	"github.com/shishobooks/bottomnav/pkg/settings"
)

// RegisterRoutes registers test-only routes.
// These endpoints should ONLY be registered in test environments.
func RegisterRoutes(e *echo.Echo, authService *auth.Service, settingsService *settings.Service) {
	h := &handler{
		authService:     authService,
		settingsService: settingsService,
	}

	test := e.Group("/test")
	test.POST("/tokens", h.createToken)
	test.DELETE("/settings", h.deleteSettings)
}
