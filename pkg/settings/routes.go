package settings

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shishobooks/bottomnav/pkg/auth"
)

// RegisterRoutes registers the admin settings routes. All of them need a
// token granting manage_options.
func RegisterRoutes(e *echo.Echo, settingsService *Service, authMiddleware *auth.Middleware) {
	h := &handler{
		settingsService: settingsService,
		now:             time.Now,
	}

	admin := []echo.MiddlewareFunc{
		authMiddleware.Authenticate,
		authMiddleware.RequireCapability(auth.CapabilityManageOptions),
	}

	g := e.Group("/settings", admin...)
	g.GET("", h.retrieve)
	g.PUT("", h.save)
	g.POST("/reset", h.reset)
	g.GET("/export", h.export)
	g.POST("/import", h.importSettings)
	g.POST("/preset", h.applyPreset)

	e.GET("/presets", h.listPresets, admin...)
}
