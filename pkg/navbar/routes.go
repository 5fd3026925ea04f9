package navbar

import (
	"github.com/labstack/echo/v4"
	"github.com/shishobooks/bottomnav/pkg/auth"
	"github.com/shishobooks/bottomnav/pkg/badges"
	"github.com/shishobooks/bottomnav/pkg/visibility"
)

// RegisterRoutes registers the public navigation routes. They work for
// anonymous viewers; a valid token only adds the viewer's roles.
func RegisterRoutes(e *echo.Echo, loader Loader, evaluator *visibility.Evaluator, resolver *badges.Resolver, authMiddleware *auth.Middleware) {
	h := &handler{
		loader:    loader,
		renderer:  NewRenderer(evaluator),
		evaluator: evaluator,
		resolver:  resolver,
	}

	g := e.Group("/navigation", authMiddleware.AuthenticateOptional)
	g.GET("", h.render)
	g.GET("/badges/:id", h.badge)
	e.GET("/navigation.css", h.stylesheet)
}
