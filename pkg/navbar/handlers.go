package navbar

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shishobooks/bottomnav/pkg/auth"
	"github.com/shishobooks/bottomnav/pkg/badges"
	"github.com/shishobooks/bottomnav/pkg/models"
	"github.com/shishobooks/bottomnav/pkg/stylesheet"
	"github.com/shishobooks/bottomnav/pkg/visibility"
)

// Loader supplies the current settings document.
type Loader interface {
	Load(ctx context.Context) (*models.NavigationSettings, error)
}

type handler struct {
	loader    Loader
	renderer  *Renderer
	evaluator *visibility.Evaluator
	resolver  *badges.Resolver
}

// render returns the navigation markup for the page described by the query.
// It responds with an empty body when the navigation shouldn't show.
func (h *handler) render(c echo.Context) error {
	ctx := c.Request().Context()

	params := RenderQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	doc, err := h.loader.Load(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	user := auth.GetUserFromContext(c)
	vctx := visibility.Context{
		User:          user,
		CurrentPageID: params.PageID,
		IsAdminPage:   params.Admin,
	}
	if !h.evaluator.ShouldDisplayNavigation(ctx, doc, vctx) {
		return errors.WithStack(c.HTML(http.StatusOK, ""))
	}

	statics := make(map[string]int, len(doc.Items))
	for _, item := range doc.Items {
		if _, ok := statics[item.ID]; !ok {
			statics[item.ID] = item.BadgeCount
		}
	}

	markup := h.renderer.Render(ctx, doc, Context{
		CurrentURL:  params.CurrentURL,
		User:        user,
		BadgeLookup: h.resolver.Lookup(ctx, user, statics),
	})
	return errors.WithStack(c.HTML(http.StatusOK, markup))
}

func (h *handler) stylesheet(c echo.Context) error {
	ctx := c.Request().Context()

	doc, err := h.loader.Load(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	return errors.WithStack(c.Blob(http.StatusOK, "text/css; charset=utf-8", []byte(stylesheet.Generate(doc))))
}

func (h *handler) badge(c echo.Context) error {
	ctx := c.Request().Context()

	itemID := strings.ToLower(strings.TrimSpace(c.Param("id")))

	doc, err := h.loader.Load(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	// Ids that aren't in the document still resolve, with no static count.
	static := 0
	for _, item := range doc.Items {
		if item.ID == itemID {
			static = item.BadgeCount
			break
		}
	}

	count := h.resolver.Count(ctx, itemID, auth.GetUserFromContext(c), static)
	return errors.WithStack(c.JSON(http.StatusOK, map[string]interface{}{
		"ok":    true,
		"count": count,
		"text":  BadgeText(count),
	}))
}
