package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/shishobooks/bottomnav/pkg/auth"
	"github.com/shishobooks/bottomnav/pkg/badges"
	"github.com/shishobooks/bottomnav/pkg/binder"
	"github.com/shishobooks/bottomnav/pkg/config"
	"github.com/shishobooks/bottomnav/pkg/errcodes"
	"github.com/shishobooks/bottomnav/pkg/hooks"
	"github.com/shishobooks/bottomnav/pkg/navbar"
	"github.com/shishobooks/bottomnav/pkg/options"
	"github.com/shishobooks/bottomnav/pkg/presets"
	"github.com/shishobooks/bottomnav/pkg/settings"
	"github.com/shishobooks/bottomnav/pkg/testutils"
	"github.com/shishobooks/bottomnav/pkg/visibility"
	"github.com/uptrace/bun"
)

func New(ctx context.Context, cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e, err := newEcho(ctx, cfg, db)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func newEcho(ctx context.Context, cfg *config.Config, db *bun.DB) (*echo.Echo, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())

	health.RegisterRoutes(e)

	var (
		itemPolicies []visibility.Option
		badgeHooks   []badges.Hook
	)
	if cfg.HooksFile != "" {
		script, err := hooks.Load(cfg.HooksFile)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if policy := script.ItemPolicy(); policy != nil {
			itemPolicies = append(itemPolicies, visibility.WithItemPolicy(policy))
		}
		if hook := script.BadgeHook(); hook != nil {
			badgeHooks = append(badgeHooks, hook)
		}
	}

	var cart badges.CartCounter
	if cfg.CartCountURL != "" {
		cart = badges.NewHTTPCart(cfg.CartCountURL, cfg.CartTimeout)
	}

	authService := auth.NewService(cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(authService)

	catalog := presets.Load(ctx, cfg.PresetsFile)
	store := options.NewStore(db, cfg.DatabaseMaxRetries)
	settingsService := settings.NewService(store, catalog, cfg.OptionKey, cfg.ExportFilePrefix)

	settings.RegisterRoutes(e, settingsService, authMiddleware)
	navbar.RegisterRoutes(e, settingsService, visibility.New(itemPolicies...), badges.NewResolver(cart, badgeHooks...), authMiddleware)

	if cfg.IsTest() {
		testutils.RegisterRoutes(e, authService, settingsService)
	}

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	return e, nil
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
