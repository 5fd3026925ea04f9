package settings

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shishobooks/bottomnav/pkg/models"
)

type handler struct {
	settingsService *Service
	now             func() time.Time
}

func documentResponse(doc *models.NavigationSettings, report *Report) DocumentResponse {
	resp := DocumentResponse{OK: true, Document: doc}
	if report != nil {
		resp.Defaulted = report.Defaulted
	}
	return resp
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	doc, err := h.settingsService.Load(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, documentResponse(doc, nil)))
}

func (h *handler) save(c echo.Context) error {
	ctx := c.Request().Context()

	params := SavePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	doc, report, err := h.settingsService.Save(ctx, params.Settings)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, documentResponse(doc, report)))
}

func (h *handler) reset(c echo.Context) error {
	ctx := c.Request().Context()

	doc, err := h.settingsService.Reset(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, documentResponse(doc, nil)))
}

func (h *handler) export(c echo.Context) error {
	ctx := c.Request().Context()

	text, err := h.settingsService.Export(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, ExportResponse{
		OK:       true,
		Text:     text,
		Filename: h.settingsService.ExportFilename(h.now()),
	}))
}

func (h *handler) importSettings(c echo.Context) error {
	ctx := c.Request().Context()

	params := ImportPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	doc, report, err := h.settingsService.Import(ctx, params.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, documentResponse(doc, report)))
}

func (h *handler) listPresets(c echo.Context) error {
	return errors.WithStack(c.JSON(http.StatusOK, PresetsResponse{
		OK:      true,
		Presets: h.settingsService.Presets(),
	}))
}

func (h *handler) applyPreset(c echo.Context) error {
	ctx := c.Request().Context()

	params := ApplyPresetPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	doc, err := h.settingsService.ApplyPreset(ctx, params.Key)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, documentResponse(doc, nil)))
}
