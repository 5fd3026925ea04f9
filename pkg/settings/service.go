package settings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
	"github.com/shishobooks/bottomnav/pkg/errcodes"
	"github.com/shishobooks/bottomnav/pkg/models"
	"github.com/shishobooks/bottomnav/pkg/presets"
)

// Store persists the serialized document under a single key.
type Store interface {
	Get(ctx context.Context, name string) (string, bool, error)
	Set(ctx context.Context, name, value string) error
	Delete(ctx context.Context, name string) error
}

// Service loads and persists the settings document. Every write replaces
// the whole document and concurrent writers race, last one wins.
type Service struct {
	store   Store
	catalog *presets.Catalog
	key     string
	prefix  string
}

// NewService returns a Service storing the document under key. prefix starts
// export filenames.
func NewService(store Store, catalog *presets.Catalog, key, prefix string) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		key:     key,
		prefix:  prefix,
	}
}

// Load returns the persisted document merged over the defaults, so fields
// added since it was saved still have values. A missing or unreadable blob
// yields the defaults.
func (svc *Service) Load(ctx context.Context) (*models.NavigationSettings, error) {
	raw, ok, err := svc.store.Get(ctx, svc.key)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !ok {
		return Defaults(), nil
	}

	var blob map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &blob); err != nil {
		logger.FromContext(ctx).Err(err).Warn("persisted settings are corrupt, using defaults", logger.Data{"key": svc.key})
		return Defaults(), nil
	}
	return Sanitize(blob), nil
}

// Save sanitizes raw, persists it and returns the document as it now loads.
func (svc *Service) Save(ctx context.Context, raw interface{}) (*models.NavigationSettings, *Report, error) {
	doc, report := SanitizeWithReport(raw)

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	if err := svc.store.Set(ctx, svc.key, string(data)); err != nil {
		return nil, nil, errors.WithStack(err)
	}

	log := logger.FromContext(ctx)
	log.Info("settings saved", logger.Data{"key": svc.key, "defaulted": len(report.Defaulted)})
	if !report.Clean() {
		log.Warn("settings fields replaced by defaults", logger.Data{"fields": report.Defaulted})
	}

	saved, err := svc.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return saved, report, nil
}

// Reset deletes the persisted document and returns the defaults.
func (svc *Service) Reset(ctx context.Context) (*models.NavigationSettings, error) {
	if err := svc.store.Delete(ctx, svc.key); err != nil {
		return nil, errors.WithStack(err)
	}
	logger.FromContext(ctx).Info("settings reset", logger.Data{"key": svc.key})
	return Defaults(), nil
}

// Export returns the current document pretty-printed.
func (svc *Service) Export(ctx context.Context) (string, error) {
	doc, err := svc.Load(ctx)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(data), nil
}

// ExportFilename suggests a filename for an export taken at now.
func (svc *Service) ExportFilename(now time.Time) string {
	return fmt.Sprintf("%s-settings-%s.json", svc.prefix, now.Format("20060102-150405"))
}

// Import parses text as an exported document and saves it. Text that isn't a
// JSON object is rejected with InvalidFormat and nothing is persisted.
func (svc *Service) Import(ctx context.Context, text string) (*models.NavigationSettings, *Report, error) {
	data := []byte(strings.TrimSpace(text))
	if len(data) == 0 {
		return nil, nil, errcodes.InvalidFormat("Import data is empty")
	}
	if !isText(data) {
		return nil, nil, errcodes.InvalidFormat("Import data must be text")
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, errcodes.InvalidFormat("Import data is not valid JSON")
	}
	if _, ok := raw.(map[string]interface{}); !ok {
		return nil, nil, errcodes.InvalidFormat("Import data must be a JSON object")
	}

	doc, report, err := svc.Save(ctx, raw)
	if err != nil {
		return nil, nil, err
	}
	logger.FromContext(ctx).Info("settings imported", logger.Data{"key": svc.key, "defaulted": len(report.Defaulted)})
	return doc, report, nil
}

// ApplyPreset merges the preset into the current document and saves it.
func (svc *Service) ApplyPreset(ctx context.Context, key string) (*models.NavigationSettings, error) {
	if _, ok := svc.catalog.Get(key); !ok {
		return nil, errcodes.NotFound("Preset")
	}

	doc, err := svc.Load(ctx)
	if err != nil {
		return nil, err
	}
	merged, _ := svc.catalog.Apply(doc, key)

	saved, _, err := svc.Save(ctx, merged)
	return saved, err
}

// Presets lists the catalog in file order.
func (svc *Service) Presets() []presets.Preset {
	return svc.catalog.List()
}

// isText reports whether data sniffs as some kind of text.
func isText(data []byte) bool {
	for mt := mimetype.Detect(data); mt != nil; mt = mt.Parent() {
		if mt.Is("text/plain") {
			return true
		}
	}
	return false
}
