package presets

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/robinjoseph08/golib/pointerutil"
	"github.com/shishobooks/bottomnav/pkg/models"
)

//go:embed presets.json
var bundled []byte

// StyleOverrides is a partial StyleConfig. Nil fields are left alone when the
// preset is applied.
type StyleOverrides struct {
	BackgroundColor *string `json:"background_color,omitempty"`
	TextColor       *string `json:"text_color,omitempty"`
	ActiveColor     *string `json:"active_color,omitempty"`
	HoverColor      *string `json:"hover_color,omitempty"`
	BorderColor     *string `json:"border_color,omitempty"`
	Height          *int    `json:"height,omitempty"`
	BorderRadius    *int    `json:"border_radius,omitempty"`
	BoxShadow       *string `json:"box_shadow,omitempty"`
	FontSize        *int    `json:"font_size,omitempty"`
	FontWeight      *string `json:"font_weight,omitempty"`
	IconSize        *int    `json:"icon_size,omitempty"`
	Padding         *int    `json:"padding,omitempty"`
}

// AnimationOverrides is a partial AnimationConfig.
type AnimationOverrides struct {
	Enabled  *bool   `json:"enabled,omitempty"`
	Type     *string `json:"type,omitempty"`
	Duration *int    `json:"duration,omitempty"`
}

type Definition struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Style       StyleOverrides      `json:"style"`
	Animations  *AnimationOverrides `json:"animations,omitempty"`
}

// Preset is a catalog entry.
type Preset struct {
	Key string `json:"key"`
	Definition
}

// Catalog is the read-only, ordered set of presets.
type Catalog struct {
	presets []Preset
	index   map[string]int
}

// Load builds the catalog from the file at path, or from the bundled catalog
// when path is empty. If the data can't be read or parsed, the built-in
// fallback set is used instead.
func Load(ctx context.Context, path string) *Catalog {
	log := logger.FromContext(ctx)

	data := bundled
	source := "bundled"
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			log.Err(err).Warn("preset file unreadable, using fallback presets", logger.Data{"path": path})
			return newCatalog(fallback())
		}
		data = b
		source = path
	}

	presets, err := Parse(data)
	if err != nil {
		log.Err(err).Warn("preset file invalid, using fallback presets", logger.Data{"source": source})
		return newCatalog(fallback())
	}
	return newCatalog(presets)
}

// Parse decodes a JSON object of preset key to definition, keeping the keys
// in the order they appear.
func Parse(data []byte) ([]Preset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("presets must be a JSON object")
	}

	presets := []Preset{}
	seen := map[string]bool{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		key, _ := tok.(string)

		var def Definition
		if err := dec.Decode(&def); err != nil {
			return nil, errors.Wrapf(err, "preset %q", key)
		}
		if key == "" || seen[key] {
			return nil, errors.Errorf("invalid or duplicate preset key %q", key)
		}
		seen[key] = true
		presets = append(presets, Preset{Key: key, Definition: def})
	}

	if _, err := dec.Token(); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets defined")
	}
	return presets, nil
}

func newCatalog(presets []Preset) *Catalog {
	index := make(map[string]int, len(presets))
	for i, p := range presets {
		index[p.Key] = i
	}
	return &Catalog{presets: presets, index: index}
}

// List returns every preset in catalog order.
func (c *Catalog) List() []Preset {
	out := make([]Preset, len(c.presets))
	copy(out, c.presets)
	return out
}

func (c *Catalog) Get(key string) (Definition, bool) {
	i, ok := c.index[key]
	if !ok {
		return Definition{}, false
	}
	return c.presets[i].Definition, true
}

// Apply merges the preset's style, and animations when it has any, over doc
// and records the key. Fields the preset leaves out keep their current value,
// even if an earlier preset set them. An unknown key returns doc unchanged and
// false. doc itself is never modified.
func (c *Catalog) Apply(doc *models.NavigationSettings, key string) (*models.NavigationSettings, bool) {
	def, ok := c.Get(key)
	if !ok {
		return doc, false
	}

	out := *doc
	out.Preset = key
	def.Style.mergeInto(&out.Style)
	if def.Animations != nil {
		def.Animations.mergeInto(&out.Animations)
	}
	return &out, true
}

func (o StyleOverrides) mergeInto(s *models.StyleConfig) {
	setString(&s.BackgroundColor, o.BackgroundColor)
	setString(&s.TextColor, o.TextColor)
	setString(&s.ActiveColor, o.ActiveColor)
	setString(&s.HoverColor, o.HoverColor)
	setString(&s.BorderColor, o.BorderColor)
	setInt(&s.Height, o.Height)
	setInt(&s.BorderRadius, o.BorderRadius)
	setString(&s.BoxShadow, o.BoxShadow)
	setInt(&s.FontSize, o.FontSize)
	setString(&s.FontWeight, o.FontWeight)
	setInt(&s.IconSize, o.IconSize)
	setInt(&s.Padding, o.Padding)
}

func (o AnimationOverrides) mergeInto(a *models.AnimationConfig) {
	if o.Enabled != nil {
		a.Enabled = *o.Enabled
	}
	setString(&a.Type, o.Type)
	setInt(&a.Duration, o.Duration)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// fallback is used when no catalog file can be loaded.
func fallback() []Preset {
	return []Preset{
		{
			Key: "minimal",
			Definition: Definition{
				Name:        "Minimal",
				Description: "Clean white bar with a subtle top border.",
				Style: StyleOverrides{
					BackgroundColor: pointerutil.String("#ffffff"),
					TextColor:       pointerutil.String("#666666"),
					ActiveColor:     pointerutil.String("#0073aa"),
					BorderColor:     pointerutil.String("#e0e0e0"),
				},
			},
		},
		{
			Key: "dark",
			Definition: Definition{
				Name:        "Dark",
				Description: "Dark background with light text.",
				Style: StyleOverrides{
					BackgroundColor: pointerutil.String("#1a1a1a"),
					TextColor:       pointerutil.String("#cccccc"),
					ActiveColor:     pointerutil.String("#ffffff"),
					BorderColor:     pointerutil.String("#333333"),
				},
			},
		},
		{
			Key: "material",
			Definition: Definition{
				Name:        "Material",
				Description: "Material Design inspired bar with ripple feedback.",
				Style: StyleOverrides{
					BackgroundColor: pointerutil.String("#ffffff"),
					TextColor:       pointerutil.String("#757575"),
					ActiveColor:     pointerutil.String("#6200ee"),
					BorderColor:     pointerutil.String("#eeeeee"),
					Height:          pointerutil.Int(56),
				},
				Animations: &AnimationOverrides{
					Type:     pointerutil.String(models.AnimationRipple),
					Duration: pointerutil.Int(300),
				},
			},
		},
		{
			Key: "ios",
			Definition: Definition{
				Name:        "iOS",
				Description: "Translucent light bar in the style of iOS tab bars.",
				Style: StyleOverrides{
					BackgroundColor: pointerutil.String("#f8f8f8"),
					TextColor:       pointerutil.String("#8e8e93"),
					ActiveColor:     pointerutil.String("#007aff"),
					BorderColor:     pointerutil.String("#c7c7cc"),
					Height:          pointerutil.Int(50),
				},
			},
		},
	}
}
