package settings

import (
	"fmt"
	"strings"

	"github.com/shishobooks/bottomnav/pkg/htmlutil"
	"github.com/shishobooks/bottomnav/pkg/models"
)

// Report describes what Sanitize had to throw away. Defaulted lists the paths
// (e.g. "style.background_color", "items[2].url") of fields that were present
// in the input but unusable and were replaced by their default. Missing fields
// are not listed.
type Report struct {
	Defaulted []string `json:"defaulted"`
}

// Clean reports whether every present field was usable as given.
func (r *Report) Clean() bool {
	return len(r.Defaulted) == 0
}

func (r *Report) add(path string) {
	r.Defaulted = append(r.Defaulted, path)
}

// Sanitize coerces arbitrary input into a valid document. It never fails:
// anything absent, malformed or of the wrong shape falls back to its default.
// Sanitize(Sanitize(x)) equals Sanitize(x).
func Sanitize(raw interface{}) *models.NavigationSettings {
	doc, _ := SanitizeWithReport(raw)
	return doc
}

// SanitizeWithReport is Sanitize that also returns which fields were
// substituted.
func SanitizeWithReport(raw interface{}) (*models.NavigationSettings, *Report) {
	s := &sanitizer{report: &Report{Defaulted: []string{}}}
	def := Defaults()

	m, ok := toMap(raw)
	if !ok && raw != nil {
		s.report.add("$")
	}

	doc := &models.NavigationSettings{
		Enabled:      s.boolean(m, "enabled", def.Enabled),
		Preset:       s.text(m, "preset", def.Preset),
		Items:        s.items(m, def.Items),
		Style:        s.style(s.section(m, "style"), def.Style),
		Animations:   s.animations(s.section(m, "animations"), def.Animations),
		Devices:      s.devices(s.section(m, "devices"), def.Devices),
		DisplayRules: s.displayRules(s.section(m, "display_rules"), def.DisplayRules),
		Badges:       s.badges(s.section(m, "badges"), def.Badges),
		Advanced:     s.advanced(s.section(m, "advanced"), def.Advanced),
	}

	return doc, s.report
}

type sanitizer struct {
	report *Report
	prefix string
}

// at returns a sanitizer that reports paths under the given prefix.
func (s *sanitizer) at(prefix string) *sanitizer {
	return &sanitizer{report: s.report, prefix: prefix}
}

func (s *sanitizer) path(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + "." + key
}

// section returns the nested object under key. A present value that isn't an
// object is reported and treated as empty.
func (s *sanitizer) section(m map[string]interface{}, key string) map[string]interface{} {
	v, ok := lookup(m, key)
	if !ok || v == nil {
		return nil
	}
	sub, ok := v.(map[string]interface{})
	if !ok {
		s.report.add(s.path(key))
		return nil
	}
	return sub
}

func (s *sanitizer) boolean(m map[string]interface{}, key string, def bool) bool {
	v, ok := lookup(m, key)
	if !ok || v == nil {
		return def
	}
	b, ok := toBool(v)
	if !ok {
		s.report.add(s.path(key))
		return def
	}
	return b
}

func (s *sanitizer) integer(m map[string]interface{}, key string, def int) int {
	v, ok := lookup(m, key)
	if !ok || v == nil {
		return def
	}
	n, ok := toInt(v)
	if !ok {
		s.report.add(s.path(key))
		return def
	}
	return n
}

func (s *sanitizer) color(m map[string]interface{}, key, def string) string {
	v, ok := lookup(m, key)
	if !ok || v == nil {
		return def
	}
	str, ok := v.(string)
	if ok {
		str = strings.TrimSpace(str)
	}
	if !ok || !isHexColor(str) {
		s.report.add(s.path(key))
		return def
	}
	return str
}

func (s *sanitizer) text(m map[string]interface{}, key, def string) string {
	v, ok := lookup(m, key)
	if !ok || v == nil {
		return def
	}
	str, ok := toText(v)
	if !ok {
		s.report.add(s.path(key))
		return def
	}
	return htmlutil.SanitizeText(str)
}

func (s *sanitizer) multilineText(m map[string]interface{}, key, def string) string {
	v, ok := lookup(m, key)
	if !ok || v == nil {
		return def
	}
	str, ok := v.(string)
	if !ok {
		s.report.add(s.path(key))
		return def
	}
	return htmlutil.StripAllTags(str)
}

func (s *sanitizer) enum(m map[string]interface{}, key, def string, allowed []string) string {
	v, ok := lookup(m, key)
	if !ok || v == nil {
		return def
	}
	str, _ := v.(string)
	str = strings.ToLower(strings.TrimSpace(str))
	for _, a := range allowed {
		if str == a {
			return str
		}
	}
	s.report.add(s.path(key))
	return def
}

func (s *sanitizer) url(m map[string]interface{}, key string) string {
	v, ok := lookup(m, key)
	if !ok || v == nil {
		return ""
	}
	str, ok := v.(string)
	if !ok {
		s.report.add(s.path(key))
		return ""
	}
	clean := sanitizeURL(str)
	if clean == "" && strings.TrimSpace(str) != "" {
		s.report.add(s.path(key))
	}
	return clean
}

func (s *sanitizer) stringList(m map[string]interface{}, key string) []string {
	out := []string{}
	v, ok := lookup(m, key)
	if !ok || v == nil {
		return out
	}
	list, ok := v.([]interface{})
	if !ok {
		s.report.add(s.path(key))
		return out
	}
	for _, el := range list {
		str, ok := toText(el)
		if !ok {
			continue
		}
		if clean := htmlutil.SanitizeText(str); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

func (s *sanitizer) intList(m map[string]interface{}, key string) []int {
	out := []int{}
	v, ok := lookup(m, key)
	if !ok || v == nil {
		return out
	}
	list, ok := v.([]interface{})
	if !ok {
		s.report.add(s.path(key))
		return out
	}
	for _, el := range list {
		if n, ok := toInt(el); ok {
			out = append(out, n)
		}
	}
	return out
}

// items only processes array input; anything else keeps the default items.
// Every element is kept, even one that ends up with an empty id.
func (s *sanitizer) items(m map[string]interface{}, def []models.NavItem) []models.NavItem {
	v, ok := lookup(m, "items")
	if !ok || v == nil {
		return def
	}
	list, ok := v.([]interface{})
	if !ok {
		s.report.add("items")
		return def
	}

	items := make([]models.NavItem, 0, len(list))
	for i, el := range list {
		is := s.at(fmt.Sprintf("items[%d]", i))
		im, ok := el.(map[string]interface{})
		if !ok {
			s.report.add(is.prefix)
		}
		items = append(items, is.item(im))
	}
	return items
}

func (s *sanitizer) item(m map[string]interface{}) models.NavItem {
	def := defaultItem()

	id := ""
	if v, ok := lookup(m, "id"); ok && v != nil {
		if str, ok := toText(v); ok {
			id = slugify(str)
		} else {
			s.report.add(s.path("id"))
		}
	}

	return models.NavItem{
		ID:         id,
		Label:      s.text(m, "label", def.Label),
		Icon:       s.text(m, "icon", def.Icon),
		URL:        s.url(m, "url"),
		Enabled:    s.boolean(m, "enabled", def.Enabled),
		Roles:      s.stringList(m, "roles"),
		BadgeCount: s.integer(m, "badge_count", def.BadgeCount),
	}
}

func (s *sanitizer) style(m map[string]interface{}, def models.StyleConfig) models.StyleConfig {
	s = s.at("style")
	return models.StyleConfig{
		BackgroundColor: s.color(m, "background_color", def.BackgroundColor),
		TextColor:       s.color(m, "text_color", def.TextColor),
		ActiveColor:     s.color(m, "active_color", def.ActiveColor),
		HoverColor:      s.color(m, "hover_color", def.HoverColor),
		BorderColor:     s.color(m, "border_color", def.BorderColor),
		Height:          s.integer(m, "height", def.Height),
		BorderRadius:    s.integer(m, "border_radius", def.BorderRadius),
		BoxShadow:       s.text(m, "box_shadow", def.BoxShadow),
		FontSize:        s.integer(m, "font_size", def.FontSize),
		FontWeight:      s.text(m, "font_weight", def.FontWeight),
		IconSize:        s.integer(m, "icon_size", def.IconSize),
		Padding:         s.integer(m, "padding", def.Padding),
	}
}

func (s *sanitizer) animations(m map[string]interface{}, def models.AnimationConfig) models.AnimationConfig {
	s = s.at("animations")
	return models.AnimationConfig{
		Enabled:  s.boolean(m, "enabled", def.Enabled),
		Type:     s.enum(m, "type", def.Type, models.AnimationTypes()),
		Duration: s.integer(m, "duration", def.Duration),
	}
}

// devices only ever populates the three known device classes; unknown keys
// are dropped.
func (s *sanitizer) devices(m map[string]interface{}, def models.DeviceSet) models.DeviceSet {
	s = s.at("devices")
	return models.DeviceSet{
		Mobile:  s.device(s.section(m, models.DeviceMobile), models.DeviceMobile, def.Mobile),
		Tablet:  s.device(s.section(m, models.DeviceTablet), models.DeviceTablet, def.Tablet),
		Desktop: s.device(s.section(m, models.DeviceDesktop), models.DeviceDesktop, def.Desktop),
	}
}

func (s *sanitizer) device(m map[string]interface{}, class string, def models.DeviceConfig) models.DeviceConfig {
	s = s.at(s.path(class))
	return models.DeviceConfig{
		Enabled:    s.boolean(m, "enabled", def.Enabled),
		Breakpoint: s.integer(m, "breakpoint", def.Breakpoint),
	}
}

func (s *sanitizer) displayRules(m map[string]interface{}, def models.DisplayRules) models.DisplayRules {
	s = s.at("display_rules")
	return models.DisplayRules{
		UserRoles:   s.stringList(m, "user_roles"),
		Pages:       s.intList(m, "pages"),
		HideOnAdmin: s.boolean(m, "hide_on_admin", def.HideOnAdmin),
	}
}

func (s *sanitizer) badges(m map[string]interface{}, def models.BadgeConfig) models.BadgeConfig {
	s = s.at("badges")
	return models.BadgeConfig{
		Enabled:         s.boolean(m, "enabled", def.Enabled),
		BackgroundColor: s.color(m, "background_color", def.BackgroundColor),
		TextColor:       s.color(m, "text_color", def.TextColor),
		BorderRadius:    s.integer(m, "border_radius", def.BorderRadius),
	}
}

func (s *sanitizer) advanced(m map[string]interface{}, def models.AdvancedConfig) models.AdvancedConfig {
	s = s.at("advanced")
	return models.AdvancedConfig{
		ZIndex:        s.integer(m, "z_index", def.ZIndex),
		FixedPosition: s.enum(m, "fixed_position", def.FixedPosition, models.Positions()),
		CustomCSS:     s.multilineText(m, "custom_css", def.CustomCSS),
	}
}
