package models

// Animation types.
const (
	AnimationBounce    = "bounce"
	AnimationZoom      = "zoom"
	AnimationPulse     = "pulse"
	AnimationFade      = "fade"
	AnimationSlide     = "slide"
	AnimationRotate    = "rotate"
	AnimationShake     = "shake"
	AnimationHeartbeat = "heartbeat"
	AnimationSwing     = "swing"
	AnimationRipple    = "ripple"
	AnimationNone      = "none"
)

// Fixed positions.
const (
	PositionTop    = "top"
	PositionBottom = "bottom"
)

// Device classes.
const (
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
)

// NoopURL is the item URL sentinel for "no destination".
const NoopURL = "#"

// AnimationTypes returns every valid animation type, in the order the admin
// UI lists them.
func AnimationTypes() []string {
	return []string{
		AnimationBounce,
		AnimationZoom,
		AnimationPulse,
		AnimationFade,
		AnimationSlide,
		AnimationRotate,
		AnimationShake,
		AnimationHeartbeat,
		AnimationSwing,
		AnimationRipple,
		AnimationNone,
	}
}

// Positions returns every valid fixed position.
func Positions() []string {
	return []string{PositionTop, PositionBottom}
}

// NavigationSettings is the whole persisted configuration document. Every
// write replaces it entirely.
type NavigationSettings struct {
	Enabled      bool            `json:"enabled" default:"true"`
	Preset       string          `json:"preset" default:"minimal"`
	Items        []NavItem       `json:"items"`
	Style        StyleConfig     `json:"style"`
	Animations   AnimationConfig `json:"animations"`
	Devices      DeviceSet       `json:"devices"`
	DisplayRules DisplayRules    `json:"display_rules"`
	Badges       BadgeConfig     `json:"badges"`
	Advanced     AdvancedConfig  `json:"advanced"`
}

// NavItem is one navigation entry. Order within NavigationSettings.Items is
// display order.
type NavItem struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Icon       string   `json:"icon"`
	URL        string   `json:"url"`
	Enabled    bool     `json:"enabled"`
	Roles      []string `json:"roles"`
	BadgeCount int      `json:"badge_count"`
}

// IsNoop reports whether the item has no real destination.
func (i NavItem) IsNoop() bool {
	return i.URL == "" || i.URL == NoopURL
}

type StyleConfig struct {
	BackgroundColor string `json:"background_color" default:"#ffffff"`
	TextColor       string `json:"text_color" default:"#666666"`
	ActiveColor     string `json:"active_color" default:"#0073aa"`
	HoverColor      string `json:"hover_color" default:"#0073aa"`
	BorderColor     string `json:"border_color" default:"#e0e0e0"`
	Height          int    `json:"height" default:"60"`
	BorderRadius    int    `json:"border_radius"`
	BoxShadow       string `json:"box_shadow" default:"0 -2px 10px rgba(0,0,0,0.1)"`
	FontSize        int    `json:"font_size" default:"12"`
	FontWeight      string `json:"font_weight" default:"400"`
	IconSize        int    `json:"icon_size" default:"20"`
	Padding         int    `json:"padding" default:"10"`
}

type AnimationConfig struct {
	Enabled  bool   `json:"enabled" default:"true"`
	Type     string `json:"type" default:"bounce"`
	Duration int    `json:"duration" default:"300"`
}

// Active reports whether any animation CSS should be produced.
func (a AnimationConfig) Active() bool {
	return a.Enabled && a.Type != AnimationNone
}

// DeviceSet holds the per-device-class configuration. Only the three known
// classes exist.
type DeviceSet struct {
	Mobile  DeviceConfig `json:"mobile" default:"{\"enabled\":true,\"breakpoint\":768}"`
	Tablet  DeviceConfig `json:"tablet" default:"{\"enabled\":true,\"breakpoint\":1024}"`
	Desktop DeviceConfig `json:"desktop" default:"{\"enabled\":false,\"breakpoint\":1025}"`
}

type DeviceConfig struct {
	Enabled    bool `json:"enabled"`
	Breakpoint int  `json:"breakpoint"`
}

type DisplayRules struct {
	UserRoles   []string `json:"user_roles" default:"[]"`
	Pages       []int    `json:"pages" default:"[]"`
	HideOnAdmin bool     `json:"hide_on_admin" default:"true"`
}

type BadgeConfig struct {
	Enabled         bool   `json:"enabled" default:"true"`
	BackgroundColor string `json:"background_color" default:"#ff4444"`
	TextColor       string `json:"text_color" default:"#ffffff"`
	BorderRadius    int    `json:"border_radius" default:"50"`
}

type AdvancedConfig struct {
	ZIndex        int    `json:"z_index" default:"9999"`
	FixedPosition string `json:"fixed_position" default:"bottom"`
	CustomCSS     string `json:"custom_css"`
}

// CSS class names shared by the rendered markup and the generated stylesheet.
const (
	ClassContainer  = "bottom-nav"
	ClassList       = "bottom-nav__items"
	ClassItem       = "bottom-nav__item"
	ClassItemActive = "bottom-nav__item--active"
	ClassIcon       = "bottom-nav__icon"
	ClassLabel      = "bottom-nav__label"
	ClassBadge      = "bottom-nav__badge"
)
