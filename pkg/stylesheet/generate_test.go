package stylesheet

import (
	"strings"
	"testing"

	"github.com/shishobooks/bottomnav/pkg/models"
	"github.com/shishobooks/bottomnav/pkg/settings"
	"github.com/stretchr/testify/assert"
)

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	doc := settings.Defaults()
	assert.Equal(t, Generate(doc), Generate(doc))
}

func TestGenerate_BaseBlock(t *testing.T) {
	t.Parallel()

	css := Generate(settings.Defaults())
	assert.True(t, strings.HasPrefix(css, ".bottom-nav {\n"))
	assert.Contains(t, css, "bottom: 0 !important;")
	assert.Contains(t, css, "background-color: #ffffff !important;")
	assert.Contains(t, css, "border-top: 1px solid #e0e0e0 !important;")
	assert.Contains(t, css, "height: 60px !important;")
	assert.Contains(t, css, "z-index: 9999 !important;")
	assert.Contains(t, css, "box-shadow: 0 -2px 10px rgba(0,0,0,0.1) !important;")
	assert.Contains(t, css, ".bottom-nav__item--active {\n\tcolor: #0073aa !important;\n}")
	assert.Contains(t, css, "border-radius: 50% !important;")
}

func TestGenerate_TopPosition(t *testing.T) {
	t.Parallel()

	doc := settings.Defaults()
	doc.Advanced.FixedPosition = models.PositionTop

	css := Generate(doc)
	assert.Contains(t, css, "top: 0 !important;")
	assert.Contains(t, css, "border-bottom: 1px solid #e0e0e0 !important;")
	assert.NotContains(t, css, "bottom: 0 !important;")
}

func TestGenerate_NoKeyframesWhenAnimationsDisabled(t *testing.T) {
	t.Parallel()

	doc := settings.Defaults()
	doc.Animations.Enabled = false
	css := Generate(doc)
	assert.NotContains(t, css, "@keyframes")
	assert.NotContains(t, css, "transition-duration")

	doc = settings.Defaults()
	doc.Animations.Type = models.AnimationNone
	assert.NotContains(t, Generate(doc), "@keyframes")
}

func TestGenerate_Animations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     string
		contains []string
	}{
		{models.AnimationBounce, []string{
			"0%, 20%, 50%, 80%, 100% { transform: translateY(0px); }",
			"40% { transform: translateY(-8px); }",
			"60% { transform: translateY(-4px); }",
			"40% { transform: translateY(-12px); }",
		}},
		{models.AnimationZoom, []string{"50% { transform: scale(1.2); }", "50% { transform: scale(1.35); }"}},
		{models.AnimationPulse, []string{"transform: scale(1.1); opacity: 0.7;", "transform: scale(1.2); opacity: 0.5;"}},
		{models.AnimationFade, []string{"50% { opacity: 0.5; }", "50% { opacity: 0.2; }"}},
		{models.AnimationSlide, []string{"translateY(-6px)", "translateY(-10px)"}},
		{models.AnimationRotate, []string{"rotate(360deg)", "rotate(720deg)"}},
		{models.AnimationShake, []string{"20%, 60% { transform: translateX(-3px); }", "40%, 80% { transform: translateX(6px); }"}},
		{models.AnimationHeartbeat, []string{
			"14%, 42% { transform: scale(1.15); }",
			"animation: bottom-nav-heartbeat-click 600ms ease-in-out;",
		}},
		{models.AnimationSwing, []string{"transform-origin: top center;", "rotate(15deg)", "rotate(25deg)"}},
		{models.AnimationRipple, []string{
			".bottom-nav__item:hover {\n\tanimation: bottom-nav-ripple-hover 300ms ease-in-out;",
			"0% { box-shadow: 0 0 0 0 rgba(0, 115, 170, 0.4); }",
			"100% { box-shadow: 0 0 0 10px rgba(0, 115, 170, 0); }",
			"100% { box-shadow: 0 0 0 20px rgba(0, 115, 170, 0); }",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			t.Parallel()

			doc := settings.Defaults()
			doc.Animations.Type = tt.kind
			css := Generate(doc)

			assert.Contains(t, css, "transition-duration: 300ms !important;")
			assert.Contains(t, css, "@keyframes bottom-nav-"+tt.kind+"-hover {")
			assert.Contains(t, css, "@keyframes bottom-nav-"+tt.kind+"-click {")
			assert.Equal(t, 2, strings.Count(css, "@keyframes"))
			for _, s := range tt.contains {
				assert.Contains(t, css, s)
			}
		})
	}
}

func TestGenerate_PresetBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		preset   string
		contains string
	}{
		{"glassmorphism", "backdrop-filter: blur(10px) !important;"},
		{"neumorphism", "box-shadow: inset 4px 4px 8px"},
		{"cyberpunk", "text-shadow: 0 0 5px #ff00ff"},
		{"gradient", "linear-gradient(135deg"},
		{"floating", "border-radius: 30px !important;"},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			t.Parallel()
			doc := settings.Defaults()
			doc.Preset = tt.preset
			css := Generate(doc)
			assert.Contains(t, css, "/* Preset: "+tt.preset+" */\n.bottom-nav {")
			assert.Contains(t, css, tt.contains)
		})
	}

	t.Run("other presets only get the label", func(t *testing.T) {
		t.Parallel()
		for _, preset := range []string{"minimal", "dark", "unknown", ""} {
			doc := settings.Defaults()
			doc.Preset = preset
			doc.Devices.Desktop.Enabled = true
			css := Generate(doc)
			assert.True(t, strings.HasSuffix(css, "/* Preset: "+preset+" */\n"), preset)
		}
	})

	t.Run("comment can't be closed early", func(t *testing.T) {
		t.Parallel()
		doc := settings.Defaults()
		doc.Preset = "x */ body { display: none }"
		assert.Contains(t, Generate(doc), "/* Preset: x  body { display: none } */")
	})
}

func TestGenerate_Devices(t *testing.T) {
	t.Parallel()

	t.Run("desktop disabled by default", func(t *testing.T) {
		t.Parallel()
		css := Generate(settings.Defaults())
		assert.Contains(t, css, "@media (min-width: 1025px) {\n\t.bottom-nav {\n\t\tdisplay: none !important;\n\t}\n}")
		assert.NotContains(t, css, "max-width")
	})

	t.Run("mobile and tablet ranges", func(t *testing.T) {
		t.Parallel()
		doc := settings.Defaults()
		doc.Devices.Mobile.Enabled = false
		doc.Devices.Tablet.Enabled = false
		doc.Devices.Desktop.Enabled = true
		css := Generate(doc)
		assert.Contains(t, css, "@media (max-width: 768px)")
		assert.Contains(t, css, "@media (min-width: 769px) and (max-width: 1024px)")
		assert.NotContains(t, css, "min-width: 1025px")
	})

	t.Run("all enabled emits nothing", func(t *testing.T) {
		t.Parallel()
		doc := settings.Defaults()
		doc.Devices.Desktop.Enabled = true
		assert.NotContains(t, Generate(doc), "@media")
	})

	t.Run("out of order breakpoints pass through", func(t *testing.T) {
		t.Parallel()
		doc := settings.Defaults()
		doc.Devices.Mobile.Breakpoint = 1200
		doc.Devices.Tablet.Enabled = false
		doc.Devices.Tablet.Breakpoint = 800
		assert.Contains(t, Generate(doc), "@media (min-width: 1201px) and (max-width: 800px)")
	})
}

func TestGenerate_CustomCSS(t *testing.T) {
	t.Parallel()

	doc := settings.Defaults()
	doc.Advanced.CustomCSS = ".bottom-nav { opacity: 0.9; }"
	css := Generate(doc)
	assert.True(t, strings.HasSuffix(css, "\n/* Custom CSS */\n.bottom-nav { opacity: 0.9; }\n"))

	doc.Advanced.CustomCSS = "   "
	assert.NotContains(t, Generate(doc), "Custom CSS")
}

func TestGenerate_FreeTextCantBreakOutOfDeclaration(t *testing.T) {
	t.Parallel()

	doc := settings.Defaults()
	doc.Style.BoxShadow = "none; } body { display: none"
	css := Generate(doc)
	assert.Contains(t, css, "box-shadow: none  body  display: none !important;")
}
