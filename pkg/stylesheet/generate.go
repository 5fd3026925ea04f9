package stylesheet

import (
	"fmt"
	"strings"

	"github.com/shishobooks/bottomnav/pkg/models"
)

// Generate returns the stylesheet for doc: base rules, the animation (when
// one is active), the preset block, device media queries and finally the
// custom CSS. The same document always produces the same text.
func Generate(doc *models.NavigationSettings) string {
	var b strings.Builder

	writeBase(&b, doc)
	if doc.Animations.Active() {
		writeAnimation(&b, doc)
	}
	writePreset(&b, doc)
	writeDevices(&b, doc.Devices)

	if strings.TrimSpace(doc.Advanced.CustomCSS) != "" {
		b.WriteString("\n/* Custom CSS */\n")
		b.WriteString(doc.Advanced.CustomCSS)
		b.WriteString("\n")
	}

	return b.String()
}

func writeBase(b *strings.Builder, doc *models.NavigationSettings) {
	s := doc.Style
	edge, border := "bottom", "border-top"
	if doc.Advanced.FixedPosition == models.PositionTop {
		edge, border = "top", "border-bottom"
	}

	b.WriteString(container(
		"position: fixed !important;",
		"left: 0 !important;",
		"right: 0 !important;",
		edge+": 0 !important;",
		fmt.Sprintf("background-color: %s !important;", s.BackgroundColor),
		fmt.Sprintf("%s: 1px solid %s !important;", border, s.BorderColor),
		fmt.Sprintf("height: %dpx !important;", s.Height),
		fmt.Sprintf("padding: %dpx 0 !important;", s.Padding),
		fmt.Sprintf("box-shadow: %s !important;", cssValue(s.BoxShadow)),
		fmt.Sprintf("border-radius: %dpx !important;", s.BorderRadius),
		fmt.Sprintf("z-index: %d !important;", doc.Advanced.ZIndex),
		"box-sizing: border-box !important;",
	))
	b.WriteString(rule("."+models.ClassItem,
		fmt.Sprintf("color: %s !important;", s.TextColor),
		fmt.Sprintf("font-size: %dpx !important;", s.FontSize),
		fmt.Sprintf("font-weight: %s !important;", cssValue(s.FontWeight)),
	))
	b.WriteString(rule("."+models.ClassItem+":hover,\n."+models.ClassItem+":focus",
		fmt.Sprintf("color: %s !important;", s.HoverColor),
	))
	b.WriteString(rule("."+models.ClassItemActive,
		fmt.Sprintf("color: %s !important;", s.ActiveColor),
	))
	b.WriteString(rule("."+models.ClassIcon,
		fmt.Sprintf("font-size: %dpx !important;", s.IconSize),
		fmt.Sprintf("width: %dpx !important;", s.IconSize),
		fmt.Sprintf("height: %dpx !important;", s.IconSize),
		fmt.Sprintf("line-height: %dpx !important;", s.IconSize),
	))
	b.WriteString(rule("."+models.ClassIcon+" svg",
		fmt.Sprintf("width: %dpx !important;", s.IconSize),
		fmt.Sprintf("height: %dpx !important;", s.IconSize),
	))
	b.WriteString(rule("."+models.ClassBadge,
		fmt.Sprintf("background-color: %s !important;", doc.Badges.BackgroundColor),
		fmt.Sprintf("color: %s !important;", doc.Badges.TextColor),
		fmt.Sprintf("border-radius: %d%% !important;", doc.Badges.BorderRadius),
	))
}

// writeDevices hides the container over the width range of every disabled
// device class. The ranges are derived from the breakpoints as configured and
// assume mobile < tablet < desktop.
func writeDevices(b *strings.Builder, devices models.DeviceSet) {
	var queries []string
	if !devices.Mobile.Enabled {
		queries = append(queries, fmt.Sprintf("(max-width: %dpx)", devices.Mobile.Breakpoint))
	}
	if !devices.Tablet.Enabled {
		queries = append(queries, fmt.Sprintf("(min-width: %dpx) and (max-width: %dpx)", devices.Mobile.Breakpoint+1, devices.Tablet.Breakpoint))
	}
	if !devices.Desktop.Enabled {
		queries = append(queries, fmt.Sprintf("(min-width: %dpx)", devices.Desktop.Breakpoint))
	}
	if len(queries) == 0 {
		return
	}

	b.WriteString("\n/* Devices */\n")
	for _, q := range queries {
		fmt.Fprintf(b, "@media %s {\n\t.%s {\n\t\tdisplay: none !important;\n\t}\n}\n", q, models.ClassContainer)
	}
}

// cssValue keeps a free-text value from closing its declaration or rule.
func cssValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>':
			return -1
		}
		return r
	}, s)
}
