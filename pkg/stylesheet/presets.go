package stylesheet

import (
	"fmt"
	"strings"

	"github.com/shishobooks/bottomnav/pkg/models"
)

// presetRules holds the extra rules of the presets that need more than their
// merged style values. Every other preset relies on the base block alone.
var presetRules = map[string]func(doc *models.NavigationSettings) string{
	"glassmorphism": func(*models.NavigationSettings) string {
		return container(
			"background-color: rgba(255, 255, 255, 0.25) !important;",
			"backdrop-filter: blur(10px) !important;",
			"-webkit-backdrop-filter: blur(10px) !important;",
			"border: 1px solid rgba(255, 255, 255, 0.18) !important;",
		)
	},
	"neumorphism": func(*models.NavigationSettings) string {
		return container(
			"box-shadow: 9px 9px 16px rgba(163, 177, 198, 0.6), -9px -9px 16px rgba(255, 255, 255, 0.5) !important;",
			"border: none !important;",
		) + rule("."+models.ClassItemActive,
			"box-shadow: inset 4px 4px 8px rgba(163, 177, 198, 0.6), inset -4px -4px 8px rgba(255, 255, 255, 0.5);",
			"border-radius: 12px;",
		)
	},
	"cyberpunk": func(doc *models.NavigationSettings) string {
		border := "border-top"
		if doc.Advanced.FixedPosition == models.PositionTop {
			border = "border-bottom"
		}
		return container(
			"background-color: #0a0a0a !important;",
			border+": 2px solid #00ff41 !important;",
			"box-shadow: 0 0 20px rgba(0, 255, 65, 0.5) !important;",
		) + rule("."+models.ClassItem,
			"color: #00ff41 !important;",
		) + rule("."+models.ClassItemActive+",\n."+models.ClassItem+":hover",
			"color: #ff00ff !important;",
			"text-shadow: 0 0 5px #ff00ff, 0 0 10px #ff00ff;",
		)
	},
	"gradient": func(*models.NavigationSettings) string {
		return container(
			"background: linear-gradient(135deg, #667eea 0%, #764ba2 100%) !important;",
			"border: none !important;",
		) + rule("."+models.ClassItem,
			"color: #ffffff !important;",
		) + rule("."+models.ClassItemActive,
			"color: #ffd700 !important;",
		)
	},
	"floating": func(doc *models.NavigationSettings) string {
		edge := "bottom"
		if doc.Advanced.FixedPosition == models.PositionTop {
			edge = "top"
		}
		return container(
			"left: 16px !important;",
			"right: 16px !important;",
			edge+": 16px !important;",
			"border: none !important;",
			"border-radius: 30px !important;",
			"box-shadow: 0 8px 24px rgba(0, 0, 0, 0.15) !important;",
		)
	},
}

func writePreset(b *strings.Builder, doc *models.NavigationSettings) {
	label := strings.ReplaceAll(doc.Preset, "*/", "")
	fmt.Fprintf(b, "\n/* Preset: %s */\n", label)
	if rules, ok := presetRules[doc.Preset]; ok {
		b.WriteString(rules(doc))
	}
}

func container(decls ...string) string {
	return rule("."+models.ClassContainer, decls...)
}

func rule(selector string, decls ...string) string {
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, d := range decls {
		b.WriteString("\t")
		b.WriteString(d)
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String()
}
