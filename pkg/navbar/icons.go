package navbar

import (
	"regexp"
	"strings"
)

// IconKind says how an item's icon value is turned into markup.
type IconKind int

const (
	IconNone IconKind = iota
	// IconDashicon is a dashicons class, e.g. "dashicons-cart".
	IconDashicon
	// IconFontClass is a class list from one of the supported icon fonts:
	// Font Awesome, Bootstrap Icons or Remix Icon.
	IconFontClass
	// IconSymbol is one of the built-in inline SVG symbols.
	IconSymbol
	// IconLigature is a single bare word rendered as icon font content, e.g.
	// Material Icons' "shopping_cart".
	IconLigature
	// IconMarkup is anything else, treated as user supplied markup.
	IconMarkup
)

func (k IconKind) String() string {
	switch k {
	case IconDashicon:
		return "dashicon"
	case IconFontClass:
		return "font_class"
	case IconSymbol:
		return "symbol"
	case IconLigature:
		return "ligature"
	case IconMarkup:
		return "markup"
	}
	return "none"
}

type Icon struct {
	Kind  IconKind
	Value string
}

var (
	classListRE = regexp.MustCompile(`^[A-Za-z0-9_ -]+$`)
	ligatureRE  = regexp.MustCompile(`^[a-z0-9_]+$`)
)

var fontClassPrefixes = []string{"fa-", "fa ", "fas ", "far ", "fab ", "bi-", "bi ", "ri-"}

// symbols are the built-in inline SVG icons, keyed by identifier. They're
// checked before ligatures, so these words always mean the SVG.
var symbols = map[string]string{
	"home":    `<path d="M3 10.5 12 3l9 7.5V21h-6v-6H9v6H3z"></path>`,
	"cart":    `<path d="M3 3h2l2.4 12.2A2 2 0 0 0 9.4 17H18a2 2 0 0 0 2-1.6L21.5 8H6"></path><circle cx="9" cy="20.5" r="1.5"></circle><circle cx="18" cy="20.5" r="1.5"></circle>`,
	"user":    `<circle cx="12" cy="8" r="4"></circle><path d="M4 21a8 8 0 0 1 16 0"></path>`,
	"search":  `<circle cx="11" cy="11" r="7"></circle><path d="m20 20-3.5-3.5"></path>`,
	"heart":   `<path d="M12 21s-8-5.2-8-11a4.5 4.5 0 0 1 8-2.8A4.5 4.5 0 0 1 20 10c0 5.8-8 11-8 11z"></path>`,
	"bell":    `<path d="M6 17V11a6 6 0 0 1 12 0v6l2 2H4z"></path><path d="M10 21h4"></path>`,
	"menu":    `<path d="M3 6h18M3 12h18M3 18h18"></path>`,
	"star":    `<path d="m12 3 2.8 5.8 6.2.9-4.5 4.4 1.1 6.2L12 17.4l-5.6 2.9 1.1-6.2L3 9.7l6.2-.9z"></path>`,
	"phone":   `<path d="M5 3h4l2 5-2.5 1.5a11 11 0 0 0 6 6L16 13l5 2v4a2 2 0 0 1-2 2A16 16 0 0 1 3 5a2 2 0 0 1 2-2z"></path>`,
	"message": `<path d="M4 4h16v12H8l-4 4z"></path>`,
}

// ClassifyIcon works out what kind of icon value is. Classification is by
// shape alone, so it never fails.
func ClassifyIcon(value string) Icon {
	v := strings.TrimSpace(value)
	if v == "" {
		return Icon{Kind: IconNone}
	}

	if strings.HasPrefix(v, "dashicons-") && classListRE.MatchString(v) {
		return Icon{Kind: IconDashicon, Value: v}
	}

	for _, prefix := range fontClassPrefixes {
		if strings.HasPrefix(v, prefix) && classListRE.MatchString(v) {
			return Icon{Kind: IconFontClass, Value: strings.Join(strings.Fields(v), " ")}
		}
	}

	if _, ok := symbols[v]; ok {
		return Icon{Kind: IconSymbol, Value: v}
	}

	if ligatureRE.MatchString(v) {
		return Icon{Kind: IconLigature, Value: v}
	}

	return Icon{Kind: IconMarkup, Value: v}
}
