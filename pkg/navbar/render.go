package navbar

import (
	"context"
	"strconv"
	"strings"

	"github.com/shishobooks/bottomnav/pkg/htmlutil"
	"github.com/shishobooks/bottomnav/pkg/models"
	"github.com/shishobooks/bottomnav/pkg/visibility"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// maxBadge is the largest count a badge shows as a number.
const maxBadge = 99

// Context is what the renderer needs to know about the request.
type Context struct {
	// CurrentURL is the URL (or path) of the page being rendered.
	CurrentURL string
	User       visibility.User
	// Items overrides the document's items when non-nil.
	Items []models.NavItem
	// BadgeLookup returns the badge count for an item id. When nil, items
	// show their static count.
	BadgeLookup func(itemID string) int
}

// Renderer turns a settings document into the navigation bar markup.
type Renderer struct {
	evaluator *visibility.Evaluator
}

// NewRenderer returns a Renderer. A nil evaluator applies only the default
// visibility rules.
func NewRenderer(evaluator *visibility.Evaluator) *Renderer {
	if evaluator == nil {
		evaluator = visibility.New()
	}
	return &Renderer{evaluator: evaluator}
}

// Render returns the markup fragment for doc, or "" when the navigation is
// disabled or there are no items. It never fails.
func (r *Renderer) Render(ctx context.Context, doc *models.NavigationSettings, rc Context) string {
	if doc == nil || !doc.Enabled {
		return ""
	}
	items := rc.Items
	if items == nil {
		items = doc.Items
	}
	if len(items) == 0 {
		return ""
	}

	nav := element(atom.Nav,
		"class", containerClass(doc),
		"role", "navigation",
		"aria-label", "Bottom navigation",
	)
	list := element(atom.Div, "class", models.ClassList, "role", "menubar")
	nav.AppendChild(list)

	for _, item := range items {
		if !r.evaluator.CanUserSeeItem(ctx, item, rc.User) {
			continue
		}
		count := item.BadgeCount
		if rc.BadgeLookup != nil {
			count = rc.BadgeLookup(item.ID)
		}
		list.AppendChild(renderItem(doc, item, isCurrent(item, rc.CurrentURL), count))
	}

	var b strings.Builder
	// Rendering into a strings.Builder can't fail for a tree built here.
	_ = html.Render(&b, nav)
	return b.String()
}

func containerClass(doc *models.NavigationSettings) string {
	classes := []string{
		models.ClassContainer,
		models.ClassContainer + "--" + doc.Advanced.FixedPosition,
	}
	if doc.Preset != "" {
		classes = append(classes, models.ClassContainer+"--preset-"+doc.Preset)
	}
	if doc.Animations.Active() {
		classes = append(classes, models.ClassContainer+"--anim-"+doc.Animations.Type)
	}
	return strings.Join(classes, " ")
}

func renderItem(doc *models.NavigationSettings, item models.NavItem, current bool, count int) *html.Node {
	class := models.ClassItem
	if current {
		class += " " + models.ClassItemActive
	}
	href := item.URL
	if item.IsNoop() {
		href = models.NoopURL
	}

	attrs := []string{
		"href", href,
		"class", class,
		"role", "menuitem",
		"data-item-id", item.ID,
	}
	if item.Label != "" {
		attrs = append(attrs, "aria-label", item.Label)
	}
	if current {
		attrs = append(attrs, "aria-current", "page")
	}
	a := element(atom.A, attrs...)

	if icon := renderIcon(ClassifyIcon(item.Icon)); icon != nil {
		a.AppendChild(icon)
	}
	if doc.Badges.Enabled && count > 0 {
		badge := element(atom.Span, "class", models.ClassBadge, "aria-hidden", "true")
		badge.AppendChild(text(BadgeText(count)))
		a.AppendChild(badge)
	}
	if item.Label != "" {
		label := element(atom.Span, "class", models.ClassLabel)
		label.AppendChild(text(item.Label))
		a.AppendChild(label)
	}
	return a
}

// BadgeText formats a badge count for display.
func BadgeText(count int) string {
	if count > maxBadge {
		return strconv.Itoa(maxBadge) + "+"
	}
	return strconv.Itoa(count)
}

func renderIcon(icon Icon) *html.Node {
	switch icon.Kind {
	case IconDashicon:
		return element(atom.Span, "class", models.ClassIcon+" dashicons "+icon.Value, "aria-hidden", "true")
	case IconFontClass:
		return element(atom.I, "class", models.ClassIcon+" "+icon.Value, "aria-hidden", "true")
	case IconSymbol:
		span := element(atom.Span, "class", models.ClassIcon+" "+models.ClassIcon+"--symbol", "aria-hidden", "true")
		appendMarkup(span, `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">`+symbols[icon.Value]+`</svg>`)
		return span
	case IconLigature:
		span := element(atom.Span, "class", models.ClassIcon+" material-icons", "aria-hidden", "true")
		span.AppendChild(text(icon.Value))
		return span
	case IconMarkup:
		span := element(atom.Span, "class", models.ClassIcon, "aria-hidden", "true")
		appendMarkup(span, htmlutil.SanitizeMarkup(icon.Value))
		return span
	}
	return nil
}

// appendMarkup parses trusted or already sanitized markup into parent.
func appendMarkup(parent *html.Node, markup string) {
	nodes, err := html.ParseFragment(strings.NewReader(markup), parent)
	if err != nil {
		return
	}
	for _, n := range nodes {
		parent.AppendChild(n)
	}
}

// isCurrent compares URLs ignoring trailing slashes. Items without a real
// destination are never current.
func isCurrent(item models.NavItem, currentURL string) bool {
	if item.IsNoop() || currentURL == "" {
		return false
	}
	return normalizeURL(item.URL) == normalizeURL(currentURL)
}

func normalizeURL(u string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(u), "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
