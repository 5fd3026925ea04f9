package visibility

import (
	"context"

	"github.com/shishobooks/bottomnav/pkg/models"
)

// User is the viewer a page is rendered for. An anonymous viewer has no ID
// and no roles.
type User struct {
	ID    string   `json:"id"`
	Roles []string `json:"roles"`
}

// Context describes the request the navigation is rendered for.
type Context struct {
	User          User
	CurrentPageID int
	IsAdminPage   bool
}

// ItemPolicy can override whether a user sees an item. It receives the result
// so far and returns the new result.
type ItemPolicy func(ctx context.Context, item models.NavItem, user User, visible bool) bool

// DisplayPolicy can override whether the navigation is shown at all.
type DisplayPolicy func(ctx context.Context, doc *models.NavigationSettings, vctx Context, visible bool) bool

// CanUserSeeItem reports whether user may see item: the item must be enabled
// and, when it lists roles, the user must hold at least one of them.
func CanUserSeeItem(item models.NavItem, user User) bool {
	if !item.Enabled {
		return false
	}
	if len(item.Roles) > 0 && !intersects(item.Roles, user.Roles) {
		return false
	}
	return true
}

// ShouldDisplayNavigation reports whether the navigation renders at all for
// the given request. Hiding per device class is left to the stylesheet.
func ShouldDisplayNavigation(doc *models.NavigationSettings, vctx Context) bool {
	if doc == nil || !doc.Enabled {
		return false
	}
	rules := doc.DisplayRules
	if len(rules.UserRoles) > 0 && !intersects(rules.UserRoles, vctx.User.Roles) {
		return false
	}
	if len(rules.Pages) > 0 && !containsInt(rules.Pages, vctx.CurrentPageID) {
		return false
	}
	if rules.HideOnAdmin && vctx.IsAdminPage {
		return false
	}
	return true
}

// Evaluator applies the default predicates followed by any registered
// policies, in registration order.
type Evaluator struct {
	itemPolicies    []ItemPolicy
	displayPolicies []DisplayPolicy
}

type Option func(*Evaluator)

func WithItemPolicy(p ItemPolicy) Option {
	return func(e *Evaluator) {
		e.itemPolicies = append(e.itemPolicies, p)
	}
}

func WithDisplayPolicy(p DisplayPolicy) Option {
	return func(e *Evaluator) {
		e.displayPolicies = append(e.displayPolicies, p)
	}
}

func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Evaluator) CanUserSeeItem(ctx context.Context, item models.NavItem, user User) bool {
	visible := CanUserSeeItem(item, user)
	for _, p := range e.itemPolicies {
		visible = p(ctx, item, user, visible)
	}
	return visible
}

// ShouldDisplayNavigation never lets a policy show a disabled navigation.
func (e *Evaluator) ShouldDisplayNavigation(ctx context.Context, doc *models.NavigationSettings, vctx Context) bool {
	if doc == nil || !doc.Enabled {
		return false
	}
	visible := ShouldDisplayNavigation(doc, vctx)
	for _, p := range e.displayPolicies {
		visible = p(ctx, doc, vctx, visible)
	}
	return visible
}

func intersects(a, b []string) bool {
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		if _, ok := set[s]; ok {
			return true
		}
	}
	return false
}

func containsInt(list []int, v int) bool {
	for _, n := range list {
		if n == v {
			return true
		}
	}
	return false
}
