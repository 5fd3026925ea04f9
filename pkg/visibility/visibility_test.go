package visibility_test

import (
	"context"
	"testing"

	"github.com/shishobooks/bottomnav/pkg/models"
	"github.com/shishobooks/bottomnav/pkg/settings"
	"github.com/shishobooks/bottomnav/pkg/visibility"
	"github.com/stretchr/testify/assert"
)

func TestCanUserSeeItem(t *testing.T) {
	t.Parallel()

	subscriber := visibility.User{Roles: []string{"subscriber"}}

	tests := []struct {
		name     string
		item     models.NavItem
		user     visibility.User
		expected bool
	}{
		{"role mismatch", models.NavItem{Enabled: true, Roles: []string{"editor"}}, subscriber, false},
		{"no roles", models.NavItem{Enabled: true, Roles: []string{}}, subscriber, true},
		{"nil roles", models.NavItem{Enabled: true}, visibility.User{}, true},
		{"disabled", models.NavItem{Enabled: false, Roles: []string{}}, subscriber, false},
		{"one role matches", models.NavItem{Enabled: true, Roles: []string{"editor", "subscriber"}}, subscriber, true},
		{"anonymous with roles", models.NavItem{Enabled: true, Roles: []string{"subscriber"}}, visibility.User{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, visibility.CanUserSeeItem(tt.item, tt.user))
		})
	}
}

func TestShouldDisplayNavigation(t *testing.T) {
	t.Parallel()

	t.Run("disabled document never displays", func(t *testing.T) {
		t.Parallel()
		doc := settings.Defaults()
		doc.Enabled = false
		doc.DisplayRules.HideOnAdmin = false
		assert.False(t, visibility.ShouldDisplayNavigation(doc, visibility.Context{User: visibility.User{Roles: []string{"administrator"}}}))
		assert.False(t, visibility.ShouldDisplayNavigation(nil, visibility.Context{}))
	})

	t.Run("defaults display everywhere but admin", func(t *testing.T) {
		t.Parallel()
		doc := settings.Defaults()
		assert.True(t, visibility.ShouldDisplayNavigation(doc, visibility.Context{}))
		assert.True(t, visibility.ShouldDisplayNavigation(doc, visibility.Context{CurrentPageID: 42}))
		assert.False(t, visibility.ShouldDisplayNavigation(doc, visibility.Context{IsAdminPage: true}))

		doc.DisplayRules.HideOnAdmin = false
		assert.True(t, visibility.ShouldDisplayNavigation(doc, visibility.Context{IsAdminPage: true}))
	})

	t.Run("user roles", func(t *testing.T) {
		t.Parallel()
		doc := settings.Defaults()
		doc.DisplayRules.UserRoles = []string{"customer"}
		assert.False(t, visibility.ShouldDisplayNavigation(doc, visibility.Context{User: visibility.User{Roles: []string{"subscriber"}}}))
		assert.False(t, visibility.ShouldDisplayNavigation(doc, visibility.Context{}))
		assert.True(t, visibility.ShouldDisplayNavigation(doc, visibility.Context{User: visibility.User{Roles: []string{"subscriber", "customer"}}}))
	})

	t.Run("pages", func(t *testing.T) {
		t.Parallel()
		doc := settings.Defaults()
		doc.DisplayRules.Pages = []int{3, 7}
		assert.True(t, visibility.ShouldDisplayNavigation(doc, visibility.Context{CurrentPageID: 7}))
		assert.False(t, visibility.ShouldDisplayNavigation(doc, visibility.Context{CurrentPageID: 4}))
		assert.False(t, visibility.ShouldDisplayNavigation(doc, visibility.Context{}))
	})
}

func TestEvaluator_Policies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var order []string
	e := visibility.New(
		visibility.WithItemPolicy(func(_ context.Context, item models.NavItem, _ visibility.User, visible bool) bool {
			order = append(order, "first")
			return visible || item.ID == "secret"
		}),
		visibility.WithItemPolicy(func(_ context.Context, item models.NavItem, _ visibility.User, visible bool) bool {
			order = append(order, "second")
			return visible && item.ID != "hidden"
		}),
	)

	assert.True(t, e.CanUserSeeItem(ctx, models.NavItem{ID: "secret"}, visibility.User{}))
	assert.Equal(t, []string{"first", "second"}, order)
	assert.False(t, e.CanUserSeeItem(ctx, models.NavItem{ID: "hidden", Enabled: true}, visibility.User{}))
	assert.True(t, e.CanUserSeeItem(ctx, models.NavItem{ID: "home", Enabled: true}, visibility.User{}))
}

func TestEvaluator_DisplayPolicyCantShowDisabledNavigation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	always := visibility.WithDisplayPolicy(func(context.Context, *models.NavigationSettings, visibility.Context, bool) bool {
		return true
	})
	e := visibility.New(always)

	doc := settings.Defaults()
	doc.DisplayRules.Pages = []int{1}
	assert.True(t, e.ShouldDisplayNavigation(ctx, doc, visibility.Context{CurrentPageID: 2}))

	doc.Enabled = false
	assert.False(t, e.ShouldDisplayNavigation(ctx, doc, visibility.Context{}))
}
