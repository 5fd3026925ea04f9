package settings

import (
	"github.com/creasty/defaults"
	"github.com/shishobooks/bottomnav/pkg/models"
)

// Defaults returns a complete default document. Scalar defaults live in the
// `default` struct tags of the model; the built-in items are listed here.
func Defaults() *models.NavigationSettings {
	doc := &models.NavigationSettings{}
	// The tags are literals checked by tests, so this can't fail at runtime.
	if err := defaults.Set(doc); err != nil {
		panic(err)
	}
	doc.Items = DefaultItems()
	return doc
}

// DefaultItems returns the three built-in navigation items.
func DefaultItems() []models.NavItem {
	return []models.NavItem{
		{
			ID:      "home",
			Label:   "Home",
			Icon:    "dashicons-admin-home",
			URL:     "/",
			Enabled: true,
			Roles:   []string{},
		},
		{
			ID:      "shop",
			Label:   "Shop",
			Icon:    "dashicons-cart",
			URL:     "/shop",
			Enabled: true,
			Roles:   []string{},
		},
		{
			ID:      "account",
			Label:   "Account",
			Icon:    "dashicons-admin-users",
			URL:     "/my-account",
			Enabled: true,
			Roles:   []string{},
		},
	}
}

// defaultItem is the base every sanitized item falls back to.
func defaultItem() models.NavItem {
	return models.NavItem{
		Enabled: true,
		Roles:   []string{},
	}
}
