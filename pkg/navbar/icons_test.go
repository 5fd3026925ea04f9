package navbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIcon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		kind  IconKind
		value string
	}{
		{"", IconNone, ""},
		{"   ", IconNone, ""},
		{"dashicons-cart", IconDashicon, "dashicons-cart"},
		{"fa-solid fa-house", IconFontClass, "fa-solid fa-house"},
		{"fas  fa-user", IconFontClass, "fas fa-user"},
		{"bi-bag", IconFontClass, "bi-bag"},
		{"bi bi-bag", IconFontClass, "bi bi-bag"},
		{"ri-home-line", IconFontClass, "ri-home-line"},
		{"home", IconSymbol, "home"},
		{"cart", IconSymbol, "cart"},
		{"shopping_cart", IconLigature, "shopping_cart"},
		{"favorite", IconLigature, "favorite"},
		{"★", IconMarkup, "★"},
		{`<svg><path d="M0 0"/></svg>`, IconMarkup, `<svg><path d="M0 0"/></svg>`},
		{`dashicons-cart" onclick="x`, IconMarkup, `dashicons-cart" onclick="x`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			icon := ClassifyIcon(tt.input)
			assert.Equal(t, tt.kind, icon.Kind, icon.Kind.String())
			assert.Equal(t, tt.value, icon.Value)
		})
	}
}
