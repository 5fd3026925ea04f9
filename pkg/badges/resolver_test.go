package badges

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/shishobooks/bottomnav/pkg/visibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCart struct {
	count int
	err   error
}

func (f *fakeCart) CartCount(context.Context, visibility.User) (int, error) {
	return f.count, f.err
}

func TestResolver_Count(t *testing.T) {
	t.Parallel()
	ctx := logger.New().WithContext(context.Background())
	user := visibility.User{ID: "7"}

	hook := func(_ context.Context, itemID string) (int, bool) {
		if itemID == "messages" {
			return 4, true
		}
		return 0, false
	}

	tests := []struct {
		name     string
		cart     CartCounter
		itemID   string
		static   int
		expected int
	}{
		{"cart uses commerce service", &fakeCart{count: 150}, "cart", 2, 150},
		{"shop uses commerce service", &fakeCart{count: 3}, "shop", 0, 3},
		{"no commerce service", nil, "cart", 0, 0},
		{"commerce failure falls back", &fakeCart{err: errors.New("down")}, "cart", 5, 5},
		{"hook answers", nil, "messages", 1, 4},
		{"static fallback", nil, "home", 9, 9},
		{"nothing", nil, "home", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := NewResolver(tt.cart, hook)
			assert.Equal(t, tt.expected, r.Count(ctx, tt.itemID, user, tt.static))
		})
	}
}

func TestResolver_FirstHookWins(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil,
		func(context.Context, string) (int, bool) { return 0, false },
		func(context.Context, string) (int, bool) { return -3, true },
		func(context.Context, string) (int, bool) { return 8, true },
	)
	assert.Equal(t, 0, r.Count(context.Background(), "x", visibility.User{}, 5))
}

func TestResolver_Lookup(t *testing.T) {
	t.Parallel()

	r := NewResolver(&fakeCart{count: 2})
	lookup := r.Lookup(context.Background(), visibility.User{}, map[string]int{"home": 1})
	assert.Equal(t, 2, lookup("cart"))
	assert.Equal(t, 1, lookup("home"))
	assert.Equal(t, 0, lookup("account"))
}

func TestHTTPCart(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("user_id") {
		case "1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"count":12}`))
		case "2":
			_, _ = w.Write([]byte(`not json`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	cart := NewHTTPCart(srv.URL+"/cart/count", time.Second)

	count, err := cart.CartCount(context.Background(), visibility.User{ID: "1"})
	require.NoError(t, err)
	assert.Equal(t, 12, count)

	_, err = cart.CartCount(context.Background(), visibility.User{ID: "2"})
	assert.ErrorContains(t, err, "failed to parse cart count response")

	_, err = cart.CartCount(context.Background(), visibility.User{ID: "3"})
	assert.ErrorContains(t, err, "HTTP 500")
}
