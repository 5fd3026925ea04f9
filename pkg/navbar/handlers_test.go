package navbar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/shishobooks/bottomnav/pkg/auth"
	"github.com/shishobooks/bottomnav/pkg/badges"
	"github.com/shishobooks/bottomnav/pkg/binder"
	"github.com/shishobooks/bottomnav/pkg/errcodes"
	"github.com/shishobooks/bottomnav/pkg/models"
	"github.com/shishobooks/bottomnav/pkg/settings"
	"github.com/shishobooks/bottomnav/pkg/visibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticLoader struct {
	doc *models.NavigationSettings
	err error
}

func (l staticLoader) Load(_ context.Context) (*models.NavigationSettings, error) {
	return l.doc, l.err
}

type fixedCart int

func (f fixedCart) CartCount(_ context.Context, _ visibility.User) (int, error) {
	return int(f), nil
}

func newTestServer(t *testing.T, loader Loader) (*echo.Echo, *auth.Service) {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	authService := auth.NewService("test-secret")
	RegisterRoutes(e, loader, visibility.New(), badges.NewResolver(fixedCart(120)), auth.NewMiddleware(authService))
	return e, authService
}

func doRequest(e *echo.Echo, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)
	return rr
}

func TestHandlerRender(t *testing.T) {
	t.Parallel()

	doc := settings.Defaults()
	doc.Items[2].Roles = []string{"customer"}
	e, authService := newTestServer(t, staticLoader{doc: doc})

	rr := doRequest(e, "/navigation?current_url=/my-account/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `data-item-id="shop"`)
	assert.Contains(t, rr.Body.String(), `<span class="bottom-nav__badge" aria-hidden="true">99+</span>`)
	assert.NotContains(t, rr.Body.String(), `data-item-id="account"`)

	token, err := authService.GenerateToken(visibility.User{ID: "5", Roles: []string{"customer"}})
	require.NoError(t, err)
	rr = doRequest(e, "/navigation?current_url=/my-account/", token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `data-item-id="account"`)
	assert.Contains(t, rr.Body.String(), `aria-current="page"`)
}

func TestHandlerRender_Hidden(t *testing.T) {
	t.Parallel()

	doc := settings.Defaults()
	doc.DisplayRules.Pages = []int{10}
	e, _ := newTestServer(t, staticLoader{doc: doc})

	rr := doRequest(e, "/navigation?page_id=3", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = doRequest(e, "/navigation?page_id=10", "")
	assert.NotEmpty(t, rr.Body.String())

	rr = doRequest(e, "/navigation?page_id=10&admin=true", "")
	assert.Empty(t, rr.Body.String())
}

func TestHandlerRender_InvalidQuery(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t, staticLoader{doc: settings.Defaults()})

	rr := doRequest(e, "/navigation?current_url=javascript:alert(1)", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = doRequest(e, "/navigation?page_id=abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestHandlerRender_AbsoluteCurrentURL(t *testing.T) {
	t.Parallel()

	doc := settings.Defaults()
	doc.Items[1].URL = "https://shop.example.com/shop"
	e, _ := newTestServer(t, staticLoader{doc: doc})

	rr := doRequest(e, "/navigation?current_url=https%3A%2F%2Fshop.example.com%2Fshop%2F", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `data-item-id="shop" aria-label="Shop" aria-current="page"`)
	assert.Equal(t, 1, strings.Count(rr.Body.String(), `aria-current="page"`))

	rr = doRequest(e, "/navigation?current_url=ftp%3A%2F%2Fshop.example.com%2Fshop", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestHandlerRender_DuplicateIDsUseFirstStaticCount(t *testing.T) {
	t.Parallel()

	doc := settings.Defaults()
	doc.Items = []models.NavItem{
		{ID: "promo", Label: "Deals", URL: "/deals", Enabled: true, Roles: []string{}, BadgeCount: 4},
		{ID: "promo", Label: "Offers", URL: "/offers", Enabled: true, Roles: []string{}, BadgeCount: 9},
	}
	e, _ := newTestServer(t, staticLoader{doc: doc})

	rr := doRequest(e, "/navigation", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2, strings.Count(rr.Body.String(), `aria-hidden="true">4</span>`))
	assert.NotContains(t, rr.Body.String(), `aria-hidden="true">9</span>`)

	rr = doRequest(e, "/navigation/badges/promo", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"count":4`)
}

func TestHandlerStylesheet(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t, staticLoader{doc: settings.Defaults()})

	rr := doRequest(e, "/navigation.css", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/css; charset=utf-8", rr.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rr.Body.String(), ".bottom-nav {")
}

func TestHandlerBadge(t *testing.T) {
	t.Parallel()

	doc := settings.Defaults()
	doc.Items[0].BadgeCount = 3
	e, _ := newTestServer(t, staticLoader{doc: doc})

	tests := []struct {
		id    string
		count int
		text  string
	}{
		{"cart", 120, "99+"},
		{"shop", 120, "99+"},
		{"home", 3, "3"},
		{"unknown", 0, "0"},
	}

	for _, tt := range tests {
		rr := doRequest(e, "/navigation/badges/"+tt.id, "")
		require.Equal(t, http.StatusOK, rr.Code, tt.id)

		var resp struct {
			OK    bool   `json:"ok"`
			Count int    `json:"count"`
			Text  string `json:"text"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.OK)
		assert.Equal(t, tt.count, resp.Count, tt.id)
		assert.Equal(t, tt.text, resp.Text, tt.id)
	}
}

func TestHandler_LoaderError(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t, staticLoader{err: errors.New("database is closed")})

	rr := doRequest(e, "/navigation.css", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
