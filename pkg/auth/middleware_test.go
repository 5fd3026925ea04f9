package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shishobooks/bottomnav/pkg/errcodes"
	"github.com/shishobooks/bottomnav/pkg/visibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(token string, cookie bool) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	if token != "" {
		if cookie {
			req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		} else {
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		}
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestMiddlewareAuthenticate(t *testing.T) {
	t.Parallel()

	svc := NewService("test-secret")
	middleware := NewMiddleware(svc)
	admin := visibility.User{ID: "1", Roles: []string{"administrator"}}
	token, err := svc.GenerateToken(admin, CapabilityManageOptions)
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    string
		cookie   bool
		wantCode int
	}{
		{"bearer header", token, false, 0},
		{"cookie", token, true, 0},
		{"missing token", "", false, http.StatusUnauthorized},
		{"invalid token", "nope", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := newContext(tt.token, tt.cookie)

			nextCalled := false
			err := middleware.Authenticate(func(c echo.Context) error {
				nextCalled = true
				assert.Equal(t, admin, GetUserFromContext(c))
				return nil
			})(c)

			if tt.wantCode == 0 {
				require.NoError(t, err)
				assert.True(t, nextCalled)
				return
			}
			require.Error(t, err)
			assert.False(t, nextCalled)
			var codeErr *errcodes.Error
			require.ErrorAs(t, err, &codeErr)
			assert.Equal(t, tt.wantCode, codeErr.HTTPCode)
		})
	}
}

func TestMiddlewareAuthenticateOptional(t *testing.T) {
	t.Parallel()

	svc := NewService("test-secret")
	middleware := NewMiddleware(svc)

	c := newContext("garbage", false)
	var got visibility.User
	err := middleware.AuthenticateOptional(func(c echo.Context) error {
		got = GetUserFromContext(c)
		return nil
	})(c)
	require.NoError(t, err)
	assert.Equal(t, visibility.User{Roles: []string{}}, got)

	token, err := svc.GenerateToken(visibility.User{ID: "7", Roles: []string{"customer"}})
	require.NoError(t, err)
	c = newContext(token, true)
	err = middleware.AuthenticateOptional(func(c echo.Context) error {
		got = GetUserFromContext(c)
		return nil
	})(c)
	require.NoError(t, err)
	assert.Equal(t, visibility.User{ID: "7", Roles: []string{"customer"}}, got)
}

func TestMiddlewareRequireCapability(t *testing.T) {
	t.Parallel()

	svc := NewService("test-secret")
	middleware := NewMiddleware(svc)
	next := func(_ echo.Context) error { return nil }
	chain := func(h echo.HandlerFunc) echo.HandlerFunc {
		return middleware.Authenticate(middleware.RequireCapability(CapabilityManageOptions)(h))
	}

	adminToken, err := svc.GenerateToken(visibility.User{ID: "1"}, CapabilityManageOptions)
	require.NoError(t, err)
	require.NoError(t, chain(next)(newContext(adminToken, false)))

	customerToken, err := svc.GenerateToken(visibility.User{ID: "2"}, "read")
	require.NoError(t, err)
	err = chain(next)(newContext(customerToken, false))
	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusForbidden, codeErr.HTTPCode)

	// Without Authenticate in front there are no claims at all.
	err = middleware.RequireCapability(CapabilityManageOptions)(next)(newContext(adminToken, false))
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusUnauthorized, codeErr.HTTPCode)
}
