package binder

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type params struct {
	Hello string `json:"hello" mod:"trim" validate:"max=9"`
	Omit  string `json:"-"`
}

var (
	goodJSON             = `{"hello":" world "}`
	unknownFieldsErrJSON = `{"hello":"world","foo":"bar"}`
	typeErrJSON          = `{"hello":123}`
	validationErrJSON    = `{"hello":"0123456789"}`
)

func TestNew(t *testing.T) {
	t.Parallel()
	b, err := New()
	require.NoError(t, err)
	assert.NotNil(t, b)

	t.Run("only allows application/json and application/x-www-form-urlencoded", func(tt *testing.T) {
		c := newContext(goodJSON, echo.MIMEApplicationXML)
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, err.Error(), "Unsupported Media Type")
	})

	t.Run("disallows unknown fields", func(tt *testing.T) {
		c := newContext(unknownFieldsErrJSON, echo.MIMEApplicationJSON)
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, err.Error(), `Unknown Parameter "foo"`)
	})

	t.Run("returns a good message for type errors", func(tt *testing.T) {
		c := newContext(typeErrJSON, echo.MIMEApplicationJSON)
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, err.Error(), `"hello" should be of type string`)
	})

	t.Run("use mod tag to modify params", func(tt *testing.T) {
		c := newContext(goodJSON, echo.MIMEApplicationJSON)
		p := params{}
		err = b.Bind(&p, c)
		require.NoError(tt, err)
		assert.Equal(tt, "world", p.Hello)
	})

	t.Run("use validate tag to validate params", func(tt *testing.T) {
		c := newContext(validationErrJSON, echo.MIMEApplicationJSON)
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, err.Error(), "length must be less than or equal to 9 characters")
	})
}

func newContext(payload, mime string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(echo.POST, "/", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, mime)
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr)
}

type queryParams struct {
	Key  string `query:"key" json:"key" mod:"trim,lcase" validate:"key"`
	Path string `query:"path" json:"path" mod:"trim" validate:"path"`
	URL  string `query:"url" json:"url" validate:"omitempty,location"`
	Page int    `query:"page" json:"page" default:"1"`
}

func TestBind_Query(t *testing.T) {
	t.Parallel()
	b, err := New()
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		want  queryParams
		err   string
	}{
		{"defaults and modifiers", "key=+Dark+&path=/shop", queryParams{Key: "dark", Path: "/shop", Page: 1}, ""},
		{"explicit page", "page=3", queryParams{Page: 3}, ""},
		{"bad key", "key=no%20spaces", queryParams{}, `"key" may only contain lowercase letters`},
		{"absolute path", "path=https://example.com", queryParams{}, `"path" must be a path starting with /`},
		{"protocol relative path", "path=//example.com", queryParams{}, `"path" must be a path starting with /`},
		{"relative location", "url=/shop/", queryParams{URL: "/shop/", Page: 1}, ""},
		{"absolute location", "url=https%3A%2F%2Fshop.example.com%2Fshop", queryParams{URL: "https://shop.example.com/shop", Page: 1}, ""},
		{"script location", "url=javascript:alert(1)", queryParams{}, `"url" must be a path starting with / or an http(s) URL`},
		{"ftp location", "url=ftp%3A%2F%2Fexample.com%2Ffile", queryParams{}, `"url" must be a path starting with / or an http(s) URL`},
		{"unknown parameter", "foo=bar", queryParams{}, `Unknown Parameter "foo"`},
		{"type error", "page=abc", queryParams{}, `"page" should be of type int`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			req := httptest.NewRequest(echo.GET, "/?"+tt.query, nil)
			c := e.NewContext(req, httptest.NewRecorder())

			p := queryParams{}
			err := b.Bind(&p, c)
			if tt.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}
