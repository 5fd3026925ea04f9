package settings

import (
	"math"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"github.com/iancoleman/strcase"
	"github.com/segmentio/encoding/json"
	"github.com/shishobooks/bottomnav/pkg/htmlutil"
	"github.com/shishobooks/bottomnav/pkg/models"
)

// maxInt caps coerced integers so they always fit in CSS and in 32-bit
// columns.
const maxInt = math.MaxInt32

var (
	hexColorRE      = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	leadingNumberRE = regexp.MustCompile(`^[-+]?\d+(\.\d*)?`)
)

var urlValidator = validator.New()

var allowedURLSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"tel":    true,
}

// toMap turns arbitrary input into a JSON object tree. Typed values (such as
// an already sanitized document) are round-tripped through JSON.
func toMap(raw interface{}) (map[string]interface{}, bool) {
	switch v := raw.(type) {
	case nil:
		return nil, false
	case map[string]interface{}:
		return v, true
	case []interface{}, string, bool, float64, int:
		return nil, false
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, false
	}
	m := map[string]interface{}{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, false
	}
	return m, true
}

// lookup finds key in m. Keys are snake_case on the wire, but camelCase and
// other spellings that normalise to the same snake_case key are accepted too.
func lookup(m map[string]interface{}, key string) (interface{}, bool) {
	if m == nil {
		return nil, false
	}
	if v, ok := m[key]; ok {
		return v, true
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strcase.ToSnake(k) == key {
			return m[k], true
		}
	}
	return nil, false
}

func toBool(v interface{}) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case float64:
		return b != 0, true
	case int:
		return b != 0, true
	case json.Number:
		f, err := b.Float64()
		if err != nil {
			return false, false
		}
		return f != 0, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "", "0", "false", "off", "no":
			return false, true
		}
		return true, true
	}
	return false, false
}

func toInt(v interface{}) (int, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		match := leadingNumberRE.FindString(strings.TrimSpace(n))
		if match == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	f = math.Trunc(f)
	if f < 0 {
		return 0, true
	}
	if f > maxInt {
		return maxInt, true
	}
	return int(f), true
}

func toText(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case int:
		return strconv.Itoa(s), true
	case json.Number:
		return s.String(), true
	}
	return "", false
}

func isHexColor(s string) bool {
	return hexColorRE.MatchString(s)
}

// slugify produces an item id: lowercase ASCII letters, digits, dashes and
// underscores.
func slugify(s string) string {
	return slug.Make(htmlutil.SanitizeText(s))
}

// sanitizeURL accepts relative references and absolute http(s), mailto and tel
// URLs. Anything else becomes the empty string.
func sanitizeURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || s == models.NoopURL {
		return s
	}
	if strings.ContainsAny(s, " <>\"'`\\") || strings.IndexFunc(s, unicode.IsControl) >= 0 {
		return ""
	}

	u, err := url.Parse(s)
	if err != nil {
		return ""
	}

	if u.Scheme == "" {
		if strings.HasPrefix(s, "//") && u.Host == "" {
			return ""
		}
		return s
	}

	scheme := strings.ToLower(u.Scheme)
	if !allowedURLSchemes[scheme] {
		return ""
	}
	switch scheme {
	case "http", "https":
		if u.Host == "" || urlValidator.Var(s, "url") != nil {
			return ""
		}
	default:
		if u.Opaque == "" {
			return ""
		}
	}
	return s
}
