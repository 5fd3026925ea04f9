package badges

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/shishobooks/bottomnav/pkg/visibility"
)

// CartCounter reports how many items are in a viewer's cart.
type CartCounter interface {
	CartCount(ctx context.Context, user visibility.User) (int, error)
}

// HTTPCart asks a commerce service for the cart size. The service is called
// with GET <url>?user_id=<id> and must answer {"count": n}.
type HTTPCart struct {
	client  *http.Client
	baseURL string
}

func NewHTTPCart(baseURL string, timeout time.Duration) *HTTPCart {
	return &HTTPCart{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

type cartResponse struct {
	Count int `json:"count"`
}

func (c *HTTPCart) CartCount(ctx context.Context, user visibility.User) (int, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return 0, errors.Wrap(err, "invalid cart count URL")
	}
	q := u.Query()
	q.Set("user_id", user.ID)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create cart count request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "failed to fetch cart count")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, errors.Errorf("failed to fetch cart count: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return 0, errors.Wrap(err, "failed to read cart count response")
	}

	var parsed cartResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, errors.Wrap(err, "failed to parse cart count response")
	}
	if parsed.Count < 0 {
		return 0, nil
	}
	return parsed.Count, nil
}
