package badges

import (
	"context"

	"github.com/robinjoseph08/golib/logger"
	"github.com/shishobooks/bottomnav/pkg/visibility"
)

// Hook supplies a badge count for an item. The boolean is false when the hook
// has no opinion about the item.
type Hook func(ctx context.Context, itemID string) (int, bool)

// cartItems are the built-in item ids whose badge is the cart size.
var cartItems = map[string]bool{
	"cart": true,
	"shop": true,
}

// Resolver works out the badge count of an item: the cart size for the cart
// items, otherwise the first hook with an answer, otherwise the item's static
// count.
type Resolver struct {
	cart  CartCounter
	hooks []Hook
}

// NewResolver returns a Resolver. cart may be nil when there is no commerce
// service.
func NewResolver(cart CartCounter, hooks ...Hook) *Resolver {
	return &Resolver{cart: cart, hooks: hooks}
}

func (r *Resolver) Count(ctx context.Context, itemID string, user visibility.User, static int) int {
	if cartItems[itemID] && r.cart != nil {
		count, err := r.cart.CartCount(ctx, user)
		if err == nil {
			return count
		}
		logger.FromContext(ctx).Err(err).Warn("cart count unavailable", logger.Data{"item_id": itemID})
	}

	for _, hook := range r.hooks {
		if count, ok := hook(ctx, itemID); ok {
			if count < 0 {
				return 0
			}
			return count
		}
	}

	return static
}

// Lookup binds the resolver to one request. statics maps item ids to their
// static counts.
func (r *Resolver) Lookup(ctx context.Context, user visibility.User, statics map[string]int) func(itemID string) int {
	return func(itemID string) int {
		return r.Count(ctx, itemID, user, statics[itemID])
	}
}
