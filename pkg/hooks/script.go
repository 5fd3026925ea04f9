package hooks

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/dop251/goja"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/shishobooks/bottomnav/pkg/badges"
	"github.com/shishobooks/bottomnav/pkg/models"
	"github.com/shishobooks/bottomnav/pkg/visibility"
)

// callTimeout bounds a single hook call so a runaway script can't hold up a
// page render.
const callTimeout = 100 * time.Millisecond

// Script is an operator-supplied JavaScript file that defines a `hooks`
// global. Both hooks are optional:
//
//	var hooks = {
//	  badgeCount: function (itemId) { return 3; },
//	  canSeeItem: function (item, user, visible) { return visible; },
//	};
type Script struct {
	// goja runtimes aren't safe for concurrent use.
	mu sync.Mutex
	vm *goja.Runtime

	badgeCount goja.Callable
	canSeeItem goja.Callable
}

// Load reads and runs the script at path.
func Load(path string) (*Script, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read hooks file")
	}
	return Parse(path, string(src))
}

// Parse runs src and extracts its hooks.
func Parse(name, src string) (*Script, error) {
	vm := goja.New()
	vm.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))

	if _, err := vm.RunScript(name, src); err != nil {
		return nil, errors.Wrap(err, "failed to execute hooks file")
	}

	val := vm.Get("hooks")
	if val == nil || goja.IsUndefined(val) || goja.IsNull(val) {
		return nil, errors.New("hooks file did not define a 'hooks' global")
	}
	obj := val.ToObject(vm)

	s := &Script{vm: vm}
	var ok bool
	if fn := extractHook(obj, "badgeCount"); fn != nil {
		if s.badgeCount, ok = goja.AssertFunction(fn); !ok {
			return nil, errors.New("hooks.badgeCount is not a function")
		}
	}
	if fn := extractHook(obj, "canSeeItem"); fn != nil {
		if s.canSeeItem, ok = goja.AssertFunction(fn); !ok {
			return nil, errors.New("hooks.canSeeItem is not a function")
		}
	}
	return s, nil
}

func extractHook(obj *goja.Object, name string) goja.Value {
	val := obj.Get(name)
	if val == nil || goja.IsUndefined(val) || goja.IsNull(val) {
		return nil
	}
	return val
}

// call invokes fn with the runtime locked and a deadline armed.
func (s *Script) call(fn goja.Callable, args ...interface{}) (goja.Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer := time.AfterFunc(callTimeout, func() {
		s.vm.Interrupt("hook timed out")
	})
	defer func() {
		timer.Stop()
		s.vm.ClearInterrupt()
	}()

	values := make([]goja.Value, len(args))
	for i, a := range args {
		values[i] = s.vm.ToValue(a)
	}
	return fn(goja.Undefined(), values...)
}

// BadgeHook returns the script's badgeCount as a badge hook, or nil when the
// script doesn't define one. A null or undefined result means no opinion.
func (s *Script) BadgeHook() badges.Hook {
	if s.badgeCount == nil {
		return nil
	}
	return func(ctx context.Context, itemID string) (int, bool) {
		result, err := s.call(s.badgeCount, itemID)
		if err != nil {
			logger.FromContext(ctx).Err(err).Warn("badgeCount hook failed", logger.Data{"item_id": itemID})
			return 0, false
		}
		if result == nil || goja.IsUndefined(result) || goja.IsNull(result) {
			return 0, false
		}
		n := result.ToInteger()
		if n < 0 {
			n = 0
		}
		return int(n), true
	}
}

type jsItem struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Icon       string   `json:"icon"`
	URL        string   `json:"url"`
	Enabled    bool     `json:"enabled"`
	Roles      []string `json:"roles"`
	BadgeCount int      `json:"badge_count"`
}

// ItemPolicy returns the script's canSeeItem as a visibility policy, or nil
// when the script doesn't define one. Anything but a boolean result keeps the
// current decision.
func (s *Script) ItemPolicy() visibility.ItemPolicy {
	if s.canSeeItem == nil {
		return nil
	}
	return func(ctx context.Context, item models.NavItem, user visibility.User, visible bool) bool {
		result, err := s.call(s.canSeeItem, jsItem(item), user, visible)
		if err != nil {
			logger.FromContext(ctx).Err(err).Warn("canSeeItem hook failed", logger.Data{"item_id": item.ID})
			return visible
		}
		b, ok := result.Export().(bool)
		if !ok {
			return visible
		}
		return b
	}
}
