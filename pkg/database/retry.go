package database

import (
	"context"
	"math/rand"
	"strings"
	"time"
)

const (
	baseRetryDelay = 50 * time.Millisecond
	maxRetryDelay  = 2 * time.Second
)

// IsBusy reports whether err is a SQLite BUSY or LOCKED error. It matches on
// the message so it works with both the cgo and the pure Go driver.
func IsBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "SQLITE_BUSY") ||
		strings.Contains(msg, "SQLITE_LOCKED") ||
		strings.Contains(msg, "(5)") ||
		strings.Contains(msg, "(6)")
}

// RetryBusy runs fn, retrying with exponential backoff and jitter while it
// fails with a busy error. Any other error is returned immediately. At most
// maxRetries retries are made after the first attempt.
func RetryBusy(ctx context.Context, maxRetries int, fn func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = fn()
		if err == nil || !IsBusy(err) || attempt >= maxRetries {
			return err
		}

		delay := baseRetryDelay * time.Duration(1<<attempt)
		delay += time.Duration(rand.Int63n(int64(delay/4) + 1))
		if delay > maxRetryDelay {
			delay = maxRetryDelay
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}
