package options

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/shishobooks/bottomnav/pkg/database"
	"github.com/shishobooks/bottomnav/pkg/models"
	"github.com/uptrace/bun"
)

// Store is a key-value store of named text blobs. Writes overwrite whatever
// is there; the last writer wins.
type Store struct {
	db         *bun.DB
	maxRetries int
}

func NewStore(db *bun.DB, maxRetries int) *Store {
	return &Store{db: db, maxRetries: maxRetries}
}

// Get returns the value stored under name. The boolean is false when nothing
// is stored.
func (s *Store) Get(ctx context.Context, name string) (string, bool, error) {
	option := &models.Option{}
	err := database.RetryBusy(ctx, s.maxRetries, func() error {
		return s.db.NewSelect().
			Model(option).
			Where("o.name = ?", name).
			Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, errors.WithStack(err)
	}
	return option.Value, true, nil
}

// Set stores value under name, replacing any previous value.
func (s *Store) Set(ctx context.Context, name, value string) error {
	now := time.Now()
	option := &models.Option{
		Name:      name,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := database.RetryBusy(ctx, s.maxRetries, func() error {
		_, err := s.db.NewInsert().
			Model(option).
			On("CONFLICT (name) DO UPDATE").
			Set("updated_at = EXCLUDED.updated_at").
			Set("value = EXCLUDED.value").
			Exec(ctx)
		return err
	})
	return errors.WithStack(err)
}

// Delete removes name. Deleting a missing name is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	err := database.RetryBusy(ctx, s.maxRetries, func() error {
		_, err := s.db.NewDelete().
			Model((*models.Option)(nil)).
			Where("name = ?", name).
			Exec(ctx)
		return err
	})
	return errors.WithStack(err)
}
