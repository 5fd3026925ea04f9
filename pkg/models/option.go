package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Option is a single named blob in the key-value store.
type Option struct {
	bun.BaseModel `bun:"table:options,alias:o"`

	Name      string    `bun:",pk" json:"name"`
	Value     string    `bun:",notnull" json:"value"`
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"updated_at"`
}
