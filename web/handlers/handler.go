package handlers

import (
	"context"

	"gorm.io/gorm"
)

// Database runs one unit of work against the central database. Satisfied by
// core.DatabaseManager in production.
type Database interface {
	Exec(ctx context.Context, fn func(db *gorm.DB) error) error
}
