package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// queryTimeout bounds every repository call so a stuck database never
// blocks a request indefinitely.
const queryTimeout = 5 * time.Second

func withTimeout(db *gorm.DB) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	return db.WithContext(ctx), cancel
}
