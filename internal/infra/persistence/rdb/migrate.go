package rdb

import (
	"context"

	"shaka/internal/errors"
	"shaka/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the catalog schema. The API process never calls
// it; the schema belongs to whoever provisions the database.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "auto migrate catalog schema")
	}

	return nil
}
