package main

import (
	"context"

	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/propview/real-estate-api/internal/infrastructure/db/mongo"
)

// ensureIndexes creates all collection indexes at startup so lookups and
// uniqueness checks stay fast as the catalog grows.
func ensureIndexes(ctx context.Context, db *driver.Database) error {
	indexed := []interface {
		EnsureIndexes(ctx context.Context) error
	}{
		mongo.NewUserRepository(db),
		mongo.NewDeveloperRepository(db),
		mongo.NewCompoundRepository(db),
		mongo.NewPropertyRepository(db),
		mongo.NewBookingRepository(db),
		mongo.NewPolicyRepository(db),
	}

	for _, repo := range indexed {
		if err := repo.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
