package db

import (
	"context"

	"nexustap/models"
)

// Store is the persistence contract for the points ledger. Implementations
// map a wallet address to its UserRecord. Get returns (nil, nil) when no
// record exists so callers can substitute a default without persisting it.
type Store interface {
	LoadAll(ctx context.Context) (map[string]*models.UserRecord, error)
	Get(ctx context.Context, address string) (*models.UserRecord, error)
	Save(ctx context.Context, address string, rec *models.UserRecord) error

	// Update runs a fetch-or-create, mutate, persist cycle for one address.
	// If mutate returns an error nothing is written.
	Update(ctx context.Context, address string, mutate func(*models.UserRecord) error) (*models.UserRecord, error)
}
