package driven

import (
	"context"

	"github.com/custodia-labs/aroma-cli/internal/core/domain"
)

// ProfileStore persists computed flavour profiles.
type ProfileStore interface {
	// Save stores or updates a record by ID.
	Save(ctx context.Context, rec *domain.ProfileRecord) error

	// Get retrieves a record by ID. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.ProfileRecord, error)

	// GetByURL retrieves the record read from url. Returns domain.ErrNotFound if absent.
	GetByURL(ctx context.Context, url string) (*domain.ProfileRecord, error)

	// List returns all records, most recently updated first.
	List(ctx context.Context) ([]domain.ProfileRecord, error)

	// Delete removes a record. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
}
