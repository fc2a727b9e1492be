package driving

import (
	"context"

	"github.com/custodia-labs/aroma-cli/internal/core/domain"
)

// ProfileService computes and manages community flavour profiles.
type ProfileService interface {
	// Compute turns an already-extracted element into a profile
	// using the configured name lists.
	Compute(ctx context.Context, element domain.SourceElement) (domain.FlavourProfile, error)

	// FromPage parses a product page read from uri, computes its
	// profile and stores the result.
	FromPage(ctx context.Context, uri string, page []byte) (*domain.ProfileRecord, error)

	// Fetch downloads url and behaves like FromPage.
	Fetch(ctx context.Context, url string) (*domain.ProfileRecord, error)

	// Get retrieves a stored record by ID.
	Get(ctx context.Context, id string) (*domain.ProfileRecord, error)

	// List returns all stored records.
	List(ctx context.Context) ([]domain.ProfileRecord, error)

	// Delete removes a stored record.
	Delete(ctx context.Context, id string) error
}

// NameService manages the configured category name lists.
type NameService interface {
	// Get returns the configured lists. Either list may be empty.
	Get() domain.NameLists

	// Set replaces one list. kind is "tobacco" or "general".
	Set(kind string, names []string) error
}
