package driven

import (
	"context"

	"github.com/custodia-labs/aroma-cli/internal/core/domain"
)

// PageParser extracts the raw flavour data from a product page.
// It performs element lookup only; no counting or normalisation.
type PageParser interface {
	// Parse reads the page. A missing source element or attribute
	// yields an error wrapping domain.ErrNotFound.
	Parse(ctx context.Context, page []byte) (*domain.Page, error)
}
