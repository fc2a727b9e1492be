package driven

import "context"

// PageFetcher downloads a product page.
type PageFetcher interface {
	// Fetch returns the body of the page at url.
	// Returns domain.ErrRateLimited when the site keeps throttling.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
