package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/aroma-cli/internal/core/domain"
	"github.com/custodia-labs/aroma-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aroma-cli/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.PageFetcher = (*Fetcher)(nil)

const (
	// maxBodyBytes caps the size of a downloaded page.
	maxBodyBytes = 8 << 20

	// excerptBytes is how much of an error body is quoted in the error.
	excerptBytes = 200
)

// Config controls request pacing and retries.
type Config struct {
	// RequestsPerSecond is the sustained request rate. Zero disables pacing.
	RequestsPerSecond float64
	// Burst is the maximum number of requests sent back to back.
	Burst int
	// MaxRetries is how many times a 429 response is retried.
	MaxRetries int
	// InitialDelay is the wait before the first retry.
	InitialDelay time.Duration
	// Backoff is added to the wait for every further retry.
	Backoff time.Duration
	// Timeout bounds a single request.
	Timeout time.Duration
	// UserAgent is sent with every request.
	UserAgent string
}

// DefaultConfig returns conservative settings for a public shop.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 1,
		Burst:             2,
		MaxRetries:        5,
		InitialDelay:      6 * time.Second,
		Backoff:           5 * time.Second,
		Timeout:           30 * time.Second,
		UserAgent:         "aroma-cli",
	}
}

// Fetcher downloads pages with pacing and 429 retries.
type Fetcher struct {
	client  *http.Client
	limiter *RateLimiter
	cfg     Config
	metrics driven.MetricsRecorder
}

// New creates a fetcher. metrics may be nil.
func New(cfg Config, metrics driven.MetricsRecorder) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: NewRateLimiter(cfg.RequestsPerSecond, cfg.Burst),
		cfg:     cfg,
		metrics: metrics,
	}
}

// Fetch returns the body of the page at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, retryAfter, err := f.get(ctx, url)
		if err != nil || retryAfter < 0 {
			return body, err
		}

		if attempt >= f.cfg.MaxRetries {
			return nil, fmt.Errorf("%s: gave up after %d retries: %w", url, attempt, domain.ErrRateLimited)
		}

		delay := f.cfg.InitialDelay + f.cfg.Backoff*time.Duration(attempt)
		if retryAfter > delay {
			delay = retryAfter
		}
		logger.Warn("rate limited", "url", url, "attempt", attempt+1, "delay", delay)
		f.limiter.Backoff(delay)
	}
}

// get performs one request. A non-negative retryAfter means the server
// answered 429 and the request should be repeated.
func (f *Fetcher) get(ctx context.Context, url string) ([]byte, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, -1, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if f.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", f.cfg.UserAgent)
	}
	req.Header.Set("Accept", "text/html")

	logger.Debug("GET", "url", url)
	resp, err := f.client.Do(req)
	if err != nil {
		f.recordFetch(0)
		return nil, -1, err
	}
	defer resp.Body.Close()
	f.recordFetch(resp.StatusCode)

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, parseRetryAfter(resp.Header.Get("Retry-After"), time.Now()), nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, -1, fmt.Errorf("%s: status %d: %w", url, resp.StatusCode, domain.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, excerptBytes))
		return nil, -1, fmt.Errorf("%s: unexpected status %d: %s",
			url, resp.StatusCode, strings.TrimSpace(string(excerpt)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, -1, fmt.Errorf("reading body: %w", err)
	}
	return body, -1, nil
}

func (f *Fetcher) recordFetch(status int) {
	if f.metrics != nil {
		f.metrics.RecordFetch(status)
	}
}

// parseRetryAfter reads a Retry-After header given in seconds or as an HTTP date.
// Returns 0 when the header is absent or unusable.
func parseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
