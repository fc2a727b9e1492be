// Package httpclient downloads product pages over HTTP.
//
// Requests are paced by a token bucket. When the site answers 429 Too Many
// Requests the fetcher backs off linearly (initial delay plus backoff per
// attempt, or longer if the server sends Retry-After) and retries up to the
// configured limit before giving up with domain.ErrRateLimited.
package httpclient
