// Package integrations provides the shared HTTP client used by remote API
// clients.
//
// # Overview
//
// [Client] wraps net/http with three concerns every API client needs:
//
//   - default request headers (User-Agent, Accept, authorization)
//   - response caching through a [cache.Cache] backend with a key prefix
//   - retries with exponential backoff for transient failures
//
// API-specific clients embed *Client and add their own base URL and response
// types. The TheTVDB client lives in [tvdb].
//
// # Errors
//
// HTTP status codes are mapped to sentinel errors:
//
//   - 404: [ErrNotFound]
//   - 401, 403: [ErrUnauthorized]
//   - 5xx and transport failures: [ErrNetwork], marked retryable
//   - other non-200 codes: [ErrNetwork], not retried
//
// Use errors.Is to test for them.
//
// Every request and response cache lookup is reported to the
// [observability] hooks.
//
// [cache.Cache]: github.com/matzehuels/tvdb/pkg/cache.Cache
// [tvdb]: github.com/matzehuels/tvdb/pkg/integrations/tvdb
// [observability]: github.com/matzehuels/tvdb/pkg/observability
package integrations
