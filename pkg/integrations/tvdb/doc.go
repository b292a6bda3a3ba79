// Package tvdb provides an HTTP client for TheTVDB v2 languages endpoint.
//
// # Overview
//
// [Client] implements [languages.Fetcher]: it resolves a path relative to
// /languages on the configured base URL, performs the GET, and decodes the
// "data" member of TheTVDB's response envelope.
//
//	client := tvdb.NewClient(backend, tvdb.Options{Token: token})
//	catalog := languages.New(client)
//
// # Authentication
//
// The client sends Options.Token as a bearer token when set. Obtaining or
// refreshing that token is left to the caller.
//
// # Caching
//
// Responses are cached in the given [cache.Cache] under
// "tvdb:<language>:<path>" for Options.CacheTTL. Set Options.Refresh to
// bypass cached entries while still writing fresh ones.
//
// [languages.Fetcher]: github.com/matzehuels/tvdb/pkg/languages.Fetcher
// [cache.Cache]: github.com/matzehuels/tvdb/pkg/cache.Cache
package tvdb
