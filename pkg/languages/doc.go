// Package languages caches TheTVDB language records in memory.
//
// # Overview
//
// A [Catalog] wraps a [Fetcher] and remembers every language record it has
// seen. The full list is requested from the remote API at most once per
// Catalog; single lookups are served from memory whenever the id is already
// known, whether it arrived through [Catalog.All] or an earlier
// [Catalog.Language] call.
//
//	client := tvdb.NewClient(cache.NewNullCache(), tvdb.Options{})
//	catalog := languages.New(client)
//
//	all, err := catalog.All(ctx)          // network
//	en, err := catalog.Language(ctx, 7)   // memory
//
// # Records
//
// A [Record] is the decoded JSON object exactly as the API returned it. Only
// the "id" field is interpreted, as the cache key. Records without a usable
// id are returned to the caller but never cached.
//
// # Errors
//
// The Catalog originates no errors of its own. Whatever the Fetcher returns
// is passed back unchanged and leaves the cache as it was, so the next call
// is a genuine retry.
//
// # Read-only
//
// There is no way to insert or remove records from outside. Records returned
// from the cache are copies; mutating them does not affect later lookups.
package languages
