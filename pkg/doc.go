// Package pkg provides the libraries behind the tvdb command.
//
// # Overview
//
// tvdb reads the languages supported by TheTVDB. The pkg directory is
// organized into these areas:
//
//  1. [languages] - the language catalog and its in-memory cache
//  2. [integrations] - the shared HTTP client and the [tvdb] API client
//  3. [cache] - persistent response caches (file, Redis, null)
//  4. [observability] - hooks for cache and HTTP events
//  5. [errors] - coded errors and input validation for the CLI
//  6. [buildinfo] - version information set at build time
//
// # Architecture
//
// A lookup flows through the packages like this:
//
//	languages.Catalog      (in-memory, per process)
//	         ↓ miss
//	tvdb.Client            (GET /languages{path}, unwraps "data")
//	         ↓
//	integrations.Client    (response cache, retry, status mapping)
//	         ↓ miss
//	TheTVDB API
//
// # Quick Start
//
//	client := tvdb.NewClient(cache.NewNullCache(), tvdb.Options{Token: token})
//	catalog := languages.New(client)
//
//	all, err := catalog.All(ctx)        // one request
//	en, err := catalog.Language(ctx, 7) // served from memory
//
// [languages]: github.com/matzehuels/tvdb/pkg/languages
// [integrations]: github.com/matzehuels/tvdb/pkg/integrations
// [tvdb]: github.com/matzehuels/tvdb/pkg/integrations/tvdb
// [cache]: github.com/matzehuels/tvdb/pkg/cache
// [observability]: github.com/matzehuels/tvdb/pkg/observability
// [errors]: github.com/matzehuels/tvdb/pkg/errors
// [buildinfo]: github.com/matzehuels/tvdb/pkg/buildinfo
package pkg
