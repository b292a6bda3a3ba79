package languages

import (
	"context"
	"iter"
	"strconv"
	"sync"
)

// PathAll is the resource path of the full language list, relative to the
// languages endpoint.
const PathAll = ""

// Path returns the resource path of a single language.
func Path(id int) string {
	return "/" + strconv.Itoa(id)
}

// Fetcher retrieves a resource below the languages endpoint and decodes
// it into v. For [PathAll] v is a *[]Record, for [Path] a *Record.
//
// Implementations own transport, authentication, retries and timeouts.
type Fetcher interface {
	Fetch(ctx context.Context, path string, v any) error
}

// Catalog is an append-only, in-memory cache of language records.
//
// The zero value is not usable; construct with [New]. A Catalog is safe for
// concurrent use, but the lock is not held while fetching: two goroutines
// missing on the same id both go to the network and the later response wins.
type Catalog struct {
	fetcher Fetcher

	mu         sync.Mutex
	records    map[int]Record
	order      []int
	allFetched bool
}

// New returns an empty Catalog that fetches through f.
func New(f Fetcher) *Catalog {
	return &Catalog{
		fetcher: f,
		records: make(map[int]Record),
	}
}

// All returns every language.
//
// The first successful call fetches [PathAll] and returns the decoded slice
// as received, after caching each record that carries an id. Later calls
// return the cached records in insertion order without touching the network.
// A failed fetch is returned unchanged and the next call fetches again.
func (c *Catalog) All(ctx context.Context) ([]Record, error) {
	c.mu.Lock()
	if c.allFetched {
		out := c.snapshotLocked()
		c.mu.Unlock()
		return out, nil
	}
	c.mu.Unlock()

	var resp []Record
	if err := c.fetcher.Fetch(ctx, PathAll, &resp); err != nil {
		return nil, err
	}

	c.mu.Lock()
	for _, r := range resp {
		c.storeLocked(r)
	}
	c.allFetched = true
	c.mu.Unlock()

	return resp, nil
}

// Language returns the language with the given id.
//
// A cached id is answered from memory. Otherwise [Path](id) is fetched and,
// if the response carries an id, cached under that id. Note the response id
// is trusted over the requested one. Responses without an id are returned
// but not cached, so asking again fetches again.
func (c *Catalog) Language(ctx context.Context, id int) (Record, error) {
	if r, ok := c.Cached(id); ok {
		return r, nil
	}

	var resp Record
	if err := c.fetcher.Fetch(ctx, Path(id), &resp); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.storeLocked(resp)
	c.mu.Unlock()

	return resp, nil
}

// Seq returns a lazy sequence over [Catalog.All]. Nothing is fetched until
// the sequence is ranged over. A fetch failure yields a single (nil, err)
// pair.
func (c *Catalog) Seq(ctx context.Context) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		records, err := c.All(ctx)
		if err != nil {
			yield(nil, err)
			return
		}
		for _, r := range records {
			if !yield(r, nil) {
				return
			}
		}
	}
}

// Cached returns the cached record for id without fetching.
func (c *Catalog) Cached(id int) (Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.records[id]
	return r.clone(), ok
}

// Len returns the number of cached records.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Complete reports whether the full list has been fetched.
func (c *Catalog) Complete() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allFetched
}

func (c *Catalog) storeLocked(r Record) {
	id, ok := r.ID()
	if !ok {
		return
	}
	if _, seen := c.records[id]; !seen {
		c.order = append(c.order, id)
	}
	c.records[id] = r.clone()
}

func (c *Catalog) snapshotLocked() []Record {
	out := make([]Record, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.records[id].clone())
	}
	return out
}
