package tvdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/tvdb/pkg/buildinfo"
	"github.com/matzehuels/tvdb/pkg/cache"
	"github.com/matzehuels/tvdb/pkg/integrations"
	"github.com/matzehuels/tvdb/pkg/languages"
)

const (
	// DefaultBaseURL is the public TheTVDB v2 API.
	DefaultBaseURL = "https://api.thetvdb.com"

	// DefaultLanguage is sent as Accept-Language when none is configured.
	DefaultLanguage = "en"

	basePath = "/languages"
)

// ErrNoData is returned when a 200 response carries no "data" member.
var ErrNoData = errors.New("response has no data")

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL  string        // API root, defaults to DefaultBaseURL
	Language string        // Accept-Language, defaults to DefaultLanguage
	Token    string        // bearer token, omitted when empty
	CacheTTL time.Duration // response cache lifetime, 0 never expires
	Refresh  bool          // ignore cached responses
}

// Client fetches resources below TheTVDB's languages endpoint.
type Client struct {
	*integrations.Client
	baseURL  string
	language string
	refresh  bool
}

// NewClient creates a client that caches responses in backend.
// Pass cache.NewNullCache() to disable response caching.
func NewClient(backend cache.Cache, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}

	headers := map[string]string{
		"Accept":          "application/json",
		"Accept-Language": opts.Language,
		"User-Agent":      buildinfo.UserAgent(),
	}
	if opts.Token != "" {
		headers["Authorization"] = "Bearer " + opts.Token
	}

	return &Client{
		Client:   integrations.NewClient(backend, "tvdb:", opts.CacheTTL, headers),
		baseURL:  strings.TrimSuffix(opts.BaseURL, "/"),
		language: opts.Language,
		refresh:  opts.Refresh,
	}
}

// Fetch retrieves basePath+path and decodes the response data into v.
//
// Returns:
//   - [integrations.ErrNotFound] if the resource doesn't exist
//   - [integrations.ErrUnauthorized] for 401/403
//   - [integrations.ErrNetwork] for transport failures and other statuses
//   - [ErrNoData] or a decode error for malformed bodies
func (c *Client) Fetch(ctx context.Context, path string, v any) error {
	key := c.language + ":" + path
	return c.Cached(ctx, key, c.refresh, v, func() error {
		return c.fetch(ctx, path, v)
	})
}

func (c *Client) fetch(ctx context.Context, path string, v any) error {
	url := c.baseURL + basePath + path
	headers := map[string]string{"X-Request-ID": uuid.NewString()}

	var env envelope
	if err := c.GetWithHeaders(ctx, url, headers, &env); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("%w: languages%s", err, path)
		}
		return err
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("%w: languages%s", ErrNoData, path)
	}
	return json.Unmarshal(env.Data, v)
}

// envelope is TheTVDB's response wrapper. Errors are reported through HTTP
// status codes, so only data is read.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

var _ languages.Fetcher = (*Client)(nil)
