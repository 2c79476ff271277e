// Package registry is the Iconify API client: it fetches raw icon sets by
// collection prefix and applies the registry dimension policy (per-icon
// values over collection defaults over the fixed 24x24 fallback) so every
// fetched icon leaves as a fully-specified record.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/teranos/iconforge/errors"
	"github.com/teranos/iconforge/icon"
	"github.com/teranos/iconforge/internal/httpclient"
)

// DefaultBaseURL is the public Iconify API endpoint.
const DefaultBaseURL = "https://api.iconify.design"

// apiIcon is the raw per-icon payload. Width, height and viewBox are
// optional; the collection-level defaults fill the gaps.
type apiIcon struct {
	Body    string  `json:"body"`
	Width   *int    `json:"width,omitempty"`
	Height  *int    `json:"height,omitempty"`
	ViewBox *string `json:"viewBox,omitempty"`
}

// iconSetResponse is the icon-set payload keyed by icon name, with
// collection-level default dimensions.
type iconSetResponse struct {
	Prefix string             `json:"prefix"`
	Icons  map[string]apiIcon `json:"icons"`
	Width  *int               `json:"width,omitempty"`
	Height *int               `json:"height,omitempty"`
}

// CollectionInfo is optional collection metadata used for generated file
// doc headers. Fetch failures are never fatal.
type CollectionInfo struct {
	Name    string
	Author  string
	License string
	Total   int
}

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerMinute int
	Logger            *zap.SugaredLogger

	// HTTPClient overrides the SSRF-guarded default. Tests use this with
	// httpclient.WrapClient to reach httptest servers on loopback.
	HTTPClient *httpclient.SaferClient
}

// Client fetches icons from an Iconify-compatible registry. Requests are
// sequential and rate limited; there is no caching or retry beyond a single
// best-effort fetch.
type Client struct {
	httpClient *httpclient.SaferClient
	baseURL    string
	limiter    *rate.Limiter
	log        *zap.SugaredLogger
}

// NewClient creates a registry client.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RequestsPerMinute <= 0 {
		opts.RequestsPerMinute = 60
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = httpclient.NewSaferClient(opts.Timeout)
	}

	return &Client{
		httpClient: opts.HTTPClient,
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		limiter:    rate.NewLimiter(rate.Limit(opts.RequestsPerMinute)/60, 1),
		log:        opts.Logger,
	}
}

// FetchIcon fetches a single icon.
func (c *Client) FetchIcon(ctx context.Context, collection, iconName string) (icon.Record, error) {
	icons, err := c.FetchIcons(ctx, collection, []string{iconName})
	if err != nil {
		return icon.Record{}, err
	}

	rec, ok := icons[iconName]
	if !ok {
		return icon.Record{}, errors.Wrapf(errors.ErrNotFound,
			"icon %q not found in collection %q", iconName, collection)
	}
	return rec, nil
}

// FetchIcons fetches multiple icons from the same collection in one request
// and applies the registry dimension policy to each. Names absent from the
// response are simply absent from the result; FetchIcon turns that into a
// not-found error.
func (c *Client) FetchIcons(ctx context.Context, collection string, iconNames []string) (map[string]icon.Record, error) {
	if len(iconNames) == 0 {
		return map[string]icon.Record{}, nil
	}

	query := url.Values{}
	query.Set("icons", strings.Join(iconNames, ","))
	reqURL := fmt.Sprintf("%s/%s.json?%s", c.baseURL, url.PathEscape(collection), query.Encode())

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching icons from collection %q", collection)
	}

	var response iconSetResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrapf(errors.ErrTransport, "parsing icon-set payload: %v", err)
	}

	result := make(map[string]icon.Record, len(response.Icons))
	for name, raw := range response.Icons {
		result[name] = resolveRegistryIcon(raw, response.Width, response.Height)
	}

	c.log.Debugw("fetched icon set",
		"collection", collection, "requested", len(iconNames), "received", len(result))

	return result, nil
}

// FetchCollectionInfo fetches collection metadata. Callers treat failures
// as non-fatal; the metadata only feeds generated doc headers.
func (c *Client) FetchCollectionInfo(ctx context.Context, collection string) (*CollectionInfo, error) {
	query := url.Values{}
	query.Set("prefix", collection)
	reqURL := fmt.Sprintf("%s/collections?%s", c.baseURL, query.Encode())

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching metadata for collection %q", collection)
	}

	var payload map[string]struct {
		Name   string `json:"name"`
		Total  int    `json:"total"`
		Author struct {
			Name string `json:"name"`
		} `json:"author"`
		License struct {
			Title string `json:"title"`
			SPDX  string `json:"spdx"`
		} `json:"license"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrapf(errors.ErrTransport, "parsing collections payload: %v", err)
	}

	meta, ok := payload[collection]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "collection %q has no metadata", collection)
	}

	license := meta.License.Title
	if license == "" {
		license = meta.License.SPDX
	}

	return &CollectionInfo{
		Name:    meta.Name,
		Author:  meta.Author.Name,
		License: license,
		Total:   meta.Total,
	}, nil
}

// get performs one rate-limited GET and returns the response body.
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrapf(errors.ErrTransport, "rate limiter: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrTransport, "building request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrTransport, "%v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrTransport, "reading response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(errors.ErrTransport,
			"request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}

// resolveRegistryIcon applies the registry dimension policy: per-icon values
// take precedence over collection defaults, which take precedence over the
// fixed fallback; a missing viewBox is synthesized from the final size.
func resolveRegistryIcon(raw apiIcon, defaultWidth, defaultHeight *int) icon.Record {
	width := icon.DefaultSize
	if raw.Width != nil {
		width = *raw.Width
	} else if defaultWidth != nil {
		width = *defaultWidth
	}

	height := icon.DefaultSize
	if raw.Height != nil {
		height = *raw.Height
	} else if defaultHeight != nil {
		height = *defaultHeight
	}

	viewBox := fmt.Sprintf("0 0 %d %d", width, height)
	if raw.ViewBox != nil {
		viewBox = *raw.ViewBox
	}

	return icon.Record{Body: raw.Body, Width: width, Height: height, ViewBox: viewBox}
}
