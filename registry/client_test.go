package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/iconforge/errors"
	"github.com/teranos/iconforge/internal/httpclient"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Options{
		BaseURL:           srv.URL,
		RequestsPerMinute: 100000, // don't throttle tests
		HTTPClient:        httpclient.WrapClient(srv.Client()),
	})
}

func TestFetchIconAppliesPerIconDimensions(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mdi.json", r.URL.Path)
		assert.Equal(t, "home", r.URL.Query().Get("icons"))
		w.Write([]byte(`{
			"prefix": "mdi",
			"icons": {"home": {"body": "<path d=\"M0 0\"/>", "width": 20, "height": 20}},
			"width": 24, "height": 24
		}`))
	})

	rec, err := client.FetchIcon(context.Background(), "mdi", "home")
	require.NoError(t, err)
	assert.Equal(t, `<path d="M0 0"/>`, rec.Body)
	assert.Equal(t, 20, rec.Width)
	assert.Equal(t, 20, rec.Height)
	assert.Equal(t, "0 0 20 20", rec.ViewBox)
}

func TestFetchIconUsesCollectionDefaults(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"prefix": "mdi",
			"icons": {"home": {"body": "<path/>"}},
			"width": 32, "height": 48
		}`))
	})

	rec, err := client.FetchIcon(context.Background(), "mdi", "home")
	require.NoError(t, err)
	assert.Equal(t, 32, rec.Width)
	assert.Equal(t, 48, rec.Height)
	assert.Equal(t, "0 0 32 48", rec.ViewBox)
}

func TestFetchIconFallsBackTo24(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"prefix": "mdi", "icons": {"home": {"body": "<path/>"}}}`))
	})

	rec, err := client.FetchIcon(context.Background(), "mdi", "home")
	require.NoError(t, err)
	assert.Equal(t, 24, rec.Width)
	assert.Equal(t, 24, rec.Height)
	assert.Equal(t, "0 0 24 24", rec.ViewBox)
}

func TestFetchIconPreservesViewBox(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"prefix": "tabler",
			"icons": {"star": {"body": "<path/>", "viewBox": "0 0 512 512"}}
		}`))
	})

	rec, err := client.FetchIcon(context.Background(), "tabler", "star")
	require.NoError(t, err)
	assert.Equal(t, "0 0 512 512", rec.ViewBox)
}

func TestFetchIconNotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"prefix": "mdi", "icons": {}}`))
	})

	_, err := client.FetchIcon(context.Background(), "mdi", "no-such-icon")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestFetchIconsBatch(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "left,right", r.URL.Query().Get("icons"))
		w.Write([]byte(`{
			"prefix": "arrows",
			"icons": {
				"left": {"body": "<path d=\"l\"/>"},
				"right": {"body": "<path d=\"r\"/>"}
			}
		}`))
	})

	icons, err := client.FetchIcons(context.Background(), "arrows", []string{"left", "right"})
	require.NoError(t, err)
	require.Len(t, icons, 2)
	assert.Equal(t, `<path d="l"/>`, icons["left"].Body)
	assert.Equal(t, `<path d="r"/>`, icons["right"].Body)
}

func TestFetchIconsEmptyRequest(t *testing.T) {
	client := NewClient(Options{})

	icons, err := client.FetchIcons(context.Background(), "mdi", nil)
	require.NoError(t, err)
	assert.Empty(t, icons)
}

func TestFetchIconHTTPError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such collection", http.StatusNotFound)
	})

	_, err := client.FetchIcon(context.Background(), "bogus", "home")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTransport))
}

func TestFetchIconMalformedPayload(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.FetchIcon(context.Background(), "mdi", "home")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTransport))
}

func TestFetchCollectionInfo(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections", r.URL.Path)
		assert.Equal(t, "mdi", r.URL.Query().Get("prefix"))
		w.Write([]byte(`{
			"mdi": {
				"name": "Material Design Icons",
				"total": 7447,
				"author": {"name": "Pictogrammers"},
				"license": {"title": "Apache 2.0", "spdx": "Apache-2.0"}
			}
		}`))
	})

	info, err := client.FetchCollectionInfo(context.Background(), "mdi")
	require.NoError(t, err)
	assert.Equal(t, "Material Design Icons", info.Name)
	assert.Equal(t, "Pictogrammers", info.Author)
	assert.Equal(t, "Apache 2.0", info.License)
	assert.Equal(t, 7447, info.Total)
}

func TestFetchCollectionInfoMissingPrefix(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := client.FetchCollectionInfo(context.Background(), "mdi")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
