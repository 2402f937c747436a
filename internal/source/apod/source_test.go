package apod

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailycard/internal/domain"
	"dailycard/internal/logger"
)

var fixedNow = func() time.Time {
	return time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)
}

func newTestSource(baseURL string) *Source {
	return New(Config{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
		Now:     fixedNow,
	}, logger.Discard())
}

func TestNormalize_Image(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{
			name: "prefers hd url",
			item: Item{MediaType: "image", URL: "https://x/std.jpg", HDURL: "https://x/hd.jpg"},
			want: "https://x/hd.jpg",
		},
		{
			name: "falls back to url",
			item: Item{MediaType: "image", URL: "https://x/std.jpg"},
			want: "https://x/std.jpg",
		},
		{
			name: "missing media type treated as image",
			item: Item{URL: "https://x/std.jpg"},
			want: "https://x/std.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := Normalize(tt.item)
			require.NoError(t, err)
			assert.Equal(t, tt.want, content.ImageURL)
			assert.Empty(t, content.VideoURL)
			assert.False(t, content.IsVideo())
			assert.Equal(t, domain.SourceSpace, content.Source)
		})
	}
}

func TestNormalize_Video(t *testing.T) {
	content, err := Normalize(Item{
		MediaType:    "video",
		ThumbnailURL: "T",
		URL:          "V",
		HDURL:        "ignored",
		Title:        "X",
		Explanation:  "Y",
	})
	require.NoError(t, err)

	assert.Equal(t, "T", content.ImageURL)
	assert.Equal(t, "V", content.VideoURL)
	assert.Equal(t, "X", content.Title)
	assert.Equal(t, "Y", content.Explanation)
	assert.True(t, content.IsVideo())
}

func TestNormalize_NoDisplayableMedia(t *testing.T) {
	_, err := Normalize(Item{MediaType: "video", URL: "V"})
	assert.ErrorIs(t, err, domain.ErrNoDisplayableMedia)

	_, err = Normalize(Item{MediaType: "image"})
	assert.ErrorIs(t, err, domain.ErrNoDisplayableMedia)
}

func TestNormalize_Defaults(t *testing.T) {
	content, err := Normalize(Item{URL: "u", Copyright: "\n Jane Doe \n"})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", content.Attribution)
	assert.Equal(t, defaultTitle, content.Title)
	assert.Equal(t, defaultExplanation, content.Explanation)
	assert.Equal(t, domain.ThemeFor(domain.SourceSpace), content.Theme)

	content, err = Normalize(Item{URL: "u"})
	require.NoError(t, err)
	assert.Equal(t, defaultAttribution, content.Attribution)
}

func TestFetch_Live(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("api_key"))
		assert.Equal(t, "2024-03-14", q.Get("date"))
		assert.Equal(t, "true", q.Get("hd"))
		assert.Equal(t, "true", q.Get("thumbs"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"media_type": "image",
			"url": "https://apod/std.jpg",
			"hdurl": "https://apod/hd.jpg",
			"title": "Pillars",
			"explanation": "Gas and dust.",
			"copyright": "Someone"
		}`))
	}))
	defer srv.Close()

	content, err := newTestSource(srv.URL).Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://apod/hd.jpg", content.ImageURL)
	assert.Equal(t, "Pillars", content.Title)
	assert.Equal(t, "Someone", content.Attribution)
}

func TestFetch_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestSource(srv.URL).Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "unexpected status: 503")
}

func TestFetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestSource(url).Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestFetch_SuccessWithoutMedia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"media_type": "other", "title": "Interactive"}`))
	}))
	defer srv.Close()

	_, err := newTestSource(srv.URL).Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoDisplayableMedia)
	assert.NotErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestFetch_FixtureSkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	src := New(Config{
		BaseURL: srv.URL,
		Fixture: &Item{MediaType: "video", ThumbnailURL: "T", URL: "V", Title: "X", Explanation: "Y"},
	}, logger.Discard())

	content, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, "T", content.ImageURL)
	assert.Equal(t, "V", content.VideoURL)
}

func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apod.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title":"The Starry Night (Test)","url":"u","hdurl":"h"}`), 0o600))

	item, err := LoadFixture(path)
	require.NoError(t, err)
	assert.Equal(t, "The Starry Night (Test)", item.Title)
	assert.Equal(t, "h", item.HDURL)

	_, err = LoadFixture(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
