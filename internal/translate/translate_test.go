package translate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"dailycard/internal/logger"
)

type fakeBackend struct {
	calls  []string
	target string
	fail   map[string]error
}

func (f *fakeBackend) Translate(_ context.Context, text, target string) (string, error) {
	f.calls = append(f.calls, text)
	f.target = target
	if err, ok := f.fail[text]; ok {
		return "", err
	}
	return "pt:" + text, nil
}

func TestService_Translate(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewService(backend, language.MustParse("pt-BR"), 4500, logger.Discard())

	got := svc.Translate(context.Background(), "Black Hole", "A video of a black hole.")

	assert.True(t, got.Translated)
	assert.NoError(t, got.Err)
	assert.Equal(t, "pt:Black Hole", got.Title)
	assert.Equal(t, "pt:A video of a black hole.", got.Explanation)
	assert.Equal(t, "pt", backend.target)
}

func TestService_FailureKeepsOriginals(t *testing.T) {
	tests := []struct {
		name string
		fail string
	}{
		{name: "title fails", fail: "Title"},
		{name: "explanation fails", fail: "Explanation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{fail: map[string]error{tt.fail: errors.New("blocked")}}
			svc := NewService(backend, language.Portuguese, 4500, logger.Discard())

			got := svc.Translate(context.Background(), "Title", "Explanation")

			assert.False(t, got.Translated)
			assert.Error(t, got.Err)
			assert.Equal(t, "Title", got.Title)
			assert.Equal(t, "Explanation", got.Explanation)
		})
	}
}

func TestService_TruncatesBeforeTranslating(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewService(backend, language.Portuguese, 10, logger.Discard())

	long := strings.Repeat("é", 25)
	got := svc.Translate(context.Background(), "T", long)

	require.Len(t, backend.calls, 2)
	assert.Equal(t, strings.Repeat("é", 10), backend.calls[1])
	assert.Equal(t, "pt:"+strings.Repeat("é", 10), got.Explanation)
}

func TestService_TruncatesEvenOnFailure(t *testing.T) {
	backend := &fakeBackend{fail: map[string]error{"T": errors.New("down")}}
	svc := NewService(backend, language.Portuguese, 3, logger.Discard())

	got := svc.Translate(context.Background(), "T", "abcdef")

	assert.False(t, got.Translated)
	assert.Equal(t, "abc", got.Explanation)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "abc", Truncate("abc", 0))
	assert.Equal(t, "日本", Truncate("日本語", 2))
}

func TestGoogle_Translate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "auto", q.Get("sl"))
		assert.Equal(t, "pt", q.Get("tl"))
		assert.Equal(t, "Hello & welcome", q.Get("q"))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><body>
			<div class="other">noise</div>
			<div class="result-container"> Olá &amp; bem-vindo </div>
		</body></html>`))
	}))
	defer srv.Close()

	g := NewGoogle(GoogleConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, logger.Discard())
	got, err := g.Translate(context.Background(), "Hello & welcome", "pt")

	require.NoError(t, err)
	assert.Equal(t, "Olá & bem-vindo", got)
}

func TestGoogle_Errors(t *testing.T) {
	t.Run("bad status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		g := NewGoogle(GoogleConfig{BaseURL: srv.URL}, logger.Discard())
		_, err := g.Translate(context.Background(), "x", "pt")
		assert.ErrorContains(t, err, "429")
	})

	t.Run("no result element", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html><body><p>captcha</p></body></html>`))
		}))
		defer srv.Close()

		g := NewGoogle(GoogleConfig{BaseURL: srv.URL}, logger.Discard())
		_, err := g.Translate(context.Background(), "x", "pt")
		assert.ErrorIs(t, err, ErrEmptyTranslation)
	})
}
