package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// resultSelector matches the element holding the translated text on the
// mobile translation page.
const resultSelector = "div.result-container, div.t0"

var ErrEmptyTranslation = errors.New("empty translation")

// GoogleConfig holds the web translation backend configuration.
type GoogleConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Google translates text through the public mobile translation page.
type Google struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewGoogle(cfg GoogleConfig, logger *slog.Logger) *Google {
	return &Google{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		logger:     logger.With("component", "translate"),
	}
}

// Translate translates text into target, auto-detecting the source language.
func (g *Google) Translate(ctx context.Context, text, target string) (string, error) {
	params := url.Values{}
	params.Set("sl", "auto")
	params.Set("tl", target)
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; DailyCard/1.0)")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	translated := strings.TrimSpace(doc.Find(resultSelector).First().Text())
	if translated == "" {
		return "", ErrEmptyTranslation
	}

	return translated, nil
}
