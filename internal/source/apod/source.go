package apod

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"dailycard/internal/domain"
)

const (
	SourceID   = "apod"
	SourceName = "NASA Astronomy Picture of the Day"

	defaultAttribution = "NASA Public Domain"
	defaultTitle       = "Sem título"
	defaultExplanation = "Sem descrição"
)

// Config holds APOD source configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// Fixture, when set, is used instead of calling the API.
	Fixture *Item
	Now     func() time.Time
}

// Source fetches the astronomy picture of the day.
type Source struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	fixture    *Item
	now        func() time.Time
	logger     *slog.Logger
}

// New creates a new APOD source.
func New(cfg Config, logger *slog.Logger) *Source {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		fixture: cfg.Fixture,
		now:     now,
		logger:  logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// Fetch returns today's item as a normalized record.
func (s *Source) Fetch(ctx context.Context) (domain.Content, error) {
	if s.fixture != nil {
		s.logger.Info("using injected payload instead of the live API")
		return Normalize(*s.fixture)
	}

	s.logger.Info("querying astronomy picture of the day")

	item, err := s.doRequest(ctx)
	if err != nil {
		return domain.Content{}, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	return Normalize(*item)
}

func (s *Source) doRequest(ctx context.Context) (*Item, error) {
	params := url.Values{}
	params.Set("api_key", s.apiKey)
	params.Set("date", s.now().Format(time.DateOnly))
	params.Set("hd", "true")
	params.Set("thumbs", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "DailyCard/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var item Item
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &item, nil
}

// Normalize maps an APOD item onto the common record. Videos use the
// thumbnail as the display image; everything else prefers the HD image.
func Normalize(item Item) (domain.Content, error) {
	content := domain.Content{
		Source:      domain.SourceSpace,
		Title:       orDefault(item.Title, defaultTitle),
		Explanation: orDefault(item.Explanation, defaultExplanation),
		Attribution: orDefault(strings.TrimSpace(item.Copyright), defaultAttribution),
		Theme:       domain.ThemeFor(domain.SourceSpace),
	}

	if item.MediaType == mediaTypeVideo {
		content.ImageURL = item.ThumbnailURL
		content.VideoURL = item.URL
	} else {
		content.ImageURL = orDefault(item.HDURL, item.URL)
	}

	if content.ImageURL == "" {
		return domain.Content{}, fmt.Errorf("%s item %q (%s): %w",
			SourceID, item.Title, item.MediaType, domain.ErrNoDisplayableMedia)
	}

	return content, nil
}

// LoadFixture reads an APOD payload from a JSON file.
func LoadFixture(path string) (*Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	var item Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	return &item, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
