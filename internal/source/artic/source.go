package artic

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"dailycard/internal/domain"
)

const (
	SourceID   = "artic"
	SourceName = "Art Institute of Chicago"

	requestedFields = "id,title,artist_display,image_id,description,date_display,medium_display"
	unknownArtist   = "Unknown artist"
	untitled        = "Untitled"
)

// Config holds artwork source configuration.
type Config struct {
	BaseURL      string
	ImageBaseURL string
	PageSize     int
	MaxPage      int
	ImageWidth   int
	Timeout      time.Duration
	// Rand drives page and item selection; nil uses the global source.
	Rand *rand.Rand
}

// Source picks a random public-domain artwork.
type Source struct {
	httpClient   *http.Client
	baseURL      string
	imageBaseURL string
	pageSize     int
	maxPage      int
	imageWidth   int
	rand         *rand.Rand
	strip        *bluemonday.Policy
	logger       *slog.Logger
}

// New creates a new artwork source.
func New(cfg Config, logger *slog.Logger) *Source {
	r := cfg.Rand
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	maxPage := cfg.MaxPage
	if maxPage < 1 {
		maxPage = 1
	}
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:      cfg.BaseURL,
		imageBaseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
		pageSize:     cfg.PageSize,
		maxPage:      maxPage,
		imageWidth:   cfg.ImageWidth,
		rand:         r,
		strip:        bluemonday.StrictPolicy(),
		logger:       logger.With("source", SourceID),
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

// Fetch searches a random page of public-domain works and normalizes one
// randomly chosen artwork that has an image.
func (s *Source) Fetch(ctx context.Context) (domain.Content, error) {
	page := s.rand.IntN(s.maxPage) + 1
	s.logger.Info("searching public-domain artworks", "page", page)

	resp, err := s.searchPage(ctx, page)
	if err != nil {
		return domain.Content{}, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	if len(resp.Data) == 0 {
		return domain.Content{}, fmt.Errorf("%w: empty result page %d", domain.ErrSourceUnavailable, page)
	}

	pick := s.rand.IntN(len(resp.Data))
	artwork, ok := PickWithImage(resp.Data, pick)
	if !ok {
		return domain.Content{}, fmt.Errorf("%s page %d: %w", SourceID, page, domain.ErrNoDisplayableMedia)
	}

	s.logger.Debug("picked artwork",
		"page", page,
		"index", pick,
		"artwork_id", artwork.ID,
	)

	imageBase := s.imageBaseURL
	if resp.Config.IIIFURL != "" {
		imageBase = strings.TrimRight(resp.Config.IIIFURL, "/")
	}

	return s.transform(artwork, imageBase), nil
}

func (s *Source) searchPage(ctx context.Context, page int) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("query[term][is_public_domain]", "true")
	params.Set("fields", requestedFields)
	params.Set("limit", strconv.Itoa(s.pageSize))
	params.Set("page", strconv.Itoa(page))

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

	var searchResp SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &searchResp, nil
}

// PickWithImage returns artworks[pick] when it has an image, otherwise the
// first later artwork with one, then the first earlier one.
func PickWithImage(artworks []Artwork, pick int) (Artwork, bool) {
	n := len(artworks)
	if n == 0 || pick < 0 || pick >= n {
		return Artwork{}, false
	}
	for i := 0; i < n; i++ {
		candidate := artworks[(pick+i)%n]
		if candidate.hasImage() {
			return candidate, true
		}
	}
	return Artwork{}, false
}

// ImageURL builds the IIIF image location for an image id.
func ImageURL(base, imageID string, width int) string {
	return fmt.Sprintf("%s/%s/full/%d,/0/default.jpg", base, imageID, width)
}

func (s *Source) transform(a Artwork, imageBase string) domain.Content {
	title := strings.TrimSpace(a.Title)
	if title == "" {
		title = untitled
	}

	explanation := ""
	if a.Description != nil {
		explanation = s.stripMarkup(*a.Description)
	}
	if explanation == "" {
		explanation = describe(a)
	}

	attribution := SourceName
	if artist := strings.TrimSpace(a.ArtistDisplay); artist != "" {
		attribution = collapseSpace(artist) + " · " + SourceName
	}

	return domain.Content{
		Source:      domain.SourceArt,
		Title:       title,
		Explanation: explanation,
		ImageURL:    ImageURL(imageBase, *a.ImageID, s.imageWidth),
		Attribution: attribution,
		Theme:       domain.ThemeFor(domain.SourceArt),
	}
}

func (s *Source) stripMarkup(text string) string {
	return collapseSpace(html.UnescapeString(s.strip.Sanitize(text)))
}

// describe synthesizes a sentence from the artist, medium and date fields.
func describe(a Artwork) string {
	title := strings.TrimSpace(a.Title)
	if title == "" {
		title = untitled
	}

	artist := collapseSpace(a.ArtistDisplay)
	if artist == "" {
		artist = unknownArtist
	}

	parts := []string{fmt.Sprintf("%s by %s", title, artist)}
	if medium := strings.TrimSpace(a.MediumDisplay); medium != "" {
		parts = append(parts, medium)
	}
	if date := strings.TrimSpace(a.DateDisplay); date != "" {
		parts = append(parts, date)
	}

	return strings.Join(parts, ", ") + "."
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
