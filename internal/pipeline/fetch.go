// =============================================================================
// fetch.go - per-source feed fetching
// =============================================================================
//
// One source in, one ordered slice of normalized Items out. Items come back
// in feed-native order; sorting and truncation happen later in the
// aggregation step.
//
// A network or parse failure fails the whole source: the fetcher never
// returns a partial item list alongside an error.
//
// =============================================================================
package pipeline

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// FetchConfig carries the HTTP settings shared by every source fetch.
type FetchConfig struct {
	UserAgent string
	Timeout   time.Duration
	Client    *http.Client
}

// DefaultFetchConfig returns fetch settings with a shared HTTP client
// (connection pooling enabled).
func DefaultFetchConfig() FetchConfig {
	timeout := 30 * time.Second
	return FetchConfig{
		UserAgent: "Mozilla/5.0 (compatible; news-harvest/1.0)",
		Timeout:   timeout,
		Client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// FetchConfigFrom derives fetch settings from the run configuration.
func FetchConfigFrom(cfg Config) FetchConfig {
	fc := DefaultFetchConfig()
	if cfg.UserAgent != "" {
		fc.UserAgent = cfg.UserAgent
	}
	if cfg.HTTPTimeout > 0 {
		fc.Timeout = cfg.HTTPTimeout
		fc.Client.Timeout = cfg.HTTPTimeout
	}
	return fc
}

// FetchError wraps a per-source failure with the source's name so the
// orchestrator can log a warning identifying it.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// FetchSource retrieves and parses one source's feed into normalized items,
// in feed order. now supplies the fetch timestamp (injected for tests).
func FetchSource(src Source, cfg FetchConfig, now func() time.Time) ([]Item, error) {
	feed, err := fetchFeed(src.URL, cfg)
	if err != nil {
		return nil, &FetchError{Source: src.Name, Err: err}
	}

	items := make([]Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		title := strings.TrimSpace(entry.Title)
		link := strings.TrimSpace(entry.Link)
		summary := cleanText(entry.Description)

		it := Item{
			ID:          fingerprint(title, link),
			SourceName:  src.Name,
			SourceURL:   src.URL,
			URL:         link,
			Title:       title,
			Summary:     summary,
			PublishedAt: resolvePublished(entry, now),
			FetchedAt:   now(),
			Language:    LanguageKo,
		}
		it.Category = guessCategory(title, summary, src.Category)
		it.Tags = makeTags(title, summary)
		items = append(items, it)
	}
	return items, nil
}

// fetchFeed fetches and parses an RSS/Atom feed using the shared client.
func fetchFeed(feedURL string, cfg FetchConfig) (*gofeed.Feed, error) {
	req, err := http.NewRequest("GET", feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := cfg.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	fp := gofeed.NewParser()
	feed, err := fp.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("feed parse failed: %w", err)
	}
	return feed, nil
}
