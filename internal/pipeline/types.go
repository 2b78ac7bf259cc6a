// =============================================================================
// types.go - core data structures
// =============================================================================
//
// Defines the two records the harvester works with:
//
//   - Source: one configured feed (from sources.yaml)
//   - Item:   one normalized news item, the unit that flows through the
//     whole pipeline and ends up as a dataset row
//
// =============================================================================
package pipeline

import (
	"crypto/sha1"
	"encoding/hex"
	"time"
)

// LanguageKo is the language constant for this deployment. All configured
// sources are Korean-language feeds.
const LanguageKo = "ko"

// Source is one configured feed source. Category, when set, overrides
// keyword-based categorization for every item from this source.
type Source struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Category string `yaml:"category"`
}

// Item is one normalized feed entry.
//
// PublishedAt and FetchedAt are always in KST. Content stays empty unless
// fulltext enrichment is enabled and succeeds for this item; the dataset
// writer turns an empty Content into an explicit null.
type Item struct {
	ID          string
	SourceName  string
	SourceURL   string
	URL         string
	Title       string
	Summary     string
	PublishedAt time.Time
	FetchedAt   time.Time
	Language    string
	Category    string
	Tags        []string
	Content     string
}

// fingerprint derives the stable item id from title and URL: SHA-1 over
// "title|url", truncated to 16 hex characters. This is the sole dedup key;
// two items with the same title and URL always collide regardless of any
// other field.
func fingerprint(title, url string) string {
	h := sha1.Sum([]byte(title + "|" + url))
	return hex.EncodeToString(h[:])[:16]
}
