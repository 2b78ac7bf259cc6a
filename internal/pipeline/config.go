// =============================================================================
// config.go - environment-driven configuration
// =============================================================================
//
// All knobs come from the environment (optionally seeded from a .env file by
// the entrypoints via godotenv). The configuration is read once into an
// explicit Config struct; core pipeline code never does ambient os.Getenv
// lookups.
//
// Recognized variables:
//
//	OUTPUT_ROOT        base output directory        (default "dataset")
//	SOURCES_FILE       path to source config        (default "sources.yaml")
//	PER_SOURCE_LIMIT   max items kept per source    (default 20)
//	TOTAL_LIMIT        max items in final dataset   (default 200)
//	FETCH_FULLTEXT     enable body-text extraction  (default false)
//	FULLTEXT_LIMIT     max items to enrich          (default 40)
//	HTTP_TIMEOUT_SEC   shared HTTP client timeout   (default 30)
//	USER_AGENT         HTTP User-Agent header
//	NOTION_CLIP        clip final items to Notion   (default false)
//	NOTION_TOKEN       Notion integration token
//	NOTION_DATABASE_ID target Notion database
//
// =============================================================================
package pipeline

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the run's full configuration.
type Config struct {
	OutputRoot     string
	SourcesFile    string
	PerSourceLimit int
	TotalLimit     int
	FetchFulltext  bool
	FulltextLimit  int

	HTTPTimeout time.Duration
	UserAgent   string

	NotionClip       bool
	NotionToken      string
	NotionDatabaseID string
}

// LoadConfig builds a Config from the environment. Unset or malformed values
// fall back to their defaults.
func LoadConfig() Config {
	return Config{
		OutputRoot:     getenvStr("OUTPUT_ROOT", "dataset"),
		SourcesFile:    getenvStr("SOURCES_FILE", "sources.yaml"),
		PerSourceLimit: getenvInt("PER_SOURCE_LIMIT", 20),
		TotalLimit:     getenvInt("TOTAL_LIMIT", 200),
		FetchFulltext:  getenvBool("FETCH_FULLTEXT", false),
		FulltextLimit:  getenvInt("FULLTEXT_LIMIT", 40),

		HTTPTimeout: time.Duration(getenvInt("HTTP_TIMEOUT_SEC", 30)) * time.Second,
		UserAgent:   getenvStr("USER_AGENT", "Mozilla/5.0 (compatible; news-harvest/1.0)"),

		NotionClip:       getenvBool("NOTION_CLIP", false),
		NotionToken:      os.Getenv("NOTION_TOKEN"),
		NotionDatabaseID: os.Getenv("NOTION_DATABASE_ID"),
	}
}

func getenvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return strings.EqualFold(v, "true")
	}
	return def
}
