// =============================================================================
// dataset.go - fixed-schema dataset persistence
// =============================================================================
//
// The persisted schema is fixed regardless of which optional fields are
// populated (stable for downstream training jobs): missing content becomes
// an explicit null, missing tags an empty list. Two serializations of the
// identical record set are written per run, JSONL and Parquet, under a
// date-partitioned directory:
//
//	{OUTPUT_ROOT}/{YYYY}/{MM}/{DD}/news.jsonl
//	{OUTPUT_ROOT}/{YYYY}/{MM}/{DD}/news.parquet
//
// Same-day reruns overwrite both files.
//
// =============================================================================
package pipeline

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/parquet-go/parquet-go"
)

const (
	jsonlFileName   = "news.jsonl"
	parquetFileName = "news.parquet"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// DatasetRow is one persisted record. Field order here is the schema's
// column order: id, source_name, source_url, url, title, summary, content,
// category, tags, language, published_at, fetched_at.
type DatasetRow struct {
	ID          string   `json:"id" parquet:"id"`
	SourceName  string   `json:"source_name" parquet:"source_name"`
	SourceURL   string   `json:"source_url" parquet:"source_url"`
	URL         string   `json:"url" parquet:"url"`
	Title       string   `json:"title" parquet:"title"`
	Summary     string   `json:"summary" parquet:"summary"`
	Content     *string  `json:"content" parquet:"content,optional"`
	Category    string   `json:"category" parquet:"category"`
	Tags        []string `json:"tags" parquet:"tags,list"`
	Language    string   `json:"language" parquet:"language"`
	PublishedAt string   `json:"published_at" parquet:"published_at"`
	FetchedAt   string   `json:"fetched_at" parquet:"fetched_at"`
}

// BuildDataset converts items to dataset rows and performs a final
// drop-duplicates pass on id (idempotent after the aggregation step's own
// dedup, kept as a safety net).
func BuildDataset(items []Item) []DatasetRow {
	rows := make([]DatasetRow, 0, len(items))
	seen := map[string]bool{}
	for _, it := range items {
		if seen[it.ID] {
			continue
		}
		seen[it.ID] = true

		row := DatasetRow{
			ID:          it.ID,
			SourceName:  it.SourceName,
			SourceURL:   it.SourceURL,
			URL:         it.URL,
			Title:       it.Title,
			Summary:     it.Summary,
			Category:    it.Category,
			Tags:        it.Tags,
			Language:    it.Language,
			PublishedAt: it.PublishedAt.Format(time.RFC3339),
			FetchedAt:   it.FetchedAt.Format(time.RFC3339),
		}
		if it.Content != "" {
			content := it.Content
			row.Content = &content
		}
		if row.Tags == nil {
			row.Tags = []string{}
		}
		rows = append(rows, row)
	}
	return rows
}

// DatasetPaths holds the output locations for one run day.
type DatasetPaths struct {
	Dir     string
	JSONL   string
	Parquet string
}

// EnsureDatasetDirs creates the date-partitioned output directory for the
// given day and returns the file paths inside it.
func EnsureDatasetDirs(root string, day time.Time) (DatasetPaths, error) {
	dir := filepath.Join(root, day.Format("2006"), day.Format("01"), day.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return DatasetPaths{}, fmt.Errorf("creating %s: %w", dir, err)
	}
	return DatasetPaths{
		Dir:     dir,
		JSONL:   filepath.Join(dir, jsonlFileName),
		Parquet: filepath.Join(dir, parquetFileName),
	}, nil
}

// SaveJSONL writes rows as one JSON object per line.
func SaveJSONL(rows []DatasetRow, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := jsonAPI.NewEncoder(w)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("encoding row %s: %w", row.ID, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

// LoadJSONL reads a line-delimited dataset back into rows.
func LoadJSONL(path string) ([]DatasetRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var rows []DatasetRow
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var row DatasetRow
		if err := jsonAPI.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

// SaveParquet writes rows as a Parquet file.
func SaveParquet(rows []DatasetRow, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := parquet.NewGenericWriter[DatasetRow](f)
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return f.Close()
}

// LoadParquet reads a Parquet dataset back into rows.
func LoadParquet(path string) ([]DatasetRow, error) {
	rows, err := parquet.ReadFile[DatasetRow](path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}
