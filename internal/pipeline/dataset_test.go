package pipeline

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func sampleItems() []Item {
	a := makeItem("대통령 기자회견", "https://example.com/1", 10)
	a.SourceName = "연합뉴스"
	a.SourceURL = "https://example.com/rss"
	a.Summary = "청와대 발표"
	a.Category = "politics"
	a.Tags = []string{"breaking", "short_title"}
	a.Content = "본문 텍스트"

	b := makeItem("코스피 급등", "https://example.com/2", 20)
	b.SourceName = "연합뉴스"
	b.SourceURL = "https://example.com/rss"
	b.Category = "economy"
	// No tags, no content: writer must default them explicitly.

	return []Item{a, b}
}

func TestBuildDataset(t *testing.T) {
	rows := BuildDataset(sampleItems())
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	withContent := rows[0]
	if withContent.Content == nil || *withContent.Content != "본문 텍스트" {
		t.Errorf("content not carried over: %v", withContent.Content)
	}

	bare := rows[1]
	if bare.Content != nil {
		t.Errorf("missing content must stay null, got %q", *bare.Content)
	}
	if bare.Tags == nil || len(bare.Tags) != 0 {
		t.Errorf("missing tags must become an empty list, got %v", bare.Tags)
	}

	wantPublished := sampleItems()[0].PublishedAt.Format(time.RFC3339)
	if withContent.PublishedAt != wantPublished {
		t.Errorf("published_at = %q, want %q", withContent.PublishedAt, wantPublished)
	}
}

func TestBuildDatasetDropsDuplicateIDs(t *testing.T) {
	items := sampleItems()
	items = append(items, items[0]) // same (title, url) -> same id
	rows := BuildDataset(items)
	if len(rows) != 2 {
		t.Errorf("got %d rows, want 2 after duplicate drop", len(rows))
	}
}

func TestEnsureDatasetDirs(t *testing.T) {
	root := t.TempDir()
	day := time.Date(2026, 8, 30, 15, 0, 0, 0, KST)

	paths, err := EnsureDatasetDirs(root, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantDir := filepath.Join(root, "2026", "08", "30")
	if paths.Dir != wantDir {
		t.Errorf("dir = %q, want %q", paths.Dir, wantDir)
	}
	if fi, err := os.Stat(wantDir); err != nil || !fi.IsDir() {
		t.Errorf("output dir not created: %v", err)
	}
	if filepath.Base(paths.JSONL) != "news.jsonl" || filepath.Base(paths.Parquet) != "news.parquet" {
		t.Errorf("file names = %q / %q", paths.JSONL, paths.Parquet)
	}
}

func TestJSONLRoundTrip(t *testing.T) {
	rows := BuildDataset(sampleItems())
	path := filepath.Join(t.TempDir(), "news.jsonl")

	if err := SaveJSONL(rows, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadJSONL(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", got, rows)
	}
}

func TestParquetRoundTrip(t *testing.T) {
	rows := BuildDataset(sampleItems())
	path := filepath.Join(t.TempDir(), "news.parquet")

	if err := SaveParquet(rows, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadParquet(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("got %d rows, want %d", len(got), len(rows))
	}
	for i := range rows {
		if got[i].ID != rows[i].ID {
			t.Errorf("row %d id = %q, want %q", i, got[i].ID, rows[i].ID)
		}
		if got[i].Title != rows[i].Title || got[i].Summary != rows[i].Summary {
			t.Errorf("row %d text fields differ", i)
		}
		if got[i].PublishedAt != rows[i].PublishedAt || got[i].FetchedAt != rows[i].FetchedAt {
			t.Errorf("row %d timestamps differ", i)
		}
		if (got[i].Content == nil) != (rows[i].Content == nil) {
			t.Errorf("row %d content nullability differs", i)
		}
		if len(got[i].Tags) != len(rows[i].Tags) {
			t.Errorf("row %d tags = %v, want %v", i, got[i].Tags, rows[i].Tags)
		}
	}
}

// Both serializations of the same run must be row-equivalent.
func TestJSONLAndParquetAgree(t *testing.T) {
	rows := BuildDataset(sampleItems())
	dir := t.TempDir()
	jsonlPath := filepath.Join(dir, "news.jsonl")
	parquetPath := filepath.Join(dir, "news.parquet")

	if err := SaveJSONL(rows, jsonlPath); err != nil {
		t.Fatalf("save jsonl: %v", err)
	}
	if err := SaveParquet(rows, parquetPath); err != nil {
		t.Fatalf("save parquet: %v", err)
	}

	fromJSONL, err := LoadJSONL(jsonlPath)
	if err != nil {
		t.Fatalf("load jsonl: %v", err)
	}
	fromParquet, err := LoadParquet(parquetPath)
	if err != nil {
		t.Fatalf("load parquet: %v", err)
	}
	if len(fromJSONL) != len(fromParquet) {
		t.Fatalf("row counts differ: %d vs %d", len(fromJSONL), len(fromParquet))
	}
	for i := range fromJSONL {
		if fromJSONL[i].ID != fromParquet[i].ID {
			t.Errorf("row %d ids differ: %q vs %q", i, fromJSONL[i].ID, fromParquet[i].ID)
		}
	}
}
