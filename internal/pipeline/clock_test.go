package pipeline

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, KST)
}

func TestResolvePublishedFromPublishedString(t *testing.T) {
	entry := &gofeed.Item{Published: "Mon, 02 Jan 2006 15:04:05 +0000"}
	got := resolvePublished(entry, fixedNow)

	want := time.Date(2006, 1, 3, 0, 4, 5, 0, KST)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, offset := got.Zone(); offset != 9*60*60 {
		t.Errorf("offset = %d, want +09:00", offset)
	}
}

func TestResolvePublishedFallsBackToUpdated(t *testing.T) {
	entry := &gofeed.Item{
		Published: "not a date at all ###",
		Updated:   "2026-08-29T10:00:00+09:00",
	}
	got := resolvePublished(entry, fixedNow)
	want := time.Date(2026, 8, 29, 10, 0, 0, 0, KST)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResolvePublishedFromCustomPubDate(t *testing.T) {
	entry := &gofeed.Item{
		Custom: map[string]string{"pubDate": "2026-08-28 01:30:00"},
	}
	got := resolvePublished(entry, fixedNow)
	if got.Equal(fixedNow()) {
		t.Error("pubDate was ignored, fell through to wall clock")
	}
	if got.Location() != KST {
		t.Errorf("location = %v, want KST", got.Location())
	}
}

func TestResolvePublishedFromParsedTime(t *testing.T) {
	utc := time.Date(2026, 8, 29, 23, 30, 0, 0, time.UTC)
	entry := &gofeed.Item{
		Published:       "garbage",
		PublishedParsed: &utc,
	}
	got := resolvePublished(entry, fixedNow)
	want := time.Date(2026, 8, 30, 8, 30, 0, 0, KST)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResolvePublishedUpdatedParsedFallback(t *testing.T) {
	utc := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	entry := &gofeed.Item{UpdatedParsed: &utc}
	got := resolvePublished(entry, fixedNow)
	if !got.Equal(utc) {
		t.Errorf("got %v, want %v", got, utc)
	}
}

// Every strategy failing must still produce a timestamp: the current wall
// clock. The pipeline never fails on an unparseable date.
func TestResolvePublishedWallClockFallback(t *testing.T) {
	entry := &gofeed.Item{Published: "???", Updated: "???"}
	got := resolvePublished(entry, fixedNow)
	if !got.Equal(fixedNow()) {
		t.Errorf("got %v, want wall clock %v", got, fixedNow())
	}
}
