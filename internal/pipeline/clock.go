package pipeline

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/mmcdole/gofeed"
)

// KST is the fixed zone every persisted timestamp is normalized to,
// regardless of the zone the feed reported.
var KST = time.FixedZone("KST", 9*60*60)

// NowKST returns the current wall-clock time in KST.
func NowKST() time.Time {
	return time.Now().In(KST)
}

// resolvePublished determines an entry's publication time using an ordered
// fallback chain:
//
//  1. lenient parse of the raw published / updated / pubDate strings
//  2. the structured times gofeed already parsed, converted to KST
//  3. the current wall clock
//
// The chain never fails; every item gets some timestamp.
func resolvePublished(entry *gofeed.Item, now func() time.Time) time.Time {
	for _, raw := range []string{entry.Published, entry.Updated, entry.Custom["pubDate"]} {
		if raw == "" {
			continue
		}
		if t, err := dateparse.ParseAny(raw); err == nil {
			return t.In(KST)
		}
	}
	for _, t := range []*time.Time{entry.PublishedParsed, entry.UpdatedParsed} {
		if t != nil {
			return t.In(KST)
		}
	}
	return now()
}
