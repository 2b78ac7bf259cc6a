package pipeline

import "sort"

// SourceFetcher fetches one source's items. Collect takes it as a parameter
// so tests can substitute a fake for the network-backed FetchSource.
type SourceFetcher func(Source) ([]Item, error)

// Collect runs the aggregation pipeline over the configured sources:
// per-source fetch, per-source recency sort and truncation, global recency
// sort, dedup by id (first occurrence after the global sort wins), global
// truncation.
//
// A failing source contributes zero items and only a warning; partial
// per-source results are never salvaged. Because the global sort happens
// before dedup, the most recent occurrence of a duplicated id is the one
// kept. When timestamps tie, source list order decides; that tie-break is
// implementation-defined, not a guarantee.
func Collect(sources []Source, perSourceLimit, totalLimit int, fetch SourceFetcher) []Item {
	var all []Item
	for _, src := range sources {
		items, err := fetch(src)
		if err != nil {
			warnf("collecting %s: %v", src.Name, err)
			continue
		}
		sortByRecency(items)
		if len(items) > perSourceLimit {
			items = items[:perSourceLimit]
		}
		all = append(all, items...)
	}

	sortByRecency(all)
	all = dedupByID(all)
	if len(all) > totalLimit {
		all = all[:totalLimit]
	}
	return all
}

// Harvest runs collection plus, when enabled, fulltext enrichment. With
// FetchFulltext off the enricher is never touched, so no extraction request
// is ever issued.
func Harvest(cfg Config, sources []Source, fetch SourceFetcher, enricher *Enricher) []Item {
	items := Collect(sources, cfg.PerSourceLimit, cfg.TotalLimit, fetch)
	if cfg.FetchFulltext && enricher != nil {
		enricher.EnrichFulltext(items, cfg.FulltextLimit)
	}
	return items
}

// sortByRecency orders items newest first. The sort is stable so ties keep
// their insertion order.
func sortByRecency(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
}

// dedupByID drops later occurrences of an already-seen id.
func dedupByID(items []Item) []Item {
	seen := map[string]bool{}
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		out = append(out, it)
	}
	return out
}
