// =============================================================================
// harvester - one-shot news dataset build
// =============================================================================
//
// Pulls every configured feed, normalizes and dedups the entries, optionally
// enriches them with extracted article bodies, and writes the day's dataset
// as JSONL + Parquet under OUTPUT_ROOT/YYYY/MM/DD/.
//
// Configuration comes from the environment (see internal/pipeline/config.go);
// a .env file in the working directory is loaded first if present.
//
// Exit status is non-zero only when zero sources are configured. Individual
// source failures are logged to stderr and skipped.
//
// =============================================================================
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"news-harvest/internal/pipeline"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// Not an error: environment variables alone are a supported setup.
		fmt.Fprintf(os.Stderr, "INFO: .env not loaded: %v\n", err)
	}

	cfg := pipeline.LoadConfig()

	sources, err := pipeline.LoadSources(cfg.SourcesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading sources: %v\n", err)
		os.Exit(1)
	}
	if len(sources) == 0 {
		fmt.Fprintf(os.Stderr, "No sources in %s\n", cfg.SourcesFile)
		os.Exit(1)
	}

	fetchCfg := pipeline.FetchConfigFrom(cfg)
	fetch := func(src pipeline.Source) ([]pipeline.Item, error) {
		return pipeline.FetchSource(src, fetchCfg, pipeline.NowKST)
	}
	items := pipeline.Harvest(cfg, sources, fetch, pipeline.NewEnricher(fetchCfg))

	rows := pipeline.BuildDataset(items)

	paths, err := pipeline.EnsureDatasetDirs(cfg.OutputRoot, pipeline.NowKST())
	if err != nil {
		fmt.Fprintf(os.Stderr, "preparing output directory: %v\n", err)
		os.Exit(1)
	}
	if err := pipeline.SaveJSONL(rows, paths.JSONL); err != nil {
		fmt.Fprintf(os.Stderr, "writing JSONL: %v\n", err)
		os.Exit(1)
	}
	if err := pipeline.SaveParquet(rows, paths.Parquet); err != nil {
		fmt.Fprintf(os.Stderr, "writing Parquet: %v\n", err)
		os.Exit(1)
	}

	if cfg.NotionClip {
		clipper, err := pipeline.NewNotionClipper(cfg.NotionToken, cfg.NotionDatabaseID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating Notion clipper: %v\n", err)
			os.Exit(1)
		}
		clipped := clipper.ClipItems(context.Background(), items)
		fmt.Fprintf(os.Stderr, "INFO: clipped %d/%d items to Notion\n", clipped, len(items))
	}

	fmt.Printf("Saved JSONL: %s\n", paths.JSONL)
	fmt.Printf("Saved Parquet: %s\n", paths.Parquet)
}
