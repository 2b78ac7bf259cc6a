// =============================================================================
// Lambda: harvest
// =============================================================================
//
// Runs one harvest cycle on a schedule (EventBridge) and writes the day's
// dataset. Same pipeline as cmd/harvester, driven entirely by environment
// variables; OUTPUT_ROOT should point somewhere writable for the Lambda
// runtime (e.g. /tmp/dataset or an EFS mount).
//
// =============================================================================
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"news-harvest/internal/pipeline"
)

// Response is the Lambda invocation result.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Collected  int    `json:"collected"`
	JSONLPath  string `json:"jsonlPath"`
	Parquet    string `json:"parquetPath"`
}

// Handler runs one harvest cycle.
func Handler(ctx context.Context, event interface{}) (Response, error) {
	log.Println("Starting harvest Lambda...")

	cfg := pipeline.LoadConfig()

	sources, err := pipeline.LoadSources(cfg.SourcesFile)
	if err != nil {
		return Response{StatusCode: 500, Message: err.Error()}, err
	}
	if len(sources) == 0 {
		err := fmt.Errorf("no sources in %s", cfg.SourcesFile)
		return Response{StatusCode: 400, Message: err.Error()}, err
	}

	log.Printf("Config: sources=%d, perSource=%d, total=%d, fulltext=%v",
		len(sources), cfg.PerSourceLimit, cfg.TotalLimit, cfg.FetchFulltext)

	fetchCfg := pipeline.FetchConfigFrom(cfg)
	fetch := func(src pipeline.Source) ([]pipeline.Item, error) {
		return pipeline.FetchSource(src, fetchCfg, pipeline.NowKST)
	}
	items := pipeline.Harvest(cfg, sources, fetch, pipeline.NewEnricher(fetchCfg))
	log.Printf("Collected %d items", len(items))

	rows := pipeline.BuildDataset(items)

	paths, err := pipeline.EnsureDatasetDirs(cfg.OutputRoot, pipeline.NowKST())
	if err != nil {
		return Response{StatusCode: 500, Message: err.Error(), Collected: len(items)}, err
	}
	if err := pipeline.SaveJSONL(rows, paths.JSONL); err != nil {
		return Response{StatusCode: 500, Message: err.Error(), Collected: len(items)}, err
	}
	if err := pipeline.SaveParquet(rows, paths.Parquet); err != nil {
		return Response{StatusCode: 500, Message: err.Error(), Collected: len(items)}, err
	}

	log.Printf("Saved %d rows to %s", len(rows), paths.Dir)

	return Response{
		StatusCode: 200,
		Message:    fmt.Sprintf("Saved %d items", len(rows)),
		Collected:  len(items),
		JSONLPath:  paths.JSONL,
		Parquet:    paths.Parquet,
	}, nil
}

func main() {
	lambda.Start(Handler)
}
