package pipeline

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// sourcesFile mirrors the layout of sources.yaml:
//
//	sources:
//	  - name: "Some Outlet"
//	    url: "https://example.com/rss"
//	    category: "politics"   # optional override
type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// LoadSources reads the declarative source list. A missing file or an empty
// document yields an empty list, not an error; the caller decides whether
// zero sources is fatal.
func LoadSources(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc sourcesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc.Sources, nil
}
