package audit

import (
	"context"

	"github.com/indiekitai/env-audit/internal/audit/extractors"
	"github.com/indiekitai/env-audit/internal/audit/types"
)

// Extractor applies every registered content extractor to a file. Extractors
// are tried in a fixed order so hit ordering stays deterministic.
type Extractor struct {
	extractors []extractors.ContentExtractor
}

func NewExtractor() *Extractor {
	return &Extractor{
		extractors: []extractors.ContentExtractor{
			extractors.NewSourceExtractor(),
			extractors.NewDockerfileExtractor(),
			extractors.NewDockerComposeExtractor(),
			extractors.NewDotEnvExtractor(),
		},
	}
}

// ExtractFile runs all applicable extractors over one file's content.
// Malformed content yields no hits; it never fails the scan. Matched names
// that do not conform to the identifier grammar, or that are known false
// positives, are dropped here.
func (e *Extractor) ExtractFile(ctx context.Context, path string, content []byte) []types.RawHit {
	var hits []types.RawHit

	for _, extractor := range e.extractors {
		if !extractor.CanHandle(path) {
			continue
		}
		extracted, err := extractor.Extract(ctx, path, content)
		if err != nil {
			continue
		}
		for _, hit := range extracted {
			if !types.ValidName(hit.Name) || types.ShouldIgnore(hit.Name) {
				continue
			}
			hits = append(hits, hit)
		}
	}

	return hits
}
