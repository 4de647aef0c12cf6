package extractors

import (
	"context"

	"github.com/indiekitai/env-audit/internal/audit/types"
)

// ContentExtractor turns one file's content into raw hits.
type ContentExtractor interface {
	// Extract scans content and returns hits. Malformed content yields no
	// hits; it is never a reason to fail the scan.
	Extract(ctx context.Context, path string, content []byte) ([]types.RawHit, error)

	// CanHandle returns true if this extractor applies to the given file path
	CanHandle(path string) bool
}
