package extractors

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/indiekitai/env-audit/internal/audit/types"
)

// DotEnvExtractor treats .env files as declarations: every entry is a hit
// and a non-empty value counts as that variable's default.
type DotEnvExtractor struct{}

func NewDotEnvExtractor() *DotEnvExtractor {
	return &DotEnvExtractor{}
}

func (d *DotEnvExtractor) CanHandle(path string) bool {
	return strings.HasPrefix(strings.ToLower(filepath.Base(path)), ".env")
}

func (d *DotEnvExtractor) Extract(ctx context.Context, path string, content []byte) ([]types.RawHit, error) {
	env, err := godotenv.Unmarshal(string(content))
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lineOf := keyLines(string(content))

	var hits []types.RawHit
	for _, key := range keys {
		var def *string
		if value := env[key]; value != "" {
			v := value
			def = &v
		}
		hits = append(hits, types.RawHit{
			Name:     key,
			File:     path,
			Line:     lineOf[key],
			Default:  def,
			Language: "dotenv",
		})
	}

	return hits, nil
}

// keyLines maps each key to the first line declaring it. godotenv flattens
// the file into a map, so positions are recovered with a second pass.
func keyLines(content string) map[string]int {
	lines := make(map[string]int)
	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "export "))
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, _, ok := strings.Cut(trimmed, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if _, seen := lines[key]; !seen {
			lines[key] = i + 1
		}
	}
	return lines
}
