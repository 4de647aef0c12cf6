package extractors

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/indiekitai/env-audit/internal/audit/types"
)

// rule is one lexical matcher: it captures a variable name and, when
// defGroup is non-zero, a literal default value.
type rule struct {
	language string
	re       *regexp.Regexp
	defGroup int
}

// Per-language pattern groups. Within a group, order matters: when two rules
// match at the same offset the earlier rule wins, so the default-capturing
// variants are listed before their bare counterparts.
var patternGroups = map[string][]rule{
	"python": {
		{"python", regexp.MustCompile(`os\.environ\.get\(["']([A-Z][A-Z0-9_]*)["'](?:\s*,\s*["']([^"']*)["'])?\)`), 2},
		{"python", regexp.MustCompile(`os\.getenv\(["']([A-Z][A-Z0-9_]*)["'](?:\s*,\s*["']([^"']*)["'])?\)`), 2},
		{"python", regexp.MustCompile(`os\.environ\[["']([A-Z][A-Z0-9_]*)["']`), 0},
	},
	"node": {
		{"node", regexp.MustCompile(`process\.env\.([A-Z][A-Z0-9_]*)\s*(?:\|\||&&|\?\?)\s*["']([^"']*)["']`), 2},
		{"node", regexp.MustCompile(`process\.env\.([A-Z][A-Z0-9_]*)`), 0},
		{"node", regexp.MustCompile(`process\.env\[["']([A-Z][A-Z0-9_]*)["']\]`), 0},
	},
	"go": {
		{"go", regexp.MustCompile(`os\.(?:Getenv|LookupEnv)\(["']([A-Z][A-Z0-9_]*)["']`), 0},
	},
	"rust": {
		{"rust", regexp.MustCompile(`env::var\(["']([A-Z][A-Z0-9_]*)["']`), 0},
	},
	"ruby": {
		{"ruby", regexp.MustCompile(`ENV\[["']([A-Z][A-Z0-9_]*)["']\]\s*\|\|\s*["']([^"']*)["']`), 2},
		{"ruby", regexp.MustCompile(`ENV\.fetch\(["']([A-Z][A-Z0-9_]*)["'](?:\s*,\s*["']([^"']*)["'])?\)`), 2},
		{"ruby", regexp.MustCompile(`ENV\[["']([A-Z][A-Z0-9_]*)["']`), 0},
	},
	"shell": {
		{"shell", regexp.MustCompile(`\$\{([A-Z][A-Z0-9_]*):-([^}]*)\}`), 2},
		{"shell", regexp.MustCompile(`\$\{([A-Z][A-Z0-9_]*):=([^}]*)\}`), 2},
		{"shell", regexp.MustCompile(`\$\{?([A-Z][A-Z0-9_]*)\}?`), 0},
	},
	// Interpolation references inside Dockerfiles and compose files. The
	// declaration forms (ENV/ARG, environment: entries) belong to the
	// structured extractors.
	"docker": {
		{"docker", regexp.MustCompile(`\$\{([A-Z][A-Z0-9_]*):-([^}]*)\}`), 2},
		{"docker", regexp.MustCompile(`\$\{?([A-Z][A-Z0-9_]*)\}?`), 0},
	},
}

// Extension-based classification into pattern groups.
var extensionGroups = map[string]string{
	".py":   "python",
	".js":   "node",
	".jsx":  "node",
	".ts":   "node",
	".tsx":  "node",
	".mjs":  "node",
	".cjs":  "node",
	".go":   "go",
	".rs":   "rust",
	".rb":   "ruby",
	".sh":   "shell",
	".bash": "shell",
	".zsh":  "shell",
}

// SourceExtractor applies per-language lexical patterns line by line.
type SourceExtractor struct{}

func NewSourceExtractor() *SourceExtractor {
	return &SourceExtractor{}
}

// GroupsFor returns the pattern group names applicable to the given path.
// Docker build and compose files get the docker group on top of anything
// the extension implies.
func GroupsFor(path string) []string {
	var groups []string
	if group, ok := extensionGroups[strings.ToLower(filepath.Ext(path))]; ok {
		groups = append(groups, group)
	}
	if isDockerPath(path) {
		groups = append(groups, "docker")
	}
	return groups
}

func isDockerPath(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	if strings.Contains(base, "dockerfile") {
		return true
	}
	return strings.Contains(base, "compose") &&
		(strings.HasSuffix(base, ".yml") || strings.HasSuffix(base, ".yaml"))
}

func (s *SourceExtractor) CanHandle(path string) bool {
	return len(GroupsFor(path)) > 0
}

func (s *SourceExtractor) Extract(ctx context.Context, path string, content []byte) ([]types.RawHit, error) {
	var hits []types.RawHit

	lines := strings.Split(string(content), "\n")
	groups := GroupsFor(path)

	for i, line := range lines {
		lineNum := i + 1
		// A matched start offset claims that substring: later rules matching
		// at the same position are duplicates, not extra references.
		claimed := make(map[int]bool)

		for _, group := range groups {
			for ruleIdx, r := range patternGroups[group] {
				for _, m := range r.re.FindAllStringSubmatchIndex(line, -1) {
					start := m[0]
					if claimed[start] {
						continue
					}
					claimed[start] = true

					hit := types.RawHit{
						Name:     line[m[2]:m[3]],
						File:     path,
						Line:     lineNum,
						Language: r.language,
						Matcher:  ruleIdx,
					}
					if r.defGroup > 0 && m[2*r.defGroup] >= 0 {
						hit.Default = literalDefault(line[m[2*r.defGroup]:m[2*r.defGroup+1]])
					}
					hits = append(hits, hit)
				}
			}
		}
	}

	return hits, nil
}

// literalDefault normalizes a captured default value. Only literal tokens
// count: command substitutions and nested variable references yield no
// default at all.
func literalDefault(raw string) *string {
	v := strings.TrimSpace(raw)
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			v = v[1 : len(v)-1]
		}
	}
	if v == "" || strings.HasPrefix(v, "$") || strings.HasPrefix(v, "`") {
		return nil
	}
	return &v
}
