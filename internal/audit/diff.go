package audit

import (
	"errors"
	"fmt"
	"sort"

	"github.com/joho/godotenv"

	"github.com/indiekitai/env-audit/internal/audit/types"
	"github.com/indiekitai/env-audit/internal/filesystems"
)

// ErrDocParse marks an existing documentation artifact that could not be
// parsed. It is fatal to diff mode only; a scan stays usable.
var ErrDocParse = errors.New("cannot parse existing documentation")

// Documentation files consulted for the already-documented variable set,
// in the order they are tried.
var docFiles = []string{".env", ".env.local", ".env.example", ".env.development"}

// ParseDoc extracts documented variable names from a dotenv-style artifact.
// Comments and blank lines are ignored.
func ParseDoc(content []byte) (map[string]bool, error) {
	env, err := godotenv.Unmarshal(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocParse, err)
	}

	documented := make(map[string]bool, len(env))
	for name := range env {
		documented[name] = true
	}
	return documented, nil
}

// DocumentedVars unions the documented names from every doc file present at
// root. Missing files are fine; unparseable ones surface ErrDocParse.
func DocumentedVars(fs filesystems.FileSystem, root string) (map[string]bool, error) {
	documented := make(map[string]bool)
	for _, name := range docFiles {
		content, err := fs.ReadFile(fs.Join(root, name))
		if err != nil {
			continue
		}
		vars, err := ParseDoc(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for v := range vars {
			documented[v] = true
		}
	}
	return documented, nil
}

// Diff compares the registry against the documented set. The result is clean
// exactly when nothing in code is missing from the docs; stale entries are
// informational.
func Diff(reg *types.Registry, documented map[string]bool) types.DiffResult {
	var result types.DiffResult

	for _, name := range reg.Names() {
		if !documented[name] {
			result.Undocumented = append(result.Undocumented, name)
		}
	}
	for name := range documented {
		if _, ok := reg.Get(name); !ok {
			result.Stale = append(result.Stale, name)
		}
	}
	sort.Strings(result.Stale)

	result.Clean = len(result.Undocumented) == 0
	return result
}
