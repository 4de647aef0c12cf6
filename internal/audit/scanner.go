package audit

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/indiekitai/env-audit/internal/audit/types"
	"github.com/indiekitai/env-audit/internal/filesystems"
)

// Directories that never contain application configuration.
var skipDirs = map[string]bool{
	"node_modules": true, ".git": true, "__pycache__": true,
	".venv": true, "venv": true, "dist": true, "build": true,
	".next": true, "target": true, "vendor": true, ".cargo": true,
}

// Additional directories skipped with the no-scripts option.
var scriptDirs = map[string]bool{
	"scripts": true, "script": true, "test": true, "tests": true,
	"__tests__": true, "spec": true, "e2e": true,
}

// Extensions worth scanning beyond the special-cased filenames.
var scanExtensions = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".jsx": true, ".tsx": true,
	".mjs": true, ".cjs": true, ".go": true, ".rs": true, ".rb": true,
	".sh": true, ".bash": true, ".zsh": true, ".env": true,
	".yaml": true, ".yml": true, ".json": true, ".toml": true,
	".ini": true, ".conf": true,
}

// Options control one scan invocation. The zero value scans everything with
// a worker per CPU.
type Options struct {
	// SkipScripts additionally ignores script and test directories
	SkipScripts bool

	// Workers bounds parallel file extraction; 0 means NumCPU
	Workers int

	// IgnoreDirs extends the built-in directory ignore list
	IgnoreDirs []string

	// IgnoreVars extends the built-in variable ignore list
	IgnoreVars []string

	// SensitiveKeywords extends the built-in sensitive keyword list
	SensitiveKeywords []string
}

// Scanner runs the extraction pipeline over a source tree supplied by a
// FileSystem collaborator.
type Scanner struct {
	fs        filesystems.FileSystem
	extractor *Extractor
	opts      Options
}

func NewScanner(fs filesystems.FileSystem, opts Options) *Scanner {
	return &Scanner{
		fs:        fs,
		extractor: NewExtractor(),
		opts:      opts,
	}
}

// Scan traverses root, extracts raw hits from every candidate file in
// parallel, and folds them into a registry. Unreadable files are reported
// as warnings; only an unusable root is a terminal error.
func (s *Scanner) Scan(ctx context.Context, root string) (*types.Registry, []types.Warning, error) {
	files, err := s.collectFiles(root)
	if err != nil {
		return nil, nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	ignored := make(map[string]bool, len(s.opts.IgnoreVars))
	for _, name := range s.opts.IgnoreVars {
		ignored[name] = true
	}

	workers := s.opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Extraction is a side-effect-free map over independent files; results
	// land in per-file slots so traversal order survives the parallelism.
	hitsPerFile := make([][]types.RawHit, len(files))
	var (
		mu       sync.Mutex
		warnings []types.Warning
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, file := range files {
		g.Go(func() error {
			content, err := s.fs.ReadFile(file.path)
			if err != nil {
				mu.Lock()
				warnings = append(warnings, types.Warning{File: file.rel, Reason: err.Error()})
				mu.Unlock()
				return nil
			}
			if isBinary(content) {
				return nil
			}

			hits := s.extractor.ExtractFile(gctx, file.path, content)
			for j := range hits {
				hits[j].File = file.rel
			}
			hitsPerFile[i] = hits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, warnings, err
	}

	var all []types.RawHit
	for _, hits := range hitsPerFile {
		for _, hit := range hits {
			if ignored[hit.Name] {
				continue
			}
			all = append(all, hit)
		}
	}

	// Re-sorting here keeps output independent of worker scheduling.
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].File != all[j].File {
			return all[i].File < all[j].File
		}
		if all[i].Line != all[j].Line {
			return all[i].Line < all[j].Line
		}
		return all[i].Matcher < all[j].Matcher
	})

	sort.Slice(warnings, func(i, j int) bool { return warnings[i].File < warnings[j].File })

	return BuildRegistry(all, s.opts.SensitiveKeywords), warnings, nil
}

type candidate struct {
	path string // path used for reads and classification
	rel  string // path recorded in hits, relative to the scan root
}

func (s *Scanner) collectFiles(root string) ([]candidate, error) {
	extraIgnore := make(map[string]bool, len(s.opts.IgnoreDirs))
	for _, dir := range s.opts.IgnoreDirs {
		extraIgnore[dir] = true
	}

	var files []candidate
	err := s.fs.Walk(root, func(path string, info filesystems.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil // skip entries we cannot stat
		}

		name := s.fs.Base(path)
		if info.IsDir() {
			if path == root {
				return nil
			}
			if skipDirs[name] || extraIgnore[name] || (s.opts.SkipScripts && scriptDirs[name]) {
				return filesystems.SkipDir
			}
			return nil
		}

		if !scannable(name) {
			return nil
		}

		rel, relErr := s.fs.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		files = append(files, candidate{path: path, rel: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// scannable decides by filename whether a file can contain env references.
func scannable(name string) bool {
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, ".env") {
		return true
	}
	if strings.Contains(lower, "dockerfile") || strings.Contains(lower, "compose") {
		return true
	}
	return scanExtensions[strings.ToLower(filepath.Ext(name))]
}

// isBinary sniffs for a NUL byte in the leading chunk, the same heuristic
// git uses.
func isBinary(content []byte) bool {
	head := content
	if len(head) > 8192 {
		head = head[:8192]
	}
	return bytes.IndexByte(head, 0) >= 0
}
