package filesystems

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// MemoryFS implements FileSystem over an in-memory file map. It is used by
// tests as a deterministic traversal source.
type MemoryFS struct {
	files      map[string][]byte
	dirs       map[string]bool
	unreadable map[string]bool
}

// NewMemoryFS creates a new MemoryFS instance
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files:      make(map[string][]byte),
		dirs:       make(map[string]bool),
		unreadable: make(map[string]bool),
	}
}

// AddFile adds a file to the memory filesystem, creating parent directories.
func (mfs *MemoryFS) AddFile(name string, content []byte) {
	clean := path.Clean(name)
	mfs.files[clean] = content
	for dir := path.Dir(clean); dir != "." && dir != "/"; dir = path.Dir(dir) {
		mfs.dirs[dir] = true
	}
}

// AddUnreadable adds a file whose reads fail with a permission error.
func (mfs *MemoryFS) AddUnreadable(name string) {
	mfs.AddFile(name, nil)
	mfs.unreadable[path.Clean(name)] = true
}

func (mfs *MemoryFS) ReadFile(name string) ([]byte, error) {
	clean := path.Clean(name)
	if mfs.unreadable[clean] {
		return nil, fmt.Errorf("read %s: permission denied", name)
	}
	content, exists := mfs.files[clean]
	if !exists {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	return content, nil
}

// Walk visits the root directory and everything below it in lexical order.
func (mfs *MemoryFS) Walk(root string, fn WalkFunc) error {
	cleanRoot := path.Clean(root)
	if cleanRoot != "." && !mfs.dirs[cleanRoot] {
		if content, ok := mfs.files[cleanRoot]; ok {
			return fn(cleanRoot, &memoryFileInfo{name: path.Base(cleanRoot), size: int64(len(content))}, nil)
		}
		return fn(cleanRoot, nil, fmt.Errorf("path not found: %s", root))
	}

	var walkDir func(dir string) error
	walkDir = func(dir string) error {
		info := &memoryFileInfo{name: path.Base(dir), isDir: true}
		if err := fn(dir, info, nil); err != nil {
			if err == SkipDir {
				return nil
			}
			return err
		}

		for _, child := range mfs.children(dir) {
			full := child
			if dir != "." {
				full = path.Join(dir, child)
			}
			if mfs.dirs[full] {
				if err := walkDir(full); err != nil {
					return err
				}
				continue
			}
			content := mfs.files[full]
			fileInfo := &memoryFileInfo{name: child, size: int64(len(content))}
			if err := fn(full, fileInfo, nil); err != nil && err != SkipDir {
				return err
			}
		}
		return nil
	}

	return walkDir(cleanRoot)
}

// children returns the direct entries of dir, sorted.
func (mfs *MemoryFS) children(dir string) []string {
	prefix := ""
	if dir != "." {
		prefix = dir + "/"
	}

	seen := make(map[string]bool)
	var names []string
	collect := func(p string) {
		if !strings.HasPrefix(p, prefix) {
			return
		}
		rest := strings.TrimPrefix(p, prefix)
		if rest == "" || (prefix == "" && strings.HasPrefix(p, "/")) {
			return
		}
		name := rest
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			name = rest[:i]
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for p := range mfs.files {
		collect(p)
	}
	for p := range mfs.dirs {
		collect(p)
	}

	sort.Strings(names)
	return names
}

func (mfs *MemoryFS) Join(elem ...string) string {
	return path.Join(elem...)
}

func (mfs *MemoryFS) Base(p string) string {
	return path.Base(p)
}

func (mfs *MemoryFS) Rel(basepath, targpath string) (string, error) {
	base := path.Clean(basepath)
	target := path.Clean(targpath)

	if base == target {
		return ".", nil
	}
	if base == "." {
		return target, nil
	}
	if strings.HasPrefix(target, base+"/") {
		return strings.TrimPrefix(target, base+"/"), nil
	}
	return target, nil
}

type memoryFileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (fi *memoryFileInfo) Name() string { return fi.name }
func (fi *memoryFileInfo) Size() int64  { return fi.size }
func (fi *memoryFileInfo) IsDir() bool  { return fi.isDir }
