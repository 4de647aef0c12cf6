package filesystems

import (
	"testing"
)

func TestMemoryFSWalkOrder(t *testing.T) {
	mfs := NewMemoryFS()
	mfs.AddFile("b.txt", []byte("b"))
	mfs.AddFile("a/nested.txt", []byte("n"))
	mfs.AddFile("a/deep/leaf.txt", []byte("l"))

	var visited []string
	err := mfs.Walk(".", func(path string, info FileInfo, err error) error {
		if err != nil {
			return err
		}
		visited = append(visited, path)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	want := []string{".", "a", "a/deep", "a/deep/leaf.txt", "a/nested.txt", "b.txt"}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
}

func TestMemoryFSWalkSkipDir(t *testing.T) {
	mfs := NewMemoryFS()
	mfs.AddFile("keep/file.txt", []byte("k"))
	mfs.AddFile("skip/file.txt", []byte("s"))

	var files []string
	err := mfs.Walk(".", func(path string, info FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == "skip" {
				return SkipDir
			}
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(files) != 1 || files[0] != "keep/file.txt" {
		t.Fatalf("files = %v", files)
	}
}

func TestMemoryFSUnreadable(t *testing.T) {
	mfs := NewMemoryFS()
	mfs.AddUnreadable("secret.txt")

	if _, err := mfs.ReadFile("secret.txt"); err == nil {
		t.Fatal("expected read error")
	}
}

func TestMemoryFSRel(t *testing.T) {
	mfs := NewMemoryFS()
	cases := []struct{ base, target, want string }{
		{".", "a/b.txt", "a/b.txt"},
		{"root", "root/a/b.txt", "a/b.txt"},
		{"root", "root", "."},
	}
	for _, c := range cases {
		got, err := mfs.Rel(c.base, c.target)
		if err != nil {
			t.Fatalf("Rel(%q, %q): %v", c.base, c.target, err)
		}
		if got != c.want {
			t.Errorf("Rel(%q, %q) = %q, want %q", c.base, c.target, got, c.want)
		}
	}
}
