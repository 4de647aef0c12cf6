package audit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indiekitai/env-audit/internal/audit"
	"github.com/indiekitai/env-audit/internal/audit/types"
	"github.com/indiekitai/env-audit/internal/filesystems"
)

func newDocFS(files map[string]string) *filesystems.MemoryFS {
	mfs := filesystems.NewMemoryFS()
	for name, content := range files {
		mfs.AddFile(name, []byte(content))
	}
	return mfs
}

func registryOf(names ...string) *types.Registry {
	hits := make([]types.RawHit, 0, len(names))
	for i, name := range names {
		hits = append(hits, types.RawHit{Name: name, File: "app.py", Line: i + 1})
	}
	return audit.BuildRegistry(hits, nil)
}

func TestDiffUndocumented(t *testing.T) {
	reg := registryOf("DATABASE_URL", "PORT")
	result := audit.Diff(reg, map[string]bool{"DATABASE_URL": true})

	assert.Equal(t, []string{"PORT"}, result.Undocumented)
	assert.Empty(t, result.Stale)
	assert.False(t, result.Clean)
}

func TestDiffCleanWithStale(t *testing.T) {
	reg := registryOf("DATABASE_URL")
	result := audit.Diff(reg, map[string]bool{
		"DATABASE_URL": true,
		"REMOVED_FLAG": true,
		"OLD_SETTING":  true,
	})

	assert.Empty(t, result.Undocumented)
	assert.Equal(t, []string{"OLD_SETTING", "REMOVED_FLAG"}, result.Stale)
	assert.True(t, result.Clean, "stale entries alone do not fail the check")
}

func TestParseDoc(t *testing.T) {
	documented, err := audit.ParseDoc([]byte("# comment\nDATABASE_URL=postgres://x\n\nPORT=3000\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"DATABASE_URL": true, "PORT": true}, documented)
}

func TestParseDocError(t *testing.T) {
	_, err := audit.ParseDoc([]byte("this is not a dotenv line\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, audit.ErrDocParse)
}

func TestDocumentedVarsUnion(t *testing.T) {
	mfs := newDocFS(map[string]string{
		".env":         "DATABASE_URL=postgres://x\n",
		".env.example": "PORT=3000\n",
	})

	documented, err := audit.DocumentedVars(mfs, ".")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"DATABASE_URL": true, "PORT": true}, documented)
}

func TestDocumentedVarsParseFailure(t *testing.T) {
	mfs := newDocFS(map[string]string{
		".env.local": "broken doc line\n",
	})

	_, err := audit.DocumentedVars(mfs, ".")
	require.Error(t, err)
	assert.ErrorIs(t, err, audit.ErrDocParse)
}
