package audit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indiekitai/env-audit/internal/audit"
)

func TestAddToDocCreatesArtifact(t *testing.T) {
	out, err := audit.AddToDoc(nil, "PORT", "", "")
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "# Environment Variables")
	assert.Contains(t, content, "# Server port number")
	assert.Contains(t, content, "PORT=3000")
}

func TestAddToDocAppends(t *testing.T) {
	existing := []byte("# Environment Variables\n\n# Something\nEXISTING_SETTING=1\n")
	out, err := audit.AddToDoc(existing, "CACHE_TTL", "60", "Cache TTL in seconds")
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "EXISTING_SETTING=1")
	assert.Contains(t, content, "# Cache TTL in seconds\nCACHE_TTL=60\n")
}

func TestAddToDocRejectsDuplicate(t *testing.T) {
	existing := []byte("PORT=3000\n")
	_, err := audit.AddToDoc(existing, "PORT", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already documented")
}

func TestAddToDocRejectsInvalidName(t *testing.T) {
	for _, name := range []string{"", "2FA", "MY-VAR"} {
		_, err := audit.AddToDoc(nil, name, "", "")
		assert.Error(t, err, "name %q", name)
	}
}
