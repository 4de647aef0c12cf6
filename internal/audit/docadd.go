package audit

import (
	"fmt"
	"strings"

	"github.com/indiekitai/env-audit/internal/audit/types"
)

const docHeader = "# Environment Variables\n# Generated by env-audit\n"

// AddToDoc appends a documented entry for name to a dotenv-style artifact
// and returns the updated content. A nil doc means the artifact does not
// exist yet and gets a fresh header. Adding an already-documented variable
// is an error. Value and description fall back to name-derived guesses.
func AddToDoc(doc []byte, name, value, description string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("variable name is required")
	}
	if !types.ValidName(name) {
		return nil, fmt.Errorf("invalid variable name %q", name)
	}

	if len(doc) > 0 {
		documented, err := ParseDoc(doc)
		if err != nil {
			return nil, err
		}
		if documented[name] {
			return nil, fmt.Errorf("variable %q already documented", name)
		}
	}

	if description == "" {
		description = types.Describe(name)
	}
	if value == "" {
		value = types.ExampleValue(name, nil)
	}

	var b strings.Builder
	if len(doc) == 0 {
		b.WriteString(docHeader)
	} else {
		b.Write(doc)
		if !strings.HasSuffix(string(doc), "\n") {
			b.WriteByte('\n')
		}
	}
	fmt.Fprintf(&b, "\n# %s\n%s=%s\n", description, name, value)

	return []byte(b.String()), nil
}
