package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/indiekitai/env-audit/internal/audit/types"
)

// EnvRenderer produces a documented .env template grouped by category.
// Existing, when set, marks variables already defined in the project's env
// files.
type EnvRenderer struct {
	Existing map[string]bool
}

func NewEnvRenderer(existing map[string]bool) *EnvRenderer {
	return &EnvRenderer{Existing: existing}
}

func (e *EnvRenderer) Name() string {
	return "env"
}

func (e *EnvRenderer) Render(reg *types.Registry) ([]byte, error) {
	var b strings.Builder
	b.WriteString("# Environment Variables\n")
	b.WriteString("# Generated by env-audit\n")
	b.WriteString("# https://github.com/indiekitai/env-audit\n\n")

	byCategory := make(map[string][]*types.VariableRecord)
	for _, rec := range reg.Records() {
		byCategory[rec.Category] = append(byCategory[rec.Category], rec)
	}

	divider := "# " + strings.Repeat("=", 50)
	for _, category := range types.CategoryOrder {
		records := byCategory[category]
		if len(records) == 0 {
			continue
		}
		sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })

		fmt.Fprintf(&b, "%s\n# %s\n%s\n\n", divider, strings.ToUpper(category), divider)

		for _, rec := range records {
			var status []string
			if e.Existing[rec.Name] {
				status = append(status, "already defined")
			}
			if rec.Sensitive {
				status = append(status, "sensitive")
			}
			if rec.Required {
				status = append(status, "required")
			} else if rec.Default != nil {
				status = append(status, fmt.Sprintf("optional, default: %s", *rec.Default))
			} else {
				status = append(status, "optional")
			}

			fmt.Fprintf(&b, "# %s (%s)\n", rec.Description, strings.Join(status, ", "))

			shown := rec.Files
			if len(shown) > 3 {
				shown = shown[:3]
			}
			fmt.Fprintf(&b, "# Found in: %s\n", strings.Join(shown, ", "))
			if extra := len(rec.Files) - len(shown); extra > 0 {
				fmt.Fprintf(&b, "#   ...and %d more files\n", extra)
			}

			fmt.Fprintf(&b, "%s=%s\n\n", rec.Name, types.ExampleValue(rec.Name, rec.Default))
		}
	}

	return []byte(b.String()), nil
}
