package export

import (
	"fmt"
	"strings"

	"github.com/indiekitai/env-audit/internal/audit/types"
)

// TypeScriptRenderer emits an ambient ProcessEnv declaration. Optional
// variables get a `?` so strict null checks catch unguarded access.
type TypeScriptRenderer struct{}

func NewTypeScriptRenderer() *TypeScriptRenderer {
	return &TypeScriptRenderer{}
}

func (t *TypeScriptRenderer) Name() string {
	return "typescript"
}

func (t *TypeScriptRenderer) Render(reg *types.Registry) ([]byte, error) {
	var b strings.Builder
	b.WriteString("// Environment variable types\n")
	b.WriteString("// Generated by env-audit\n")
	b.WriteString("// https://github.com/indiekitai/env-audit\n\n")
	b.WriteString("declare namespace NodeJS {\n")
	b.WriteString("  interface ProcessEnv {\n")

	for _, rec := range reg.Records() {
		comments := []string{rec.Description}
		if rec.Sensitive {
			comments = append(comments, "@sensitive")
		}
		if rec.Default != nil {
			comments = append(comments, fmt.Sprintf("@default %s", *rec.Default))
		}
		fmt.Fprintf(&b, "    /** %s */\n", strings.Join(comments, " | "))

		optional := ""
		if !rec.Required {
			optional = "?"
		}
		fmt.Fprintf(&b, "    %s%s: string;\n", rec.Name, optional)
	}

	b.WriteString("  }\n")
	b.WriteString("}\n\n")
	b.WriteString("export {};\n")

	return []byte(b.String()), nil
}
