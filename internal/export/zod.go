package export

import (
	"fmt"
	"strings"

	"github.com/indiekitai/env-audit/internal/audit/types"
)

// ZodRenderer emits a zod validation schema for the environment.
type ZodRenderer struct{}

func NewZodRenderer() *ZodRenderer {
	return &ZodRenderer{}
}

func (z *ZodRenderer) Name() string {
	return "zod"
}

func (z *ZodRenderer) Render(reg *types.Registry) ([]byte, error) {
	var b strings.Builder
	b.WriteString("// Environment variable validation schema\n")
	b.WriteString("// Generated by env-audit\n")
	b.WriteString("// https://github.com/indiekitai/env-audit\n\n")
	b.WriteString("import { z } from 'zod';\n\n")
	b.WriteString("export const envSchema = z.object({\n")

	for _, rec := range reg.Records() {
		chain := "z.string()"
		switch {
		case rec.Default != nil:
			chain += fmt.Sprintf(".default(%q)", *rec.Default)
		case !rec.Required:
			chain += ".optional()"
		}
		chain += fmt.Sprintf(".describe(%q)", rec.Description)

		fmt.Fprintf(&b, "  %s: %s,\n", rec.Name, chain)
	}

	b.WriteString("});\n\n")
	b.WriteString("export type Env = z.infer<typeof envSchema>;\n\n")
	b.WriteString("// Usage: const env = envSchema.parse(process.env);\n")

	return []byte(b.String()), nil
}
