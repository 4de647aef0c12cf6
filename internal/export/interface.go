package export

import "github.com/indiekitai/env-audit/internal/audit/types"

// Renderer serializes a registry into one documentation artifact format.
type Renderer interface {
	// Render converts the registry to the target format
	Render(reg *types.Registry) ([]byte, error)

	// Name returns the renderer name (e.g. "env", "typescript", "zod", "json")
	Name() string
}

// ForFormat returns the renderer for a format name, or false when the
// format is unknown.
func ForFormat(format string) (Renderer, bool) {
	switch format {
	case "env":
		return NewEnvRenderer(nil), true
	case "typescript":
		return NewTypeScriptRenderer(), true
	case "zod":
		return NewZodRenderer(), true
	case "json":
		return NewJSONRenderer(), true
	}
	return nil, false
}
