package extractors

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/moby/buildkit/frontend/dockerfile/parser"

	"github.com/indiekitai/env-audit/internal/audit/types"
)

// DockerfileExtractor pulls ENV and ARG declarations out of Docker build
// files using the buildkit parser, which preserves line numbers.
type DockerfileExtractor struct{}

func NewDockerfileExtractor() *DockerfileExtractor {
	return &DockerfileExtractor{}
}

func (d *DockerfileExtractor) CanHandle(path string) bool {
	return strings.Contains(strings.ToLower(filepath.Base(path)), "dockerfile")
}

func (d *DockerfileExtractor) Extract(ctx context.Context, path string, content []byte) ([]types.RawHit, error) {
	ast, err := parser.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	var hits []types.RawHit
	for _, child := range ast.AST.Children {
		instruction := strings.ToUpper(child.Value)
		if instruction == "ENV" || instruction == "ARG" {
			hits = append(hits, d.parseDeclaration(child, instruction, path)...)
		}
	}

	return hits, nil
}

func (d *DockerfileExtractor) parseDeclaration(node *parser.Node, instruction, path string) []types.RawHit {
	var args []string
	for n := node.Next; n != nil; n = n.Next {
		args = append(args, n.Value)
	}
	if len(args) == 0 {
		return nil
	}

	var hits []types.RawHit
	add := func(name string, def *string) {
		hits = append(hits, types.RawHit{
			Name:     name,
			File:     path,
			Line:     node.StartLine,
			Default:  def,
			Language: "docker",
		})
	}

	switch {
	case strings.Contains(args[0], "="):
		// NAME=value tokens, one declaration each
		for _, arg := range args {
			if parts := strings.SplitN(arg, "=", 2); len(parts) == 2 {
				add(parts[0], literalDefault(parts[1]))
			} else {
				add(arg, nil)
			}
		}
	case instruction == "ENV":
		// The parser normalizes ENV declarations into name/value pairs,
		// covering the legacy "ENV key value" form as well.
		for i := 0; i < len(args); i += 2 {
			var def *string
			if i+1 < len(args) {
				def = literalDefault(args[i+1])
			}
			add(args[i], def)
		}
	default:
		// ARG names declared without defaults
		for _, arg := range args {
			add(arg, nil)
		}
	}

	return hits
}
