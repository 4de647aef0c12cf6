package extractors

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/compose-spec/compose-go/v2/loader"
	composeTypes "github.com/compose-spec/compose-go/v2/types"
	"gopkg.in/yaml.v3"

	"github.com/indiekitai/env-audit/internal/audit/types"
)

// DockerComposeExtractor reads environment declarations from compose files.
// The compose-go loader is tried first; files it rejects fall back to a
// lenient yaml walk so a half-written compose file still yields hits.
type DockerComposeExtractor struct{}

func NewDockerComposeExtractor() *DockerComposeExtractor {
	return &DockerComposeExtractor{}
}

func (d *DockerComposeExtractor) CanHandle(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	return strings.Contains(name, "compose") && (strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml"))
}

func (d *DockerComposeExtractor) Extract(ctx context.Context, path string, content []byte) ([]types.RawHit, error) {
	hits, err := d.extractWithLoader(ctx, path, content)
	if err != nil {
		return lenientComposeEnv(path, content), nil
	}
	return hits, nil
}

func (d *DockerComposeExtractor) extractWithLoader(ctx context.Context, path string, content []byte) ([]types.RawHit, error) {
	configDetails := composeTypes.ConfigDetails{
		WorkingDir: ".",
		ConfigFiles: []composeTypes.ConfigFile{
			{
				Filename: path,
				Content:  content,
			},
		},
	}

	project, err := loader.LoadWithContext(ctx, configDetails, func(options *loader.Options) {
		options.SetProjectName("temp", true)
		// Interpolation would substitute ${VAR} references away; the docker
		// line patterns pick those up separately.
		options.SkipInterpolation = true
		options.SkipValidation = true
	})
	if err != nil {
		return nil, err
	}

	serviceNames := make([]string, 0, len(project.Services))
	for name := range project.Services {
		serviceNames = append(serviceNames, name)
	}
	sort.Strings(serviceNames)

	// The loader does not expose source positions, so hits carry line 0 and
	// are ordered by service then variable name for determinism.
	var hits []types.RawHit
	for _, serviceName := range serviceNames {
		service := project.Services[serviceName]

		keys := make([]string, 0, len(service.Environment))
		for key := range service.Environment {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			var def *string
			if value := service.Environment[key]; value != nil {
				def = literalDefault(*value)
			}
			hits = append(hits, types.RawHit{
				Name:     key,
				File:     path,
				Default:  def,
				Language: "docker",
			})
		}
	}

	return hits, nil
}

// lenientComposeEnv walks the raw yaml document for services.*.environment
// entries, tolerating files the compose loader refuses. yaml.Node keeps
// line numbers, so these hits carry real positions.
func lenientComposeEnv(path string, content []byte) []types.RawHit {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil || len(doc.Content) == 0 {
		return nil
	}

	services := mappingValue(doc.Content[0], "services")
	if services == nil || services.Kind != yaml.MappingNode {
		return nil
	}

	var hits []types.RawHit
	for i := 0; i+1 < len(services.Content); i += 2 {
		env := mappingValue(services.Content[i+1], "environment")
		if env == nil {
			continue
		}

		switch env.Kind {
		case yaml.MappingNode:
			for j := 0; j+1 < len(env.Content); j += 2 {
				key, value := env.Content[j], env.Content[j+1]
				var def *string
				if value.Kind == yaml.ScalarNode && value.Tag != "!!null" {
					def = literalDefault(value.Value)
				}
				hits = append(hits, types.RawHit{
					Name:     key.Value,
					File:     path,
					Line:     key.Line,
					Default:  def,
					Language: "docker",
				})
			}
		case yaml.SequenceNode:
			for _, item := range env.Content {
				if item.Kind != yaml.ScalarNode {
					continue
				}
				name, value, hasValue := strings.Cut(item.Value, "=")
				var def *string
				if hasValue {
					def = literalDefault(value)
				}
				hits = append(hits, types.RawHit{
					Name:     name,
					File:     path,
					Line:     item.Line,
					Default:  def,
					Language: "docker",
				})
			}
		}
	}

	return hits
}

// mappingValue returns the value node for key in a yaml mapping, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
