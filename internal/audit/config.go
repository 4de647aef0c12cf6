package audit

import (
	"github.com/BurntSushi/toml"

	"github.com/indiekitai/env-audit/internal/filesystems"
)

// ConfigFile is the repo-local override file looked up at the scan root.
const ConfigFile = ".envaudit.toml"

// Config holds per-repository scan overrides. Lists only ever extend the
// built-in defaults; nothing built in can be turned off.
type Config struct {
	IgnoreDirs        []string `toml:"ignore_dirs"`
	IgnoreVars        []string `toml:"ignore_vars"`
	SensitiveKeywords []string `toml:"sensitive_keywords"`
	SkipScripts       bool     `toml:"skip_scripts"`
}

// LoadConfig reads .envaudit.toml from root. A missing file yields the zero
// config; a malformed one is a real error since the user wrote it on purpose.
func LoadConfig(fs filesystems.FileSystem, root string) (Config, error) {
	var cfg Config

	content, err := fs.ReadFile(fs.Join(root, ConfigFile))
	if err != nil {
		return cfg, nil
	}
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Apply merges the config into scan options.
func (c Config) Apply(opts Options) Options {
	opts.IgnoreDirs = append(opts.IgnoreDirs, c.IgnoreDirs...)
	opts.IgnoreVars = append(opts.IgnoreVars, c.IgnoreVars...)
	opts.SensitiveKeywords = append(opts.SensitiveKeywords, c.SensitiveKeywords...)
	if c.SkipScripts {
		opts.SkipScripts = true
	}
	return opts
}
