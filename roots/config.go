package roots

import (
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/resfs/errors"
	"github.com/jmgilman/go/resfs/platform"
)

// Config describes root directories in YAML form.
//
//	defaults:
//	  lib0-textures: ../../Libs/Lib0/Textures/
//	overrides:
//	  textures: /srv/assets/textures/
//
// Defaults register new categories or replace built-in defaults. Overrides
// are applied with SetRootPath.
type Config struct {
	Defaults  map[Category]string `yaml:"defaults,omitempty"`
	Overrides map[Category]string `yaml:"overrides,omitempty"`
}

// ParseConfig decodes and validates a YAML document.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse roots configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig reads and parses the YAML file at name.
func LoadConfig(fsys platform.ReadFS, name string) (*Config, error) {
	data, err := fsys.ReadFile(name)
	if err != nil {
		return nil, errors.FromFS(err, "load roots configuration", name)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, errors.WithContext(err, "path", name)
	}
	return cfg, nil
}

// Validate checks that every category name is usable.
func (c *Config) Validate() error {
	for _, cat := range sortedKeys(c.Defaults) {
		if err := validateName(cat); err != nil {
			return errors.Wrapf(err, errors.CodeInvalidConfig, "invalid default for %q", cat)
		}
	}
	for _, cat := range sortedKeys(c.Overrides) {
		if cat == Absolute {
			return errors.New(errors.CodeInvalidConfig, "the absolute category cannot be overridden")
		}
		if err := validateName(cat); err != nil {
			return errors.Wrapf(err, errors.CodeInvalidConfig, "invalid override for %q", cat)
		}
	}
	return nil
}

// Apply installs the configured defaults, then the overrides. An override
// for a category that is neither registered in t nor listed under defaults
// fails, and t is left unchanged.
func (c *Config) Apply(t *Table) error {
	if err := c.Validate(); err != nil {
		return err
	}
	for _, cat := range sortedKeys(c.Overrides) {
		if _, ok := c.Defaults[cat]; ok || t.IsRegistered(cat) {
			continue
		}
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidConfig, "cannot override %q: unknown resource category", cat),
			"category", string(cat),
		)
	}

	for _, cat := range sortedKeys(c.Defaults) {
		if err := t.SetDefault(cat, c.Defaults[cat]); err != nil {
			return err
		}
	}
	for _, cat := range sortedKeys(c.Overrides) {
		if err := t.SetRootPath(cat, c.Overrides[cat]); err != nil {
			return errors.Wrapf(err, errors.CodeInvalidConfig, "cannot override %q", cat)
		}
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to encode roots configuration")
	}
	return data, nil
}

// ConfigFromTable captures the overrides of t. Defaults are included only
// where they differ from the compiled-in ones.
func ConfigFromTable(t *Table) *Config {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cfg := &Config{}
	for cat, dir := range t.defaults {
		if builtin, ok := builtinDefaults[cat]; ok && builtin == dir {
			continue
		}
		if cfg.Defaults == nil {
			cfg.Defaults = make(map[Category]string)
		}
		cfg.Defaults[cat] = dir
	}
	for cat, dir := range t.overrides {
		if cfg.Overrides == nil {
			cfg.Overrides = make(map[Category]string)
		}
		cfg.Overrides[cat] = dir
	}
	return cfg
}

// sortedKeys gives deterministic iteration so errors are reproducible.
func sortedKeys(m map[Category]string) []Category {
	keys := make([]Category, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
