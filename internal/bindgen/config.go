package bindgen

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config selects which parts of the header are turned into Go declarations.
type Config struct {
	// Header is the path to SimConnect.h. Environment references such as
	// ${MSFS_SDK} are expanded by LoadConfig.
	Header string `yaml:"header"`

	// Package names the Go package of the generated files.
	Package string `yaml:"package"`

	// DLL is the module name recorded in the generated proc table comment.
	DLL string `yaml:"dll"`

	// Opaque names void* parameters that carry a caller-chosen value rather
	// than an address. They are declared as uintptr.
	Opaque []string `yaml:"opaque"`

	Functions Filter `yaml:"functions"`
	Types     Filter `yaml:"types"`
	Vars      Filter `yaml:"vars"`
}

// Filter is an allow-list and a block-list of anchored regular expressions.
// A name is selected when it matches an allow pattern and no block pattern.
type Filter struct {
	Allow []string `yaml:"allow"`
	Block []string `yaml:"block"`

	allow []*regexp.Regexp
	block []*regexp.Regexp
}

// LoadConfig reads a YAML generator configuration.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML generator configuration and compiles its filters.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Header = os.ExpandEnv(cfg.Header)
	if cfg.Package == "" {
		cfg.Package = "bindings"
	}
	if cfg.DLL == "" {
		cfg.DLL = "SimConnect.dll"
	}
	if err := cfg.compile(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) compile() error {
	for name, f := range map[string]*Filter{"functions": &c.Functions, "types": &c.Types, "vars": &c.Vars} {
		if err := f.compile(); err != nil {
			return fmt.Errorf("%s filter: %w", name, err)
		}
	}
	return nil
}

func (f *Filter) compile() error {
	var err error
	if f.allow, err = compilePatterns(f.Allow); err != nil {
		return err
	}
	f.block, err = compilePatterns(f.Block)
	return err
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("^(?:" + p + ")$")
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// Allowed reports whether name matches an allow pattern. Patterns are
// compiled by ParseConfig or Generate; an uncompiled filter matches nothing.
func (f *Filter) Allowed(name string) bool {
	for _, re := range f.allow {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// Blocked reports whether name matches a block pattern.
func (f *Filter) Blocked(name string) bool {
	for _, re := range f.block {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// Selected reports whether name is allowed and not blocked.
func (f *Filter) Selected(name string) bool {
	return f.Allowed(name) && !f.Blocked(name)
}

// literals returns the allow entries that name exactly one symbol.
func (f *Filter) literals() []string {
	var out []string
	for _, p := range f.Allow {
		if regexp.QuoteMeta(p) == p && !strings.ContainsAny(p, " \t") {
			out = append(out, p)
		}
	}
	return out
}
