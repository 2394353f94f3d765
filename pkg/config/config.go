// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/addheader/pkg/header"
	"github.com/walteh/addheader/pkg/identity"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// ErrNotFound is returned by Find when no config file exists.
var ErrNotFound = errors.Base("no config file found")

// 📁 Names are the config file names looked up in a directory, in order.
var Names = []string{
	".addheader.yaml",
	".addheader.yml",
	".addheader.json",
	".addheader.hcl",
	".addheader.toml",
}

// DefaultInclude selects the files stamped when a directory is given.
var DefaultInclude = []string{"**/*.cs"}

// 👤 IdentityArgs says where the author comes from
type IdentityArgs struct {
	Path    string   `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty" hcl:"path,optional"`         // Lookup path handed to each store
	Sources []string `json:"sources,omitempty" yaml:"sources,omitempty" toml:"sources,omitempty" hcl:"sources,optional"` // Store names, in lookup order
}

// 📚 Config represents the complete configuration
type Config struct {
	Template      string        `json:"template,omitempty" yaml:"template,omitempty" toml:"template,omitempty" hcl:"template,optional"`
	TemplateFile  string        `json:"template_file,omitempty" yaml:"template_file,omitempty" toml:"template_file,omitempty" hcl:"template_file,optional"`
	DateFormat    string        `json:"date_format,omitempty" yaml:"date_format,omitempty" toml:"date_format,omitempty" hcl:"date_format,optional"`
	CommentTokens []string      `json:"comment_tokens,omitempty" yaml:"comment_tokens,omitempty" toml:"comment_tokens,omitempty" hcl:"comment_tokens,optional"`
	ScanLimit     int           `json:"scan_limit,omitempty" yaml:"scan_limit,omitempty" toml:"scan_limit,omitempty" hcl:"scan_limit,optional"`
	Include       []string      `json:"include,omitempty" yaml:"include,omitempty" toml:"include,omitempty" hcl:"include,optional"`
	Exclude       []string      `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty" hcl:"exclude,optional"`
	SkipExisting  bool          `json:"skip_existing,omitempty" yaml:"skip_existing,omitempty" toml:"skip_existing,omitempty" hcl:"skip_existing,optional"`
	Identity      *IdentityArgs `json:"identity,omitempty" yaml:"identity,omitempty" toml:"identity,omitempty" hcl:"identity,block"`

	location string
}

// Location is the file the config was loaded from, empty for defaults.
func (cfg *Config) Location() string {
	return cfg.location
}

// IdentityPath is the configured identity lookup path.
func (cfg *Config) IdentityPath() string {
	if cfg.Identity == nil {
		return ""
	}
	return cfg.Identity.Path
}

// IdentitySources are the configured identity stores.
func (cfg *Config) IdentitySources() []string {
	if cfg.Identity == nil || len(cfg.Identity.Sources) == 0 {
		return identity.DefaultSources
	}
	return cfg.Identity.Sources
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path

	if err := Validate(ctx, cfg); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Find returns the first config file in dir, falling back to
// $XDG_CONFIG_HOME/addheader/config.* and the XDG config dirs.
func Find(dir string) (string, error) {
	for _, name := range Names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	for _, name := range Names {
		rel := filepath.Join("addheader", "config"+filepath.Ext(name))
		if path, err := xdg.SearchConfigFile(rel); err == nil {
			return path, nil
		}
	}

	return "", errors.WithStack(ErrNotFound)
}

// 🔍 Validate fills defaults, reads the template file and checks the result.
// An empty template is a configuration error.
func Validate(ctx context.Context, cfg *Config) error {
	if cfg.TemplateFile != "" {
		path := cfg.TemplateFile
		if !filepath.IsAbs(path) && cfg.location != "" {
			path = filepath.Join(filepath.Dir(cfg.location), path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Errorf("reading template file: %w", err)
		}
		if cfg.Template != "" {
			zerolog.Ctx(ctx).Warn().Str("template_file", path).Msg("template_file overrides inline template")
		}
		cfg.Template = string(data)
		cfg.TemplateFile = path
	}

	if err := header.ValidateTemplate(cfg.Template); err != nil {
		return err
	}

	if cfg.ScanLimit < 0 {
		return errors.Errorf("scan_limit must not be negative, got %d", cfg.ScanLimit)
	}

	for _, pattern := range append(append([]string{}, cfg.Include...), cfg.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid glob pattern %q", pattern)
		}
	}

	if _, err := identity.NewChain(cfg.IdentitySources()); err != nil {
		return errors.Errorf("identity.sources: %w", err)
	}

	if len(cfg.CommentTokens) == 0 {
		cfg.CommentTokens = []string{"//"}
	}
	if len(cfg.Include) == 0 {
		cfg.Include = DefaultInclude
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	firstLine, _, _ := strings.Cut(cfg.Template, "\n")
	source := cfg.location
	if source == "" {
		source = "defaults"
	}
	return source + ": " + firstLine
}
