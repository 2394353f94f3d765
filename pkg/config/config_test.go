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
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/addheader/pkg/header"
	"github.com/walteh/addheader/pkg/identity"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		config      string
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "yaml",
			file: ".addheader.yaml",
			config: `
template: |
  // {namespace}.{class-interface}
  // {author} <{email}>
date_format: yyyy-MM-dd
scan_limit: 200
exclude: ["**/obj/**"]
skip_existing: true
identity:
  path: identity.toml
  sources: [file, env]
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "// {namespace}.{class-interface}\n// {author} <{email}>\n", cfg.Template)
				assert.Equal(t, "yyyy-MM-dd", cfg.DateFormat)
				assert.Equal(t, 200, cfg.ScanLimit)
				assert.Equal(t, []string{"**/obj/**"}, cfg.Exclude)
				assert.Equal(t, DefaultInclude, cfg.Include)
				assert.Equal(t, []string{"//"}, cfg.CommentTokens)
				assert.True(t, cfg.SkipExisting)
				assert.Equal(t, "identity.toml", cfg.IdentityPath())
				assert.Equal(t, []string{"file", "env"}, cfg.IdentitySources())
			},
		},
		{
			name:   "json",
			file:   "config.json",
			config: `{"template": "// {author}", "include": ["src/**/*.cs"], "comment_tokens": ["//", "/*"]}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "// {author}", cfg.Template)
				assert.Equal(t, []string{"src/**/*.cs"}, cfg.Include)
				assert.Equal(t, []string{"//", "/*"}, cfg.CommentTokens)
				assert.Equal(t, "", cfg.IdentityPath())
				assert.Equal(t, identity.DefaultSources, cfg.IdentitySources())
			},
		},
		{
			name: "hcl",
			file: ".addheader.hcl",
			config: `
template = <<EOT
// {namespace}
// {date:yyyy}
EOT
skip_existing = true

identity {
  path    = "user.yaml"
  sources = ["git"]
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "// {namespace}\n// {date:yyyy}\n", cfg.Template)
				assert.True(t, cfg.SkipExisting)
				assert.Equal(t, "user.yaml", cfg.IdentityPath())
				assert.Equal(t, []string{"git"}, cfg.IdentitySources())
			},
		},
		{
			name: "toml",
			file: ".addheader.toml",
			config: `
template = """// {class-interface}
// {email}"""
scan_limit = 10

[identity]
path = "who.json"
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "// {class-interface}\n// {email}", cfg.Template)
				assert.Equal(t, 10, cfg.ScanLimit)
				assert.Equal(t, "who.json", cfg.IdentityPath())
			},
		},
		{
			name:        "empty_template",
			file:        ".addheader.yaml",
			config:      "template: \"  \\n \"\n",
			errContains: "template is empty",
		},
		{
			name:        "missing_template",
			file:        ".addheader.json",
			config:      `{"skip_existing": true}`,
			errContains: "template is empty",
		},
		{
			name:        "unknown_yaml_field",
			file:        ".addheader.yaml",
			config:      "template: x\ncolour: red\n",
			errContains: "parsing YAML",
		},
		{
			name:        "unknown_json_field",
			file:        ".addheader.json",
			config:      `{"template": "x", "colour": "red"}`,
			errContains: "parsing JSON",
		},
		{
			name:        "unknown_toml_field",
			file:        ".addheader.toml",
			config:      "template = \"x\"\ncolour = \"red\"\n",
			errContains: "parsing TOML",
		},
		{
			name:        "invalid_hcl",
			file:        ".addheader.hcl",
			config:      "template = ",
			errContains: "parsing HCL",
		},
		{
			name:        "unknown_identity_source",
			file:        ".addheader.yaml",
			config:      "template: x\nidentity:\n  sources: [registry]\n",
			errContains: "unknown identity source",
		},
		{
			name:        "invalid_glob",
			file:        ".addheader.yaml",
			config:      "template: x\ninclude: [\"[\"]\n",
			errContains: "invalid glob pattern",
		},
		{
			name:        "negative_scan_limit",
			file:        ".addheader.yaml",
			config:      "template: x\nscan_limit: -1\n",
			errContains: "scan_limit must not be negative",
		},
		{
			name:        "unsupported_extension",
			file:        "config.ini",
			config:      "template=x",
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.config)

			cfg, err := Load(testContext(t), path)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, path, cfg.Location())
			tt.check(t, cfg)
		})
	}
}

func TestLoad_EmptyTemplateIsTyped(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".addheader.yaml", "template: \"\"\n")

	_, err := Load(testContext(t), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, header.ErrEmptyTemplate)
}

func TestLoad_TemplateFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "header.txt", "// {author}\n// {date}")
	path := writeFile(t, dir, ".addheader.yaml", "template_file: header.txt\n")

	cfg, err := Load(testContext(t), path)
	require.NoError(t, err)
	assert.Equal(t, "// {author}\n// {date}", cfg.Template)
	assert.Equal(t, filepath.Join(dir, "header.txt"), cfg.TemplateFile)
}

func TestLoad_MissingTemplateFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".addheader.yaml", "template_file: nope.txt\n")

	_, err := Load(testContext(t), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading template file")
}

func TestFind(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	t.Run("working_directory_first", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".addheader.toml", "template = \"x\"")
		want := writeFile(t, dir, ".addheader.yaml", "template: x")

		got, err := Find(dir)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("xdg_fallback", func(t *testing.T) {
		appDir := filepath.Join(xdg.ConfigHome, "addheader")
		require.NoError(t, os.MkdirAll(appDir, 0o755))
		want := writeFile(t, appDir, "config.hcl", "template = \"x\"")
		t.Cleanup(func() { os.Remove(want) })

		got, err := Find(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := Find(t.TempDir())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetParser(t *testing.T) {
	assert.IsType(t, &YAMLParser{}, GetParser("a/.addheader.YML"))
	assert.IsType(t, &JSONParser{}, GetParser("config.json"))
	assert.IsType(t, &HCLParser{}, GetParser(".addheader.hcl"))
	assert.IsType(t, &TOMLParser{}, GetParser(".addheader.toml"))
	assert.Nil(t, GetParser("config.ini"))
}

func TestParserRegistration(t *testing.T) {
	originalParsers := parsers
	defer func() {
		parsers = originalParsers
	}()

	parsers = nil

	p := &YAMLParser{}
	Register(p)
	assert.Len(t, parsers, 1, "should have 1 parser registered")
	assert.Same(t, p, parsers[0], "registered parser should match")
}
