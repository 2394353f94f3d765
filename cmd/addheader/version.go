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

package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/addheader/pkg/config"
	"github.com/walteh/addheader/pkg/datefmt"
	"github.com/walteh/addheader/pkg/header"
	"github.com/walteh/addheader/pkg/identity"
)

// 🏷️ BuildInfo describes this binary and the defaults it stamps headers with
type BuildInfo struct {
	Version   string `json:"version"`
	Revision  string `json:"revision,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`

	ConfigFiles     []string `json:"config_files"`
	IdentitySources []string `json:"identity_sources"`
	DateFormat      string   `json:"date_format"`
	Marker          string   `json:"marker"`
}

// readBuildInfo fills BuildInfo from the embedded module information
func readBuildInfo() *BuildInfo {
	info := &BuildInfo{
		Version:         "dev",
		GoVersion:       runtime.Version(),
		Platform:        runtime.GOOS + "/" + runtime.GOARCH,
		ConfigFiles:     config.Names,
		IdentitySources: identity.DefaultSources,
		DateFormat:      datefmt.General,
		Marker:          header.Marker,
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if v := buildInfo.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Revision = setting.Value
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}
	return info
}

// String renders the info for a terminal
func (b *BuildInfo) String() string {
	revision := b.Revision
	if revision == "" {
		revision = "unknown"
	}
	if b.Modified {
		revision += " (modified)"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🚀 addheader %s (%s, %s, %s)\n", b.Version, revision, b.GoVersion, b.Platform)
	fmt.Fprintf(&sb, "config:    %s\n", strings.Join(b.ConfigFiles, ", "))
	fmt.Fprintf(&sb, "identity:  %s\n", strings.Join(b.IdentitySources, " > "))
	fmt.Fprintf(&sb, "{date}:    %s\n", b.DateFormat)
	return sb.String()
}

// newVersionCmd prints the build information. It needs no configuration.
func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information and built-in defaults",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			info := readBuildInfo()
			if !asJSON {
				_, err := fmt.Fprint(cmd.OutOrStdout(), info.String())
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
