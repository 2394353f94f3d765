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

package commands

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/addheader/cmd/addheader/opts"
	"github.com/walteh/addheader/pkg/document"
	"github.com/walteh/addheader/pkg/log"
	"github.com/walteh/addheader/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// NewScanCmd creates a new scan command
func NewScanCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <files...>",
		Short: "Show the declaration names found in each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner := scan.New(
				scan.WithCommentTokens(opts.Config.CommentTokens...),
				scan.WithLimit(opts.Config.ScanLimit),
			)

			data := pterm.TableData{{"file", "namespace", "class", "interface"}}
			for _, path := range args {
				content, err := os.ReadFile(path)
				if err != nil {
					return errors.Errorf("reading file: %w", err)
				}
				meta := scanner.Scan(document.NewBuffer(string(content)))
				if meta.Namespace == "" && meta.ClassOrInterface() == "" {
					log.FromContext(cmd.Context()).Warningf("no declarations found in %s", path)
				}
				data = append(data, []string{path, meta.Namespace, meta.Class, meta.Interface})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Errorf("rendering table: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), table)
			return err
		},
	}

	return cmd
}
