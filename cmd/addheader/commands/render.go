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

	"github.com/spf13/cobra"
	"github.com/walteh/addheader/cmd/addheader/opts"
	"github.com/walteh/addheader/pkg/document"
	"github.com/walteh/addheader/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewRenderCmd creates a new render command
func NewRenderCmd(opts *opts.RootOpts) *cobra.Command {
	var marked bool

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Print the resolved header",
		Long: `Render resolves the template and prints the header without changing
anything. With a file, its namespace and class or interface names are
used; without one those placeholders resolve to empty text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			op, err := operation.New(operation.Options{Config: opts.Config})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			source := ""
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return errors.Errorf("reading file: %w", err)
				}
				source = string(data)
			}

			result := op.Render(ctx, document.NewBuffer(source))

			text := result.Header.Text
			if marked {
				text = result.Header.Marked
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().BoolVar(&marked, "marked", false, "print the header as inserted, before the marker is removed")

	return cmd
}
