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
	"github.com/spf13/cobra"
	"github.com/walteh/addheader/cmd/addheader/opts"
	"github.com/walteh/addheader/pkg/log"
	"github.com/walteh/addheader/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(opts *opts.RootOpts) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply [paths...]",
		Short: "Insert the header at the top of each file",
		Long: `Apply stamps the header onto every file given. Directories are walked
with the include patterns from the config (default **/*.cs) and files
matching an exclude pattern are left out. Without arguments the working
directory is used.

For each file it will:
1. Lock the file
2. Read the namespace and class or interface names
3. Look up the author
4. Insert the resolved header and save

A file that fails is reported and the run goes on; the command exits
non-zero if any file failed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)

			if len(args) == 0 {
				args = []string{"."}
			}

			files, err := operation.Expand(ctx, args, opts.Config.Include, opts.Config.Exclude)
			if err != nil {
				return errors.Errorf("expanding paths: %w", err)
			}
			if len(files) == 0 {
				logger.Warning("no files matched")
				return nil
			}

			op, err := operation.New(operation.Options{Config: opts.Config})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			var runOpts []operation.RunnerOption
			if dryRun {
				runOpts = append(runOpts, operation.WithDryRun(cmd.OutOrStdout()))
				logger.Header("rendering headers")
			} else {
				logger.Header("stamping headers")
			}

			if err := operation.NewRunner(op, logger, runOpts...).Run(ctx, files); err != nil {
				return errors.Errorf("applying headers: %w", err)
			}

			logger.Successf("%d files done", len(files))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print each header instead of writing it")

	return cmd
}
