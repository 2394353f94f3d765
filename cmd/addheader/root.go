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
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/addheader/cmd/addheader/commands"
	"github.com/walteh/addheader/cmd/addheader/opts"
	"github.com/walteh/addheader/pkg/config"
	"github.com/walteh/addheader/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// rootFlags are the persistent flags shared by every command
type rootFlags struct {
	configFile string
	template   string
	debug      bool
}

// newRootCmd wires the command tree
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "addheader",
		Short: "Stamp a templated header comment onto source files",
		Long: `addheader inserts a header comment at the top of source files.

The header comes from a template with {namespace}, {class-interface},
{author}, {email} and {date} placeholders. Names are read from the
declarations at the top of each file; the author comes from an identity
file, git, the environment or the OS account.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), flags.debug, cmd.ErrOrStderr())

			if err := newRootOpts(ctx, flags, rootOpts); err != nil {
				return err
			}

			logger := log.New(cmd.OutOrStdout(), *zerolog.Ctx(ctx))
			cmd.SetContext(log.NewContext(ctx, logger))
			return nil
		},
	}

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewApplyCmd(rootOpts),
		commands.NewRenderCmd(rootOpts),
		commands.NewScanCmd(rootOpts),
		newVersionCmd(),
	)

	return cmd
}

// newRootOpts loads the configuration into rootOpts
func newRootOpts(ctx context.Context, flags *rootFlags, rootOpts *opts.RootOpts) error {
	cfg, err := loadConfig(ctx, flags)
	if err != nil {
		return err
	}

	rootOpts.Config = cfg
	return nil
}

// loadConfig reads the config named by --config, or the first one found from
// the working directory. A --template flag replaces the configured template
// and is enough on its own when there is no config file.
func loadConfig(ctx context.Context, flags *rootFlags) (*config.Config, error) {
	path := flags.configFile
	if path == "" {
		found, err := config.Find(".")
		switch {
		case err == nil:
			path = found
		case errors.Is(err, config.ErrNotFound) && flags.template != "":
		case errors.Is(err, config.ErrNotFound):
			return nil, errors.Errorf("%w: create .addheader.yaml or pass --config or --template", err)
		default:
			return nil, errors.Errorf("finding config: %w", err)
		}
	}

	if path == "" {
		cfg := &config.Config{Template: flags.template}
		if err := config.Validate(ctx, cfg); err != nil {
			return nil, errors.Errorf("validating flags: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	if flags.template != "" {
		cfg.Template = flags.template
	}
	return cfg, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file path (default: .addheader.* or the XDG config dir)")
	cmd.PersistentFlags().StringVarP(&flags.template, "template", "t", "", "header template, overrides the configured one")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags and turns styling off when
// stdout is not a terminal
func setupLogging(ctx context.Context, debug bool, out io.Writer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !tty {
		color.NoColor = true
		pterm.DisableStyling()
	}

	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: !tty}).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger.WithContext(ctx)
}
