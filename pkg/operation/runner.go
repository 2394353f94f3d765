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

package operation

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/addheader/pkg/document"
	"github.com/walteh/addheader/pkg/header"
	"github.com/walteh/addheader/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Runner stamps a list of files one after another
type Runner struct {
	op     *Operator
	logger *log.Logger
	dryRun bool
	out    io.Writer
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithDryRun makes the runner write each rendered header to out instead of
// changing files.
func WithDryRun(out io.Writer) RunnerOption {
	return func(r *Runner) {
		r.dryRun = true
		r.out = out
	}
}

// 🏗️ NewRunner creates a new runner
func NewRunner(op *Operator, logger *log.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{
		op:     op,
		logger: logger,
		out:    io.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// 🏃 Run processes every file. A failing file does not stop the run; Run
// returns an error afterwards if any file failed or the context was cancelled.
func (r *Runner) Run(ctx context.Context, files []string) error {
	r.logger.StartRun(ctx, log.RunOperation{
		Config: r.op.config.String(),
		Files:  len(files),
		DryRun: r.dryRun,
	})

	var cancelled error
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			cancelled = errors.Errorf("run cancelled: %w", err)
			break
		}
		r.logger.LogFileOperation(ctx, r.runFile(ctx, file))
	}

	counts := r.logger.EndRun(ctx)
	if cancelled != nil {
		return cancelled
	}
	if failed := counts[log.StatusFailed]; failed > 0 {
		return errors.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

func (r *Runner) runFile(ctx context.Context, path string) log.FileOperation {
	logger := zerolog.Ctx(ctx).With().Str("file", path).Logger()
	ctx = logger.WithContext(ctx)

	fop := log.FileOperation{Path: path}

	var (
		result Result
		err    error
	)
	if r.dryRun {
		result, err = r.render(ctx, path)
	} else {
		result, err = r.apply(ctx, path)
	}

	fop.Declaration = declaration(result.Metadata)
	fop.Lines = result.Header.Lines()

	switch {
	case err != nil:
		logger.Debug().Err(err).Msg("file failed")
		fop.Status = log.StatusFailed
		fop.Reason = err.Error()
		fop.Lines = 0
	case result.Skipped:
		fop.Status = log.StatusSkipped
		fop.Reason = "header present"
		fop.Lines = 0
	case r.dryRun:
		fop.Status = log.StatusRendered
	default:
		fop.Status = log.StatusStamped
	}
	return fop
}

func (r *Runner) apply(ctx context.Context, path string) (Result, error) {
	doc, err := document.Open(ctx, path)
	if err != nil {
		return Result{}, errors.Errorf("opening document: %w", err)
	}
	defer func() {
		if err := doc.Close(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("releasing document lock")
		}
	}()

	return r.op.Apply(ctx, doc)
}

func (r *Runner) render(ctx context.Context, path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, errors.Errorf("reading file: %w", err)
	}

	result := r.op.Render(ctx, document.NewBuffer(string(data)))
	if result.Skipped {
		return result, nil
	}
	if _, err := io.WriteString(r.out, result.Header.Text+"\n"); err != nil {
		return result, errors.Errorf("writing header: %w", err)
	}
	return result, nil
}

// declaration joins the names found in a document for display.
func declaration(meta header.DocumentMetadata) string {
	parts := make([]string, 0, 2)
	if meta.Namespace != "" {
		parts = append(parts, meta.Namespace)
	}
	if name := meta.ClassOrInterface(); name != "" {
		parts = append(parts, name)
	}
	return strings.Join(parts, ".")
}
