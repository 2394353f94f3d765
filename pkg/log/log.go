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

package log

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent       = 4  // spaces to indent file entries
	nameWidth        = 35 // Base width for filename
	declarationWidth = 30 // Width for the declaration column
	statusWidth      = 10 // Width for status text
)

// 📊 FileStatus is the outcome for one file
type FileStatus string

const (
	StatusStamped  FileStatus = "stamped"
	StatusRendered FileStatus = "rendered"
	StatusSkipped  FileStatus = "skipped"
	StatusFailed   FileStatus = "failed"
)

// 🎯 FileOperation represents a file operation for logging
type FileOperation struct {
	Path        string     // File path
	Declaration string     // namespace.class found in the file
	Status      FileStatus // Operation status
	Lines       int        // Header lines written
	Reason      string     // Why the file was skipped or failed
}

// 📦 RunOperation describes one apply run
type RunOperation struct {
	Config string // Where the settings came from
	Files  int    // Number of files selected
	DryRun bool
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentRun *RunOperation
	operations []FileOperation
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileOperation formats a file operation for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch op.Status {
	case StatusStamped:
		symbol = '✓'
		symbolColor = color.FgGreen
	case StatusRendered:
		symbol = '•'
		symbolColor = color.FgCyan
	case StatusFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	default:
		symbol = '-'
		symbolColor = color.FgYellow
	}

	declaration := op.Declaration
	if declaration == "" {
		declaration = "?"
	}

	line := fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		color.New(color.FgBlue).Sprint(fmt.Sprintf("%-*s", declarationWidth, declaration)),
		fmt.Sprintf("%-*s", statusWidth, op.Status))

	if op.Reason != "" {
		line += color.New(color.Faint).Sprint(op.Reason)
	}
	return line
}

// 📝 LogFileOperation logs a file operation
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, l.formatFileOperation(op))

	event := l.zlog.Info()
	if op.Status == StatusFailed {
		event = l.zlog.Error()
	}
	event.
		Str("file", op.Path).
		Str("declaration", op.Declaration).
		Str("status", string(op.Status)).
		Int("lines", op.Lines).
		Str("reason", op.Reason).
		Msg("file operation")
}

// 📝 StartRun starts a new run
func (l *Logger) StartRun(ctx context.Context, run RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentRun = &run
	l.operations = nil

	verb := "stamping"
	if run.DryRun {
		verb = "rendering"
	}
	fmt.Fprintf(l.console, "[%s %s]\n", verb,
		color.New(color.FgCyan).Sprintf("%d files", run.Files))

	fmt.Fprintf(l.console, "%s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Faint).Sprint(run.Config))

	l.zlog.Info().
		Str("config", run.Config).
		Int("files", run.Files).
		Bool("dry_run", run.DryRun).
		Msg("starting run")
}

// 📝 EndRun prints a per-status summary and returns the counts
func (l *Logger) EndRun(ctx context.Context) map[FileStatus]int {
	l.mu.Lock()
	defer l.mu.Unlock()

	counts := map[FileStatus]int{}
	for _, op := range l.operations {
		counts[op.Status]++
	}

	if l.currentRun == nil {
		return counts
	}

	statuses := make([]string, 0, len(counts))
	for status := range counts {
		statuses = append(statuses, string(status))
	}
	sort.Strings(statuses)

	data := pterm.TableData{{"status", "files"}}
	for _, status := range statuses {
		data = append(data, []string{status, fmt.Sprint(counts[FileStatus(status)])})
	}
	if table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender(); err == nil {
		fmt.Fprintf(l.console, "\n%s\n", table)
	}

	l.zlog.Info().
		Str("config", l.currentRun.Config).
		Int("files", len(l.operations)).
		Int("failed", counts[StatusFailed]).
		Msg("run complete")

	l.currentRun = nil
	l.operations = nil
	return counts
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("addheader")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
