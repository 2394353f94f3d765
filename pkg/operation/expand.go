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
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📂 Expand turns command line arguments into the files to stamp. Directories
// are walked with the include patterns; files are taken as given. Anything
// matching an exclude pattern is dropped; files found in a directory are
// matched relative to it. The result is sorted and free of
// duplicates.
func Expand(ctx context.Context, args, include, exclude []string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	seen := map[string]bool{}
	var files []string
	add := func(path, rel string) {
		path = filepath.Clean(path)
		if seen[path] || shouldIgnore(ctx, exclude, rel) {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, errors.Errorf("reading %s: %w", arg, err)
		}
		if !info.IsDir() {
			add(arg, filepath.ToSlash(arg))
			continue
		}

		fsys := os.DirFS(arg)
		for _, pattern := range include {
			matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
			if err != nil {
				return nil, errors.Errorf("matching %q in %s: %w", pattern, arg, err)
			}
			for _, match := range matches {
				add(filepath.Join(arg, filepath.FromSlash(match)), match)
			}
		}
	}

	sort.Strings(files)
	logger.Debug().Int("files", len(files)).Strs("args", args).Msg("expanded arguments")
	return files, nil
}

// 🔍 shouldIgnore checks if a file should be ignored
func shouldIgnore(ctx context.Context, patterns []string, path string) bool {
	logger := zerolog.Ctx(ctx)

	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", path).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			logger.Debug().Str("file", path).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}

	return false
}
