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

package identity

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// GitRunner runs git with args in dir and returns its standard output.
type GitRunner func(ctx context.Context, dir string, args ...string) (string, error)

// 🌱 GitStore reads user.name and user.email from git configuration. The
// lookup path is not used.
type GitStore struct {
	dir string
	run GitRunner
}

var _ Store = (*GitStore)(nil)

// NewGitStore creates a store running git in dir, or the working directory
// when dir is empty.
func NewGitStore(dir string) *GitStore {
	return &GitStore{dir: dir, run: runGit}
}

// WithRunner replaces the git invocation.
func (s *GitStore) WithRunner(run GitRunner) *GitStore {
	s.run = run
	return s
}

func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", errors.Errorf("running git %s: %w", strings.Join(args, " "), err)
	}
	return stdout.String(), nil
}

func (s *GitStore) Lookup(ctx context.Context, _ string) (Entry, error) {
	name, nameErr := s.get(ctx, "user.name")
	email, emailErr := s.get(ctx, "user.email")
	if nameErr != nil && emailErr != nil {
		return Entry{}, errors.Errorf("reading git identity: %w", nameErr)
	}
	return Entry{Name: name, Email: email}, nil
}

func (s *GitStore) get(ctx context.Context, key string) (string, error) {
	out, err := s.run(ctx, s.dir, "config", "--get", key)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
