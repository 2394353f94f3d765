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
	"context"
	"os"
	"os/user"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Environment variables read by EnvStore
const (
	EnvAuthor = "ADDHEADER_AUTHOR"
	EnvEmail  = "ADDHEADER_EMAIL"
)

// EnvStore reads the identity from the environment.
type EnvStore struct {
	getenv func(string) string
}

var _ Store = (*EnvStore)(nil)

func NewEnvStore() *EnvStore {
	return &EnvStore{getenv: os.Getenv}
}

func (s *EnvStore) Lookup(_ context.Context, _ string) (Entry, error) {
	return Entry{Name: s.getenv(EnvAuthor), Email: s.getenv(EnvEmail)}, nil
}

// OSStore answers with the display name of the OS account. It never knows an
// email.
type OSStore struct {
	current func() (*user.User, error)
}

var _ Store = (*OSStore)(nil)

func NewOSStore() *OSStore {
	return &OSStore{current: user.Current}
}

func (s *OSStore) Lookup(_ context.Context, _ string) (Entry, error) {
	u, err := s.current()
	if err != nil {
		return Entry{}, errors.Errorf("reading current user: %w", err)
	}
	// gecos may carry extra comma separated fields
	name, _, _ := strings.Cut(u.Name, ",")
	if strings.TrimSpace(name) == "" {
		name = u.Username
	}
	return Entry{Name: name}, nil
}
