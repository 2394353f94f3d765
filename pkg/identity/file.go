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
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 📄 fileEntry is the identity document layout. The keys match the values the
// IDE keeps for its signed-in user.
type fileEntry struct {
	DisplayName  string `json:"DisplayName" yaml:"DisplayName" toml:"DisplayName"`
	EmailAddress string `json:"EmailAddress" yaml:"EmailAddress" toml:"EmailAddress"`
}

// FileStore reads the identity document at the lookup path. The format follows
// the extension: .json, .toml, anything else is read as YAML. An empty path or
// a missing file is an empty answer, not an error.
type FileStore struct{}

var _ Store = (*FileStore)(nil)

func NewFileStore() *FileStore {
	return &FileStore{}
}

func (s *FileStore) Lookup(ctx context.Context, path string) (Entry, error) {
	if strings.TrimSpace(path) == "" {
		return Entry{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			zerolog.Ctx(ctx).Debug().Str("path", path).Msg("identity file not found")
			return Entry{}, nil
		}
		return Entry{}, errors.Errorf("reading identity file: %w", err)
	}

	var fe fileEntry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.NewDecoder(bytes.NewReader(data)).Decode(&fe)
	case ".toml":
		err = toml.Unmarshal(data, &fe)
	default:
		err = yaml.Unmarshal(data, &fe)
	}
	if err != nil {
		return Entry{}, errors.Errorf("parsing identity file %s: %w", path, err)
	}

	return Entry{Name: fe.DisplayName, Email: fe.EmailAddress}, nil
}
