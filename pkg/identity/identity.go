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

// Package identity looks up the author stamped into headers.
//
// A Store answers with whatever it knows; blank fields mean "not known". Chain
// consults several stores in order and Resolve turns the outcome into a
// header.UserIdentity, substituting header.Unknown. Lookup failures never
// escape Resolve.
package identity

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/addheader/pkg/header"
	"gitlab.com/tozd/go/errors"
)

// Entry is a store's answer; blank fields are unknown
type Entry struct {
	Name  string
	Email string
}

// Complete reports whether both fields are known.
func (e Entry) Complete() bool {
	return strings.TrimSpace(e.Name) != "" && strings.TrimSpace(e.Email) != ""
}

// 🔌 Store looks up the current user. path is the configured lookup path; each
// store decides what it means.
type Store interface {
	Lookup(ctx context.Context, path string) (Entry, error)
}

// 🗺️ Source names accepted in configuration
const (
	SourceFile = "file"
	SourceGit  = "git"
	SourceEnv  = "env"
	SourceOS   = "os"
)

// DefaultSources is the lookup order when configuration names none.
var DefaultSources = []string{SourceFile, SourceGit, SourceEnv, SourceOS}

// 🔗 Chain asks each store in turn. Each field takes the first non-blank value.
// A failing store is logged and skipped.
type Chain []Store

var _ Store = Chain(nil)

// NewChain builds a chain from source names.
func NewChain(sources []string) (Chain, error) {
	if len(sources) == 0 {
		sources = DefaultSources
	}

	chain := make(Chain, 0, len(sources))
	for _, source := range sources {
		switch source {
		case SourceFile:
			chain = append(chain, NewFileStore())
		case SourceGit:
			chain = append(chain, NewGitStore(""))
		case SourceEnv:
			chain = append(chain, NewEnvStore())
		case SourceOS:
			chain = append(chain, NewOSStore())
		default:
			return nil, errors.Errorf("unknown identity source %q", source)
		}
	}
	return chain, nil
}

func (c Chain) Lookup(ctx context.Context, path string) (Entry, error) {
	logger := zerolog.Ctx(ctx)

	var merged Entry
	for _, store := range c {
		entry, err := store.Lookup(ctx, path)
		if err != nil {
			logger.Debug().Err(err).Type("store", store).Msg("identity lookup failed")
			continue
		}
		if strings.TrimSpace(merged.Name) == "" {
			merged.Name = strings.TrimSpace(entry.Name)
		}
		if strings.TrimSpace(merged.Email) == "" {
			merged.Email = strings.TrimSpace(entry.Email)
		}
		if merged.Complete() {
			break
		}
	}
	return merged, nil
}

// Resolve looks up the user and fills unknown fields with header.Unknown.
func Resolve(ctx context.Context, store Store, path string) header.UserIdentity {
	if store == nil {
		return header.NewUserIdentity("", "")
	}

	entry, err := store.Lookup(ctx, path)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", path).Msg("identity lookup failed")
		return header.NewUserIdentity("", "")
	}

	return header.NewUserIdentity(entry.Name, entry.Email)
}
