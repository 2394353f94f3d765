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
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/addheader/pkg/config"
	"github.com/walteh/addheader/pkg/document"
	"github.com/walteh/addheader/pkg/header"
	"github.com/walteh/addheader/pkg/identity"
	"github.com/walteh/addheader/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is the validated addheader configuration
	Config *config.Config
	// Identity looks up the author; defaults to the chain named by the config
	Identity identity.Store
	// Resolver resolves templates; defaults to the wall clock and the config date format
	Resolver *header.Resolver
}

// 🎯 Operator stamps headers onto documents
type Operator struct {
	config   *config.Config
	scanner  *scan.Scanner
	identity identity.Store
	resolver *header.Resolver
}

// 📄 Result is what the operator did with one document
type Result struct {
	Metadata header.DocumentMetadata
	Header   header.Rendered
	// Skipped is set when the document already starts with the header
	Skipped bool
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (*Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if err := header.ValidateTemplate(opts.Config.Template); err != nil {
		return nil, errors.Errorf("checking template: %w", err)
	}

	store := opts.Identity
	if store == nil {
		chain, err := identity.NewChain(opts.Config.IdentitySources())
		if err != nil {
			return nil, errors.Errorf("building identity chain: %w", err)
		}
		store = chain
	}

	resolver := opts.Resolver
	if resolver == nil {
		var ropts []header.Option
		if opts.Config.DateFormat != "" {
			ropts = append(ropts, header.WithDefaultDateFormat(opts.Config.DateFormat))
		}
		resolver = header.NewResolver(ropts...)
	}

	scanner := scan.New(
		scan.WithCommentTokens(opts.Config.CommentTokens...),
		scan.WithLimit(opts.Config.ScanLimit),
	)

	return &Operator{
		config:   opts.Config,
		scanner:  scanner,
		identity: store,
		resolver: resolver,
	}, nil
}

// 🔍 Scan returns the declaration names found in src
func (o *Operator) Scan(ctx context.Context, src scan.LineSource) header.DocumentMetadata {
	meta := o.scanner.Scan(src)
	zerolog.Ctx(ctx).Debug().
		Str("namespace", meta.Namespace).
		Str("class", meta.Class).
		Str("interface", meta.Interface).
		Msg("scanned document")
	return meta
}

// 📝 Render resolves the header for src without touching it. With
// skip_existing set, Skipped tells whether Apply would leave src alone.
func (o *Operator) Render(ctx context.Context, src scan.LineSource) Result {
	meta := o.Scan(ctx, src)
	user := identity.Resolve(ctx, o.identity, o.config.IdentityPath())
	result := Result{
		Metadata: meta,
		Header:   o.resolver.Render(o.config.Template, meta, user),
	}
	if o.config.SkipExisting && HasHeader(src, o.config.Template, result.Header) {
		zerolog.Ctx(ctx).Debug().Msg("header already present")
		result.Skipped = true
	}
	return result
}

// ✍️ Apply inserts the header at the top of doc and saves it. With
// skip_existing set, a document that already starts with the header is left
// alone.
func (o *Operator) Apply(ctx context.Context, doc document.Document) (Result, error) {
	result := o.Render(ctx, doc)
	if result.Skipped {
		return result, nil
	}

	document.InsertHeader(ctx, doc, result.Header)

	if err := doc.Save(ctx); err != nil {
		return result, errors.Errorf("saving document: %w", err)
	}

	return result, nil
}

// HasHeader reports whether src starts with rendered. Lines produced by a
// template line holding a date token are not compared, since the date moves
// on between runs.
func HasHeader(src scan.LineSource, template string, rendered header.Rendered) bool {
	want := strings.Split(rendered.Text, "\n")
	if src.LineCount() < len(want) {
		return false
	}

	templateLines := strings.Split(template, "\n")
	aligned := len(templateLines) == len(want)

	for i, line := range want {
		if aligned && strings.Contains(templateLines[i], header.DatePlaceholder) {
			continue
		}
		if src.LineText(i+1) != line {
			return false
		}
	}
	return true
}
