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

package header

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🏷️ Placeholder tokens recognized in a template. They are matched literally.
const (
	NamespacePlaceholder      = "{namespace}"
	ClassInterfacePlaceholder = "{class-interface}"
	AuthorPlaceholder         = "{author}"
	EmailPlaceholder          = "{email}"

	// DatePlaceholder is only the prefix of the date token; the token runs to
	// the next closing brace and may carry a format, as in {date:yyyy-MM-dd}.
	DatePlaceholder = "{date"
)

// Unknown stands in for identity values the identity stores could not supply.
const Unknown = "(Unknown)"

// ErrEmptyTemplate is returned when the configured template has no content.
var ErrEmptyTemplate = errors.Base("template is empty")

// 📄 DocumentMetadata holds the declaration names found at the top of a document.
// Fields that were not found are empty.
type DocumentMetadata struct {
	Namespace string
	Class     string
	Interface string
}

// ClassOrInterface returns the class name, or the interface name when no class
// was found.
func (m DocumentMetadata) ClassOrInterface() string {
	if m.Class != "" {
		return m.Class
	}
	return m.Interface
}

// Complete reports whether scanning can stop.
func (m DocumentMetadata) Complete() bool {
	return m.Namespace != "" && (m.Class != "" || m.Interface != "")
}

// 👤 UserIdentity is the author stamped into the header
type UserIdentity struct {
	Name  string
	Email string
}

// NewUserIdentity fills blank values with Unknown.
func NewUserIdentity(name, email string) UserIdentity {
	id := UserIdentity{Name: Unknown, Email: Unknown}
	if strings.TrimSpace(name) != "" {
		id.Name = name
	}
	if strings.TrimSpace(email) != "" {
		id.Email = email
	}
	return id
}

// ValidateTemplate fails with ErrEmptyTemplate for an empty or blank template.
func ValidateTemplate(template string) error {
	if strings.TrimSpace(template) == "" {
		return errors.WithStack(ErrEmptyTemplate)
	}
	return nil
}
