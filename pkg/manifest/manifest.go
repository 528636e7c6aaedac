// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package manifest reads browser-extension packaging manifests
// (manifest.json) and exposes their scalar fields.
package manifest

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/antiprint/crxcheck/pkg/errors"
	"github.com/antiprint/crxcheck/pkg/serializer"
)

// VersionKey is the manifest field holding the extension version.
const VersionKey = "version"

// Manifest is a decoded flat key-value manifest document.
type Manifest struct {
	// Path is the file the manifest was read from.
	Path string

	fields map[string]any
}

// New creates a Manifest from already decoded fields.
func New(path string, fields map[string]any) *Manifest {
	return &Manifest{Path: path, fields: fields}
}

// Load reads and decodes the manifest at path. The document is always
// decoded as JSON regardless of its file extension.
//
// Returns an ErrCodeIO error if the file cannot be opened and an
// ErrCodeParse error if it is not a JSON object.
func Load(path string) (*Manifest, error) {
	doc, err := serializer.FromFileWithFormat[any](path, serializer.FormatJSON, serializer.WithUseNumber())
	if err != nil {
		var openErr *serializer.FileOpenError
		if stderrors.As(err, &openErr) {
			return nil, errors.WrapWithContext(errors.ErrCodeIO, "failed to read manifest", err,
				map[string]any{"path": path})
		}
		return nil, errors.WrapWithContext(errors.ErrCodeParse, "failed to parse manifest", err,
			map[string]any{"path": path})
	}

	fields, ok := (*doc).(map[string]any)
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeParse,
			fmt.Sprintf("manifest %s is not a JSON object", path),
			map[string]any{"path": path})
	}

	slog.Debug("loaded manifest", "path", path, "fields", len(fields))

	return New(path, fields), nil
}

// Value returns the decoded value of key. Numbers are json.Number.
// A missing key yields ErrCodeMissingField; null and non-string values are
// returned as-is for the caller to compare.
func (m *Manifest) Value(key string) (any, error) {
	raw, ok := m.fields[key]
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeMissingField,
			fmt.Sprintf("manifest %s has no %q field", m.Path, key),
			map[string]any{"path": m.Path, "field": key})
	}
	return raw, nil
}

// Version returns the manifest's version field, which is not necessarily a string.
func (m *Manifest) Version() (any, error) {
	return m.Value(VersionKey)
}

// FormatValue renders a manifest value for reports and messages. Strings
// are returned verbatim; anything else is JSON encoded.
func FormatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
