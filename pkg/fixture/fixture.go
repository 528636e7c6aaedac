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

// Package fixture formats navigator test fixtures as CSV for side-by-side
// inspection of how browser, OS and device combinations are reported.
package fixture

import (
	"encoding/csv"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/antiprint/crxcheck/pkg/errors"
	"github.com/antiprint/crxcheck/pkg/serializer"
)

// Fixture is one decoded navigator object.
type Fixture struct {
	// Path is the file the fixture was read from.
	Path string

	// Fields holds the top-level properties of the navigator object.
	Fields map[string]any
}

// Expand resolves glob patterns (including **) to file paths. Arguments
// without glob characters are passed through unchanged so that a missing
// file is reported by Load. Matches of one pattern are sorted; pattern
// order is preserved.
func Expand(patterns ...string) ([]string, error) {
	var paths []string
	for _, p := range patterns {
		if !containsGlob(p) {
			paths = append(paths, p)
			continue
		}

		matches, err := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid fixture pattern", err,
				map[string]any{"pattern": p})
		}
		if len(matches) == 0 {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("no fixture files match %q", p),
				map[string]any{"pattern": p})
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// Load decodes each path as a JSON object, preserving argument order.
// Numbers are kept as json.Number so their literal text survives.
func Load(paths ...string) ([]Fixture, error) {
	if len(paths) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "at least one fixture file is required")
	}

	fixtures := make([]Fixture, 0, len(paths))
	for _, p := range paths {
		doc, err := serializer.FromFileWithFormat[any](p, serializer.FormatJSON, serializer.WithUseNumber())
		if err != nil {
			var openErr *serializer.FileOpenError
			if stderrors.As(err, &openErr) {
				return nil, errors.WrapWithContext(errors.ErrCodeIO, "failed to read fixture", err,
					map[string]any{"path": p})
			}
			return nil, errors.WrapWithContext(errors.ErrCodeParse, "failed to parse fixture", err,
				map[string]any{"path": p})
		}

		fields, ok := (*doc).(map[string]any)
		if !ok {
			return nil, errors.NewWithContext(errors.ErrCodeParse,
				fmt.Sprintf("fixture %s is not a JSON object", p),
				map[string]any{"path": p})
		}

		fixtures = append(fixtures, Fixture{Path: p, Fields: fields})
	}

	slog.Debug("loaded fixtures", "count", len(fixtures))

	return fixtures, nil
}

// Columns returns the sorted union of keys across all fixtures.
func Columns(fixtures []Fixture) []string {
	seen := make(map[string]struct{})
	for _, f := range fixtures {
		for k := range f.Fields {
			seen[k] = struct{}{}
		}
	}

	cols := make([]string, 0, len(seen))
	for k := range seen {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// WriteCSV writes a header row of Columns followed by one row per fixture.
// Absent keys and null values render as empty cells, strings and numbers are
// written verbatim and everything else is JSON encoded.
func WriteCSV(w io.Writer, fixtures []Fixture) error {
	cols := Columns(fixtures)
	cw := csv.NewWriter(w)

	if err := cw.Write(cols); err != nil {
		return errors.Wrap(errors.ErrCodeIO, "failed to write csv header", err)
	}

	row := make([]string, len(cols))
	for _, f := range fixtures {
		for i, c := range cols {
			cell, err := formatCell(f.Fields[c])
			if err != nil {
				return errors.WrapWithContext(errors.ErrCodeInvalidField, "failed to format fixture value", err,
					map[string]any{"path": f.Path, "field": c})
			}
			row[i] = cell
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(errors.ErrCodeIO, "failed to write csv row", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, "failed to flush csv", err)
	}
	return nil
}

func formatCell(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case json.Number:
		return val.String(), nil
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
