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

package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antiprint/crxcheck/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantVersion any
		wantCode    errors.ErrorCode
	}{
		{
			name:        "typical manifest",
			content:     `{"manifest_version": 2, "name": "AntiPrint", "version": "1.2.3"}`,
			wantVersion: "1.2.3",
		},
		{
			name:     "version missing",
			content:  `{"name": "AntiPrint"}`,
			wantCode: errors.ErrCodeMissingField,
		},
		{
			name:        "version not a string",
			content:     `{"version": 123}`,
			wantVersion: json.Number("123"),
		},
		{
			name:        "version float keeps literal",
			content:     `{"version": 1.0}`,
			wantVersion: json.Number("1.0"),
		},
		{
			name:        "version null",
			content:     `{"version": null}`,
			wantVersion: nil,
		},
		{
			name:     "malformed json",
			content:  `{"version": "1.2.3"`,
			wantCode: errors.ErrCodeParse,
		},
		{
			name:     "top level array",
			content:  `["1.2.3"]`,
			wantCode: errors.ErrCodeParse,
		},
		{
			name:     "top level null",
			content:  `null`,
			wantCode: errors.ErrCodeParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "manifest.json", tt.content)

			m, err := Load(path)
			if err == nil {
				var v any
				v, err = m.Version()
				if tt.wantCode == "" {
					require.NoError(t, err)
					assert.Equal(t, tt.wantVersion, v)
					assert.Equal(t, path, m.Path)
					return
				}
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.CodeOf(err))
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeIO, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "manifest.json")
}

func TestLoad_IgnoresExtension(t *testing.T) {
	path := writeFile(t, "manifest.yaml", `{"version": "0.9"}`)

	m, err := Load(path)
	require.NoError(t, err)
	v, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, "0.9", v)
}

func TestManifestValue(t *testing.T) {
	m := New("inline", map[string]any{"name": "AntiPrint", "manifest_version": json.Number("2")})

	name, err := m.Value("name")
	require.NoError(t, err)
	assert.Equal(t, "AntiPrint", name)

	mv, err := m.Value("manifest_version")
	require.NoError(t, err)
	assert.Equal(t, json.Number("2"), mv)

	_, err = m.Value("version")
	assert.Equal(t, errors.ErrCodeMissingField, errors.CodeOf(err))
	assert.Contains(t, err.Error(), `"version"`)
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "string verbatim", in: "1.2.3", want: "1.2.3"},
		{name: "quoted string verbatim", in: `"1"`, want: `"1"`},
		{name: "number literal", in: json.Number("1.0"), want: "1.0"},
		{name: "null", in: nil, want: "null"},
		{name: "bool", in: true, want: "true"},
		{name: "list", in: []any{"1", json.Number("2")}, want: `["1",2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in))
		})
	}
}
