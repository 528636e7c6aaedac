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

// Package version implements the version string rules shared by the
// consistency checks: snapshot marker handling and the structure of
// descriptor versions ("<major>.<minor>.<patch>x<suffix>").
package version

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SnapshotSuffix marks a pre-release build of the required version.
const SnapshotSuffix = "-SNAPSHOT"

// DescriptorMarker separates the numeric prefix of a descriptor version from its suffix.
const DescriptorMarker = "x"

// Error types for version parsing failures
var (
	ErrEmptyVersion    = errors.New("version string is empty")
	ErrPatternMismatch = errors.New("version does not match <major>.<minor>.<patch>x<suffix>")
)

// descriptorPattern is anchored at the start only; anything after the
// marker up to the first line break is the suffix. Components accept any
// Unicode decimal digit.
var descriptorPattern = regexp.MustCompile(`^(\p{Nd}+)\.(\p{Nd}+)\.(\p{Nd}+)` + DescriptorMarker + `(.+)`)

// Version represents a semantic version number with Major, Minor, and Patch components.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`
}

// NewVersion creates a new Version with the specified major, minor, and patch values.
func NewVersion(major, minor, patch int) Version {
	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

// String returns "Major.Minor.Patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// DescriptorVersion is a parsed build-descriptor version such as "2.0.1xfoo-extra".
// Suffix holds everything after the marker and is the part compared
// against the required version. Prefix keeps the numeric components as
// written; Version is only populated when all three fit in an int and use
// ASCII digits.
type DescriptorVersion struct {
	Version `json:",inline" yaml:",inline"`

	Prefix string `json:"prefix" yaml:"prefix"`
	Suffix string `json:"suffix" yaml:"suffix"`

	// Numeric reports whether Version holds the parsed components.
	Numeric bool `json:"numeric" yaml:"numeric"`
}

// String reassembles the descriptor version.
func (d DescriptorVersion) String() string {
	return d.Prefix + DescriptorMarker + d.Suffix
}

// IsSnapshot reports whether v carries the snapshot marker.
func IsSnapshot(v string) bool {
	return strings.HasSuffix(v, SnapshotSuffix)
}

// TrimSnapshot removes the snapshot marker from v once, if present.
// "1.2.3-SNAPSHOT-SNAPSHOT" becomes "1.2.3-SNAPSHOT".
func TrimSnapshot(v string) string {
	return TrimSuffixOnce(v, SnapshotSuffix)
}

// TrimSuffixOnce removes suffix from v a single time. An empty suffix leaves v unchanged.
func TrimSuffixOnce(v, suffix string) string {
	if suffix == "" {
		return v
	}
	return strings.TrimSuffix(v, suffix)
}

// ParseDescriptorVersion parses a descriptor version string.
// The string must start with three dot-separated digit runs followed by the
// literal marker and a non-empty suffix; otherwise ErrPatternMismatch is
// returned, wrapped with the offending value. Components that do not fit in
// an int leave Numeric false but do not fail the parse.
func ParseDescriptorVersion(s string) (DescriptorVersion, error) {
	if s == "" {
		return DescriptorVersion{}, ErrEmptyVersion
	}

	m := descriptorPattern.FindStringSubmatch(s)
	if m == nil {
		return DescriptorVersion{}, fmt.Errorf("%w: %q", ErrPatternMismatch, s)
	}

	d := DescriptorVersion{
		Prefix: m[1] + "." + m[2] + "." + m[3],
		Suffix: m[4],
	}

	var nums [3]int
	for i := range nums {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return d, nil
		}
		nums[i] = n
	}
	d.Version = NewVersion(nums[0], nums[1], nums[2])
	d.Numeric = true

	return d, nil
}
