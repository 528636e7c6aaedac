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

package checker

import (
	"github.com/antiprint/crxcheck/pkg/header"
)

// CheckName identifies one of the consistency checks.
type CheckName string

const (
	// CheckManifestName compares the manifest version with the required version.
	CheckManifestName CheckName = "manifest"

	// CheckDescriptorName compares the descriptor version suffix with the required version.
	CheckDescriptorName CheckName = "descriptor"
)

// CheckStatus represents the outcome of a single check.
type CheckStatus string

const (
	// CheckStatusPassed indicates the recorded version matched.
	CheckStatusPassed CheckStatus = "passed"

	// CheckStatusFailed indicates a version or pattern mismatch.
	CheckStatusFailed CheckStatus = "failed"

	// CheckStatusError indicates the check could not be evaluated
	// (unreadable document, missing field, parse failure).
	CheckStatusError CheckStatus = "error"
)

// RunStatus represents the overall outcome of a run.
type RunStatus string

const (
	// RunStatusPass indicates every executed check passed.
	RunStatusPass RunStatus = "pass"

	// RunStatusFail indicates a check reported a mismatch.
	RunStatusFail RunStatus = "fail"

	// RunStatusError indicates a check could not be evaluated.
	RunStatusError RunStatus = "error"
)

// CheckResult represents the result of evaluating a single check.
type CheckResult struct {
	// Name is the check that produced this result.
	Name CheckName `json:"name" yaml:"name"`

	// Source is the document the recorded version was read from.
	Source string `json:"source" yaml:"source"`

	// Expected is the value the recorded version was compared against
	// (the snapshot-trimmed required version for the manifest check).
	Expected string `json:"expected" yaml:"expected"`

	// Actual is the compared value read from Source. For the descriptor
	// check this is the suffix after the numeric prefix.
	Actual string `json:"actual,omitempty" yaml:"actual,omitempty"`

	// Recorded is the raw version text found in Source.
	Recorded string `json:"recorded,omitempty" yaml:"recorded,omitempty"`

	// Status is the outcome of this check.
	Status CheckStatus `json:"status" yaml:"status"`

	// Message describes failures and errors.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Summary contains aggregate statistics about a run.
type Summary struct {
	Passed int       `json:"passed" yaml:"passed"`
	Failed int       `json:"failed" yaml:"failed"`
	Errors int       `json:"errors" yaml:"errors"`
	Total  int       `json:"total" yaml:"total"`
	Status RunStatus `json:"status" yaml:"status"`

	// Duration is the wall time of the run, formatted by time.Duration.String.
	Duration string `json:"duration" yaml:"duration"`
}

// Report is the complete outcome of a run, suitable for serialization.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// RequiredVersion is the version supplied by the build.
	RequiredVersion string `json:"requiredVersion" yaml:"requiredVersion"`

	Summary Summary `json:"summary" yaml:"summary"`

	// Results holds one entry per executed check, in execution order.
	Results []CheckResult `json:"results" yaml:"results"`
}

// NewReport creates a new Report with initialized slices.
func NewReport() *Report {
	return &Report{
		Results: make([]CheckResult, 0),
	}
}

func (r *Report) add(res CheckResult) {
	r.Results = append(r.Results, res)
	r.Summary.Total++
	switch res.Status {
	case CheckStatusPassed:
		r.Summary.Passed++
	case CheckStatusFailed:
		r.Summary.Failed++
	case CheckStatusError:
		r.Summary.Errors++
	}
}

func (r *Report) finalize() {
	switch {
	case r.Summary.Errors > 0:
		r.Summary.Status = RunStatusError
	case r.Summary.Failed > 0:
		r.Summary.Status = RunStatusFail
	default:
		r.Summary.Status = RunStatusPass
	}
}
