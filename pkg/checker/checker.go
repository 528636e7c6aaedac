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
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/antiprint/crxcheck/pkg/errors"
	"github.com/antiprint/crxcheck/pkg/header"
	"github.com/antiprint/crxcheck/pkg/manifest"
	"github.com/antiprint/crxcheck/pkg/pom"
	"github.com/antiprint/crxcheck/pkg/version"
)

const (
	// APIVersion is the API version for check reports.
	APIVersion = "crxcheck.antiprint.io/v1alpha1"
)

// Request describes one run of the consistency checks.
type Request struct {
	// RequiredVersion is the version supplied by the build, possibly with a snapshot marker.
	RequiredVersion string

	// ManifestPath is the packaging manifest to check. Required.
	ManifestPath string

	// DescriptorPath is the parent build descriptor to check. Optional;
	// the descriptor check is skipped when empty.
	DescriptorPath string
}

// Checker cross-validates recorded versions against a required version.
type Checker struct {
	// Version is the tool version recorded in report headers.
	Version string

	// SnapshotSuffix is stripped once from the required version before the
	// manifest comparison.
	SnapshotSuffix string

	// Namespace is the XML namespace of the descriptor's version element.
	Namespace string

	metrics *Metrics
}

// Option is a functional option for configuring Checker instances.
type Option func(*Checker)

// WithVersion returns an Option that sets the Checker version string.
func WithVersion(v string) Option {
	return func(c *Checker) {
		c.Version = v
	}
}

// WithSnapshotSuffix returns an Option that overrides the snapshot marker.
// An empty suffix disables stripping.
func WithSnapshotSuffix(suffix string) Option {
	return func(c *Checker) {
		c.SnapshotSuffix = suffix
	}
}

// WithNamespace returns an Option that overrides the descriptor namespace.
func WithNamespace(ns string) Option {
	return func(c *Checker) {
		c.Namespace = ns
	}
}

// WithMetrics returns an Option that records check outcomes in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Checker) {
		c.metrics = m
	}
}

// New creates a new Checker with the provided options.
func New(opts ...Option) *Checker {
	c := &Checker{
		SnapshotSuffix: version.SnapshotSuffix,
		Namespace:      pom.MavenNamespace,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckManifest checks a manifest with the default Checker.
func CheckManifest(manifestPath, requiredVersion string) (CheckResult, error) {
	return New().CheckManifest(manifestPath, requiredVersion)
}

// CheckDescriptor checks a descriptor with the default Checker.
func CheckDescriptor(descriptorPath, requiredVersion string) (CheckResult, error) {
	return New().CheckDescriptor(descriptorPath, requiredVersion)
}

// CheckManifest compares the manifest's version field with requiredVersion
// after removing the snapshot marker from requiredVersion once.
//
// A mismatch, including a version that is not a string, is returned as an
// ErrCodeVersionMismatch error naming the manifest path and both versions.
// I/O, parse and missing-field failures are returned as their own
// structured errors.
func (c *Checker) CheckManifest(manifestPath, requiredVersion string) (CheckResult, error) {
	baseline := c.baseline(requiredVersion)

	res := CheckResult{
		Name:     CheckManifestName,
		Source:   manifestPath,
		Expected: baseline,
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return c.errored(res, err)
	}

	raw, err := m.Version()
	if err != nil {
		return c.errored(res, err)
	}
	recorded := manifest.FormatValue(raw)
	res.Recorded = recorded
	res.Actual = recorded

	// A non-string version never equals the baseline, even when its encoding does.
	if s, ok := raw.(string); !ok || s != baseline {
		msg := fmt.Sprintf("manifest version (from %s) %s != required version %s",
			manifestPath, recorded, baseline)
		return c.failed(res, errors.NewWithContext(errors.ErrCodeVersionMismatch, msg, map[string]any{
			"path":     manifestPath,
			"actual":   recorded,
			"expected": baseline,
		}))
	}

	return c.passed(res), nil
}

func (c *Checker) baseline(requiredVersion string) string {
	if c.SnapshotSuffix == version.SnapshotSuffix {
		return version.TrimSnapshot(requiredVersion)
	}
	return version.TrimSuffixOnce(requiredVersion, c.SnapshotSuffix)
}

// CheckDescriptor compares the suffix of the descriptor's version with
// requiredVersion, used verbatim.
//
// The descriptor version must match <major>.<minor>.<patch>x<suffix>; a
// structural mismatch is reported as ErrCodePatternMismatch before any
// value comparison. A suffix that differs from requiredVersion is reported
// as ErrCodeVersionMismatch.
func (c *Checker) CheckDescriptor(descriptorPath, requiredVersion string) (CheckResult, error) {
	res := CheckResult{
		Name:     CheckDescriptorName,
		Source:   descriptorPath,
		Expected: requiredVersion,
	}

	d, err := pom.Load(descriptorPath, c.Namespace)
	if err != nil {
		return c.errored(res, err)
	}

	recorded, err := d.Version()
	if err != nil {
		return c.errored(res, err)
	}
	res.Recorded = recorded

	parsed, err := version.ParseDescriptorVersion(recorded)
	if err != nil {
		msg := fmt.Sprintf("unexpected pom version pattern (from %s): %q", descriptorPath, recorded)
		return c.failed(res, errors.WrapWithContext(errors.ErrCodePatternMismatch, msg, err, map[string]any{
			"path":     descriptorPath,
			"recorded": recorded,
		}))
	}
	res.Actual = parsed.Suffix

	if parsed.Suffix != requiredVersion {
		msg := fmt.Sprintf("pom version suffix (from %s) %s != required version %s",
			descriptorPath, parsed.Suffix, requiredVersion)
		return c.failed(res, errors.NewWithContext(errors.ErrCodeVersionMismatch, msg, map[string]any{
			"path":     descriptorPath,
			"actual":   parsed.Suffix,
			"expected": requiredVersion,
		}))
	}

	return c.passed(res), nil
}

// Run executes the manifest check and then, if a descriptor path is set,
// the descriptor check. It stops at the first check that does not pass and
// returns the report accumulated so far together with that check's error.
func (c *Checker) Run(ctx context.Context, req Request) (*Report, error) {
	start := time.Now()

	if req.ManifestPath == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "manifest path is required")
	}

	report := NewReport()
	report.Init(header.KindVersionCheckResult, APIVersion, c.Version)
	report.RequiredVersion = req.RequiredVersion

	defer func() {
		d := time.Since(start)
		report.Summary.Duration = d.String()
		report.finalize()
		c.metrics.observeRun(d)
	}()

	steps := []func() (CheckResult, error){
		func() (CheckResult, error) { return c.CheckManifest(req.ManifestPath, req.RequiredVersion) },
	}
	if req.DescriptorPath != "" {
		steps = append(steps, func() (CheckResult, error) {
			return c.CheckDescriptor(req.DescriptorPath, req.RequiredVersion)
		})
	}

	for _, step := range steps {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		res, err := step()
		report.add(res)
		if err != nil {
			return report, err
		}
	}

	slog.Debug("version checks completed",
		"required", req.RequiredVersion,
		"checks", len(report.Results))

	return report, nil
}

func (c *Checker) passed(res CheckResult) CheckResult {
	res.Status = CheckStatusPassed
	c.metrics.observeCheck(res)
	slog.Debug("check passed",
		"check", res.Name,
		"source", res.Source,
		"version", res.Actual)
	return res
}

func (c *Checker) failed(res CheckResult, err *errors.StructuredError) (CheckResult, error) {
	res.Status = CheckStatusFailed
	res.Message = err.Message
	c.metrics.observeCheck(res)
	slog.Debug("check failed",
		"check", res.Name,
		"source", res.Source,
		"code", err.Code)
	return res, err
}

func (c *Checker) errored(res CheckResult, err error) (CheckResult, error) {
	res.Status = CheckStatusError
	res.Message = err.Error()
	c.metrics.observeCheck(res)
	slog.Debug("check could not be evaluated",
		"check", res.Name,
		"source", res.Source,
		"error", err)
	return res, err
}
