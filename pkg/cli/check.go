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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/antiprint/crxcheck/pkg/checker"
	"github.com/antiprint/crxcheck/pkg/defaults"
	"github.com/antiprint/crxcheck/pkg/errors"
	"github.com/antiprint/crxcheck/pkg/pom"
	"github.com/antiprint/crxcheck/pkg/serializer"
	ver "github.com/antiprint/crxcheck/pkg/version"
)

func checkVersionCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check-version",
		EnableShellCompletion: true,
		Usage:                 "Check that manifest and build descriptor match the required version",
		ArgsUsage:             "<required_version> <crx_manifest> [efw_pom_file]",
		Description: `Compare the versions recorded by the packaging documents with the version
the build is producing:

  - the manifest "version" field must equal the required version with the
    snapshot marker (default -SNAPSHOT) removed once;
  - the build descriptor's top-level <version> must look like
    <major>.<minor>.<patch>x<suffix>, where suffix equals the required
    version exactly.

The descriptor check is skipped when no descriptor is given.

Exit status is 0 when every check passes, 2 when a version or pattern does
not match, and 1 when a document cannot be read or is missing the version.

# Examples

  crxcheck check-version 1.2.3-SNAPSHOT src/main/extension/manifest.json ../efw/pom.xml

Write a YAML report and a Prometheus textfile:
  crxcheck check-version -o report.yaml -t yaml --metrics-file crxcheck.prom \
    1.2.3 manifest.json pom.xml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "snapshot-suffix",
				Usage:   "Marker removed once from the required version before the manifest comparison",
				Sources: cli.EnvVars("CRXCHECK_SNAPSHOT_SUFFIX"),
				Value:   ver.SnapshotSuffix,
			},
			&cli.StringFlag{
				Name:    "namespace",
				Usage:   "XML namespace of the build descriptor's version element",
				Sources: cli.EnvVars("CRXCHECK_POM_NAMESPACE"),
				Value:   pom.MavenNamespace,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Timeout for the complete run",
				Value: defaults.CheckTimeout,
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write check outcomes to this file in Prometheus text format",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if n := cmd.NArg(); n < 2 || n > 3 {
				return fmt.Errorf("expected <required_version> <crx_manifest> [efw_pom_file], got %d argument(s)", n)
			}

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			req := checker.Request{
				RequiredVersion: cmd.Args().Get(0),
				ManifestPath:    cmd.Args().Get(1),
				DescriptorPath:  cmd.Args().Get(2),
			}

			var (
				reg     *prometheus.Registry
				metrics *checker.Metrics
			)
			metricsFile := strings.TrimSpace(cmd.String("metrics-file"))
			if metricsFile != "" {
				reg = prometheus.NewRegistry()
				metrics = checker.NewMetrics(reg)
			}

			c := checker.New(
				checker.WithVersion(version),
				checker.WithSnapshotSuffix(cmd.String("snapshot-suffix")),
				checker.WithNamespace(cmd.String("namespace")),
				checker.WithMetrics(metrics),
			)

			slog.Info("checking versions",
				"required", req.RequiredVersion,
				"snapshot", ver.IsSnapshot(req.RequiredVersion),
				"manifest", req.ManifestPath,
				"descriptor", req.DescriptorPath)

			runCtx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			report, runErr := c.Run(runCtx, req)

			if output := strings.TrimSpace(cmd.String("output")); output != "" && report != nil {
				if err := writeReport(ctx, cmd, outFormat, output, report); err != nil {
					return err
				}
			}

			if metricsFile != "" {
				if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
					return fmt.Errorf("failed to write metrics to %q: %w", metricsFile, err)
				}
			}

			if runErr != nil {
				if errors.IsMismatch(runErr) {
					return cli.Exit(runErr.Error(), exitMismatch)
				}
				return runErr
			}

			slog.Info("versions consistent",
				"required", req.RequiredVersion,
				"checks", report.Summary.Total,
				"duration", report.Summary.Duration)

			return nil
		},
	}
}

func writeReport(ctx context.Context, cmd *cli.Command, format serializer.Format, path string, report *checker.Report) error {
	ser, err := newOutputWriter(cmd, format, path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, "failed to open report output", err)
	}
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	if err := ser.Serialize(ctx, report); err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	return nil
}
