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
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/antiprint/crxcheck/pkg/logging"
	"github.com/antiprint/crxcheck/pkg/serializer"
)

const (
	name           = "crxcheck"
	versionDefault = "dev"

	// exitMismatch is returned when a recorded version disagrees with the
	// required one. Every other failure exits with 1.
	exitMismatch = 2
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (use - for stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
)

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Build-time version consistency checks for the AntiPrint extension",
		Description: fmt.Sprintf(`crxcheck verifies that the extension manifest and the parent build
descriptor record the version the build was asked to produce.

Version: %s
Commit:  %s
Built:   %s`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
				Value:   "warn",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logLevel := cmd.String("log-level")
			logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", logLevel)
			return ctx, nil
		},
		Commands: []*cli.Command{
			checkVersionCmd(),
			fixturesCSVCmd(),
		},
	}
}

// Execute runs the root command with the process arguments and exits with
// the resulting status. This is called by main.main().
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// exit coders (mismatches) are printed and terminate inside Run
	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	if !cmd.IsSet("format") {
		if output := strings.TrimSpace(cmd.String("output")); output != "" && output != "-" {
			return serializer.FormatFromPath(output), nil
		}
	}
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// newOutputWriter returns a writer for path, where "-" is the command's stdout.
func newOutputWriter(cmd *cli.Command, format serializer.Format, path string) (serializer.Serializer, error) {
	if path == "-" {
		return serializer.NewWriter(format, cmd.Root().Writer), nil
	}
	return serializer.NewFileWriter(format, path)
}
