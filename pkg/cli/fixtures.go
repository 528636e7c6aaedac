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
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/antiprint/crxcheck/pkg/fixture"
)

func fixturesCSVCmd() *cli.Command {
	return &cli.Command{
		Name:      "fixtures-csv",
		Usage:     "Format navigator test fixtures as CSV",
		ArgsUsage: "<file.json>...",
		Description: `Read JSON files that encode window.navigator objects and write them as a
single CSV table for visual inspection. The header row is the sorted union of
all keys; keys a fixture lacks are left empty. Quoted glob patterns,
including **, are expanded.

# Examples

  crxcheck fixtures-csv testdata/navigator/*.json > navigators.csv
  crxcheck fixtures-csv -o navigators.csv 'src/test/resources/**/*.json'`,
		Flags: []cli.Flag{
			outputFlag,
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return fmt.Errorf("at least one fixture file is required")
			}

			paths, err := fixture.Expand(cmd.Args().Slice()...)
			if err != nil {
				return err
			}

			fixtures, err := fixture.Load(paths...)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.Root().Writer
			if output := strings.TrimSpace(cmd.String("output")); output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file %q: %w", output, err)
				}
				defer func() {
					if err := f.Close(); err != nil {
						slog.Warn("failed to close output file", "error", err)
					}
				}()
				w = f
			}

			if err := fixture.WriteCSV(w, fixtures); err != nil {
				return err
			}

			slog.Info("fixtures formatted", "count", len(fixtures))
			return nil
		},
	}
}
