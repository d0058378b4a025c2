// Copyright 2025 go-thermal Authors
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

// Package app implements the tresp command line.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-thermal/internal/config"
	"github.com/ajroetker/go-thermal/internal/gridio"
	"github.com/ajroetker/go-thermal/internal/logging"
)

// Run executes tresp with args and returns the process exit status.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdin, stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		log, lerr := logging.New(stderr, "error", false)
		if lerr != nil {
			fmt.Fprintf(stderr, "tresp: %v\n", err)
			return 1
		}
		log.WithError(err).Error("tresp failed")
		return 1
	}
	return 0
}

// NewRootCommand builds the tresp command tree.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := config.Default()
	root := &cobra.Command{
		Use:           "tresp",
		Short:         "Evaluate thermal performance curves over temperature grids",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (env "+config.EnvLogLevel+")")
	pf.BoolVarP(&cfg.Quiet, "quiet", "q", false, "log errors only")

	root.AddCommand(
		newEvalCommand(&cfg),
		newCurveCommand(&cfg),
		newCPUInfoCommand(),
	)
	return root
}

func addOutputFlags(f *pflag.FlagSet, cfg *config.Config) {
	f.StringVarP(&cfg.Format, "format", "f", cfg.Format, "output format: csv, tsv or json (env "+config.EnvFormat+")")
	f.StringVarP(&cfg.Out, "out", "o", "", "output file (default stdout)")
}

func newLogger(cmd *cobra.Command, cfg config.Config) (*logrus.Logger, error) {
	return logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.Quiet)
}

func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}

func writeOutput(cmd *cobra.Command, cfg config.Config, names []string, grid mat.Matrix) error {
	if cfg.Out == "" || cfg.Out == "-" {
		return gridio.Write(cfg.Format, cmd.OutOrStdout(), names, grid)
	}
	f, err := os.Create(cfg.Out)
	if err != nil {
		return err
	}
	if err := gridio.Write(cfg.Format, f, names, grid); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", cfg.Out, err)
	}
	return f.Close()
}
