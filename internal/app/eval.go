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

package app

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-thermal/internal/config"
	"github.com/ajroetker/go-thermal/internal/gridio"
	"github.com/ajroetker/go-thermal/tpc"
)

func newEvalCommand(common *config.Config) *cobra.Command {
	var ec config.EvalConfig
	cmd := &cobra.Command{
		Use:   "eval --temps FILE --species FILE",
		Short: "Evaluate every species column of a temperature grid",
		Long: `Reads a delimited temperature grid (samples in rows, species in columns)
and a species table with tmin, tmax and topt columns, and writes the grid of
responses. When both files name their species the table is matched to the
grid by name, otherwise by position.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ec.Config = *common
			if err := ec.Validate(); err != nil {
				return err
			}
			log, err := newLogger(cmd, ec.Config)
			if err != nil {
				return err
			}
			return runEval(cmd, ec, log)
		},
	}

	f := cmd.Flags()
	f.StringVar(&ec.Temps, "temps", "", "temperature grid ('-' for stdin)")
	f.StringVar(&ec.Species, "species", "", "species table ('-' for stdin)")
	f.BoolVar(&ec.NoHeader, "no-header", false, "the temperature grid has no header row")
	f.BoolVar(&ec.Strict, "strict", false, "reject species unless tmin < topt < tmax")
	addOutputFlags(f, common)
	return cmd
}

func runEval(cmd *cobra.Command, c config.EvalConfig, log logrus.FieldLogger) error {
	tr, err := openInput(cmd, c.Temps)
	if err != nil {
		return err
	}
	defer tr.Close()
	grid, err := gridio.ReadGrid(tr, gridio.ReadOptions{Header: !c.NoHeader})
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Temps, err)
	}

	sr, err := openInput(cmd, c.Species)
	if err != nil {
		return err
	}
	defer sr.Close()
	species, err := gridio.ReadSpecies(sr, gridio.ReadOptions{})
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Species, err)
	}

	params, err := species.Align(grid.Names)
	if err != nil {
		return err
	}

	names := grid.Names
	if names == nil {
		names = species.Names
	}
	if grid.Data.IsEmpty() {
		return evalHeaderOnly(cmd, c, grid, params, names, log)
	}

	var opts []tpc.Option
	if c.Strict {
		opts = append(opts, tpc.WithValidation())
	}
	out, err := tpc.Evaluate(grid.Data, params, opts...)
	if err != nil {
		return err
	}

	if err := writeOutput(cmd, c.Config, names, out); err != nil {
		return err
	}

	nonFinite := 0
	for i, s := range tpc.Summarize(out) {
		entry := log.WithFields(logrus.Fields{
			"column": i,
			"viable": s.Viable,
			"peak":   s.Peak,
			"mean":   s.Mean,
		})
		if names != nil {
			entry = entry.WithField("species", names[i])
		}
		entry.Debug("species evaluated")
		nonFinite += s.NonFinite
	}
	if nonFinite > 0 {
		log.WithField("count", nonFinite).Warn("non-finite responses; check tmin < topt < tmax or rerun with --strict")
	}

	nv, ns := out.Dims()
	log.WithFields(logrus.Fields{
		"samples": nv,
		"species": ns,
		"kernel":  tpc.CurrentName(),
	}).Info("evaluation complete")
	return nil
}

// evalHeaderOnly handles a grid with a header and no samples: the species
// are still checked against the header and an empty grid is written.
func evalHeaderOnly(cmd *cobra.Command, c config.EvalConfig, grid *gridio.Table, params tpc.Params, names []string, log logrus.FieldLogger) error {
	ns := grid.Cols()
	if ns == 0 {
		return fmt.Errorf("reading %s: %w", c.Temps, gridio.ErrNoColumns)
	}
	if err := params.CheckLen(ns); err != nil {
		return err
	}
	if c.Strict {
		if err := params.Validate(); err != nil {
			return err
		}
	}
	if err := writeOutput(cmd, c.Config, names, &mat.Dense{}); err != nil {
		return err
	}
	log.WithField("species", ns).Warn("temperature grid has no data rows")
	return nil
}
