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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-thermal/internal/config"
	"github.com/ajroetker/go-thermal/tpc"
)

func newCurveCommand(common *config.Config) *cobra.Command {
	cc := config.CurveConfig{N: 101}
	cmd := &cobra.Command{
		Use:   "curve --tmin T --tmax T --topt T",
		Short: "Print the response curve of one species",
		Long: `Samples the response of a single species at evenly spaced temperatures.
The range defaults to [tmin, tmax].`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc.Config = *common
			if !cmd.Flags().Changed("from") {
				cc.From = cc.Species.TMin
			}
			if !cmd.Flags().Changed("to") {
				cc.To = cc.Species.TMax
			}
			if err := cc.Validate(); err != nil {
				return err
			}
			log, err := newLogger(cmd, cc.Config)
			if err != nil {
				return err
			}

			temps, resp, err := tpc.Sample(cc.Species, cc.From, cc.To, cc.N)
			if err != nil {
				return err
			}
			grid := mat.NewDense(cc.N, 2, nil)
			grid.SetCol(0, temps)
			grid.SetCol(1, resp)
			if err := writeOutput(cmd, cc.Config, []string{"temp", "response"}, grid); err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				"points": cc.N,
				"shape":  cc.Species.Shape(),
			}).Info("curve sampled")
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&cc.Species.TMin, "tmin", 0, "minimum temperature")
	f.Float64Var(&cc.Species.TMax, "tmax", 0, "maximum temperature")
	f.Float64Var(&cc.Species.TOpt, "topt", 0, "optimum temperature")
	f.Float64Var(&cc.From, "from", 0, "first sampled temperature (default tmin)")
	f.Float64Var(&cc.To, "to", 0, "last sampled temperature (default tmax)")
	f.IntVar(&cc.N, "n", cc.N, "number of samples")
	for _, name := range []string{"tmin", "tmax", "topt"} {
		_ = cmd.MarkFlagRequired(name)
	}
	addOutputFlags(f, common)
	return cmd
}
