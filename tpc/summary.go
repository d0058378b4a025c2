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

package tpc

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ColumnSummary describes the evaluated responses of one species.
type ColumnSummary struct {
	Samples   int     // rows in the column
	Viable    int     // responses strictly above zero
	NonFinite int     // NaN or ±Inf responses
	Peak      float64 // largest finite response, NaN if there is none
	Mean      float64 // mean of the finite responses, NaN if there are none
}

// Summarize reports per-column statistics of an evaluated grid.
func Summarize(out mat.Matrix) []ColumnSummary {
	nv, ns := out.Dims()
	sums := make([]ColumnSummary, ns)
	col := make([]float64, nv)
	finite := make([]float64, 0, nv)
	for i := range sums {
		mat.Col(col, i, out)
		finite = finite[:0]
		s := ColumnSummary{Samples: nv}
		for _, v := range col {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				s.NonFinite++
				continue
			}
			if v > 0 {
				s.Viable++
			}
			finite = append(finite, v)
		}
		if len(finite) == 0 {
			s.Peak, s.Mean = math.NaN(), math.NaN()
		} else {
			s.Peak = floats.Max(finite)
			s.Mean = floats.Sum(finite) / float64(len(finite))
		}
		sums[i] = s
	}
	return sums
}
