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

import "math"

// curve holds the loop-invariant terms of one species column.
type curve struct {
	tmin       float64
	tmax       float64
	rangeAbove float64
	rangeBelow float64
	shape      float64
}

func newCurve[T Floats](sp Species[T]) curve {
	tmin, tmax, topt := float64(sp.TMin), float64(sp.TMax), float64(sp.TOpt)
	rangeAbove := tmax - topt
	rangeBelow := topt - tmin
	return curve{
		tmin:       tmin,
		tmax:       tmax,
		rangeAbove: rangeAbove,
		rangeBelow: rangeBelow,
		shape:      rangeBelow / rangeAbove,
	}
}

// at evaluates the curve at t. Samples on or outside the bounds are 0; the
// guard is strict on both sides.
func (c curve) at(t float64) float64 {
	above := c.tmax - t
	below := t - c.tmin
	if above > 0 && below > 0 {
		return (above / c.rangeAbove) * math.Pow(below/c.rangeBelow, c.shape)
	}
	return 0
}

// Response evaluates the curve of sp at a single temperature.
//
// float32 arguments are widened to float64 for the computation.
func Response[T Floats](t T, sp Species[T]) T {
	return T(newCurve(sp).at(float64(t)))
}

// BaseResponse evaluates the curve of one species over a column of
// temperature samples: out[j] = Response(temps[j], sp).
//
// This is the reference kernel; the blocked kernel selected by the
// dispatcher must agree with it bit for bit. Processes
// min(len(temps), len(out)) samples. temps and out may be the same slice.
func BaseResponse[T Floats](temps, out []T, sp Species[T]) {
	size := min(len(temps), len(out))
	c := newCurve(sp)
	for j := 0; j < size; j++ {
		out[j] = T(c.at(float64(temps[j])))
	}
}
