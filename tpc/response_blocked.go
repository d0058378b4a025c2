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

// maxLanes bounds the block size: 64-byte blocks of float32.
const maxLanes = 16

// blockedResponse is the block-structured column kernel. Each full block is
// handled in two passes: the first computes the guard and both ratios for
// every lane, the second applies the power to the lanes inside the range.
// The tail is finished with the scalar path.
func blockedResponse[T Floats](temps, out []T, sp Species[T], lanes int) {
	size := min(len(temps), len(out))
	lanes = max(1, min(lanes, maxLanes))
	c := newCurve(sp)

	var (
		inside     [maxLanes]bool
		ratioAbove [maxLanes]float64
		ratioBelow [maxLanes]float64
	)

	var i int
	for ; i+lanes <= size; i += lanes {
		for k, v := range temps[i : i+lanes] {
			t := float64(v)
			above := c.tmax - t
			below := t - c.tmin
			inside[k] = above > 0 && below > 0
			ratioAbove[k] = above / c.rangeAbove
			ratioBelow[k] = below / c.rangeBelow
		}
		dst := out[i : i+lanes]
		for k := range dst {
			if inside[k] {
				dst[k] = T(ratioAbove[k] * math.Pow(ratioBelow[k], c.shape))
			} else {
				dst[k] = 0
			}
		}
	}
	// Scalar tail
	for ; i < size; i++ {
		out[i] = T(c.at(float64(temps[i])))
	}
}
