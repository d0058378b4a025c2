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

import "gonum.org/v1/gonum/floats"

// Sample evaluates sp at n evenly spaced temperatures from lo to hi
// inclusive. It returns the temperatures and the matching responses.
func Sample(sp Species[float64], lo, hi float64, n int) (temps, resp []float64, err error) {
	if n < 2 || !(lo < hi) {
		return nil, nil, ErrInvalidRange
	}
	temps = floats.Span(make([]float64, n), lo, hi)
	resp = make([]float64, n)
	responseColumn(temps, resp, sp)
	return temps, resp, nil
}
