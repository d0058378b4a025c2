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
	"testing"
)

var (
	warmSpecies = Species[float64]{TMin: 0, TMax: 40, TOpt: 25}
	coolSpecies = Species[float64]{TMin: 5, TMax: 35, TOpt: 28}
)

func TestResponse(t *testing.T) {
	tests := []struct {
		name string
		sp   Species[float64]
		t    float64
		want float64
	}{
		{"below range", warmSpecies, -5, 0},
		{"at tmin", warmSpecies, 0, 0},
		{"rising limb", warmSpecies, 10, 0.43430681865518506},
		{"near optimum", warmSpecies, 20, 0.9192254677469371},
		{"at optimum", warmSpecies, 25, 1},
		{"falling limb", warmSpecies, 30, 0.9033945877257873},
		{"close to tmax", warmSpecies, 35, 0.5840169762630908},
		{"at tmax", warmSpecies, 40, 0},
		{"above range", warmSpecies, 45, 0},
		{"skewed rising", coolSpecies, 15, 0.18509625731060703},
		{"skewed optimum", coolSpecies, 28, 1},
		{"skewed falling", coolSpecies, 30, 0.9394092178371862},
		{"skewed shoulder", coolSpecies, 34, 0.30596753595887566},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Response(tt.t, tt.sp)
			if !closeEnough64(got, tt.want, 1e-12) {
				t.Errorf("Response(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestResponsePeakIsExactlyOne(t *testing.T) {
	for _, sp := range []Species[float64]{
		warmSpecies,
		coolSpecies,
		{TMin: -2.5, TMax: 12.75, TOpt: 9.1},
		{TMin: 10, TMax: 11, TOpt: 10.001},
	} {
		if got := Response(sp.TOpt, sp); got != 1 {
			t.Errorf("Response(topt) for %+v = %v, want exactly 1", sp, got)
		}
	}

	sp32 := Species[float32]{TMin: 0, TMax: 40, TOpt: 25}
	if got := Response(float32(25), sp32); got != 1 {
		t.Errorf("float32 Response(topt) = %v, want exactly 1", got)
	}
}

func TestResponseZeroOutsideRange(t *testing.T) {
	temps := []float64{
		math.Inf(-1), -1000, -0.0001, 0, // at or below tmin
		40, 40.0001, 1000, math.Inf(1), // at or above tmax
	}
	for _, tt := range temps {
		if got := Response(tt, warmSpecies); got != 0 {
			t.Errorf("Response(%v) = %v, want 0", tt, got)
		}
	}
}

func TestResponseBoundedInsideRange(t *testing.T) {
	for _, sp := range []Species[float64]{warmSpecies, coolSpecies} {
		lo := int(sp.TMin*20) + 1
		hi := int(sp.TMax*20) - 1
		for k := lo; k <= hi; k++ {
			temp := float64(k) / 20
			got := Response(temp, sp)
			if got <= 0 || got > 1 {
				t.Fatalf("Response(%v) for %+v = %v, want in (0, 1]", temp, sp, got)
			}
			if temp != sp.TOpt && got >= 1 {
				t.Fatalf("Response(%v) for %+v = %v, want < 1 away from topt", temp, sp, got)
			}
		}
	}
}

func TestResponseDegenerateParameters(t *testing.T) {
	// topt == tmax: shape is +Inf and the first factor is +Inf, so the
	// product is NaN. No error is signalled.
	sp := Species[float64]{TMin: 0, TMax: 30, TOpt: 30}
	if got := Response(10.0, sp); !math.IsNaN(got) {
		t.Errorf("Response with topt == tmax = %v, want NaN", got)
	}
	// The guard still applies.
	if got := Response(30.0, sp); got != 0 {
		t.Errorf("Response at tmax with topt == tmax = %v, want 0", got)
	}

	// tmin > topt: negative base raised to a fractional power.
	inverted := Species[float64]{TMin: 20, TMax: 30, TOpt: 10}
	if got := Response(25.0, inverted); !math.IsNaN(got) {
		t.Errorf("Response with tmin > topt = %v, want NaN", got)
	}
}

func TestBaseResponseFloat32(t *testing.T) {
	sp := Species[float32]{TMin: 0, TMax: 40, TOpt: 25}
	temps := []float32{-5, 0, 10, 25, 40, 45}
	want := []float32{0, 0, 0.4343068, 1, 0, 0}
	out := make([]float32, len(temps))

	BaseResponse(temps, out, sp)

	for i := range want {
		if !closeEnough32(out[i], want[i], 1e-6) {
			t.Errorf("BaseResponse[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestBaseResponseShortOutput(t *testing.T) {
	temps := []float64{10, 25, 30}
	out := make([]float64, 2)
	BaseResponse(temps, out, warmSpecies)
	if out[1] != 1 {
		t.Errorf("out[1] = %v, want 1", out[1])
	}
}

func TestBaseResponseInPlace(t *testing.T) {
	buf := []float64{-5, 10, 25, 45}
	BaseResponse(buf, buf, warmSpecies)
	want := []float64{0, 0.43430681865518506, 1, 0}
	for i := range want {
		if !closeEnough64(buf[i], want[i], 1e-12) {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestSpeciesHelpers(t *testing.T) {
	if got, want := warmSpecies.Shape(), 25.0/15.0; got != want {
		t.Errorf("Shape() = %v, want %v", got, want)
	}
	if got := warmSpecies.Breadth(); got != 40 {
		t.Errorf("Breadth() = %v, want 40", got)
	}
	if err := warmSpecies.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	for _, sp := range []Species[float64]{
		{TMin: 10, TMax: 30, TOpt: 10},
		{TMin: 10, TMax: 30, TOpt: 30},
		{TMin: 30, TMax: 10, TOpt: 20},
		{TMin: math.NaN(), TMax: 30, TOpt: 20},
	} {
		if sp.Valid() {
			t.Errorf("Valid() for %+v = true, want false", sp)
		}
	}
}

func closeEnough64(a, b, tol float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	if math.IsInf(a, 0) && math.IsInf(b, 0) {
		return (a > 0) == (b > 0)
	}
	return math.Abs(a-b) <= tol
}

func closeEnough32(a, b, tol float32) bool {
	return closeEnough64(float64(a), float64(b), float64(tol))
}
