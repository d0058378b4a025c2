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
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func scenarioParams() Params {
	return Params{
		TMin: []float64{0, 5},
		TMax: []float64{40, 35},
		TOpt: []float64{25, 28},
	}
}

func scenarioGrid() *mat.Dense {
	return mat.NewDense(6, 2, []float64{
		-5, 4,
		0, 5,
		10, 15,
		25, 28,
		40, 34,
		45, 35,
	})
}

func TestEvaluateScenario(t *testing.T) {
	out, err := Evaluate(scenarioGrid(), scenarioParams())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	want := mat.NewDense(6, 2, []float64{
		0, 0,
		0, 0,
		0.43430681865518506, 0.18509625731060703,
		1, 1,
		0, 0.30596753595887566,
		0, 0,
	})
	if !mat.EqualApprox(out, want, 1e-12) {
		t.Errorf("Evaluate =\n%v\nwant\n%v", mat.Formatted(out), mat.Formatted(want))
	}
	// Peaks are exact, not approximate.
	if out.At(3, 0) != 1 || out.At(3, 1) != 1 {
		t.Errorf("peak row = [%v %v], want exactly [1 1]", out.At(3, 0), out.At(3, 1))
	}
}

func TestEvaluateDimensionMismatch(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		what string
	}{
		{"short tmin", Params{TMin: []float64{0}, TMax: []float64{40, 35}, TOpt: []float64{25, 28}}, "tmin"},
		{"long tmax", Params{TMin: []float64{0, 5}, TMax: []float64{40, 35, 1}, TOpt: []float64{25, 28}}, "tmax"},
		{"missing topt", Params{TMin: []float64{0, 5}, TMax: []float64{40, 35}}, "topt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(scenarioGrid(), tt.p)
			if !errors.Is(err, ErrDimensionMismatch) {
				t.Fatalf("err = %v, want ErrDimensionMismatch", err)
			}
			var de *DimensionError
			if !errors.As(err, &de) || de.What != tt.what {
				t.Errorf("err = %#v, want DimensionError for %s", err, tt.what)
			}
		})
	}
}

func TestEvaluateIntoLeavesOutputOnError(t *testing.T) {
	dst := mat.NewDense(6, 2, nil)
	for i := 0; i < 6; i++ {
		dst.SetRow(i, []float64{7, 7})
	}

	// Wrong output shape.
	wrong := mat.NewDense(5, 2, nil)
	if err := EvaluateInto(wrong, scenarioGrid(), scenarioParams()); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("wrong output shape: err = %v, want ErrDimensionMismatch", err)
	}

	// Invalid species under validation: nothing may be written.
	p := scenarioParams()
	p.TOpt[1] = 40
	err := EvaluateInto(dst, scenarioGrid(), p, WithValidation())
	if !errors.Is(err, ErrInvalidParameters) {
		t.Fatalf("err = %v, want ErrInvalidParameters", err)
	}
	var pe *ParamError
	if !errors.As(err, &pe) || pe.Index != 1 {
		t.Errorf("err = %#v, want ParamError at column 1", err)
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 2; j++ {
			if dst.At(i, j) != 7 {
				t.Fatalf("dst[%d,%d] = %v after failed evaluation, want untouched 7", i, j, dst.At(i, j))
			}
		}
	}
}

func TestEvaluateDegenerateWithoutValidation(t *testing.T) {
	temps := mat.NewDense(3, 1, []float64{10, 30, 31})
	p := Params{TMin: []float64{0}, TMax: []float64{30}, TOpt: []float64{30}}

	out, err := Evaluate(temps, p)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !math.IsNaN(out.At(0, 0)) {
		t.Errorf("out[0] = %v, want NaN", out.At(0, 0))
	}
	if out.At(1, 0) != 0 || out.At(2, 0) != 0 {
		t.Errorf("guarded rows = [%v %v], want [0 0]", out.At(1, 0), out.At(2, 0))
	}

	if _, err := Evaluate(temps, p, WithValidation()); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("with validation: err = %v, want ErrInvalidParameters", err)
	}
}

func TestEvaluateRowPermutation(t *testing.T) {
	grid := scenarioGrid()
	out, err := Evaluate(grid, scenarioParams())
	if err != nil {
		t.Fatal(err)
	}

	perm := []int{5, 2, 0, 4, 1, 3}
	permuted := mat.NewDense(6, 2, nil)
	for dst, src := range perm {
		permuted.SetRow(dst, mat.Row(nil, src, grid))
	}
	permOut, err := Evaluate(permuted, scenarioParams())
	if err != nil {
		t.Fatal(err)
	}
	for dst, src := range perm {
		for j := 0; j < 2; j++ {
			if permOut.At(dst, j) != out.At(src, j) {
				t.Errorf("permuted[%d,%d] = %v, want %v", dst, j, permOut.At(dst, j), out.At(src, j))
			}
		}
	}
}

func TestEvaluateInPlace(t *testing.T) {
	grid := scenarioGrid()
	want, err := Evaluate(grid, scenarioParams())
	if err != nil {
		t.Fatal(err)
	}
	if err := EvaluateInto(grid, grid, scenarioParams()); err != nil {
		t.Fatal(err)
	}
	if !mat.Equal(grid, want) {
		t.Errorf("in-place =\n%v\nwant\n%v", mat.Formatted(grid), mat.Formatted(want))
	}
}

func TestEvaluateTransposedView(t *testing.T) {
	// Any mat.Matrix is accepted, including views.
	rowsBySpecies := mat.NewDense(2, 6, nil)
	rowsBySpecies.Copy(scenarioGrid().T())
	out, err := Evaluate(rowsBySpecies.T(), scenarioParams())
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Evaluate(scenarioGrid(), scenarioParams())
	if !mat.Equal(out, want) {
		t.Errorf("transposed input gave\n%v\nwant\n%v", mat.Formatted(out), mat.Formatted(want))
	}
}

func TestEvaluateEmpty(t *testing.T) {
	out, err := Evaluate(&mat.Dense{}, Params{})
	if err != nil {
		t.Fatalf("Evaluate(empty) = %v", err)
	}
	if !out.IsEmpty() {
		t.Errorf("Evaluate(empty) is not empty")
	}
	if _, err := Evaluate(&mat.Dense{}, Params{TMin: []float64{1}, TMax: []float64{2}, TOpt: []float64{1.5}}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("empty grid with one species: err = %v, want ErrDimensionMismatch", err)
	}
}

func TestEvaluateFlat(t *testing.T) {
	temps := []float32{
		-5, 4,
		10, 15,
		25, 28,
		45, 35,
	}
	tmin := []float32{0, 5}
	tmax := []float32{40, 35}
	topt := []float32{25, 28}
	out := make([]float32, len(temps))

	if err := EvaluateFlat(temps, 4, 2, tmin, tmax, topt, out); err != nil {
		t.Fatalf("EvaluateFlat: %v", err)
	}
	want := []float32{
		0, 0,
		0.4343068, 0.18509626,
		1, 1,
		0, 0,
	}
	for i := range want {
		if !closeEnough32(out[i], want[i], 1e-6) {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestEvaluateFlatErrors(t *testing.T) {
	tmin := []float64{0, 5}
	tmax := []float64{40, 35}
	topt := []float64{25, 28}

	tests := []struct {
		name   string
		temps  []float64
		nv, ns int
		out    []float64
		opts   []Option
		target error
	}{
		{"short temps", make([]float64, 5), 3, 2, make([]float64, 6), nil, ErrDimensionMismatch},
		{"short out", make([]float64, 6), 3, 2, make([]float64, 5), nil, ErrDimensionMismatch},
		{"param count", make([]float64, 9), 3, 3, make([]float64, 9), nil, ErrDimensionMismatch},
		{"negative rows", nil, -1, 2, nil, nil, ErrDimensionMismatch},
		{"overflowing shape", nil, math.MaxInt/2 + 1, 2, nil, nil, ErrDimensionMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EvaluateFlat(tt.temps, tt.nv, tt.ns, tmin, tmax, topt, tt.out, tt.opts...)
			if !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
		})
	}

	bad := []float64{25, 35}
	err := EvaluateFlat(make([]float64, 4), 2, 2, tmin, tmax, bad, make([]float64, 4), WithValidation())
	var pe *ParamError
	if !errors.As(err, &pe) || pe.Index != 1 {
		t.Errorf("err = %v, want ParamError at column 1", err)
	}
}

func TestParamsValidate(t *testing.T) {
	if err := scenarioParams().Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	p := Params{TMin: []float64{0, 1}, TMax: []float64{40}, TOpt: []float64{25, 2}}
	if err := p.Validate(); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Validate() on ragged params = %v, want ErrDimensionMismatch", err)
	}
}
