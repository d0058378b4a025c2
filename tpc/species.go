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

// Floats is the set of element types the kernels accept.
type Floats interface {
	~float32 | ~float64
}

// Species holds the cardinal temperatures of one species.
type Species[T Floats] struct {
	TMin T
	TMax T
	TOpt T
}

// Shape returns the curve's asymmetry exponent (topt-tmin)/(tmax-topt).
func (s Species[T]) Shape() T {
	return (s.TOpt - s.TMin) / (s.TMax - s.TOpt)
}

// Breadth returns the width of the viable range, tmax-tmin.
func (s Species[T]) Breadth() T {
	return s.TMax - s.TMin
}

// Valid reports whether tmin < topt < tmax. NaN parameters are never valid.
func (s Species[T]) Valid() bool {
	return s.TMin < s.TOpt && s.TOpt < s.TMax
}

// Validate returns a *ParamError (index 0) when the species is not Valid.
func (s Species[T]) Validate() error {
	if s.Valid() {
		return nil
	}
	return &ParamError{Index: 0, TMin: float64(s.TMin), TMax: float64(s.TMax), TOpt: float64(s.TOpt)}
}

// Params holds per-species parameter vectors, one entry per grid column.
type Params struct {
	TMin []float64
	TMax []float64
	TOpt []float64
}

// Len returns the number of species. It is only meaningful once
// CheckLen has succeeded.
func (p Params) Len() int { return len(p.TMin) }

// Species returns the parameters of column i.
func (p Params) Species(i int) Species[float64] {
	return Species[float64]{TMin: p.TMin[i], TMax: p.TMax[i], TOpt: p.TOpt[i]}
}

// CheckLen verifies that all three vectors hold exactly ns entries.
func (p Params) CheckLen(ns int) error {
	return checkParamLen(len(p.TMin), len(p.TMax), len(p.TOpt), ns)
}

// Validate checks tmin < topt < tmax for every species and reports the
// first offending column.
func (p Params) Validate() error {
	if err := p.CheckLen(len(p.TMin)); err != nil {
		return err
	}
	for i := range p.TMin {
		if sp := p.Species(i); !sp.Valid() {
			return &ParamError{Index: i, TMin: sp.TMin, TMax: sp.TMax, TOpt: sp.TOpt}
		}
	}
	return nil
}

func checkParamLen(nmin, nmax, nopt, ns int) error {
	switch {
	case nmin != ns:
		return &DimensionError{What: "tmin", Got: nmin, Want: ns}
	case nmax != ns:
		return &DimensionError{What: "tmax", Got: nmax, Want: ns}
	case nopt != ns:
		return &DimensionError{What: "topt", Got: nopt, Want: ns}
	}
	return nil
}

func validateFlat[T Floats](tmin, tmax, topt []T) error {
	for i := range tmin {
		sp := Species[T]{TMin: tmin[i], TMax: tmax[i], TOpt: topt[i]}
		if !sp.Valid() {
			return &ParamError{Index: i, TMin: float64(sp.TMin), TMax: float64(sp.TMax), TOpt: float64(sp.TOpt)}
		}
	}
	return nil
}
