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

	"gonum.org/v1/gonum/mat"
)

// Option configures an evaluation.
type Option func(*options)

type options struct {
	validate bool
}

// WithValidation rejects species that do not satisfy tmin < topt < tmax
// with a *ParamError before any output is written. Without it such species
// yield IEEE results (possibly NaN or Inf).
func WithValidation() Option {
	return func(o *options) { o.validate = true }
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Evaluate computes the response of every sample in temps, rows being
// samples and columns species, against the parameters of its column.
//
// The result has the shape of temps. An empty grid with matching (empty)
// parameters gives an empty result.
func Evaluate(temps mat.Matrix, p Params, opts ...Option) (*mat.Dense, error) {
	var out mat.Dense
	if err := EvaluateInto(&out, temps, p, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// EvaluateInto is like Evaluate but stores the result in dst. An empty dst
// is resized; otherwise it must have the shape of temps. dst may be temps
// itself.
//
// All checks run before the first element is written, so on error dst is
// left untouched.
func EvaluateInto(dst *mat.Dense, temps mat.Matrix, p Params, opts ...Option) error {
	o := collect(opts)
	nv, ns := temps.Dims()
	if err := p.CheckLen(ns); err != nil {
		return err
	}
	if !dst.IsEmpty() {
		r, c := dst.Dims()
		if r != nv {
			return &DimensionError{What: "output rows", Got: r, Want: nv}
		}
		if c != ns {
			return &DimensionError{What: "output columns", Got: c, Want: ns}
		}
	}
	if o.validate {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	if nv == 0 || ns == 0 {
		return nil
	}
	if dst.IsEmpty() {
		dst.ReuseAs(nv, ns)
	}

	col := make([]float64, nv)
	res := make([]float64, nv)
	for i := 0; i < ns; i++ {
		mat.Col(col, i, temps)
		responseColumn(col, res, p.Species(i))
		dst.SetCol(i, res)
	}
	return nil
}

// EvaluateFlat evaluates a row-major grid of nv samples by ns species held
// in temps, writing the responses to out with the same layout.
//
// tmin, tmax and topt must each hold ns values; temps and out must hold at
// least nv*ns.
func EvaluateFlat[T Floats](temps []T, nv, ns int, tmin, tmax, topt, out []T, opts ...Option) error {
	o := collect(opts)
	if nv < 0 {
		return &DimensionError{What: "rows", Got: nv, Want: 0}
	}
	if ns < 0 {
		return &DimensionError{What: "columns", Got: ns, Want: 0}
	}
	if err := checkParamLen(len(tmin), len(tmax), len(topt), ns); err != nil {
		return err
	}
	if ns > 0 && nv > math.MaxInt/ns {
		return &DimensionError{What: "grid rows", Got: nv, Want: math.MaxInt / ns}
	}
	if len(temps) < nv*ns {
		return &DimensionError{What: "temps", Got: len(temps), Want: nv * ns}
	}
	if len(out) < nv*ns {
		return &DimensionError{What: "out", Got: len(out), Want: nv * ns}
	}
	if o.validate {
		if err := validateFlat(tmin, tmax, topt); err != nil {
			return err
		}
	}

	col := make([]T, nv)
	res := make([]T, nv)
	for i := 0; i < ns; i++ {
		for j := 0; j < nv; j++ {
			col[j] = temps[j*ns+i]
		}
		responseColumn(col, res, Species[T]{TMin: tmin[i], TMax: tmax[i], TOpt: topt[i]})
		for j := 0; j < nv; j++ {
			out[j*ns+i] = res[j]
		}
	}
	return nil
}
