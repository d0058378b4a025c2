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

// Package tpc evaluates thermal performance curves over grids of
// temperature samples.
//
// Each species is described by a minimum, maximum and optimum temperature.
// For a sample t the response is
//
//	r(t) = (tmax-t)/(tmax-topt) * ((t-tmin)/(topt-tmin))^s,  s = (topt-tmin)/(tmax-topt)
//
// when tmin < t < tmax, and exactly 0 otherwise. The curve rises from 0 at
// tmin, reaches 1 at topt and falls back to 0 at tmax; the shape exponent s
// controls its asymmetry.
//
// # Grids
//
// Temperature grids hold samples in rows and species in columns. Each column
// is evaluated against its own parameters:
//
//	temps := mat.NewDense(3, 2, []float64{
//	    10, 12,
//	    25, 20,
//	    41, 30,
//	})
//	p := tpc.Params{
//	    TMin: []float64{0, 5},
//	    TMax: []float64{40, 35},
//	    TOpt: []float64{25, 28},
//	}
//	out, err := tpc.Evaluate(temps, p)
//
// # Validation
//
// Evaluate always checks that the parameter vectors match the number of grid
// columns and fails with ErrDimensionMismatch before writing anything.
// Parameters themselves are not checked by default: a species with
// tmin >= topt or topt >= tmax produces whatever IEEE arithmetic yields,
// NaN and Inf included. Pass WithValidation to reject such species with
// ErrInvalidParameters instead.
//
// # Kernels
//
// The per-column kernel is selected at init time from the CPU features
// reported by golang.org/x/sys/cpu. The blocked kernel processes samples in
// blocks sized to the vector width; the scalar kernel is BaseResponse. Both
// are plain Go loops and produce bit-identical results: the dispatch level
// picks a block size, it does not run SIMD code. Set TPC_NO_SIMD to force
// the scalar kernel.
package tpc
