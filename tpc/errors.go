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
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when the parameter vectors, the
	// temperature grid and the output do not agree in shape.
	ErrDimensionMismatch = errors.New("tpc: dimension mismatch")

	// ErrInvalidParameters is returned by validation when a species does
	// not satisfy tmin < topt < tmax.
	ErrInvalidParameters = errors.New("tpc: invalid species parameters")

	// ErrInvalidRange is returned by Sample for an empty or inverted
	// temperature range.
	ErrInvalidRange = errors.New("tpc: invalid sampling range")
)

// DimensionError describes a length or shape disagreement.
type DimensionError struct {
	What string
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("tpc: dimension mismatch: %s has %d, want %d", e.What, e.Got, e.Want)
}

func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// ParamError identifies the first species whose parameters are out of
// order.
type ParamError struct {
	Index            int
	TMin, TMax, TOpt float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("tpc: invalid species parameters at column %d: need tmin < topt < tmax, got tmin=%g topt=%g tmax=%g",
		e.Index, e.TMin, e.TOpt, e.TMax)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParameters }
