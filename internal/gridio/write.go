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

package gridio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/mat"
)

// WriteFunc writes a grid with optional column names.
type WriteFunc func(w io.Writer, names []string, grid mat.Matrix) error

// Writer registry (format → handler). Formats are matched without regard
// to case; registration is last-wins.
var writers = map[string]WriteFunc{}

// Register installs fn for format.
func Register(format string, fn WriteFunc) { writers[foldCase(format)] = fn }

// Formats lists the registered formats in sorted order.
func Formats() []string {
	keys := lo.Keys(writers)
	slices.Sort(keys)
	return keys
}

// HasFormat reports whether a writer is registered for format.
func HasFormat(format string) bool {
	_, ok := writers[foldCase(format)]
	return ok
}

// Write renders grid to w in the named format.
func Write(format string, w io.Writer, names []string, grid mat.Matrix) error {
	fn, ok := writers[foldCase(format)]
	if !ok {
		return fmt.Errorf("gridio: unknown format %q (have %s)", format, strings.Join(Formats(), ", "))
	}
	return fn(w, names, grid)
}

func init() {
	Register("csv", delimited(','))
	Register("tsv", delimited('\t'))
	Register("json", writeJSON)
}

func delimited(comma rune) WriteFunc {
	return func(w io.Writer, names []string, grid mat.Matrix) error {
		cw := csv.NewWriter(w)
		cw.Comma = comma
		if names != nil {
			if err := cw.Write(names); err != nil {
				return err
			}
		}
		nv, ns := grid.Dims()
		rec := make([]string, ns)
		for i := 0; i < nv; i++ {
			for j := range rec {
				rec[j] = strconv.FormatFloat(grid.At(i, j), 'g', -1, 64)
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}
}

type jsonGrid struct {
	Species []string     `json:"species,omitempty"`
	Rows    [][]*float64 `json:"rows"`
}

// writeJSON emits null for NaN and ±Inf, which JSON cannot represent.
func writeJSON(w io.Writer, names []string, grid mat.Matrix) error {
	nv, ns := grid.Dims()
	out := jsonGrid{Species: names, Rows: make([][]*float64, nv)}
	for i := range out.Rows {
		row := make([]*float64, ns)
		for j := range row {
			v := grid.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			row[j] = &v
		}
		out.Rows[i] = row
	}
	enc := json.NewEncoder(w)
	return enc.Encode(out)
}
