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

// Package gridio reads temperature grids and species tables from delimited
// text and writes evaluated grids in the registered output formats.
package gridio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-thermal/tpc"
)

var (
	ErrNoHeader         = errors.New("gridio: header row required")
	ErrMissingColumn    = errors.New("gridio: missing column")
	ErrUnknownSpecies   = errors.New("gridio: unknown species")
	ErrDuplicateSpecies = errors.New("gridio: duplicate species")
	ErrNoColumns        = errors.New("gridio: grid has no columns")
)

// ReadOptions controls how delimited input is parsed.
type ReadOptions struct {
	// Comma is the field delimiter. Zero selects tab when the first line
	// contains one and comma otherwise.
	Comma rune
	// Header marks the first row as column names.
	Header bool
}

// Table is a temperature grid with optional column names.
type Table struct {
	Names []string // nil without a header
	Data  *mat.Dense
}

// Cols returns the number of species columns. A header-only grid has no
// data but keeps the width of its header.
func (t *Table) Cols() int {
	if !t.Data.IsEmpty() {
		_, c := t.Data.Dims()
		return c
	}
	return len(t.Names)
}

// ReadGrid parses a grid of temperatures, samples in rows and species in
// columns. Cells reading NA or NaN (any case) become NaN. Lines starting
// with '#' are skipped.
func ReadGrid(r io.Reader, opt ReadOptions) (*Table, error) {
	names, records, err := readRecords(r, opt)
	if err != nil {
		return nil, err
	}

	t := &Table{Names: names, Data: &mat.Dense{}}
	if len(records) == 0 {
		return t, nil
	}
	// The csv reader already rejects rows (header included) of differing width.
	ns := len(records[0])
	data := make([]float64, 0, len(records)*ns)
	for i, rec := range records {
		for j, cell := range rec {
			v, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("gridio: row %d column %d: %w", i+1, j+1, err)
			}
			data = append(data, v)
		}
	}
	t.Data = mat.NewDense(len(records), ns, data)
	return t, nil
}

// SpeciesTable holds per-species parameters read from a table with a
// header naming the tmin, tmax and topt columns and, optionally, a name
// (or species) column.
type SpeciesTable struct {
	Names  []string // nil without a name column
	Params tpc.Params
}

// ReadSpecies parses a species parameter table. Column names are matched
// without regard to case; the header is always required.
func ReadSpecies(r io.Reader, opt ReadOptions) (*SpeciesTable, error) {
	opt.Header = true
	header, records, err := readRecords(r, opt)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, ErrNoHeader
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[foldCase(h)] = i
	}
	idx := func(names ...string) (int, bool) {
		for _, n := range names {
			if i, ok := cols[n]; ok {
				return i, true
			}
		}
		return 0, false
	}
	var pos [3]int
	for k, name := range []string{"tmin", "tmax", "topt"} {
		i, ok := idx(name)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
		pos[k] = i
	}

	st := &SpeciesTable{}
	nameCol, hasNames := idx("name", "species")
	for i, rec := range records {
		var vals [3]float64
		for k, c := range pos {
			v, err := parseCell(rec[c])
			if err != nil {
				return nil, fmt.Errorf("gridio: species row %d column %q: %w", i+1, header[c], err)
			}
			vals[k] = v
		}
		st.Params.TMin = append(st.Params.TMin, vals[0])
		st.Params.TMax = append(st.Params.TMax, vals[1])
		st.Params.TOpt = append(st.Params.TOpt, vals[2])
		if hasNames {
			st.Names = append(st.Names, rec[nameCol])
		}
	}
	return st, nil
}

// Align returns the parameters ordered to match the grid column names.
// Without names on either side the table is used positionally.
func (s *SpeciesTable) Align(names []string) (tpc.Params, error) {
	if names == nil || s.Names == nil {
		return s.Params, nil
	}
	byName := make(map[string]int, len(s.Names))
	for i, n := range s.Names {
		if _, dup := byName[n]; dup {
			return tpc.Params{}, fmt.Errorf("%w %q", ErrDuplicateSpecies, n)
		}
		byName[n] = i
	}
	var p tpc.Params
	for _, n := range names {
		i, ok := byName[n]
		if !ok {
			return tpc.Params{}, fmt.Errorf("%w %q", ErrUnknownSpecies, n)
		}
		p.TMin = append(p.TMin, s.Params.TMin[i])
		p.TMax = append(p.TMax, s.Params.TMax[i])
		p.TOpt = append(p.TOpt, s.Params.TOpt[i])
	}
	return p, nil
}

func readRecords(r io.Reader, opt ReadOptions) (header []string, records [][]string, err error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("gridio: %w", err)
	}
	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comma = opt.Comma
	if cr.Comma == 0 {
		cr.Comma = detectComma(raw)
	}
	cr.Comment = '#'

	records, err = cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("gridio: %w", err)
	}
	records = lo.Map(records, func(rec []string, _ int) []string {
		return lo.Map(rec, func(s string, _ int) string { return strings.TrimSpace(s) })
	})
	if opt.Header && len(records) > 0 {
		return records[0], records[1:], nil
	}
	return nil, records, nil
}

func detectComma(raw []byte) rune {
	line, _, _ := bytes.Cut(raw, []byte{'\n'})
	if bytes.IndexByte(line, '\t') >= 0 {
		return '\t'
	}
	return ','
}

func parseCell(s string) (float64, error) {
	switch foldCase(s) {
	case "na", "nan":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// foldCase builds a Caser per call; Casers are stateful.
func foldCase(s string) string {
	return cases.Fold().String(s)
}
