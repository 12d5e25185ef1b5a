// Package data contains the dataset interfaces consumed by the faceting
// code and a prototypical in-memory implementation.
package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Source is an ordered collection of records with named columns.
// Faceting treats every column value as a discrete factor level.
type Source interface {
	// Len returns the number of records.
	Len() int

	// Columns returns the column names in declaration order.
	Columns() []string

	// Value returns the value of column col in record i. The second
	// return value reports whether the column exists.
	Value(col string, i int) (string, bool)
}

// Frame is an in-memory Source. Records keep their insertion order.
type Frame struct {
	cols  []string
	index map[string]int
	recs  [][]string
}

// NewFrame returns an empty frame with the given columns.
func NewFrame(cols ...string) *Frame {
	f := &Frame{
		cols:  append([]string{}, cols...),
		index: make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		f.index[c] = i
	}
	return f
}

// Append adds one record. The record must have one value per column.
func (f *Frame) Append(record ...string) error {
	if len(record) != len(f.cols) {
		return fmt.Errorf("data: record has %d values, frame has %d columns",
			len(record), len(f.cols))
	}
	f.recs = append(f.recs, append([]string{}, record...))
	return nil
}

func (f *Frame) Len() int { return len(f.recs) }

func (f *Frame) Columns() []string { return f.cols }

func (f *Frame) Value(col string, i int) (string, bool) {
	j, ok := f.index[col]
	if !ok {
		return "", false
	}
	return f.recs[i][j], true
}

// Float returns the value of column col in record i parsed as float64.
func (f *Frame) Float(col string, i int) (float64, error) {
	v, ok := f.Value(col, i)
	if !ok {
		return 0, fmt.Errorf("data: no column %q", col)
	}
	x, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("data: column %q record %d: %w", col, i, err)
	}
	return x, nil
}

// ReadCSV reads a frame from CSV data. The first row is the header.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("data: reading CSV header: %w", err)
	}
	f := NewFrame(header...)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("data: reading CSV: %w", err)
		}
		if err := f.Append(rec...); err != nil {
			return nil, err
		}
	}
	return f, nil
}
