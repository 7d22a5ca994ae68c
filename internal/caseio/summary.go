package caseio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path"
	"strconv"
)

var ErrEmptySummary = errors.New("caseio: summary has no data rows")

// Summary holds one case's tabular summary: a fixed vocabulary of vector
// keys, a shared timestamp column and one value column per key. The
// vocabulary is fixed once loaded.
type Summary struct {
	name  string
	keys  []string
	index map[string]int
	times []float64
	cols  [][]float64
}

// LoadSummary reads a summary CSV. The first column is the timestamp in
// days, every further column is one vector key. Rows that fail to parse
// are skipped.
func LoadSummary(name, path string) (*Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("caseio: read summary %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, ErrEmptySummary
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("caseio: summary %s has no vector columns", path)
	}

	s := &Summary{
		name:  name,
		keys:  make([]string, 0, len(header)-1),
		index: make(map[string]int, len(header)-1),
		cols:  make([][]float64, len(header)-1),
	}
	for i, key := range header[1:] {
		s.keys = append(s.keys, key)
		s.index[key] = i
	}

	for _, record := range records[1:] {
		if len(record) != len(header) {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		row := make([]float64, 0, len(record)-1)
		ok := true
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				ok = false
				break
			}
			row = append(row, v)
		}
		if !ok {
			continue
		}
		s.times = append(s.times, t)
		for i, v := range row {
			s.cols[i] = append(s.cols[i], v)
		}
	}

	if len(s.times) == 0 {
		return nil, ErrEmptySummary
	}
	return s, nil
}

func (s *Summary) Name() string { return s.name }

// Keys returns the vocabulary keys matching the glob pattern, in column
// order. An empty pattern matches nothing; a malformed pattern matches
// nothing.
func (s *Summary) Keys(pattern string) []string {
	var out []string
	for _, key := range s.keys {
		ok, err := path.Match(pattern, key)
		if err == nil && ok {
			out = append(out, key)
		}
	}
	return out
}

func (s *Summary) HasKey(key string) bool {
	_, ok := s.index[key]
	return ok
}

// Timestamps returns the timestamp column in days. The key argument is
// kept for symmetry with Values; all keys share one column.
func (s *Summary) Timestamps(key string) []float64 {
	if !s.HasKey(key) {
		return nil
	}
	return s.times
}

func (s *Summary) Values(key string) []float64 {
	i, ok := s.index[key]
	if !ok {
		return nil
	}
	return s.cols[i]
}
