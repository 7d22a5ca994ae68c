// Package caseio reads the on-disk artifacts of one simulation case: the
// tabular summary (CSV, one column per vector key), the grid geometry
// (JSON dims + actnum) and the restart snapshots (JSON report steps with
// per-quantity solution arrays).
//
// The package exposes three handle types:
//
//   - [Summary]: vector vocabulary plus timestamps/values per key
//   - [Grid]: (i,j,k) to active-cell index resolution
//   - [Restart]: report-step count, timestamps and solution arrays
//
// A case named CASE.DATA is expected to sit next to CASE.csv and,
// optionally, CASE.grid.json and CASE.rst.json.
package caseio
