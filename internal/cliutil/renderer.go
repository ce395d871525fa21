// Package cliutil holds the output-rendering and logging conventions
// shared by the roup command-line tools: cmd/roup_debug,
// cmd/roup_roundtrip_acc, and cmd/openmp_vv.
package cliutil

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Step is one line of a roup_debug trace: a pipeline stage name plus its
// textual detail.
type Step struct {
	Stage  string `json:"stage"`
	Detail string `json:"detail"`
}

// RenderSteps writes steps to w as a two-column table (format "text") or as
// a JSON array (format "json").
func RenderSteps(w io.Writer, format string, steps []Step) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(steps)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"stage", "detail"})
	for _, s := range steps {
		t.AppendRow(table.Row{s.Stage, s.Detail})
	}
	t.Render()
	return nil
}

// RenderKeyValues writes a flat set of named results as a table or JSON
// object.
func RenderKeyValues(w io.Writer, format string, pairs [][2]string) error {
	if format == "json" {
		m := make(map[string]string, len(pairs))
		for _, p := range pairs {
			m[p[0]] = p[1]
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"field", "value"})
	for _, p := range pairs {
		t.AppendRow(table.Row{p[0], p[1]})
	}
	t.Render()
	return nil
}

// FileCounts is one source file's per-stage tallies
// (openmp_vv's "preprocess / format / parse / mismatch counts").
type FileCounts struct {
	File       string `json:"file"`
	Preprocess int    `json:"preprocess"`
	Format     int    `json:"format"`
	Parse      int    `json:"parse"`
	Mismatch   int    `json:"mismatch"`
}

// RenderFileCounts writes a batch of per-file tallies as a table or JSON
// array.
func RenderFileCounts(w io.Writer, format string, rows []FileCounts) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"file", "preprocess", "format", "parse", "mismatch"})
	var totalPre, totalFmt, totalParse, totalMismatch int
	for _, r := range rows {
		t.AppendRow(table.Row{r.File, r.Preprocess, r.Format, r.Parse, r.Mismatch})
		totalPre += r.Preprocess
		totalFmt += r.Format
		totalParse += r.Parse
		totalMismatch += r.Mismatch
	}
	t.AppendFooter(table.Row{"total", totalPre, totalFmt, totalParse, totalMismatch})
	t.Render()
	return nil
}

// Errorf writes a formatted error to w without a trailing newline
// duplication, mirroring internal/cli.Execute's "Error: %v\n" convention.
func Errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "Error: "+format+"\n", args...)
}
