// Package report renders analysis results as the plain-text lines printed by
// the CLI. Each method builds its output in memory and issues one write.
package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/katalvlaran/hopreach/batch"
	"github.com/katalvlaran/hopreach/degree"
	"github.com/katalvlaran/hopreach/stats"
)

// Writer formats results onto an io.Writer.
type Writer struct {
	w io.Writer

	// Verbose adds a mean / standard deviation line under each depth.
	Verbose bool

	// Top limits the extended-degree listing of a batch to the n largest
	// values. 0 lists every vertex in identifier order.
	Top int
}

// New returns a Writer on w.
func New(w io.Writer) *Writer { return &Writer{w: w} }

// Profile writes one line per depth:
//
//	For depth 1, the most popular node is 42, covering 0.31% of all users
func (r *Writer) Profile(rows []stats.DepthBest) error {
	var sb strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&sb, "For depth %d, the most popular node is %s, covering %.2f%% of all users\n",
			row.Depth, row.Vertex, row.Proportion*100)
		if r.Verbose {
			fmt.Fprintf(&sb, "  mean %.2f%% ± %.2f%% over %d samples\n",
				row.Mean*100, row.StdDev*100, row.Samples)
		}
	}

	return r.flush(&sb)
}

// Overlap writes "Average overlap: 0.42".
func (r *Writer) Overlap(ratio float64) error {
	_, err := fmt.Fprintf(r.w, "Average overlap: %.2f\n", ratio)
	return err
}

// Batch writes the debug dump of one batch.
func (r *Writer) Batch(res batch.Result) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Batch %d (chunk %d): %d records, %d vertices, %d edges\n",
		res.Index, res.Chunk, res.Records, res.Vertices, res.Edges)

	sb.WriteString("extended degree:\n")
	for _, e := range r.degreeEntries(res.ExtendedDegree) {
		fmt.Fprintf(&sb, "  %s: %d\n", e.Vertex, e.Value)
	}
	fmt.Fprintf(&sb, "non-isolated (%d): %s\n", len(res.NonIsolated), strings.Join(res.NonIsolated, " "))

	return r.flush(&sb)
}

func (r *Writer) degreeEntries(table map[string]int) []degree.Entry {
	if r.Top > 0 {
		return degree.Top(table, r.Top)
	}
	ids := make([]string, 0, len(table))
	for v := range table {
		ids = append(ids, v)
	}
	slices.Sort(ids)
	out := make([]degree.Entry, len(ids))
	for i, v := range ids {
		out[i] = degree.Entry{Vertex: v, Value: table[v]}
	}

	return out
}

func (r *Writer) flush(sb *strings.Builder) error {
	_, err := io.WriteString(r.w, sb.String())
	return err
}
