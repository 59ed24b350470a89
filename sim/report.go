package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by WriteResult and WriteComparison.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats is the set of recognized output formats.
var ValidFormats = map[string]bool{FormatText: true, FormatJSON: true, FormatYAML: true}

// WriteResult renders r to w in the given format.
func WriteResult(w io.Writer, r *Result, format string) error {
	switch format {
	case FormatText:
		if err := writeStepTable(w, r); err != nil {
			return err
		}
		return writeSummary(w, r)
	case FormatJSON, FormatYAML:
		return encode(w, r, format)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteComparison renders both runs of c followed by a side-by-side summary.
func WriteComparison(w io.Writer, c *Comparison, format string) error {
	switch format {
	case FormatText:
		for _, r := range []*Result{c.FIFO, c.LRU} {
			if err := writeStepTable(w, r); err != nil {
				return err
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, "=== Comparison ===")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "POLICY\tFAULTS\tHITS\tFAULT RATE")
		for _, r := range []*Result{c.FIFO, c.LRU} {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f%%\n", r.Policy, r.PageFaults, r.Hits, r.FaultRate)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "LRU - FIFO faults: %+d\n", c.FaultDelta())
		return err
	case FormatJSON, FormatYAML:
		return encode(w, c, format)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func encode(w io.Writer, v interface{}, format string) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// writeStepTable prints one row per step with one column per frame.
func writeStepTable(w io.Writer, r *Result) error {
	fmt.Fprintf(w, "=== %s, %d frames ===\n", r.Policy, r.FrameCount)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := []string{"STEP", "REF"}
	for i := 0; i < r.FrameCount; i++ {
		header = append(header, "F"+strconv.Itoa(i+1))
	}
	header = append(header, "STATUS", "EVICTED")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, s := range r.Steps {
		row := []string{strconv.Itoa(s.Step), strconv.Itoa(s.Reference)}
		for _, slot := range s.Frames {
			row = append(row, slot.String())
		}
		evicted := "-"
		if s.Evicted != nil {
			evicted = strconv.Itoa(*s.Evicted)
		}
		row = append(row, string(s.Status), evicted)
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func writeSummary(w io.Writer, r *Result) error {
	_, err := fmt.Fprintf(w, "Page Faults : %d\nHits        : %d\nFault Rate  : %.1f%%\nTotal       : %d\n",
		r.PageFaults, r.Hits, r.FaultRate, r.Total)
	return err
}
