package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gogpu/alphablend/harness"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// writeTable prints an aligned, human readable report.
func writeTable(w io.Writer, r *harness.Report, tag language.Tag) error {
	p := message.NewPrinter(tag)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	p.Fprintf(tw, "image %dx%d, sample (%d,%d), reference %v, tolerance %d\n\n",
		r.Width, r.Height, r.Sample.X, r.Sample.Y, r.Reference, r.Tolerance)
	fmt.Fprintln(tw, "backend\ttime\tMpx/s\tsample\tmax dev\tmismatches\tstatus")
	for _, res := range r.Results {
		p.Fprintf(tw, "%s\t%v\t%.1f\t%v\t%d\t%d\t%s\n",
			res.Kind, res.Elapsed, res.PixelsPerSecond()/1e6, res.Sample,
			res.MaxDeviation, res.Mismatches, status(res))
	}
	return tw.Flush()
}

// writeTSV prints one line per backend: name, duration, sample pixel.
func writeTSV(w io.Writer, r *harness.Report) error {
	for _, res := range r.Results {
		if _, err := fmt.Fprintf(w, "%s\t%v\t%v\t%d\t%s\n",
			res.Kind, res.Elapsed, res.Sample, res.MaxDeviation, status(res)); err != nil {
			return err
		}
	}
	return nil
}

func status(r harness.Result) string {
	switch {
	case r.Skipped:
		return "skipped (background not opaque)"
	case r.Err != nil:
		return "error: " + r.Err.Error()
	case r.Unsupported:
		return fmt.Sprintf("unsupported, ran %s", r.Ran)
	case r.Mismatches > 0:
		return "MISMATCH"
	case r.Relaxed:
		return "ok (translucent slack)"
	default:
		return "ok"
	}
}
