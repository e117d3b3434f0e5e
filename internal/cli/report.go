package cli

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvrand/stattest"
)

// uniformMean is the mean of the uniform distribution on [0,1].
const uniformMean = 0.5

// writeReport prints one row per test, the sample moments against their
// uniform values, and a summary line.
func writeReport(w io.Writer, rep stattest.Report, sample []float64) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "TEST\tN\tSTATISTIC\tCRITICAL\tALPHA\tVERDICT\tNOTE")
	results := rep.Results()
	var passed int
	for _, r := range results {
		if r.Passed {
			passed++
		}
		p.Fprintf(tw, "%s\t%d\t%.6f\t%.6f\t%g\t%s\t%s\n",
			r.Name, r.N, r.Statistic, r.Critical, r.Alpha, r.Verdict, r.Note)
	}
	fmt.Fprintf(tw, "\nvariance interval\t\t[%.6f, %.6f]\n", rep.Variance.Lower, rep.Variance.Upper)
	mean, std := stat.MeanStdDev(sample, nil)
	fmt.Fprintf(tw, "mean\t\t%.6f\t(expected %.6f)\n", mean, uniformMean)
	fmt.Fprintf(tw, "std dev\t\t%.6f\t(expected %.6f)\n", std, math.Sqrt(stattest.UniformVariance))
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d of %d tests passed\n", passed, len(results))
	return err
}
