package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arloliu/growthcast/dataset"
	"github.com/arloliu/growthcast/forecast"
)

func newExplainCmd(opts *rootOptions) *cobra.Command {
	var (
		method  string
		xs, ys  []float64
		at      float64
		example bool
		locale  string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Interpolate a single value and print the calculation steps",
		Example: `  growthcast explain --method polynomial --x 1,2,3 --y 1,4,9 --at 4
  growthcast explain --method lagrange --example --locale id --output table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := opts.load(cmd.ErrOrStderr(), locale)
			if err != nil {
				return err
			}

			if example {
				m, err := forecast.ParseMethod(method)
				if err != nil {
					return err
				}
				ex := dataset.Example(m)
				xs, ys = ex.X, ex.Y
				if !cmd.Flags().Changed("at") {
					at = ex.XToPredict
				}
			} else if !cmd.Flags().Changed("at") {
				return errors.New(`required flag "at" not set`)
			}

			resp, err := rt.forecaster.Explain(forecast.ExplainRequest{Method: method, X: xs, Y: ys, XToPredict: &at})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch output {
			case outputTable:
				return writeExplanationTable(out, resp)
			case outputCSV:
				return dataset.WriteExplanationCSV(out, resp, rt.cfg.Engine.LocaleValue())
			default:
				return render(out, output, resp)
			}
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", "linear", "interpolation method (linear, polynomial, spline, lagrange)")
	cmd.Flags().Float64SliceVar(&xs, "x", nil, "comma-separated x values")
	cmd.Flags().Float64SliceVar(&ys, "y", nil, "comma-separated y values")
	cmd.Flags().Float64Var(&at, "at", 0, "x value to interpolate")
	cmd.Flags().BoolVar(&example, "example", false, "use the built-in example data of the method")
	cmd.Flags().StringVar(&locale, "locale", "", "step trace language (en, id)")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format (json, yaml, table, csv)")
	cmd.MarkFlagsMutuallyExclusive("example", "x")
	cmd.MarkFlagsMutuallyExclusive("example", "y")

	return cmd
}

func writeExplanationTable(w io.Writer, resp *forecast.ExplainResponse) error {
	fmt.Fprintf(w, "%s at x = %s\n", resp.Method, formatNumber(resp.InputData.XToPredict))
	if resp.ExecutedMethod != resp.Method {
		fmt.Fprintf(w, "evaluated with %s\n", resp.ExecutedMethod)
	}
	fmt.Fprintln(w)
	for i, step := range resp.CalculationSteps {
		fmt.Fprintf(w, "%3d. %s\n", i+1, step)
	}
	fmt.Fprintln(w)
	_, err := fmt.Fprintf(w, "result: %s\n", formatNumber(resp.InterpolatedValue))

	return err
}
