package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arloliu/growthcast/dataset"
	"github.com/arloliu/growthcast/forecast"
)

func newPredictCmd(opts *rootOptions) *cobra.Command {
	var (
		data   dataFlag
		method string
		steps  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Forecast the next years of a yearly user series",
		Example: `  growthcast predict --method spline --steps 3
  growthcast predict --method polynomial --data growth.csv --output table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := opts.load(cmd.ErrOrStderr(), "")
			if err != nil {
				return err
			}
			points, err := data.points(cmd.InOrStdin())
			if err != nil {
				return err
			}

			resp, err := rt.forecaster.Forecast(forecast.Request{Method: method, Data: points, Steps: steps})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch output {
			case outputTable:
				return writeForecastTable(out, resp)
			case outputCSV:
				return dataset.WritePointsCSV(out, resp.Predictions)
			default:
				return render(out, output, resp)
			}
		},
	}
	data.register(cmd)
	cmd.Flags().StringVarP(&method, "method", "m", "linear", "interpolation method (linear, polynomial, spline, lagrange)")
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "number of years to predict")
	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "output format (json, yaml, table, csv)")

	return cmd
}

func writeForecastTable(w io.Writer, resp *forecast.Response) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "YEAR\tUSERS\tGROWTH %")
	for i, p := range resp.Predictions {
		rate := ""
		if i < len(resp.Statistics.Rates) {
			rate = formatNumber(resp.Statistics.Rates[i])
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", p.Year, formatNumber(p.Users), rate)
	}
	fmt.Fprintln(tw)

	executed := resp.ExecutedMethod
	if resp.Degraded {
		executed += " (fallback)"
	}
	fmt.Fprintf(tw, "method:\t%s\n", resp.Method)
	fmt.Fprintf(tw, "executed:\t%s\n", executed)
	fmt.Fprintf(tw, "history:\t%s (%d points)\n", resp.HistoricalRange, resp.DataPoints)
	fmt.Fprintf(tw, "equation:\t%s\n", resp.Equation)
	fmt.Fprintf(tw, "average growth:\t%s%%\n", formatNumber(resp.Statistics.Average))
	fmt.Fprintf(tw, "total growth:\t%s%%\n", formatNumber(resp.Statistics.Total))
	if resp.Fit != nil {
		fmt.Fprintf(tw, "fit:\tdegree %d, R² %s, RMSE %s\n",
			resp.Fit.Degree, formatNumber(resp.Fit.RSquared), formatNumber(resp.Fit.RMSE))
	}

	return tw.Flush()
}
