package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/growthcast/forecast"
	"github.com/arloliu/growthcast/format"
)

func newCompareCmd(opts *rootOptions) *cobra.Command {
	var (
		data   dataFlag
		steps  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Forecast with every method side by side",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := opts.load(cmd.ErrOrStderr(), "")
			if err != nil {
				return err
			}
			points, err := data.points(cmd.InOrStdin())
			if err != nil {
				return err
			}

			resp, err := rt.forecaster.Compare(cmd.Context(), forecast.CompareRequest{Data: points, Steps: steps})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output == outputTable {
				return writeCompareTable(out, resp)
			}

			return render(out, output, resp)
		},
	}
	data.register(cmd)
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "number of years to predict")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format (json, yaml, table)")

	return cmd
}

func writeCompareTable(w io.Writer, resp *forecast.CompareResponse) error {
	var years []int
	for _, name := range format.MethodNames() {
		if r, ok := resp.Results[name]; ok {
			for _, p := range r.Predictions {
				years = append(years, p.Year)
			}
			break
		}
	}

	tw := newTabWriter(w)
	header := []string{"METHOD", "EXECUTED"}
	for _, y := range years {
		header = append(header, fmt.Sprint(y))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, name := range format.MethodNames() {
		r, ok := resp.Results[name]
		if !ok {
			continue
		}
		row := []string{name, r.ExecutedMethod}
		for _, p := range r.Predictions {
			row = append(row, formatNumber(p.Users))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}
