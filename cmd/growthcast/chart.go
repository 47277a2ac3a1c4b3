package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/growthcast/chart"
	"github.com/arloliu/growthcast/forecast"
)

func newChartCmd(opts *rootOptions) *cobra.Command {
	var (
		data  dataFlag
		steps int
		out   string
		title string
	)

	cmd := &cobra.Command{
		Use:     "chart",
		Short:   "Render an HTML chart of the history and every method's forecast",
		Example: `  growthcast chart --data growth.csv --steps 5 --out forecast.html`,
		Args:    cobra.NoArgs,
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

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating chart file failed: %w", err)
				}
				defer f.Close()
				w = f
			}
			if err := chart.RenderForecast(w, title, points, resp); err != nil {
				return err
			}
			if out != "" {
				rt.logger.Info("chart written", slog.String("path", out))
			}

			return nil
		},
	}
	data.register(cmd)
	cmd.Flags().IntVarP(&steps, "steps", "n", 5, "number of years to predict")
	cmd.Flags().StringVar(&out, "out", "", "output HTML file (default: stdout)")
	cmd.Flags().StringVar(&title, "title", "User growth forecast", "chart title")

	return cmd
}
