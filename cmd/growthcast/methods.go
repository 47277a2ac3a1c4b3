package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/growthcast/forecast"
	"github.com/arloliu/growthcast/format"
	"github.com/arloliu/growthcast/interp"
)

func newMethodsCmd(opts *rootOptions) *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "methods",
		Short: "List the interpolation methods and their fallbacks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := opts.load(cmd.ErrOrStderr(), locale)
			if err != nil {
				return err
			}
			l := rt.cfg.Engine.LocaleValue()

			tw := newTabWriter(cmd.OutOrStdout())
			fmt.Fprintln(tw, "METHOD\tFALLBACK\tDESCRIPTION")
			for _, m := range format.Methods {
				fallback := "-"
				if next, ok := interp.Fallback(m); ok {
					fallback = next.String()
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", m, fallback, forecast.Description(m, l))
			}

			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "", "description language (en, id)")

	return cmd
}
