package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/growthcast/dataset"
	"github.com/arloliu/growthcast/forecast"
)

// dataFlag selects the historical series: a CSV path, "-" for stdin, or the
// embedded sample when empty.
type dataFlag struct {
	path string
}

func (d *dataFlag) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&d.path, "data", "d", "", `CSV file with year and users columns, "-" for stdin (default: embedded sample)`)
}

func (d *dataFlag) points(stdin io.Reader) ([]forecast.Point, error) {
	var (
		records []dataset.Record
		err     error
	)

	switch d.path {
	case "":
		records, err = dataset.Sample()
	case "-":
		records, err = dataset.Load(stdin)
	default:
		var f *os.File
		f, err = os.Open(d.path)
		if err != nil {
			return nil, fmt.Errorf("opening data file failed: %w", err)
		}
		defer f.Close()
		records, err = dataset.Load(f)
	}
	if err != nil {
		return nil, err
	}

	return dataset.Points(records), nil
}
