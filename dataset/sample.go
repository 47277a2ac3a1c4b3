package dataset

import (
	"bytes"
	_ "embed"
)

//go:embed data/sample_growth.csv
var sampleCSV []byte

// SampleCSV returns a copy of the embedded sample file.
func SampleCSV() []byte {
	return bytes.Clone(sampleCSV)
}

// Sample returns the embedded sample series, in millions of users.
func Sample() ([]Record, error) {
	return Load(bytes.NewReader(sampleCSV))
}
