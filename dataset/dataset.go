package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/growthcast/errs"
	"github.com/arloliu/growthcast/forecast"
)

// Column names accepted in the header row, compared case-insensitively.
const (
	ColumnYear          = "year"
	ColumnUsers         = "users"
	ColumnUsersMillions = "users_millions"
	ColumnEvent         = "key_event"
)

// Record is one row of a growth dataset.
type Record struct {
	Year  int     `json:"year"`
	Users float64 `json:"users"`
	Event string  `json:"event,omitempty"`
}

type columns struct {
	year, users, event int
}

// Parse reads records from CSV without applying domain validation.
//
// Rows keep their file order. Blank lines are skipped and rows may omit the
// trailing key_event field.
//
// Returns:
//   - []Record: Parsed rows
//   - error: *errs.ValidationError wrapping ErrMissingColumn, ErrMalformedRecord or ErrEmptyInput
func Parse(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errs.NewValidationError("file", errs.ErrEmptyInput, "CSV file is empty")
	}
	if err != nil {
		return nil, errs.NewValidationError("file", errs.ErrMalformedRecord, "read header: %v", err)
	}

	cols, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errs.NewValidationError("file", errs.ErrMalformedRecord, "%v", err)
		}
		line, _ := cr.FieldPos(0)

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, errs.NewValidationError("file", errs.ErrMalformedRecord, "line %d: %v", line, err)
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, errs.NewValidationError("file", errs.ErrEmptyInput, "CSV file has no data rows")
	}

	return records, nil
}

// Load parses records from CSV and validates them with Validate.
func Load(r io.Reader) ([]Record, error) {
	records, err := Parse(r)
	if err != nil {
		return nil, err
	}
	if err := Validate(records); err != nil {
		return nil, err
	}

	return records, nil
}

// Validate applies the forecast input rules: at least two rows, consecutive
// years in file order and positive user counts.
func Validate(records []Record) error {
	return forecast.ValidatePoints(Points(records))
}

// Points converts records into forecast points.
func Points(records []Record) []forecast.Point {
	points := make([]forecast.Point, len(records))
	for i, r := range records {
		points[i] = forecast.Point{Year: r.Year, Users: r.Users}
	}

	return points
}

func locateColumns(header []string) (columns, error) {
	cols := columns{year: -1, users: -1, event: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case ColumnYear:
			cols.year = i
		case ColumnUsers:
			cols.users = i
		case ColumnUsersMillions:
			if cols.users < 0 {
				cols.users = i
			}
		case ColumnEvent, "event":
			cols.event = i
		}
	}
	if cols.year < 0 || cols.users < 0 {
		return cols, errs.NewValidationError("file", errs.ErrMissingColumn, "CSV must have 'year' and 'users' columns")
	}

	return cols, nil
}

func parseRow(row []string, cols columns) (Record, error) {
	field := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}

		return strings.TrimSpace(row[i])
	}

	year, err := strconv.Atoi(field(cols.year))
	if err != nil {
		return Record{}, fmt.Errorf("invalid year %q", field(cols.year))
	}
	users, err := strconv.ParseFloat(field(cols.users), 64)
	if err != nil || math.IsNaN(users) {
		return Record{}, fmt.Errorf("invalid users %q", field(cols.users))
	}

	return Record{Year: year, Users: users, Event: field(cols.event)}, nil
}
