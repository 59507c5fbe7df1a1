package dataset

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Load reads a headered CSV file into a Frame. A column whose values all
// parse as float64 becomes numeric, every other column is categorical.
func Load(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open dataset %s", path)
	}
	defer file.Close()

	records, err := csv.NewReader(bufio.NewReader(file)).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "read dataset %s", path)
	}
	if len(records) < 2 {
		return nil, errors.Errorf("dataset %s has no data rows", path)
	}

	header := records[0]
	rows := records[1:]
	columns := make([]Column, len(header))
	for j, name := range header {
		raw := make([]string, len(rows))
		for i, rec := range rows {
			if len(rec) != len(header) {
				return nil, errors.Errorf("dataset %s: row %d has %d fields, want %d", path, i+1, len(rec), len(header))
			}
			raw[i] = rec[j]
		}
		columns[j] = inferColumn(name, raw)
	}

	f, err := New(columns...)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset %s", path)
	}
	return f, nil
}

func inferColumn(name string, raw []string) Column {
	floats := make([]float64, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Cat(name, raw...)
		}
		floats[i] = v
	}
	return Num(name, floats...)
}

// WriteCSV renders the frame to a headered CSV file, the counterpart of
// Load. Numeric cells round-trip exactly.
func WriteCSV(f *Frame, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create dataset %s", path)
	}
	if err := writeCSVTo(file, f); err != nil {
		file.Close()
		return errors.Wrapf(err, "write dataset %s", path)
	}
	return errors.Wrapf(file.Close(), "close dataset %s", path)
}

func writeCSVTo(dst io.Writer, f *Frame) error {
	w := csv.NewWriter(dst)
	if err := w.Write(f.Names()); err != nil {
		return err
	}
	record := make([]string, f.NumCols())
	for i := 0; i < f.NumRows(); i++ {
		for j, c := range f.columns {
			if c.Kind == Numeric {
				record[j] = strconv.FormatFloat(c.Floats[i], 'g', -1, 64)
			} else {
				record[j] = c.Labels[i]
			}
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
