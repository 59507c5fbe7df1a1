package dataset

import (
	"github.com/pkg/errors"
)

// Kind discriminates how a column stores its values.
type Kind int

const (
	Numeric Kind = iota
	Categorical
)

// Column is a single named column of the record set. Exactly one of the
// value slices is populated, matching Kind.
type Column struct {
	Name   string
	Kind   Kind
	Floats []float64
	Labels []string
}

// Num builds a numeric column.
func Num(name string, values ...float64) Column {
	return Column{Name: name, Kind: Numeric, Floats: values}
}

// Cat builds a categorical column.
func Cat(name string, values ...string) Column {
	return Column{Name: name, Kind: Categorical, Labels: values}
}

// Len returns the number of values stored in the column.
func (c Column) Len() int {
	if c.Kind == Numeric {
		return len(c.Floats)
	}
	return len(c.Labels)
}

// Frame is an ordered, in-memory tabular record set. Column order is
// significant and preserved by every operation; operations never mutate
// the receiver.
type Frame struct {
	columns []Column
}

// New builds a Frame from columns, enforcing the construction invariants:
// non-empty unique names, one shared length, storage matching the kind.
func New(columns ...Column) (*Frame, error) {
	if len(columns) == 0 {
		return nil, errors.New("frame needs at least one column")
	}
	seen := make(map[string]struct{}, len(columns))
	rows := columns[0].Len()
	for _, c := range columns {
		if c.Name == "" {
			return nil, errors.New("column name must not be empty")
		}
		if _, dup := seen[c.Name]; dup {
			return nil, errors.Errorf("duplicate column %q", c.Name)
		}
		seen[c.Name] = struct{}{}
		if c.Kind == Numeric && c.Labels != nil || c.Kind == Categorical && c.Floats != nil {
			return nil, errors.Errorf("column %q: storage does not match kind", c.Name)
		}
		if c.Len() != rows {
			return nil, errors.Errorf("column %q has %d rows, want %d", c.Name, c.Len(), rows)
		}
	}
	return &Frame{columns: columns}, nil
}

// NumRows returns the shared column length.
func (f *Frame) NumRows() int { return f.columns[0].Len() }

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.columns) }

// Names returns the column names in frame order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name
	}
	return names
}

// Has reports whether a column exists.
func (f *Frame) Has(name string) bool {
	for _, c := range f.columns {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Column returns the named column.
func (f *Frame) Column(name string) (Column, error) {
	for _, c := range f.columns {
		if c.Name == name {
			return c, nil
		}
	}
	return Column{}, errors.Errorf("unknown column %q", name)
}

// Drop returns a new Frame without the named columns, preserving the
// relative order of the remaining ones. Unknown names are an error.
func (f *Frame) Drop(names ...string) (*Frame, error) {
	dropped := make(map[string]struct{}, len(names))
	for _, n := range names {
		if !f.Has(n) {
			return nil, errors.Errorf("cannot drop unknown column %q", n)
		}
		dropped[n] = struct{}{}
	}
	kept := make([]Column, 0, len(f.columns)-len(dropped))
	for _, c := range f.columns {
		if _, skip := dropped[c.Name]; !skip {
			kept = append(kept, c)
		}
	}
	return New(kept...)
}

// NumericNames returns the names of numeric columns in frame order.
func (f *Frame) NumericNames() []string {
	var names []string
	for _, c := range f.columns {
		if c.Kind == Numeric {
			names = append(names, c.Name)
		}
	}
	return names
}

// Matrix extracts the named numeric columns as a row-major feature matrix.
func (f *Frame) Matrix(names ...string) ([][]float64, error) {
	cols := make([]Column, len(names))
	for j, n := range names {
		c, err := f.Column(n)
		if err != nil {
			return nil, err
		}
		if c.Kind != Numeric {
			return nil, errors.Errorf("column %q is not numeric", n)
		}
		cols[j] = c
	}
	X := make([][]float64, f.NumRows())
	for i := range X {
		row := make([]float64, len(cols))
		for j, c := range cols {
			row[j] = c.Floats[i]
		}
		X[i] = row
	}
	return X, nil
}

// Target returns a copy of the named numeric column, used as the label
// vector.
func (f *Frame) Target(name string) ([]float64, error) {
	c, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind != Numeric {
		return nil, errors.Errorf("target column %q is not numeric", name)
	}
	y := make([]float64, len(c.Floats))
	copy(y, c.Floats)
	return y, nil
}
