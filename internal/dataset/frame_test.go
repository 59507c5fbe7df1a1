package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		columns []Column
		wantErr bool
	}{
		{
			name: "valid mixed frame",
			columns: []Column{
				Num("income", 1, 2),
				Cat("gender", "female", "male"),
			},
			wantErr: false,
		},
		{
			name:    "no columns",
			columns: nil,
			wantErr: true,
		},
		{
			name: "empty column name",
			columns: []Column{
				Num("", 1, 2),
			},
			wantErr: true,
		},
		{
			name: "duplicate column names",
			columns: []Column{
				Num("income", 1, 2),
				Num("income", 3, 4),
			},
			wantErr: true,
		},
		{
			name: "ragged column lengths",
			columns: []Column{
				Num("income", 1, 2, 3),
				Cat("gender", "female", "male"),
			},
			wantErr: true,
		},
		{
			name: "storage does not match kind",
			columns: []Column{
				{Name: "income", Kind: Numeric, Labels: []string{"oops"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.columns...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.columns), f.NumCols())
		})
	}
}

func TestFrame_Drop(t *testing.T) {
	tests := []struct {
		name      string
		drop      []string
		wantNames []string
		wantErr   bool
	}{
		{
			name:      "prohibited attributes",
			drop:      []string{"gender", "race"},
			wantNames: []string{"income", "credit_score", "age", "loan_amount", "approved"},
		},
		{
			name:      "nothing to drop",
			drop:      nil,
			wantNames: []string{"income", "credit_score", "age", "loan_amount", "gender", "race", "approved"},
		},
		{
			name:      "middle column keeps order",
			drop:      []string{"age"},
			wantNames: []string{"income", "credit_score", "loan_amount", "gender", "race", "approved"},
		},
		{
			name:    "unknown column",
			drop:    []string{"zip_code"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Applicants().Drop(tt.drop...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNames, got.Names())
		})
	}
}

func TestFrame_DropDoesNotMutateReceiver(t *testing.T) {
	full := Applicants()
	reduced, err := full.Drop("gender", "race")
	require.NoError(t, err)

	assert.Equal(t, 7, full.NumCols())
	assert.True(t, full.Has("gender"))
	assert.True(t, full.Has("race"))
	assert.Equal(t, 5, reduced.NumCols())
	assert.False(t, reduced.Has("gender"))
}

func TestFrame_Matrix(t *testing.T) {
	f := Applicants()

	X, err := f.Matrix("income", "credit_score")
	require.NoError(t, err)
	require.Len(t, X, 5)
	assert.Equal(t, []float64{35000, 580}, X[0])
	assert.Equal(t, []float64{95000, 720}, X[3])

	_, err = f.Matrix("gender")
	require.Error(t, err)

	_, err = f.Matrix("zip_code")
	require.Error(t, err)
}

func TestFrame_Target(t *testing.T) {
	f := Applicants()

	y, err := f.Target("approved")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0, 1, 1}, y)

	// The returned slice is a copy, writes must not reach the frame.
	y[0] = 99
	again, err := f.Target("approved")
	require.NoError(t, err)
	assert.Equal(t, float64(0), again[0])

	_, err = f.Target("race")
	require.Error(t, err)
}

func TestFrame_NumericNames(t *testing.T) {
	assert.Equal(t,
		[]string{"income", "credit_score", "age", "loan_amount", "approved"},
		Applicants().NumericNames(),
	)
}
