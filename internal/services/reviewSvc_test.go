package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/kyramichel/Quantitative-Finance-XAI/internal/component"
	"github.com/kyramichel/Quantitative-Finance-XAI/internal/config"
)

func testCfg() config.Cfg {
	return config.Cfg{
		DataSet: component.DataSet{Target: "approved", Prohibited: []string{"gender", "race"}},
		Split:   component.Split{TestRatio: 0.2, Seed: 42},
		Model:   component.Model{LearningRate: 0.5, Epochs: 2000},
		Review:  component.Review{AccuracyThreshold: 0.75, AIRThreshold: 0.8},
		Report:  component.Report{Format: "human"},
	}
}

func TestReviewSvc_Run(t *testing.T) {
	logger := zaptest.NewLogger(t).Sugar()

	report, err := NewReviewSvc().Run(logger, testCfg())
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.True(t, strings.HasPrefix(report.RunID, "FairnessReview::"), "run id %q", report.RunID)
	assert.False(t, report.GeneratedAt.IsZero())

	assert.Equal(t, "builtin", report.Dataset.Source)
	assert.Equal(t, 5, report.Dataset.Rows)
	assert.Equal(t, []string{"gender", "race"}, report.Dataset.Dropped)
	assert.Equal(t,
		[]string{"income", "credit_score", "age", "loan_amount", "approved"},
		report.Dataset.Remaining,
	)

	require.NotNil(t, report.Correlations)
	assert.Equal(t, report.Dataset.Remaining, report.Correlations.Columns)
	assert.True(t, report.Correlations.Symmetric(1e-9))
	assert.True(t, report.Correlations.UnitDiagonal(1e-9))

	var variables []string
	for _, j := range report.Justifications {
		require.NotEmpty(t, j.Reason)
		variables = append(variables, j.Variable)
	}
	assert.Equal(t, []string{"income", "credit_score", "age", "loan_amount"}, variables)

	tr := report.Training
	assert.Equal(t, []string{"income", "credit_score", "age", "loan_amount"}, tr.Features)
	assert.Equal(t, 4, tr.TrainRows)
	assert.Equal(t, 1, tr.TestRows)
	assert.Contains(t, []float64{0, 1}, tr.Accuracy, "one held-out row scores all or nothing")
	assert.Contains(t, []float64{0, 1}, tr.Precision)
	assert.Contains(t, []float64{0, 1}, tr.Recall)
	assert.Equal(t, tr.Accuracy < 0.75, tr.MitigationNeeded)
}

func TestReviewSvc_GroupFindings(t *testing.T) {
	logger := zaptest.NewLogger(t).Sugar()

	report, err := NewReviewSvc().Run(logger, testCfg())
	require.NoError(t, err)
	require.Len(t, report.Fairness, 2)

	gender := report.Fairness[0]
	assert.Equal(t, "gender", gender.Attribute)
	assert.Equal(t, "female", gender.Majority)
	assert.Equal(t, "male", gender.Reference)
	require.Len(t, gender.Groups, 2)
	assert.True(t, gender.Groups[0].Flagged, "female is selected at a third of the male rate")
	assert.False(t, gender.Groups[1].Flagged)
	assert.Len(t, gender.Groups[0].SMD, 4, "one SMD per model feature")

	race := report.Fairness[1]
	assert.Equal(t, "race", race.Attribute)
	var flagged []string
	for _, g := range race.Groups {
		if g.Flagged {
			flagged = append(flagged, g.Group)
		}
	}
	assert.Equal(t, []string{"black", "asian"}, flagged)
}

func TestReviewSvc_ThresholdBranch(t *testing.T) {
	tests := []struct {
		name           string
		threshold      float64
		wantMitigation bool
		wantVerdict    string
	}{
		{
			// Accuracy never exceeds 1, so this always trips the branch.
			name:           "unreachable threshold",
			threshold:      1.01,
			wantMitigation: true,
			wantVerdict:    MitigationVerdict,
		},
		{
			// Accuracy is never below 0, so this never trips it.
			name:           "zero threshold",
			threshold:      0,
			wantMitigation: false,
			wantVerdict:    PassVerdict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zaptest.NewLogger(t).Sugar()
			cfg := testCfg()
			cfg.Review.AccuracyThreshold = tt.threshold

			report, err := NewReviewSvc().Run(logger, cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMitigation, report.Training.MitigationNeeded)
			assert.Equal(t, tt.wantVerdict, report.Training.Verdict)
		})
	}
}

func TestReviewSvc_Deterministic(t *testing.T) {
	logger := zaptest.NewLogger(t).Sugar()
	cfg := testCfg()

	first, err := NewReviewSvc().Run(logger, cfg)
	require.NoError(t, err)
	second, err := NewReviewSvc().Run(logger, cfg)
	require.NoError(t, err)

	assert.Equal(t, first.Training.Accuracy, second.Training.Accuracy)
	assert.Equal(t, first.Correlations, second.Correlations)
	assert.Equal(t, first.Fairness, second.Fairness)
	assert.NotEqual(t, first.RunID, second.RunID, "every run gets its own id")
}

func TestReviewSvc_UnknownProhibitedColumn(t *testing.T) {
	logger := zaptest.NewLogger(t).Sugar()
	cfg := testCfg()
	cfg.DataSet.Prohibited = []string{"gender", "zip_code"}

	_, err := NewReviewSvc().Run(logger, cfg)
	require.Error(t, err)
}

func TestReviewSvc_CSVDataset(t *testing.T) {
	logger := zaptest.NewLogger(t).Sugar()

	csv := "income,credit_score,age,loan_amount,gender,race,approved\n" +
		"35000,580,23,12000,female,black,0\n" +
		"52000,640,31,15000,male,white,1\n" +
		"28000,600,45,8000,female,asian,0\n" +
		"95000,720,38,25000,male,white,1\n" +
		"61000,680,29,18000,female,hispanic,1\n"
	path := filepath.Join(t.TempDir(), "applicants.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	cfg := testCfg()
	cfg.DataSet.Path = path

	report, err := NewReviewSvc().Run(logger, cfg)
	require.NoError(t, err)
	assert.Equal(t, path, report.Dataset.Source)
	assert.Equal(t, 5, report.Dataset.Rows)
	assert.Equal(t, 1, report.Training.TestRows)
	assert.Len(t, report.Fairness, 2)
}

func TestReviewSvc_MissingDatasetFile(t *testing.T) {
	logger := zaptest.NewLogger(t).Sugar()
	cfg := testCfg()
	cfg.DataSet.Path = filepath.Join(t.TempDir(), "nope.csv")

	_, err := NewReviewSvc().Run(logger, cfg)
	require.Error(t, err)
}
