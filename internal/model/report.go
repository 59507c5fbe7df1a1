package model

import (
	"time"

	"github.com/kyramichel/Quantitative-Finance-XAI/internal/stats"
)

// Report is the full payload produced by one fairness review run.
type Report struct {
	RunID       string      `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time   `json:"generated_at" yaml:"generated_at"`
	Environment Environment `json:"environment" yaml:"environment"`

	Dataset        DatasetSummary      `json:"dataset" yaml:"dataset"`
	Correlations   *stats.Matrix       `json:"correlations" yaml:"correlations"`
	Justifications []Justification     `json:"justifications" yaml:"justifications"`
	Training       TrainingSummary     `json:"training" yaml:"training"`
	Fairness       []AttributeFindings `json:"fairness" yaml:"fairness"`
}

// Environment records where the review ran, for reproducibility.
type Environment struct {
	Hostname  string `json:"hostname" yaml:"hostname"`
	Platform  string `json:"platform" yaml:"platform"`
	OS        string `json:"os" yaml:"os"`
	Kernel    string `json:"kernel" yaml:"kernel"`
	Core      string `json:"core" yaml:"core"`
	CPUs      int    `json:"cpus" yaml:"cpus"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// DatasetSummary describes the record set under review and the
// prohibited-attribute drop applied to it.
type DatasetSummary struct {
	Source    string   `json:"source" yaml:"source"`
	Rows      int      `json:"rows" yaml:"rows"`
	Columns   []string `json:"columns" yaml:"columns"`
	Dropped   []string `json:"dropped" yaml:"dropped"`
	Remaining []string `json:"remaining" yaml:"remaining"`
}

// Justification is one documented business reason for keeping a variable.
type Justification struct {
	Variable string `json:"variable" yaml:"variable"`
	Reason   string `json:"reason" yaml:"reason"`
}

// TrainingSummary captures the split/fit/score step and its verdict.
type TrainingSummary struct {
	Features          []string `json:"features" yaml:"features"`
	Target            string   `json:"target" yaml:"target"`
	TrainRows         int      `json:"train_rows" yaml:"train_rows"`
	TestRows          int      `json:"test_rows" yaml:"test_rows"`
	TestRatio         float64  `json:"test_ratio" yaml:"test_ratio"`
	Seed              int64    `json:"seed" yaml:"seed"`
	LearningRate      float64  `json:"learning_rate" yaml:"learning_rate"`
	Epochs            int      `json:"epochs" yaml:"epochs"`
	Accuracy          float64  `json:"accuracy" yaml:"accuracy"`
	Precision         float64  `json:"precision" yaml:"precision"`
	Recall            float64  `json:"recall" yaml:"recall"`
	F1                float64  `json:"f1" yaml:"f1"`
	AccuracyThreshold float64  `json:"accuracy_threshold" yaml:"accuracy_threshold"`
	MitigationNeeded  bool     `json:"mitigation_needed" yaml:"mitigation_needed"`
	Verdict           string   `json:"verdict" yaml:"verdict"`
}

// FeatureSMD is the standardized mean difference of one numeric feature
// between a group and the rest of the records.
type FeatureSMD struct {
	Feature string  `json:"feature" yaml:"feature"`
	Value   float64 `json:"value" yaml:"value"`
}

// GroupFinding is the fairness measurement of one group of a protected
// attribute.
type GroupFinding struct {
	Group              string       `json:"group" yaml:"group"`
	Count              int          `json:"count" yaml:"count"`
	Favorable          int          `json:"favorable" yaml:"favorable"`
	SelectionRate      float64      `json:"selection_rate" yaml:"selection_rate"`
	DisparateImpact    float64      `json:"disparate_impact" yaml:"disparate_impact"`
	AdverseImpactRatio float64      `json:"adverse_impact_ratio" yaml:"adverse_impact_ratio"`
	Flagged            bool         `json:"flagged" yaml:"flagged"`
	SMD                []FeatureSMD `json:"smd" yaml:"smd"`
}

// AttributeFindings groups the findings of one protected attribute.
type AttributeFindings struct {
	Attribute string         `json:"attribute" yaml:"attribute"`
	Majority  string         `json:"majority" yaml:"majority"`
	Reference string         `json:"reference" yaml:"reference"`
	Groups    []GroupFinding `json:"groups" yaml:"groups"`
}
