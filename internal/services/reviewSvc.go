package services

import (
	"os"
	"runtime"
	"time"

	goInfo "github.com/matishsiao/goInfo"
	nanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"

	"github.com/kyramichel/Quantitative-Finance-XAI/internal/config"
	"github.com/kyramichel/Quantitative-Finance-XAI/internal/dataset"
	"github.com/kyramichel/Quantitative-Finance-XAI/internal/fairness"
	"github.com/kyramichel/Quantitative-Finance-XAI/internal/ml"
	"github.com/kyramichel/Quantitative-Finance-XAI/internal/model"
	"github.com/kyramichel/Quantitative-Finance-XAI/internal/stats"
)

// Verdict messages of the accuracy threshold branch.
const (
	MitigationVerdict = "Potential disparate impact detected, review mitigation strategies before deployment."
	PassVerdict       = "Accuracy meets the review threshold, no mitigation required at this stage."
)

type ReviewSvc struct{}

var reviewSvc *ReviewSvc

func NewReviewSvc() *ReviewSvc {
	if reviewSvc == nil {
		return &ReviewSvc{}
	}
	return reviewSvc
}

// Run executes the review steps in order and assembles the report:
// load the applicant records, remove the prohibited attributes, compute
// the correlation matrix, document the variable justifications, fit and
// score the approval model, then measure group fairness on the attributes
// that were removed.
func (svc *ReviewSvc) Run(logger *zap.SugaredLogger, cfg config.Cfg) (*model.Report, error) {
	full, source, err := svc.loadFrame(logger, cfg)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		RunID:       newRunID(logger),
		GeneratedAt: time.Now().UTC(),
		Environment: hostEnvironment(logger),
	}

	reduced, err := full.Drop(cfg.DataSet.Prohibited...)
	if err != nil {
		logger.Errorf("Failed to remove the prohibited attributes ❌ %v", err)
		return nil, err
	}
	logger.Infof("Removed prohibited attributes ✅ %v", cfg.DataSet.Prohibited)

	report.Dataset = model.DatasetSummary{
		Source:    source,
		Rows:      full.NumRows(),
		Columns:   full.Names(),
		Dropped:   cfg.DataSet.Prohibited,
		Remaining: reduced.Names(),
	}

	report.Correlations, err = svc.correlations(logger, reduced)
	if err != nil {
		return nil, err
	}

	report.Justifications = justifications(logger, reduced, cfg.DataSet.Target)

	report.Training, err = svc.trainAndScore(logger, reduced, cfg)
	if err != nil {
		return nil, err
	}

	// Group metrics need the prohibited attributes, so they run on the
	// full frame the drop was derived from.
	report.Fairness, err = svc.fairnessFindings(logger, full, cfg)
	if err != nil {
		return nil, err
	}

	logger.Infof("Fairness review completed ✅ [run id : %s]", report.RunID)
	return report, nil
}

func (svc *ReviewSvc) loadFrame(logger *zap.SugaredLogger, cfg config.Cfg) (*dataset.Frame, string, error) {
	if cfg.DataSet.Path == "" {
		frame := dataset.Applicants()
		logger.Infof("Using the built-in applicant records ✅ [%d rows, %d columns]", frame.NumRows(), frame.NumCols())
		return frame, "builtin", nil
	}
	frame, err := dataset.Load(cfg.DataSet.Path)
	if err != nil {
		logger.Errorf("Failed to load applicant records ❌ %v", err)
		return nil, "", err
	}
	logger.Infof("Loaded applicant records from %s ✅ [%d rows, %d columns]", cfg.DataSet.Path, frame.NumRows(), frame.NumCols())
	return frame, cfg.DataSet.Path, nil
}

func (svc *ReviewSvc) correlations(logger *zap.SugaredLogger, frame *dataset.Frame) (*stats.Matrix, error) {
	names := frame.NumericNames()
	columns := make([][]float64, 0, len(names))
	for _, name := range names {
		col, err := frame.Column(name)
		if err != nil {
			return nil, err
		}
		columns = append(columns, col.Floats)
	}
	matrix, err := stats.CorrelationMatrix(names, columns)
	if err != nil {
		logger.Errorf("Failed to compute the correlation matrix ❌ %v", err)
		return nil, err
	}
	logger.Infof("Computed the Pearson correlation matrix ✅ [%d numeric columns]", len(names))
	return matrix, nil
}

// justifications collects the documented business reasons of the surviving
// columns, in column order. Map iteration order never reaches the report.
func justifications(logger *zap.SugaredLogger, frame *dataset.Frame, target string) []model.Justification {
	documented := dataset.Justifications()
	out := make([]model.Justification, 0, frame.NumCols())
	for _, name := range frame.Names() {
		if name == target {
			continue
		}
		reason, ok := documented[name]
		if !ok {
			logger.Warnf("No documented justification for variable %q 🔔", name)
			continue
		}
		out = append(out, model.Justification{Variable: name, Reason: reason})
	}
	logger.Infof("Documented variable justifications ✅ [%d variables]", len(out))
	return out
}

func (svc *ReviewSvc) trainAndScore(logger *zap.SugaredLogger, frame *dataset.Frame, cfg config.Cfg) (model.TrainingSummary, error) {
	var summary model.TrainingSummary

	features := make([]string, 0, frame.NumCols())
	for _, name := range frame.NumericNames() {
		if name != cfg.DataSet.Target {
			features = append(features, name)
		}
	}

	X, err := frame.Matrix(features...)
	if err != nil {
		return summary, err
	}
	y, err := frame.Target(cfg.DataSet.Target)
	if err != nil {
		logger.Errorf("Failed to extract the target column ❌ %v", err)
		return summary, err
	}

	XTrain, XTest, yTrain, yTest := ml.TrainTestSplit(X, y, cfg.Split.TestRatio, cfg.Split.Seed)
	logger.Infof("Split the records ✅ [train : %d, test : %d, ratio : %.2f, seed : %d]",
		len(XTrain), len(XTest), cfg.Split.TestRatio, cfg.Split.Seed)

	// Raw dollar scales stall gradient descent, standardize on the
	// training rows only.
	scaler := ml.NewStandardScaler()
	XTrainStd := scaler.FitTransform(XTrain)
	XTestStd := scaler.Transform(XTest)

	clf := ml.NewLogisticRegression(len(features), cfg.Model.LearningRate, cfg.Model.Epochs)
	if err := clf.Fit(XTrainStd, yTrain); err != nil {
		logger.Errorf("Failed to fit the logistic regression ❌ %v", err)
		return summary, err
	}
	logger.Infof("Fitted the logistic regression ✅ [learning rate : %g, epochs : %d]",
		cfg.Model.LearningRate, cfg.Model.Epochs)

	preds := clf.Predict(XTestStd)
	accuracy := ml.Accuracy(yTest, preds)
	precision, recall, f1 := ml.PrecisionRecallF1(yTest, preds)

	summary = model.TrainingSummary{
		Features:          features,
		Target:            cfg.DataSet.Target,
		TrainRows:         len(XTrain),
		TestRows:          len(XTest),
		TestRatio:         cfg.Split.TestRatio,
		Seed:              cfg.Split.Seed,
		LearningRate:      cfg.Model.LearningRate,
		Epochs:            cfg.Model.Epochs,
		Accuracy:          accuracy,
		Precision:         precision,
		Recall:            recall,
		F1:                f1,
		AccuracyThreshold: cfg.Review.AccuracyThreshold,
		MitigationNeeded:  accuracy < cfg.Review.AccuracyThreshold,
	}
	if summary.MitigationNeeded {
		summary.Verdict = MitigationVerdict
		logger.Warnf("%s 🔔 [accuracy %.4f < %.2f]", MitigationVerdict, accuracy, cfg.Review.AccuracyThreshold)
	} else {
		summary.Verdict = PassVerdict
		logger.Infof("%s ✅ [accuracy %.4f >= %.2f]", PassVerdict, accuracy, cfg.Review.AccuracyThreshold)
	}
	return summary, nil
}

func (svc *ReviewSvc) fairnessFindings(logger *zap.SugaredLogger, frame *dataset.Frame, cfg config.Cfg) ([]model.AttributeFindings, error) {
	y, err := frame.Target(cfg.DataSet.Target)
	if err != nil {
		return nil, err
	}

	numeric := make([]string, 0, frame.NumCols())
	for _, name := range frame.NumericNames() {
		if name != cfg.DataSet.Target {
			numeric = append(numeric, name)
		}
	}

	out := make([]model.AttributeFindings, 0, len(cfg.DataSet.Prohibited))
	for _, attr := range cfg.DataSet.Prohibited {
		col, err := frame.Column(attr)
		if err != nil {
			return nil, err
		}
		if col.Kind != dataset.Categorical {
			logger.Warnf("Prohibited attribute %q is not categorical, skipping its group metrics 🔔", attr)
			continue
		}

		groupStats, err := fairness.GroupRates(col.Labels, y)
		if err != nil {
			logger.Errorf("Failed to compute group rates for %q ❌ %v", attr, err)
			return nil, err
		}
		majority, diRatios := fairness.DisparateImpact(groupStats, cfg.Review.AIRThreshold)
		reference, airRatios := fairness.AdverseImpactRatio(groupStats, cfg.Review.AIRThreshold)

		findings := model.AttributeFindings{
			Attribute: attr,
			Majority:  majority,
			Reference: reference,
			Groups:    make([]model.GroupFinding, 0, len(groupStats)),
		}
		for i, gs := range groupStats {
			finding := model.GroupFinding{
				Group:              gs.Group,
				Count:              gs.Count,
				Favorable:          gs.Favorable,
				SelectionRate:      gs.Rate,
				DisparateImpact:    diRatios[i].Value,
				AdverseImpactRatio: airRatios[i].Value,
				Flagged:            airRatios[i].Flagged,
				SMD:                make([]model.FeatureSMD, 0, len(numeric)),
			}
			mask := fairness.GroupMask(col.Labels, gs.Group)
			for _, feature := range numeric {
				fcol, err := frame.Column(feature)
				if err != nil {
					return nil, err
				}
				finding.SMD = append(finding.SMD, model.FeatureSMD{
					Feature: feature,
					Value:   fairness.StandardizedMeanDifference(fcol.Floats, mask),
				})
			}
			if finding.Flagged {
				logger.Warnf("Four-fifths rule concern on %s = %s 🔔 [AIR %.3f < %.2f]",
					attr, gs.Group, finding.AdverseImpactRatio, cfg.Review.AIRThreshold)
			}
			findings.Groups = append(findings.Groups, finding)
		}
		out = append(out, findings)
		logger.Infof("Computed group fairness metrics for %q ✅ [majority : %s, reference : %s]", attr, majority, reference)
	}
	return out, nil
}

func newRunID(logger *zap.SugaredLogger) string {
	id, err := nanoid.New()
	if err != nil {
		logger.Errorf("Unable to auto-generate run id ⛔ %v", err)
		return "FairnessReview"
	}
	return "FairnessReview::" + id
}

func hostEnvironment(logger *zap.SugaredLogger) model.Environment {
	env := model.Environment{
		OS:        runtime.GOOS,
		Platform:  runtime.GOARCH,
		CPUs:      runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}
	if host, err := os.Hostname(); err == nil {
		env.Hostname = host
	}
	gi, err := goInfo.GetInfo()
	if err != nil {
		logger.Warnf("Unable to collect host info 🔔 %v", err)
		return env
	}
	env.Hostname = gi.Hostname
	env.Platform = gi.Platform
	env.OS = gi.OS
	env.Kernel = gi.Kernel
	env.Core = gi.Core
	env.CPUs = gi.CPUs
	return env
}
