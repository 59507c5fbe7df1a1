package services

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/kyramichel/Quantitative-Finance-XAI/internal/log"
	"github.com/kyramichel/Quantitative-Finance-XAI/internal/model"
)

// ReportSvc renders a review report to Out in one of the supported
// formats: human (default), json or yaml.
type ReportSvc struct {
	Out io.Writer
}

var reportSvc *ReportSvc

func NewReportSvc() *ReportSvc {
	if reportSvc == nil {
		return &ReportSvc{Out: os.Stdout}
	}
	return reportSvc
}

func (svc *ReportSvc) Render(logger *zap.SugaredLogger, report *model.Report, format string) error {
	switch strings.ToLower(format) {
	case "json":
		return svc.renderJSON(report)
	case "yaml":
		return svc.renderYAML(report)
	case "", "human":
		return svc.renderHuman(report)
	default:
		logger.Warnf("Unknown report format %q, falling back to human 🔔", format)
		return svc.renderHuman(report)
	}
}

func (svc *ReportSvc) renderJSON(report *model.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(svc.writer(), string(data))
	return nil
}

func (svc *ReportSvc) renderYAML(report *model.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	fmt.Fprint(svc.writer(), string(data))
	return nil
}

func (svc *ReportSvc) renderHuman(report *model.Report) error {
	w := svc.writer()

	rule := strings.Repeat("=", 64)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, log.Colorize(" FAIRNESS REVIEW", log.Cyan))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Run ID      : %s\n", report.RunID)
	fmt.Fprintf(w, "Generated   : %s\n", report.GeneratedAt.Format(time.RFC3339))
	env := report.Environment
	fmt.Fprintf(w, "Host        : %s (%s %s, %d CPUs, %s)\n", env.Hostname, env.OS, env.Platform, env.CPUs, env.GoVersion)

	svc.printDataset(w, report.Dataset)
	svc.printCorrelations(w, report)
	svc.printJustifications(w, report.Justifications)
	svc.printTraining(w, report.Training)
	svc.printFairness(w, report.Fairness)
	return nil
}

func (svc *ReportSvc) printDataset(w io.Writer, ds model.DatasetSummary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, log.Colorize("DATASET", log.Cyan))
	fmt.Fprintf(w, "  Source    : %s\n", ds.Source)
	fmt.Fprintf(w, "  Rows      : %d\n", ds.Rows)
	fmt.Fprintf(w, "  Columns   : %s\n", strings.Join(ds.Columns, ", "))
	fmt.Fprintf(w, "  Dropped   : %s\n", strings.Join(ds.Dropped, ", "))
	fmt.Fprintf(w, "  Remaining : %s\n", strings.Join(ds.Remaining, ", "))
}

func (svc *ReportSvc) printCorrelations(w io.Writer, report *model.Report) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, log.Colorize("CORRELATIONS (Pearson)", log.Cyan))
	m := report.Correlations
	if m == nil || len(m.Columns) == 0 {
		fmt.Fprintln(w, "  (no numeric columns)")
		return
	}
	fmt.Fprintf(w, "  %-15s", "")
	for _, name := range m.Columns {
		fmt.Fprintf(w, "%-15s", name)
	}
	fmt.Fprintln(w)
	for i, name := range m.Columns {
		fmt.Fprintf(w, "  %-15s", name)
		for j := range m.Columns {
			fmt.Fprintf(w, "%-15s", fmt.Sprintf("%+.4f", m.At(i, j)))
		}
		fmt.Fprintln(w)
	}
}

func (svc *ReportSvc) printJustifications(w io.Writer, justifications []model.Justification) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, log.Colorize("VARIABLE JUSTIFICATIONS", log.Cyan))
	for _, j := range justifications {
		fmt.Fprintf(w, "  %-15s %s\n", j.Variable, j.Reason)
	}
}

func (svc *ReportSvc) printTraining(w io.Writer, tr model.TrainingSummary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, log.Colorize("MODEL", log.Cyan))
	fmt.Fprintf(w, "  Features    : %s\n", strings.Join(tr.Features, ", "))
	fmt.Fprintf(w, "  Target      : %s\n", tr.Target)
	fmt.Fprintf(w, "  Split       : %d train / %d test (ratio %.2f, seed %d)\n", tr.TrainRows, tr.TestRows, tr.TestRatio, tr.Seed)
	fmt.Fprintf(w, "  Classifier  : logistic regression (learning rate %g, epochs %d)\n", tr.LearningRate, tr.Epochs)
	fmt.Fprintf(w, "  Accuracy    : %.4f (threshold %.2f)\n", tr.Accuracy, tr.AccuracyThreshold)
	fmt.Fprintf(w, "  Precision   : %.4f (recall %.4f, f1 %.4f)\n", tr.Precision, tr.Recall, tr.F1)
	verdict := log.Colorize(tr.Verdict, log.Green)
	if tr.MitigationNeeded {
		verdict = log.Colorize(tr.Verdict, log.Red)
	}
	fmt.Fprintf(w, "  Verdict     : %s\n", verdict)
}

func (svc *ReportSvc) printFairness(w io.Writer, findings []model.AttributeFindings) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, log.Colorize("GROUP FAIRNESS", log.Cyan))
	for _, af := range findings {
		fmt.Fprintf(w, "  %s [majority : %s, reference : %s]\n", af.Attribute, af.Majority, af.Reference)
		fmt.Fprintf(w, "    %-12s %6s %10s %7s %7s %7s  %s\n", "group", "count", "favorable", "rate", "DI", "AIR", "flag")
		for _, g := range af.Groups {
			flag := "-"
			if g.Flagged {
				flag = log.Colorize("below 4/5", log.Red)
			}
			fmt.Fprintf(w, "    %-12s %6d %10d %7.3f %7.3f %7.3f  %s\n",
				g.Group, g.Count, g.Favorable, g.SelectionRate, g.DisparateImpact, g.AdverseImpactRatio, flag)
		}
		for _, g := range af.Groups {
			parts := make([]string, 0, len(g.SMD))
			for _, smd := range g.SMD {
				parts = append(parts, fmt.Sprintf("%s %+.3f", smd.Feature, smd.Value))
			}
			fmt.Fprintf(w, "    SMD %s vs rest : %s\n", g.Group, strings.Join(parts, ", "))
		}
	}
}

func (svc *ReportSvc) writer() io.Writer {
	if svc.Out == nil {
		return os.Stdout
	}
	return svc.Out
}
