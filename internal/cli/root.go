// SPDX-License-Identifier: MIT

// Package cli wires the lvlda commands: train, evaluate, predict, run,
// inspect and history.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlda/config"
	"github.com/katalvlaran/lvlda/dataset"
	"github.com/katalvlaran/lvlda/history"
	"github.com/katalvlaran/lvlda/logging"
	"github.com/katalvlaran/lvlda/report"
)

// ErrHistoryDisabled is returned by the history command without a store path.
var ErrHistoryDisabled = errors.New("history store not configured (set --history or history.path)")

// app carries the per-invocation state shared by every command.
type app struct {
	cfgPath  string
	cfg      *config.Config
	log      *zap.Logger
	closeLog func()
	render   report.Renderer
}

// Run executes the command line args with the given output streams.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "lvlda",
		Short:         "Regularized two-class linear discriminant analysis",
		Long:          "lvlda trains, evaluates and applies a ridge-regularized two-class LDA model over delimited tabular data.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "", "config file (default ./lvlda.yaml when present)")
	pf.String("log-level", "info", "log level: debug|info|warn|error")
	pf.String("log-file", "", "rotated log file path")
	pf.String("history", "", "SQLite file recording evaluation runs")
	pf.Bool("plain", false, "render reports without colors or borders")

	root.AddCommand(
		newTrainCmd(a),
		newEvaluateCmd(a),
		newPredictCmd(a),
		newRunCmd(a),
		newInspectCmd(a),
		newHistoryCmd(a),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath, cmd.Flags())
	if err != nil {
		return err
	}
	lc := cfg.Logging()
	lc.Console = cmd.ErrOrStderr()
	log, closeLog, err := logging.New(lc)
	if err != nil {
		return err
	}
	plain, _ := cmd.Flags().GetBool("plain")

	a.cfg, a.log, a.closeLog = cfg, log, closeLog
	a.render = report.Renderer{Plain: plain}
	a.log.Debug("command start", zap.String("cmd", cmd.Name()), zap.String("config", a.cfgPath))

	return nil
}

func (a *app) close() {
	if a.closeLog != nil {
		a.closeLog()
	}
}

// addDataFlags registers the CSV layout flags bound to the data.* and labels.* keys.
func addDataFlags(fs *pflag.FlagSet) {
	fs.Bool("header", true, "first line is a header")
	fs.Int("label-column", -1, "raw index of the label column; negative counts from the end")
	fs.String("delimiter", ",", `field delimiter ("tab" for tabs)`)
	fs.Bool("strict", false, "fail on non-numeric cells instead of reading them as 0")
	fs.String("positive", "P", "label marker of the positive class")
	fs.String("negative", "H", "label marker of the negative class")
	fs.String("unknown-label", "negative", "unknown label marker policy: negative|reject")
}

// addTrainFlags registers the train.* flags.
func addTrainFlags(fs *pflag.FlagSet, withSplit bool) {
	fs.Float64("lambda", 1e-4, "ridge term added to the scatter diagonal")
	fs.Float64("pivot-tolerance", 1e-12, "smallest pivot magnitude accepted by the inverter")
	if withSplit {
		fs.Float64("split", 0.8, "share of rows used for training")
		fs.Uint64("seed", 42, "shuffle seed for the train/test split")
	}
}

// readLabeled loads a training table and reports recovered cells.
func (a *app) readLabeled(path string) (*dataset.Dataset, error) {
	opts, err := a.cfg.DatasetOptions()
	if err != nil {
		return nil, err
	}
	ds, err := dataset.ReadLabeledFile(path, opts)
	if err != nil {
		return nil, err
	}
	a.logIssues(path, ds)
	neg, pos := ds.ClassCounts()
	a.log.Info("dataset loaded",
		zap.String("path", path), zap.Int("rows", ds.Len()), zap.Int("features", ds.Dim()),
		zap.Int("negative", neg), zap.Int("positive", pos))

	return ds, nil
}

// readUnlabeled loads a table of records to score.
func (a *app) readUnlabeled(path string) (*dataset.Dataset, error) {
	opts, err := a.cfg.DatasetOptions()
	if err != nil {
		return nil, err
	}
	ds, err := dataset.ReadUnlabeledFile(path, opts)
	if err != nil {
		return nil, err
	}
	a.logIssues(path, ds)

	return ds, nil
}

func (a *app) logIssues(path string, ds *dataset.Dataset) {
	for _, iss := range ds.Issues {
		a.log.Warn("cell recovered", zap.String("path", path), zap.Stringer("issue", iss))
	}
}

// openHistory returns nil when no store is configured.
func (a *app) openHistory() (*history.Store, error) {
	if a.cfg.History.Path == "" {
		return nil, nil
	}
	s, err := history.Open(a.cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	return s, nil
}

// record stores run when a history store is configured.
func (a *app) record(ctx context.Context, run history.Run) error {
	s, err := a.openHistory()
	if err != nil || s == nil {
		return err
	}
	defer s.Close()

	run, err = s.Record(ctx, run)
	if err != nil {
		return err
	}
	a.log.Info("run recorded", zap.String("id", run.ID.String()), zap.String("store", a.cfg.History.Path))

	return nil
}
