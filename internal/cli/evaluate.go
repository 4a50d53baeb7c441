// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlda/dataset"
	"github.com/katalvlaran/lvlda/eval"
	"github.com/katalvlaran/lvlda/history"
	"github.com/katalvlaran/lvlda/lda"
)

// heldOut is the outcome of a split-fit-score pass.
type heldOut struct {
	model       *lda.Model
	train, test *dataset.Dataset
	report      eval.Report
}

// splitAndScore splits ds, fits on the train part (or uses preloaded) and
// evaluates on the test part.
func (a *app) splitAndScore(ds *dataset.Dataset, preloaded *lda.Model) (*heldOut, error) {
	train, test, err := dataset.Split(ds, a.cfg.Train.Split, a.cfg.Train.Seed)
	if err != nil {
		return nil, err
	}
	m := preloaded
	if m == nil {
		if m, err = lda.Fit(train, a.cfg.TrainOptions(a.log)...); err != nil {
			return nil, err
		}
	}
	pred, err := m.PredictAll(test.X)
	if err != nil {
		return nil, err
	}
	rep, err := eval.Evaluate(test.Y, pred)
	if err != nil {
		return nil, err
	}
	a.log.Info("evaluated",
		zap.Int("train", train.Len()), zap.Int("test", test.Len()),
		zap.Float64("accuracy", rep.Accuracy), zap.Float64("f1", rep.F1))

	return &heldOut{model: m, train: train, test: test, report: rep}, nil
}

func (a *app) historyRun(dataPath, modelPath string, h *heldOut) history.Run {
	return history.Run{
		DataPath:  dataPath,
		ModelPath: modelPath,
		Lambda:    a.cfg.Train.Lambda,
		Seed:      a.cfg.Train.Seed,
		Split:     a.cfg.Train.Split,
		Dim:       h.model.Dim(),
		TrainRows: h.train.Len(),
		TestRows:  h.test.Len(),
		Report:    h.report,
	}
}

func newEvaluateCmd(a *app) *cobra.Command {
	var dataPath string
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a held-out split of a labeled table",
		Long: "evaluate shuffles the table with the configured seed, fits on the train share and " +
			"reports the confusion matrix on the rest. With --model the saved model is scored instead of a fresh fit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.readLabeled(dataPath)
			if err != nil {
				return err
			}
			var (
				preloaded *lda.Model
				modelPath string
			)
			if cmd.Flags().Changed("model") {
				modelPath = a.cfg.Model.Path
				if preloaded, err = lda.LoadFile(modelPath); err != nil {
					return err
				}
			}
			h, err := a.splitAndScore(ds, preloaded)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), a.render.Evaluation(h.report))

			return a.record(cmd.Context(), a.historyRun(dataPath, modelPath, h))
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&dataPath, "data", "d", "", "labeled table")
	fs.StringP("model", "m", "lda_model.txt", "evaluate this saved model instead of fitting")
	addDataFlags(fs)
	addTrainFlags(fs, true)
	_ = cmd.MarkFlagRequired("data")

	return cmd
}
