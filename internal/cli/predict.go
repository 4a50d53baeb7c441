// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlda/dataset"
	"github.com/katalvlaran/lvlda/lda"
)

// predictFile scores every row of inputPath with m and writes the echoed
// table with a predicted column to outputPath, or to stdout when it is "".
func (a *app) predictFile(m *lda.Model, inputPath, outputPath string, stdout io.Writer) error {
	ds, err := a.readUnlabeled(inputPath)
	if err != nil {
		return err
	}
	if ds.Dim() != m.Dim() {
		return fmt.Errorf("%s has %d features, model expects %d: %w", inputPath, ds.Dim(), m.Dim(), lda.ErrDimensionMismatch)
	}
	pred, err := m.PredictAll(ds.X)
	if err != nil {
		return err
	}
	opts, err := a.cfg.DatasetOptions()
	if err != nil {
		return err
	}
	if outputPath == "" {
		in, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("open %q: %w: %w", inputPath, dataset.ErrIO, err)
		}
		defer in.Close()
		err = dataset.WritePredictions(stdout, in, pred, opts)
		if err != nil {
			return err
		}
	} else if err = dataset.WritePredictionsFile(outputPath, inputPath, pred, opts); err != nil {
		return err
	}

	pos := 0
	for _, p := range pred {
		if p == dataset.Positive {
			pos++
		}
	}
	a.log.Info("predictions written",
		zap.String("input", inputPath), zap.String("output", outputPath),
		zap.Int("rows", len(pred)), zap.Int("positive", pos))

	return nil
}

func newPredictCmd(a *app) *cobra.Command {
	var inputPath, outputPath string
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Classify unlabeled records with a saved model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := lda.LoadFile(a.cfg.Model.Path)
			if err != nil {
				return err
			}

			return a.predictFile(m, inputPath, outputPath, cmd.OutOrStdout())
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&inputPath, "input", "i", "", "table of records to classify")
	fs.StringVarP(&outputPath, "output", "o", "", "output table (stdout when empty)")
	fs.StringP("model", "m", "lda_model.txt", "saved model")
	addDataFlags(fs)
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
