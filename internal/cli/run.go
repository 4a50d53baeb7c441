// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlda/lda"
)

func newRunCmd(a *app) *cobra.Command {
	var dataPath, inputPath, outputPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Split, fit, save, evaluate and optionally classify new records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.readLabeled(dataPath)
			if err != nil {
				return err
			}
			h, err := a.splitAndScore(ds, nil)
			if err != nil {
				return err
			}
			if err = lda.SaveFile(a.cfg.Model.Path, h.model); err != nil {
				return err
			}
			a.log.Info("model saved", zap.String("path", a.cfg.Model.Path))

			out := cmd.OutOrStdout()
			fmt.Fprint(out, a.render.Evaluation(h.report))
			if err = a.record(cmd.Context(), a.historyRun(dataPath, "", h)); err != nil {
				return err
			}
			if inputPath == "" {
				return nil
			}

			return a.predictFile(h.model, inputPath, outputPath, out)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&dataPath, "data", "d", "", "labeled training table")
	fs.StringVarP(&inputPath, "input", "i", "", "table of new records to classify (optional)")
	fs.StringVarP(&outputPath, "output", "o", "predictions.csv", "output table for --input")
	fs.StringP("model", "m", "lda_model.txt", "output model file")
	addDataFlags(fs)
	addTrainFlags(fs, true)
	_ = cmd.MarkFlagRequired("data")

	return cmd
}
