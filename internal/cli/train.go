// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlda/lda"
)

func newTrainCmd(a *app) *cobra.Command {
	var dataPath string
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fit a model on a labeled table and save it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.readLabeled(dataPath)
			if err != nil {
				return err
			}
			m, err := lda.Fit(ds, a.cfg.TrainOptions(a.log)...)
			if err != nil {
				return err
			}
			if err = lda.SaveFile(a.cfg.Model.Path, m); err != nil {
				return err
			}
			a.log.Info("model saved", zap.String("path", a.cfg.Model.Path), zap.Int("features", m.Dim()))

			fmt.Fprint(cmd.OutOrStdout(), a.render.Model(m, 10, ds.FeatureNames()))
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&dataPath, "data", "d", "", "labeled training table")
	fs.StringP("model", "m", "lda_model.txt", "output model file")
	addDataFlags(fs)
	addTrainFlags(fs, false)
	_ = cmd.MarkFlagRequired("data")

	return cmd
}
