// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlda/lda"
)

func newInspectCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a saved model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := lda.LoadFile(a.cfg.Model.Path)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), a.render.Model(m, top, nil))

			return nil
		},
	}
	cmd.Flags().StringP("model", "m", "lda_model.txt", "saved model")
	cmd.Flags().IntVar(&top, "top", 10, "number of largest weights to list")

	return cmd
}
