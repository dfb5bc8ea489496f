package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/denguerisk/internal/features"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Print the feature columns in model order",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		for i, c := range features.Columns() {
			fmt.Fprintf(w, "%2d  %s\n", i, c)
		}
	},
}
