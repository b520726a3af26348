package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/ffb-cli/internal/model"
	"github.com/sells-group/ffb-cli/internal/render"
)

var projectionsCmd = &cobra.Command{
	Use:   "projections [position]",
	Short: "Show detailed stat projections",
	Long:  "Same aggregated data as rankings, displayed stat-by-stat. Requires login.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		players, err := fetchProjections(cmd, args)
		if err != nil {
			return err
		}

		players = clipLimit(cmd, players)
		if len(players) == 0 {
			fmt.Println("No projections found for the given filters.")
			return nil
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return render.JSON(os.Stdout, players)
		}
		render.Projections(os.Stdout, players)
		return nil
	},
}

func init() {
	projectionsCmd.Flags().StringP("scoring", "s", string(model.DefaultScoring), "scoring format (half/ppr/standard)")
	projectionsCmd.Flags().IntP("limit", "n", 25, "max results")
	projectionsCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(projectionsCmd)
}
