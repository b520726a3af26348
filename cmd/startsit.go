package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/ffb-cli/internal/render"
	"github.com/sells-group/ffb-cli/internal/startsit"
)

var startSitCmd = &cobra.Command{
	Use:   "start-sit <player> <player> [player...]",
	Short: "Compare 2-4 players for a start/sit call",
	Long:  "Posts a start/sit comparison and shows the verdicts. Only available during the season. Requires login.",
	Args:  cobra.RangeArgs(startsit.MinPlayers, startsit.MaxPlayers),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		client, err := newClient(true)
		if err != nil {
			return fail(err)
		}

		result, err := startsit.Compare(ctx, client, args)
		if err != nil {
			return fail(err)
		}
		if result.Unavailable {
			fmt.Println("Start/Sit tool is not available right now (offseason). It opens the week before kickoff.")
			return nil
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return render.JSON(os.Stdout, result)
		}
		render.StartSit(os.Stdout, result)
		return nil
	},
}

func init() {
	startSitCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(startSitCmd)
}
