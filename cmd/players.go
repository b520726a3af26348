package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/ffb-cli/internal/render"
	"github.com/sells-group/ffb-cli/internal/roster"
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Player search",
}

var playersSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search players by name",
	Long:  "Scores the query against the roster snapshot with fuzzy matching. No login required.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		client, err := newClient(false)
		if err != nil {
			return fail(err)
		}
		c, err := newCache()
		if err != nil {
			return fail(err)
		}

		players, err := roster.Fetch(ctx, client, c, playersTTL())
		if err != nil {
			return fail(err)
		}

		position, _ := cmd.Flags().GetString("position")
		team, _ := cmd.Flags().GetString("team")
		limit, _ := cmd.Flags().GetInt("limit")
		if position != "" {
			if err := validPosition(position); err != nil {
				return fail(err)
			}
		}

		results := roster.Search(args[0], players, roster.Options{
			Position:  position,
			Team:      team,
			Limit:     limit,
			Threshold: cfg.Resolver.SearchThreshold,
		})
		if len(results) == 0 {
			fmt.Println("No matching players found.")
			return nil
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return render.JSON(os.Stdout, results)
		}
		render.SearchResults(os.Stdout, results)
		return nil
	},
}

func init() {
	playersSearchCmd.Flags().StringP("position", "p", "", "filter by position (QB, RB, WR, TE, K, DST)")
	playersSearchCmd.Flags().StringP("team", "t", "", "filter by team abbreviation")
	playersSearchCmd.Flags().IntP("limit", "n", 10, "max results")
	playersSearchCmd.Flags().Bool("json", false, "output as JSON")

	playersCmd.AddCommand(playersSearchCmd)
	rootCmd.AddCommand(playersCmd)
}
