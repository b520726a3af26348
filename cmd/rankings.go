package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/ffb-cli/internal/model"
	"github.com/sells-group/ffb-cli/internal/projections"
	"github.com/sells-group/ffb-cli/internal/render"
)

var rankingsCmd = &cobra.Command{
	Use:   "rankings [position]",
	Short: "Show player rankings",
	Long:  "Aggregated analyst rankings with tiers, by scoring format. Requires login.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		players, err := fetchProjections(cmd, args)
		if err != nil {
			return err
		}

		if tier, _ := cmd.Flags().GetInt("tier"); tier > 0 {
			players = projections.FilterTier(players, tier)
		}
		players = clipLimit(cmd, players)
		if len(players) == 0 {
			fmt.Println("No rankings found for the given filters.")
			return nil
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return render.JSON(os.Stdout, players)
		}
		render.Rankings(os.Stdout, players)
		return nil
	},
}

// fetchProjections resolves the scoring flag, fetches the aggregated
// projections, and applies an optional position filter. Shared between the
// rankings and projections commands, which differ only in display.
func fetchProjections(cmd *cobra.Command, args []string) ([]model.AggregatedPlayer, error) {
	ctx := cmd.Context()

	scoring, _ := cmd.Flags().GetString("scoring")
	format, err := model.ParseScoringFormat(scoring)
	if err != nil {
		return nil, fail(err)
	}

	client, err := newClient(true)
	if err != nil {
		return nil, fail(err)
	}
	c, err := newCache()
	if err != nil {
		return nil, fail(err)
	}

	svc := &projections.Service{Client: client, Cache: c, TTL: projectionsTTL()}
	players, err := svc.Fetch(ctx, format)
	if err != nil {
		return nil, fail(err)
	}

	if len(args) > 0 {
		if err := validPosition(args[0]); err != nil {
			return nil, fail(err)
		}
		players = projections.FilterPosition(players, args[0])
	}
	return players, nil
}

// validPosition checks a position filter against the known position codes.
func validPosition(pos string) error {
	for _, p := range model.ValidPositions {
		if strings.EqualFold(p, pos) {
			return nil
		}
	}
	return eris.Errorf("unknown position %q (use one of %s)", pos, strings.Join(model.ValidPositions, ", "))
}

func clipLimit(cmd *cobra.Command, players []model.AggregatedPlayer) []model.AggregatedPlayer {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit > 0 && len(players) > limit {
		return players[:limit]
	}
	return players
}

func init() {
	rankingsCmd.Flags().StringP("scoring", "s", string(model.DefaultScoring), "scoring format (half/ppr/standard)")
	rankingsCmd.Flags().IntP("limit", "n", 25, "max results")
	rankingsCmd.Flags().Int("tier", 0, "filter by tier")
	rankingsCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(rankingsCmd)
}
