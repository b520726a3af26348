package main

import (
	"os"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/ffb-cli/internal/render"
	"github.com/sells-group/ffb-cli/internal/trade"
)

var errBothSides = eris.New("trade: both --give and --get need at least one player name")

var tradeCmd = &cobra.Command{
	Use:   "trade --give <names> --get <names>",
	Short: "Analyze a trade by value totals",
	Long:  "Fuzzy-matches comma-separated player names against the scraped trade values and compares side totals. A positive net means the get side wins. Requires login.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		give, _ := cmd.Flags().GetString("give")
		get, _ := cmd.Flags().GetString("get")
		giveNames := splitNames(give)
		getNames := splitNames(get)
		if len(giveNames) == 0 || len(getNames) == 0 {
			return fail(errBothSides)
		}

		client, err := newClient(true)
		if err != nil {
			return fail(err)
		}
		c, err := newCache()
		if err != nil {
			return fail(err)
		}

		ttl := time.Duration(cfg.Cache.TradeTTLMins) * time.Minute
		values, err := trade.FetchValues(ctx, client, c, ttl)
		if err != nil {
			return fail(err)
		}

		analysis, err := trade.Analyze(giveNames, getNames, values, cfg.Resolver.ResolveThreshold)
		if err != nil {
			return fail(err)
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return render.JSON(os.Stdout, analysis)
		}
		render.Trade(os.Stdout, analysis)
		return nil
	},
}

// splitNames splits a comma-separated name list, dropping empty segments.
func splitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

func init() {
	tradeCmd.Flags().String("give", "", `players to give (comma-separated, e.g. "Kelce, Lamb")`)
	tradeCmd.Flags().String("get", "", `players to get (comma-separated, e.g. "Chase")`)
	tradeCmd.Flags().Bool("json", false, "output as JSON")
	_ = tradeCmd.MarkFlagRequired("give")
	_ = tradeCmd.MarkFlagRequired("get")
	rootCmd.AddCommand(tradeCmd)
}
