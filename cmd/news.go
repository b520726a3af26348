package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sells-group/ffb-cli/internal/news"
	"github.com/sells-group/ffb-cli/internal/render"
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Show recent articles",
	Long:  "Latest articles from the public feed. No login required.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		client, err := newClient(false)
		if err != nil {
			return fail(err)
		}
		c, err := newCache()
		if err != nil {
			return fail(err)
		}

		limit, _ := cmd.Flags().GetInt("limit")
		ttl := time.Duration(cfg.Cache.NewsTTLMins) * time.Minute
		articles, err := news.Fetch(ctx, client, c, ttl, limit)
		if err != nil {
			return fail(err)
		}
		if len(articles) == 0 {
			fmt.Println("No news articles found.")
			return nil
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return render.JSON(os.Stdout, articles)
		}
		render.News(os.Stdout, articles)
		return nil
	},
}

func init() {
	newsCmd.Flags().IntP("limit", "n", 10, "number of articles")
	newsCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(newsCmd)
}
