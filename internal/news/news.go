// Package news fetches the site's public article feed.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/ffb-cli/internal/cache"
	"github.com/sells-group/ffb-cli/internal/model"
	"github.com/sells-group/ffb-cli/pkg/ffb"
)

const excerptMaxRunes = 200

type rendered struct {
	Rendered string `json:"rendered"`
}

type rawPost struct {
	Title   rendered `json:"title"`
	Date    string   `json:"date"`
	Link    string   `json:"link"`
	Excerpt rendered `json:"excerpt"`
}

// Fetch returns the latest articles, from cache when fresh. The posts
// endpoint is public; no session is required.
func Fetch(ctx context.Context, client *ffb.Client, c cache.Cache, ttl time.Duration, limit int) ([]model.Article, error) {
	key := fmt.Sprintf("news_%d", limit)
	if raw, ok := c.Get(key, ttl); ok {
		var articles []model.Article
		if err := json.Unmarshal(raw, &articles); err == nil {
			return articles, nil
		}
	}

	raw, err := client.Get(ctx, ffb.PostsEndpoint, map[string]string{
		"per_page": strconv.Itoa(limit),
		"_fields":  "title,date,link,excerpt",
	})
	if err != nil {
		return nil, err
	}

	var posts []rawPost
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, eris.Wrap(err, "news: decode posts")
	}

	articles := make([]model.Article, 0, len(posts))
	for _, p := range posts {
		articles = append(articles, model.Article{
			Title:   stripHTML(p.Title.Rendered),
			Date:    clipDate(p.Date),
			Link:    p.Link,
			Excerpt: clipRunes(stripHTML(p.Excerpt.Rendered), excerptMaxRunes),
		})
	}

	if err := c.Set(key, articles); err != nil {
		zap.L().Warn("news cache write failed", zap.Error(err))
	}
	return articles, nil
}

// stripHTML drops tags and resolves entities, leaving whitespace-trimmed
// plain text. Rendered WP fields arrive as HTML fragments.
func stripHTML(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}

func clipDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

func clipRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
