package trade

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/ffb-cli/internal/cache"
	"github.com/sells-group/ffb-cli/internal/model"
	"github.com/sells-group/ffb-cli/internal/roster"
	"github.com/sells-group/ffb-cli/pkg/ffb"
)

const valuesCacheKey = "trade_values"

// FetchValues returns the scraped trade values, from cache when fresh.
func FetchValues(ctx context.Context, client *ffb.Client, c cache.Cache, ttl time.Duration) ([]model.TradeValue, error) {
	if raw, ok := c.Get(valuesCacheKey, ttl); ok {
		var values []model.TradeValue
		if err := json.Unmarshal(raw, &values); err == nil {
			return values, nil
		}
	}

	html, err := client.GetPage(ctx, ffb.TradeAnalyzerPage)
	if err != nil {
		return nil, err
	}
	values, err := ExtractValues(html)
	if err != nil {
		return nil, err
	}
	if err := c.Set(valuesCacheKey, values); err != nil {
		zap.L().Warn("trade values cache write failed", zap.Error(err))
	}
	return values, nil
}

// Analyze resolves every name on both sides against the value table and
// totals them. Any name that fails to resolve aborts the whole analysis —
// a partial trade value is worse than none.
func Analyze(give, get []string, values []model.TradeValue, threshold int) (model.TradeAnalysis, error) {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.PlayerName
	}

	resolveSide := func(queries []string) ([]model.TradeValue, float64, error) {
		var side []model.TradeValue
		var total float64
		for _, q := range queries {
			idx, err := roster.ResolveBest(q, names, threshold)
			if err != nil {
				return nil, 0, eris.Wrapf(err, "trade: could not find player %q", q)
			}
			side = append(side, values[idx])
			total += values[idx].Value
		}
		return side, total, nil
	}

	givePlayers, giveTotal, err := resolveSide(give)
	if err != nil {
		return model.TradeAnalysis{}, err
	}
	getPlayers, getTotal, err := resolveSide(get)
	if err != nil {
		return model.TradeAnalysis{}, err
	}

	return model.TradeAnalysis{
		GivePlayers: givePlayers,
		GetPlayers:  getPlayers,
		GiveTotal:   round1(giveTotal),
		GetTotal:    round1(getTotal),
		Difference:  round1(getTotal - giveTotal),
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
