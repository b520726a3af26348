package projections

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/ffb-cli/internal/cache"
	"github.com/sells-group/ffb-cli/internal/model"
	"github.com/sells-group/ffb-cli/pkg/ffb"
)

// Service fetches and aggregates projections, caching the fully aggregated,
// ranked, tiered result per scoring format.
type Service struct {
	Client *ffb.Client
	Cache  cache.Cache
	TTL    time.Duration
}

func cacheKey(format model.ScoringFormat) string {
	return "projections_" + format.Code()
}

// Fetch returns aggregated projections for the format. A cache hit bypasses
// normalization and aggregation entirely.
func (s *Service) Fetch(ctx context.Context, format model.ScoringFormat) ([]model.AggregatedPlayer, error) {
	key := cacheKey(format)
	if raw, ok := s.Cache.Get(key, s.TTL); ok {
		var players []model.AggregatedPlayer
		if err := json.Unmarshal(raw, &players); err == nil {
			return players, nil
		}
	}

	body, err := s.Client.Get(ctx, ffb.ProjectionsEndpoint, map[string]string{"scoring": format.Code()})
	if err != nil {
		return nil, err
	}
	entries, err := Normalize(body)
	if err != nil {
		return nil, err
	}
	players := Aggregate(entries, format)

	if err := s.Cache.Set(key, players); err != nil {
		zap.L().Warn("projections cache write failed", zap.Error(err))
	}
	return players, nil
}

// FilterPosition restricts the aggregated set to one position and reassigns
// dense ranks local to the filtered subset.
func FilterPosition(players []model.AggregatedPlayer, position string) []model.AggregatedPlayer {
	if position == "" {
		return players
	}
	var filtered []model.AggregatedPlayer
	for _, p := range players {
		if strings.EqualFold(p.Position, position) {
			filtered = append(filtered, p)
		}
	}
	Rerank(filtered)
	return filtered
}

// FilterTier keeps only players in the given tier. Ranks are left as they
// were so tier views still show overall position.
func FilterTier(players []model.AggregatedPlayer, tier int) []model.AggregatedPlayer {
	var filtered []model.AggregatedPlayer
	for _, p := range players {
		if p.Tier == tier {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
