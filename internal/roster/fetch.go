package roster

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/ffb-cli/internal/cache"
	"github.com/sells-group/ffb-cli/internal/model"
	"github.com/sells-group/ffb-cli/pkg/ffb"
)

const snapshotCacheKey = "player_search_data"

// rawPlayer tolerates the feed's shifting field names.
type rawPlayer struct {
	ID       model.FlexString `json:"player_id"`
	Name     string           `json:"name"`
	Pos      string           `json:"pos"`
	Position string           `json:"position"`
	Team     string           `json:"team"`
	Status   string           `json:"status"`
}

func (r rawPlayer) position() string {
	if r.Pos != "" {
		return r.Pos
	}
	return r.Position
}

// Fetch returns the roster snapshot used for fuzzy search, from cache when
// fresh. The snapshot endpoint is public.
func Fetch(ctx context.Context, client *ffb.Client, c cache.Cache, ttl time.Duration) ([]model.Player, error) {
	if raw, ok := c.Get(snapshotCacheKey, ttl); ok {
		var players []model.Player
		if err := json.Unmarshal(raw, &players); err == nil {
			return players, nil
		}
		// Corrupt cache entry: fall through to a fresh fetch.
	}

	body, err := client.Get(ctx, ffb.PlayerSearchEndpoint, nil)
	if err != nil {
		return nil, err
	}
	players, err := decodeSnapshot(body)
	if err != nil {
		return nil, err
	}
	if err := c.Set(snapshotCacheKey, players); err != nil {
		zap.L().Warn("roster cache write failed", zap.Error(err))
	}
	return players, nil
}

// decodeSnapshot handles both the bare list and the {"error":"","data":[…]}
// envelope the endpoint has been seen returning.
func decodeSnapshot(body []byte) ([]model.Player, error) {
	var envelope struct {
		Data []rawPlayer `json:"data"`
	}
	var raw []rawPlayer
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 {
		raw = envelope.Data
	} else if err := json.Unmarshal(body, &raw); err != nil {
		return nil, eris.Wrap(err, "roster: decode snapshot")
	}

	players := make([]model.Player, 0, len(raw))
	for _, r := range raw {
		if r.Name == "" {
			continue
		}
		players = append(players, model.Player{
			ID:       string(r.ID),
			Name:     r.Name,
			Position: r.position(),
			Team:     r.Team,
			Status:   r.Status,
		})
	}
	return players, nil
}
