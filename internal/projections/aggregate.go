package projections

import (
	"math"
	"sort"

	"github.com/sells-group/ffb-cli/internal/model"
)

type accumulator struct {
	identity model.AggregatedPlayer
	count    float64
	sums     [9]float64
}

// Aggregate merges the per-analyst entries into one projection per player:
// stats averaged across analysts (a missing stat counts as zero, not as an
// excluded sample), fantasy points from the format's coefficients, a dense
// 1-based rank by descending points, and per-position tiers.
func Aggregate(entries []model.ProjectionEntry, format model.ScoringFormat) []model.AggregatedPlayer {
	coeffs, ok := scoringTable[format]
	if !ok {
		coeffs = scoringTable[model.DefaultScoring]
	}

	byID := map[string]*accumulator{}
	var order []string
	for _, e := range entries {
		id := string(e.PlayerID)
		if id == "" {
			continue
		}
		acc, ok := byID[id]
		if !ok {
			// Identity comes from the first entry seen per id; later entries
			// for the same id contribute only to averaging.
			acc = &accumulator{identity: model.AggregatedPlayer{
				PlayerID: id,
				Name:     e.Name,
				Position: e.Position,
				Team:     e.Team,
				ByeWeek:  int(e.ByeWeek),
			}}
			byID[id] = acc
			order = append(order, id)
		}
		acc.count++
		for i, v := range [9]model.FlexFloat{
			e.PassingYards, e.PassingTDs, e.Interceptions,
			e.RushingYards, e.RushingTDs,
			e.Receptions, e.ReceivingYds, e.ReceivingTDs,
			e.FumblesLost,
		} {
			acc.sums[i] += float64(v)
		}
	}

	players := make([]model.AggregatedPlayer, 0, len(order))
	for _, id := range order {
		acc := byID[id]
		p := acc.identity
		p.PassYds = round1(acc.sums[0] / acc.count)
		p.PassTDs = round1(acc.sums[1] / acc.count)
		p.Ints = round1(acc.sums[2] / acc.count)
		p.RushYds = round1(acc.sums[3] / acc.count)
		p.RushTDs = round1(acc.sums[4] / acc.count)
		p.Receptions = round1(acc.sums[5] / acc.count)
		p.RecYds = round1(acc.sums[6] / acc.count)
		p.RecTDs = round1(acc.sums[7] / acc.count)
		p.FumblesLost = round1(acc.sums[8] / acc.count)
		p.Points = round1(coeffs.points(p))
		players = append(players, p)
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Points > players[j].Points
	})
	Rerank(players)
	AssignTiers(players, format)
	return players
}

// Rerank reassigns dense 1-based ranks by current slice order. Callers use
// it after filtering the aggregated set down to one position.
func Rerank(players []model.AggregatedPlayer) {
	for i := range players {
		players[i].Rank = i + 1
	}
}

func round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}
