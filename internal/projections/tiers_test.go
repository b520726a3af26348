package projections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/ffb-cli/internal/model"
)

func rb(id string, points float64) model.AggregatedPlayer {
	return model.AggregatedPlayer{PlayerID: id, Position: "RB", Points: points}
}

func TestTiersFromBreakpointsScenario(t *testing.T) {
	players := []model.AggregatedPlayer{
		rb("top", 100), // fraction 1.0
		rb("a", 95),    // 0.95
		rb("b", 80),    // 0.8
		rb("c", 60),    // 0.6
		rb("d", 40),    // 0.4
	}
	TiersFromBreakpoints(players, map[string][]float64{"RB": {0.9, 0.7, 0.5}})

	want := map[string]int{"top": 1, "a": 1, "b": 2, "c": 3, "d": 4}
	for _, p := range players {
		assert.Equal(t, want[p.PlayerID], p.Tier, "player %s at %.0f points", p.PlayerID, p.Points)
	}
}

func TestTiersMonotonicInFraction(t *testing.T) {
	players := []model.AggregatedPlayer{
		rb("1", 120), rb("2", 117), rb("3", 90), rb("4", 74),
		rb("5", 61), rb("6", 48), rb("7", 20), rb("8", 5),
	}
	AssignTiers(players, model.ScoringHalf)

	for i := 1; i < len(players); i++ {
		assert.GreaterOrEqual(t, players[i].Tier, players[i-1].Tier,
			"a lower point fraction never yields a lower tier number")
	}
	assert.Equal(t, 1, players[0].Tier)
}

func TestTiersNoBreakpointsForPosition(t *testing.T) {
	players := []model.AggregatedPlayer{
		{PlayerID: "1", Position: "LS", Points: 50},
		{PlayerID: "2", Position: "LS", Points: 1},
	}
	TiersFromBreakpoints(players, map[string][]float64{})
	for _, p := range players {
		assert.Equal(t, 1, p.Tier)
	}
}

func TestTiersZeroTopScore(t *testing.T) {
	players := []model.AggregatedPlayer{rb("1", 0), rb("2", 0)}
	TiersFromBreakpoints(players, map[string][]float64{"RB": {0.9, 0.5}})
	for _, p := range players {
		assert.Equal(t, 1, p.Tier, "non-positive top score collapses the group to tier 1")
	}
}

func TestTiersAreGroupedByPosition(t *testing.T) {
	players := []model.AggregatedPlayer{
		{PlayerID: "qb1", Position: "QB", Points: 300},
		{PlayerID: "rb1", Position: "RB", Points: 150},
		{PlayerID: "rb2", Position: "RB", Points: 60}, // 0.4 of RB top, not of QB top
	}
	TiersFromBreakpoints(players, map[string][]float64{
		"QB": {0.9},
		"RB": {0.9, 0.5},
	})
	require.Equal(t, 1, players[0].Tier)
	assert.Equal(t, 1, players[1].Tier)
	assert.Equal(t, 3, players[2].Tier)
}

func TestAssignTiersKnownFormats(t *testing.T) {
	for _, f := range []model.ScoringFormat{model.ScoringHalf, model.ScoringPPR, model.ScoringStandard} {
		players := []model.AggregatedPlayer{rb("1", 100), rb("2", 30)}
		AssignTiers(players, f)
		assert.Equal(t, 1, players[0].Tier)
		assert.Greater(t, players[1].Tier, 1, "format %s", f)
	}
}
