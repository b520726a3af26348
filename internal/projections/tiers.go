package projections

import "github.com/sells-group/ffb-cli/internal/model"

// Tier breakpoints per scoring format and position: descending fractions of
// the position's top score at which a tier ends. A player's tier is one plus
// the count of breakpoints strictly above their own fraction.
var tierBreakpoints = map[model.ScoringFormat]map[string][]float64{
	model.ScoringStandard: {
		"QB":  {0.95, 0.89, 0.82, 0.74, 0.65},
		"RB":  {0.92, 0.82, 0.71, 0.60, 0.50, 0.40},
		"WR":  {0.92, 0.83, 0.73, 0.62, 0.52, 0.42},
		"TE":  {0.90, 0.75, 0.60, 0.48, 0.38},
		"K":   {0.95, 0.88, 0.80},
		"DST": {0.93, 0.84, 0.74},
	},
	model.ScoringHalf: {
		"QB":  {0.95, 0.89, 0.82, 0.74, 0.65},
		"RB":  {0.92, 0.83, 0.72, 0.61, 0.51, 0.41},
		"WR":  {0.93, 0.84, 0.74, 0.64, 0.54, 0.44},
		"TE":  {0.90, 0.76, 0.62, 0.50, 0.40},
		"K":   {0.95, 0.88, 0.80},
		"DST": {0.93, 0.84, 0.74},
	},
	model.ScoringPPR: {
		"QB":  {0.95, 0.89, 0.82, 0.74, 0.65},
		"RB":  {0.92, 0.84, 0.73, 0.62, 0.52, 0.42},
		"WR":  {0.94, 0.85, 0.76, 0.66, 0.56, 0.46},
		"TE":  {0.91, 0.77, 0.64, 0.52, 0.42},
		"K":   {0.95, 0.88, 0.80},
		"DST": {0.93, 0.84, 0.74},
	},
}

// AssignTiers sets each player's tier from the format's breakpoint table.
func AssignTiers(players []model.AggregatedPlayer, format model.ScoringFormat) {
	table, ok := tierBreakpoints[format]
	if !ok {
		table = tierBreakpoints[model.DefaultScoring]
	}
	TiersFromBreakpoints(players, table)
}

// TiersFromBreakpoints assigns tiers per position group against an explicit
// breakpoint table. When a position has no breakpoints, or its top score is
// zero or negative, everyone in the group lands in tier 1.
func TiersFromBreakpoints(players []model.AggregatedPlayer, table map[string][]float64) {
	top := map[string]float64{}
	for _, p := range players {
		if p.Points > top[p.Position] {
			top[p.Position] = p.Points
		}
	}
	for i := range players {
		players[i].Tier = tierFor(players[i], top[players[i].Position], table[players[i].Position])
	}
}

func tierFor(p model.AggregatedPlayer, topPoints float64, breakpoints []float64) int {
	if len(breakpoints) == 0 || topPoints <= 0 {
		return 1
	}
	fraction := p.Points / topPoints
	tier := 1
	for _, bp := range breakpoints {
		if bp > fraction {
			tier++
		}
	}
	return tier
}
