package projections

import "github.com/sells-group/ffb-cli/internal/model"

// coefficients convert averaged stat production into fantasy points. The
// reception value is the only coefficient that varies across formats.
type coefficients struct {
	PassYds   float64
	PassTD    float64
	Int       float64
	RushYds   float64
	RushTD    float64
	Reception float64
	RecYds    float64
	RecTD     float64
	Fumble    float64
}

var scoringTable = map[model.ScoringFormat]coefficients{
	model.ScoringStandard: {
		PassYds: 0.04, PassTD: 4, Int: -2,
		RushYds: 0.1, RushTD: 6,
		Reception: 0, RecYds: 0.1, RecTD: 6,
		Fumble: -2,
	},
	model.ScoringHalf: {
		PassYds: 0.04, PassTD: 4, Int: -2,
		RushYds: 0.1, RushTD: 6,
		Reception: 0.5, RecYds: 0.1, RecTD: 6,
		Fumble: -2,
	},
	model.ScoringPPR: {
		PassYds: 0.04, PassTD: 4, Int: -2,
		RushYds: 0.1, RushTD: 6,
		Reception: 1.0, RecYds: 0.1, RecTD: 6,
		Fumble: -2,
	},
}

func (c coefficients) points(p model.AggregatedPlayer) float64 {
	return p.PassYds*c.PassYds +
		p.PassTDs*c.PassTD +
		p.Ints*c.Int +
		p.RushYds*c.RushYds +
		p.RushTDs*c.RushTD +
		p.Receptions*c.Reception +
		p.RecYds*c.RecYds +
		p.RecTDs*c.RecTD +
		p.FumblesLost*c.Fumble
}
