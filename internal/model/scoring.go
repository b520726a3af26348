package model

import (
	"strings"

	"github.com/rotisserie/eris"
)

// ScoringFormat names a coefficient set converting raw statistical
// production into fantasy points.
type ScoringFormat string

const (
	ScoringHalf     ScoringFormat = "half"
	ScoringPPR      ScoringFormat = "ppr"
	ScoringStandard ScoringFormat = "standard"
)

// DefaultScoring is used when no format flag is given.
const DefaultScoring = ScoringHalf

// ParseScoringFormat maps a user-supplied format name onto a known format.
func ParseScoringFormat(s string) (ScoringFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "half", "half-ppr":
		return ScoringHalf, nil
	case "ppr", "full":
		return ScoringPPR, nil
	case "standard", "std":
		return ScoringStandard, nil
	}
	return "", eris.Errorf("model: unknown scoring format %q (want half, ppr, or standard)", s)
}

// Code returns the upstream API's identifier for the format.
func (f ScoringFormat) Code() string {
	switch f {
	case ScoringPPR:
		return "PPR"
	case ScoringStandard:
		return "STD"
	default:
		return "HALF"
	}
}

// ValidPositions lists the position codes accepted by position filters.
var ValidPositions = []string{"QB", "RB", "WR", "TE", "K", "DST"}
