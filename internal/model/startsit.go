package model

import "encoding/json"

// StartSitPlayer is one side of a start/sit comparison.
type StartSitPlayer struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team"`
	Matchup  string `json:"matchup"`
	Verdict  string `json:"verdict"`
}

// StartSitResult is the decoded start/sit verdict. Unavailable is set when
// the upstream tool is closed (offseason); Raw preserves the payload for
// JSON output.
type StartSitResult struct {
	Unavailable bool             `json:"unavailable,omitempty"`
	Players     []StartSitPlayer `json:"players"`
	Analysis    string           `json:"analysis,omitempty"`
	Raw         json.RawMessage  `json:"-"`
}
