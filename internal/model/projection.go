package model

// ProjectionEntry is one analyst's raw stat projection for a player. The
// projections endpoint emits several entries per player, one per contributing
// analyst, keyed by player_id.
type ProjectionEntry struct {
	PlayerID FlexString `json:"player_id"`
	Name     string     `json:"name"`
	Position string     `json:"position"`
	Team     string     `json:"team"`
	ByeWeek  FlexInt    `json:"bye_week"`

	PassingYards  FlexFloat `json:"passing_yards"`
	PassingTDs    FlexFloat `json:"passing_tds"`
	Interceptions FlexFloat `json:"interceptions"`
	RushingYards  FlexFloat `json:"rushing_yards"`
	RushingTDs    FlexFloat `json:"rushing_tds"`
	Receptions    FlexFloat `json:"receptions"`
	ReceivingYds  FlexFloat `json:"receiving_yards"`
	ReceivingTDs  FlexFloat `json:"receiving_tds"`
	FumblesLost   FlexFloat `json:"fumbles_lost"`
}

// AggregatedPlayer is one player's averaged projection across analysts, with
// computed fantasy points, dense rank, and position tier.
type AggregatedPlayer struct {
	PlayerID string `json:"player_id"`
	Rank     int    `json:"rank"`
	Name     string `json:"player_name"`
	Position string `json:"position"`
	Team     string `json:"team"`
	Tier     int    `json:"tier"`
	ByeWeek  int    `json:"bye_week,omitempty"`

	Points float64 `json:"points"`

	PassYds     float64 `json:"pass_yds"`
	PassTDs     float64 `json:"pass_tds"`
	Ints        float64 `json:"ints"`
	RushYds     float64 `json:"rush_yds"`
	RushTDs     float64 `json:"rush_tds"`
	Receptions  float64 `json:"receptions"`
	RecYds      float64 `json:"rec_yds"`
	RecTDs      float64 `json:"rec_tds"`
	FumblesLost float64 `json:"fumbles_lost"`
}
