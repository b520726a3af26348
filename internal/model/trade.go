package model

// TradeValue is one player's scraped trade value.
type TradeValue struct {
	PlayerName string  `json:"player_name"`
	Position   string  `json:"position"`
	Team       string  `json:"team"`
	Rank       int     `json:"rank"`
	Value      float64 `json:"value"`
}

// TradeAnalysis compares the total value of both sides of a proposed trade.
// A positive Difference means the "get" side wins.
type TradeAnalysis struct {
	GivePlayers []TradeValue `json:"give_players"`
	GetPlayers  []TradeValue `json:"get_players"`
	GiveTotal   float64      `json:"give_total"`
	GetTotal    float64      `json:"get_total"`
	Difference  float64      `json:"difference"`
}
