package model

// Player is one entry in the roster snapshot used for fuzzy search.
type Player struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team"`
	Status   string `json:"status,omitempty"`
}

// SearchResult is a roster player with its fuzzy match score attached.
type SearchResult struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team"`
	Score    int    `json:"score"`
}
