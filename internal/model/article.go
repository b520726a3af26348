package model

// Article is a news post with markup stripped down to display text.
type Article struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Link    string `json:"link"`
	Excerpt string `json:"excerpt"`
}
