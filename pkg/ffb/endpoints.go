package ffb

// JSON API endpoints, relative to the API base.
const (
	// Public.
	PlayerSearchEndpoint = "/ffb/v1/player/search_data"
	PostsEndpoint        = "/wp/v2/posts"

	// Premium, require a captured session.
	AuthVerifyEndpoint  = "/ffb/v1/auth"
	ProjectionsEndpoint = "/ffb/v1/udk/projections"
	StartSitEndpoint    = "/ffb/v1/start-sit/save_query"
)

// HTML pages, relative to the site base. These are scraped, not parsed as
// JSON, and authenticate with cookies alone.
const (
	TradeAnalyzerPage = "/trade-value-calculator/"
)
