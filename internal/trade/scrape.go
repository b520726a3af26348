// Package trade scrapes the site's trade-value page and compares the two
// sides of a proposed trade.
package trade

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/sells-group/ffb-cli/internal/model"
)

// ErrNoTradeData is returned when the trade-value page does not carry the
// embedded analyzer data, or carries it empty.
var ErrNoTradeData = eris.New("trade: trade analyzer data not found on page")

var dataAssignment = regexp.MustCompile(`window\.tool\.tradeAnalyzer\.data\s*=\s*\{`)

type rawTradePlayer struct {
	Name            string          `json:"name"`
	FantasyPosition string          `json:"fantasy_position"`
	Team            string          `json:"team"`
	Rank            model.FlexInt   `json:"rank"`
	FantasyPoints   model.FlexFloat `json:"fantasy_points"`
}

type analyzerData struct {
	Projections        []rawTradePlayer `json:"projections"`
	DynastyProjections []rawTradePlayer `json:"dynastyProjections"`
}

// ExtractValues pulls trade values out of the analyzer page HTML. The data
// lives in an inline script as `window.tool.tradeAnalyzer.data = {...};`;
// the object is recovered by brace matching from the assignment.
func ExtractValues(html string) ([]model.TradeValue, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, eris.Wrap(err, "trade: parse page html")
	}

	var blob string
	doc.Find("script:not([src])").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		loc := dataAssignment.FindStringIndex(text)
		if loc == nil {
			return true
		}
		start := loc[1] - 1 // position of the opening brace
		if obj, ok := matchBraces(text[start:]); ok {
			blob = obj
			return false
		}
		return true
	})
	if blob == "" {
		return nil, ErrNoTradeData
	}

	var data analyzerData
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		return nil, eris.Wrap(err, "trade: decode analyzer data")
	}

	// In-season the data sits under "projections"; during the offseason the
	// analyzer switches to dynasty values.
	players := data.Projections
	if len(players) == 0 {
		players = data.DynastyProjections
	}
	if len(players) == 0 {
		return nil, eris.Wrap(ErrNoTradeData, "analyzer data has no player values")
	}

	values := make([]model.TradeValue, 0, len(players))
	for _, p := range players {
		values = append(values, model.TradeValue{
			PlayerName: p.Name,
			Position:   p.FantasyPosition,
			Team:       p.Team,
			Rank:       int(p.Rank),
			Value:      float64(p.FantasyPoints),
		})
	}
	return values, nil
}

// matchBraces returns the balanced {...} prefix of s, which must start at an
// opening brace. Braces inside JSON string literals are honored.
func matchBraces(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}
