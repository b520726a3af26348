// Package roster resolves free-text player names against a roster snapshot
// using fuzzy string matching.
package roster

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/rotisserie/eris"

	"github.com/sells-group/ffb-cli/internal/model"
)

// Default acceptance thresholds: search keeps loose matches for a ranked
// list, single-name resolution demands a tighter one.
const (
	DefaultSearchThreshold  = 55
	DefaultResolveThreshold = 60
)

// ErrNoMatch is returned when no candidate reaches the acceptance threshold
// for a name that must resolve.
var ErrNoMatch = eris.New("roster: no player matched")

// Options filters and bounds a search.
type Options struct {
	Position  string // exact match, case-insensitive
	Team      string // exact match, case-insensitive
	Limit     int
	Threshold int // 0 means DefaultSearchThreshold
}

// Score is the fuzzy match score between a query and a candidate name: the
// maximum of a token-order-insensitive ratio and a partial/substring ratio,
// both computed on lower-cased strings, 0-100.
func Score(query, name string) int {
	q := strings.ToLower(query)
	n := strings.ToLower(name)
	ts := fuzzy.TokenSortRatio(q, n)
	pr := fuzzy.PartialRatio(q, n)
	if pr > ts {
		return pr
	}
	return ts
}

// Search scores query against every candidate passing the position/team
// pre-filters, keeps scores at or above the threshold, and returns them
// sorted by descending score (stable by input order), truncated to Limit.
func Search(query string, players []model.Player, opts Options) []model.SearchResult {
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = DefaultSearchThreshold
	}

	var results []model.SearchResult
	for _, p := range players {
		if p.Name == "" {
			continue
		}
		// Filters are exclusive pre-filters: a candidate failing either never
		// reaches scoring.
		if opts.Position != "" && !strings.EqualFold(p.Position, opts.Position) {
			continue
		}
		if opts.Team != "" && !strings.EqualFold(p.Team, opts.Team) {
			continue
		}
		score := Score(query, p.Name)
		if score < threshold {
			continue
		}
		results = append(results, model.SearchResult{
			ID:       p.ID,
			Name:     p.Name,
			Position: p.Position,
			Team:     p.Team,
			Score:    score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results
}

// ResolveBest picks the single highest-scoring candidate name for query.
// It returns the candidate's index, or ErrNoMatch when nothing reaches the
// threshold.
func ResolveBest(query string, candidates []string, threshold int) (int, error) {
	if threshold <= 0 {
		threshold = DefaultResolveThreshold
	}
	best, bestScore := -1, 0
	for i, name := range candidates {
		if score := Score(query, name); score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 || bestScore < threshold {
		return 0, eris.Wrapf(ErrNoMatch, "roster: %q", query)
	}
	return best, nil
}
