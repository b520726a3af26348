// Package startsit shapes start/sit comparison requests and decodes the
// verdicts. The tool only runs in-season; the offseason sentinel is decoded
// into an unavailable result rather than an error.
package startsit

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/ffb-cli/internal/model"
	"github.com/sells-group/ffb-cli/pkg/ffb"
)

// Comparison bounds on the number of players.
const (
	MinPlayers = 2
	MaxPlayers = 4
)

// ErrPlayerCount is returned when the number of names is out of bounds.
var ErrPlayerCount = eris.Errorf("startsit: compare %d to %d players", MinPlayers, MaxPlayers)

// Slugify lowercases a player name, drops apostrophes and joins words with
// hyphens, matching the site's player URL slugs.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "’", "")
	return strings.Join(strings.Fields(s), "-")
}

// BuildURI joins player slugs with "-vs-" into the comparison page URI the
// API keys its saved queries on.
func BuildURI(names []string) string {
	slugs := make([]string, len(names))
	for i, n := range names {
		slugs[i] = Slugify(n)
	}
	return "/start-sit/" + strings.Join(slugs, "-vs-") + "/"
}

type request struct {
	URI          string   `json:"uri"`
	RankingsType string   `json:"rankings_type"`
	PlayerIDs    []string `json:"player_ids"`
}

// Compare posts a start/sit comparison for the given player names and
// decodes the verdict. Requires an authenticated client.
func Compare(ctx context.Context, client *ffb.Client, names []string) (model.StartSitResult, error) {
	if len(names) < MinPlayers || len(names) > MaxPlayers {
		return model.StartSitResult{}, ErrPlayerCount
	}

	body := request{
		URI:          BuildURI(names),
		RankingsType: "weekly",
		PlayerIDs:    []string{},
	}
	raw, err := client.Post(ctx, ffb.StartSitEndpoint, body)
	if err != nil {
		return model.StartSitResult{}, err
	}
	return Decode(raw)
}

// Decode interprets the start/sit response. During the offseason the API
// answers with the list sentinel ["error", "..."] instead of an object.
func Decode(raw []byte) (model.StartSitResult, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var sentinel []string
		if err := json.Unmarshal(raw, &sentinel); err == nil &&
			len(sentinel) >= 2 && sentinel[0] == "error" {
			return model.StartSitResult{Unavailable: true, Raw: raw}, nil
		}
		return model.StartSitResult{}, eris.Errorf("startsit: unexpected list response: %s", trimmed)
	}

	var result model.StartSitResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return model.StartSitResult{}, eris.Wrap(err, "startsit: decode response")
	}
	result.Raw = raw
	return result, nil
}
