// Package render formats command output: terminal tables by default, indented
// JSON behind the shared --json flag.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rotisserie/eris"

	"github.com/sells-group/ffb-cli/internal/model"
)

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return eris.Wrap(err, "render: marshal json")
	}
	if _, err := fmt.Fprintln(w, string(out)); err != nil {
		return eris.Wrap(err, "render: write json")
	}
	return nil
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

// SearchResults renders fuzzy player search matches.
func SearchResults(w io.Writer, results []model.SearchResult) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Name", "Pos", "Team", "Score"})
	for _, r := range results {
		t.AppendRow(table.Row{r.Name, r.Position, r.Team, r.Score})
	}
	t.Render()
}

// Rankings renders the compact rank/tier view of aggregated projections.
func Rankings(w io.Writer, players []model.AggregatedPlayer) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Rank", "Tier", "Name", "Pos", "Team", "Bye", "Points"})
	for _, p := range players {
		t.AppendRow(table.Row{p.Rank, p.Tier, p.Name, p.Position, p.Team, bye(p.ByeWeek), p.Points})
	}
	t.Render()
}

// Projections renders aggregated projections with the full stat line.
func Projections(w io.Writer, players []model.AggregatedPlayer) {
	t := newTable(w)
	t.AppendHeader(table.Row{
		"Rank", "Name", "Pos", "Team", "Points",
		"PaYd", "PaTD", "Int", "RuYd", "RuTD", "Rec", "ReYd", "ReTD", "Fum",
	})
	for _, p := range players {
		t.AppendRow(table.Row{
			p.Rank, p.Name, p.Position, p.Team, p.Points,
			p.PassYds, p.PassTDs, p.Ints, p.RushYds, p.RushTDs,
			p.Receptions, p.RecYds, p.RecTDs, p.FumblesLost,
		})
	}
	t.Render()
}

// Trade renders both sides of a trade with totals and the net swing.
func Trade(w io.Writer, a model.TradeAnalysis) {
	side := func(title string, players []model.TradeValue, total float64) {
		t := newTable(w)
		t.SetTitle(title)
		t.AppendHeader(table.Row{"Name", "Pos", "Team", "Rank", "Value"})
		for _, p := range players {
			t.AppendRow(table.Row{p.PlayerName, p.Position, p.Team, p.Rank, p.Value})
		}
		t.AppendFooter(table.Row{"", "", "", "Total", total})
		t.Render()
	}
	side("You Give", a.GivePlayers, a.GiveTotal)
	side("You Get", a.GetPlayers, a.GetTotal)

	verdict := "Even trade"
	switch {
	case a.Difference > 0:
		verdict = fmt.Sprintf("You win by %.1f", a.Difference)
	case a.Difference < 0:
		verdict = fmt.Sprintf("You lose by %.1f", -a.Difference)
	}
	fmt.Fprintf(w, "Net: %+.1f (%s)\n", a.Difference, verdict)
}

// StartSit renders the comparison verdicts plus the analysis blurb, if any.
func StartSit(w io.Writer, r model.StartSitResult) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Player", "Pos", "Team", "Matchup", "Verdict"})
	for _, p := range r.Players {
		t.AppendRow(table.Row{p.Name, p.Position, p.Team, p.Matchup, p.Verdict})
	}
	t.Render()
	if r.Analysis != "" {
		fmt.Fprintln(w, r.Analysis)
	}
}

// News renders the article feed.
func News(w io.Writer, articles []model.Article) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Date", "Title", "Link"})
	for _, a := range articles {
		t.AppendRow(table.Row{a.Date, a.Title, a.Link})
	}
	t.Render()
}

func bye(week int) string {
	if week == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", week)
}
