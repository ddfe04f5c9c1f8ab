package models

// Roster player statuses in team views.
const (
	StatusActive     = "active"
	StatusNotTracked = "not_in_olympics"
)

// TeamPlayer is one roster slot in a fantasy team view. Players without a
// national-team assignment keep nil stats and StatusNotTracked.
type TeamPlayer struct {
	Name    string       `json:"name"`
	Country string       `json:"country,omitempty"`
	Pos     string       `json:"pos"`
	Status  string       `json:"status"`
	Skater  *SkaterStats `json:"skater_stats,omitempty"`
	Goalie  *GoalieStats `json:"goalie_stats,omitempty"`
}

// GoalieAggregate is a team's summed goalie line with the qualification gate
// applied to the composite save percentage.
type GoalieAggregate struct {
	Wins         int     `json:"wins"`
	Saves        int     `json:"saves"`
	ShotsAgainst int     `json:"shots_against"`
	SavePct      float64 `json:"save_pct"`
	Qualified    bool    `json:"qualified"`
}

// TeamTotals holds the six roto category values for one team.
type TeamTotals struct {
	Goals       int     `json:"goals"`
	Assists     int     `json:"assists"`
	PlusMinus   int     `json:"plus_minus"`
	PIM         int     `json:"pim"`
	GoalieWins  int     `json:"goalie_wins"`
	SavePct     float64 `json:"save_pct"`
	SVQualified bool    `json:"sv_qualified"`
}

// TeamRecord is one fantasy roster with its derived totals.
type TeamRecord struct {
	Name        string          `json:"name"`
	Players     []*TeamPlayer   `json:"players"`
	GoalieStats GoalieAggregate `json:"goalie_stats"`
	Totals      TeamTotals      `json:"totals"`
}

// CategoryRank is one team's placement in one roto category. Ties share the
// lowest rank among the tied entries; roto points split the summed positional
// points evenly across them.
type CategoryRank struct {
	Value      float64 `json:"value"`
	Rank       int     `json:"rank"`
	RotoPoints float64 `json:"roto_points"`
	Qualified  *bool   `json:"qualified,omitempty"`
}

// TeamStanding is one team's full roto line: six category ranks, the summed
// points, and the strict positional overall rank.
type TeamStanding struct {
	Team            string                  `json:"team"`
	Categories      map[string]CategoryRank `json:"categories"`
	TotalRotoPoints float64                 `json:"total_roto_points"`
	Rank            int                     `json:"rank"`
}
