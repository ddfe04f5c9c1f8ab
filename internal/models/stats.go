package models

import "encoding/json"

// Player roles as they appear in stat events.
const (
	RoleSkater = "skater"
	RoleGoalie = "goalie"
)

// SkaterStats holds the skater counting categories. The same shape serves
// both single-game deltas (GP is a 0/1 played flag) and cumulative totals.
type SkaterStats struct {
	GP        int `json:"gp"`
	Goals     int `json:"goals"`
	Assists   int `json:"assists"`
	PlusMinus int `json:"plus_minus"`
	PIM       int `json:"pim"`
}

// Add accumulates a per-game delta into s.
func (s *SkaterStats) Add(d SkaterStats) {
	s.GP += d.GP
	s.Goals += d.Goals
	s.Assists += d.Assists
	s.PlusMinus += d.PlusMinus
	s.PIM += d.PIM
}

// Points returns goals plus assists.
func (s SkaterStats) Points() int {
	return s.Goals + s.Assists
}

// GoalieStats holds the goalie counting categories, for deltas (GP and Wins
// are 0/1 flags) and cumulative totals alike. Save percentage is derived, not
// stored: it is recomputed from Saves/ShotsAgainst on every read so the two
// can never drift apart.
type GoalieStats struct {
	GP           int `json:"gp"`
	Wins         int `json:"wins"`
	Saves        int `json:"saves"`
	ShotsAgainst int `json:"shots_against"`
}

// Add accumulates a per-game delta into g.
func (g *GoalieStats) Add(d GoalieStats) {
	g.GP += d.GP
	g.Wins += d.Wins
	g.Saves += d.Saves
	g.ShotsAgainst += d.ShotsAgainst
}

// SavePct returns saves/shots-against, or 0 when no shots were faced.
func (g GoalieStats) SavePct() float64 {
	if g.ShotsAgainst > 0 {
		return float64(g.Saves) / float64(g.ShotsAgainst)
	}
	return 0
}

// MarshalJSON emits the derived save percentage alongside the counters so
// report consumers never recompute it.
func (g GoalieStats) MarshalJSON() ([]byte, error) {
	type goalieStats GoalieStats // drop methods to avoid recursion
	return json.Marshal(struct {
		goalieStats
		SavePct float64 `json:"save_pct"`
	}{goalieStats(g), g.SavePct()})
}

// StatEvent is one player's contribution in one game. Exactly one of Skater
// or Goalie is set, matching Role. Events are immutable once created.
type StatEvent struct {
	PlayerKey   string       `json:"player_key"`
	Name        string       `json:"name"`
	Country     string       `json:"country"`
	Pos         string       `json:"pos"` // F, D or G
	FantasyTeam string       `json:"fantasy_team,omitempty"`
	Role        string       `json:"role"`
	GameID      int          `json:"game_id"`
	Date        string       `json:"date"` // YYYY-MM-DD
	Skater      *SkaterStats `json:"skater,omitempty"`
	Goalie      *GoalieStats `json:"goalie,omitempty"`
}

// Played reports whether the event counts as a game played.
func (e *StatEvent) Played() bool {
	if e.Skater != nil {
		return e.Skater.GP > 0
	}
	if e.Goalie != nil {
		return e.Goalie.GP > 0
	}
	return false
}

// GameLogEntry is one appended game in a player's chronological log.
type GameLogEntry struct {
	GameID int          `json:"game_id"`
	Date   string       `json:"date"`
	Skater *SkaterStats `json:"skater,omitempty"`
	Goalie *GoalieStats `json:"goalie,omitempty"`
}

// PlayerRecord is the ledger's cumulative view of one player. The invariant
// is that the cumulative stats always equal the sum of the game log's deltas
// for games actually played.
type PlayerRecord struct {
	Key         string `json:"-"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Pos         string `json:"pos"`
	FantasyTeam string `json:"fantasy_team,omitempty"`

	Skater *SkaterStats `json:"skater_stats,omitempty"`
	Goalie *GoalieStats `json:"goalie_stats,omitempty"`

	GameLog []GameLogEntry `json:"game_log"`

	// Derived fields, recomputed each ranking pass.
	ZScore     float64 `json:"zscore"`
	ZScoreRank int     `json:"zscore_rank"`
	TrendScore float64 `json:"trend_zscore"`
	IsHot      bool    `json:"is_hot"`
	IsCold     bool    `json:"is_cold"`
}

// IsGoalie reports whether the record belongs to a goalie.
func (p *PlayerRecord) IsGoalie() bool {
	return p.Pos == "G"
}

// GamesPlayed returns the cumulative games-played count.
func (p *PlayerRecord) GamesPlayed() int {
	if p.Goalie != nil {
		return p.Goalie.GP
	}
	if p.Skater != nil {
		return p.Skater.GP
	}
	return 0
}

// WindowStats is a flat sum of a player's deltas over a trailing time window.
// Skater and goalie categories share one struct because the trend report
// mixes both roles in a single list.
type WindowStats struct {
	GP           int     `json:"gp"`
	Goals        int     `json:"goals"`
	Assists      int     `json:"assists"`
	PlusMinus    int     `json:"plus_minus"`
	PIM          int     `json:"pim"`
	Wins         int     `json:"wins"`
	Saves        int     `json:"saves"`
	ShotsAgainst int     `json:"shots_against"`
	SavePct      float64 `json:"save_pct"`
}
