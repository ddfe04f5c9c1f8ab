package models

// BoxScore is the upstream box-score document for a single game. Only the
// fields the engine reads are mapped; everything else in the source payload
// is ignored.
type BoxScore struct {
	ID                int                `json:"id"`
	GameDate          string             `json:"gameDate"`
	GameState         string             `json:"gameState"`
	StartTimeUTC      string             `json:"startTimeUTC"`
	HomeTeam          BoxScoreTeam       `json:"homeTeam"`
	AwayTeam          BoxScoreTeam       `json:"awayTeam"`
	GameOutcome       *GameOutcome       `json:"gameOutcome,omitempty"`
	PeriodDescriptor  *PeriodDescriptor  `json:"periodDescriptor,omitempty"`
	Clock             *GameClock         `json:"clock,omitempty"`
	PlayerByGameStats *PlayerByGameStats `json:"playerByGameStats,omitempty"`
}

type BoxScoreTeam struct {
	Abbrev string `json:"abbrev"`
	Score  int    `json:"score"`
}

type GameOutcome struct {
	LastPeriodType string `json:"lastPeriodType"`
}

type PeriodDescriptor struct {
	Number int `json:"number"`
}

type GameClock struct {
	TimeRemaining string `json:"timeRemaining"`
}

// PlayerByGameStats holds the per-team player stat blocks.
type PlayerByGameStats struct {
	HomeTeam TeamGameStats `json:"homeTeam"`
	AwayTeam TeamGameStats `json:"awayTeam"`
}

type TeamGameStats struct {
	Forwards []SkaterGameStats `json:"forwards"`
	Defense  []SkaterGameStats `json:"defense"`
	Goalies  []GoalieGameStats `json:"goalies"`
}

// PlayerName wraps the upstream localized name object.
type PlayerName struct {
	Default string `json:"default"`
}

type SkaterGameStats struct {
	Name      PlayerName `json:"name"`
	TOI       string     `json:"toi"`
	Goals     int        `json:"goals"`
	Assists   int        `json:"assists"`
	PlusMinus int        `json:"plusMinus"`
	PIM       int        `json:"pim"`
}

type GoalieGameStats struct {
	Name         PlayerName `json:"name"`
	TOI          string     `json:"toi"`
	Saves        int        `json:"saves"`
	ShotsAgainst int        `json:"shotsAgainst"`
}

// Empty reports whether the document carries no game at all (the cached
// placeholder for a game the source has not published yet).
func (b *BoxScore) Empty() bool {
	return b == nil || b.GameDate == ""
}

// Final reports whether the game has finished.
func (b *BoxScore) Final() bool {
	return b.GameState == "FINAL" || b.GameState == "OFF"
}

// Live reports whether the game is in progress.
func (b *BoxScore) Live() bool {
	return b.GameState == "LIVE" || b.GameState == "CRIT"
}

// Date returns the game's calendar day in YYYY-MM-DD form.
func (b *BoxScore) Date() string {
	if len(b.GameDate) >= 10 {
		return b.GameDate[:10]
	}
	return b.GameDate
}

// Winner returns the abbreviation of the winning team, or "" when the game
// has no decided winner (tie, or no outcome and no goals yet).
func (b *BoxScore) Winner() string {
	decided := (b.GameOutcome != nil && b.GameOutcome.LastPeriodType != "") ||
		b.HomeTeam.Score+b.AwayTeam.Score > 0
	if !decided {
		return ""
	}
	switch {
	case b.HomeTeam.Score > b.AwayTeam.Score:
		return b.HomeTeam.Abbrev
	case b.AwayTeam.Score > b.HomeTeam.Score:
		return b.AwayTeam.Abbrev
	default:
		return ""
	}
}
