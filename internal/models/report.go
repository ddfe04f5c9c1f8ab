package models

import "time"

// Game schedule statuses.
const (
	GameFinal  = "FINAL"
	GameLive   = "LIVE"
	GameFuture = "FUT"
)

// ScheduleGame is one game in the tournament schedule view.
type ScheduleGame struct {
	ID        int     `json:"id"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Away      string  `json:"away"`
	Home      string  `json:"home"`
	Status    string  `json:"status"`
	AwayScore int     `json:"away_score"`
	HomeScore int     `json:"home_score"`
	Period    *int    `json:"period"`
	Clock     *string `json:"clock"`
}

type Schedule struct {
	Games []ScheduleGame `json:"games"`
}

// NextGame is a country's next scheduled matchup.
type NextGame struct {
	Vs   string `json:"vs"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// CountryStatus is the per-country block in the report.
type CountryStatus struct {
	Status   string    `json:"status"`
	Name     string    `json:"name"`
	Flag     string    `json:"flag"`
	NextGame *NextGame `json:"next_game"`
}

// Milestone is an immutable notable-event record surfaced for narrative use.
type Milestone struct {
	Type        string `json:"type"`
	Player      string `json:"player"`
	Country     string `json:"country"`
	FantasyTeam string `json:"fantasy_team,omitempty"`
	GameID      int    `json:"game_id"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Milestone types.
const (
	MilestoneFirstGoal  = "first_goal"
	MilestoneHatTrick   = "hat_trick"
	MilestoneShutout    = "shutout"
	MilestoneBigGame    = "big_game"
	MilestoneGoalsMark  = "milestone_goals"
	MilestonePointsMark = "milestone_points"
	MilestoneNewLeader  = "new_leader"
)

// SnapshotEntry is one team's line in a daily standings snapshot.
type SnapshotEntry struct {
	Team       string  `json:"team"`
	RotoPoints float64 `json:"roto_points"`
	Rank       int     `json:"rank"`
}

// Snapshot captures the standings for one calendar day. Snapshots accumulate
// over the tournament and are never rewritten unless their content changes.
type Snapshot struct {
	Date      string          `json:"date"`
	Standings []SnapshotEntry `json:"standings"`
}

// TrendEntry is one player's line in the hot or cold summary.
type TrendEntry struct {
	Name        string      `json:"name"`
	Country     string      `json:"country"`
	FantasyTeam string      `json:"fantasy_team,omitempty"`
	Pos         string      `json:"pos"`
	Score       float64     `json:"trend_zscore"`
	WindowStats WindowStats `json:"window_stats"`
}

// RecapSide is one team's line in a recap game result.
type RecapSide struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Flag  string `json:"flag"`
	Score int    `json:"score"`
}

// RecapGame is one finished game in a daily recap.
type RecapGame struct {
	ID         int       `json:"id"`
	Away       RecapSide `json:"away"`
	Home       RecapSide `json:"home"`
	FinalScore string    `json:"final_score"`
}

// Performance is one player's fantasy-scored line for a single day.
type Performance struct {
	Name          string       `json:"name"`
	Country       string       `json:"country"`
	FantasyTeam   string       `json:"fantasy_team,omitempty"`
	Pos           string       `json:"pos"`
	FantasyPoints float64      `json:"fantasy_points"`
	Skater        *SkaterStats `json:"skater,omitempty"`
	Goalie        *GoalieStats `json:"goalie,omitempty"`
}

// StandingsChange is one team's day-over-day movement. RankChange is positive
// when the team moved up.
type StandingsChange struct {
	Team         string  `json:"team"`
	RankChange   int     `json:"rank_change"`
	RotoChange   float64 `json:"roto_change"`
	PreviousRank int     `json:"previous_rank"`
	CurrentRank  int     `json:"current_rank"`
	PreviousRoto float64 `json:"previous_roto"`
	CurrentRoto  float64 `json:"current_roto"`
}

type StandingsChanges struct {
	Risers  []StandingsChange `json:"risers"`
	Fallers []StandingsChange `json:"fallers"`
}

// DailyRecap is the per-date recap block: results, top fantasy performers,
// standings movement and a short narrative paragraph.
type DailyRecap struct {
	Games            []RecapGame       `json:"games"`
	TopPerformers    []Performance     `json:"top_performers"`
	StandingsChanges *StandingsChanges `json:"standings_changes,omitempty"`
	RecapText        string            `json:"recap_text"`
}

// Report is the consolidated output artifact: the single document the
// presentation layer consumes.
type Report struct {
	UpdatedAt        time.Time                `json:"updated_at"`
	RunID            string                   `json:"run_id"`
	TournamentStatus string                   `json:"tournament_status"`
	Schedule         Schedule                 `json:"schedule"`
	CountryStatus    map[string]CountryStatus `json:"country_status"`
	Standings        []TeamStanding           `json:"standings"`
	StandingsHistory []Snapshot               `json:"standings_history"`
	DailyRecaps      map[string]*DailyRecap   `json:"daily_recaps"`
	Teams            map[string]*TeamRecord   `json:"teams"`
	CountryNames     map[string]string        `json:"country_names"`
	FlagMap          map[string]string        `json:"flag_map"`
	Players          []*PlayerRecord          `json:"players"`
	HotPlayers       []TrendEntry             `json:"hot_players"`
	ColdPlayers      []TrendEntry             `json:"cold_players"`
	Milestones       []Milestone              `json:"milestones"`
}
