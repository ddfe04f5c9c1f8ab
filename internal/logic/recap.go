package logic

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/wallycup/stats-engine/internal/models"
)

// RecapComposer builds the per-day recap blocks: finished games, top fantasy
// performers and standings movement, plus a short narrative paragraph.
type RecapComposer struct {
	leagueName      string
	tournamentStart string
	topLimit        int
	moversLimit     int
}

func NewRecapComposer(leagueName, tournamentStart string, topLimit, moversLimit int) *RecapComposer {
	return &RecapComposer{
		leagueName:      leagueName,
		tournamentStart: tournamentStart,
		topLimit:        topLimit,
		moversLimit:     moversLimit,
	}
}

// FantasyPoints scores a single game line. Skaters earn 6 per goal, 4 per
// assist, 2 per plus-minus unit and lose half a point per penalty minute.
// Goalies earn 4 per win and a quarter point per save.
func FantasyPoints(entry models.GameLogEntry) float64 {
	if entry.Goalie != nil {
		return float64(entry.Goalie.Wins)*4 + float64(entry.Goalie.Saves)*0.25
	}
	if entry.Skater != nil {
		return float64(entry.Skater.Goals)*6 +
			float64(entry.Skater.Assists)*4 +
			float64(entry.Skater.PlusMinus)*2 -
			float64(entry.Skater.PIM)*0.5
	}
	return 0
}

// Compose produces one recap per calendar date that has at least one
// completed game. Standings movement is only reported for dates where both
// the date's snapshot and an earlier snapshot exist.
func (c *RecapComposer) Compose(schedule models.Schedule, ledger *Ledger, history []models.Snapshot) map[string]*models.DailyRecap {
	gamesByDate := make(map[string][]models.ScheduleGame)
	for _, g := range schedule.Games {
		if g.Status == models.GameFinal {
			gamesByDate[g.Date] = append(gamesByDate[g.Date], g)
		}
	}

	historyByDate := make(map[string]models.Snapshot, len(history))
	dates := make([]string, 0, len(history))
	for _, snap := range history {
		historyByDate[snap.Date] = snap
		dates = append(dates, snap.Date)
	}
	sort.Strings(dates)

	recaps := make(map[string]*models.DailyRecap, len(gamesByDate))
	for date, games := range gamesByDate {
		recap := &models.DailyRecap{
			Games:         make([]models.RecapGame, 0, len(games)),
			TopPerformers: c.topPerformers(ledger, date),
		}
		for _, g := range games {
			recap.Games = append(recap.Games, models.RecapGame{
				ID:         g.ID,
				Away:       recapSide(g.Away, g.AwayScore),
				Home:       recapSide(g.Home, g.HomeScore),
				FinalScore: fmt.Sprintf("%d-%d", g.AwayScore, g.HomeScore),
			})
		}
		recap.StandingsChanges = c.standingsChanges(date, dates, historyByDate)
		recap.RecapText = c.narrative(date, games, recap)
		recaps[date] = recap
	}
	return recaps
}

func recapSide(code string, score int) models.RecapSide {
	return models.RecapSide{
		Code:  code,
		Name:  models.CountryName(code),
		Flag:  models.Countries[code].Flag,
		Score: score,
	}
}

// topPerformers scores every game line played on the given date. A player
// suiting up twice on one day produces two lines.
func (c *RecapComposer) topPerformers(ledger *Ledger, date string) []models.Performance {
	var perfs []models.Performance
	for _, p := range ledger.Players() {
		for _, entry := range p.GameLog {
			if entry.Date != date {
				continue
			}
			perfs = append(perfs, models.Performance{
				Name:          p.Name,
				Country:       p.Country,
				FantasyTeam:   p.FantasyTeam,
				Pos:           p.Pos,
				FantasyPoints: FantasyPoints(entry),
				Skater:        entry.Skater,
				Goalie:        entry.Goalie,
			})
		}
	}
	sort.SliceStable(perfs, func(i, j int) bool {
		return perfs[i].FantasyPoints > perfs[j].FantasyPoints
	})
	if len(perfs) > c.topLimit {
		perfs = perfs[:c.topLimit]
	}
	return perfs
}

// standingsChanges compares the date's snapshot with the snapshot
// immediately before it. Risers are the largest positive rank moves; the
// fallers block keeps the tail of the descending order, so its first entry
// is the mildest of the reported drops.
func (c *RecapComposer) standingsChanges(date string, dates []string, byDate map[string]models.Snapshot) *models.StandingsChanges {
	current, ok := byDate[date]
	if !ok {
		return nil
	}
	idx := sort.SearchStrings(dates, date)
	if idx == 0 || idx >= len(dates) || dates[idx] != date {
		return nil
	}
	previous := byDate[dates[idx-1]]

	prev := make(map[string]models.SnapshotEntry, len(previous.Standings))
	for _, entry := range previous.Standings {
		prev[entry.Team] = entry
	}

	var changes []models.StandingsChange
	for _, entry := range current.Standings {
		before, ok := prev[entry.Team]
		if !ok {
			continue
		}
		changes = append(changes, models.StandingsChange{
			Team:         entry.Team,
			RankChange:   before.Rank - entry.Rank,
			RotoChange:   round2(entry.RotoPoints - before.RotoPoints),
			PreviousRank: before.Rank,
			CurrentRank:  entry.Rank,
			PreviousRoto: round2(before.RotoPoints),
			CurrentRoto:  round2(entry.RotoPoints),
		})
	}
	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].RankChange > changes[j].RankChange
	})

	var risers, fallers []models.StandingsChange
	for _, ch := range changes {
		if ch.RankChange > 0 && len(risers) < c.moversLimit {
			risers = append(risers, ch)
		}
		if ch.RankChange < 0 {
			fallers = append(fallers, ch)
		}
	}
	if len(fallers) > c.moversLimit {
		fallers = fallers[len(fallers)-c.moversLimit:]
	}

	return &models.StandingsChanges{Risers: risers, Fallers: fallers}
}

func (c *RecapComposer) narrative(date string, games []models.ScheduleGame, recap *models.DailyRecap) string {
	parts := []string{
		fmt.Sprintf("Day %d featured %s.", c.dayNumber(date), plural(len(games), "game")),
	}

	if len(games) > 0 {
		biggest := games[0]
		for _, g := range games[1:] {
			if g.AwayScore+g.HomeScore > biggest.AwayScore+biggest.HomeScore {
				biggest = g
			}
		}
		parts = append(parts, fmt.Sprintf("The highest-scoring affair was %s %d-%d %s.",
			models.CountryName(biggest.Away), biggest.AwayScore, biggest.HomeScore, models.CountryName(biggest.Home)))
	}

	if len(recap.TopPerformers) > 0 {
		top := recap.TopPerformers[0]
		parts = append(parts, fmt.Sprintf("%s (%s) led the day with %s.",
			top.Name, models.CountryName(top.Country), performanceDetail(top)))
	}

	if text := c.moversText(recap.StandingsChanges); text != "" {
		parts = append(parts, text)
	}

	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}

func (c *RecapComposer) moversText(changes *models.StandingsChanges) string {
	if changes == nil {
		return ""
	}
	text := ""
	if len(changes.Risers) > 0 {
		r := changes.Risers[0]
		text = fmt.Sprintf("In %s standings, %s moved up %s.", c.leagueName, r.Team, plural(r.RankChange, "spot"))
	}
	if len(changes.Fallers) > 0 {
		f := changes.Fallers[0]
		drop := plural(int(math.Abs(float64(f.RankChange))), "spot")
		if text != "" {
			text += fmt.Sprintf(" %s dropped %s.", f.Team, drop)
		} else {
			text = fmt.Sprintf("In %s standings, %s dropped %s.", c.leagueName, f.Team, drop)
		}
	}
	return text
}

func performanceDetail(top models.Performance) string {
	if top.Goalie != nil {
		return fmt.Sprintf("%s, %d saves", plural(top.Goalie.Wins, "win"), top.Goalie.Saves)
	}
	if top.Skater != nil {
		goals, assists := top.Skater.Goals, top.Skater.Assists
		switch {
		case goals > 0 && assists > 0:
			return fmt.Sprintf("%dG %dA", goals, assists)
		case goals > 0:
			return plural(goals, "goal")
		case assists > 0:
			return plural(assists, "assist")
		}
	}
	return fmt.Sprintf("%.1f fantasy points", top.FantasyPoints)
}

// dayNumber is the 1-indexed calendar-day offset from the tournament start.
func (c *RecapComposer) dayNumber(date string) int {
	start, err := time.Parse("2006-01-02", c.tournamentStart)
	if err != nil {
		return 1
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 1
	}
	return int(day.Sub(start).Hours()/24) + 1
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
