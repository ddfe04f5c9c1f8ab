package logic

import (
	"sort"

	"github.com/wallycup/stats-engine/internal/models"
)

// BuildSchedule derives the schedule view from every box score seen this
// run, in game-id order. Games the source has not published yet carry empty
// documents and are skipped.
func BuildSchedule(boxes map[int]*models.BoxScore) models.Schedule {
	ids := make([]int, 0, len(boxes))
	for id := range boxes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	schedule := models.Schedule{Games: []models.ScheduleGame{}}
	for _, id := range ids {
		box := boxes[id]
		if box.Empty() {
			continue
		}

		status := models.GameFuture
		switch {
		case box.Final():
			status = models.GameFinal
		case box.Live():
			status = models.GameLive
		}

		game := models.ScheduleGame{
			ID:        id,
			Date:      box.Date(),
			Time:      box.StartTimeUTC,
			Away:      box.AwayTeam.Abbrev,
			Home:      box.HomeTeam.Abbrev,
			Status:    status,
			AwayScore: box.AwayTeam.Score,
			HomeScore: box.HomeTeam.Score,
		}
		if status == models.GameLive {
			if box.PeriodDescriptor != nil {
				period := box.PeriodDescriptor.Number
				game.Period = &period
			} else {
				period := 0
				game.Period = &period
			}
			clock := ""
			if box.Clock != nil {
				clock = box.Clock.TimeRemaining
			}
			game.Clock = &clock
		}
		schedule.Games = append(schedule.Games, game)
	}
	return schedule
}

// LatestFinalDate returns the most recent calendar day with a completed
// game, or "" when nothing has finished yet. It anchors the trend window.
func LatestFinalDate(boxes map[int]*models.BoxScore) string {
	latest := ""
	for _, box := range boxes {
		if box.Empty() || !box.Final() {
			continue
		}
		if d := box.Date(); d > latest {
			latest = d
		}
	}
	return latest
}

// BuildCountryStatus pairs each national team with its next scheduled game.
func BuildCountryStatus(schedule models.Schedule) map[string]models.CountryStatus {
	nextGames := make(map[string]*models.NextGame)
	for _, g := range schedule.Games {
		if g.Status != models.GameFuture {
			continue
		}
		sides := [2]struct{ code, opp string }{
			{g.Away, g.Home},
			{g.Home, g.Away},
		}
		for _, side := range sides {
			if side.code == "TBD" {
				continue
			}
			if _, seen := nextGames[side.code]; seen {
				continue
			}
			t := g.Time
			if t == "" {
				t = "TBD"
			}
			nextGames[side.code] = &models.NextGame{Vs: side.opp, Date: g.Date, Time: t}
		}
	}

	status := make(map[string]models.CountryStatus, len(models.Countries))
	for code, info := range models.Countries {
		status[code] = models.CountryStatus{
			Status:   "active",
			Name:     info.Name,
			Flag:     info.Flag,
			NextGame: nextGames[code],
		}
	}
	return status
}
