package logic

import (
	"testing"

	"github.com/wallycup/stats-engine/internal/models"
)

func TestBuildSchedule(t *testing.T) {
	boxes := map[int]*models.BoxScore{
		3: {ID: 3, GameDate: "2026-02-13T17:00:00Z", GameState: "FUT", StartTimeUTC: "2026-02-13T17:00:00Z",
			HomeTeam: models.BoxScoreTeam{Abbrev: "GER"}, AwayTeam: models.BoxScoreTeam{Abbrev: "CZE"}},
		1: {ID: 1, GameDate: "2026-02-12", GameState: "FINAL",
			HomeTeam: models.BoxScoreTeam{Abbrev: "FIN", Score: 2}, AwayTeam: models.BoxScoreTeam{Abbrev: "CAN", Score: 5}},
		2: {ID: 2, GameDate: "2026-02-12", GameState: "LIVE",
			HomeTeam: models.BoxScoreTeam{Abbrev: "USA", Score: 1}, AwayTeam: models.BoxScoreTeam{Abbrev: "SWE", Score: 1},
			PeriodDescriptor: &models.PeriodDescriptor{Number: 2}, Clock: &models.GameClock{TimeRemaining: "07:15"}},
		4: {}, // not yet published
	}

	schedule := BuildSchedule(boxes)
	if len(schedule.Games) != 3 {
		t.Fatalf("len(games) = %d, want 3", len(schedule.Games))
	}

	// Game-id order regardless of map iteration.
	for i, wantID := range []int{1, 2, 3} {
		if schedule.Games[i].ID != wantID {
			t.Errorf("games[%d].ID = %d, want %d", i, schedule.Games[i].ID, wantID)
		}
	}

	final := schedule.Games[0]
	if final.Status != models.GameFinal || final.AwayScore != 5 || final.Period != nil || final.Clock != nil {
		t.Errorf("final game = %+v", final)
	}

	live := schedule.Games[1]
	if live.Status != models.GameLive {
		t.Errorf("live status = %s", live.Status)
	}
	if live.Period == nil || *live.Period != 2 || live.Clock == nil || *live.Clock != "07:15" {
		t.Errorf("live details = %v %v", live.Period, live.Clock)
	}

	if fut := schedule.Games[2]; fut.Status != models.GameFuture || fut.Time != "2026-02-13T17:00:00Z" {
		t.Errorf("future game = %+v", fut)
	}
}

func TestLatestFinalDate(t *testing.T) {
	boxes := map[int]*models.BoxScore{
		1: {GameDate: "2026-02-12", GameState: "FINAL"},
		2: {GameDate: "2026-02-14", GameState: "OFF"},
		3: {GameDate: "2026-02-15", GameState: "LIVE"},
	}
	if got := LatestFinalDate(boxes); got != "2026-02-14" {
		t.Errorf("LatestFinalDate = %q, want 2026-02-14", got)
	}

	if got := LatestFinalDate(map[int]*models.BoxScore{}); got != "" {
		t.Errorf("LatestFinalDate on empty = %q, want empty", got)
	}
}

func TestBuildCountryStatus(t *testing.T) {
	schedule := models.Schedule{Games: []models.ScheduleGame{
		{ID: 1, Date: "2026-02-12", Away: "CAN", Home: "FIN", Status: models.GameFinal},
		{ID: 2, Date: "2026-02-13", Time: "2026-02-13T12:00:00Z", Away: "CAN", Home: "SWE", Status: models.GameFuture},
		{ID: 3, Date: "2026-02-14", Away: "CAN", Home: "USA", Status: models.GameFuture},
	}}

	status := BuildCountryStatus(schedule)
	if len(status) != len(models.Countries) {
		t.Fatalf("len(status) = %d, want %d", len(status), len(models.Countries))
	}

	can := status["CAN"]
	if can.Name != "Canada" || can.Status != "active" {
		t.Errorf("CAN = %+v", can)
	}
	// The earliest future game wins.
	if can.NextGame == nil || can.NextGame.Vs != "SWE" || can.NextGame.Date != "2026-02-13" {
		t.Errorf("CAN next game = %+v", can.NextGame)
	}

	// Finland has already played its only game.
	if status["FIN"].NextGame != nil {
		t.Errorf("FIN next game = %+v, want nil", status["FIN"].NextGame)
	}

	// No schedule entry at all still yields a country block.
	if status["ITA"].NextGame != nil || status["ITA"].Name != "Italy" {
		t.Errorf("ITA = %+v", status["ITA"])
	}
}
