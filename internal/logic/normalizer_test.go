package logic

import (
	"testing"

	"go.uber.org/zap"

	"github.com/wallycup/stats-engine/internal/identity"
	"github.com/wallycup/stats-engine/internal/models"
)

func testRosters() models.Rosters {
	return models.Rosters{
		"Team Alpha": {
			{Name: "Connor McDavid", Pos: "F", Country: "CAN", NHLTeam: "EDM"},
			{Name: "Juuse Saros", Pos: "G", Country: "FIN", NHLTeam: "NSH"},
			{Name: "Minor Leaguer", Pos: "F", Country: "", NHLTeam: "TOR"},
		},
	}
}

func testNormalizer() *Normalizer {
	resolver := identity.NewResolver(testRosters(), nil)
	return NewNormalizer(resolver, zap.NewNop().Sugar())
}

func finalBox(id int, date string, home, away models.BoxScoreTeam, stats *models.PlayerByGameStats) *models.BoxScore {
	return &models.BoxScore{
		ID:                id,
		GameDate:          date,
		GameState:         "FINAL",
		HomeTeam:          home,
		AwayTeam:          away,
		GameOutcome:       &models.GameOutcome{LastPeriodType: "REG"},
		PlayerByGameStats: stats,
	}
}

func eventByName(events []models.StatEvent, name string) *models.StatEvent {
	for i := range events {
		if events[i].Name == name {
			return &events[i]
		}
	}
	return nil
}

func TestNormalizeGameNoPlayerStats(t *testing.T) {
	n := testNormalizer()
	box := finalBox(1, "2026-02-11", models.BoxScoreTeam{Abbrev: "CAN"}, models.BoxScoreTeam{Abbrev: "FIN"}, nil)

	if events := n.NormalizeGame(box); events != nil {
		t.Errorf("events = %v, want nil", events)
	}
}

func TestNormalizeGameSkaters(t *testing.T) {
	n := testNormalizer()
	box := finalBox(1, "2026-02-11T17:00:00Z",
		models.BoxScoreTeam{Abbrev: "CAN", Score: 4},
		models.BoxScoreTeam{Abbrev: "FIN", Score: 2},
		&models.PlayerByGameStats{
			HomeTeam: models.TeamGameStats{
				Forwards: []models.SkaterGameStats{
					{Name: models.PlayerName{Default: "C. McDavid"}, TOI: "21:30", Goals: 2, Assists: 1, PlusMinus: 3, PIM: 2},
					{Name: models.PlayerName{Default: "Healthy Scratch"}, TOI: "0:00"},
				},
			},
			AwayTeam: models.TeamGameStats{
				Defense: []models.SkaterGameStats{
					{Name: models.PlayerName{Default: "Unknown Defender"}, TOI: "18:00", Assists: 1},
				},
			},
		})

	events := n.NormalizeGame(box)
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}

	mcdavid := eventByName(events, "Connor McDavid")
	if mcdavid == nil {
		t.Fatal("no event for McDavid")
	}
	if mcdavid.PlayerKey != "Connor McDavid|CAN" {
		t.Errorf("key = %q, want %q", mcdavid.PlayerKey, "Connor McDavid|CAN")
	}
	if mcdavid.FantasyTeam != "Team Alpha" {
		t.Errorf("fantasy team = %q, want %q", mcdavid.FantasyTeam, "Team Alpha")
	}
	if mcdavid.Skater.GP != 1 || mcdavid.Skater.Goals != 2 {
		t.Errorf("skater stats = %+v", mcdavid.Skater)
	}
	if mcdavid.Date != "2026-02-11" {
		t.Errorf("date = %q, want %q", mcdavid.Date, "2026-02-11")
	}

	// Zero time on ice means listed but not played.
	scratch := eventByName(events, "Healthy Scratch")
	if scratch == nil {
		t.Fatal("no event for scratched player")
	}
	if scratch.Skater.GP != 0 {
		t.Errorf("scratch GP = %d, want 0", scratch.Skater.GP)
	}

	// Unmatched players are tracked under the raw name and national team.
	unknown := eventByName(events, "Unknown Defender")
	if unknown == nil {
		t.Fatal("no event for unmatched player")
	}
	if unknown.Country != "FIN" || unknown.Pos != "D" || unknown.FantasyTeam != "" {
		t.Errorf("unmatched identity = %q/%q/%q", unknown.Country, unknown.Pos, unknown.FantasyTeam)
	}
}

func TestNormalizeGameRosterPlayerWithoutCountry(t *testing.T) {
	n := testNormalizer()
	box := finalBox(1, "2026-02-11",
		models.BoxScoreTeam{Abbrev: "CAN", Score: 1},
		models.BoxScoreTeam{Abbrev: "FIN", Score: 0},
		&models.PlayerByGameStats{
			HomeTeam: models.TeamGameStats{
				Forwards: []models.SkaterGameStats{
					{Name: models.PlayerName{Default: "Minor Leaguer"}, TOI: "10:00", Goals: 1},
				},
			},
		})

	if events := n.NormalizeGame(box); len(events) != 0 {
		t.Errorf("len(events) = %d, want 0 for untracked roster player", len(events))
	}
}

func TestNormalizeGameGoalieWins(t *testing.T) {
	stats := func() *models.PlayerByGameStats {
		return &models.PlayerByGameStats{
			HomeTeam: models.TeamGameStats{
				Goalies: []models.GoalieGameStats{
					{Name: models.PlayerName{Default: "J. Saros"}, TOI: "60:00", Saves: 25, ShotsAgainst: 27},
				},
			},
			AwayTeam: models.TeamGameStats{
				Goalies: []models.GoalieGameStats{
					{Name: models.PlayerName{Default: "Losing Goalie"}, TOI: "58:30", Saves: 20, ShotsAgainst: 24},
					{Name: models.PlayerName{Default: "Backup Goalie"}, TOI: "0:00"},
				},
			},
		}
	}

	tests := []struct {
		name          string
		home, away    models.BoxScoreTeam
		outcome       *models.GameOutcome
		wantSarosWins int
	}{
		{
			name:          "Home Win",
			home:          models.BoxScoreTeam{Abbrev: "FIN", Score: 4},
			away:          models.BoxScoreTeam{Abbrev: "CAN", Score: 2},
			outcome:       &models.GameOutcome{LastPeriodType: "REG"},
			wantSarosWins: 1,
		},
		{
			name:          "Scoreless Without Outcome",
			home:          models.BoxScoreTeam{Abbrev: "FIN", Score: 0},
			away:          models.BoxScoreTeam{Abbrev: "CAN", Score: 0},
			outcome:       nil,
			wantSarosWins: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := testNormalizer()
			box := &models.BoxScore{
				ID:                7,
				GameDate:          "2026-02-12",
				GameState:         "FINAL",
				HomeTeam:          tt.home,
				AwayTeam:          tt.away,
				GameOutcome:       tt.outcome,
				PlayerByGameStats: stats(),
			}

			events := n.NormalizeGame(box)
			saros := eventByName(events, "Juuse Saros")
			if saros == nil {
				t.Fatal("no event for Saros")
			}
			if saros.Goalie.Wins != tt.wantSarosWins {
				t.Errorf("wins = %d, want %d", saros.Goalie.Wins, tt.wantSarosWins)
			}

			// A goalie who never took the ice cannot be credited a win.
			backup := eventByName(events, "Backup Goalie")
			if backup == nil {
				t.Fatal("no event for backup goalie")
			}
			if backup.Goalie.GP != 0 || backup.Goalie.Wins != 0 {
				t.Errorf("backup stats = %+v, want zero GP and wins", backup.Goalie)
			}
		})
	}
}
