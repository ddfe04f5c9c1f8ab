package models

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRosters(t *testing.T) {
	path := writeFile(t, "rosters.json", `{
		"Team Alpha": [
			{"name": "Connor McDavid", "pos": "F", "country": "CAN", "nhl_team": "EDM"},
			{"name": "Minor Leaguer", "pos": "D", "country": ""}
		]
	}`)

	rosters, err := LoadRosters(path)
	if err != nil {
		t.Fatal(err)
	}
	players := rosters["Team Alpha"]
	if len(players) != 2 {
		t.Fatalf("players = %d, want 2", len(players))
	}
	if players[0].Name != "Connor McDavid" || players[0].Country != "CAN" {
		t.Errorf("player = %+v", players[0])
	}
	// An empty country is valid: the player is rostered but out of the
	// tournament.
	if players[1].Country != "" {
		t.Errorf("country = %q, want empty", players[1].Country)
	}
}

func TestLoadRostersValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing player name",
			content: `{"Team Alpha": [{"pos": "F", "country": "CAN"}]}`,
		},
		{
			name:    "invalid position",
			content: `{"Team Alpha": [{"name": "Connor McDavid", "pos": "C", "country": "CAN"}]}`,
		},
		{
			name:    "not json",
			content: `not json`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "rosters.json", tt.content)
			if _, err := LoadRosters(path); err == nil {
				t.Error("LoadRosters = nil error, want validation error")
			}
		})
	}
}

func TestLoadNameOverrides(t *testing.T) {
	path := writeFile(t, "overrides.json", `{"J. Saros": "Juuse Saros"}`)
	overrides, err := LoadNameOverrides(path)
	if err != nil {
		t.Fatal(err)
	}
	if overrides["J. Saros"] != "Juuse Saros" {
		t.Errorf("overrides = %v", overrides)
	}
}

func TestLoadNameOverridesMissingFile(t *testing.T) {
	overrides, err := LoadNameOverrides(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing overrides file should not error: %v", err)
	}
	if len(overrides) != 0 {
		t.Errorf("overrides = %v, want empty", overrides)
	}
}
