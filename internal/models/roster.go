package models

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// RosterPlayer is one player on a fantasy roster. Country is empty for
// players whose national team did not qualify; they stay visible in roster
// views but contribute no statistics.
type RosterPlayer struct {
	Name    string `json:"name" validate:"required"`
	Pos     string `json:"pos" validate:"required,oneof=F D G"`
	Country string `json:"country"`
	NHLTeam string `json:"nhl_team"`
}

// Rosters maps fantasy team name to its players.
type Rosters map[string][]RosterPlayer

// LoadRosters reads and validates the roster file. A single malformed entry
// fails the whole load; the engine cannot run with a partial roster.
func LoadRosters(path string) (Rosters, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rosters: %w", err)
	}

	var rosters Rosters
	if err := json.Unmarshal(raw, &rosters); err != nil {
		return nil, fmt.Errorf("parse rosters: %w", err)
	}

	validate := validator.New()
	for team, players := range rosters {
		if team == "" {
			return nil, fmt.Errorf("rosters: empty team name")
		}
		for i, p := range players {
			if err := validate.Struct(p); err != nil {
				return nil, fmt.Errorf("rosters: team %q player %d: %w", team, i, err)
			}
		}
	}

	return rosters, nil
}

// LoadNameOverrides reads the optional abbreviated-name override file. A
// missing file is not an error; the resolver just runs without overrides.
func LoadNameOverrides(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read name overrides: %w", err)
	}

	overrides := map[string]string{}
	if err := json.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("parse name overrides: %w", err)
	}
	return overrides, nil
}
