package identity

import (
	"testing"

	"github.com/wallycup/stats-engine/internal/models"
)

func testRosters() models.Rosters {
	return models.Rosters{
		"Team Alpha": {
			{Name: "Joel Eriksson Ek", Pos: "F", Country: "SWE", NHLTeam: "MIN"},
			{Name: "Pierre-Luc Dubois", Pos: "F", Country: "CAN", NHLTeam: "WSH"},
			{Name: "Tomáš Hertl", Pos: "F", Country: "CZE", NHLTeam: "VGK"},
		},
		"Team Bravo": {
			{Name: "Connor McDavid", Pos: "F", Country: "CAN", NHLTeam: "EDM"},
			{Name: "Juuse Saros", Pos: "G", Country: "FIN", NHLTeam: "NSH"},
		},
	}
}

func TestStripDiacritics(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Tomáš Hertl", "Tomas Hertl"},
		{"Jesper Bratt", "Jesper Bratt"},
		{"Müller", "Muller"},
	}
	for _, tt := range tests {
		if got := StripDiacritics(tt.in); got != tt.want {
			t.Errorf("StripDiacritics(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	r := NewResolver(testRosters(), nil)

	tests := []struct {
		name     string
		observed string
		wantName string
		wantTeam string
	}{
		{
			name:     "Exact Full Name",
			observed: "Connor McDavid",
			wantName: "Connor McDavid",
			wantTeam: "Team Bravo",
		},
		{
			name:     "Initial Alias",
			observed: "C. McDavid",
			wantName: "Connor McDavid",
			wantTeam: "Team Bravo",
		},
		{
			name:     "Multi Word Last Name",
			observed: "J. Eriksson Ek",
			wantName: "Joel Eriksson Ek",
			wantTeam: "Team Alpha",
		},
		{
			name:     "Hyphenated First Name",
			observed: "P-L. Dubois",
			wantName: "Pierre-Luc Dubois",
			wantTeam: "Team Alpha",
		},
		{
			name:     "Diacritic Stripped Observed",
			observed: "T. Hertl",
			wantName: "Tomáš Hertl",
			wantTeam: "Team Alpha",
		},
		{
			name:     "Unmatched",
			observed: "A. Nobody",
			wantName: "A. Nobody",
			wantTeam: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, info := r.Resolve(tt.observed)
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if tt.wantTeam == "" {
				if info != nil {
					t.Errorf("info = %+v, want nil", info)
				}
				return
			}
			if info == nil {
				t.Fatal("info = nil, want roster match")
			}
			if info.Team != tt.wantTeam {
				t.Errorf("team = %q, want %q", info.Team, tt.wantTeam)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	r := NewResolver(testRosters(), map[string]string{"J. Saros": "Juuse Saros"})

	if got := r.DisplayName("J. Saros"); got != "Juuse Saros" {
		t.Errorf("DisplayName = %q, want %q", got, "Juuse Saros")
	}
	if got := r.DisplayName("C. McDavid"); got != "C. McDavid" {
		t.Errorf("DisplayName fallback = %q, want observed name", got)
	}
}
