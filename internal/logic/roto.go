package logic

import (
	"sort"

	"github.com/wallycup/stats-engine/internal/models"
)

// Category keys, in display order. All six count higher-is-better,
// penalty minutes included.
var rotoCategories = []string{"goals", "assists", "plus_minus", "pim", "goalie_wins", "save_pct"}

// ComputeStandings ranks every team in each roto category and converts the
// ranks to points: first place in a category earns one point per team in the
// league, last place earns one. Teams tied on a category value share the
// rank of the first tied position and split the points for the positions
// they occupy evenly.
//
// Save percentage is gated on shot volume. Unqualified teams report a 0
// value and tie for the position after the last qualified team.
//
// The final table is sorted by total points descending; final ranks are
// strictly positional, so teams level on points still get distinct ranks in
// name order.
func ComputeStandings(teams map[string]*models.TeamRecord) []models.TeamStanding {
	names := sortedTeamNames(teams)
	if len(names) == 0 {
		return []models.TeamStanding{}
	}

	ranks := make(map[string]map[string]models.CategoryRank, len(names))
	for _, name := range names {
		ranks[name] = make(map[string]models.CategoryRank, len(rotoCategories))
	}

	for _, cat := range rotoCategories {
		if cat == "save_pct" {
			rankSavePct(names, teams, ranks)
			continue
		}
		rankCategory(cat, names, teams, ranks)
	}

	// Convert ranks to points. With R teams tied at rank r they occupy
	// positions r..r+R-1, so each gets the mean of those positions' points.
	n := len(names)
	standings := make([]models.TeamStanding, 0, n)
	for _, name := range names {
		var total float64
		cats := make(map[string]models.CategoryRank, len(rotoCategories))
		for _, cat := range rotoCategories {
			cr := ranks[name][cat]
			tied := 0
			for _, other := range names {
				if ranks[other][cat].Rank == cr.Rank {
					tied++
				}
			}
			sum := 0.0
			for i := 0; i < tied; i++ {
				sum += float64(n + 1 - (cr.Rank + i))
			}
			cr.RotoPoints = sum / float64(tied)
			total += cr.RotoPoints
			cats[cat] = cr
		}
		standings = append(standings, models.TeamStanding{
			Team:            name,
			Categories:      cats,
			TotalRotoPoints: total,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].TotalRotoPoints > standings[j].TotalRotoPoints
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

func categoryValue(team *models.TeamRecord, cat string) float64 {
	switch cat {
	case "goals":
		return float64(team.Totals.Goals)
	case "assists":
		return float64(team.Totals.Assists)
	case "plus_minus":
		return float64(team.Totals.PlusMinus)
	case "pim":
		return float64(team.Totals.PIM)
	case "goalie_wins":
		return float64(team.Totals.GoalieWins)
	default:
		return team.Totals.SavePct
	}
}

func rankCategory(cat string, names []string, teams map[string]*models.TeamRecord, ranks map[string]map[string]models.CategoryRank) {
	type entry struct {
		name  string
		value float64
	}
	entries := make([]entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, entry{name, categoryValue(teams[name], cat)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].value > entries[j].value
	})

	rank := 1
	for i, e := range entries {
		if i > 0 && e.value < entries[i-1].value {
			rank = i + 1
		}
		ranks[e.name][cat] = models.CategoryRank{Value: e.value, Rank: rank}
	}
}

func rankSavePct(names []string, teams map[string]*models.TeamRecord, ranks map[string]map[string]models.CategoryRank) {
	type entry struct {
		name  string
		value float64
	}
	var qualified []entry
	var unqualified []string
	for _, name := range names {
		if teams[name].Totals.SVQualified {
			qualified = append(qualified, entry{name, teams[name].Totals.SavePct})
		} else {
			unqualified = append(unqualified, name)
		}
	}
	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].value > qualified[j].value
	})

	yes, no := true, false
	rank := 1
	for i, e := range qualified {
		if i > 0 && e.value < qualified[i-1].value {
			rank = i + 1
		}
		ranks[e.name]["save_pct"] = models.CategoryRank{Value: e.value, Rank: rank, Qualified: &yes}
	}
	for _, name := range unqualified {
		ranks[name]["save_pct"] = models.CategoryRank{Value: 0, Rank: len(qualified) + 1, Qualified: &no}
	}
}
