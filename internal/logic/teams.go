package logic

import (
	"sort"

	"github.com/wallycup/stats-engine/internal/models"
)

// TeamAggregator rolls ledger entries belonging to fantasy rosters into
// per-team totals.
type TeamAggregator struct {
	minShots int // qualification threshold for composite save percentage
}

func NewTeamAggregator(minShots int) *TeamAggregator {
	return &TeamAggregator{minShots: minShots}
}

// BuildTeams seeds every roster player (so teams show their full roster even
// before anyone has played), pulls each tracked player's cumulative stats
// from the ledger, and computes team totals.
func (a *TeamAggregator) BuildTeams(rosters models.Rosters, ledger *Ledger) map[string]*models.TeamRecord {
	teams := make(map[string]*models.TeamRecord, len(rosters))

	for teamName, players := range rosters {
		team := &models.TeamRecord{Name: teamName}

		for _, rp := range players {
			tp := &models.TeamPlayer{
				Name:    rp.Name,
				Country: rp.Country,
				Pos:     rp.Pos,
				Status:  models.StatusActive,
			}
			if rp.Country == "" {
				tp.Status = models.StatusNotTracked
				team.Players = append(team.Players, tp)
				continue
			}

			if rec, ok := ledger.Lookup(rp.Name + "|" + rp.Country); ok {
				if rec.Skater != nil {
					s := *rec.Skater
					tp.Skater = &s
				}
				if rec.Goalie != nil {
					g := *rec.Goalie
					tp.Goalie = &g
				}
			}
			// Seed zeroed stats for roster players yet to appear.
			if tp.Skater == nil && tp.Goalie == nil {
				if rp.Pos == "G" {
					tp.Goalie = &models.GoalieStats{}
				} else {
					tp.Skater = &models.SkaterStats{}
				}
			}
			team.Players = append(team.Players, tp)
		}

		a.computeTotals(team)
		teams[teamName] = team
	}

	return teams
}

// computeTotals sums skater categories and the goalie composite line. The
// composite save percentage only counts once the team's goalies have faced
// the minimum shot volume; below it the team is unqualified and reports 0.
func (a *TeamAggregator) computeTotals(team *models.TeamRecord) {
	var totals models.TeamTotals
	var goalie models.GoalieAggregate

	for _, p := range team.Players {
		switch {
		case p.Skater != nil:
			totals.Goals += p.Skater.Goals
			totals.Assists += p.Skater.Assists
			totals.PlusMinus += p.Skater.PlusMinus
			totals.PIM += p.Skater.PIM
		case p.Goalie != nil:
			goalie.Wins += p.Goalie.Wins
			goalie.Saves += p.Goalie.Saves
			goalie.ShotsAgainst += p.Goalie.ShotsAgainst
		}
	}

	if goalie.ShotsAgainst >= a.minShots {
		goalie.SavePct = float64(goalie.Saves) / float64(goalie.ShotsAgainst)
		goalie.Qualified = true
	}

	totals.GoalieWins = goalie.Wins
	totals.SavePct = goalie.SavePct
	totals.SVQualified = goalie.Qualified

	team.Totals = totals
	team.GoalieStats = goalie
}

// sortedTeamNames gives a deterministic iteration order over team maps.
func sortedTeamNames(teams map[string]*models.TeamRecord) []string {
	names := make([]string, 0, len(teams))
	for name := range teams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
