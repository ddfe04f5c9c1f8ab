// Package logic implements the statistics aggregation and ranking engine:
// box-score normalization, the player ledger, team aggregation, z-score and
// roto rankings, trend detection, milestones and daily recaps.
package logic

import (
	"go.uber.org/zap"

	"github.com/wallycup/stats-engine/internal/identity"
	"github.com/wallycup/stats-engine/internal/models"
)

// Normalizer turns one game's box score into per-player stat events.
type Normalizer struct {
	resolver *identity.Resolver
	logger   *zap.SugaredLogger
}

func NewNormalizer(resolver *identity.Resolver, logger *zap.SugaredLogger) *Normalizer {
	return &Normalizer{resolver: resolver, logger: logger}
}

// NormalizeGame emits one event per listed skater and goalie on both sides,
// whether or not they belong to a tracked fantasy roster. A game with no
// player-stat section yields no events and is logged as skipped.
func (n *Normalizer) NormalizeGame(box *models.BoxScore) []models.StatEvent {
	if box == nil || box.PlayerByGameStats == nil {
		if box != nil {
			n.logger.Infow("No player stats for game, skipping", "gameID", box.ID)
		}
		return nil
	}

	winner := box.Winner()
	date := box.Date()

	var events []models.StatEvent
	sides := []struct {
		team  models.BoxScoreTeam
		stats models.TeamGameStats
	}{
		{box.HomeTeam, box.PlayerByGameStats.HomeTeam},
		{box.AwayTeam, box.PlayerByGameStats.AwayTeam},
	}

	for _, side := range sides {
		for _, s := range side.stats.Forwards {
			if ev := n.skaterEvent(s, side.team.Abbrev, "F", box.ID, date); ev != nil {
				events = append(events, *ev)
			}
		}
		for _, s := range side.stats.Defense {
			if ev := n.skaterEvent(s, side.team.Abbrev, "D", box.ID, date); ev != nil {
				events = append(events, *ev)
			}
		}
		isWinner := side.team.Abbrev == winner
		for _, g := range side.stats.Goalies {
			if ev := n.goalieEvent(g, side.team.Abbrev, isWinner, box.ID, date); ev != nil {
				events = append(events, *ev)
			}
		}
	}

	return events
}

// played interprets the time-on-ice field: listed players count as having
// played unless the box score explicitly logs zero time on ice.
func played(toi string) int {
	if toi == "0:00" {
		return 0
	}
	return 1
}

func (n *Normalizer) skaterEvent(s models.SkaterGameStats, teamAbbrev, posLabel string, gameID int, date string) *models.StatEvent {
	name, country, pos, fantasyTeam, ok := n.resolveIdentity(s.Name.Default, teamAbbrev, posLabel)
	if !ok {
		return nil
	}

	return &models.StatEvent{
		PlayerKey:   name + "|" + country,
		Name:        n.resolver.DisplayName(name),
		Country:     country,
		Pos:         pos,
		FantasyTeam: fantasyTeam,
		Role:        models.RoleSkater,
		GameID:      gameID,
		Date:        date,
		Skater: &models.SkaterStats{
			GP:        played(s.TOI),
			Goals:     s.Goals,
			Assists:   s.Assists,
			PlusMinus: s.PlusMinus,
			PIM:       s.PIM,
		},
	}
}

func (n *Normalizer) goalieEvent(g models.GoalieGameStats, teamAbbrev string, isWinner bool, gameID int, date string) *models.StatEvent {
	name, country, _, fantasyTeam, ok := n.resolveIdentity(g.Name.Default, teamAbbrev, "G")
	if !ok {
		return nil
	}

	gp := played(g.TOI)
	wins := 0
	if gp > 0 && isWinner {
		wins = 1
	}

	return &models.StatEvent{
		PlayerKey:   name + "|" + country,
		Name:        n.resolver.DisplayName(name),
		Country:     country,
		Pos:         "G",
		FantasyTeam: fantasyTeam,
		Role:        models.RoleGoalie,
		GameID:      gameID,
		Date:        date,
		Goalie: &models.GoalieStats{
			GP:           gp,
			Wins:         wins,
			Saves:        g.Saves,
			ShotsAgainst: g.ShotsAgainst,
		},
	}
}

// resolveIdentity maps an observed name to its canonical identity. Roster
// players carry their national-team country and fantasy team; unmatched
// players are kept under their raw observed name with the game's national
// team as country. Roster players without a national-team assignment produce
// no event (they are out of the tournament and only exist in roster views).
func (n *Normalizer) resolveIdentity(observed, teamAbbrev, posLabel string) (name, country, pos, fantasyTeam string, ok bool) {
	resolved, info := n.resolver.Resolve(observed)
	if info == nil {
		return observed, teamAbbrev, posLabel, "", true
	}
	if info.Country == "" {
		return "", "", "", "", false
	}
	return resolved, info.Country, info.Pos, info.Team, true
}
