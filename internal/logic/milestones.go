package logic

import (
	"fmt"
	"sort"

	"github.com/wallycup/stats-engine/internal/models"
)

// MilestoneDetector derives the milestone feed from player game logs.
// Detection is a pure function of the ledger, so re-running it over the same
// data yields the same feed with no duplicates.
type MilestoneDetector struct {
	limit int
}

func NewMilestoneDetector(limit int) *MilestoneDetector {
	return &MilestoneDetector{limit: limit}
}

// Detect walks every player's game log in chronological order, emitting
// per-game and cumulative threshold milestones, then locates the game where
// each current category leader took the lead. The feed is sorted most recent
// first and truncated.
func (d *MilestoneDetector) Detect(ledger *Ledger) []models.Milestone {
	milestones := []models.Milestone{}
	players := ledger.Players()

	for _, p := range players {
		log := sortedGameLog(p.GameLog)

		cumGoals, cumPoints := 0, 0
		hasFirstGoal := false

		for _, game := range log {
			if p.IsGoalie() {
				if game.Goalie == nil {
					continue
				}
				sa := game.Goalie.ShotsAgainst
				if sa > 0 && game.Goalie.Saves == sa {
					milestones = append(milestones, milestone(models.MilestoneShutout, p, game,
						fmt.Sprintf("%s records a shutout with %d saves", p.Name, game.Goalie.Saves)))
				}
				continue
			}

			if game.Skater == nil {
				continue
			}
			goals := game.Skater.Goals
			points := goals + game.Skater.Assists

			prevGoals, prevPoints := cumGoals, cumPoints
			cumGoals += goals
			cumPoints += points

			if goals > 0 && !hasFirstGoal {
				hasFirstGoal = true
				milestones = append(milestones, milestone(models.MilestoneFirstGoal, p, game,
					fmt.Sprintf("%s scores their first goal of the tournament", p.Name)))
			}
			if goals >= 3 {
				milestones = append(milestones, milestone(models.MilestoneHatTrick, p, game,
					fmt.Sprintf("%s records a hat trick with %d goals", p.Name, goals)))
			}
			if points >= 5 {
				milestones = append(milestones, milestone(models.MilestoneBigGame, p, game,
					fmt.Sprintf("%s records %d points (%dG, %dA)", p.Name, points, goals, game.Skater.Assists)))
			}
			if prevGoals < 5 && cumGoals >= 5 {
				milestones = append(milestones, milestone(models.MilestoneGoalsMark, p, game,
					fmt.Sprintf("%s reaches 5 goals (%d total)", p.Name, cumGoals)))
			}
			if prevPoints < 10 && cumPoints >= 10 {
				milestones = append(milestones, milestone(models.MilestonePointsMark, p, game,
					fmt.Sprintf("%s reaches 10 points (%d total)", p.Name, cumPoints)))
			}
		}
	}

	milestones = append(milestones, d.leaderMilestones(players)...)

	sort.Slice(milestones, func(i, j int) bool {
		if milestones[i].Date != milestones[j].Date {
			return milestones[i].Date > milestones[j].Date
		}
		return milestones[i].GameID > milestones[j].GameID
	})
	if len(milestones) > d.limit {
		milestones = milestones[:d.limit]
	}
	return milestones
}

type leaderCategory struct {
	key   string
	value func(s *models.SkaterStats) int
}

var leaderCategories = []leaderCategory{
	{"goals", func(s *models.SkaterStats) int { return s.Goals }},
	{"assists", func(s *models.SkaterStats) int { return s.Assists }},
	{"points", func(s *models.SkaterStats) int { return s.Goals + s.Assists }},
}

// leaderMilestones finds the current leader of each category (strictly
// greatest total, first player in iteration order keeps a tied lead) and
// re-walks their log to the earliest game where they reached that total.
func (d *MilestoneDetector) leaderMilestones(players []*models.PlayerRecord) []models.Milestone {
	var out []models.Milestone

	for _, cat := range leaderCategories {
		var leader *models.PlayerRecord
		best := 0
		for _, p := range players {
			if p.Skater == nil {
				continue
			}
			if v := cat.value(p.Skater); v > best {
				best = v
				leader = p
			}
		}
		if leader == nil {
			continue
		}

		cum := 0
		for _, game := range sortedGameLog(leader.GameLog) {
			if game.Skater == nil {
				continue
			}
			cum += cat.value(game.Skater)
			if cum == best && cum > 0 {
				out = append(out, milestone(models.MilestoneNewLeader, leader, game,
					fmt.Sprintf("%s takes the %s lead with %d %s", leader.Name, cat.key, best, cat.key)))
				break
			}
		}
	}
	return out
}

func sortedGameLog(log []models.GameLogEntry) []models.GameLogEntry {
	sorted := make([]models.GameLogEntry, len(log))
	copy(sorted, log)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].GameID < sorted[j].GameID
	})
	return sorted
}

func milestone(typ string, p *models.PlayerRecord, game models.GameLogEntry, desc string) models.Milestone {
	return models.Milestone{
		Type:        typ,
		Player:      p.Name,
		Country:     p.Country,
		FantasyTeam: p.FantasyTeam,
		GameID:      game.GameID,
		Date:        game.Date,
		Description: desc,
	}
}
