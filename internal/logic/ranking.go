package logic

import (
	"sort"
	"time"

	"github.com/wallycup/stats-engine/internal/models"
)

// RankingEngine computes global fantasy value and trailing-window trend
// scores for every tracked player.
type RankingEngine struct {
	window          time.Duration
	hotLimit        int
	coldFlagLimit   int
	coldReportLimit int
}

func NewRankingEngine(window time.Duration, hotLimit, coldFlagLimit, coldReportLimit int) *RankingEngine {
	return &RankingEngine{
		window:          window,
		hotLimit:        hotLimit,
		coldFlagLimit:   coldFlagLimit,
		coldReportLimit: coldReportLimit,
	}
}

type skaterLine struct {
	goals, assists, plusMinus, pim float64
}

type goalieLine struct {
	wins, savePct float64
	shotsAgainst  int
}

// scoreSkaters returns the summed four-category z-score per line. With fewer
// than two lines there is no population to normalize against and every score
// is 0.
func scoreSkaters(lines []skaterLine) []float64 {
	scores := make([]float64, len(lines))
	if len(lines) < 2 {
		return scores
	}

	goals := make([]float64, len(lines))
	assists := make([]float64, len(lines))
	plusMinus := make([]float64, len(lines))
	pim := make([]float64, len(lines))
	for i, l := range lines {
		goals[i] = l.goals
		assists[i] = l.assists
		plusMinus[i] = l.plusMinus
		pim[i] = l.pim
	}

	gm, gs := mean(goals), stdev(goals)
	am, as := mean(assists), stdev(assists)
	pmm, pms := mean(plusMinus), stdev(plusMinus)
	im, is := mean(pim), stdev(pim)

	for i, l := range lines {
		scores[i] = zval(l.goals, gm, gs) +
			zval(l.assists, am, as) +
			zval(l.plusMinus, pmm, pms) +
			zval(l.pim, im, is)
	}
	return scores
}

// scoreGoalies returns z(wins)+z(save%) per goalie, doubled so the two
// goalie components weigh the same as the skaters' four. The save-percentage
// population only includes goalies who faced at least one shot; goalies with
// no shots faced get a wins-only score, still doubled. Fewer than two
// shot-facing goalies means no population and all scores are 0.
func scoreGoalies(lines []goalieLine) []float64 {
	scores := make([]float64, len(lines))

	var wins, svpct []float64
	for _, l := range lines {
		if l.shotsAgainst > 0 {
			wins = append(wins, l.wins)
			svpct = append(svpct, l.savePct)
		}
	}
	if len(wins) < 2 {
		return scores
	}

	wm, ws := mean(wins), stdev(wins)
	sm, ss := mean(svpct), stdev(svpct)

	for i, l := range lines {
		zw := zval(l.wins, wm, ws)
		if l.shotsAgainst > 0 {
			scores[i] = (zw + zval(l.savePct, sm, ss)) * 2
		} else {
			scores[i] = zw * 2
		}
	}
	return scores
}

// ComputeGlobal recomputes every player's season-long z-score and rank from
// cumulative stats. Players outside the z-score population keep a 0 score.
func (r *RankingEngine) ComputeGlobal(ledger *Ledger) {
	players := ledger.Players()
	for _, p := range players {
		p.ZScore = 0
	}

	var skaters []*models.PlayerRecord
	var goalies []*models.PlayerRecord
	for _, p := range players {
		if p.GamesPlayed() == 0 {
			continue
		}
		if p.IsGoalie() {
			goalies = append(goalies, p)
		} else {
			skaters = append(skaters, p)
		}
	}

	sLines := make([]skaterLine, len(skaters))
	for i, p := range skaters {
		sLines[i] = skaterLine{
			goals:     float64(p.Skater.Goals),
			assists:   float64(p.Skater.Assists),
			plusMinus: float64(p.Skater.PlusMinus),
			pim:       float64(p.Skater.PIM),
		}
	}
	for i, score := range scoreSkaters(sLines) {
		skaters[i].ZScore = round2(score)
	}

	gLines := make([]goalieLine, len(goalies))
	for i, p := range goalies {
		gLines[i] = goalieLine{
			wins:         float64(p.Goalie.Wins),
			savePct:      p.Goalie.SavePct(),
			shotsAgainst: p.Goalie.ShotsAgainst,
		}
	}
	for i, score := range scoreGoalies(gLines) {
		goalies[i].ZScore = round2(score)
	}

	rankPlayers(players)
}

// rankPlayers sorts descending by score and assigns ranks where consecutive
// equal scores share the rank of the first tied entry.
func rankPlayers(players []*models.PlayerRecord) {
	sorted := make([]*models.PlayerRecord, len(players))
	copy(sorted, players)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].ZScore != sorted[j].ZScore {
			return sorted[i].ZScore > sorted[j].ZScore
		}
		return sorted[i].Key < sorted[j].Key
	})

	rank := 1
	for i, p := range sorted {
		if i > 0 && p.ZScore < sorted[i-1].ZScore {
			rank = i + 1
		}
		p.ZScoreRank = rank
	}
}

type windowed struct {
	rec   *models.PlayerRecord
	stats models.WindowStats
}

// ComputeTrends recomputes trailing-window scores anchored at the most
// recent day with a completed game (inclusive at both ends) and returns the
// hot and cold summaries. Players with no games in the window score 0 and
// are excluded from classification.
func (r *RankingEngine) ComputeTrends(ledger *Ledger, latestFinalDate string) (hot, cold []models.TrendEntry) {
	players := ledger.Players()
	for _, p := range players {
		p.TrendScore = 0
		p.IsHot = false
		p.IsCold = false
	}

	if latestFinalDate == "" {
		return nil, nil
	}
	anchor, err := time.Parse("2006-01-02", latestFinalDate)
	if err != nil {
		return nil, nil
	}
	cutoff := anchor.Add(-r.window).Format("2006-01-02")

	var participants []windowed
	for _, p := range players {
		var w models.WindowStats
		seen := false
		for _, entry := range p.GameLog {
			if entry.Date < cutoff || entry.Date > latestFinalDate {
				continue
			}
			seen = true
			w.GP++
			if entry.Skater != nil {
				w.Goals += entry.Skater.Goals
				w.Assists += entry.Skater.Assists
				w.PlusMinus += entry.Skater.PlusMinus
				w.PIM += entry.Skater.PIM
			}
			if entry.Goalie != nil {
				w.Wins += entry.Goalie.Wins
				w.Saves += entry.Goalie.Saves
				w.ShotsAgainst += entry.Goalie.ShotsAgainst
			}
		}
		if !seen {
			continue
		}
		if p.IsGoalie() && w.ShotsAgainst > 0 {
			w.SavePct = float64(w.Saves) / float64(w.ShotsAgainst)
		}
		participants = append(participants, windowed{rec: p, stats: w})
	}

	var skaters, goalies []int // indexes into participants
	for i, part := range participants {
		if part.rec.IsGoalie() {
			goalies = append(goalies, i)
		} else {
			skaters = append(skaters, i)
		}
	}

	sLines := make([]skaterLine, len(skaters))
	for i, idx := range skaters {
		w := participants[idx].stats
		sLines[i] = skaterLine{
			goals:     float64(w.Goals),
			assists:   float64(w.Assists),
			plusMinus: float64(w.PlusMinus),
			pim:       float64(w.PIM),
		}
	}
	for i, score := range scoreSkaters(sLines) {
		participants[skaters[i]].rec.TrendScore = score
	}

	gLines := make([]goalieLine, len(goalies))
	for i, idx := range goalies {
		w := participants[idx].stats
		gLines[i] = goalieLine{
			wins:         float64(w.Wins),
			savePct:      w.SavePct,
			shotsAgainst: w.ShotsAgainst,
		}
	}
	for i, score := range scoreGoalies(gLines) {
		participants[goalies[i]].rec.TrendScore = score
	}

	// Only nonzero windowed scores are classified.
	var candidates []windowed
	for _, part := range participants {
		if part.rec.TrendScore != 0 {
			candidates = append(candidates, part)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].rec.TrendScore != candidates[j].rec.TrendScore {
			return candidates[i].rec.TrendScore > candidates[j].rec.TrendScore
		}
		return candidates[i].rec.Key < candidates[j].rec.Key
	})
	for i, part := range candidates {
		if i >= r.hotLimit {
			break
		}
		part.rec.IsHot = true
		hot = append(hot, trendEntry(part))
	}

	// Ascending for the cold side: the flag set is wider than the reported
	// list on purpose.
	asc := make([]windowed, len(candidates))
	for i, part := range candidates {
		asc[len(candidates)-1-i] = part
	}
	for i, part := range asc {
		if i >= r.coldFlagLimit {
			break
		}
		part.rec.IsCold = true
		if i < r.coldReportLimit {
			cold = append(cold, trendEntry(part))
		}
	}

	return hot, cold
}

func trendEntry(part windowed) models.TrendEntry {
	return models.TrendEntry{
		Name:        part.rec.Name,
		Country:     part.rec.Country,
		FantasyTeam: part.rec.FantasyTeam,
		Pos:         part.rec.Pos,
		Score:       part.rec.TrendScore,
		WindowStats: part.stats,
	}
}
