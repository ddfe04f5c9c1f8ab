package logic

import (
	"sort"
	"strings"

	"github.com/wallycup/stats-engine/internal/models"
)

// Ledger is the canonical, append-only store of per-player cumulative stats
// and game logs. It is constructed once per run, mutated only by the single
// ingestion pass, and read by every downstream stage.
type Ledger struct {
	players map[string]*models.PlayerRecord
}

func NewLedger() *Ledger {
	return &Ledger{players: make(map[string]*models.PlayerRecord)}
}

// Record accumulates one stat event into the named player's cumulative stats
// and, when the player actually played, appends it to their game log. The
// event source is idempotent (cache-keyed by game id), so the ledger never
// sees the same game twice.
func (l *Ledger) Record(event *models.StatEvent) {
	rec := l.Get(event.PlayerKey)

	// First event fills in identity; later events only refine a previously
	// unknown fantasy-team assignment.
	if rec.Pos == "" {
		rec.Name = event.Name
		rec.Country = event.Country
		rec.Pos = event.Pos
	}
	if rec.FantasyTeam == "" && event.FantasyTeam != "" {
		rec.FantasyTeam = event.FantasyTeam
	}

	switch {
	case event.Skater != nil:
		if rec.Skater == nil {
			rec.Skater = &models.SkaterStats{}
		}
		rec.Skater.Add(*event.Skater)
	case event.Goalie != nil:
		if rec.Goalie == nil {
			rec.Goalie = &models.GoalieStats{}
		}
		rec.Goalie.Add(*event.Goalie)
	}

	if !event.Played() {
		return
	}

	entry := models.GameLogEntry{GameID: event.GameID, Date: event.Date}
	if event.Skater != nil {
		d := *event.Skater
		entry.Skater = &d
	}
	if event.Goalie != nil {
		d := *event.Goalie
		entry.Goalie = &d
	}
	rec.GameLog = append(rec.GameLog, entry)
}

// Get returns the player's current aggregate, creating a zero-initialized
// record on first sight. Keys are "name|country".
func (l *Ledger) Get(key string) *models.PlayerRecord {
	if rec, ok := l.players[key]; ok {
		return rec
	}
	rec := &models.PlayerRecord{Key: key}
	if name, country, ok := strings.Cut(key, "|"); ok {
		rec.Name = name
		rec.Country = country
	}
	l.players[key] = rec
	return rec
}

// Lookup returns the record for a key without creating one.
func (l *Ledger) Lookup(key string) (*models.PlayerRecord, bool) {
	rec, ok := l.players[key]
	return rec, ok
}

// Players returns every record in deterministic key order. Downstream
// rankings depend on this order for stable tie handling.
func (l *Ledger) Players() []*models.PlayerRecord {
	keys := make([]string, 0, len(l.players))
	for k := range l.players {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*models.PlayerRecord, 0, len(keys))
	for _, k := range keys {
		out = append(out, l.players[k])
	}
	return out
}

// Len returns the number of tracked players.
func (l *Ledger) Len() int {
	return len(l.players)
}
