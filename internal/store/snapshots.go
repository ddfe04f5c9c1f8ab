// Package store persists the engine's flat-file artifacts: daily standings
// snapshots and the consolidated report document.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/wallycup/stats-engine/internal/models"
)

// SnapshotStore writes one standings snapshot per calendar day and reads the
// accumulated history back.
type SnapshotStore struct {
	dir    string
	logger *zap.SugaredLogger
}

func NewSnapshotStore(dir string, logger *zap.SugaredLogger) (*SnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating snapshots dir: %w", err)
	}
	return &SnapshotStore{dir: dir, logger: logger}, nil
}

// SaveDaily writes the snapshot for the given date unless one already exists
// with the same per-team roto points. Re-running the pipeline on unchanged
// data therefore leaves the file untouched.
func (s *SnapshotStore) SaveDaily(date string, standings []models.TeamStanding) error {
	snapshot := models.Snapshot{Date: date}
	for _, team := range standings {
		snapshot.Standings = append(snapshot.Standings, models.SnapshotEntry{
			Team:       team.Team,
			RotoPoints: team.TotalRotoPoints,
			Rank:       team.Rank,
		})
	}

	path := filepath.Join(s.dir, date+".json")
	if existing, err := s.read(path); err == nil {
		if samePoints(existing, snapshot) {
			s.logger.Infow("Snapshot unchanged, skipping", "date", date)
			return nil
		}
		s.logger.Infow("Updating snapshot, roto points changed", "date", date)
	} else if os.IsNotExist(err) {
		s.logger.Infow("Saving new snapshot", "date", date)
	} else {
		// Unreadable or corrupt file gets overwritten.
		s.logger.Warnw("Overwriting unreadable snapshot", "date", date, "error", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// History loads every readable snapshot in date order. Unreadable files are
// logged and skipped.
func (s *SnapshotStore) History() []models.Snapshot {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Warnw("Failed to list snapshots", "dir", s.dir, "error", err)
		return []models.Snapshot{}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	history := make([]models.Snapshot, 0, len(names))
	for _, name := range names {
		snap, err := s.read(filepath.Join(s.dir, name))
		if err != nil {
			s.logger.Warnw("Failed to load snapshot", "file", name, "error", err)
			continue
		}
		history = append(history, snap)
	}
	return history
}

func (s *SnapshotStore) read(path string) (models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Snapshot{}, err
	}
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return snap, nil
}

func samePoints(a, b models.Snapshot) bool {
	pts := func(snap models.Snapshot) map[string]float64 {
		m := make(map[string]float64, len(snap.Standings))
		for _, entry := range snap.Standings {
			m[entry.Team] = entry.RotoPoints
		}
		return m
	}
	ap, bp := pts(a), pts(b)
	if len(ap) != len(bp) {
		return false
	}
	for team, v := range ap {
		if bv, ok := bp[team]; !ok || bv != v {
			return false
		}
	}
	return true
}
