// Package worker runs the aggregation pipeline: fetch every game's box
// score, fold player events into the ledger, derive rankings and recaps, and
// assemble the report document. Fetches run concurrently; ingestion is
// serial in game-id order so derived output is deterministic.
package worker

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wallycup/stats-engine/internal/logic"
	"github.com/wallycup/stats-engine/internal/models"
	"github.com/wallycup/stats-engine/internal/store"
)

// Prometheus metrics
var (
	gamesFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallycup_games_fetched_total",
		Help: "Total number of box scores fetched successfully",
	})

	gamesSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallycup_games_skipped_total",
		Help: "Total number of games skipped (not yet published)",
	})

	gamesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallycup_games_failed_total",
		Help: "Total number of box score fetches that failed",
	})

	eventsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallycup_events_recorded_total",
		Help: "Total number of player stat events folded into the ledger",
	})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wallycup_pipeline_run_duration_seconds",
		Help:    "Duration of full pipeline runs",
		Buckets: prometheus.DefBuckets,
	})
)

// BoxScoreSource supplies box scores by game id.
type BoxScoreSource interface {
	GetBoxScore(ctx context.Context, gameID int) (*models.BoxScore, error)
}

// Config wires the pipeline's collaborators.
type Config struct {
	Source     BoxScoreSource
	Normalizer *logic.Normalizer
	Teams      *logic.TeamAggregator
	Ranking    *logic.RankingEngine
	Milestones *logic.MilestoneDetector
	Recaps     *logic.RecapComposer
	Snapshots  *store.SnapshotStore
	Rosters    models.Rosters

	GameIDStart      int
	GameIDEnd        int
	Concurrency      int
	TournamentStatus string

	Logger *zap.SugaredLogger
	Now    func() time.Time
}

// Pipeline executes one end-to-end aggregation run.
type Pipeline struct {
	cfg Config
}

func NewPipeline(cfg Config) *Pipeline {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Pipeline{cfg: cfg}
}

// Run fetches the full game-id range, rebuilds every derived view from
// scratch and returns the assembled report. A failed fetch for one game is
// logged and skipped rather than failing the run.
func (p *Pipeline) Run(ctx context.Context) (*models.Report, error) {
	start := p.cfg.Now()
	defer func() { runDuration.Observe(time.Since(start).Seconds()) }()

	boxes, err := p.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	ledger := p.ingest(boxes)

	teams := p.cfg.Teams.BuildTeams(p.cfg.Rosters, ledger)
	p.cfg.Ranking.ComputeGlobal(ledger)
	hot, cold := p.cfg.Ranking.ComputeTrends(ledger, logic.LatestFinalDate(boxes))
	milestones := p.cfg.Milestones.Detect(ledger)
	standings := logic.ComputeStandings(teams)
	schedule := logic.BuildSchedule(boxes)

	// Recaps compare against the history as it stood before this run's
	// snapshot, so a day's movement is measured from the previous day.
	recaps := p.cfg.Recaps.Compose(schedule, ledger, p.cfg.Snapshots.History())

	today := p.cfg.Now().Format("2006-01-02")
	if err := p.cfg.Snapshots.SaveDaily(today, standings); err != nil {
		return nil, err
	}

	names := make(map[string]string, len(models.Countries))
	flags := make(map[string]string, len(models.Countries))
	for code, info := range models.Countries {
		names[code] = info.Name
		flags[code] = info.Flag
	}

	return &models.Report{
		UpdatedAt:        p.cfg.Now().UTC(),
		RunID:            uuid.NewString(),
		TournamentStatus: p.cfg.TournamentStatus,
		Schedule:         schedule,
		CountryStatus:    logic.BuildCountryStatus(schedule),
		Standings:        standings,
		StandingsHistory: p.cfg.Snapshots.History(),
		DailyRecaps:      recaps,
		Teams:            teams,
		CountryNames:     names,
		FlagMap:          flags,
		Players:          ledger.Players(),
		HotPlayers:       hot,
		ColdPlayers:      cold,
		Milestones:       milestones,
	}, nil
}

// fetchAll pulls the configured game-id range with bounded concurrency.
func (p *Pipeline) fetchAll(ctx context.Context) (map[int]*models.BoxScore, error) {
	type fetched struct {
		id  int
		box *models.BoxScore
	}

	results := make(chan fetched, p.cfg.GameIDEnd-p.cfg.GameIDStart+1)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Concurrency)

	for id := p.cfg.GameIDStart; id <= p.cfg.GameIDEnd; id++ {
		id := id
		g.Go(func() error {
			box, err := p.cfg.Source.GetBoxScore(ctx, id)
			if err != nil {
				gamesFailed.Inc()
				p.cfg.Logger.Warnw("Failed to fetch box score", "game_id", id, "error", err)
				return nil
			}
			if box.Empty() {
				gamesSkipped.Inc()
				return nil
			}
			gamesFetched.Inc()
			results <- fetched{id: id, box: box}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	boxes := make(map[int]*models.BoxScore)
	for r := range results {
		boxes[r.id] = r.box
	}
	return boxes, nil
}

// ingest folds every game's player events into a fresh ledger, in game-id
// order.
func (p *Pipeline) ingest(boxes map[int]*models.BoxScore) *logic.Ledger {
	ids := make([]int, 0, len(boxes))
	for id := range boxes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	ledger := logic.NewLedger()
	for _, id := range ids {
		events := p.cfg.Normalizer.NormalizeGame(boxes[id])
		for i := range events {
			ledger.Record(&events[i])
			eventsRecorded.Inc()
		}
		p.cfg.Logger.Infow("Processed game", "game_id", id, "events", len(events))
	}
	return ledger
}
