// The fetcher runs one aggregation pass: pull every game's box score,
// rebuild all derived statistics and write the report document plus the
// day's standings snapshot.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/wallycup/stats-engine/internal/config"
	"github.com/wallycup/stats-engine/internal/identity"
	"github.com/wallycup/stats-engine/internal/logic"
	"github.com/wallycup/stats-engine/internal/models"
	"github.com/wallycup/stats-engine/internal/nhl"
	"github.com/wallycup/stats-engine/internal/store"
	"github.com/wallycup/stats-engine/internal/worker"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.Env)
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rosters, err := models.LoadRosters(cfg.RostersPath)
	if err != nil {
		sugar.Fatalw("Failed to load rosters", "path", cfg.RostersPath, "error", err)
	}
	overrides, err := models.LoadNameOverrides(cfg.OverridesPath)
	if err != nil {
		sugar.Fatalw("Failed to load name overrides", "path", cfg.OverridesPath, "error", err)
	}

	cache, err := newCache(cfg, sugar)
	if err != nil {
		sugar.Fatalw("Failed to initialize box score cache", "error", err)
	}

	client := nhl.NewClient(nhl.ClientConfig{
		BaseURL:   cfg.SourceBaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.FetchTimeout,
		Cache:     cache,
		Logger:    sugar,
	})

	snapshots, err := store.NewSnapshotStore(cfg.SnapshotsDir, sugar)
	if err != nil {
		sugar.Fatalw("Failed to initialize snapshot store", "error", err)
	}

	resolver := identity.NewResolver(rosters, overrides)
	pipeline := worker.NewPipeline(worker.Config{
		Source:           client,
		Normalizer:       logic.NewNormalizer(resolver, sugar),
		Teams:            logic.NewTeamAggregator(cfg.SavePctMinShots),
		Ranking:          logic.NewRankingEngine(cfg.TrendWindow, cfg.HotLimit, cfg.ColdFlagLimit, cfg.ColdReportLimit),
		Milestones:       logic.NewMilestoneDetector(cfg.MilestoneLimit),
		Recaps:           logic.NewRecapComposer(cfg.LeagueName, cfg.TournamentStart, cfg.TopPerformers, cfg.StandingsMovers),
		Snapshots:        snapshots,
		Rosters:          rosters,
		GameIDStart:      cfg.GameIDStart,
		GameIDEnd:        cfg.GameIDEnd,
		Concurrency:      cfg.FetchConcurrency,
		TournamentStatus: cfg.TournamentStatus,
		Logger:           sugar,
	})

	report, err := pipeline.Run(ctx)
	if err != nil {
		sugar.Fatalw("Pipeline run failed", "error", err)
	}

	if err := store.WriteReport(cfg.ReportPath, report); err != nil {
		sugar.Fatalw("Failed to write report", "path", cfg.ReportPath, "error", err)
	}
	sugar.Infow("Report written", "path", cfg.ReportPath, "run_id", report.RunID)

	for i, team := range report.Standings {
		if i >= 5 {
			break
		}
		sugar.Infow("Standings", "rank", team.Rank, "team", team.Team, "roto_points", team.TotalRotoPoints)
	}
}

func newLogger(env string) *zap.Logger {
	if env == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			os.Exit(1)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	return logger
}

// newCache picks the shared Redis cache when configured, otherwise the
// per-host file cache.
func newCache(cfg *config.Config, sugar *zap.SugaredLogger) (nhl.Cache, error) {
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		sugar.Infow("Using Redis box score cache", "url", cfg.RedisURL)
		return nhl.NewRedisCache(redis.NewClient(opts)), nil
	}
	return nhl.NewFileCache(cfg.GamesDir)
}
