package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// League identity
	LeagueName       string
	TournamentStatus string

	// Data layout
	DataDir       string
	RostersPath   string
	OverridesPath string
	SnapshotsDir  string
	GamesDir      string
	ReportPath    string

	// Box-score source
	SourceBaseURL    string
	UserAgent        string
	FetchTimeout     time.Duration
	FetchConcurrency int

	// Optional shared box-score cache
	RedisURL string

	// Game id range (inclusive)
	GameIDStart int
	GameIDEnd   int

	// Tournament calendar
	TournamentStart string
	TournamentEnd   string

	// Engine tunables
	TrendWindow     time.Duration
	HotLimit        int
	ColdFlagLimit   int
	ColdReportLimit int
	MilestoneLimit  int
	SavePctMinShots int
	TopPerformers   int
	StandingsMovers int
}

// Load loads configuration from environment variables. Every knob has a
// default so the fetcher can run against a bare data directory.
func Load() *Config {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		LeagueName:       getEnv("LEAGUE_NAME", "Wally Cup"),
		TournamentStatus: getEnv("TOURNAMENT_STATUS", "group_stage"),

		DataDir: getEnv("DATA_DIR", "./data"),

		SourceBaseURL:    getEnv("SOURCE_BASE_URL", "https://api-web.nhle.com/v1/gamecenter"),
		UserAgent:        getEnv("SOURCE_USER_AGENT", "Mozilla/5.0"),
		FetchTimeout:     getEnvDuration("FETCH_TIMEOUT", 30*time.Second),
		FetchConcurrency: getEnvInt("FETCH_CONCURRENCY", 4),

		RedisURL: getEnv("REDIS_URL", ""),

		GameIDStart: getEnvInt("GAME_ID_START", 2025090001),
		GameIDEnd:   getEnvInt("GAME_ID_END", 2025090022),

		TournamentStart: getEnv("TOURNAMENT_START_DATE", "2026-02-11"),
		TournamentEnd:   getEnv("TOURNAMENT_END_DATE", "2026-02-22"),

		TrendWindow:     getEnvDuration("TREND_WINDOW", 72*time.Hour),
		HotLimit:        getEnvInt("HOT_LIMIT", 10),
		ColdFlagLimit:   getEnvInt("COLD_FLAG_LIMIT", 50),
		ColdReportLimit: getEnvInt("COLD_REPORT_LIMIT", 10),
		MilestoneLimit:  getEnvInt("MILESTONE_LIMIT", 50),
		SavePctMinShots: getEnvInt("SAVE_PCT_MIN_SHOTS", 20),
		TopPerformers:   getEnvInt("TOP_PERFORMERS", 10),
		StandingsMovers: getEnvInt("STANDINGS_MOVERS", 3),
	}

	cfg.RostersPath = getEnv("ROSTERS_PATH", filepath.Join(cfg.DataDir, "rosters.json"))
	cfg.OverridesPath = getEnv("NAME_OVERRIDES_PATH", filepath.Join(cfg.DataDir, "name_overrides.json"))
	cfg.SnapshotsDir = getEnv("SNAPSHOTS_DIR", filepath.Join(cfg.DataDir, "snapshots"))
	cfg.GamesDir = getEnv("GAMES_DIR", filepath.Join(cfg.DataDir, "db", "games"))
	cfg.ReportPath = getEnv("REPORT_PATH", filepath.Join(cfg.DataDir, "site", "public", "data", "standings.json"))

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
