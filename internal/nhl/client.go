// Package nhl fetches per-game box-score documents from the upstream stats
// API, backed by a cache. The engine only ever sees the get-by-id contract:
// a parsed document, a "not yet available" nil, or a transport error.
package nhl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/wallycup/stats-engine/internal/models"
)

type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	cache     Cache
	logger    *zap.SugaredLogger
}

type ClientConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Cache     Cache
	Logger    *zap.SugaredLogger
}

func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		cache:     cfg.Cache,
		logger:    cfg.Logger,
	}
}

// GetBoxScore returns the box score for a game. A (nil, nil) return means the
// game is not yet available upstream; the caller skips it. Cached documents
// are reused only when the cached game state is final; anything else is
// stale and refetched. Malformed cached documents are treated as misses.
func (c *Client) GetBoxScore(ctx context.Context, gameID int) (*models.BoxScore, error) {
	if raw, err := c.cache.Get(ctx, gameID); err == nil {
		var cached models.BoxScore
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			if cached.Final() {
				return &cached, nil
			}
		} else {
			c.logger.Warnw("Corrupt cached box score, refetching", "gameID", gameID, "error", jsonErr)
		}
	} else if !errors.Is(err, ErrCacheMiss) {
		c.logger.Warnw("Cache read failed, refetching", "gameID", gameID, "error", err)
	}

	return c.fetch(ctx, gameID)
}

func (c *Client) fetch(ctx context.Context, gameID int) (*models.BoxScore, error) {
	url := fmt.Sprintf("%s/%d/boxscore", c.baseURL, gameID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch game %d: %w", gameID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Infow("Game not available", "gameID", gameID, "status", resp.StatusCode)
		// Cache the empty document so future-game probes stay cheap; it never
		// passes the final-state check, so it gets refetched once live.
		if err := c.cache.Put(ctx, gameID, []byte("{}")); err != nil {
			c.logger.Warnw("Cache write failed", "gameID", gameID, "error", err)
		}
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read game %d: %w", gameID, err)
	}

	var box models.BoxScore
	if err := json.Unmarshal(raw, &box); err != nil {
		c.logger.Warnw("Malformed box score", "gameID", gameID, "error", err)
		return nil, nil
	}

	if err := c.cache.Put(ctx, gameID, raw); err != nil {
		c.logger.Warnw("Cache write failed", "gameID", gameID, "error", err)
	}

	c.logger.Infow("Fetched box score", "gameID", gameID, "state", box.GameState)
	return &box, nil
}
