package handlers

import (
	"os"
	"sync"
	"time"

	"github.com/wallycup/stats-engine/internal/models"
	"github.com/wallycup/stats-engine/internal/store"
)

// FileProvider reads the report document from disk, caching the parsed
// document until the file's mtime changes. The fetcher writes the file
// atomically, so a reload never sees a partial document.
type FileProvider struct {
	path string

	mu     sync.Mutex
	mtime  time.Time
	cached *models.Report
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Current() (*models.Report, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	info, err := os.Stat(p.path)
	if err != nil {
		return nil, err
	}
	if p.cached != nil && info.ModTime().Equal(p.mtime) {
		return p.cached, nil
	}

	report, err := store.ReadReport(p.path)
	if err != nil {
		return nil, err
	}
	p.cached = report
	p.mtime = info.ModTime()
	return report, nil
}

// StaticProvider serves a fixed report, for tests and one-shot tooling.
type StaticProvider struct {
	Report *models.Report
	Err    error
}

func (p *StaticProvider) Current() (*models.Report, error) {
	return p.Report, p.Err
}
