// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-activity-signup/internal/logger"
)

// CatalogRefresher periodically asks the UI to reload the activity catalog.
// It only posts requests; the reload itself runs inside the UI loop and is
// not coordinated with user-triggered reloads.
type CatalogRefresher struct {
	interval time.Duration
	reload   func()

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewCatalogRefresher returns a refresher calling reload every interval.
// A zero or negative interval disables it: Run becomes a no-op.
func NewCatalogRefresher(interval time.Duration, reload func(), logger *logger.Logger) *CatalogRefresher {
	return &CatalogRefresher{
		interval: interval,
		reload:   reload,
		logger:   logger,
	}
}

// Run stops any previous run and starts the ticker goroutine.
func (r *CatalogRefresher) Run() {
	if r.interval <= 0 || r.reload == nil {
		r.logger.Debug().Msg("catalog refresher disabled")
		return
	}

	r.Stop()

	r.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	r.logger.Info().Dur("interval", r.interval).Msg("catalog refresher started")

	go func() {
		defer r.wg.Done()
		t := time.NewTicker(r.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				r.reload()
			}
		}
	}()
}

// Stop cancels the ticker goroutine and waits for it to exit.
func (r *CatalogRefresher) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}
