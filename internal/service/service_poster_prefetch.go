// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/workers"
	"github.com/MKhiriev/go-movie-browser/models"
)

// prefetchQueueSize holds a few catalog pages worth of poster paths. When
// the queue is full Enqueue drops the rest of the batch.
const prefetchQueueSize = 64

// defaultPrefetchWorkers is used when the configured worker count is zero or
// negative.
const defaultPrefetchWorkers = 3

// posterPrefetcher is the concrete implementation of PosterPrefetcher. It
// owns a pool of workers draining a shared queue of poster paths, warming
// the poster cache before the user opens a detail screen.
type posterPrefetcher struct {
	posters PosterService
	count   int
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	queue  chan string
	wg     sync.WaitGroup
}

// NewPosterPrefetcher constructs a PosterPrefetcher over the given
// PosterService. The pool size comes from cfg. The pool is not running until
// Start is called.
func NewPosterPrefetcher(posters PosterService, cfg config.ClientWorkers, logger *logger.Logger) PosterPrefetcher {
	return &posterPrefetcher{
		posters: posters,
		count:   cfg.PrefetchWorkers,
		logger:  logger,
	}
}

// Start implements PosterPrefetcher. A second Start stops the previous pool
// before launching the new one, so at most one pool is draining the queue at
// any time. The workers exit when ctx is cancelled or Stop is called.
func (p *posterPrefetcher) Start(ctx context.Context) {
	count := p.count
	if count <= 0 {
		count = defaultPrefetchWorkers
	}

	p.Stop()

	p.mu.Lock()
	poolCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.queue = make(chan string, prefetchQueueSize)
	p.wg.Add(count)

	pool := make([]workers.Worker, 0, count)
	for i := 0; i < count; i++ {
		pool = append(pool, &prefetchWorker{
			ctx:     poolCtx,
			queue:   p.queue,
			posters: p.posters,
			wg:      &p.wg,
			logger:  p.logger,
		})
	}
	p.mu.Unlock()

	p.logger.Debug().Str("func", "posterPrefetcher.Start").Int("workers", count).Msg("poster prefetch pool started")

	workers.NewWorkers(pool...).Run()
}

// Enqueue implements PosterPrefetcher. Every send is non-blocking: when the
// queue is full or no pool is running the remaining items are skipped.
func (p *posterPrefetcher) Enqueue(items []models.MediaItem) {
	p.mu.Lock()
	queue := p.queue
	p.mu.Unlock()

	if queue == nil {
		return
	}

	for _, item := range items {
		if item.PosterPath == "" {
			continue
		}
		select {
		case queue <- item.PosterPath:
		default:
			return
		}
	}
}

// Stop implements PosterPrefetcher. It cancels the pool context and blocks
// until every worker goroutine has exited. The queue channel is never
// closed, a concurrent Enqueue simply stops finding takers.
func (p *posterPrefetcher) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.queue = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

// prefetchWorker drains the shared queue until its context is cancelled.
// Run spawns a goroutine, so starting the whole pool does not block.
type prefetchWorker struct {
	ctx     context.Context
	queue   <-chan string
	posters PosterService
	wg      *sync.WaitGroup
	logger  *logger.Logger
}

// Run implements workers.Worker.
func (w *prefetchWorker) Run() {
	go func() {
		defer w.wg.Done()

		for {
			select {
			case <-w.ctx.Done():
				return
			case path := <-w.queue:
				if _, err := w.posters.Poster(w.ctx, path); err != nil {
					w.logger.Debug().Err(err).Str("func", "prefetchWorker.Run").Str("path", path).Msg("poster prefetch failed")
				}
			}
		}
	}()
}
