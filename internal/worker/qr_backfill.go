package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"
)

// CanteenFacade exposes the subset of application functionality required by the worker.
type CanteenFacade interface {
	OrdersMissingQRCode(ctx context.Context, limit int) ([]model.Order, error)
	AttachQRCode(ctx context.Context, order model.Order) error
}

// QRBackfill retries QR generation for orders that were persisted without a
// payload. Order creation swallows QR failures, so this pool is what
// eventually gives those orders a scannable code.
type QRBackfill struct {
	facade       CanteenFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewQRBackfill constructs the backfill worker pool.
func NewQRBackfill(facade CanteenFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *QRBackfill {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &QRBackfill{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (p *QRBackfill) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *QRBackfill) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *QRBackfill) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *QRBackfill) fetchAndDispatch(ctx context.Context) {
	orders, err := p.facade.OrdersMissingQRCode(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("fetch orders missing qr code failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- order:
		}
	}
}

func (p *QRBackfill) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-p.jobs:
			if !ok {
				return
			}
			if err := p.facade.AttachQRCode(ctx, order); err != nil {
				p.logger.Error("qr backfill failed",
					slog.String("order_number", order.Number),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
