/*
scheduler.go - Automated annual billing scheduler

PURPOSE:
  Periodically checks the dues-collection calendar and runs the annual
  billing batch once the collection window opens, so bills exist before
  members start paying.

DESIGN:
  - Runs a background goroutine with a configurable check interval
  - Fires only while the collection window is open
  - Skips fiscal years that already have generated bills, so restarts
    and repeated ticks stay idempotent

CONFIGURATION:
  - CheckInterval: How often to check (default: 1 hour)
  - Enabled: Whether the scheduler is active (default: true)

USAGE:
  scheduler := NewBillingScheduler(handler, logger)
  scheduler.Start()
  // ... later
  scheduler.Stop()

SEE ALSO:
  - handlers.go: RunBilling endpoint (manual runs)
  - engine/calendar.go: CollectionStatus
*/
package api

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bizagent538-commits/membership/engine"
)

// BillingScheduler runs the annual billing batch when collection opens.
type BillingScheduler struct {
	Handler       *Handler
	CheckInterval time.Duration
	Enabled       bool

	log    zerolog.Logger
	ticker *time.Ticker
	stop   chan struct{}
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewBillingScheduler creates a scheduler over the handler's services.
func NewBillingScheduler(handler *Handler, log zerolog.Logger) *BillingScheduler {
	return &BillingScheduler{
		Handler:       handler,
		CheckInterval: 1 * time.Hour,
		Enabled:       true,
		log:           log.With().Str("component", "scheduler").Logger(),
		stop:          make(chan struct{}),
	}
}

// Start begins the scheduler.
func (bs *BillingScheduler) Start() {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if !bs.Enabled {
		bs.log.Info().Msg("scheduler disabled, not starting")
		return
	}

	bs.ticker = time.NewTicker(bs.CheckInterval)
	bs.wg.Add(1)
	go bs.run()

	bs.log.Info().Dur("interval", bs.CheckInterval).Msg("scheduler started")
}

// Stop stops the scheduler and waits for the loop to exit.
func (bs *BillingScheduler) Stop() {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if bs.ticker != nil {
		bs.ticker.Stop()
		close(bs.stop)
		bs.wg.Wait()
		bs.log.Info().Msg("scheduler stopped")
	}
}

func (bs *BillingScheduler) run() {
	defer bs.wg.Done()

	// Run immediately on start
	bs.checkAndProcess()

	for {
		select {
		case <-bs.ticker.C:
			bs.checkAndProcess()
		case <-bs.stop:
			return
		}
	}
}

// checkAndProcess runs the billing batch if the collection window is open
// and this fiscal year has not been billed yet.
func (bs *BillingScheduler) checkAndProcess() {
	ctx := context.Background()
	today := bs.Handler.Now()

	collection := engine.CollectionStatus(today)
	if collection.Status != engine.StatusOpen {
		return
	}

	fiscalYear := engine.FiscalYear(today)
	existing, err := bs.Handler.Store.ListBillingRecords(ctx, fiscalYear)
	if err != nil {
		bs.log.Error().Err(err).Msg("failed to check existing billing records")
		return
	}
	if len(existing) > 0 {
		return
	}

	bs.log.Info().Str("fiscal_year", fiscalYear).Msg("collection open, running annual billing")

	summary, err := bs.Handler.Billing.Run(ctx, today)
	if err != nil {
		bs.log.Error().Err(err).Msg("scheduled billing run failed")
		return
	}

	bs.log.Info().Str("fiscal_year", summary.FiscalYear).
		Int("generated", summary.Generated).Int("skipped", summary.Skipped).
		Int("failed", len(summary.Failures)).Msg("scheduled billing run complete")
}
