package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/service"
	"github.com/MKhiriev/go-chain-keeper/models"
)

const priceChannel = "price"

// PriceWorker refreshes the native currency price on a ticker.
type PriceWorker struct {
	prices   service.PriceService
	interval time.Duration
	out      chan<- any
	logger   *logger.Logger
}

// NewPriceWorker returns a worker publishing models.PriceUpdate on out every
// interval (30s when interval is not positive). Failures are published as
// updates with Err set.
func NewPriceWorker(prices service.PriceService, interval time.Duration, out chan<- any, log *logger.Logger) *PriceWorker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &PriceWorker{prices: prices, interval: interval, out: out, logger: log}
}

func (p *PriceWorker) Run(ctx context.Context) {
	t := time.NewTicker(p.interval)
	defer t.Stop()

	p.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.tick(ctx)
		}
	}
}

func (p *PriceWorker) tick(ctx context.Context) {
	update, err := p.prices.NativePrice(ctx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		p.logger.Err(err).Str("func", "PriceWorker.tick").Msg("price refresh failed")
		update = models.PriceUpdate{Err: err, At: time.Now()}
	}

	_ = publish(ctx, p.out, update, priceChannel, p.logger)
}
