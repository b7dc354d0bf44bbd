package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/adapter"
	"github.com/MKhiriev/go-chain-keeper/models"
)

type priceService struct {
	prices adapter.PriceAdapter
	chain  ChainService
	now    func() time.Time
}

func NewPriceService(prices adapter.PriceAdapter, chain ChainService) PriceService {
	return &priceService{prices: prices, chain: chain, now: time.Now}
}

// NativePrice returns an update with an empty USD value when the active
// network has no price id (testnets).
func (p *priceService) NativePrice(ctx context.Context) (models.PriceUpdate, error) {
	network := p.chain.ActiveNetwork()
	update := models.PriceUpdate{Symbol: network.Symbol, At: p.now()}
	if network.PriceID == "" {
		return update, nil
	}

	usd, err := p.prices.USDPrice(ctx, network.PriceID)
	if err != nil {
		return models.PriceUpdate{}, mapPriceError(err)
	}

	update.USD = FormatUSD(usd)
	return update, nil
}

// FormatUSD renders a price as "$3251.07".
func FormatUSD(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
