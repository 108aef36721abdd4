package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/minipay/ledger-api/internal/core/ports"
)

// RateCache caches upstream exchange rates (Redis). A nil cache means
// every conversion hits the upstream API.
type RateCache interface {
	Get(ctx context.Context, currency string) (rate float64, ok bool, err error)
	Set(ctx context.Context, currency string, rate float64) error
}

// RateService converts balances into a requested currency through an
// external rate source with a read-through cache. Conversion failures are
// terminal for the request; there are no retries.
type RateService struct {
	source ports.RateSource
	cache  RateCache
	base   string
	log    zerolog.Logger
}

func NewRateService(source ports.RateSource, cache RateCache, baseCurrency string, log zerolog.Logger) *RateService {
	return &RateService{source: source, cache: cache, base: baseCurrency, log: log}
}

func (s *RateService) BaseCurrency() string {
	return s.base
}

// Convert multiplies amount by the base-to-currency rate. The base currency
// passes through untouched.
func (s *RateService) Convert(ctx context.Context, amount float64, currency string) (float64, error) {
	if currency == s.base {
		return amount, nil
	}

	if s.cache != nil {
		rate, ok, err := s.cache.Get(ctx, currency)
		if err != nil {
			s.log.Warn().Err(err).Str("currency", currency).Msg("rate cache read failed")
		} else if ok {
			return amount * rate, nil
		}
	}

	rate, err := s.source.Rate(ctx, currency)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, currency, rate); err != nil {
			s.log.Warn().Err(err).Str("currency", currency).Msg("rate cache write failed")
		}
	}

	return amount * rate, nil
}
