package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/minipay/ledger-api/internal/core/domain"
)

type stubRateSource struct {
	rate  float64
	err   error
	calls int
}

func (s *stubRateSource) Rate(_ context.Context, _ string) (float64, error) {
	s.calls++
	return s.rate, s.err
}

type stubRateCache struct {
	rates map[string]float64
	sets  int
}

func (c *stubRateCache) Get(_ context.Context, currency string) (float64, bool, error) {
	rate, ok := c.rates[currency]
	return rate, ok, nil
}

func (c *stubRateCache) Set(_ context.Context, currency string, rate float64) error {
	if c.rates == nil {
		c.rates = make(map[string]float64)
	}
	c.rates[currency] = rate
	c.sets++
	return nil
}

func TestRateService_Convert_BaseCurrencyPassthrough(t *testing.T) {
	source := &stubRateSource{rate: 0.012}
	svc := NewRateService(source, nil, "INR", zerolog.Nop())

	got, err := svc.Convert(context.Background(), 700, "INR")
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if got != 700 {
		t.Fatalf("expected 700, got %v", got)
	}
	if source.calls != 0 {
		t.Fatalf("base currency must not hit the source")
	}
}

func TestRateService_Convert_FetchesAndCaches(t *testing.T) {
	source := &stubRateSource{rate: 0.012}
	cache := &stubRateCache{}
	svc := NewRateService(source, cache, "INR", zerolog.Nop())

	got, err := svc.Convert(context.Background(), 1000, "USD")
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if got != 12 {
		t.Fatalf("expected 12, got %v", got)
	}
	if cache.sets != 1 {
		t.Fatalf("expected rate to be cached")
	}

	// Second conversion is served from cache.
	if _, err := svc.Convert(context.Background(), 500, "USD"); err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("expected one source call, got %d", source.calls)
	}
}

func TestRateService_Convert_UpstreamFailure(t *testing.T) {
	source := &stubRateSource{err: domain.ErrRateUnavailable}
	svc := NewRateService(source, nil, "INR", zerolog.Nop())

	if _, err := svc.Convert(context.Background(), 100, "USD"); err == nil {
		t.Fatalf("expected error")
	}
}
