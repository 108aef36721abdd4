package ports

import "context"

// RateSource returns the exchange rate from the base currency to the given
// currency code. Implementations query an external rate API; failures
// surface as domain.ErrRateUnavailable.
type RateSource interface {
	Rate(ctx context.Context, currency string) (float64, error)
}

// RateConverter converts a balance into a requested currency.
type RateConverter interface {
	Convert(ctx context.Context, amount float64, currency string) (float64, error)
	BaseCurrency() string
}
