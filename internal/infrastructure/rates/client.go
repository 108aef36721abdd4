// Package rates implements the upstream currency-rate lookup.
package rates

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/minipay/ledger-api/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

// Client fetches exchange rates from a currencyapi.com-style endpoint:
//
//	GET <baseURL>?apikey=<key>&base=<base>
//	responds {"data": {"USD": {"value": 0.012}, ...}}
type Client struct {
	baseURL string
	apiKey  string
	base    string
	http    *http.Client
}

func NewClient(baseURL, apiKey, baseCurrency string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		base:    baseCurrency,
		http:    &http.Client{Timeout: timeout},
	}
}

// Rate returns the rate from the base currency to the given currency code.
// Any transport, status, or payload problem collapses into
// domain.ErrRateUnavailable; the caller does not retry.
func (c *Client) Rate(ctx context.Context, currency string) (float64, error) {
	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("base", c.base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrRateUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrRateUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: upstream status %d", domain.ErrRateUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrRateUnavailable, err)
	}

	value := gjson.GetBytes(body, "data."+currency+".value")
	if !value.Exists() {
		return 0, fmt.Errorf("%w: no rate for %s", domain.ErrRateUnavailable, currency)
	}

	return value.Float(), nil
}
