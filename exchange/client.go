package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/govalues/decimal"
)

// Client fetches exchange rates over HTTP from an exchangeratesapi-style
// endpoint returning a JSON body of the form:
//
//	{"base": "EUR", "rates": {"BRL": 6.08, "USD": 1.09}}
//
// Client implements [RateProvider]. Each call to Rates performs one request;
// there is no caching or retry, callers add those policies if they need them.
type Client struct {
	baseURL   string
	accessKey string
	hc        *http.Client
	log       *slog.Logger
}

// NewClient returns a rates client for the given endpoint.
// The access key is sent as the access_key query parameter and may be empty
// for endpoints that do not require one. A nil logger disables logging.
func NewClient(baseURL, accessKey string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL:   baseURL,
		accessKey: accessKey,
		hc:        &http.Client{Timeout: 10 * time.Second},
		log:       log,
	}
}

type ratesResponse struct {
	Base  string                 `json:"base"`
	Rates map[string]json.Number `json:"rates"`
}

// Rates implements the [RateProvider] interface.
// The returned map is keyed by upper-case ISO 4217 code, with rates relative
// to the endpoint's base currency.
func (c *Client) Rates(ctx context.Context) (map[string]decimal.Decimal, error) {
	rates, err := c.rates(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching rates from %v: %w", c.baseURL, err)
	}
	return rates, nil
}

func (c *Client) rates(ctx context.Context) (map[string]decimal.Decimal, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}
	if c.accessKey != "" {
		q := u.Query()
		q.Set("access_key", c.accessKey)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %v", resp.Status)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	rates := make(map[string]decimal.Decimal, len(body.Rates))
	for code, rate := range body.Rates {
		d, err := decimal.Parse(rate.String())
		if err != nil {
			return nil, fmt.Errorf("parsing rate for %v: %w", code, err)
		}
		rates[code] = d
	}

	c.log.DebugContext(ctx, "fetched exchange rates",
		"base", body.Base,
		"currencies", len(rates),
		"duration", time.Since(start))
	return rates, nil
}
