package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cosmossdk.io/math"

	"github.com/framedcoin/framedcoin/x/framedcoin/types"
)

var _ types.PriceOracle = (*HTTPFeed)(nil)

// HTTPFeed reads the latest answer of a remote aggregator exposing
//
//	GET <url> -> {"answer": "123400000000", "decimals": 8}
//
// Every call performs exactly one request.
type HTTPFeed struct {
	url    string
	client *http.Client
}

func NewHTTPFeed(url string, httpClient *http.Client) *HTTPFeed {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &HTTPFeed{url: strings.TrimRight(url, "/"), client: httpClient}
}

type latestAnswer struct {
	Answer   string `json:"answer"`
	Decimals uint32 `json:"decimals"`
}

// CurrentRate returns the feed's latest answer.
func (f *HTTPFeed) CurrentRate(ctx context.Context) (types.Rate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return types.Rate{}, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return types.Rate{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return types.Rate{}, fmt.Errorf("price feed %s: status %d: %s", f.url, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out latestAnswer
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return types.Rate{}, fmt.Errorf("price feed %s: %w", f.url, err)
	}
	answer, ok := math.NewIntFromString(out.Answer)
	if !ok {
		return types.Rate{}, fmt.Errorf("price feed %s: invalid answer %q", f.url, out.Answer)
	}

	rate := types.NewRate(answer, out.Decimals)
	if err := rate.Validate(); err != nil {
		return types.Rate{}, fmt.Errorf("price feed %s: %w", f.url, err)
	}
	return rate, nil
}

func (f *HTTPFeed) String() string {
	return "http(" + f.url + ")"
}
