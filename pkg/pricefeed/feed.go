// Package pricefeed provides price oracle adapters for the framedcoin module.
// Adapters pass samples through untouched: they never cache and never retry.
package pricefeed

import (
	"context"
	"fmt"

	"cosmossdk.io/math"

	"github.com/framedcoin/framedcoin/pkg/appconsts"
	"github.com/framedcoin/framedcoin/x/framedcoin/types"
)

var _ types.PriceOracle = (*StaticFeed)(nil)

// StaticFeed always answers with the same rate. It stands in for a real feed
// on development networks.
type StaticFeed struct {
	rate types.Rate
}

// NewStaticFeed returns a feed answering answer at the given precision.
func NewStaticFeed(answer math.Int, decimals uint32) *StaticFeed {
	return &StaticFeed{rate: types.NewRate(answer, decimals)}
}

// NewMockFeed returns the development feed: 1234 reference units per base
// unit at 8 decimals.
func NewMockFeed() *StaticFeed {
	return NewStaticFeed(math.NewInt(appconsts.MockRateAnswer), appconsts.MockRateDecimals)
}

func (f *StaticFeed) CurrentRate(context.Context) (types.Rate, error) {
	return f.rate, nil
}

func (f *StaticFeed) String() string {
	return fmt.Sprintf("static(%s)", f.rate)
}
