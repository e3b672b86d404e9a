package appconsts

// These constants define the currencies a framedcoin network operates on.
// They cannot change throughout the lifetime of a network.
const (
	// BaseDenom is the denomination certificates escrow and pay out.
	BaseDenom = "ufrm"

	// BaseDenomDecimals is the number of decimals of BaseDenom relative to
	// one whole unit of the base currency.
	BaseDenomDecimals = 6

	// ReferenceCurrency labels the currency certificate values are reported
	// in. It is informational only; no balances are held in it.
	ReferenceCurrency = "USD"

	// NormalizedRateDecimals is the precision exchange rates are reported
	// with by the ExchangeRate query, regardless of the feed's precision.
	NormalizedRateDecimals = 18

	// MaxRateDecimals bounds the precision a price feed may report.
	MaxRateDecimals = 36
)

// Defaults applied by `framedcoind init`. Both are in BaseDenom.
const (
	// DefaultMintingFee is 0.005 of the base currency.
	DefaultMintingFee = 5_000

	// DefaultMinimumValueToMint is 0.01 of the base currency.
	DefaultMinimumValueToMint = 10_000
)

// Development price feed answer: 1234 reference units per base unit at 8
// decimals.
const (
	MockRateAnswer   = 123_400_000_000
	MockRateDecimals = 8
)
