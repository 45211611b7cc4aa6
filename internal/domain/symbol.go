package domain

// SymbolConfig describes a single tracked trading pair.
// Instances are immutable after construction; the tracked set is fixed at
// startup and passed down to the store and the loop.
type SymbolConfig struct {
	Symbol      string `yaml:"symbol"`       // Exchange ticker (e.g., "BTCUSDT")
	DisplayName string `yaml:"display_name"` // Human label (e.g., "BTC/USDT")
	Color       string `yaml:"color"`        // Display color token (W3C name)
	Precision   int32  `yaml:"precision"`    // Decimal digits when formatting
}

// DefaultSymbols returns the built-in watch list, used when no configuration
// file overrides it.
func DefaultSymbols() []SymbolConfig {
	return []SymbolConfig{
		{Symbol: "BTCUSDT", DisplayName: "BTC/USDT", Color: "green", Precision: 2},
		{Symbol: "ETHUSDT", DisplayName: "ETH/USDT", Color: "blue", Precision: 2},
		{Symbol: "BNBUSDT", DisplayName: "BNB/USDT", Color: "yellow", Precision: 2},
		{Symbol: "UNIUSDT", DisplayName: "UNI/USDT", Color: "aqua", Precision: 2},
		{Symbol: "TONUSDT", DisplayName: "TON/USDT", Color: "lightblue", Precision: 4},
		{Symbol: "SOLUSDT", DisplayName: "SOL/USDT", Color: "aqua", Precision: 2},
		{Symbol: "XRPUSDT", DisplayName: "XRP/USDT", Color: "fuchsia", Precision: 4},
		{Symbol: "DOGEUSDT", DisplayName: "DOGE/USDT", Color: "lightyellow", Precision: 6},
		{Symbol: "ADAUSDT", DisplayName: "ADA/USDT", Color: "lightcyan", Precision: 4},
	}
}
