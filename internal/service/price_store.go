package service

import (
	"sync"

	"cryptoview/internal/domain"

	"github.com/shopspring/decimal"
)

// PriceStore holds the last observed price for every configured symbol.
// It is a display mirror of whatever the source returns: prices are stored
// unvalidated, each update overwrites the previous value, and no history is
// kept.
type PriceStore struct {
	mu      sync.RWMutex
	symbols []domain.SymbolConfig
	prices  map[string]decimal.Decimal
}

// NewPriceStore creates a store with exactly one entry per configured symbol.
// Every entry starts at zero and stays there until the first successful fetch.
func NewPriceStore(symbols []domain.SymbolConfig) *PriceStore {
	prices := make(map[string]decimal.Decimal, len(symbols))
	for _, sc := range symbols {
		prices[sc.Symbol] = decimal.Zero
	}
	return &PriceStore{symbols: symbols, prices: prices}
}

// Update unconditionally overwrites the stored price for symbol.
func (s *PriceStore) Update(symbol string, price decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prices[symbol] = price
}

// Get returns the last stored price for symbol, or zero if none was ever set.
func (s *PriceStore) Get(symbol string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.prices[symbol]
}

// Symbols returns the configured symbol set in display order.
func (s *PriceStore) Symbols() []domain.SymbolConfig {
	return s.symbols
}
