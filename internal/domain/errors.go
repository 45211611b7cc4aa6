package domain

import "errors"

var (
	// ErrPriceUnavailable is returned when a price lookup fails for a symbol.
	// The loop treats it as transient: the stored price keeps its previous
	// value and the symbol is retried on the next fetch cycle.
	ErrPriceUnavailable = errors.New("price unavailable")

	// ErrInvalidSymbol is returned when the exchange rejects a symbol. Not
	// distinguished from a network failure at the store level.
	ErrInvalidSymbol = errors.New("invalid symbol")
)
