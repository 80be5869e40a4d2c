package model

import "errors"

// Sentinel errors callers can discriminate with errors.Is. Every error the
// store returns wraps one of these with a human-readable context string
// naming the symbol/value/limit involved.
var (
	ErrSymbolExists      = errors.New("symbol already initialized")
	ErrSymbolNotFound    = errors.New("symbol not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrRuleViolation     = errors.New("order violates symbol rule")
	ErrInsufficientCash  = errors.New("insufficient available cash")
	ErrInsufficientSize  = errors.New("insufficient available position size")
	ErrInvalidLeverage   = errors.New("leverage must be >= 1")
	ErrInvariantViolated = errors.New("store invariant violated")
)
