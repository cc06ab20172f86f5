package payment

import "errors"

// Provider errors
var (
	// ErrProviderUnavailable covers every transport or provider-side
	// failure; callers either abort or apply their documented fallback.
	ErrProviderUnavailable = errors.New("payment provider unavailable")
)
