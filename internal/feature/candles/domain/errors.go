// Package domain defines domain-level errors for the candles feature.
package domain

import "errors"

// Domain errors for series fetch and storage operations.
// These errors represent business-level failures and should be handled appropriately by upper layers.
var (
	// ErrInvalidSymbol indicates that a requested symbol does not match the
	// allowlist pattern. This fails fast: no provider is attempted.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrRestrictedLocation marks a provider rejection caused by a geographic
	// or access restriction. The fetch chain reacts by trying the regional
	// mirror of the same provider before moving on to the next one.
	ErrRestrictedLocation = errors.New("restricted location")

	// ErrAllProvidersFailed is terminal: every provider in the chain failed.
	// It wraps the joined per-provider errors.
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrStoreWrite indicates the fetched series could not be persisted.
	// The series itself is still returned to the caller alongside this error.
	ErrStoreWrite = errors.New("series store write failed")
)
