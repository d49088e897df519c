// Package usecase implements the business logic for watchlist operations.
package usecase

import (
	"context"

	"marketdata_backend/internal/feature/symbollist/domain/entity"
)

// SymbolRepository abstracts the persistence layer for watchlist entries.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	ListActiveCodes(ctx context.Context) ([]string, error)
}

// SymbolUsecase provides business logic for watchlist operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols returns all active watchlist entries.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// ListActiveCodes returns only the pair codes of active entries, in display
// order. The batch refresh runner iterates over this list.
func (u *SymbolUsecase) ListActiveCodes(ctx context.Context) ([]string, error) {
	return u.repo.ListActiveCodes(ctx)
}
