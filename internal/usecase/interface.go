package usecase

import (
	"context"

	"rental-ledger/internal/domain"
)

// BatchRepository defines the interface for fetching the input document.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go BatchRepository
type BatchRepository interface {
	GetBatch(ctx context.Context, path string) (*domain.Batch, error)
}
