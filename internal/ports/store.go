package ports

import (
	"context"

	"dkv2_import/internal/models"
)

// Resolution says how a creditor identity was obtained.
type Resolution int

const (
	ResolutionInserted Resolution = iota
	ResolutionReused
)

func (r Resolution) String() string {
	if r == ResolutionReused {
		return "reused"
	}
	return "inserted"
}

// Store appends normalized records to the destination database.
// Implementations report a uniqueness conflict on the creditor dedup key
// as ResolutionReused; every other storage error propagates unchanged.
type Store interface {
	InsertOrGetCreditor(ctx context.Context, c models.Creditor) (int64, Resolution, error)
	InsertContract(ctx context.Context, v models.Contract) (int64, error)
	InsertEntry(ctx context.Context, e models.LedgerEntry) (int64, error)
}
