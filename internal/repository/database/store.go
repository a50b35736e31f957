package database

import (
	"context"
	"database/sql"

	"dkv2_import/internal/models"
	"dkv2_import/internal/ports"
)

// Store bundles the three DKV2 table repositories behind ports.Store.
type Store struct {
	Creditors *CreditorRepo
	Contracts *ContractRepo
	Entries   *EntryRepo
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		Creditors: NewCreditorRepo(db),
		Contracts: NewContractRepo(db),
		Entries:   NewEntryRepo(db),
	}
}

func (s *Store) InsertOrGetCreditor(ctx context.Context, c models.Creditor) (int64, ports.Resolution, error) {
	return s.Creditors.InsertOrGet(ctx, c)
}

func (s *Store) InsertContract(ctx context.Context, v models.Contract) (int64, error) {
	return s.Contracts.Insert(ctx, v)
}

func (s *Store) InsertEntry(ctx context.Context, e models.LedgerEntry) (int64, error) {
	return s.Entries.Insert(ctx, e)
}
