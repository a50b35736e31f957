package database

import (
	"context"
	"database/sql"

	"dkv2_import/internal/models"
)

type EntryRepo struct {
	db *sql.DB
}

func NewEntryRepo(db *sql.DB) *EntryRepo {
	return &EntryRepo{db: db}
}

const insertEntryQuery = `
	INSERT INTO Buchungen (VertragsId, Datum, BuchungsArt, Betrag, Zeitstempel)
	VALUES (?, ?, ?, ?, ?)
`

func (r *EntryRepo) Insert(ctx context.Context, e models.LedgerEntry) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertEntryQuery,
		e.ContractID, e.Date, e.BookingType, e.Amount, e.Stamp,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
