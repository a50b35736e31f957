package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"dkv2_import/internal/models"
	"dkv2_import/internal/ports"
)

// ErrCreditorNotFound: the insert hit a uniqueness constraint but the
// dedup lookup found no matching row either.
var ErrCreditorNotFound = errors.New("creditor not resolvable")

type CreditorRepo struct {
	db *sql.DB
}

func NewCreditorRepo(db *sql.DB) *CreditorRepo {
	return &CreditorRepo{db: db}
}

const insertCreditorQuery = `
	INSERT INTO Kreditoren (Vorname, Nachname, Strasse, Plz, Stadt, Land, Email, Anmerkung, IBAN, BIC, Zeitstempel)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const findCreditorQuery = `
	SELECT id FROM Kreditoren
	WHERE Vorname = ? AND Nachname = ? AND Strasse = ? AND Stadt = ?
`

// InsertOrGet inserts the creditor, or, when the insert trips a
// uniqueness constraint, reuses the id of the row matching the dedup
// key (Vorname, Nachname, Strasse, Stadt). Any other storage error
// propagates unchanged.
func (r *CreditorRepo) InsertOrGet(ctx context.Context, c models.Creditor) (int64, ports.Resolution, error) {
	res, err := r.db.ExecContext(ctx, insertCreditorQuery,
		c.FirstName, c.LastName, c.Street, c.Zip, c.City, c.Country,
		c.Email, c.Note, c.IBAN, c.BIC, c.Stamp,
	)
	if err == nil {
		id, err := res.LastInsertId()
		if err != nil {
			return 0, 0, err
		}
		return id, ports.ResolutionInserted, nil
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return 0, 0, err
	}

	var id int64
	ferr := r.db.QueryRowContext(ctx, findCreditorQuery,
		c.FirstName, c.LastName, c.Street, c.City,
	).Scan(&id)
	if errors.Is(ferr, sql.ErrNoRows) {
		return 0, 0, fmt.Errorf("%w: %q %q, %q, %q", ErrCreditorNotFound,
			c.FirstName, c.LastName, c.Street, c.City)
	}
	if ferr != nil {
		return 0, 0, ferr
	}
	return id, ports.ResolutionReused, nil
}
