package database

import (
	"context"
	"database/sql"

	"dkv2_import/internal/models"
)

type ContractRepo struct {
	db *sql.DB
}

func NewContractRepo(db *sql.DB) *ContractRepo {
	return &ContractRepo{db: db}
}

const insertContractQuery = `
	INSERT INTO Vertraege (KreditorId, Kennung, Anmerkung, ZSatz, Betrag, thesaurierend, Vertragsdatum, Kfrist, AnlagenId, LaufzeitEnde, Zeitstempel, zActive)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

func (r *ContractRepo) Insert(ctx context.Context, v models.Contract) (int64, error) {
	active := 0
	if v.Active {
		active = 1
	}
	res, err := r.db.ExecContext(ctx, insertContractQuery,
		v.CreditorID, v.Reference, v.Note, v.Rate, v.Amount, v.PayoutMode,
		v.SigningDate, v.NoticeMonths, v.AssetID, v.EndDate, v.Stamp, active,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
