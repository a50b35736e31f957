package importer

import (
	"context"
	"fmt"
	"log"

	"dkv2_import/internal/config"
	"dkv2_import/internal/ports"
)

type Request struct {
	FilePath string
	RunID    string
}

// Service runs one import: read all rows, normalize and insert them one
// at a time, in input order. A single row's failure never aborts the
// batch.
type Service struct {
	Opener ports.FileOpener
	Store  ports.Store
	Cfg    *config.Config
}

func NewService(opener ports.FileOpener, store ports.Store, cfg *config.Config) *Service {
	return &Service{Opener: opener, Store: store, Cfg: cfg}
}

func (s *Service) Import(ctx context.Context, req Request) (*Report, error) {
	log.Printf("[IMP][START] path=%q run_id=%q", req.FilePath, req.RunID)

	rc, meta, err := s.Opener.Open(ctx, req.FilePath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer rc.Close()

	var header []string
	var rows [][]string
	switch detectFormat(req.FilePath, meta.ContentType) {
	case "xlsx":
		header, rows, err = readXLSXFirstSheet(rc)
	default:
		header, rows, err = readCSV(rc)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	builder := NewBuilder(NewFields(header), s.Cfg)
	rep := &Report{RunID: req.RunID}

	for i, row := range rows {
		idx := i + 1

		// A blank leading cell marks an empty line.
		if firstCell(row) == "" {
			rep.Skipped = append(rep.Skipped, RowRef{Index: idx, Row: row})
			continue
		}

		rec, skip, err := builder.Build(row)
		if err != nil {
			log.Printf("[IMP][ROW][ERR] row=%d parse: %v (%s)", idx, err, firstCell(row))
			rep.ParseFailed = append(rep.ParseFailed, RowFailure{Index: idx, Row: row, Err: err})
			continue
		}
		if skip {
			log.Printf("[IMP][ROW] skipping row=%d %s", idx, firstCell(row))
			rep.Skipped = append(rep.Skipped, RowRef{Index: idx, Row: row})
			continue
		}

		ids, err := s.insert(ctx, rec)
		if err != nil {
			log.Printf("[IMP][ROW][ERR] row=%d insert: %v (%s)", idx, err, firstCell(row))
			rep.InsertFailed = append(rep.InsertFailed, RowFailure{Index: idx, Row: row, Err: err, Records: rec})
			continue
		}
		ids.Index = idx
		log.Printf("[IMP][ROW] inserted row=%d creditor=%d (%s) contract=%d entries=%d",
			idx, ids.CreditorID, ids.Resolution, ids.ContractID, len(ids.EntryIDs))
		rep.Succeeded = append(rep.Succeeded, ids)
	}

	log.Printf("[IMP][DONE] run_id=%q rows=%d ok=%d skipped=%d parse_failed=%d insert_failed=%d",
		req.RunID, len(rows), len(rep.Succeeded), len(rep.Skipped), len(rep.ParseFailed), len(rep.InsertFailed))
	return rep, nil
}

// insert persists one row: creditor (inserted or reused), then the
// contract, then each entry. The sequence is not wrapped in a
// transaction; a failure mid-way leaves earlier records behind. That
// matches the source tool and is documented in DESIGN.md.
func (s *Service) insert(ctx context.Context, rec *Records) (InsertedIDs, error) {
	creditorID, res, err := s.Store.InsertOrGetCreditor(ctx, rec.Creditor)
	if err != nil {
		return InsertedIDs{}, fmt.Errorf("creditor: %w", err)
	}

	contract := rec.Contract
	contract.CreditorID = creditorID
	contractID, err := s.Store.InsertContract(ctx, contract)
	if err != nil {
		return InsertedIDs{}, fmt.Errorf("contract: %w", err)
	}

	ids := InsertedIDs{CreditorID: creditorID, Resolution: res, ContractID: contractID}
	for _, e := range rec.Entries {
		e.ContractID = contractID
		id, err := s.Store.InsertEntry(ctx, e)
		if err != nil {
			return InsertedIDs{}, fmt.Errorf("entry: %w", err)
		}
		ids.EntryIDs = append(ids.EntryIDs, id)
	}
	return ids, nil
}
