package importer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"dkv2_import/internal/ports"
)

// RowRef points back at a raw input row.
type RowRef struct {
	Index int
	Row   []string
}

// RowFailure is one row that could not be imported.
type RowFailure struct {
	Index   int
	Row     []string
	Err     error
	Records *Records // built records, set for insert failures only
}

// InsertedIDs are the identities assigned to one successful row.
type InsertedIDs struct {
	Index      int
	CreditorID int64
	Resolution ports.Resolution
	ContractID int64
	EntryIDs   []int64
}

// Report collects the per-row outcomes of one run. No outcome is ever
// dropped: everything recorded here is printed at the end.
type Report struct {
	RunID        string
	Succeeded    []InsertedIDs
	Skipped      []RowRef
	ParseFailed  []RowFailure
	InsertFailed []RowFailure
}

// Failures merges parse and insert failures in input-row order.
func (r *Report) Failures() []RowFailure {
	all := make([]RowFailure, 0, len(r.ParseFailed)+len(r.InsertFailed))
	all = append(all, r.ParseFailed...)
	all = append(all, r.InsertFailed...)
	sort.Slice(all, func(i, j int) bool { return all[i].Index < all[j].Index })
	return all
}

// Print writes the end-of-run summary: skips first, then failures with
// the raw row preserved verbatim, then the totals line.
func (r *Report) Print(w io.Writer) {
	for _, s := range r.Skipped {
		fmt.Fprintf(w, "Skipped row %d %s\n", s.Index, firstCell(s.Row))
	}
	for _, f := range r.Failures() {
		fmt.Fprintf(w, "Error for row %d: %v\n    %s\n", f.Index, f.Err, strings.Join(f.Row, "   |    "))
	}
	fmt.Fprintf(w, "Imported %d row(s), skipped %d, failed %d (run %s)\n",
		len(r.Succeeded), len(r.Skipped), len(r.ParseFailed)+len(r.InsertFailed), r.RunID)
}

func firstCell(row []string) string {
	if len(row) == 0 {
		return ""
	}
	return row[0]
}
