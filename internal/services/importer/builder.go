package importer

import (
	"fmt"
	"math"
	"time"

	"dkv2_import/internal/config"
	"dkv2_import/internal/models"
	"dkv2_import/internal/parse"
)

// Column names exactly as they appear in the export's header row.
const (
	colName        = "Name Kreditgeber*In"
	colAddress     = "Post-Adresse"
	colPhone       = "Telefon"
	colContractNo  = "Vertrags-Nr"
	colNote        = "Anmerkungen"
	colRate        = "Zinssatz"
	colSum         = "Summe"
	colPayout      = "Zinsen auszahlen?"
	colSigned      = "Vertrag signiert?"
	colNotice      = "Kündigungsfrist"
	colLimitedTo   = "Befristet bis"
	colMail        = "Mail"
	colDeposit1At  = "Einzahlung 1 Datum"
	colDeposit1Sum = "Einzahlung 1 Summe"
	colDeposit2At  = "Einzahlung 2 Datum"
	colDeposit2Sum = "Einzahlung 2 Summe"
)

// openEndDate stands in for contracts without a fixed end.
const openEndDate = "9999-12-31"

// bookingTypeDeposit is the Buchungen booking type for incoming payments.
const bookingTypeDeposit = 1

// Records is one export row normalized into its relational shape.
type Records struct {
	Creditor models.Creditor
	Contract models.Contract
	Entries  []models.LedgerEntry
}

// Builder turns raw rows into Records.
type Builder struct {
	fields *Fields
	cfg    *config.Config
	now    func() time.Time
}

func NewBuilder(fields *Fields, cfg *config.Config) *Builder {
	return &Builder{fields: fields, cfg: cfg, now: time.Now}
}

// Build normalizes one row. The bool reports a skip: rows without a
// first deposit date or contract number are dropped silently, that is
// not an error. Parser and field-lookup failures abort the row.
func (b *Builder) Build(row []string) (*Records, bool, error) {
	f := &fieldReader{fields: b.fields, row: row}

	name := parse.ParseName(f.get(colName))
	rawAddr := f.get(colAddress)
	if f.err != nil {
		return nil, false, f.err
	}
	addr, err := parse.ParseAddress(rawAddr)
	if err != nil {
		return nil, false, err
	}

	note := ""
	if tel := f.get(colPhone); tel != "" {
		note = "Telefon: " + tel + "\n"
	}

	deposit1At := f.get(colDeposit1At)
	contractNo := f.get(colContractNo)
	if f.err != nil {
		return nil, false, f.err
	}
	if deposit1At == "" || contractNo == "" {
		return nil, true, nil
	}

	stamp := parse.Timestamp(b.now())

	creditor := models.Creditor{
		FirstName: name.First,
		LastName:  name.Last,
		Country:   b.cfg.Country,
		Email:     f.get(colMail),
		Note:      note,
		Stamp:     stamp,
	}
	if addr != nil {
		creditor.Street = addr.Street + " " + addr.HouseNo
		creditor.Zip = addr.Zip
		creditor.City = addr.Locality
	}

	rate, err := parse.ParsePercent(f.get(colRate))
	if err != nil {
		return nil, false, fmt.Errorf("parse %s: %w", colRate, err)
	}
	sum, err := b.amount(f.get(colSum))
	if err != nil {
		return nil, false, fmt.Errorf("parse %s: %w", colSum, err)
	}

	contract := models.Contract{
		Reference:    b.cfg.RefPrefix + contractNo,
		Note:         f.get(colNote),
		Rate:         rate,
		Amount:       cents(sum),
		PayoutMode:   parse.ParsePayoutMode(f.get(colPayout)),
		SigningDate:  parse.FormatDate(parse.ParseDate(f.get(colSigned))),
		NoticeMonths: parse.ParseNoticeMonths(f.get(colNotice)),
		EndDate:      openEndDate,
		Stamp:        stamp,
		Active:       true,
	}
	if end := parse.FormatDate(parse.ParseDate(f.get(colLimitedTo))); end != nil {
		contract.EndDate = *end
	}

	deposit1Sum, err := b.amount(f.get(colDeposit1Sum))
	if err != nil {
		return nil, false, fmt.Errorf("parse %s: %w", colDeposit1Sum, err)
	}
	entries := []models.LedgerEntry{{
		Date:        parse.FormatDate(parse.ParseDate(deposit1At)),
		BookingType: bookingTypeDeposit,
		Amount:      cents(deposit1Sum),
		Stamp:       stamp,
	}}

	// A second booking exists only when the second deposit column holds
	// an amount.
	if raw := f.get(colDeposit2Sum); raw != "" {
		deposit2Sum, err := b.amount(raw)
		if err != nil {
			return nil, false, fmt.Errorf("parse %s: %w", colDeposit2Sum, err)
		}
		entries = append(entries, models.LedgerEntry{
			Date:        parse.FormatDate(parse.ParseDate(f.get(colDeposit2At))),
			BookingType: bookingTypeDeposit,
			Amount:      cents(deposit2Sum),
			Stamp:       stamp,
		})
	}
	if f.err != nil {
		return nil, false, f.err
	}

	return &Records{Creditor: creditor, Contract: contract, Entries: entries}, false, nil
}

func (b *Builder) amount(s string) (float64, error) {
	if b.cfg.LegacyAmounts {
		return parse.ParseAmountLegacy(s)
	}
	return parse.ParseAmount(s)
}

// cents converts euros to integer minor units.
func cents(v float64) int64 {
	return int64(math.Round(v * 100))
}
