package models

// LedgerEntry mirrors the Buchungen table: one payment booked against a
// contract.
type LedgerEntry struct {
	ContractID  int64   // VertragsId, assigned at insert time
	Date        *string // Datum, YYYY-MM-DD
	BookingType int     // BuchungsArt, 1 = deposit
	Amount      int64   // Betrag, minor currency units (cents)
	Stamp       string  // Zeitstempel
}
