package models

// Contract mirrors the Vertraege table. Every contract belongs to exactly
// one creditor.
type Contract struct {
	CreditorID   int64   // KreditorId, assigned at insert time
	Reference    string  // Kennung, prefix + raw contract number
	Note         string  // Anmerkung
	Rate         float64 // ZSatz, percent
	Amount       int64   // Betrag, minor currency units (cents)
	PayoutMode   int     // thesaurierend: 0 payout, 1 compounding
	SigningDate  *string // Vertragsdatum, YYYY-MM-DD, nil when unknown
	NoticeMonths int     // Kfrist
	AssetID      *int64  // AnlagenId, always unset at import time
	EndDate      string  // LaufzeitEnde, YYYY-MM-DD, "9999-12-31" when open-ended
	Stamp        string  // Zeitstempel
	Active       bool    // zActive
}
