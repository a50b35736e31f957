package models

// Creditor mirrors the Kreditoren table of a DKV2 database.
// (FirstName, LastName, Street, City) is the dedup key: a row naming the
// same tuple resolves to the existing creditor instead of a duplicate.
type Creditor struct {
	FirstName string // Vorname
	LastName  string // Nachname
	Street    string // Strasse: street name and house number merged
	Zip       string // Plz
	City      string // Stadt
	Country   string // Land
	Email     string
	Note      string  // Anmerkung
	IBAN      *string // always unset at import time
	BIC       *string // always unset at import time
	Stamp     string  // Zeitstempel
}
