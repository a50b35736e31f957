// Package parse holds the value parsers for the German-locale
// Direktkredit export format. All functions are pure; the quirks of the
// legacy import scripts are preserved on purpose, see DESIGN.md.
package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Name is the split result of a free-text name cell.
type Name struct {
	First string
	Last  string
}

// ParseName splits "Nachname, Vorname" or "Vorname Nachname". Anything
// else becomes a bare last name. Casing and umlauts pass through as-is.
func ParseName(s string) Name {
	if parts := strings.Split(s, ","); len(parts) == 2 {
		return Name{Last: strings.TrimSpace(parts[0]), First: strings.TrimSpace(parts[1])}
	}
	if parts := strings.Split(s, " "); len(parts) == 2 {
		return Name{First: strings.TrimSpace(parts[0]), Last: strings.TrimSpace(parts[1])}
	}
	return Name{Last: strings.TrimSpace(s)}
}

// Address is a postal address in the "<street> <no>, <zip> <locality>"
// shape used by the export.
type Address struct {
	Street   string
	HouseNo  string
	Zip      string
	Locality string
}

var ErrInvalidAddress = errors.New("invalid address")

//                                   street    houseno        COMMA  zip      locality
var addressRe = regexp.MustCompile(`^([^\d]+?)\s*(\d+\w*)\s*,\s*(\d+)\s*([\w\säöüAÄÖÜ]+)\s*$`)

// ParseAddress splits a postal address cell. An empty cell yields nil:
// the address is optional upstream. Any other shape that does not match
// the structural pattern is an ErrInvalidAddress.
func ParseAddress(s string) (*Address, error) {
	if s == "" {
		return nil, nil
	}
	m := addressRe.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return &Address{Street: m[1], HouseNo: m[2], Zip: m[3], Locality: m[4]}, nil
}

// ParseDate reads DD.MM.YY or DD.MM.YYYY. Two-digit years are 2000-based.
// Day and month are not range-checked: time.Date normalizes overflow
// (31.02. rolls into March), matching the source scripts. Empty or
// unsplittable input yields nil.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	parts := strings.SplitN(s, ".", 3)
	if len(parts) != 3 {
		return nil
	}
	day, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return nil
	}
	if year < 100 {
		year += 2000
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

// FormatDate renders a date as YYYY-MM-DD; nil stays unset.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// Timestamp is the creation stamp written to every record: UTC wall
// time, second precision, no timezone suffix.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}

// ParseAmount reads a German-formatted money amount such as "1.234,56 €".
// Thousands periods, spaces and the euro sign are stripped, then the
// decimal comma becomes a point. Empty input is 0.
func ParseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// ParseAmountLegacy reproduces the older import script: only the first
// period is stripped and the decimal comma is not converted, so grouped
// amounts like "1.234,56" fail to parse. Kept behind the
// DKV2_LEGACY_AMOUNTS flag as a documented inconsistency.
func ParseAmountLegacy(s string) (float64, error) {
	s = strings.Replace(s, ".", "", 1)
	s = strings.Replace(s, " ", "", 1)
	s = strings.Replace(s, "€", "", 1)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// ParsePercent strips commas, spaces and the percent sign, then parses.
// The decimal comma is NOT converted first, so "5,5%" parses as 55.
// That matches the source scripts; see DESIGN.md before changing it.
func ParsePercent(s string) (float64, error) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "%", "")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// thesaurierend codes of the DKV2 schema.
const (
	PayoutModeInterest    = 0 // interest is paid out
	PayoutModeCompounding = 1 // interest stays in the contract
)

// ParsePayoutMode maps the free-text answer to "Zinsen auszahlen?".
// Anything but a literal "ja" counts as compounding; the silent default
// on unrecognized input is inherited from the source scripts.
func ParsePayoutMode(s string) int {
	if strings.TrimSpace(s) == "ja" {
		return PayoutModeInterest
	}
	return PayoutModeCompounding
}

// ParseNoticeMonths reads "Kündigungsfrist" cells like "6 Monate".
// Only the exact " Monate" suffix is recognized; unparsable input falls
// back to 0.
func ParseNoticeMonths(s string) int {
	s = strings.TrimSpace(strings.Replace(s, " Monate", "", 1))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
