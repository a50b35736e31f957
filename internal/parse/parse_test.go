package parse

import (
	"errors"
	"testing"
	"time"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		in    string
		first string
		last  string
	}{
		{"Doe, John", "John", "Doe"},
		{"John Doe", "John", "Doe"},
		{"SingleToken", "", "SingleToken"},
		{"Müller-Lüdenscheidt, Käthe", "Käthe", "Müller-Lüdenscheidt"},
		{"Anna Maria Schmidt", "", "Anna Maria Schmidt"}, // two spaces: no split
	}
	for _, tt := range tests {
		got := ParseName(tt.in)
		if got.First != tt.first || got.Last != tt.last {
			t.Errorf("ParseName(%q) = %+v, want first=%q last=%q", tt.in, got, tt.first, tt.last)
		}
	}
}

func TestParseAddress(t *testing.T) {
	got, err := ParseAddress("Main Street 12, 10115 Berlin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Address{Street: "Main Street", HouseNo: "12", Zip: "10115", Locality: "Berlin"}
	if *got != want {
		t.Errorf("got %+v, want %+v", *got, want)
	}

	got, err = ParseAddress("Musterweg 3a, 80331 München")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.HouseNo != "3a" || got.Locality != "München" {
		t.Errorf("got %+v", *got)
	}
}

func TestParseAddressEmpty(t *testing.T) {
	got, err := ParseAddress("")
	if err != nil || got != nil {
		t.Errorf("empty address: got %v, %v; want nil, nil", got, err)
	}
}

func TestParseAddressInvalid(t *testing.T) {
	for _, in := range []string{"not an address", "Main Street 12 10115 Berlin", "12345"} {
		if _, err := ParseAddress(in); !errors.Is(err, ErrInvalidAddress) {
			t.Errorf("ParseAddress(%q): err = %v, want ErrInvalidAddress", in, err)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"01.02.21", "2021-02-01"},
		{"15.03.1999", "1999-03-15"},
		{"7.4.22", "2022-04-07"},
		// Day overflow is passed through and normalized, not rejected.
		{"31.02.21", "2021-03-03"},
	}
	for _, tt := range tests {
		got := ParseDate(tt.in)
		if got == nil {
			t.Errorf("ParseDate(%q) = nil", tt.in)
			continue
		}
		if s := got.Format("2006-01-02"); s != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, s, tt.want)
		}
	}

	if got := ParseDate(""); got != nil {
		t.Errorf("ParseDate(\"\") = %v, want nil", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(nil); got != nil {
		t.Errorf("FormatDate(nil) = %v, want nil", got)
	}
	d := time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(&d); got == nil || *got != "2021-02-01" {
		t.Errorf("FormatDate = %v, want 2021-02-01", got)
	}
}

func TestTimestamp(t *testing.T) {
	at := time.Date(2021, 5, 4, 12, 30, 9, 123456789, time.FixedZone("CEST", 2*3600))
	if got := Timestamp(at); got != "2021-05-04 10:30:09" {
		t.Errorf("Timestamp = %q, want %q", got, "2021-05-04 10:30:09")
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.234,56 €", 1234.56},
		{"100", 100},
		{"2.500", 2500},
		{"1 000,50", 1000.50},
		{"", 0},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if err != nil {
			t.Errorf("ParseAmount(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// The legacy parser diverges for grouped amounts: the comma survives and
// the parse fails where the current parser yields 1234.56.
func TestParseAmountLegacyDivergence(t *testing.T) {
	if _, err := ParseAmountLegacy("1.234,56 €"); err == nil {
		t.Error("ParseAmountLegacy(\"1.234,56 €\"): want error, got none")
	}
	got, err := ParseAmountLegacy("1234.56")
	if err != nil || got != 123456 {
		t.Errorf("ParseAmountLegacy(\"1234.56\") = %v, %v; want 123456 (period stripped)", got, err)
	}
	got, err = ParseAmountLegacy("5000")
	if err != nil || got != 5000 {
		t.Errorf("ParseAmountLegacy(\"5000\") = %v, %v", got, err)
	}
}

// ParsePercent keeps the source scripts' bug: the decimal comma is
// stripped, not converted, so "5,5%" reads as 55.
func TestParsePercent(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5,5%", 55},
		{"3 %", 3},
		{"1%", 1},
		{"", 0},
	}
	for _, tt := range tests {
		got, err := ParsePercent(tt.in)
		if err != nil {
			t.Errorf("ParsePercent(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePercent(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePayoutMode(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"ja", PayoutModeInterest},
		{" ja ", PayoutModeInterest},
		{"nein", PayoutModeCompounding},
		{"", PayoutModeCompounding},
		{"vielleicht", PayoutModeCompounding},
	}
	for _, tt := range tests {
		if got := ParsePayoutMode(tt.in); got != tt.want {
			t.Errorf("ParsePayoutMode(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseNoticeMonths(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"6 Monate", 6},
		{"12 Monate", 12},
		{"6 Wochen", 0}, // only the exact " Monate" suffix is recognized
		{"", 0},
	}
	for _, tt := range tests {
		if got := ParseNoticeMonths(tt.in); got != tt.want {
			t.Errorf("ParseNoticeMonths(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
