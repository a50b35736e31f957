package importer

import (
	"errors"
	"testing"
)

func TestFieldsGet(t *testing.T) {
	f := NewFields([]string{" Name ", "Summe", "Mail"})

	row := []string{"Doe, John", "  100  ", "x@example.org"}
	got, err := f.Get(row, "Name")
	if err != nil || got != "Doe, John" {
		t.Errorf("Get(Name) = %q, %v", got, err)
	}
	got, err = f.Get(row, "Summe")
	if err != nil || got != "100" {
		t.Errorf("Get(Summe) = %q, %v; want trimmed cell", got, err)
	}
}

func TestFieldsGetUnknownHeader(t *testing.T) {
	f := NewFields([]string{"Name"})
	if _, err := f.Get([]string{"x"}, "Summe"); !errors.Is(err, ErrMissingField) {
		t.Errorf("err = %v, want ErrMissingField", err)
	}
}

func TestFieldsGetShortRow(t *testing.T) {
	f := NewFields([]string{"Name", "Summe"})
	if _, err := f.Get([]string{"only one cell"}, "Summe"); !errors.Is(err, ErrMissingField) {
		t.Errorf("err = %v, want ErrMissingField", err)
	}
}

func TestFieldsDuplicateHeaderFirstWins(t *testing.T) {
	f := NewFields([]string{"Name", "Name"})
	got, err := f.Get([]string{"first", "second"}, "Name")
	if err != nil || got != "first" {
		t.Errorf("Get = %q, %v; want first occurrence", got, err)
	}
}
