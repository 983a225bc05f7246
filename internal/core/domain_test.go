package core

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"12.34", "12.34", true},
		{"12,34", "12.34", true},
		{" 7 ", "7", true},
		{"0", "0", true},
		{"", "", false},
		{"abc", "", false},
		{"-5", "", false},
		{"1.2.3", "", false},
	}
	for i, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok {
			if !errors.Is(err, ErrInvalidAmount) {
				t.Fatalf("case %d expected ErrInvalidAmount, got %v", i, err)
			}
			continue
		}
		if got.String() != tc.want {
			t.Fatalf("case %d got %s want %s", i, got, tc.want)
		}
	}
}

func TestDraftValidate(t *testing.T) {
	good := Draft{
		Amount:    decimal.NewFromInt(10),
		Currency:  "EUR",
		Comment:   "lunch",
		CreatedAt: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []struct {
		d    Draft
		want error
	}{
		{Draft{Amount: decimal.NewFromInt(-1), Currency: "EUR", Comment: "x"}, ErrInvalidAmount},
		{Draft{Amount: decimal.NewFromInt(1), Currency: "", Comment: "x"}, ErrEmptyCurrency},
		{Draft{Amount: decimal.NewFromInt(1), Currency: "EUR", Comment: "  "}, ErrEmptyComment},
	}
	for i, tc := range bads {
		if err := tc.d.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
	}
}

func TestPatchValidate(t *testing.T) {
	good := Patch{Amount: decimal.NewFromInt(2), Currency: "USD", Comment: "coffee"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Patch{Amount: decimal.NewFromInt(2), Currency: "USD"}).Validate(); !errors.Is(err, ErrEmptyComment) {
		t.Fatalf("expected ErrEmptyComment")
	}
}
