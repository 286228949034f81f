package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"0", 0, true}, // zero cost is a valid entry
		{"0,00", 0, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyDivideBy(t *testing.T) {
	cases := []struct {
		cents int64
		n     int
		out   int64
	}{
		{35000, 2, 17500},
		{100, 3, 33},
		{101, 2, 51}, // half-up on the split cent
		{0, 5, 0},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).DivideBy(tc.n); got.Cents != tc.out {
			t.Fatalf("%d / %d expected %d, got %d", tc.cents, tc.n, tc.out, got.Cents)
		}
	}
}
