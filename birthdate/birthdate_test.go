package birthdate

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

func TestReconstruct_ExplicitCentury(t *testing.T) {
	date, ok := Reconstruct(97, 2, 14, 19, true, testNow)
	if !ok {
		t.Fatalf("expected valid date")
	}
	if !date.Equal(time.Date(1997, time.February, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %s", date)
	}
}

func TestReconstruct_InferredCentury(t *testing.T) {
	cases := []struct {
		year int
		want int
	}{
		{97, 1997},
		{20, 2020},
		{26, 2026},
		{27, 1927},
		{0, 2000},
	}
	for _, tc := range cases {
		date, ok := Reconstruct(tc.year, 6, 15, 0, false, testNow)
		if !ok {
			t.Fatalf("year %02d: expected valid date", tc.year)
		}
		if date.Year() != tc.want {
			t.Fatalf("year %02d: expected %d, got %d", tc.year, tc.want, date.Year())
		}
		if date.After(testNow) {
			t.Fatalf("year %02d: inferred date %s is in the future", tc.year, date)
		}
	}
}

func TestReconstruct_CoordinationDayOffset(t *testing.T) {
	date, ok := Reconstruct(97, 2, 74, 19, true, testNow)
	if !ok {
		t.Fatalf("expected valid coordination date")
	}
	if date.Day() != 14 {
		t.Fatalf("expected calendar day 14, got %d", date.Day())
	}
}

func TestReconstruct_RejectsImpossibleDates(t *testing.T) {
	cases := []struct {
		name  string
		month int
		day   int
		year  int
	}{
		{"month zero", 0, 10, 97},
		{"month thirteen", 13, 10, 97},
		{"day zero", 5, 0, 97},
		{"february 30", 2, 30, 97},
		{"february 29 common year", 2, 29, 97},
		{"coordination february 30", 2, 90, 97},
		{"april 31", 4, 31, 97},
	}
	for _, tc := range cases {
		if _, ok := Reconstruct(tc.year, tc.month, tc.day, 19, true, testNow); ok {
			t.Fatalf("%s: expected invalid date", tc.name)
		}
	}
}

func TestReconstruct_LeapYears(t *testing.T) {
	if _, ok := Reconstruct(0, 2, 29, 20, true, testNow); !ok {
		t.Fatalf("2000-02-29 should be valid")
	}
	if _, ok := Reconstruct(0, 2, 29, 19, true, testNow); ok {
		t.Fatalf("1900-02-29 should be invalid")
	}
	if _, ok := Reconstruct(96, 2, 29, 19, true, testNow); !ok {
		t.Fatalf("1996-02-29 should be valid")
	}
}

func TestReconstruct_UTCMidnight(t *testing.T) {
	date, _ := Reconstruct(85, 6, 15, 19, true, testNow)
	h, m, s := date.Clock()
	if h != 0 || m != 0 || s != 0 || date.Location() != time.UTC {
		t.Fatalf("expected UTC midnight, got %s", date)
	}
}
