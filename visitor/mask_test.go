package visitor

import (
	"testing"
	"time"
)

func TestMaskCNIC(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"1234567890123", "12345-*******-3"},
		{"123456", "12345-*******-6"},
		{"123", "Not provided"},
		{"12345", "Not provided"},
		{"", "Not provided"},
		{"35202-1234567-1", "35202-*******-1"},
	}
	for _, tc := range cases {
		if got := MaskCNIC(tc.in); got != tc.want {
			t.Fatalf("MaskCNIC(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func clockTime(hh, mm int) time.Time {
	return time.Date(2025, time.March, 10, hh, mm, 0, 0, time.UTC)
}

func TestWithinVisitingHours(t *testing.T) {
	t.Parallel()
	h := VisitingHours{Start: "09:00", End: "17:00"}
	if !WithinVisitingHours(clockTime(10, 30), h) {
		t.Fatal("10:30 should be inside 09:00-17:00")
	}
	if !WithinVisitingHours(clockTime(9, 0), h) {
		t.Fatal("start boundary should be inside")
	}
	if !WithinVisitingHours(clockTime(17, 0), h) {
		t.Fatal("end boundary should be inside")
	}
	if WithinVisitingHours(clockTime(18, 1), h) {
		t.Fatal("18:01 should be outside 09:00-17:00")
	}
	if WithinVisitingHours(clockTime(8, 59), h) {
		t.Fatal("08:59 should be outside 09:00-17:00")
	}
	if !WithinVisitingHours(clockTime(18, 1), VisitingHours{Start: "bad", End: "17:00"}) {
		t.Fatal("malformed hours must not reject")
	}
}
