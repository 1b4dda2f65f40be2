package util

import (
	"testing"
	"time"
)

func TestParseISODate(t *testing.T) {
	got, ok := ParseISODate("2024-10-10")
	if !ok {
		t.Fatalf("expected ok")
	}
	if FormatISODate(got) != "2024-10-10" {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestParseISODateRejectsTime(t *testing.T) {
	if _, ok := ParseISODate("2024-10-10T10:10:10Z"); ok {
		t.Fatalf("expected not ok for datetime input")
	}
	if _, ok := ParseISODate(""); ok {
		t.Fatalf("expected not ok for empty input")
	}
}

func TestDaysBack(t *testing.T) {
	from := time.Date(2024, 3, 2, 15, 0, 0, 0, time.UTC)
	got := DaysBack(from, 4)
	want := []string{"2024-03-02", "2024-03-01", "2024-02-29", "2024-02-28"}
	if len(got) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("day %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestRound2(t *testing.T) {
	if v := Round2(1.0 / 3.0); v != 0.33 {
		t.Fatalf("unexpected rounding %v", v)
	}
	if v := Round2(-2.666666); v != -2.67 {
		t.Fatalf("unexpected rounding %v", v)
	}
}
