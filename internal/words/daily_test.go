package words

import (
	"testing"
	"time"
)

func TestDailyIsStableForADate(t *testing.T) {
	list := []string{"alpha", "bravo", "charlie", "delta", "echo"}
	d, err := NewDaily(list, "salt")
	if err != nil {
		t.Fatalf("NewDaily: %v", err)
	}
	day := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return day }

	first, _ := d.NextWord()
	d.now = func() time.Time { return day.Add(12 * time.Hour) }
	second, _ := d.NextWord()
	if first != second {
		t.Fatalf("same date gave %q and %q", first, second)
	}
	if want := []string{"ALPHA", "BRAVO", "CHARLIE", "DELTA", "ECHO"}[WordIndex(day, "salt", 5)]; first != want {
		t.Fatalf("word=%q want=%q", first, want)
	}
}

func TestWordIndexRange(t *testing.T) {
	if WordIndex(time.Now(), "x", 0) != 0 {
		t.Fatalf("empty list should map to 0")
	}
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		if n := WordIndex(day.AddDate(0, 0, i), "x", 7); n < 0 || n >= 7 {
			t.Fatalf("index %d out of range", n)
		}
	}
}

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	got := DateKey(time.Date(2026, 3, 2, 5, 0, 0, 0, loc))
	if got != "2026-03-01" {
		t.Fatalf("DateKey=%q want 2026-03-01", got)
	}
}
