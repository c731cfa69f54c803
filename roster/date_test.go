package roster_test

import (
	"errors"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/hetvlot/rooster/roster"
)

// =============================================================================
// DATE TESTS
// =============================================================================

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := roster.ParseDate("2025-03-10")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.String() != "2025-03-10" {
		t.Errorf("expected 2025-03-10, got %s", d.String())
	}
	if d.Weekday() != time.Monday {
		t.Errorf("2025-03-10 should be a Monday, got %s", d.Weekday())
	}
}

func TestParseDate_Malformed(t *testing.T) {
	for _, input := range []string{"", "10-03-2025", "2025/03/10", "not-a-date"} {
		if _, err := roster.ParseDate(input); !errors.Is(err, roster.ErrInvalidDate) {
			t.Errorf("ParseDate(%q): expected ErrInvalidDate, got %v", input, err)
		}
	}
}

func TestMondayOf_AllWeekdays(t *testing.T) {
	// GIVEN: every day of the week containing Monday 2025-03-10
	// THEN: MondayOf returns that Monday for all seven
	monday := roster.MustDate("2025-03-10")
	for i := 0; i < 7; i++ {
		d := monday.AddDays(i)
		if !d.MondayOf().Equal(monday) {
			t.Errorf("MondayOf(%s) = %s, expected %s", d, d.MondayOf(), monday)
		}
	}
}

func TestMondayOf_Sunday(t *testing.T) {
	// Sunday belongs to the week that started six days earlier.
	sunday := roster.MustDate("2025-03-16")
	if got := sunday.MondayOf(); !got.Equal(roster.MustDate("2025-03-10")) {
		t.Errorf("MondayOf(Sunday) = %s, expected 2025-03-10", got)
	}
}

func TestDaysUntil(t *testing.T) {
	a := roster.MustDate("2025-01-06")
	b := roster.MustDate("2025-01-20")
	if got := a.DaysUntil(b); got != 14 {
		t.Errorf("DaysUntil = %d, expected 14", got)
	}
	if got := b.DaysUntil(a); got != -14 {
		t.Errorf("reverse DaysUntil = %d, expected -14", got)
	}
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		D roster.Date `json:"d"`
	}
	var w wrapper
	if err := json.Unmarshal([]byte(`{"d":"2025-07-01"}`), &w); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !w.D.Equal(roster.MustDate("2025-07-01")) {
		t.Errorf("unmarshaled %s, expected 2025-07-01", w.D)
	}
	out, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `{"d":"2025-07-01"}` {
		t.Errorf("marshaled %s", out)
	}
}

// =============================================================================
// TIME OF DAY TESTS
// =============================================================================

func TestParseTimeOfDay(t *testing.T) {
	tod, err := roster.ParseTimeOfDay("07:30")
	if err != nil {
		t.Fatalf("ParseTimeOfDay failed: %v", err)
	}
	if tod.Hour != 7 || tod.Minute != 30 {
		t.Errorf("got %02d:%02d, expected 07:30", tod.Hour, tod.Minute)
	}
	if tod.Minutes() != 450 {
		t.Errorf("Minutes() = %d, expected 450", tod.Minutes())
	}
}

func TestParseTimeOfDay_OutOfRange(t *testing.T) {
	for _, input := range []string{"24:00", "12:60", "-1:00", "nonsense"} {
		if _, err := roster.ParseTimeOfDay(input); !errors.Is(err, roster.ErrInvalidTime) {
			t.Errorf("ParseTimeOfDay(%q): expected ErrInvalidTime, got %v", input, err)
		}
	}
}

func TestDate_At(t *testing.T) {
	d := roster.MustDate("2025-03-10")
	instant := d.At(roster.MustTimeOfDay("16:45"))
	if instant.Hour() != 16 || instant.Minute() != 45 || instant.Day() != 10 {
		t.Errorf("At() = %v", instant)
	}
}
