package analytics

import (
	"testing"
	"time"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestWeekly_SevenConsecutiveDays(t *testing.T) {
	today := d(2024, 1, 1)
	rep := Weekly(nil, today)
	if len(rep.Days) != WindowDays {
		t.Fatalf("expected %d days, got %d", WindowDays, len(rep.Days))
	}
	for i, agg := range rep.Days {
		want := d(2023, 12, 26).AddDate(0, 0, i)
		if !agg.Date.Equal(want) {
			t.Fatalf("day %d: got %s want %s", i, agg.Date, want)
		}
		if agg.TotalHours != 0 {
			t.Fatalf("day %d: expected zero hours", i)
		}
	}
	if rep.Days[6].DateKey != "2024-01-01" || rep.Days[6].Label != "Mon" {
		t.Fatalf("unexpected last day %+v", rep.Days[6])
	}
	if !rep.From.Equal(d(2023, 12, 26)) || !rep.To.Equal(today) {
		t.Fatalf("unexpected window %s..%s", rep.From, rep.To)
	}
}

func TestWeekly_SumsSameDayEntries(t *testing.T) {
	today := d(2024, 1, 1)
	rep := Weekly([]Entry{
		{Date: d(2024, 1, 1), Hours: 2},
		{Date: d(2024, 1, 1), Hours: 1.5},
	}, today)
	if got := rep.Days[6].TotalHours; got != 3.5 {
		t.Fatalf("expected 3.5 hours on 2024-01-01, got %v", got)
	}
	if rep.Stats.TotalHours != 3.5 {
		t.Fatalf("expected total 3.5, got %v", rep.Stats.TotalHours)
	}
}

func TestWeekly_IgnoresOutOfWindow(t *testing.T) {
	today := d(2024, 3, 10)
	rep := Weekly([]Entry{
		{Date: d(2024, 3, 3), Hours: 5},  // one day before the window
		{Date: d(2024, 3, 4), Hours: 1},  // first day
		{Date: d(2024, 3, 10), Hours: 2}, // today
		{Date: d(2024, 3, 11), Hours: 7}, // tomorrow
	}, today)
	if rep.Stats.TotalHours != 3 {
		t.Fatalf("expected only in-window hours (3), got %v", rep.Stats.TotalHours)
	}
	var sum float64
	for _, agg := range rep.Days {
		sum += agg.Hours
	}
	if sum != rep.Stats.TotalHours {
		t.Fatalf("per-day sum %v != total %v", sum, rep.Stats.TotalHours)
	}
}

func TestWeekly_AverageDividesBySeven(t *testing.T) {
	rep := Weekly([]Entry{{Date: d(2024, 5, 5), Hours: 7}, {Date: d(2024, 5, 4), Hours: 3.5}}, d(2024, 5, 5))
	if rep.Stats.AverageHours != 10.5/7 {
		t.Fatalf("expected %v, got %v", 10.5/7, rep.Stats.AverageHours)
	}
}

func TestWeekly_BestDayTieGoesToEarliest(t *testing.T) {
	today := d(2024, 1, 7)
	rep := Weekly([]Entry{
		{Date: d(2024, 1, 3), Hours: 4},
		{Date: d(2024, 1, 5), Hours: 4},
		{Date: d(2024, 1, 6), Hours: 1},
	}, today)
	if rep.Stats.BestDay.DateKey != "2024-01-03" {
		t.Fatalf("expected earliest max day, got %s", rep.Stats.BestDay.DateKey)
	}
}

func TestWeekly_BestDayComparesDisplayedHours(t *testing.T) {
	rep := Weekly([]Entry{
		{Date: d(2024, 1, 2), Hours: 2.01},
		{Date: d(2024, 1, 4), Hours: 2.04},
	}, d(2024, 1, 7))
	if rep.Days[1].Hours != 2 || rep.Days[3].Hours != 2 {
		t.Fatalf("both days should display 2.0, got %v and %v", rep.Days[1].Hours, rep.Days[3].Hours)
	}
	if rep.Stats.BestDay.DateKey != "2024-01-02" {
		t.Fatalf("equal displayed hours should tie to the earliest day, got %s", rep.Stats.BestDay.DateKey)
	}
	if rep.Stats.TotalHours != 4 {
		t.Fatalf("total should sum displayed hours (4), got %v", rep.Stats.TotalHours)
	}
}

func TestWeekly_TotalMatchesDisplayedBars(t *testing.T) {
	var entries []Entry
	for i := 1; i <= 7; i++ {
		entries = append(entries, Entry{Date: d(2024, 1, i), Hours: 0.04})
	}
	rep := Weekly(entries, d(2024, 1, 7))
	for i, agg := range rep.Days {
		if agg.Hours != 0 || agg.TotalHours != 0.04 {
			t.Fatalf("day %d: got display %v exact %v", i, agg.Hours, agg.TotalHours)
		}
	}
	if rep.Stats.TotalHours != 0 || rep.Stats.AverageHours != 0 {
		t.Fatalf("stats should follow the zero bars, got %+v", rep.Stats)
	}
	if rep.Stats.BestDay.DateKey != "2024-01-01" {
		t.Fatalf("all bars zero: best day should be the first, got %s", rep.Stats.BestDay.DateKey)
	}
}

func TestWeekly_TotalRoundedAfterSum(t *testing.T) {
	rep := Weekly([]Entry{
		{Date: d(2024, 1, 6), Hours: 0.1},
		{Date: d(2024, 1, 7), Hours: 0.2},
	}, d(2024, 1, 7))
	if rep.Stats.TotalHours != 0.3 {
		t.Fatalf("expected 0.3, got %v", rep.Stats.TotalHours)
	}
}

func TestWeekly_AllZeroBestDayIsFirst(t *testing.T) {
	rep := Weekly(nil, d(2024, 1, 7))
	if rep.Stats.BestDay.DateKey != "2024-01-01" || rep.Stats.BestDay.TotalHours != 0 {
		t.Fatalf("expected first day with 0, got %+v", rep.Stats.BestDay)
	}
}

func TestWeekly_DisplayRounding(t *testing.T) {
	rep := Weekly([]Entry{
		{Date: d(2024, 1, 7), Hours: 1.25},
		{Date: d(2024, 1, 7), Hours: 0.125},
	}, d(2024, 1, 7))
	last := rep.Days[6]
	if last.Hours != 1.4 {
		t.Fatalf("expected display 1.4, got %v", last.Hours)
	}
	if last.TotalHours != 1.375 {
		t.Fatalf("exact total should be kept, got %v", last.TotalHours)
	}
}

func TestWeekly_TimeOfDayIgnored(t *testing.T) {
	today := time.Date(2024, 1, 7, 23, 30, 0, 0, time.UTC)
	rep := Weekly([]Entry{{Date: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), Hours: 2}}, today)
	if rep.Days[0].TotalHours != 2 {
		t.Fatalf("expected entry on first day, got %+v", rep.Days[0])
	}
}

func TestRound1(t *testing.T) {
	cases := map[float64]float64{0: 0, 1.04: 1, 1.25: 1.3, 2.449: 2.4, 3.96: 4}
	for in, want := range cases {
		if got := Round1(in); got != want {
			t.Fatalf("Round1(%v)=%v want %v", in, got, want)
		}
	}
}
