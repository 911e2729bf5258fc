// Package analytics turns study logs into the trailing seven-day report.
package analytics

import (
	"math"
	"time"
)

// WindowDays is the length of the trailing window, today included.
const WindowDays = 7

// Entry is the minimal view of a log the aggregation needs.
type Entry struct {
	Date  time.Time
	Hours float64
}

type DailyAggregate struct {
	Date       time.Time `json:"-"`
	DateKey    string    `json:"date"`
	Label      string    `json:"label"`
	TotalHours float64   `json:"totalHours"`
	// Hours is TotalHours rounded to one decimal for display.
	Hours float64 `json:"hours"`
}

// WeeklyStats is computed over the rounded per-day Hours.
type WeeklyStats struct {
	TotalHours   float64        `json:"totalHours"`
	AverageHours float64        `json:"averageHours"`
	BestDay      DailyAggregate `json:"bestDay"`
}

type WeeklyReport struct {
	From  time.Time        `json:"-"`
	To    time.Time        `json:"-"`
	Days  []DailyAggregate `json:"days"`
	Stats WeeklyStats      `json:"stats"`
}

const dateKeyLayout = "2006-01-02"

// Window returns the first and last calendar day of the window ending on today,
// both as UTC midnight.
func Window(today time.Time) (from, to time.Time) {
	to = day(today)
	return to.AddDate(0, 0, -(WindowDays - 1)), to
}

// Weekly buckets entries into the seven days ending on today. Entries outside
// the window are ignored; several entries on one day add up.
func Weekly(entries []Entry, today time.Time) WeeklyReport {
	from, to := Window(today)

	days := make([]DailyAggregate, WindowDays)
	index := make(map[string]int, WindowDays)
	for i := 0; i < WindowDays; i++ {
		d := from.AddDate(0, 0, i)
		key := d.Format(dateKeyLayout)
		days[i] = DailyAggregate{Date: d, DateKey: key, Label: d.Format("Mon")}
		index[key] = i
	}

	for _, e := range entries {
		i, ok := index[day(e.Date).Format(dateKeyLayout)]
		if !ok {
			continue
		}
		days[i].TotalHours += e.Hours
	}

	// Stats follow the displayed values: each day is rounded first, then
	// summed and compared, so the total matches the bars.
	var total float64
	best := 0
	for i := range days {
		days[i].Hours = Round1(days[i].TotalHours)
		total += days[i].Hours
		// Strict comparison keeps the earliest day on ties.
		if days[i].Hours > days[best].Hours {
			best = i
		}
	}
	total = Round1(total)

	return WeeklyReport{
		From: from,
		To:   to,
		Days: days,
		Stats: WeeklyStats{
			TotalHours:   total,
			AverageHours: total / WindowDays,
			BestDay:      days[best],
		},
	}
}

// Round1 rounds half away from zero to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
