// Package routine suggests what to study on a given day, either from a fixed
// weekday table or by delegating to a text-generation model.
package routine

import (
	"strings"

	"github.com/yungbote/studytrack-backend/internal/modules/study/catalog"
)

// Block is one time-of-day slot of the rule-based routine.
type Block struct {
	Title    string   `json:"title"`
	Duration string   `json:"duration"`
	Detail   string   `json:"detail"`
	Subjects []string `json:"subjects,omitempty"`
}

type DailyRoutine struct {
	Weekday string              `json:"weekday"`
	Morning Block               `json:"morning"`
	Evening Block               `json:"evening"`
	Classes []catalog.ClassSlot `json:"classes"`
}

type dayKind int

const (
	dayMockTest dayKind = iota
	dayBacklogFocus
)

type dayRule struct {
	kind           dayKind
	backlogSubject string
}

var weekdayRules = map[string]dayRule{
	"SUNDAY":    {kind: dayMockTest},
	"MONDAY":    {kind: dayBacklogFocus, backlogSubject: "Probability and Statistics"},
	"TUESDAY":   {kind: dayBacklogFocus, backlogSubject: "Linear Algebra"},
	"WEDNESDAY": {kind: dayBacklogFocus, backlogSubject: "Discrete Mathematical Structures"},
	"THURSDAY":  {kind: dayBacklogFocus, backlogSubject: "Probability and Statistics"},
	"FRIDAY":    {kind: dayBacklogFocus, backlogSubject: "Linear Algebra"},
	"SATURDAY":  {kind: dayBacklogFocus, backlogSubject: "Discrete Mathematical Structures"},
}

const (
	MockTestTitle        = "Full-Length Mock Test"
	GeneralRevisionTitle = "General Revision"
	EveningReviewTitle   = "Revise Today's Classes"
	NoClassesPlaceholder = "No theory classes today. Use the evening for backlog practice problems."
)

// ForDay builds the rule-based routine for weekday ("MONDAY".."SUNDAY", any case).
func ForDay(weekday string, cat *catalog.Catalog) (DailyRoutine, error) {
	day, err := catalog.NormalizeWeekday(weekday)
	if err != nil {
		return DailyRoutine{}, err
	}
	rule := weekdayRules[day]
	out := DailyRoutine{Weekday: day, Classes: cat.Classes(day)}

	switch rule.kind {
	case dayMockTest:
		out.Morning = Block{
			Title:    MockTestTitle,
			Duration: "09:00–12:00",
			Detail:   "Attempt a timed mock test across this week's subjects, then review every mistake.",
		}
		out.Evening = Block{
			Title:    GeneralRevisionTitle,
			Duration: "18:00–21:00",
			Detail:   "Revise the week's notes and plan next week's backlog targets.",
		}
	case dayBacklogFocus:
		out.Morning = Block{
			Title:    "Backlog: " + rule.backlogSubject,
			Duration: "06:00–08:00",
			Detail:   "Clear pending " + rule.backlogSubject + " topics before classes start.",
			Subjects: []string{rule.backlogSubject},
		}
		evening := Block{Title: EveningReviewTitle, Duration: "19:00–21:00"}
		if subjects := EveningSubjects(cat.Day(day)); len(subjects) > 0 {
			evening.Subjects = subjects
			evening.Detail = "Review and practise: " + strings.Join(subjects, ", ") + "."
		} else {
			evening.Detail = NoClassesPlaceholder
		}
		out.Evening = evening
	}
	return out, nil
}

// EveningSubjects extracts the distinct non-lab subjects of a day's timetable
// entries, in first-seen order.
func EveningSubjects(entries []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range entries {
		subject := catalog.ParseEntry(e).Subject
		if subject == "" || strings.Contains(strings.ToLower(subject), "lab") {
			continue
		}
		if seen[subject] {
			continue
		}
		seen[subject] = true
		out = append(out, subject)
	}
	return out
}
