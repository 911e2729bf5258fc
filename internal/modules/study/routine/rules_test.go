package routine

import (
	"testing"

	"github.com/yungbote/studytrack-backend/internal/modules/study/catalog"
)

func TestForDay_MorningSubjects(t *testing.T) {
	cat := catalog.Default()
	cases := map[string]string{
		"MONDAY":    "Probability and Statistics",
		"THURSDAY":  "Probability and Statistics",
		"TUESDAY":   "Linear Algebra",
		"FRIDAY":    "Linear Algebra",
		"WEDNESDAY": "Discrete Mathematical Structures",
		"SATURDAY":  "Discrete Mathematical Structures",
	}
	for day, want := range cases {
		r, err := ForDay(day, cat)
		if err != nil {
			t.Fatalf("ForDay(%s): %v", day, err)
		}
		if len(r.Morning.Subjects) != 1 || r.Morning.Subjects[0] != want {
			t.Fatalf("%s morning subjects=%v want %s", day, r.Morning.Subjects, want)
		}
	}
}

func TestForDay_Sunday(t *testing.T) {
	r, err := ForDay("sunday", catalog.Default())
	if err != nil {
		t.Fatalf("ForDay: %v", err)
	}
	if r.Weekday != "SUNDAY" || r.Morning.Title != MockTestTitle || r.Evening.Title != GeneralRevisionTitle {
		t.Fatalf("unexpected sunday routine %+v", r)
	}
	if len(r.Classes) != 0 {
		t.Fatalf("sunday has no classes, got %v", r.Classes)
	}
}

func TestForDay_EveningExcludesLabs(t *testing.T) {
	r, err := ForDay("WEDNESDAY", catalog.Default())
	if err != nil {
		t.Fatalf("ForDay: %v", err)
	}
	want := []string{"SE", "MVC", "ML"}
	if len(r.Evening.Subjects) != len(want) {
		t.Fatalf("evening subjects=%v want %v", r.Evening.Subjects, want)
	}
	for i := range want {
		if r.Evening.Subjects[i] != want[i] {
			t.Fatalf("evening subjects=%v want %v", r.Evening.Subjects, want)
		}
	}
}

func TestForDay_OnlyLabsFallsBackToPlaceholder(t *testing.T) {
	cat := &catalog.Catalog{Timetable: map[string][]string{
		"FRIDAY": {"09:00–01:00 Web Tech Lab", "02:00–04:00 ML LAB"},
	}}
	r, err := ForDay("FRIDAY", cat)
	if err != nil {
		t.Fatalf("ForDay: %v", err)
	}
	if r.Evening.Detail != NoClassesPlaceholder || len(r.Evening.Subjects) != 0 {
		t.Fatalf("expected placeholder evening, got %+v", r.Evening)
	}
}

func TestForDay_UnknownWeekday(t *testing.T) {
	if _, err := ForDay("HOLIDAY", catalog.Default()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestEveningSubjects_DedupFirstSeen(t *testing.T) {
	got := EveningSubjects([]string{
		"09:00–10:00 CN",
		"10:00–11:00 OOPS",
		"11:00–12:00 CN",
		"12:00–13:00 Physics laboratory",
		"13:00–14:00 OOPS",
	})
	if len(got) != 2 || got[0] != "CN" || got[1] != "OOPS" {
		t.Fatalf("EveningSubjects=%v", got)
	}
}
