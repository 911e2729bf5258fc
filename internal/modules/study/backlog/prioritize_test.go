package backlog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	types "github.com/yungbote/studytrack-backend/internal/domain"
)

func item(topic string, p types.Priority, target string, created int) *types.BacklogItem {
	it := &types.BacklogItem{
		ID:        uuid.New(),
		Topic:     topic,
		Priority:  p,
		Status:    types.StatusPending,
		CreatedAt: time.Date(2024, 1, 1, 0, created, 0, 0, time.UTC),
	}
	if target != "" {
		t, _ := time.Parse("2006-01-02", target)
		d := datatypes.Date(t)
		it.TargetDate = &d
	}
	return it
}

func topics(items []*types.BacklogItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Topic
	}
	return out
}

func TestSort_PriorityThenDate(t *testing.T) {
	in := []*types.BacklogItem{
		item("low-early", types.PriorityLow, "2024-01-01", 0),
		item("high-undated", types.PriorityHigh, "", 1),
		item("med-late", types.PriorityMedium, "2024-03-01", 2),
		item("high-late", types.PriorityHigh, "2024-02-10", 3),
		item("high-early", types.PriorityHigh, "2024-02-01", 4),
		item("med-early", types.PriorityMedium, "2024-01-15", 5),
	}
	got := topics(Sort(in))
	want := []string{"high-early", "high-late", "high-undated", "med-early", "med-late", "low-early"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sort order=%v want %v", got, want)
		}
	}
	if in[0].Topic != "low-early" {
		t.Fatalf("Sort mutated its input")
	}
}

func TestSort_TiesBrokenByCreation(t *testing.T) {
	a := item("first", types.PriorityMedium, "", 0)
	b := item("second", types.PriorityMedium, "", 1)
	got := topics(Sort([]*types.BacklogItem{b, a}))
	if got[0] != "first" || got[1] != "second" {
		t.Fatalf("expected creation order, got %v", got)
	}
}

func TestLess_IsTotal(t *testing.T) {
	items := []*types.BacklogItem{
		item("a", types.PriorityHigh, "2024-01-01", 0),
		item("b", types.PriorityHigh, "2024-01-01", 0),
		item("c", types.PriorityLow, "", 0),
	}
	for _, x := range items {
		if Less(x, x) {
			t.Fatalf("Less must be irreflexive")
		}
		for _, y := range items {
			if x != y && Less(x, y) == Less(y, x) {
				t.Fatalf("items %s and %s are not strictly ordered", x.Topic, y.Topic)
			}
		}
	}
}

func TestFilter(t *testing.T) {
	in := []*types.BacklogItem{
		{Topic: "p", Status: types.StatusPending},
		{Topic: "c1", Status: types.StatusCompleted},
		{Topic: "i", Status: types.StatusInProgress},
		{Topic: "c2", Status: types.StatusCompleted},
	}
	done := Filter(in, StatusFilter(types.StatusCompleted))
	if len(done) != 2 || done[0].Topic != "c1" || done[1].Topic != "c2" {
		t.Fatalf("unexpected completed subset %v", topics(done))
	}
	if all := Filter(in, FilterAll); len(all) != 4 {
		t.Fatalf("All should keep every item, got %d", len(all))
	}
	if len(in) != 4 || in[1].Topic != "c1" {
		t.Fatalf("Filter mutated its input")
	}
}

func TestParseFilter(t *testing.T) {
	cases := map[string]StatusFilter{
		"":           FilterAll,
		"all":        FilterAll,
		"InProgress": StatusFilter(types.StatusInProgress),
		"Completed":  StatusFilter(types.StatusCompleted),
	}
	for in, want := range cases {
		got, err := ParseFilter(in)
		if err != nil || got != want {
			t.Fatalf("ParseFilter(%q)=%q,%v want %q", in, got, err, want)
		}
	}
	if _, err := ParseFilter("Blocked"); err == nil {
		t.Fatalf("expected error for unknown filter")
	}
}

func TestTransitions(t *testing.T) {
	got := Transitions(types.StatusInProgress)
	if len(got) != 2 || got[0] != types.StatusPending || got[1] != types.StatusCompleted {
		t.Fatalf("Transitions(In Progress)=%v", got)
	}
	if got := Transitions(types.StatusPending); len(got) != 2 || got[0] != types.StatusInProgress {
		t.Fatalf("Transitions(Pending)=%v", got)
	}
}

func TestNewItem(t *testing.T) {
	uid := uuid.New()
	it, err := NewItem(uid, NewItemInput{Subject: " Linear Algebra ", Topic: "Eigenvectors"})
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	if it.Priority != types.PriorityMedium || it.Status != types.StatusPending || it.TargetDate != nil {
		t.Fatalf("defaults not applied: %+v", it)
	}
	if it.Subject != "Linear Algebra" || it.UserID != uid {
		t.Fatalf("unexpected item %+v", it)
	}

	it, err = NewItem(uid, NewItemInput{Subject: "S", Topic: "T", Priority: "High", Status: "In Progress", TargetDate: "2024-02-29"})
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	if it.Target() == nil || it.Target().Day() != 29 || it.Priority != types.PriorityHigh {
		t.Fatalf("unexpected item %+v", it)
	}

	bad := []NewItemInput{
		{Subject: "", Topic: "T"},
		{Subject: "S", Topic: "   "},
		{Subject: "S", Topic: "T", Priority: "Urgent"},
		{Subject: "S", Topic: "T", Status: "Done"},
		{Subject: "S", Topic: "T", TargetDate: "29/02/2024"},
	}
	for _, in := range bad {
		if _, err := NewItem(uid, in); err == nil {
			t.Fatalf("expected validation error for %+v", in)
		}
	}
}
