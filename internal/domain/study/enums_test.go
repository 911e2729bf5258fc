package study

import "testing"

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"":            StatusPending,
		"Pending":     StatusPending,
		"In Progress": StatusInProgress,
		"InProgress":  StatusInProgress,
		"in_progress": StatusInProgress,
		"COMPLETED":   StatusCompleted,
	}
	for in, want := range cases {
		got, err := ParseStatus(in)
		if err != nil || got != want {
			t.Fatalf("ParseStatus(%q)=%q,%v want %q", in, got, err, want)
		}
	}
	if _, err := ParseStatus("Archived"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestParsePriority(t *testing.T) {
	got, err := ParsePriority("")
	if err != nil || got != PriorityMedium {
		t.Fatalf("default priority=%q,%v", got, err)
	}
	if got, _ := ParsePriority("high"); got != PriorityHigh {
		t.Fatalf("ParsePriority(high)=%q", got)
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Fatalf("expected error for unknown priority")
	}
}

func TestPriorityRank(t *testing.T) {
	if !(PriorityHigh.Rank() > PriorityMedium.Rank() && PriorityMedium.Rank() > PriorityLow.Rank()) {
		t.Fatalf("priority ranks out of order")
	}
	if Priority("bogus").Valid() {
		t.Fatalf("unknown priority reported valid")
	}
}
