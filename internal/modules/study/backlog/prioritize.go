// Package backlog orders, filters and validates backlog items.
package backlog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	types "github.com/yungbote/studytrack-backend/internal/domain"
	"github.com/yungbote/studytrack-backend/internal/domain/study"
)

// Sort returns a new slice ordered by priority (High first), then target date
// ascending with undated items last, then creation time and id.
func Sort(items []*types.BacklogItem) []*types.BacklogItem {
	out := make([]*types.BacklogItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// Less is the total order used by Sort.
func Less(a, b *types.BacklogItem) bool {
	if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
		return ra > rb
	}
	ta, tb := a.Target(), b.Target()
	switch {
	case ta != nil && tb == nil:
		return true
	case ta == nil && tb != nil:
		return false
	case ta != nil && tb != nil && !ta.Equal(*tb):
		return ta.Before(*tb)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return strings.Compare(a.ID.String(), b.ID.String()) < 0
}

// StatusFilter selects items by status; FilterAll keeps everything.
type StatusFilter string

const FilterAll StatusFilter = "All"

// ParseFilter accepts "All" (or empty) and any status spelling ParseStatus accepts.
func ParseFilter(raw string) (StatusFilter, error) {
	if t := strings.TrimSpace(raw); t == "" || strings.EqualFold(t, string(FilterAll)) {
		return FilterAll, nil
	}
	s, err := study.ParseStatus(raw)
	if err != nil {
		return "", err
	}
	return StatusFilter(s), nil
}

// Filter returns the items matching f in their current order. The input slice
// is never modified.
func Filter(items []*types.BacklogItem, f StatusFilter) []*types.BacklogItem {
	out := make([]*types.BacklogItem, 0, len(items))
	for _, it := range items {
		if f == FilterAll || f == "" || string(it.Status) == string(f) {
			out = append(out, it)
		}
	}
	return out
}

// Transitions lists the statuses an item can move to from current: every other status.
func Transitions(current types.Status) []types.Status {
	out := make([]types.Status, 0, len(study.Statuses)-1)
	for _, s := range study.Statuses {
		if s != current {
			out = append(out, s)
		}
	}
	return out
}

// NewItemInput is the user-submitted shape of a backlog item.
type NewItemInput struct {
	Subject    string
	Topic      string
	Priority   string
	Status     string
	TargetDate string
}

// NewItem validates in and applies defaults: Medium priority, Pending status,
// no target date.
func NewItem(userID uuid.UUID, in NewItemInput) (*types.BacklogItem, error) {
	subject := strings.TrimSpace(in.Subject)
	topic := strings.TrimSpace(in.Topic)
	if subject == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	priority, err := study.ParsePriority(in.Priority)
	if err != nil {
		return nil, err
	}
	status, err := study.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}
	item := &types.BacklogItem{
		UserID:   userID,
		Subject:  subject,
		Topic:    topic,
		Priority: priority,
		Status:   status,
	}
	if raw := strings.TrimSpace(in.TargetDate); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid target_date %q, want YYYY-MM-DD", raw)
		}
		td := datatypes.Date(t)
		item.TargetDate = &td
	}
	return item, nil
}
