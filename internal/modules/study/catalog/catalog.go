// Package catalog holds the read-only reference data: subject lists and the
// weekly class timetable. The built-in copy is embedded; CATALOG_PATH may point
// at a replacement YAML file with the same shape.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultYAML []byte

// Weekdays in timetable order.
var Weekdays = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

type Catalog struct {
	CurrentSubjects []string            `yaml:"current_subjects" json:"currentSubjects"`
	BacklogSubjects []string            `yaml:"backlog_subjects" json:"backlogSubjects"`
	Timetable       map[string][]string `yaml:"timetable" json:"timetable"`
}

// ClassSlot is one timetable entry split into its time range and subject.
type ClassSlot struct {
	Time    string `json:"time"`
	Subject string `json:"subject"`
}

// Load reads the catalog at path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	raw := defaultYAML
	if p := strings.TrimSpace(path); p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %q: %w", p, err)
		}
		raw = b
	}
	return Parse(raw)
}

// Default is the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog invalid: %v", err))
	}
	return c
}

func Parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	normalized := make(map[string][]string, len(Weekdays))
	for day, entries := range c.Timetable {
		key := strings.ToUpper(strings.TrimSpace(day))
		if !IsWeekday(key) {
			return nil, fmt.Errorf("catalog timetable: unknown weekday %q", day)
		}
		for i, e := range entries {
			if strings.TrimSpace(e) == "" {
				return nil, fmt.Errorf("catalog timetable: %s entry %d is blank", key, i)
			}
		}
		normalized[key] = append(normalized[key], entries...)
	}
	for _, day := range Weekdays {
		if _, ok := normalized[day]; !ok {
			normalized[day] = []string{}
		}
	}
	c.Timetable = normalized
	return &c, nil
}

func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// NormalizeWeekday upper-cases day and checks it names a weekday.
func NormalizeWeekday(day string) (string, error) {
	d := strings.ToUpper(strings.TrimSpace(day))
	if !IsWeekday(d) {
		return "", fmt.Errorf("unknown weekday %q", day)
	}
	return d, nil
}

// Day returns the raw timetable entries for weekday (in order). Unknown days yield nil.
func (c *Catalog) Day(weekday string) []string {
	if c == nil {
		return nil
	}
	return c.Timetable[strings.ToUpper(strings.TrimSpace(weekday))]
}

// Classes returns the weekday's entries split into time and subject.
func (c *Catalog) Classes(weekday string) []ClassSlot {
	entries := c.Day(weekday)
	out := make([]ClassSlot, 0, len(entries))
	for _, e := range entries {
		out = append(out, ParseEntry(e))
	}
	return out
}

// Subjects is the daily-log vocabulary: current subjects then backlog subjects, deduplicated.
func (c *Catalog) Subjects() []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(c.CurrentSubjects)+len(c.BacklogSubjects))
	for _, list := range [][]string{c.CurrentSubjects, c.BacklogSubjects} {
		for _, s := range list {
			s = strings.TrimSpace(s)
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// ParseEntry splits "09:00–11:00 Computer Networks" at the first space.
func ParseEntry(entry string) ClassSlot {
	entry = strings.TrimSpace(entry)
	timePart, subject, found := strings.Cut(entry, " ")
	if !found {
		return ClassSlot{Time: entry}
	}
	return ClassSlot{Time: timePart, Subject: strings.TrimSpace(subject)}
}
