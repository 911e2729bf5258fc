package routine

import (
	"context"
	"fmt"
	"strings"
)

type RoutineBlock struct {
	Title     string `json:"title"`
	Duration  string `json:"duration"`
	Reasoning string `json:"reasoning"`
}

// SmartRoutine is the delegated routine, in the wire shape the UI consumes.
type SmartRoutine struct {
	MorningBlock   RoutineBlock `json:"morningBlock"`
	AfternoonBlock RoutineBlock `json:"afternoonBlock"`
	EveningBlock   RoutineBlock `json:"eveningBlock"`
}

// Generator turns a prompt into a routine.
type Generator interface {
	Generate(ctx context.Context, p Prompt) (SmartRoutine, error)
}

type jsonModel interface {
	GenerateJSON(ctx context.Context, system string, user string, schemaName string, schema map[string]any) (map[string]any, error)
}

type modelGenerator struct {
	ai jsonModel
}

// NewModelGenerator wraps a structured-output model client.
func NewModelGenerator(ai jsonModel) Generator {
	return &modelGenerator{ai: ai}
}

func (g *modelGenerator) Generate(ctx context.Context, p Prompt) (SmartRoutine, error) {
	if g == nil || g.ai == nil {
		return SmartRoutine{}, fmt.Errorf("ai required")
	}
	obj, err := g.ai.GenerateJSON(ctx, p.System, p.User, "smart_routine_v1", Schema())
	if err != nil {
		return SmartRoutine{}, err
	}
	return CoerceSmartRoutine(obj)
}

// CoerceSmartRoutine validates the model's object. All three blocks must be
// objects with a non-empty title.
func CoerceSmartRoutine(obj map[string]any) (SmartRoutine, error) {
	morning, err := coerceBlock(obj, "morningBlock")
	if err != nil {
		return SmartRoutine{}, err
	}
	afternoon, err := coerceBlock(obj, "afternoonBlock")
	if err != nil {
		return SmartRoutine{}, err
	}
	evening, err := coerceBlock(obj, "eveningBlock")
	if err != nil {
		return SmartRoutine{}, err
	}
	return SmartRoutine{MorningBlock: morning, AfternoonBlock: afternoon, EveningBlock: evening}, nil
}

func coerceBlock(obj map[string]any, key string) (RoutineBlock, error) {
	raw, ok := obj[key].(map[string]any)
	if !ok {
		return RoutineBlock{}, fmt.Errorf("model response missing %s", key)
	}
	b := RoutineBlock{
		Title:     clampText(anyString(raw["title"]), 200),
		Duration:  clampText(anyString(raw["duration"]), 100),
		Reasoning: clampText(anyString(raw["reasoning"]), 2000),
	}
	if b.Title == "" {
		return RoutineBlock{}, fmt.Errorf("model response %s has no title", key)
	}
	return b, nil
}

func anyString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func clampText(s string, max int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	return strings.TrimSpace(string(r[:max])) + "…"
}

// StaticGenerator returns a fixed routine or error. It stands in for the model
// in tests and offline runs.
type StaticGenerator struct {
	Routine SmartRoutine
	Err     error
	// LastPrompt is the most recent prompt received.
	LastPrompt Prompt
}

func (s *StaticGenerator) Generate(ctx context.Context, p Prompt) (SmartRoutine, error) {
	s.LastPrompt = p
	if s.Err != nil {
		return SmartRoutine{}, s.Err
	}
	if err := ctx.Err(); err != nil {
		return SmartRoutine{}, err
	}
	return s.Routine, nil
}
