// Package envutil reads typed settings from the environment. Unset, blank and
// unparsable values all fall back to the supplied default.
package envutil

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func lookup[T any](name string, def T, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		return def
	}
	return v
}

func String(name, def string) string {
	return lookup(name, def, func(s string) (string, error) { return s, nil })
}

func Int(name string, def int) int { return lookup(name, def, strconv.Atoi) }

func Float(name string, def float64) float64 {
	return lookup(name, def, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

// Bool accepts 1/0, true/false, yes/no, y/n and on/off.
func Bool(name string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(name))) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// Seconds reads an integer number of seconds; non-positive values fall back to def.
func Seconds(name string, def time.Duration) time.Duration {
	if n := Int(name, 0); n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}

// List splits a comma-separated value, dropping blanks.
func List(name string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(name), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
