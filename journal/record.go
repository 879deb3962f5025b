package journal

import (
	"fmt"
	"time"
)

// Record is the outcome of the last export of one document kind for a provider.
type Record struct {
	RunID    string        `json:"run_id"`
	Provider string        `json:"provider"`
	Kind     string        `json:"kind"`
	Path     string        `json:"path"`
	Count    int           `json:"count"`
	At       time.Time     `json:"at"`
	Duration time.Duration `json:"duration"`
}

func (r *Record) encode() string {
	return fmt.Sprintf("%s (%s)", r.Provider, r.Kind)
}

func (r *Record) String() string {
	return fmt.Sprintf("%s %s: %d items, %s ago", r.Provider, r.Kind, r.Count, time.Since(r.At).Round(time.Second))
}
