package scheduler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Heartbeat is the durable marker the scheduler touches periodically.
// At process start the marker is read back to detect an outage window.
type Heartbeat struct {
	path string
}

func NewHeartbeat(path string) *Heartbeat {
	return &Heartbeat{path: path}
}

func (h *Heartbeat) Beat(now time.Time) error {
	if dir := filepath.Dir(h.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("heartbeat dir: %w", err)
		}
	}
	if err := os.WriteFile(h.path, []byte(now.UTC().Format(time.RFC3339)), 0o644); err != nil {
		return fmt.Errorf("write heartbeat: %w", err)
	}
	return nil
}

// Last returns the previous heartbeat timestamp. ok is false when no
// marker exists yet (first start).
func (h *Heartbeat) Last() (t time.Time, ok bool, err error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("read heartbeat: %w", err)
	}

	t, err = time.Parse(time.RFC3339, strings.TrimSpace(string(data)))
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse heartbeat: %w", err)
	}
	return t, true, nil
}
