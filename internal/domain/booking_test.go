package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{"pending to active", BookingStatusPending, BookingStatusActive, true},
		{"pending to cancelled", BookingStatusPending, BookingStatusCancelled, true},
		{"pending to expired", BookingStatusPending, BookingStatusExpired, true},
		{"pending to completed", BookingStatusPending, BookingStatusCompleted, true},
		{"active to completed", BookingStatusActive, BookingStatusCompleted, true},
		{"active to cancelled", BookingStatusActive, BookingStatusCancelled, true},
		{"active to expired", BookingStatusActive, BookingStatusExpired, false},
		{"active to pending", BookingStatusActive, BookingStatusPending, false},
		{"maintenance to completed", BookingStatusMaintenance, BookingStatusCompleted, true},
		{"maintenance to cancelled", BookingStatusMaintenance, BookingStatusCancelled, false},
		{"completed is terminal", BookingStatusCompleted, BookingStatusActive, false},
		{"cancelled is terminal", BookingStatusCancelled, BookingStatusPending, false},
		{"expired is terminal", BookingStatusExpired, BookingStatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	for _, s := range TerminalStatuses {
		assert.True(t, s.IsTerminal(), string(s))
	}
	for _, s := range HoldingStatuses {
		assert.False(t, s.IsTerminal(), string(s))
	}
}

func TestTerminalStatuses_HaveNoOutgoingEdges(t *testing.T) {
	all := []BookingStatus{
		BookingStatusPending,
		BookingStatusActive,
		BookingStatusCompleted,
		BookingStatusCancelled,
		BookingStatusExpired,
		BookingStatusMaintenance,
	}

	for _, from := range TerminalStatuses {
		for _, to := range all {
			assert.False(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestWindow_Overlaps(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	w := Window{Start: base, End: base.Add(2 * time.Hour)}

	tests := []struct {
		name  string
		other Window
		want  bool
	}{
		{"identical", Window{Start: base, End: base.Add(2 * time.Hour)}, true},
		{"contained", Window{Start: base.Add(30 * time.Minute), End: base.Add(time.Hour)}, true},
		{"overlaps start", Window{Start: base.Add(-time.Hour), End: base.Add(time.Hour)}, true},
		{"overlaps end", Window{Start: base.Add(time.Hour), End: base.Add(3 * time.Hour)}, true},
		{"covers", Window{Start: base.Add(-time.Hour), End: base.Add(3 * time.Hour)}, true},
		{"abuts before", Window{Start: base.Add(-2 * time.Hour), End: base}, false},
		{"abuts after", Window{Start: base.Add(2 * time.Hour), End: base.Add(4 * time.Hour)}, false},
		{"disjoint before", Window{Start: base.Add(-3 * time.Hour), End: base.Add(-time.Hour)}, false},
		{"disjoint after", Window{Start: base.Add(3 * time.Hour), End: base.Add(5 * time.Hour)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(w), "overlap is symmetric")
		})
	}
}

func TestWindow_Valid(t *testing.T) {
	now := time.Now()

	assert.True(t, Window{Start: now, End: now.Add(time.Hour)}.Valid())
	assert.False(t, Window{Start: now, End: now}.Valid())
	assert.False(t, Window{Start: now.Add(time.Hour), End: now}.Valid())
}

func TestBooking_Window(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)

	b := &Booking{StartTime: start, EndTime: end}
	w := b.Window()

	assert.Equal(t, start, w.Start)
	assert.Equal(t, end, w.End)
	assert.Equal(t, 4*time.Hour, w.Duration())
}
