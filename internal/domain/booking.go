package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending     BookingStatus = "pending"
	BookingStatusActive      BookingStatus = "active"
	BookingStatusCompleted   BookingStatus = "completed"
	BookingStatusCancelled   BookingStatus = "cancelled"
	BookingStatusExpired     BookingStatus = "expired"
	BookingStatusMaintenance BookingStatus = "maintenance"
)

// HoldingStatuses are the statuses that occupy a unit of equipment.
// Bookings in any other status no longer count against capacity.
var HoldingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusActive,
	BookingStatusMaintenance,
}

var TerminalStatuses = []BookingStatus{
	BookingStatusCompleted,
	BookingStatusCancelled,
	BookingStatusExpired,
}

// transitions is the closed set of allowed status moves. Terminal
// statuses have no outgoing edges.
var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending: {
		BookingStatusActive,
		BookingStatusCancelled,
		BookingStatusExpired,
		BookingStatusCompleted, // operator force complete
	},
	BookingStatusActive: {
		BookingStatusCompleted,
		BookingStatusCancelled,
	},
	BookingStatusMaintenance: {
		BookingStatusCompleted,
	},
}

func CanTransition(from, to BookingStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	for _, t := range TerminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// BookingFlag names the monotonic notification-dedup flags on a booking.
// A flag flips false to true exactly once and is never reset.
type BookingFlag string

const (
	FlagReminderSent             BookingFlag = "reminder_sent"
	FlagConfirmationReminderSent BookingFlag = "confirmation_reminder_sent"
	FlagOverdueNotified          BookingFlag = "overdue_notified"
	FlagIsOverdue                BookingFlag = "is_overdue"
)

type Booking struct {
	ID                string        `json:"id"`
	EquipmentID       string        `json:"equipment_id"`
	UserID            string        `json:"user_id"`
	StartTime         time.Time     `json:"start_time"`
	EndTime           time.Time     `json:"end_time"`
	Status            BookingStatus `json:"status"`
	ConfirmedAt       *time.Time    `json:"confirmed_at,omitempty"`
	CompletedAt       *time.Time    `json:"completed_at,omitempty"`
	PhotosStart       []string      `json:"photos_start,omitempty"`
	PhotosEnd         []string      `json:"photos_end,omitempty"`
	IsOverdue         bool          `json:"is_overdue"`
	ReminderSent      bool          `json:"reminder_sent"`
	ConfirmReminded   bool          `json:"confirmation_reminder_sent"`
	OverdueNotified   bool          `json:"overdue_notified"`
	MaintenanceReason string        `json:"maintenance_reason,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
}

func (b *Booking) Window() Window {
	return Window{Start: b.StartTime, End: b.EndTime}
}
