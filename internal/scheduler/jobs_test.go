package scheduler

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Boodsmen/booking-bot/internal/domain"
	smocks "github.com/Boodsmen/booking-bot/internal/scheduler/mocks"
	pmocks "github.com/Boodsmen/booking-bot/internal/service/ports/mocks"
)

func testTiming() Timing {
	return Timing{
		ConfirmTimeout:        15 * time.Minute,
		ConfirmReminderWindow: 5 * time.Minute,
		ReminderLead:          15 * time.Minute,
		OverdueAlertAfter:     30 * time.Minute,
		StaleAfter:            24 * time.Hour,
	}
}

func newTestJobs(t *testing.T) (*Jobs, *smocks.MockBookingLifecycle, *smocks.MockUserDirectory, *smocks.MockEquipmentCatalog, *pmocks.MockBookingNotifier) {
	t.Helper()
	booking := smocks.NewMockBookingLifecycle(t)
	users := smocks.NewMockUserDirectory(t)
	equipment := smocks.NewMockEquipmentCatalog(t)
	notifier := pmocks.NewMockBookingNotifier(t)
	heartbeat := NewHeartbeat(filepath.Join(t.TempDir(), "heartbeat"))

	jobs := NewJobs(booking, users, equipment, notifier, heartbeat, testTiming(), newTestLogger(t))
	return jobs, booking, users, equipment, notifier
}

func TestJobs_All(t *testing.T) {
	jobs, _, _, _, _ := newTestJobs(t)

	table := jobs.All()
	require.Len(t, table, 6)

	names := make(map[string]time.Duration, len(table))
	for _, job := range table {
		names[job.Name] = job.Every
	}

	assert.Equal(t, time.Minute, names["expire_unconfirmed"])
	assert.Equal(t, time.Minute, names["remind_confirm"])
	assert.Equal(t, 5*time.Minute, names["remind_end"])
	assert.Equal(t, 5*time.Minute, names["escalate_overdue"])
	assert.Equal(t, 60*time.Minute, names["auto_complete_stale"])
	assert.Equal(t, 30*time.Minute, names["heartbeat"])
}

func TestJobs_ExpireUnconfirmed(t *testing.T) {
	jobs, booking, users, equipment, notifier := newTestJobs(t)

	now := time.Now()
	stale := &domain.Booking{
		ID:          "b1",
		EquipmentID: "eq1",
		UserID:      "u1",
		StartTime:   now.Add(-30 * time.Minute), // deadline long gone
		Status:      domain.BookingStatusPending,
	}
	fresh := &domain.Booking{
		ID:        "b2",
		StartTime: now.Add(-5 * time.Minute), // inside confirm window
		Status:    domain.BookingStatusPending,
	}

	user := &domain.User{ID: "u1"}
	eq := &domain.Equipment{ID: "eq1"}

	expired := &domain.Booking{
		ID:          "b1",
		EquipmentID: "eq1",
		UserID:      "u1",
		StartTime:   stale.StartTime,
		Status:      domain.BookingStatusExpired,
	}

	booking.EXPECT().ListByStatus(mock.Anything, domain.BookingStatusPending).Return([]*domain.Booking{stale, fresh}, nil)
	booking.EXPECT().Expire(mock.Anything, "b1").Return(expired, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	equipment.EXPECT().GetByID(mock.Anything, "eq1").Return(eq, nil)
	// the notifier sees the row after transition, not the listed snapshot
	notifier.EXPECT().BookingExpired(mock.Anything, user, eq, expired).Return(nil)

	err := jobs.ExpireUnconfirmed(context.Background())

	require.NoError(t, err)
	booking.AssertNotCalled(t, "Expire", mock.Anything, "b2")
}

func TestJobs_ExpireUnconfirmed_RowFailureContinues(t *testing.T) {
	jobs, booking, users, equipment, notifier := newTestJobs(t)

	now := time.Now()
	b1 := &domain.Booking{ID: "b1", EquipmentID: "eq1", UserID: "u1", StartTime: now.Add(-time.Hour), Status: domain.BookingStatusPending}
	b2 := &domain.Booking{ID: "b2", EquipmentID: "eq1", UserID: "u1", StartTime: now.Add(-time.Hour), Status: domain.BookingStatusPending}

	user := &domain.User{ID: "u1"}
	eq := &domain.Equipment{ID: "eq1"}

	booking.EXPECT().ListByStatus(mock.Anything, domain.BookingStatusPending).Return([]*domain.Booking{b1, b2}, nil)
	booking.EXPECT().Expire(mock.Anything, "b1").Return(nil, errors.New("db error"))
	booking.EXPECT().Expire(mock.Anything, "b2").Return(b2, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	equipment.EXPECT().GetByID(mock.Anything, "eq1").Return(eq, nil)
	notifier.EXPECT().BookingExpired(mock.Anything, user, eq, b2).Return(nil)

	err := jobs.ExpireUnconfirmed(context.Background())

	require.NoError(t, err, "a failed row must not fail the pass")
}

func TestJobs_ExpireUnconfirmed_ListError(t *testing.T) {
	jobs, booking, _, _, _ := newTestJobs(t)

	booking.EXPECT().ListByStatus(mock.Anything, domain.BookingStatusPending).Return(nil, errors.New("db down"))

	err := jobs.ExpireUnconfirmed(context.Background())

	assert.Error(t, err)
}

func TestJobs_RemindConfirm(t *testing.T) {
	jobs, booking, users, equipment, notifier := newTestJobs(t)

	now := time.Now()
	due := &domain.Booking{
		ID:          "b1",
		EquipmentID: "eq1",
		UserID:      "u1",
		StartTime:   now.Add(3 * time.Minute), // inside the 5m window
		Status:      domain.BookingStatusPending,
	}
	reminded := &domain.Booking{
		ID:              "b2",
		StartTime:       now.Add(2 * time.Minute),
		Status:          domain.BookingStatusPending,
		ConfirmReminded: true,
	}
	farOff := &domain.Booking{
		ID:        "b3",
		StartTime: now.Add(time.Hour),
		Status:    domain.BookingStatusPending,
	}

	user := &domain.User{ID: "u1"}
	eq := &domain.Equipment{ID: "eq1"}

	booking.EXPECT().ListByStatus(mock.Anything, domain.BookingStatusPending).Return([]*domain.Booking{due, reminded, farOff}, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	equipment.EXPECT().GetByID(mock.Anything, "eq1").Return(eq, nil)
	notifier.EXPECT().ConfirmReminder(mock.Anything, user, eq, due, mock.Anything).Return(nil)
	booking.EXPECT().MarkFlag(mock.Anything, "b1", domain.FlagConfirmationReminderSent).Return(nil)

	err := jobs.RemindConfirm(context.Background())

	require.NoError(t, err)
	booking.AssertNotCalled(t, "MarkFlag", mock.Anything, "b2", mock.Anything)
	booking.AssertNotCalled(t, "MarkFlag", mock.Anything, "b3", mock.Anything)
}

func TestJobs_RemindConfirm_SendFailureKeepsFlagClear(t *testing.T) {
	jobs, booking, users, equipment, notifier := newTestJobs(t)

	now := time.Now()
	due := &domain.Booking{
		ID:          "b1",
		EquipmentID: "eq1",
		UserID:      "u1",
		StartTime:   now.Add(-2 * time.Minute), // just past start, still within window
		Status:      domain.BookingStatusPending,
	}

	user := &domain.User{ID: "u1"}
	eq := &domain.Equipment{ID: "eq1"}

	booking.EXPECT().ListByStatus(mock.Anything, domain.BookingStatusPending).Return([]*domain.Booking{due}, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	equipment.EXPECT().GetByID(mock.Anything, "eq1").Return(eq, nil)
	notifier.EXPECT().ConfirmReminder(mock.Anything, user, eq, due, mock.Anything).Return(errors.New("telegram down"))

	err := jobs.RemindConfirm(context.Background())

	require.NoError(t, err)
	booking.AssertNotCalled(t, "MarkFlag", mock.Anything, mock.Anything, mock.Anything)
}

func TestJobs_RemindEnd(t *testing.T) {
	jobs, booking, users, equipment, notifier := newTestJobs(t)

	now := time.Now()
	ending := &domain.Booking{
		ID:          "b1",
		EquipmentID: "eq1",
		UserID:      "u1",
		EndTime:     now.Add(10 * time.Minute), // inside the 15m lead
		Status:      domain.BookingStatusActive,
	}
	alreadyReminded := &domain.Booking{
		ID:           "b2",
		EndTime:      now.Add(5 * time.Minute),
		Status:       domain.BookingStatusActive,
		ReminderSent: true,
	}
	alreadyOver := &domain.Booking{
		ID:      "b3",
		EndTime: now.Add(-time.Minute), // overdue handling owns this one
		Status:  domain.BookingStatusActive,
	}

	user := &domain.User{ID: "u1"}
	eq := &domain.Equipment{ID: "eq1"}

	booking.EXPECT().ListByStatus(mock.Anything, domain.BookingStatusActive).Return([]*domain.Booking{ending, alreadyReminded, alreadyOver}, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	equipment.EXPECT().GetByID(mock.Anything, "eq1").Return(eq, nil)
	notifier.EXPECT().ReturnReminder(mock.Anything, user, eq, ending, mock.Anything).Return(nil)
	booking.EXPECT().MarkFlag(mock.Anything, "b1", domain.FlagReminderSent).Return(nil)

	err := jobs.RemindEnd(context.Background())

	require.NoError(t, err)
	booking.AssertNotCalled(t, "MarkFlag", mock.Anything, "b2", mock.Anything)
	booking.AssertNotCalled(t, "MarkFlag", mock.Anything, "b3", mock.Anything)
}

func TestJobs_EscalateOverdue(t *testing.T) {
	jobs, booking, users, equipment, notifier := newTestJobs(t)

	now := time.Now()
	overdue := &domain.Booking{
		ID:          "b1",
		EquipmentID: "eq1",
		UserID:      "u1",
		EndTime:     now.Add(-45 * time.Minute), // past the 30m alert threshold
		Status:      domain.BookingStatusActive,
	}

	requester := &domain.User{ID: "u1"}
	eq := &domain.Equipment{ID: "eq1"}
	op1 := &domain.User{ID: "op1", IsOperator: true}
	op2 := &domain.User{ID: "op2", IsOperator: true}

	booking.EXPECT().ListByStatus(mock.Anything, domain.BookingStatusActive).Return([]*domain.Booking{overdue}, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(requester, nil)
	equipment.EXPECT().GetByID(mock.Anything, "eq1").Return(eq, nil)

	notifier.EXPECT().OverdueNotice(mock.Anything, requester, eq, overdue, mock.Anything).Return(nil)
	booking.EXPECT().MarkFlag(mock.Anything, "b1", domain.FlagOverdueNotified).Return(nil)

	booking.EXPECT().MarkFlag(mock.Anything, "b1", domain.FlagIsOverdue).Return(nil)
	users.EXPECT().ListOperators(mock.Anything).Return([]*domain.User{op1, op2}, nil)
	notifier.EXPECT().OverdueEscalation(mock.Anything, op1, requester, eq, overdue, mock.Anything).Return(nil)
	notifier.EXPECT().OverdueEscalation(mock.Anything, op2, requester, eq, overdue, mock.Anything).Return(nil)

	err := jobs.EscalateOverdue(context.Background())

	require.NoError(t, err)
}

func TestJobs_EscalateOverdue_SecondPassIsSilent(t *testing.T) {
	jobs, booking, _, _, _ := newTestJobs(t)

	now := time.Now()
	handled := &domain.Booking{
		ID:              "b1",
		EndTime:         now.Add(-2 * time.Hour),
		Status:          domain.BookingStatusActive,
		IsOverdue:       true,
		OverdueNotified: true,
	}

	booking.EXPECT().ListByStatus(mock.Anything, domain.BookingStatusActive).Return([]*domain.Booking{handled}, nil)

	err := jobs.EscalateOverdue(context.Background())

	require.NoError(t, err, "flags are monotonic, nothing fires twice")
}

func TestJobs_EscalateOverdue_BelowAlertThreshold(t *testing.T) {
	jobs, booking, users, equipment, notifier := newTestJobs(t)

	now := time.Now()
	// Late, but not yet 30 minutes late: requester notice only, no fan-out.
	slightlyLate := &domain.Booking{
		ID:          "b1",
		EquipmentID: "eq1",
		UserID:      "u1",
		EndTime:     now.Add(-10 * time.Minute),
		Status:      domain.BookingStatusActive,
	}

	requester := &domain.User{ID: "u1"}
	eq := &domain.Equipment{ID: "eq1"}

	booking.EXPECT().ListByStatus(mock.Anything, domain.BookingStatusActive).Return([]*domain.Booking{slightlyLate}, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(requester, nil)
	equipment.EXPECT().GetByID(mock.Anything, "eq1").Return(eq, nil)
	notifier.EXPECT().OverdueNotice(mock.Anything, requester, eq, slightlyLate, mock.Anything).Return(nil)
	booking.EXPECT().MarkFlag(mock.Anything, "b1", domain.FlagOverdueNotified).Return(nil)

	err := jobs.EscalateOverdue(context.Background())

	require.NoError(t, err)
	users.AssertNotCalled(t, "ListOperators", mock.Anything)
	booking.AssertNotCalled(t, "MarkFlag", mock.Anything, "b1", domain.FlagIsOverdue)
}

func TestJobs_EscalateOverdue_OperatorFailureDoesNotStopFanOut(t *testing.T) {
	jobs, booking, users, equipment, notifier := newTestJobs(t)

	now := time.Now()
	overdue := &domain.Booking{
		ID:              "b1",
		EquipmentID:     "eq1",
		UserID:          "u1",
		EndTime:         now.Add(-time.Hour),
		Status:          domain.BookingStatusActive,
		OverdueNotified: true,
	}

	requester := &domain.User{ID: "u1"}
	eq := &domain.Equipment{ID: "eq1"}
	op1 := &domain.User{ID: "op1"}
	op2 := &domain.User{ID: "op2"}

	booking.EXPECT().ListByStatus(mock.Anything, domain.BookingStatusActive).Return([]*domain.Booking{overdue}, nil)
	booking.EXPECT().MarkFlag(mock.Anything, "b1", domain.FlagIsOverdue).Return(nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(requester, nil)
	equipment.EXPECT().GetByID(mock.Anything, "eq1").Return(eq, nil)
	users.EXPECT().ListOperators(mock.Anything).Return([]*domain.User{op1, op2}, nil)
	notifier.EXPECT().OverdueEscalation(mock.Anything, op1, requester, eq, overdue, mock.Anything).Return(errors.New("chat closed"))
	notifier.EXPECT().OverdueEscalation(mock.Anything, op2, requester, eq, overdue, mock.Anything).Return(nil)

	err := jobs.EscalateOverdue(context.Background())

	require.NoError(t, err)
}

func TestJobs_AutoCompleteStale(t *testing.T) {
	jobs, booking, users, equipment, notifier := newTestJobs(t)

	now := time.Now()
	stale := &domain.Booking{
		ID:          "b1",
		EquipmentID: "eq1",
		UserID:      "u1",
		EndTime:     now.Add(-25 * time.Hour), // past the 24h stale threshold
		Status:      domain.BookingStatusActive,
	}
	merelyLate := &domain.Booking{
		ID:      "b2",
		EndTime: now.Add(-time.Hour),
		Status:  domain.BookingStatusActive,
	}

	user := &domain.User{ID: "u1"}
	eq := &domain.Equipment{ID: "eq1"}

	completed := &domain.Booking{
		ID:          "b1",
		EquipmentID: "eq1",
		UserID:      "u1",
		EndTime:     stale.EndTime,
		Status:      domain.BookingStatusCompleted,
	}

	booking.EXPECT().ListByStatus(mock.Anything, domain.BookingStatusActive).Return([]*domain.Booking{stale, merelyLate}, nil)
	booking.EXPECT().ForceComplete(mock.Anything, "b1").Return(completed, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	equipment.EXPECT().GetByID(mock.Anything, "eq1").Return(eq, nil)
	notifier.EXPECT().AutoCompleted(mock.Anything, user, eq, completed).Return(nil)

	err := jobs.AutoCompleteStale(context.Background())

	require.NoError(t, err)
	booking.AssertNotCalled(t, "ForceComplete", mock.Anything, "b2")
}

func TestJobs_Heartbeat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heartbeat")
	heartbeat := NewHeartbeat(path)

	jobs := NewJobs(
		smocks.NewMockBookingLifecycle(t),
		smocks.NewMockUserDirectory(t),
		smocks.NewMockEquipmentCatalog(t),
		pmocks.NewMockBookingNotifier(t),
		heartbeat,
		testTiming(),
		newTestLogger(t),
	)

	require.NoError(t, jobs.Heartbeat(context.Background()))

	last, ok, err := heartbeat.Last()
	require.NoError(t, err)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now(), last, 5*time.Second)
}
