package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/Boodsmen/booking-bot/internal/domain"
	"github.com/Boodsmen/booking-bot/internal/service/ports"
)

// Job intervals mirror the cadence the reconciliation loop was designed
// around: confirmation handling every minute, return handling every five,
// stale cleanup hourly, heartbeat twice an hour.
const (
	expireInterval        = time.Minute
	remindConfirmInterval = time.Minute
	remindEndInterval     = 5 * time.Minute
	overdueInterval       = 5 * time.Minute
	autoCompleteInterval  = 60 * time.Minute
	heartbeatInterval     = 30 * time.Minute
)

type bookingLifecycle interface {
	ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error)
	Expire(ctx context.Context, id string) (*domain.Booking, error)
	ForceComplete(ctx context.Context, id string) (*domain.Booking, error)
	MarkFlag(ctx context.Context, id string, flag domain.BookingFlag) error
}

type userDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListOperators(ctx context.Context) ([]*domain.User, error)
}

type equipmentCatalog interface {
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
}

// Timing holds the durations the jobs compare bookings against. All
// state lives on the booking rows themselves, so a restart loses nothing.
type Timing struct {
	ConfirmTimeout        time.Duration
	ConfirmReminderWindow time.Duration
	ReminderLead          time.Duration
	OverdueAlertAfter     time.Duration
	StaleAfter            time.Duration
}

type Jobs struct {
	booking   bookingLifecycle
	users     userDirectory
	equipment equipmentCatalog
	notifier  ports.BookingNotifier
	heartbeat *Heartbeat
	timing    Timing
	logger    logger.Logger
}

func NewJobs(
	booking bookingLifecycle,
	users userDirectory,
	equipment equipmentCatalog,
	notifier ports.BookingNotifier,
	heartbeat *Heartbeat,
	timing Timing,
	logger logger.Logger,
) *Jobs {
	return &Jobs{
		booking:   booking,
		users:     users,
		equipment: equipment,
		notifier:  notifier,
		heartbeat: heartbeat,
		timing:    timing,
		logger:    logger,
	}
}

// All returns the job table the scheduler dispatches.
func (j *Jobs) All() []Job {
	return []Job{
		{Name: "expire_unconfirmed", Every: expireInterval, Run: j.ExpireUnconfirmed},
		{Name: "remind_confirm", Every: remindConfirmInterval, Run: j.RemindConfirm},
		{Name: "remind_end", Every: remindEndInterval, Run: j.RemindEnd},
		{Name: "escalate_overdue", Every: overdueInterval, Run: j.EscalateOverdue},
		{Name: "auto_complete_stale", Every: autoCompleteInterval, Run: j.AutoCompleteStale},
		{Name: "heartbeat", Every: heartbeatInterval, Run: j.Heartbeat},
	}
}

// ExpireUnconfirmed expires pending bookings whose confirmation deadline
// has elapsed and notifies the requester once, via the status change.
func (j *Jobs) ExpireUnconfirmed(ctx context.Context) error {
	bookings, err := j.booking.ListByStatus(ctx, domain.BookingStatusPending)
	if err != nil {
		return err
	}

	now := time.Now()
	expired := 0
	for _, b := range bookings {
		if !b.StartTime.Add(j.timing.ConfirmTimeout).Before(now) {
			continue
		}

		expiredBooking, err := j.booking.Expire(ctx, b.ID)
		if err != nil {
			j.rowError("expire booking", b.ID, err)
			continue
		}
		expired++

		user, equipment, err := j.principals(ctx, b)
		if err != nil {
			j.rowError("load principals for expired booking", b.ID, err)
			continue
		}
		if err := j.notifier.BookingExpired(ctx, user, equipment, expiredBooking); err != nil {
			j.rowError("notify expired booking", b.ID, err)
		}
	}

	if expired > 0 {
		j.logger.Info("expired pending bookings", logger.Int("count", expired))
	}
	return nil
}

// RemindConfirm nudges requesters whose booking start is within the
// reminder window, past or future. The dedup flag is set only after the
// notification went out, so a failed send retries next pass.
func (j *Jobs) RemindConfirm(ctx context.Context) error {
	bookings, err := j.booking.ListByStatus(ctx, domain.BookingStatusPending)
	if err != nil {
		return err
	}

	now := time.Now()
	sent := 0
	for _, b := range bookings {
		if b.ConfirmReminded {
			continue
		}

		untilStart := b.StartTime.Sub(now)
		if untilStart.Abs() > j.timing.ConfirmReminderWindow {
			continue
		}

		user, equipment, err := j.principals(ctx, b)
		if err != nil {
			j.rowError("load principals for confirm reminder", b.ID, err)
			continue
		}
		if err := j.notifier.ConfirmReminder(ctx, user, equipment, b, untilStart); err != nil {
			j.rowError("send confirm reminder", b.ID, err)
			continue
		}
		if err := j.booking.MarkFlag(ctx, b.ID, domain.FlagConfirmationReminderSent); err != nil {
			j.rowError("mark confirm reminder sent", b.ID, err)
			continue
		}
		sent++
	}

	if sent > 0 {
		j.logger.Info("sent confirmation reminders", logger.Int("count", sent))
	}
	return nil
}

// RemindEnd warns requesters that their return deadline is approaching.
func (j *Jobs) RemindEnd(ctx context.Context) error {
	bookings, err := j.booking.ListByStatus(ctx, domain.BookingStatusActive)
	if err != nil {
		return err
	}

	now := time.Now()
	sent := 0
	for _, b := range bookings {
		if b.ReminderSent {
			continue
		}

		untilEnd := b.EndTime.Sub(now)
		if untilEnd <= 0 || untilEnd > j.timing.ReminderLead {
			continue
		}

		user, equipment, err := j.principals(ctx, b)
		if err != nil {
			j.rowError("load principals for end reminder", b.ID, err)
			continue
		}
		if err := j.notifier.ReturnReminder(ctx, user, equipment, b, untilEnd); err != nil {
			j.rowError("send end reminder", b.ID, err)
			continue
		}
		if err := j.booking.MarkFlag(ctx, b.ID, domain.FlagReminderSent); err != nil {
			j.rowError("mark end reminder sent", b.ID, err)
			continue
		}
		sent++
	}

	if sent > 0 {
		j.logger.Info("sent return reminders", logger.Int("count", sent))
	}
	return nil
}

// EscalateOverdue notifies the requester once when a return is late and,
// independently, alerts every operator once when the overdue duration
// crosses the alert threshold. is_overdue is flipped before the operator
// fan-out so a partially failed fan-out is not repeated wholesale.
func (j *Jobs) EscalateOverdue(ctx context.Context) error {
	bookings, err := j.booking.ListByStatus(ctx, domain.BookingStatusActive)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, b := range bookings {
		if !b.EndTime.Before(now) {
			continue
		}
		overdue := now.Sub(b.EndTime)

		if !b.OverdueNotified {
			user, equipment, err := j.principals(ctx, b)
			if err != nil {
				j.rowError("load principals for overdue notice", b.ID, err)
			} else if err := j.notifier.OverdueNotice(ctx, user, equipment, b, overdue); err != nil {
				j.rowError("send overdue notice", b.ID, err)
			} else if err := j.booking.MarkFlag(ctx, b.ID, domain.FlagOverdueNotified); err != nil {
				j.rowError("mark overdue notified", b.ID, err)
			}
		}

		if overdue >= j.timing.OverdueAlertAfter && !b.IsOverdue {
			if err := j.booking.MarkFlag(ctx, b.ID, domain.FlagIsOverdue); err != nil {
				j.rowError("mark overdue", b.ID, err)
				continue
			}
			j.escalate(ctx, b, overdue)
		}
	}
	return nil
}

func (j *Jobs) escalate(ctx context.Context, b *domain.Booking, overdue time.Duration) {
	requester, equipment, err := j.principals(ctx, b)
	if err != nil {
		j.rowError("load principals for escalation", b.ID, err)
		return
	}

	operators, err := j.users.ListOperators(ctx)
	if err != nil {
		j.rowError("list operators", b.ID, err)
		return
	}

	notified := 0
	for _, op := range operators {
		if err := j.notifier.OverdueEscalation(ctx, op, requester, equipment, b, overdue); err != nil {
			j.logger.Error("failed to notify operator",
				logger.String("booking_id", b.ID),
				logger.String("operator_id", op.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		notified++
	}

	j.logger.Warn("overdue escalation",
		logger.String("booking_id", b.ID),
		logger.String("user_id", b.UserID),
		logger.Duration("overdue", overdue),
		logger.Int("operators_notified", notified),
	)
}

// AutoCompleteStale force-completes active bookings stuck past their end
// time for longer than the stale threshold.
func (j *Jobs) AutoCompleteStale(ctx context.Context) error {
	bookings, err := j.booking.ListByStatus(ctx, domain.BookingStatusActive)
	if err != nil {
		return err
	}

	now := time.Now()
	completed := 0
	for _, b := range bookings {
		if now.Sub(b.EndTime) < j.timing.StaleAfter {
			continue
		}

		completedBooking, err := j.booking.ForceComplete(ctx, b.ID)
		if err != nil {
			j.rowError("auto complete booking", b.ID, err)
			continue
		}
		completed++

		user, equipment, err := j.principals(ctx, b)
		if err != nil {
			j.rowError("load principals for auto complete", b.ID, err)
			continue
		}
		if err := j.notifier.AutoCompleted(ctx, user, equipment, completedBooking); err != nil {
			j.rowError("notify auto complete", b.ID, err)
		}
	}

	if completed > 0 {
		j.logger.Info("auto-completed stale bookings", logger.Int("count", completed))
	}
	return nil
}

// Heartbeat persists the current timestamp to the durable marker.
func (j *Jobs) Heartbeat(ctx context.Context) error {
	if err := j.heartbeat.Beat(time.Now()); err != nil {
		return err
	}
	j.logger.Debug("scheduler heartbeat written")
	return nil
}

func (j *Jobs) principals(ctx context.Context, b *domain.Booking) (*domain.User, *domain.Equipment, error) {
	user, err := j.users.GetByID(ctx, b.UserID)
	if err != nil {
		return nil, nil, err
	}
	equipment, err := j.equipment.GetByID(ctx, b.EquipmentID)
	if err != nil {
		return nil, nil, err
	}
	return user, equipment, nil
}

func (j *Jobs) rowError(action, bookingID string, err error) {
	j.logger.Error("failed to "+action,
		logger.String("booking_id", bookingID),
		logger.String("error", err.Error()),
	)
}
