package ports

import (
	"context"
	"time"

	"github.com/Boodsmen/booking-bot/internal/domain"
)

// BookingNotifier pushes a message to a single principal. Every call is
// individually bounded and may fail; callers decide whether a failure
// blocks a dedup flag from being set.
type BookingNotifier interface {
	BookingCreated(ctx context.Context, user *domain.User, eq *domain.Equipment, b *domain.Booking) error
	BookingExpired(ctx context.Context, user *domain.User, eq *domain.Equipment, b *domain.Booking) error
	ConfirmReminder(ctx context.Context, user *domain.User, eq *domain.Equipment, b *domain.Booking, untilStart time.Duration) error
	ReturnReminder(ctx context.Context, user *domain.User, eq *domain.Equipment, b *domain.Booking, untilEnd time.Duration) error
	OverdueNotice(ctx context.Context, user *domain.User, eq *domain.Equipment, b *domain.Booking, overdue time.Duration) error
	OverdueEscalation(ctx context.Context, operator, requester *domain.User, eq *domain.Equipment, b *domain.Booking, overdue time.Duration) error
	AutoCompleted(ctx context.Context, user *domain.User, eq *domain.Equipment, b *domain.Booking) error
}
