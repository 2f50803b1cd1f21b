package ports

import (
	"context"
	"time"

	"github.com/Boodsmen/booking-bot/internal/domain"
)

type BookingRepo interface {
	// Create inserts a pending booking after re-checking windowed
	// availability inside the same transaction.
	Create(ctx context.Context, b *domain.Booking) error
	// CreateMaintenance inserts a maintenance block after a locking
	// exclusive-overlap check inside the same transaction.
	CreateMaintenance(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// SetStatus conditionally moves a booking from one of the given
	// statuses to the target status, returning the updated row. When no
	// row matches it returns domain.ErrWrongStatus.
	SetStatus(ctx context.Context, id string, from []domain.BookingStatus, to domain.BookingStatus, at time.Time, photos []string) (*domain.Booking, error)
	SetFlag(ctx context.Context, id string, flag domain.BookingFlag) error
	ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	AvailableUnits(ctx context.Context, equipmentID string, window *domain.Window) (int, error)
	ExclusiveOverlap(ctx context.Context, equipmentID string, window domain.Window, excludeID string) (*domain.Booking, error)
}
