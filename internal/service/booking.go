package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/Boodsmen/booking-bot/internal/domain"
	"github.com/Boodsmen/booking-bot/internal/service/ports"
)

// Policy holds the anti-abuse limits enforced on booking creation.
type Policy struct {
	MaxDuration     time.Duration
	MaxFutureWindow time.Duration
}

type BookingService struct {
	bookingRepo   ports.BookingRepo
	equipmentRepo ports.EquipmentRepo
	userRepo      ports.UserRepo
	notifier      ports.BookingNotifier
	policy        Policy
	logger        logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	equipmentRepo ports.EquipmentRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	policy Policy,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:   bookingRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		policy:        policy,
		logger:        logger,
	}
}

// Create validates the request against policy and inserts a pending
// booking. The capacity check happens inside the repository transaction,
// so two requests racing for the last unit cannot both succeed.
func (s *BookingService) Create(ctx context.Context, equipmentID, userID string, start, end time.Time) (*domain.Booking, error) {
	window := domain.Window{Start: start, End: end}
	if !window.Valid() {
		return nil, domain.ErrInvalidWindow
	}

	if window.Duration() > s.policy.MaxDuration {
		return nil, fmt.Errorf("%w: limit is %s", domain.ErrDurationLimit, s.policy.MaxDuration)
	}

	if start.After(time.Now().Add(s.policy.MaxFutureWindow)) {
		return nil, fmt.Errorf("%w: limit is %s ahead", domain.ErrTooFarAhead, s.policy.MaxFutureWindow)
	}

	equipment, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("check equipment: %w", err)
	}
	if !equipment.IsAvailable {
		return nil, fmt.Errorf("%w: equipment is out of service", domain.ErrSlotUnavailable)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	booking := &domain.Booking{
		ID:          uuid.New().String(),
		EquipmentID: equipmentID,
		UserID:      userID,
		StartTime:   start,
		EndTime:     end,
		Status:      domain.BookingStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("equipment_id", equipmentID),
		logger.String("user_id", userID),
	)

	go s.notify(context.WithoutCancel(ctx), func(ctx context.Context) error {
		return s.notifier.BookingCreated(ctx, user, equipment, booking)
	})

	return booking, nil
}

// CreateMaintenance blocks the whole resource for the window. A single
// overlapping holder rejects the request regardless of quantity: one
// maintenance block takes every unit out of circulation.
func (s *BookingService) CreateMaintenance(ctx context.Context, equipmentID, operatorID string, start, end time.Time, reason string) (*domain.Booking, error) {
	window := domain.Window{Start: start, End: end}
	if !window.Valid() {
		return nil, domain.ErrInvalidWindow
	}

	operator, err := s.userRepo.GetByID(ctx, operatorID)
	if err != nil {
		return nil, fmt.Errorf("check operator: %w", err)
	}
	if !operator.IsOperator {
		return nil, fmt.Errorf("%w: maintenance blocks require an operator", domain.ErrValidation)
	}

	booking := &domain.Booking{
		ID:                uuid.New().String(),
		EquipmentID:       equipmentID,
		UserID:            operatorID,
		StartTime:         start,
		EndTime:           end,
		Status:            domain.BookingStatusMaintenance,
		MaintenanceReason: reason,
		CreatedAt:         time.Now().UTC(),
	}
	if err = s.bookingRepo.CreateMaintenance(ctx, booking); err != nil {
		return nil, fmt.Errorf("create maintenance booking: %w", err)
	}

	s.logger.Info("maintenance booking created",
		logger.String("booking_id", booking.ID),
		logger.String("equipment_id", equipmentID),
		logger.String("reason", reason),
	)

	return booking, nil
}

// Confirm moves a pending booking to active, stamping confirmed_at and
// attaching optional start evidence.
func (s *BookingService) Confirm(ctx context.Context, id string, photos []string) (*domain.Booking, error) {
	b, err := s.bookingRepo.SetStatus(
		ctx, id,
		[]domain.BookingStatus{domain.BookingStatusPending},
		domain.BookingStatusActive,
		time.Now().UTC(), photos,
	)
	if err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	s.logger.Info("booking confirmed", logger.String("booking_id", id))
	return b, nil
}

// Complete moves an active booking to completed, stamping completed_at
// and attaching optional end evidence.
func (s *BookingService) Complete(ctx context.Context, id string, photos []string) (*domain.Booking, error) {
	b, err := s.bookingRepo.SetStatus(
		ctx, id,
		[]domain.BookingStatus{domain.BookingStatusActive},
		domain.BookingStatusCompleted,
		time.Now().UTC(), photos,
	)
	if err != nil {
		return nil, fmt.Errorf("complete booking: %w", err)
	}

	s.logger.Info("booking completed", logger.String("booking_id", id))
	return b, nil
}

// Cancel is always allowed for a pending booking; an active booking can
// only be cancelled while its start time is still in the future.
func (s *BookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	switch booking.Status {
	case domain.BookingStatusPending:
	case domain.BookingStatusActive:
		if !booking.StartTime.After(time.Now()) {
			return nil, domain.ErrAlreadyStarted
		}
	default:
		return nil, domain.ErrWrongStatus
	}

	b, err := s.bookingRepo.SetStatus(
		ctx, id,
		[]domain.BookingStatus{booking.Status},
		domain.BookingStatusCancelled,
		time.Now().UTC(), nil,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", id),
		logger.String("was", string(booking.Status)),
	)
	return b, nil
}

// Expire moves an unconfirmed pending booking to expired. Driven by the
// reconciliation scheduler once the confirmation deadline has elapsed.
func (s *BookingService) Expire(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookingRepo.SetStatus(
		ctx, id,
		[]domain.BookingStatus{domain.BookingStatusPending},
		domain.BookingStatusExpired,
		time.Now().UTC(), nil,
	)
	if err != nil {
		return nil, fmt.Errorf("expire booking: %w", err)
	}

	s.logger.Info("booking expired", logger.String("booking_id", id))
	return b, nil
}

// ForceComplete is the operator override: it completes a pending or
// active booking bypassing the usual guards.
func (s *BookingService) ForceComplete(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookingRepo.SetStatus(
		ctx, id,
		[]domain.BookingStatus{domain.BookingStatusPending, domain.BookingStatusActive},
		domain.BookingStatusCompleted,
		time.Now().UTC(), nil,
	)
	if err != nil {
		return nil, fmt.Errorf("force complete booking: %w", err)
	}

	s.logger.Info("booking force completed", logger.String("booking_id", id))
	return b, nil
}

func (s *BookingService) CompleteMaintenance(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookingRepo.SetStatus(
		ctx, id,
		[]domain.BookingStatus{domain.BookingStatusMaintenance},
		domain.BookingStatusCompleted,
		time.Now().UTC(), nil,
	)
	if err != nil {
		return nil, fmt.Errorf("complete maintenance: %w", err)
	}

	s.logger.Info("maintenance completed", logger.String("booking_id", id))
	return b, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

// AvailableUnits reports free units for a piece of equipment. With a
// window, only overlapping holders count; with a nil window every
// outstanding commitment counts regardless of time.
func (s *BookingService) AvailableUnits(ctx context.Context, equipmentID string, window *domain.Window) (int, error) {
	if window != nil && !window.Valid() {
		return 0, domain.ErrInvalidWindow
	}
	return s.bookingRepo.AvailableUnits(ctx, equipmentID, window)
}

func (s *BookingService) ExclusiveOverlap(ctx context.Context, equipmentID string, window domain.Window, excludeID string) (*domain.Booking, error) {
	if !window.Valid() {
		return nil, domain.ErrInvalidWindow
	}
	return s.bookingRepo.ExclusiveOverlap(ctx, equipmentID, window, excludeID)
}

func (s *BookingService) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByStatus(ctx, status)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// MarkFlag flips a notification-dedup flag; flags only move false to true.
func (s *BookingService) MarkFlag(ctx context.Context, id string, flag domain.BookingFlag) error {
	return s.bookingRepo.SetFlag(ctx, id, flag)
}

func (s *BookingService) notify(ctx context.Context, send func(context.Context) error) {
	if err := send(ctx); err != nil {
		s.logger.Error("failed to send notification",
			logger.String("error", err.Error()),
		)
	}
}
