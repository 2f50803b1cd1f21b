package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Boodsmen/booking-bot/internal/domain"
)

const bookingColumns = `id, equipment_id, user_id, start_time, end_time, status,
       confirmed_at, completed_at, photos_start, photos_end,
       is_overdue, reminder_sent, confirmation_reminder_sent, overdue_notified,
       maintenance_reason, created_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var reason sql.NullString
	if err := row.Scan(
		&b.ID, &b.EquipmentID, &b.UserID, &b.StartTime, &b.EndTime, &b.Status,
		&b.ConfirmedAt, &b.CompletedAt, pq.Array(&b.PhotosStart), pq.Array(&b.PhotosEnd),
		&b.IsOverdue, &b.ReminderSent, &b.ConfirmReminded, &b.OverdueNotified,
		&reason, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	b.MaintenanceReason = reason.String
	return &b, nil
}

// Create re-checks windowed capacity and inserts the booking in one
// transaction. The equipment row is locked so two requests contending
// for the last free unit serialize instead of both succeeding.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var quantity int
	quantityQuery := `SELECT quantity FROM equipment WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, quantityQuery, b.EquipmentID).Scan(&quantity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEquipmentNotFound
		}
		return fmt.Errorf("get equipment quantity: %w", err)
	}

	var overlapping int
	overlapQuery := `SELECT COUNT(*) FROM bookings
			 WHERE equipment_id = $1 AND status = ANY($2)
			   AND start_time < $3 AND end_time > $4`
	if err = tx.QueryRowContext(
		ctx, overlapQuery, b.EquipmentID,
		pq.Array(domain.HoldingStatuses), b.EndTime, b.StartTime,
	).Scan(&overlapping); err != nil {
		return fmt.Errorf("count overlapping bookings: %w", err)
	}

	if overlapping >= quantity {
		return domain.ErrSlotUnavailable
	}

	if err = r.insert(ctx, tx, b); err != nil {
		return err
	}

	return tx.Commit()
}

// CreateMaintenance inserts a maintenance block after a locking read for
// any overlapping holder. A maintenance block claims the whole resource,
// so a single hit rejects the request regardless of quantity. The
// equipment row is locked first: every insert path for a resource
// serializes on it, so an overlap check here cannot miss a booking a
// concurrent transaction is about to commit.
func (r *BookingRepository) CreateMaintenance(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var one int
	lockQuery := `SELECT 1 FROM equipment WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.EquipmentID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEquipmentNotFound
		}
		return fmt.Errorf("lock equipment: %w", err)
	}

	overlapQuery := `SELECT id FROM bookings
			 WHERE equipment_id = $1 AND status = ANY($2)
			   AND start_time < $3 AND end_time > $4
			 LIMIT 1
			 FOR UPDATE`
	var holder string
	err = tx.QueryRowContext(
		ctx, overlapQuery, b.EquipmentID,
		pq.Array(domain.HoldingStatuses), b.EndTime, b.StartTime,
	).Scan(&holder)
	switch {
	case err == nil:
		return domain.ErrSlotUnavailable
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("check exclusive overlap: %w", err)
	}

	if err = r.insert(ctx, tx, b); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *BookingRepository) insert(ctx context.Context, tx *sql.Tx, b *domain.Booking) error {
	query := `INSERT INTO bookings
		(id, equipment_id, user_id, start_time, end_time, status,
		 photos_start, photos_end, maintenance_reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10)`
	_, err := tx.ExecContext(
		ctx, query,
		b.ID, b.EquipmentID, b.UserID, b.StartTime, b.EndTime, b.Status,
		pq.Array(b.PhotosStart), pq.Array(b.PhotosEnd), b.MaintenanceReason, b.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// SetStatus atomically moves a booking out of one of the expected
// statuses. confirmed_at/completed_at are stamped according to the
// target status; photo evidence attaches to the matching side.
func (r *BookingRepository) SetStatus(
	ctx context.Context,
	id string,
	from []domain.BookingStatus,
	to domain.BookingStatus,
	at time.Time,
	photos []string,
) (*domain.Booking, error) {
	query := `UPDATE bookings
		  SET status = $2,
		      confirmed_at = CASE WHEN $2 = 'active' THEN $3 ELSE confirmed_at END,
		      completed_at = CASE WHEN $2 = 'completed' THEN $3 ELSE completed_at END,
		      photos_start = CASE WHEN $2 = 'active' AND cardinality($4::text[]) > 0 THEN $4 ELSE photos_start END,
		      photos_end   = CASE WHEN $2 = 'completed' AND cardinality($4::text[]) > 0 THEN $4 ELSE photos_end END
		  WHERE id = $1 AND status = ANY($5)
		  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, to, at, pq.Array(photos), pq.Array(from))
	if err != nil {
		return nil, fmt.Errorf("set booking status: %w", err)
	}

	b, err := scanBooking(row)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	// Nothing matched: tell the caller whether the booking is missing
	// or just in a status the transition does not allow.
	var exists bool
	checkQuery := `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`
	checkRow, checkErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
	if checkErr != nil {
		return nil, fmt.Errorf("check booking: %w", checkErr)
	}
	if checkErr = checkRow.Scan(&exists); checkErr != nil {
		return nil, fmt.Errorf("check booking: %w", checkErr)
	}
	if !exists {
		return nil, domain.ErrBookingNotFound
	}
	return nil, domain.ErrWrongStatus
}

// SetFlag flips a notification-dedup flag to true. Flags are monotonic:
// there is no way to reset one through this repository.
func (r *BookingRepository) SetFlag(ctx context.Context, id string, flag domain.BookingFlag) error {
	var column string
	switch flag {
	case domain.FlagReminderSent:
		column = "reminder_sent"
	case domain.FlagConfirmationReminderSent:
		column = "confirmation_reminder_sent"
	case domain.FlagOverdueNotified:
		column = "overdue_notified"
	case domain.FlagIsOverdue:
		column = "is_overdue"
	default:
		return fmt.Errorf("unknown booking flag %q", flag)
	}

	query := `UPDATE bookings SET ` + column + ` = TRUE WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("set booking flag %s: %w", flag, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("flag rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		  FROM bookings
		  WHERE status = $1
		  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, status)
	if err != nil {
		return nil, fmt.Errorf("list bookings by status: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		  FROM bookings
		  WHERE user_id = $1
		  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// AvailableUnits returns quantity minus holding bookings. With a window
// only overlapping bookings count; with a nil window every non-terminal
// booking counts, which is an outstanding-commitments figure rather than
// a point-in-time snapshot. The two behaviours are intentionally distinct.
func (r *BookingRepository) AvailableUnits(ctx context.Context, equipmentID string, window *domain.Window) (int, error) {
	query := `SELECT e.quantity - COUNT(b.id)
		  FROM equipment e
		  LEFT JOIN bookings b
		      ON b.equipment_id = e.id
		     AND b.status = ANY($2)`
	args := []any{equipmentID, pq.Array(domain.HoldingStatuses)}
	if window != nil {
		query += `
		     AND b.start_time < $3 AND b.end_time > $4`
		args = append(args, window.End, window.Start)
	}
	query += `
		  WHERE e.id = $1
		  GROUP BY e.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return 0, fmt.Errorf("available units: %w", err)
	}

	var available int
	if err = row.Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrEquipmentNotFound
		}
		return 0, fmt.Errorf("scan available units: %w", err)
	}

	if available < 0 {
		available = 0
	}
	return available, nil
}

// ExclusiveOverlap returns the first pending/active/maintenance booking
// overlapping the window, taking a row lock on it so the caller's
// transaction window stays closed until commit.
func (r *BookingRepository) ExclusiveOverlap(ctx context.Context, equipmentID string, window domain.Window, excludeID string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + bookingColumns + `
		  FROM bookings
		  WHERE equipment_id = $1 AND status = ANY($2)
		    AND start_time < $3 AND end_time > $4
		    AND ($5 = '' OR id <> $5)
		  ORDER BY start_time
		  LIMIT 1
		  FOR UPDATE`

	row := tx.QueryRowContext(ctx, query, equipmentID, pq.Array(domain.HoldingStatuses), window.End, window.Start, excludeID)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tx.Commit()
		}
		return nil, fmt.Errorf("exclusive overlap: %w", err)
	}

	return b, tx.Commit()
}
