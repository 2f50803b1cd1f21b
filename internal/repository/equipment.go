package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Boodsmen/booking-bot/internal/domain"
)

type EquipmentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEquipmentRepo(db *dbpg.DB) *EquipmentRepository {
	return &EquipmentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	query := `INSERT INTO equipment (id, name, category, quantity, is_available, requires_photo, created_at)
		  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Category, e.Quantity, e.IsAvailable, e.RequiresPhoto, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert equipment: %w", err)
	}

	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	query := `SELECT id, name, category, quantity, is_available, requires_photo, created_at
		  FROM equipment
		  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get equipment: %w", err)
	}

	var e domain.Equipment
	if err = row.Scan(&e.ID, &e.Name, &e.Category, &e.Quantity, &e.IsAvailable, &e.RequiresPhoto, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("scan equipment: %w", err)
	}

	return &e, nil
}

func (r *EquipmentRepository) List(ctx context.Context, onlyAvailable bool, category string) ([]*domain.Equipment, error) {
	query := `SELECT id, name, category, quantity, is_available, requires_photo, created_at
		  FROM equipment
		  WHERE ($1 = FALSE OR is_available = TRUE)
		    AND ($2 = '' OR category = $2)
		  ORDER BY category, name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, onlyAvailable, category)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	var res []*domain.Equipment
	for rows.Next() {
		var e domain.Equipment
		if err = rows.Scan(&e.ID, &e.Name, &e.Category, &e.Quantity, &e.IsAvailable, &e.RequiresPhoto, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

func (r *EquipmentRepository) SetAvailability(ctx context.Context, id string, available bool) (*domain.Equipment, error) {
	query := `UPDATE equipment
		  SET is_available = $2
		  WHERE id = $1
		  RETURNING id, name, category, quantity, is_available, requires_photo, created_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, available)
	if err != nil {
		return nil, fmt.Errorf("set equipment availability: %w", err)
	}

	var e domain.Equipment
	if err = row.Scan(&e.ID, &e.Name, &e.Category, &e.Quantity, &e.IsAvailable, &e.RequiresPhoto, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("scan equipment: %w", err)
	}

	return &e, nil
}
