package ports

import (
	"context"

	"github.com/Boodsmen/booking-bot/internal/domain"
)

type EquipmentRepo interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context, onlyAvailable bool, category string) ([]*domain.Equipment, error)
	SetAvailability(ctx context.Context, id string, available bool) (*domain.Equipment, error)
}
