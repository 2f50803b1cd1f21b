package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Boodsmen/booking-bot/internal/domain"
	"github.com/Boodsmen/booking-bot/internal/service/ports"
)

type EquipmentService struct {
	equipmentRepo ports.EquipmentRepo
}

func NewEquipmentService(equipmentRepo ports.EquipmentRepo) *EquipmentService {
	return &EquipmentService{equipmentRepo: equipmentRepo}
}

func (s *EquipmentService) Create(ctx context.Context, input domain.CreateEquipmentInput) (*domain.Equipment, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Category == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if input.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}

	equipment := &domain.Equipment{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Category:      input.Category,
		Quantity:      input.Quantity,
		IsAvailable:   true,
		RequiresPhoto: input.RequiresPhoto,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.equipmentRepo.Create(ctx, equipment); err != nil {
		return nil, fmt.Errorf("create equipment: %w", err)
	}

	return equipment, nil
}

func (s *EquipmentService) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	return s.equipmentRepo.GetByID(ctx, id)
}

func (s *EquipmentService) List(ctx context.Context, onlyAvailable bool, category string) ([]*domain.Equipment, error) {
	return s.equipmentRepo.List(ctx, onlyAvailable, category)
}

func (s *EquipmentService) SetAvailability(ctx context.Context, id string, available bool) (*domain.Equipment, error) {
	return s.equipmentRepo.SetAvailability(ctx, id, available)
}
