package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Boodsmen/booking-bot/internal/domain"
	"github.com/Boodsmen/booking-bot/internal/service/ports/mocks"
)

func TestEquipmentService_Create_Success(t *testing.T) {
	repo := mocks.NewMockEquipmentRepo(t)
	svc := NewEquipmentService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	equipment, err := svc.Create(context.Background(), domain.CreateEquipmentInput{
		Name:          "Sony A7",
		Category:      "camera",
		Quantity:      3,
		RequiresPhoto: true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, equipment.ID)
	assert.Equal(t, "Sony A7", equipment.Name)
	assert.Equal(t, 3, equipment.Quantity)
	assert.True(t, equipment.IsAvailable, "new equipment starts available")
	assert.True(t, equipment.RequiresPhoto)
}

func TestEquipmentService_Create_Validation(t *testing.T) {
	repo := mocks.NewMockEquipmentRepo(t)
	svc := NewEquipmentService(repo)

	tests := []struct {
		name  string
		input domain.CreateEquipmentInput
	}{
		{"empty name", domain.CreateEquipmentInput{Category: "camera", Quantity: 1}},
		{"empty category", domain.CreateEquipmentInput{Name: "X", Quantity: 1}},
		{"zero quantity", domain.CreateEquipmentInput{Name: "X", Category: "camera", Quantity: 0}},
		{"negative quantity", domain.CreateEquipmentInput{Name: "X", Category: "camera", Quantity: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEquipmentService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockEquipmentRepo(t)
	svc := NewEquipmentService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.Create(context.Background(), domain.CreateEquipmentInput{
		Name: "X", Category: "camera", Quantity: 1,
	})

	assert.Error(t, err)
}

func TestEquipmentService_SetAvailability(t *testing.T) {
	repo := mocks.NewMockEquipmentRepo(t)
	svc := NewEquipmentService(repo)

	updated := &domain.Equipment{ID: "eq1", IsAvailable: false}
	repo.EXPECT().SetAvailability(mock.Anything, "eq1", false).Return(updated, nil)

	equipment, err := svc.SetAvailability(context.Background(), "eq1", false)

	require.NoError(t, err)
	assert.False(t, equipment.IsAvailable)
}

func TestEquipmentService_List(t *testing.T) {
	repo := mocks.NewMockEquipmentRepo(t)
	svc := NewEquipmentService(repo)

	items := []*domain.Equipment{{ID: "eq1"}, {ID: "eq2"}}
	repo.EXPECT().List(mock.Anything, true, "camera").Return(items, nil)

	got, err := svc.List(context.Background(), true, "camera")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
