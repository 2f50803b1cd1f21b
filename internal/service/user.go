package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Boodsmen/booking-bot/internal/domain"
	"github.com/Boodsmen/booking-bot/internal/service/ports"
)

type UserService struct {
	userRepo ports.UserRepo
}

func NewUserService(userRepo ports.UserRepo) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", domain.ErrValidation)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		FullName:       input.FullName,
		Username:       input.Username,
		TelegramChatID: input.TelegramChatID,
		IsOperator:     input.IsOperator,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) ListOperators(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.ListOperators(ctx)
}
