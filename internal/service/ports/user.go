package ports

import (
	"context"

	"github.com/Boodsmen/booking-bot/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	ListOperators(ctx context.Context) ([]*domain.User, error)
}
