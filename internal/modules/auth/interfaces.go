package auth

import (
	"context"

	"buyerleads/internal/domain"
)

// AccountRepositoryInterface — only the methods the auth service uses
type AccountRepositoryInterface interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByName(ctx context.Context, name string) (*domain.Account, error)
}
