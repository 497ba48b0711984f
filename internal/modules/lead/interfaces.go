package lead

import (
	"context"

	"buyerleads/internal/domain"
)

// LeadRepositoryInterface — only the store operations the lead service uses
type LeadRepositoryInterface interface {
	Create(ctx context.Context, l *domain.BuyerLead) error
	GetByID(ctx context.Context, id int64) (*domain.BuyerLead, error)
	ListAll(ctx context.Context, query string) ([]domain.BuyerLead, error)
	ListByOwner(ctx context.Context, ownerExternalID string) ([]domain.BuyerLead, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, ownerExternalID string) (map[domain.LeadStatus]int64, error)
}

// AccountRepositoryInterface — lazy owner resolution at create time
type AccountRepositoryInterface interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByOwnerID(ctx context.Context, ownerExternalID string) (*domain.Account, error)
}

// Notifier pushes save/delete outcomes to the owner's open sessions.
type Notifier interface {
	LeadCreated(ownerExternalID string, l *domain.BuyerLead)
	LeadUpdated(ownerExternalID string, l *domain.BuyerLead)
	LeadDeleted(ownerExternalID string, id int64)
}
