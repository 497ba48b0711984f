package repository

import (
	"context"
	"time"

	"buyerleads/internal/domain"

	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// accountModel maps to the hosted store's "buyers" table. Column names
// are kept as the store defined them (all lowercase, no underscores).
type accountModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         *string   `gorm:"column:name"`
	PasswordHash *string   `gorm:"column:password"`
	OwnerID      string    `gorm:"column:ownerid"`
	Timeline     *string   `gorm:"column:timeline"`
	UpdatedAt    time.Time `gorm:"column:updatedat"`
}

func (accountModel) TableName() string { return "buyers" }

func toDomainAccount(m accountModel) *domain.Account {
	var name, hash, timeline string
	if m.Name != nil {
		name = *m.Name
	}
	if m.PasswordHash != nil {
		hash = *m.PasswordHash
	}
	if m.Timeline != nil {
		timeline = *m.Timeline
	}

	return &domain.Account{
		ID:           m.ID,
		Name:         name,
		PasswordHash: hash,
		OwnerID:      m.OwnerID,
		Timeline:     timeline,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toAccountModel(a *domain.Account) accountModel {
	var name, hash, timeline *string
	if a.Name != "" {
		v := a.Name
		name = &v
	}
	if a.PasswordHash != "" {
		v := a.PasswordHash
		hash = &v
	}
	if a.Timeline != "" {
		v := a.Timeline
		timeline = &v
	}

	return accountModel{
		ID:           a.ID,
		Name:         name,
		PasswordHash: hash,
		OwnerID:      a.OwnerID,
		Timeline:     timeline,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	m := toAccountModel(a)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainAccount(m)
	return nil
}

// GetByName returns the most recently updated account under a name.
// Names are not unique in the store; the last registration wins.
func (r *AccountRepository) GetByName(ctx context.Context, name string) (*domain.Account, error) {
	var m accountModel
	tx := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("updatedat DESC").
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAccount(m), nil
}

func (r *AccountRepository) GetByOwnerID(ctx context.Context, ownerExternalID string) (*domain.Account, error) {
	var m accountModel
	tx := r.db.WithContext(ctx).
		Where("ownerid = ?", ownerExternalID).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAccount(m), nil
}
