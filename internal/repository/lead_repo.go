package repository

import (
	"context"
	"strings"
	"time"

	"buyerleads/internal/domain"

	"gorm.io/gorm"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// leadModel maps to the hosted store's "buyers_data" table.
type leadModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	OwnerID         int64      `gorm:"column:owner_id"`
	OwnerExternalID string     `gorm:"column:owner_external_id;index"`
	FullName        string     `gorm:"column:full_name"`
	Email           *string    `gorm:"column:email"`
	Phone           string     `gorm:"column:phone"`
	City            string     `gorm:"column:city"`
	PropertyType    string     `gorm:"column:property_type"`
	BHK             *string    `gorm:"column:bhk"`
	Purpose         string     `gorm:"column:purpose"`
	Timeline        string     `gorm:"column:timeline"`
	BudgetMin       *float64   `gorm:"column:budget_min"`
	BudgetMax       *float64   `gorm:"column:budget_max"`
	Status          string     `gorm:"column:status"`
	Source          string     `gorm:"column:source"`
	Tags            []string   `gorm:"column:tags;serializer:json"`
	Notes           *string    `gorm:"column:notes"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
}

func (leadModel) TableName() string { return "buyers_data" }

func toDomainLead(m leadModel) *domain.BuyerLead {
	var email, bhk, notes string
	if m.Email != nil {
		email = *m.Email
	}
	if m.BHK != nil {
		bhk = *m.BHK
	}
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.BuyerLead{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		OwnerExternalID: m.OwnerExternalID,
		FullName:        m.FullName,
		Email:           email,
		Phone:           m.Phone,
		City:            domain.City(m.City),
		PropertyType:    domain.PropertyType(m.PropertyType),
		BHK:             domain.BHK(bhk),
		Purpose:         domain.Purpose(m.Purpose),
		Timeline:        domain.Timeline(m.Timeline),
		BudgetMin:       m.BudgetMin,
		BudgetMax:       m.BudgetMax,
		Status:          domain.LeadStatus(m.Status),
		Source:          domain.LeadSource(m.Source),
		Tags:            m.Tags,
		Notes:           notes,
		CreatedAt:       m.CreatedAt,
	}
}

func toLeadModel(l *domain.BuyerLead) leadModel {
	var email, bhk, notes *string
	if l.Email != "" {
		v := l.Email
		email = &v
	}
	if l.BHK != "" {
		v := string(l.BHK)
		bhk = &v
	}
	if l.Notes != "" {
		v := l.Notes
		notes = &v
	}

	return leadModel{
		ID:              l.ID,
		OwnerID:         l.OwnerID,
		OwnerExternalID: l.OwnerExternalID,
		FullName:        l.FullName,
		Email:           email,
		Phone:           l.Phone,
		City:            string(l.City),
		PropertyType:    string(l.PropertyType),
		BHK:             bhk,
		Purpose:         string(l.Purpose),
		Timeline:        string(l.Timeline),
		BudgetMin:       l.BudgetMin,
		BudgetMax:       l.BudgetMax,
		Status:          string(l.Status),
		Source:          string(l.Source),
		Tags:            l.Tags,
		Notes:           notes,
		CreatedAt:       l.CreatedAt,
	}
}

func (r *LeadRepository) Create(ctx context.Context, l *domain.BuyerLead) error {
	m := toLeadModel(l)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*l = *toDomainLead(m)
	return nil
}

func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*domain.BuyerLead, error) {
	var m leadModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainLead(m), nil
}

// ListAll returns every lead, newest first. An optional free-text query
// narrows on name, city, property type or purpose.
func (r *LeadRepository) ListAll(ctx context.Context, query string) ([]domain.BuyerLead, error) {
	q := r.db.WithContext(ctx).Model(&leadModel{})

	if query = strings.TrimSpace(query); query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"LOWER(full_name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(property_type) LIKE ? OR LOWER(purpose) LIKE ?",
			like, like, like, like,
		)
	}

	var rows []leadModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainLeads(rows), nil
}

// ListByOwner returns the session holder's leads, newest first.
func (r *LeadRepository) ListByOwner(ctx context.Context, ownerExternalID string) ([]domain.BuyerLead, error) {
	var rows []leadModel
	tx := r.db.WithContext(ctx).
		Where("owner_external_id = ?", ownerExternalID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainLeads(rows), nil
}

// Update applies a partial column patch to one record.
func (r *LeadRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	tx := r.db.WithContext(ctx).Model(&leadModel{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes one record. Deleting an id that no longer exists is an
// error, never a silent success.
func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&leadModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus aggregates lead counts per lifecycle stage. An empty
// ownerExternalID counts across all owners.
func (r *LeadRepository) CountByStatus(ctx context.Context, ownerExternalID string) (map[domain.LeadStatus]int64, error) {
	type row struct {
		Status string
		Count  int64
	}

	q := r.db.WithContext(ctx).Model(&leadModel{}).
		Select("status, COUNT(*) as count").
		Group("status")
	if ownerExternalID != "" {
		q = q.Where("owner_external_id = ?", ownerExternalID)
	}

	var rows []row
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[domain.LeadStatus]int64, len(rows))
	for _, r := range rows {
		counts[domain.LeadStatus(r.Status)] = r.Count
	}
	return counts, nil
}

func toDomainLeads(rows []leadModel) []domain.BuyerLead {
	leads := make([]domain.BuyerLead, 0, len(rows))
	for _, m := range rows {
		leads = append(leads, *toDomainLead(m))
	}
	return leads
}
