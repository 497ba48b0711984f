package lead

import (
	"context"
	"errors"
	"time"

	"buyerleads/internal/domain"

	"gorm.io/gorm"
)

// Service contains all business logic for buyer leads
type Service struct {
	leads    LeadRepositoryInterface
	accounts AccountRepositoryInterface
	notifier Notifier
}

func NewService(leads LeadRepositoryInterface, accounts AccountRepositoryInterface, notifier Notifier) *Service {
	return &Service{
		leads:    leads,
		accounts: accounts,
		notifier: notifier,
	}
}

// Create validates nothing itself (the handler runs the schema check)
// and persists a typed draft tagged with the resolved owner identity.
// The account row is resolved lazily: the first lead an owner submits
// creates the linked record.
func (s *Service) Create(ctx context.Context, ownerExternalID string, req CreateLeadRequest) (*domain.BuyerLead, error) {
	if ownerExternalID == "" {
		return nil, ErrOwnerRequired
	}

	account, err := s.accounts.GetByOwnerID(ctx, ownerExternalID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		account = &domain.Account{OwnerID: ownerExternalID, UpdatedAt: time.Now()}
		if err := s.accounts.Create(ctx, account); err != nil {
			return nil, err
		}
	}

	status := domain.LeadStatus(req.Status)
	if status == "" {
		status = domain.StatusNew
	}

	bhk := domain.BHK(req.BHK)
	if !domain.PropertyType(req.PropertyType).HasBHK() {
		bhk = ""
	}

	l := &domain.BuyerLead{
		OwnerID:         account.ID,
		OwnerExternalID: ownerExternalID,
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		City:            domain.City(req.City),
		PropertyType:    domain.PropertyType(req.PropertyType),
		BHK:             bhk,
		Purpose:         domain.Purpose(req.Purpose),
		Timeline:        domain.Timeline(req.Timeline),
		BudgetMin:       req.BudgetMin,
		BudgetMax:       req.BudgetMax,
		Status:          status,
		Source:          domain.LeadSource(req.Source),
		Tags:            req.Tags,
		Notes:           req.Notes,
		CreatedAt:       time.Now(),
	}

	if err := s.leads.Create(ctx, l); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.LeadCreated(ownerExternalID, l)
	}
	return l, nil
}

// ListAll returns every lead, newest first, optionally narrowed by a
// free-text query.
func (s *Service) ListAll(ctx context.Context, query string) ([]domain.BuyerLead, error) {
	return s.leads.ListAll(ctx, query)
}

// ListMine returns the session holder's leads, newest first.
func (s *Service) ListMine(ctx context.Context, ownerExternalID string) ([]domain.BuyerLead, error) {
	if ownerExternalID == "" {
		return nil, ErrOwnerRequired
	}
	return s.leads.ListByOwner(ctx, ownerExternalID)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.BuyerLead, error) {
	l, err := s.leads.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return l, nil
}

// Update applies a partial field patch. A status change must be legal
// under the lifecycle transition rules; terminal leads stay terminal.
// Untouched fields are left exactly as stored.
func (s *Service) Update(ctx context.Context, id int64, req UpdateLeadRequest) (*domain.BuyerLead, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && !current.Status.CanTransitionTo(domain.LeadStatus(*req.Status)) {
		return nil, ErrInvalidTransition
	}

	patch := map[string]any{}
	apply := func(column string, v *string) {
		if v != nil {
			patch[column] = *v
		}
	}
	apply("full_name", req.FullName)
	apply("email", req.Email)
	apply("phone", req.Phone)
	apply("city", req.City)
	apply("property_type", req.PropertyType)
	apply("bhk", req.BHK)
	apply("purpose", req.Purpose)
	apply("timeline", req.Timeline)
	apply("source", req.Source)
	apply("notes", req.Notes)
	apply("status", req.Status)
	if req.BudgetMin != nil {
		patch["budget_min"] = *req.BudgetMin
	}
	if req.BudgetMax != nil {
		patch["budget_max"] = *req.BudgetMax
	}
	if req.Tags != nil {
		patch["tags"] = []string(*req.Tags)
	}

	// bhk stops carrying meaning when the patched property type has none
	propertyType := current.PropertyType
	if req.PropertyType != nil {
		propertyType = domain.PropertyType(*req.PropertyType)
	}
	if !propertyType.HasBHK() {
		delete(patch, "bhk")
	}

	if err := s.leads.Update(ctx, id, patch); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}

	updated := applyPatch(*current, patch)
	if s.notifier != nil {
		s.notifier.LeadUpdated(updated.OwnerExternalID, &updated)
	}
	return &updated, nil
}

// Delete removes one record for good; there is no soft-delete. A second
// delete of the same id fails with ErrLeadNotFound.
func (s *Service) Delete(ctx context.Context, id int64) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.leads.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLeadNotFound
		}
		return err
	}

	if s.notifier != nil {
		s.notifier.LeadDeleted(current.OwnerExternalID, id)
	}
	return nil
}

// Stats aggregates lead counts per lifecycle stage. An empty
// ownerExternalID counts across all owners.
func (s *Service) Stats(ctx context.Context, ownerExternalID string) (*StatsResponse, error) {
	counts, err := s.leads.CountByStatus(ctx, ownerExternalID)
	if err != nil {
		return nil, err
	}

	stats := &StatsResponse{ByStatus: make(map[string]int64, len(counts))}
	for status, n := range counts {
		stats.ByStatus[string(status)] = n
		stats.Total += n
	}
	return stats, nil
}

// applyPatch mirrors the store's column patch onto the already-loaded
// copy so callers get the confirmed post-update record without a
// re-fetch.
func applyPatch(l domain.BuyerLead, patch map[string]any) domain.BuyerLead {
	for column, v := range patch {
		switch column {
		case "full_name":
			l.FullName = v.(string)
		case "email":
			l.Email = v.(string)
		case "phone":
			l.Phone = v.(string)
		case "city":
			l.City = domain.City(v.(string))
		case "property_type":
			l.PropertyType = domain.PropertyType(v.(string))
		case "bhk":
			l.BHK = domain.BHK(v.(string))
		case "purpose":
			l.Purpose = domain.Purpose(v.(string))
		case "timeline":
			l.Timeline = domain.Timeline(v.(string))
		case "source":
			l.Source = domain.LeadSource(v.(string))
		case "notes":
			l.Notes = v.(string)
		case "status":
			l.Status = domain.LeadStatus(v.(string))
		case "budget_min":
			min := v.(float64)
			l.BudgetMin = &min
		case "budget_max":
			max := v.(float64)
			l.BudgetMax = &max
		case "tags":
			l.Tags = v.([]string)
		}
	}

	if !l.PropertyType.HasBHK() {
		l.BHK = ""
	}
	return l
}
