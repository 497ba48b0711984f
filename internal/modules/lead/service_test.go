package lead

import (
	"context"
	"testing"

	"buyerleads/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, l *domain.BuyerLead) error {
	args := m.Called(ctx, l)
	if l != nil {
		l.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockLeadRepository) GetByID(ctx context.Context, id int64) (*domain.BuyerLead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BuyerLead), args.Error(1)
}

func (m *MockLeadRepository) ListAll(ctx context.Context, query string) ([]domain.BuyerLead, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BuyerLead), args.Error(1)
}

func (m *MockLeadRepository) ListByOwner(ctx context.Context, ownerExternalID string) ([]domain.BuyerLead, error) {
	args := m.Called(ctx, ownerExternalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BuyerLead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeadRepository) CountByStatus(ctx context.Context, ownerExternalID string) (map[domain.LeadStatus]int64, error) {
	args := m.Called(ctx, ownerExternalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.LeadStatus]int64), args.Error(1)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, a *domain.Account) error {
	args := m.Called(ctx, a)
	if a != nil {
		a.ID = 7
	}
	return args.Error(0)
}

func (m *MockAccountRepository) GetByOwnerID(ctx context.Context, ownerExternalID string) (*domain.Account, error) {
	args := m.Called(ctx, ownerExternalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) LeadCreated(ownerExternalID string, l *domain.BuyerLead) {
	m.Called(ownerExternalID, l)
}

func (m *MockNotifier) LeadUpdated(ownerExternalID string, l *domain.BuyerLead) {
	m.Called(ownerExternalID, l)
}

func (m *MockNotifier) LeadDeleted(ownerExternalID string, id int64) {
	m.Called(ownerExternalID, id)
}

const ownerID = "4f2c1b7e-aaaa-bbbb-cccc-000000000001"

func TestService_Create_Success(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	accountRepo := new(MockAccountRepository)
	notifier := new(MockNotifier)

	accountRepo.On("GetByOwnerID", mock.Anything, ownerID).
		Return(&domain.Account{ID: 7, OwnerID: ownerID}, nil)
	leadRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifier.On("LeadCreated", ownerID, mock.Anything).Return()

	service := NewService(leadRepo, accountRepo, notifier)

	req := CreateLeadRequest{
		FullName:     "Asha Kapoor",
		Phone:        "9876543210",
		City:         "Mohali",
		PropertyType: "Apartment",
		BHK:          "2",
		Purpose:      "Buy",
		Timeline:     "0-3m",
		Source:       "Website",
	}

	l, err := service.Create(context.Background(), ownerID, req)

	assert.NoError(t, err)
	assert.Equal(t, int64(999), l.ID)
	assert.Equal(t, int64(7), l.OwnerID)
	assert.Equal(t, ownerID, l.OwnerExternalID)
	assert.Equal(t, domain.StatusNew, l.Status, "status defaults to New when omitted")
	assert.Equal(t, domain.BHK2, l.BHK)
	assert.False(t, l.CreatedAt.IsZero())
	leadRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestService_Create_LazilyCreatesAccount(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	accountRepo := new(MockAccountRepository)

	accountRepo.On("GetByOwnerID", mock.Anything, ownerID).
		Return(nil, gorm.ErrRecordNotFound)
	accountRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	leadRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(leadRepo, accountRepo, nil)

	req := CreateLeadRequest{
		FullName:     "Vikram Singh",
		Phone:        "9812345678",
		City:         "Chandigarh",
		PropertyType: "Plot",
		BHK:          "3",
		Purpose:      "Buy",
		Timeline:     ">6m",
		Source:       "Referral",
	}

	l, err := service.Create(context.Background(), ownerID, req)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), l.OwnerID, "lead tagged with the lazily created account")
	assert.Empty(t, l.BHK, "bhk carries no meaning for a Plot")
	accountRepo.AssertExpectations(t)
}

func TestService_Create_NoIdentityNoStoreCall(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	accountRepo := new(MockAccountRepository)

	service := NewService(leadRepo, accountRepo, nil)

	_, err := service.Create(context.Background(), "", CreateLeadRequest{})

	assert.ErrorIs(t, err, ErrOwnerRequired)
	accountRepo.AssertNotCalled(t, "GetByOwnerID", mock.Anything, mock.Anything)
	leadRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_ListMine_NoIdentityNoStoreCall(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	service := NewService(leadRepo, new(MockAccountRepository), nil)

	_, err := service.ListMine(context.Background(), "")

	assert.ErrorIs(t, err, ErrOwnerRequired)
	leadRepo.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything)
}

func TestService_Update_StatusOnly(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	notifier := new(MockNotifier)

	stored := &domain.BuyerLead{
		ID:              42,
		OwnerExternalID: ownerID,
		FullName:        "Asha Kapoor",
		Phone:           "9876543210",
		City:            domain.CityMohali,
		PropertyType:    domain.PropertyApartment,
		BHK:             domain.BHK2,
		Purpose:         domain.PurposeBuy,
		Timeline:        domain.TimelineZeroToThree,
		Source:          domain.SourceWebsite,
		Status:          domain.StatusNew,
	}

	leadRepo.On("GetByID", mock.Anything, int64(42)).Return(stored, nil)
	leadRepo.On("Update", mock.Anything, int64(42), map[string]any{"status": "Converted"}).Return(nil)
	notifier.On("LeadUpdated", ownerID, mock.Anything).Return()

	service := NewService(leadRepo, new(MockAccountRepository), notifier)

	status := "Converted"
	updated, err := service.Update(context.Background(), 42, UpdateLeadRequest{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusConverted, updated.Status)
	// every other field is untouched
	assert.Equal(t, "Asha Kapoor", updated.FullName)
	assert.Equal(t, domain.CityMohali, updated.City)
	assert.Equal(t, domain.BHK2, updated.BHK)
	leadRepo.AssertExpectations(t)
}

func TestService_Update_TerminalStatusImmutable(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("GetByID", mock.Anything, int64(42)).Return(&domain.BuyerLead{
		ID:     42,
		Status: domain.StatusConverted,
	}, nil)

	service := NewService(leadRepo, new(MockAccountRepository), nil)

	status := "New"
	_, err := service.Update(context.Background(), 42, UpdateLeadRequest{Status: &status})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	leadRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_NotFound(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("GetByID", mock.Anything, int64(1)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(leadRepo, new(MockAccountRepository), nil)

	name := "Someone Else"
	_, err := service.Update(context.Background(), 1, UpdateLeadRequest{FullName: &name})

	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestService_Update_BHKDroppedWhenTypeLosesIt(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	stored := &domain.BuyerLead{
		ID:           42,
		PropertyType: domain.PropertyApartment,
		BHK:          domain.BHK2,
		Status:       domain.StatusNew,
	}
	leadRepo.On("GetByID", mock.Anything, int64(42)).Return(stored, nil)
	leadRepo.On("Update", mock.Anything, int64(42), map[string]any{"property_type": "Plot"}).Return(nil)

	service := NewService(leadRepo, new(MockAccountRepository), nil)

	propertyType := "Plot"
	bhk := "3"
	updated, err := service.Update(context.Background(), 42, UpdateLeadRequest{
		PropertyType: &propertyType,
		BHK:          &bhk,
	})

	assert.NoError(t, err)
	assert.Empty(t, updated.BHK)
	leadRepo.AssertExpectations(t)
}

func TestService_Delete_Success(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	notifier := new(MockNotifier)

	leadRepo.On("GetByID", mock.Anything, int64(42)).Return(&domain.BuyerLead{
		ID:              42,
		OwnerExternalID: ownerID,
	}, nil)
	leadRepo.On("Delete", mock.Anything, int64(42)).Return(nil)
	notifier.On("LeadDeleted", ownerID, int64(42)).Return()

	service := NewService(leadRepo, new(MockAccountRepository), notifier)

	assert.NoError(t, service.Delete(context.Background(), 42))
	notifier.AssertExpectations(t)
}

func TestService_Delete_SecondDeleteFails(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(leadRepo, new(MockAccountRepository), nil)

	err := service.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, ErrLeadNotFound)
	leadRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Stats(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("CountByStatus", mock.Anything, "").Return(map[domain.LeadStatus]int64{
		domain.StatusNew:       3,
		domain.StatusConverted: 1,
	}, nil)

	service := NewService(leadRepo, new(MockAccountRepository), nil)

	stats, err := service.Stats(context.Background(), "")

	assert.NoError(t, err)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(3), stats.ByStatus["New"])
	assert.Equal(t, int64(1), stats.ByStatus["Converted"])
}
