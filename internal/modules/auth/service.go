package auth

import (
	"context"
	"errors"
	"time"

	"buyerleads/internal/domain"
	"buyerleads/internal/pkg/session"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(name, ownerID string) (string, error)
}

// Service contains all business logic for registration and login
type Service struct {
	accounts AccountRepositoryInterface
	jwt      jwtService
}

// Result is a completed auth flow: the account, the legacy cookie
// identity and a bearer token for API clients.
type Result struct {
	Account     *domain.Account
	Identity    session.Identity
	AccessToken string
}

func NewService(accounts AccountRepositoryInterface, jwt jwtService) *Service {
	return &Service{
		accounts: accounts,
		jwt:      jwt,
	}
}

// Register creates an account with a freshly generated owner external
// id. Passwords are bcrypt-hashed before they touch the store; the
// original design kept them in plaintext, which is not carried over.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Result, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Name:         req.Name,
		PasswordHash: string(hash),
		OwnerID:      uuid.NewString(),
		Timeline:     string(domain.TimelineExploring),
		UpdatedAt:    time.Now(),
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	return s.result(account)
}

// Login verifies credentials against the stored hash. Names are not
// unique in the store; the most recent registration under a name wins.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*Result, error) {
	account, err := s.accounts.GetByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.result(account)
}

func (s *Service) result(account *domain.Account) (*Result, error) {
	token, err := s.jwt.GenerateToken(account.Name, account.OwnerID)
	if err != nil {
		return nil, err
	}

	account.PasswordHash = ""
	return &Result{
		Account:     account,
		Identity:    session.Identity{Name: account.Name, OwnerExternalID: account.OwnerID},
		AccessToken: token,
	}, nil
}
