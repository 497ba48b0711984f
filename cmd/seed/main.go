package main

import (
	"context"
	"log"
	"time"

	"buyerleads/internal/database"
	"buyerleads/internal/domain"
	"buyerleads/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("leads.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM buyers_data")
	db.Exec("DELETE FROM buyers")

	ctx := context.Background()
	accounts := repository.NewAccountRepository(db)
	leads := repository.NewLeadRepository(db)

	log.Println("Creating accounts...")
	asha := seedAccount(ctx, accounts, "Asha", "x123456")
	rohan := seedAccount(ctx, accounts, "Rohan", "secret99")

	log.Println("Creating leads...")
	budget := func(v float64) *float64 { return &v }

	seedLead(ctx, leads, asha, domain.BuyerLead{
		FullName:     "Asha Kapoor",
		Phone:        "9876543210",
		City:         domain.CityMohali,
		PropertyType: domain.PropertyApartment,
		BHK:          domain.BHK2,
		Purpose:      domain.PurposeBuy,
		Timeline:     domain.TimelineZeroToThree,
		Source:       domain.SourceWebsite,
		Status:       domain.StatusNew,
		BudgetMin:    budget(4000000),
		BudgetMax:    budget(6500000),
		Tags:         []string{"hot", "first-time-buyer"},
	})
	seedLead(ctx, leads, asha, domain.BuyerLead{
		FullName:     "Vikram Singh",
		Email:        "vikram.singh@example.com",
		Phone:        "9812345678",
		City:         domain.CityChandigarh,
		PropertyType: domain.PropertyPlot,
		Purpose:      domain.PurposeBuy,
		Timeline:     domain.TimelineOverSix,
		Source:       domain.SourceReferral,
		Status:       domain.StatusContacted,
		Notes:        "Looking for a corner plot, flexible on sector",
	})
	seedLead(ctx, leads, rohan, domain.BuyerLead{
		FullName:     "Meera Joshi",
		Phone:        "9900112233",
		City:         domain.CityZirakpur,
		PropertyType: domain.PropertyVilla,
		BHK:          domain.BHK4,
		Purpose:      domain.PurposeRent,
		Timeline:     domain.TimelineThreeToSix,
		Source:       domain.SourceWalkIn,
		Status:       domain.StatusQualified,
		Tags:         []string{"rental", "premium"},
	})

	log.Println("Seed complete")
}

func seedAccount(ctx context.Context, repo *repository.AccountRepository, name, password string) *domain.Account {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	a := &domain.Account{
		Name:         name,
		PasswordHash: string(hash),
		OwnerID:      uuid.NewString(),
		Timeline:     string(domain.TimelineExploring),
		UpdatedAt:    time.Now(),
	}
	if err := repo.Create(ctx, a); err != nil {
		log.Fatalf("seed account %s: %v", name, err)
	}
	return a
}

func seedLead(ctx context.Context, repo *repository.LeadRepository, owner *domain.Account, l domain.BuyerLead) {
	l.OwnerID = owner.ID
	l.OwnerExternalID = owner.OwnerID
	l.CreatedAt = time.Now()
	if err := repo.Create(ctx, &l); err != nil {
		log.Fatalf("seed lead %s: %v", l.FullName, err)
	}
}
