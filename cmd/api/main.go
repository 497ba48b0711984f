package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"buyerleads/internal/config"
	"buyerleads/internal/database"
	"buyerleads/internal/middleware"
	"buyerleads/internal/modules/auth"
	"buyerleads/internal/modules/lead"
	"buyerleads/internal/notify"
	jwtsvc "buyerleads/internal/pkg/jwt"
	"buyerleads/internal/pkg/session"
	"buyerleads/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	accountRepo := repository.NewAccountRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := notify.NewHub()
	defer hub.Close()

	cookies := session.CookieOptions{
		Secure:   cfg.CookieSecure,
		Domain:   cfg.CookieDomain,
		SameSite: cfg.CookieSameSite,
	}

	authService := auth.NewService(accountRepo, j)
	authHandler := auth.NewHandler(authService, cookies)

	leadService := lead.NewService(leadRepo, accountRepo, notify.NewLeadNotifier(hub))
	leadHandler := lead.NewHandler(leadService)

	notifyHandler := notify.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		// pre-v1 surface kept for the existing frontend
		legacy := api.Group("/")
		legacy.Use(middleware.Session(j))
		leadHandler.RegisterLegacyRoutes(legacy)

		v1 := api.Group("/v1")
		{
			// public
			authHandler.RegisterRoutes(v1)

			// protected
			protected := v1.Group("/")
			protected.Use(middleware.Session(j))
			{
				leadHandler.RegisterRoutes(protected)
				notifyHandler.RegisterRoutes(protected)
			}
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
