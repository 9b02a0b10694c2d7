package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/NazmulIslam95/matchMingle-server/docs" // swagger docs

	"github.com/NazmulIslam95/matchMingle-server/internal/cache"
	"github.com/NazmulIslam95/matchMingle-server/internal/config"
	"github.com/NazmulIslam95/matchMingle-server/internal/db"
	"github.com/NazmulIslam95/matchMingle-server/internal/handler"
	"github.com/NazmulIslam95/matchMingle-server/internal/repository"
	"github.com/NazmulIslam95/matchMingle-server/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title MatchMingle API
// @version 1.0
// @description Matrimonial biodata matching backend (Mongo, optional Redis)
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("[config] ACCESS_TOKEN_SECRET is required")
	}

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("[mongo] connect failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("[mongo] index setup failed: %v", err)
	}
	cancel()

	store, err := cache.New(cfg.RedisAddr, cfg.RedisPass)
	if err != nil {
		log.Fatalf("[redis] connect failed: %v", err)
	}

	// repos
	biodataRepo := repository.NewBiodataRepository(database)
	userRepo := repository.NewUserRepository(database)
	favoriteRepo := repository.NewFavoriteRepository(database)

	// services
	tokenSvc := service.NewTokenService(cfg.JWTSecret)
	biodataSvc := service.NewBiodataService(biodataRepo, store)
	userSvc := service.NewUserService(userRepo)
	favoriteSvc := service.NewFavoriteService(favoriteRepo)
	statsSvc := service.NewStatsService(userRepo, biodataRepo, favoriteRepo)

	// handlers
	authH := handler.NewAuthHandler(tokenSvc)
	biodataH := handler.NewBiodataHandler(biodataSvc)
	userH := handler.NewUserHandler(userSvc)
	favoriteH := handler.NewFavoriteHandler(favoriteSvc)
	adminH := handler.NewAdminHandler(statsSvc)

	authMw := handler.JWTAuth(tokenSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/", handler.Health)
	r.Post("/jwt", authH.IssueToken)

	// biodatas: listing and upsert are public, lookup by owner email is not
	r.Get("/biodatas", biodataH.List)
	r.Get("/biodatas/{id}", biodataH.GetByID)
	r.Post("/biodatas", biodataH.Upsert)
	r.With(authMw).Get("/biodataByEmail/{email}", biodataH.GetByEmail)

	// users: the {key} segment is an email on GET and a document id on
	// PATCH; chi requires one param name per segment across methods
	r.Get("/users", userH.List)
	r.Post("/users", userH.Register)
	r.With(authMw).Get("/users/admin/{key}", userH.GetAdminFlag)
	r.With(authMw).Get("/users/premium/{key}", userH.GetPremiumFlag)
	r.With(authMw).Patch("/users/pending/{email}", userH.MarkPending)
	r.Patch("/users/premium/{key}", userH.MarkPremium)
	r.Patch("/users/admin/{key}", userH.PromoteToAdmin)

	// favorites
	r.Get("/favoriteBiodatas", favoriteH.List)
	r.Post("/favoriteBiodatas", favoriteH.Add)
	r.Delete("/favoriteBiodatas/{id}", favoriteH.Remove)

	// admin dashboard
	r.With(authMw, handler.AdminOnly(userRepo)).Get("/admin/stats", adminH.Stats)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("MatchMingle Is Running On port %s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
