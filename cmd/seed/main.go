package main

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/bizcard-service/internal/auth"
	"github.com/spec-kit/bizcard-service/internal/config"
	"github.com/spec-kit/bizcard-service/internal/domain"
	"github.com/spec-kit/bizcard-service/internal/observability"
	"github.com/spec-kit/bizcard-service/internal/persistence"
	"github.com/spec-kit/bizcard-service/internal/repository"
)

// Seeds an admin, a business user, a regular user and two sample cards.
// Safe to run repeatedly; existing emails are skipped.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	users := repository.NewUserRepository(pg.PoolHandle())
	cards := repository.NewCardRepository(pg.PoolHandle())

	hash, err := auth.HashPassword("Test1234", cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash seed password", zap.Error(err))
	}

	seedUsers := []domain.User{
		{
			Name:         "Admin User",
			Email:        "admin@example.com",
			PasswordHash: hash,
			Phone:        "1234567890",
			Address:      "Street1 1, City1, Country1",
			IsAdmin:      true,
		},
		{
			Name:         "Business User",
			Email:        "business@example.com",
			PasswordHash: hash,
			Phone:        "1234567891",
			Address:      "Street2 2, City2, Country2",
			IsBusiness:   true,
		},
		{
			Name:         "Default User",
			Email:        "defaultuser@example.com",
			PasswordHash: hash,
			Phone:        "1234567898",
			Address:      "Street3 3, City3, Country3",
		},
	}

	var businessOwnerID string
	for i := range seedUsers {
		existing, err := users.GetByEmail(ctx, seedUsers[i].Email)
		if err == nil {
			logger.Info("seed user exists", zap.String("email", existing.Email))
			if existing.IsBusiness {
				businessOwnerID = existing.ID
			}
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			logger.Fatal("failed to look up seed user", zap.Error(err))
		}
		if err := users.Create(ctx, &seedUsers[i]); err != nil {
			logger.Fatal("failed to create seed user", zap.Error(err))
		}
		logger.Info("created seed user", zap.String("email", seedUsers[i].Email))
		if seedUsers[i].IsBusiness {
			businessOwnerID = seedUsers[i].ID
		}
	}

	if businessOwnerID == "" {
		logger.Warn("no business user available; skipping card seed")
		return
	}

	count, err := cards.Count(ctx)
	if err != nil {
		logger.Fatal("failed to count cards", zap.Error(err))
	}
	if count > 0 {
		logger.Info("cards already present; skipping card seed", zap.Int64("count", count))
		return
	}

	seedCards := []domain.Card{
		{
			Title:       "Business One",
			Subtitle:    "Quality services",
			Description: "First sample business card",
			Phone:       "0501234567",
			Address:     "Street1 1, City1, Country1",
			BizNumber:   domain.BizNumberBase + 1,
			Likes:       []string{},
			OwnerUserID: businessOwnerID,
		},
		{
			Title:       "Business Two",
			Subtitle:    "Trusted partner",
			Description: "Second sample business card",
			Phone:       "0507654321",
			Address:     "Street2 2, City2, Country2",
			BizNumber:   domain.BizNumberBase + 2,
			Likes:       []string{},
			OwnerUserID: businessOwnerID,
		},
	}

	for i := range seedCards {
		if err := cards.Create(ctx, &seedCards[i]); err != nil {
			logger.Fatal("failed to create seed card", zap.Error(err))
		}
		logger.Info("created seed card", zap.String("title", seedCards[i].Title), zap.Int64("biz_number", seedCards[i].BizNumber))
	}

	logger.Info("seed completed")
}
