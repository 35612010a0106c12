package main

import (
	"log"

	"craftvale.gg/communityapi/internal/bootstrap"
	"craftvale.gg/communityapi/internal/config"
	"craftvale.gg/communityapi/internal/entity"
	"craftvale.gg/communityapi/internal/server"
	"craftvale.gg/communityapi/pkg/database"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if err := bootstrap.Seed(db); err != nil {
		log.Fatalf("failed to seed defaults: %v", err)
	}
	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedSampleData(db); err != nil {
			log.Fatalf("failed to seed sample data: %v", err)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Println("REDIS_URL not set, running without redis")
	}

	srv := server.NewServer(cfg, db, redisClient)

	log.Printf("🚀 Server listening on :%s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.AchievementDefinition{},
		&entity.UserAchievement{},
		&entity.PlayerStats{},
		&entity.Profile{},
		&entity.Notification{},
		&entity.Product{},
		&entity.PaymentGateway{},
		&entity.SiteSetting{},
		&entity.ContentSection{},
	)
}
