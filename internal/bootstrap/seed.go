package bootstrap

import (
	"log"
	"time"

	"craftvale.gg/communityapi/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seed creates the default rows every deployment needs. Existing rows are
// never overwritten.
func Seed(db *gorm.DB) error {
	if err := seedSettings(db); err != nil {
		return err
	}
	if err := seedGateways(db); err != nil {
		return err
	}
	return seedContent(db)
}

func seedSettings(db *gorm.DB) error {
	defaults := []entity.SiteSetting{
		{Key: "server_address", Value: "play.craftvale.gg"},
		{Key: "discord_invite", Value: "https://discord.gg/craftvale"},
		{Key: "store_currency", Value: "USD"},
		{Key: "maintenance_banner", Value: ""},
	}

	for _, setting := range defaults {
		var count int64
		if err := db.Model(&entity.SiteSetting{}).
			Where("key = ?", setting.Key).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&setting).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func seedGateways(db *gorm.DB) error {
	defaults := []entity.PaymentGateway{
		{Name: "Stripe", Slug: "stripe"},
		{Name: "PayPal", Slug: "paypal"},
	}

	for _, gateway := range defaults {
		var count int64
		if err := db.Model(&entity.PaymentGateway{}).
			Where("slug = ?", gateway.Slug).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&gateway).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func seedContent(db *gorm.DB) error {
	defaults := []entity.ContentSection{
		{Slug: "hero", Title: "Welcome to Craftvale", Body: "A survival community since 2019.", SortOrder: 0},
		{Slug: "features", Title: "What makes us different", Body: "Custom achievements, seasonal events and a player-driven economy.", SortOrder: 1},
	}

	for _, section := range defaults {
		var count int64
		if err := db.Model(&entity.ContentSection{}).
			Where("slug = ?", section.Slug).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&section).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

// SeedSampleData fills the store with data for local development. The real
// catalog is owned by the game server and admin tooling.
func SeedSampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.AchievementDefinition{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Sample data already present, skipping seed")
		return nil
	}

	achievements := []entity.AchievementDefinition{
		{
			Name:         "First Steps",
			Description:  "Join the server for the first time.",
			Points:       10,
			Category:     "exploration",
			Requirements: entity.JSONDoc{"stat": "playtime_minutes", "target": float64(1)},
			IsActive:     true,
		},
		{
			Name:         "Lumberjack",
			Description:  "Break 1,000 blocks.",
			Points:       25,
			Category:     "gathering",
			Requirements: entity.JSONDoc{"stat": "blocks_broken", "target": float64(1000)},
			IsActive:     true,
		},
		{
			Name:         "Marathon",
			Description:  "Travel 42 kilometers.",
			Points:       50,
			Category:     "exploration",
			Requirements: entity.JSONDoc{"stat": "distance_traveled", "target": float64(42000)},
			IsActive:     true,
		},
	}
	if err := db.Create(&achievements).Error; err != nil {
		return err
	}

	products := []entity.Product{
		{
			Name:        "VIP Rank",
			Slug:        "vip-rank",
			Description: "Colored chat name, /fly in the hub and 2 extra homes.",
			Category:    "ranks",
			PriceCents:  999,
			Perks:       entity.JSONDoc{"commands": []any{"fly"}, "homes": float64(2)},
			IsActive:    true,
			SortOrder:   0,
		},
		{
			Name:        "Crate Key Bundle",
			Slug:        "crate-key-bundle",
			Description: "Five keys for the seasonal crate.",
			Category:    "crates",
			PriceCents:  499,
			Perks:       entity.JSONDoc{"keys": float64(5)},
			IsActive:    true,
			SortOrder:   1,
		},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	demoUser := uuid.New()
	now := time.Now()
	stats := entity.PlayerStats{
		UserID:          demoUser,
		PlaytimeMinutes: 340,
		BlocksBroken:    1520,
		FirstJoinAt:     &now,
		LastSeenAt:      &now,
	}
	if err := db.Create(&stats).Error; err != nil {
		return err
	}

	profile := entity.Profile{
		UserID:            demoUser,
		DisplayName:       "DemoSteve",
		MinecraftUsername: "DemoSteve",
	}
	if err := db.Create(&profile).Error; err != nil {
		return err
	}

	log.Println("✅ Sample data seeded")
	return nil
}
