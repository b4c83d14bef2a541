// Snapshot seeds a fresh mock store and copies every table into a Postgres
// database, so the fixture dataset can be inspected with regular SQL
// tooling or used as a starting point for a persistent dev environment.
package main

import (
	"os"

	"sparkchats-gateway/internal/config"
	"sparkchats-gateway/internal/database"
	"sparkchats-gateway/internal/logging"
	"sparkchats-gateway/internal/models"
	"sparkchats-gateway/internal/store"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.New(nil, cfg.LogLevel)

	dsn := os.Getenv("SNAPSHOT_DSN")
	if dsn == "" {
		log.Fatal().Msg("SNAPSHOT_DSN is required")
	}

	// 1. Seed the in-memory source store.
	srcCfg := *cfg
	srcCfg.DBDriver = "sqlite"
	srcCfg.DBDSN = ""
	src, err := database.Open(&srcCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open source store")
	}
	if err := store.New(src, log).Seed(); err != nil {
		log.Fatal().Err(err).Msg("seed source store")
	}

	// 2. Connect to the Postgres destination.
	dst, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	if err := database.Migrate(dst); err != nil {
		log.Fatal().Err(err).Msg("migrate destination")
	}

	log.Info().Msg("copying mock dataset to postgres")

	copyTable := func(table string, rows any) {
		if err := src.Find(rows).Error; err != nil {
			log.Error().Err(err).Str("table", table).Msg("read source")
			return
		}
		err := dst.Transaction(func(tx *gorm.DB) error {
			return tx.Create(rows).Error
		})
		if err != nil {
			log.Error().Err(err).Str("table", table).Msg("write destination")
			return
		}
		log.Info().Str("table", table).Msg("copied")
	}

	var users []models.User
	copyTable("users", &users)
	var orgs []models.Org
	copyTable("orgs", &orgs)
	var contacts []models.Contact
	copyTable("contacts", &contacts)
	var templates []models.Template
	copyTable("templates", &templates)
	var campaigns []models.Campaign
	copyTable("campaigns", &campaigns)
	var conversations []models.Conversation
	copyTable("conversations", &conversations)
	var messages []models.Message
	copyTable("messages", &messages)
	var notifications []models.Notification
	copyTable("notifications", &notifications)

	log.Info().Msg("snapshot completed")
}
