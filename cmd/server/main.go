package main

import (
	"sparkchats-gateway/internal/api"
	"sparkchats-gateway/internal/config"
	"sparkchats-gateway/internal/database"
	"sparkchats-gateway/internal/delivery"
	"sparkchats-gateway/internal/logging"
	"sparkchats-gateway/internal/mockapi"
	"sparkchats-gateway/internal/store"
	"sparkchats-gateway/internal/ws"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.New(nil, cfg.LogLevel)

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}

	st := store.New(db, log)
	if err := st.Seed(); err != nil {
		log.Fatal().Err(err).Msg("seed fixtures")
	}

	hub := ws.NewHub(log)
	go hub.Run()

	simulator := delivery.New(st, cfg.DeliveryDelays, hub, log)
	router, err := mockapi.New(st, simulator, hub, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build router")
	}

	server := api.NewServer(router, st, hub, log)
	engine := server.Engine()

	log.Info().Str("port", cfg.Port).Msg("mock gateway listening")
	if err := engine.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
