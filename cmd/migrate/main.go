// Command migrate applies the reservation storage schema and exits.
package main

import (
	"log"

	"github.com/louisbranch/booking.space/internal/platform/config"
	server "github.com/louisbranch/booking.space/internal/services/reservation/app"
	"github.com/louisbranch/booking.space/internal/services/reservation/storage/postgres"
)

func main() {
	log.SetPrefix("[MIGRATE] ")

	cfg, err := server.LoadStoreConfig()
	if err != nil {
		config.Exitf("load database config: %v", err)
	}

	store, err := postgres.Open(cfg)
	if err != nil {
		config.Exitf("apply migrations: %v", err)
	}
	if err := store.Close(); err != nil {
		config.Exitf("close database: %v", err)
	}

	log.Printf("migrations applied to %s:%d/%s", cfg.Host, cfg.Port, cfg.DBName)
}
