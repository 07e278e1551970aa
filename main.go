package main

import (
	"log"

	"github.com/banachtech/nss-curve/api"
	"github.com/banachtech/nss-curve/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("cannot load config: ", err)
	}
	if cfg.APIKeyHash == "" {
		log.Println("NSS_API_KEY_HASH is not set, authentication is disabled")
	}

	server := api.NewServer(cfg, api.NSSFactory(cfg.MaxIterations))
	log.Printf("listening on %s", cfg.ServerAddress)
	if err := server.Start(cfg.ServerAddress); err != nil {
		log.Fatal("cannot start server: ", err)
	}
}
