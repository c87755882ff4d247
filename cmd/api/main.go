package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/prasanthprabakaran/css-art-museum/internal/app"
	"github.com/prasanthprabakaran/css-art-museum/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	appInstance, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialise app: %v", err)
	}
	defer appInstance.Close()

	log.Printf("Museum like API listening on %s", cfg.Address)
	if err := http.ListenAndServe(cfg.Address, appInstance.Router()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
