package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"shortlaunch/api"
	"shortlaunch/config"
	"shortlaunch/upload"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	tokens := upload.NewRefreshTokenProvider(cfg.ClientID, cfg.ClientSecret, cfg.RefreshToken)
	submitter := upload.NewYouTubeSubmitter(tokens)

	r := api.NewRouter(submitter, cfg.DefaultPrivacy)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
		// Uploads near the 1 GiB limit need a generous window for the
		// provider round trip.
		ReadTimeout:  3 * time.Minute,
		WriteTimeout: 3 * time.Minute,
	}

	log.Printf("Starting upload API on %s", srv.Addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  POST /api/upload")
	log.Println("  GET  /api/upload/:id/status")

	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
