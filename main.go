package main

import (
	"log"
	"net/http"
	"os"

	"github.com/adilet-b/folio/config"
	"github.com/adilet-b/folio/handlers"
	"github.com/adilet-b/folio/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	handler := handlers.New(db, cfg)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	sessions := middleware.LoadUser(db, []byte(cfg.JWTSecret))

	origins := []string{"http://localhost:" + cfg.Port}
	if cfg.CookieDomain != "" {
		origins = append(origins, "https://"+cfg.CookieDomain)
	}
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(sessions(mux))

	serverAddr := "0.0.0.0:" + cfg.Port
	log.Printf("listening on %s", serverAddr)
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
