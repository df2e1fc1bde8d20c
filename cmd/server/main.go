package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"nexgen/internal/artifact"
	"nexgen/internal/config"
	"nexgen/internal/handler"
	"nexgen/internal/pincode"
	"nexgen/internal/port"
	"nexgen/internal/repository/postgres"
	"nexgen/internal/router"
	"nexgen/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	locations, err := artifact.ReadMap(cfg.Paths.MapPath())
	if err != nil {
		return fmt.Errorf("failed to load pincode map: %w", err)
	}
	directory := pincode.NewDirectory(locations)
	log.Printf("Pincode map loaded: %d pincodes", directory.Len())

	// The database is a fallback for pincodes missing from the map artifact.
	var db *sqlx.DB
	var repo port.PincodeRepository
	if db, err = postgres.NewDB(&cfg.DB); err != nil {
		log.Printf("WARN: serving from map artifact only: %v", err)
	} else {
		defer db.Close()
		repo = postgres.NewPincodeRepo(db)
	}

	pincodeSvc := service.NewPincodeService(directory, repo)

	pincodeH := handler.NewPincodeHandler(pincodeSvc)
	healthH := handler.NewHealthHandler(db, directory.Len)

	r := router.Setup(cfg.CORS.AllowedOrigins, pincodeH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
