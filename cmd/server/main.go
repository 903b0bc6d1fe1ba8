package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/vizierworks/game-vizier/internal/config"
	"github.com/vizierworks/game-vizier/internal/controllers"
	"github.com/vizierworks/game-vizier/internal/services"
	"github.com/vizierworks/game-vizier/internal/views"
	"github.com/vizierworks/game-vizier/templates"

	_ "go.uber.org/automaxprocs"
)

func main() {
	cfg := config.MustLoad()
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config.Config) error {
	log.Println("Starting Game Dev Vizier API...")
	if cfg.OpenAI.APIKey == "" {
		log.Println("OpenAI API key not set; analysis will run in degraded mode")
	} else {
		log.Println("OpenAI client configured successfully")
	}

	// Setup Services ---------------
	vizier := services.NewVizier(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL, cfg.OpenAI.Timeout)
	formatter := services.NewReportFormatter()

	// Parse the embedded test page
	testPage, err := views.ParseFS(templates.FS, "test.gohtml")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	// Setup Controllers ---------------
	systemCtrl := controllers.NewSystemController(vizier, cfg.OpenAI.KeySet)
	analyzeCtrl := controllers.NewAnalyzeController(vizier, formatter)
	staticCtrl := controllers.NewStaticController(testPage)

	r := controllers.NewRouter(systemCtrl, analyzeCtrl, staticCtrl)

	if cfg.ProductionMode {
		log.Printf("Production mode detected, running on port %s", cfg.Server.Port)
	} else {
		log.Printf("Development mode, running on port %s", cfg.Server.Port)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return srv.ListenAndServe()
}
