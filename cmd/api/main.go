package main

import (
	"context"
	"log"
	"time"

	"github.com/RumTumTum/GraphRAG-Pattern/config"
	"github.com/RumTumTum/GraphRAG-Pattern/internal/bootstrap"
	"github.com/RumTumTum/GraphRAG-Pattern/internal/generation/ollama"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	client := ollama.NewClient(cfg.Ollama.BaseURL, cfg.Ollama.Timeout)

	// Report Ollama reachability at startup. The server starts either way;
	// requests will surface the upstream error until Ollama comes up.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if client.Healthy(ctx) {
		if models, err := client.ListModels(ctx); err == nil {
			log.Printf("Connected to Ollama at %s. Available models: %d", cfg.Ollama.BaseURL, len(models))
		}
	} else {
		log.Printf("Warning: Ollama service not accessible at %s", cfg.Ollama.BaseURL)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Ollama:             client,
		DefaultModel:       cfg.Ollama.DefaultModel,
		DefaultTemperature: cfg.Ollama.DefaultTemperature,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
