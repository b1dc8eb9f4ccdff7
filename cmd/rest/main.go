package main

import (
	"context"
	"log"

	"wp-troubleshooting-be/internal/bootstrap"
	"wp-troubleshooting-be/internal/config"
	"wp-troubleshooting-be/internal/server"
	"wp-troubleshooting-be/internal/tracer"
	"wp-troubleshooting-be/pkg/knowledge"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Load Knowledge Base (absence is tolerated, the service degrades)
	kb, err := knowledge.Load(cfg.Knowledge.DatasetPath)
	if err != nil {
		log.Printf("Warning: could not load knowledge base: %v (serving with empty knowledge base)", err)
	}
	log.Printf("Loaded WordPress knowledge base with %d articles, %d scenarios",
		len(kb.TroubleshootingArticles), len(kb.IntegrationScenarios))

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(kb, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Analytics Consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
