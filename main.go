package main

import (
	"fmt"
	"log"

	"github.com/sashabaranov/go-openai"

	"go-sentinel/advisor"
	"go-sentinel/cache"
	"go-sentinel/chatter"
	"go-sentinel/config"
	"go-sentinel/cronjobs"
	"go-sentinel/routes"
	"go-sentinel/signal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if cfg.OpenAIAPIKey != "" {
		fmt.Println("OPENAI_API_KEY loaded")
	} else {
		log.Println("OPENAI_API_KEY not set; recommendations will use the static action items")
	}

	openaiClient := openai.NewClient(cfg.OpenAIAPIKey)
	adv := advisor.New(openaiClient, cfg.OpenAIModel, cfg.AdvisorTimeout)

	signals := cache.New(cfg.CacheTTL)

	var src signal.Source = signal.NewSynthesizer()
	var counter *chatter.Counter
	if cfg.LiveChatter {
		fmt.Println("Live chatter enabled, host:", cfg.ChatterHost)
		counter = chatter.NewCounter(cfg.ChatterHost)
		src = chatter.Enrich(src, counter)
	}
	src = cache.NewCachedSource(src, signals)

	// Initialize cron jobs
	cronjobs.InitCronJobs(src, signals)

	r := routes.SetupRouter(src, adv, counter)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
