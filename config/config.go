package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is everything the server reads from the environment. The OpenAI
// key is the only real credential; leaving it unset just means every
// recommendation comes from the static fallback text.
type Config struct {
	Port           string        `envconfig:"PORT" default:"8080"`
	OpenAIAPIKey   string        `envconfig:"OPENAI_API_KEY"`
	OpenAIModel    string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	AdvisorTimeout time.Duration `envconfig:"ADVISOR_TIMEOUT" default:"10s"`
	CacheTTL       time.Duration `envconfig:"CACHE_TTL" default:"10m"`
	LiveChatter    bool          `envconfig:"LIVE_CHATTER" default:"false"`
	ChatterHost    string        `envconfig:"CHATTER_HOST" default:"https://public.api.bsky.app"`
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
