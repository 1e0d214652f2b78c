// Package config loads the service configuration from flags and the
// environment. The only required external setting is the Gemini API key,
// and even that is optional: without it the service runs on the offline
// fake enrichment client.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	Env    string
	Market MarketConfig
	Enrich EnrichConfig
}

type MarketConfig struct {
	// BaseURL of the marketplace API the hub consumes. Defaults to the
	// local backend address.
	BaseURL string
}

type EnrichConfig struct {
	// Provider selects the enrichment backend: "gemini" or "fake".
	Provider string
	Model    string
	RPS      float64
	Burst    int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8080", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:   *port,
		Env:    env,
		Market: loadMarketConfig(),
		Enrich: loadEnrichConfig(),
	}, nil
}

func loadMarketConfig() MarketConfig {
	return MarketConfig{
		BaseURL: firstNonEmpty(strings.TrimSpace(os.Getenv("MARKETPLACE_API_URL")), "http://localhost:8000"),
	}
}

func loadEnrichConfig() EnrichConfig {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("ENRICH_PROVIDER")))
	if provider == "" {
		if strings.TrimSpace(os.Getenv("GEMINI_API_KEY")) != "" {
			provider = "gemini"
		} else {
			provider = "fake"
		}
	}

	rps := 0.0
	if v := strings.TrimSpace(os.Getenv("LLM_RPS")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			rps = f
		}
	}
	burst := 0
	if v := strings.TrimSpace(os.Getenv("LLM_BURST")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			burst = n
		}
	}

	return EnrichConfig{
		Provider: provider,
		Model:    firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_MODEL")), "gemini-2.0-flash"),
		RPS:      rps,
		Burst:    burst,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
