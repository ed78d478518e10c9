package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env              string
	Addr             string
	GeocodeURL       string
	GeocodeUserAgent string
	GeocodeTimeout   time.Duration
	RefreshInterval  time.Duration
	LyftClientID     string
	LyftClientSecret string
	UberBearerToken  string
	UberServerToken  string
}

func Load() *Config {
	// Provider credentials may live in a sibling .env during local dev;
	// a missing file is a normal state, not an error.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("env", "local")
	v.SetDefault("addr", ":8080")
	v.SetDefault("geocode_url", "https://nominatim.openstreetmap.org/search")
	v.SetDefault("geocode_user_agent", "ride-agent/1.0 (learning project)")
	v.SetDefault("geocode_timeout", "20s")
	v.SetDefault("refresh_interval", "30s")

	if path := os.Getenv("RIDEAGENT_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		// Fallback to conventional locations for local dev
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/ride-agent")
	}

	if err := v.ReadInConfig(); err != nil {
		log.Printf("no config file found, using defaults + env vars: %v", err)
	}

	v.AutomaticEnv()

	gt, err := time.ParseDuration(v.GetString("geocode_timeout"))
	if err != nil {
		log.Fatalf("bad geocode_timeout: %v", err)
	}
	ri, err := time.ParseDuration(v.GetString("refresh_interval"))
	if err != nil {
		log.Fatalf("bad refresh_interval: %v", err)
	}

	return &Config{
		Env:              v.GetString("env"),
		Addr:             v.GetString("addr"),
		GeocodeURL:       v.GetString("geocode_url"),
		GeocodeUserAgent: v.GetString("geocode_user_agent"),
		GeocodeTimeout:   gt,
		RefreshInterval:  ri,
		LyftClientID:     v.GetString("lyft_client_id"),
		LyftClientSecret: v.GetString("lyft_client_secret"),
		UberBearerToken:  v.GetString("uber_bearer_token"),
		UberServerToken:  v.GetString("uber_server_token"),
	}
}
