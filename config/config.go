package config

import (
	"errors"
	"os"
)

// Config holds process-wide server settings. The credential fields are read
// once at startup and must never be mutated or logged.
type Config struct {
	ClientID       string
	ClientSecret   string
	RefreshToken   string
	DefaultPrivacy string
	Port           string
}

// Load reads the server configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		ClientID:       os.Getenv("YOUTUBE_CLIENT_ID"),
		ClientSecret:   os.Getenv("YOUTUBE_CLIENT_SECRET"),
		RefreshToken:   os.Getenv("YOUTUBE_REFRESH_TOKEN"),
		DefaultPrivacy: firstNonEmpty(os.Getenv("YOUTUBE_DEFAULT_PRIVACY"), "private"),
		Port:           firstNonEmpty(os.Getenv("PORT"), "8080"),
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return cfg, errors.New("YOUTUBE_CLIENT_ID, YOUTUBE_CLIENT_SECRET and YOUTUBE_REFRESH_TOKEN are required")
	}
	return cfg, nil
}

// ClientConfig holds settings for the terminal client.
type ClientConfig struct {
	APIBaseURL      string
	DefaultHashtags string
}

// LoadClient reads the client configuration from the environment.
// NEXT_PUBLIC_DEFAULT_HASHTAGS is accepted as an alias of DEFAULT_HASHTAGS
// so a .env shared with the web frontend keeps working.
func LoadClient() ClientConfig {
	return ClientConfig{
		APIBaseURL:      firstNonEmpty(os.Getenv("UPLOAD_API_URL"), "http://localhost:8080"),
		DefaultHashtags: firstNonEmpty(os.Getenv("DEFAULT_HASHTAGS"), os.Getenv("NEXT_PUBLIC_DEFAULT_HASHTAGS")),
	}
}

func firstNonEmpty(v ...string) string {
	for _, s := range v {
		if s != "" {
			return s
		}
	}
	return ""
}
