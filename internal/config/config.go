package config

import (
	"os"
	"strings"
)

type Config struct {
	Address        string
	LikesFilePath  string
	DatabaseURL    string
	AllowedOrigins []string

	// Client-side settings
	APIBaseURL   string
	ManifestPath string
	PrefsPath    string

	// Media storage (R2/S3) configuration
	MediaBaseURL   string
	R2Endpoint     string
	R2Bucket       string
	R2AccessKeyID  string
	R2AccessSecret string
}

func Load() Config {
	return Config{
		Address:        getEnv("MUSEUM_SERVER_ADDR", ":3000"),
		LikesFilePath:  getEnv("MUSEUM_LIKES_FILE", "./data/likes.json"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		AllowedOrigins: splitAndClean(os.Getenv("MUSEUM_ALLOWED_ORIGINS")),

		APIBaseURL:   getEnv("MUSEUM_API_URL", "http://localhost:3000"),
		ManifestPath: getEnv("MUSEUM_MANIFEST_PATH", "./arts.json"),
		PrefsPath:    getEnv("MUSEUM_PREFS_PATH", "./data/prefs.toml"),

		MediaBaseURL:   getEnv("MUSEUM_MEDIA_BASE_URL", "arts/"),
		R2Endpoint:     os.Getenv("MUSEUM_R2_ENDPOINT"),
		R2Bucket:       os.Getenv("MUSEUM_R2_BUCKET"),
		R2AccessKeyID:  os.Getenv("MUSEUM_R2_ACCESS_KEY_ID"),
		R2AccessSecret: os.Getenv("MUSEUM_R2_ACCESS_KEY_SECRET"),
	}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func splitAndClean(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
