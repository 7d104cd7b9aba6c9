package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database Configuration
	MongoURI          string
	DBName            string
	TitlesCollection  string
	RatingsCollection string

	// TMDB API Configuration
	TMDBAPIKey  string
	TMDBBaseURL string
	Region      string

	// Server Configuration
	Port string
}

// Load reads configuration from the environment with hard-coded fallbacks.
// A .env file is honored when present; its absence is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:          getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017/"),
		DBName:            getEnvOrDefault("MONGO_DB", "bigdata"),
		TitlesCollection:  titlesCollection(),
		RatingsCollection: getEnvOrDefault("RATINGS_COLLECTION", "ratings"),

		TMDBAPIKey:  getEnvOrDefault("TMDB_API_KEY", ""),
		TMDBBaseURL: getEnvOrDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		Region:      strings.ToUpper(getEnvOrDefault("TMDB_REGION", "US")),

		Port: getEnvOrDefault("PORT", "8080"),
	}
}

// RequireTMDBKey gates the commands that talk to the metadata API. A missing
// credential is a startup failure, caught before any I/O happens.
func (c *Config) RequireTMDBKey() error {
	if c.TMDBAPIKey == "" {
		return fmt.Errorf("TMDB_API_KEY is not configured")
	}
	return nil
}

// titlesCollection honors the legacy MONGO_COLLECTION name when the newer
// TITLES_COLLECTION is unset.
func titlesCollection() string {
	if v := os.Getenv("TITLES_COLLECTION"); v != "" {
		return v
	}
	return getEnvOrDefault("MONGO_COLLECTION", "ibdm")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
