package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	MongoURI    string
	DBName      string
	JWTSecret   string
	Port        string
	OpenAIKey   string
	LocalDev    bool
	MediaRoot   string
	CORSOrigins string
}

func Load() *Config {
	localDev := getEnv("LOCAL_DEV", "false") == "true"

	mongoURI := getEnv("MONGO_URI", "mongodb://localhost:27017")
	if localDev {
		mongoURI = getEnv("MONGO_URI_DEV", mongoURI)
	}

	return &Config{
		MongoURI:    mongoURI,
		DBName:      getEnv("DB_NAME", "personal_page"),
		JWTSecret:   getEnv("SECRET_KEY", "default-secret"),
		Port:        getEnv("PORT", "8080"),
		OpenAIKey:   getEnv("OPENAI_API_KEY", ""),
		LocalDev:    localDev,
		MediaRoot:   getEnv("MEDIA_ROOT", defaultMediaRoot(localDev)),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", ""),
	}
}

// defaultMediaRoot selects the mounted volume in production and a
// working-directory folder for local development.
func defaultMediaRoot(localDev bool) string {
	if !localDev {
		return "/mnt/media_storage"
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return filepath.Join(wd, "media_storage")
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
