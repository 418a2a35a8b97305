package config

import "os"

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Server
	Port        string
	CORSOrigins string

	// Advertised base URL used when building absolute image links.
	PublicBaseURL string

	// Uploads
	UploadDir string

	// Google Sign-In (optional; enables id_token verification)
	GoogleClientID string
}

func Load() *Config {
	port := getEnv("PORT", "3000")
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "reportes_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		Port:        port,
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:"+port),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
