// internal/infra/config/config.go
package config

import "os"

// Config holds environment-driven settings for the storefront service.
type Config struct {
	Port string

	FirestoreProjectID       string
	FirestoreCredentialsFile string
	GCPCreds                 string
	FirebaseProjectID        string

	RedisAddr     string
	RedisPassword string

	SendGridAPIKey string
	ContactFrom    string
	ContactTo      string

	AllowedOrigin string
}

// Load reads environment variables and returns a Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "naturalglow-fd8a3")

	return &Config{
		Port: getenvDefault("PORT", "8080"),

		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		RedisAddr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		ContactFrom:    getenvDefault("CONTACT_FROM", "no-reply@naturalglow.example"),
		ContactTo:      os.Getenv("CONTACT_TO"),

		AllowedOrigin: getenvDefault("ALLOWED_ORIGIN", "*"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
