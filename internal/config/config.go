package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	JWTSecret   string
	MongoURI    string
	DBName      string
	SkipAuth    bool
	Environment string
	AppId       string
	BaseURL     string // Public base URL used in outbound email links

	// Weekly report settings
	ReportsDir          string // Physical directory the spreadsheet artifacts are written to
	ReportsURL          string // URL path prefix the artifacts are served under
	ReportSchedule      string // Cron expression for the weekly report job
	ReportTimezone      string // IANA timezone the reporting week is anchored in
	ReportRecipientRole string // Role whose members receive the report email

	// Mail transport
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "yapton"),
		SkipAuth:    getEnv("SKIP_AUTH", "false") == "true",
		Environment: getEnv("ENVIRONMENT", "development"),
		AppId:       getEnv("APP_ID", "yapton-backend"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),

		ReportsDir:          getEnv("REPORTS_DIR", "./files/reports"),
		ReportsURL:          getEnv("REPORTS_URL", "/files/reports"),
		ReportSchedule:      getEnv("REPORT_SCHEDULE", "0 0 * * 1"),
		ReportTimezone:      getEnv("REPORT_TIMEZONE", "Europe/London"),
		ReportRecipientRole: getEnv("REPORT_RECIPIENT_ROLE", "management"),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@flatstudios.net"),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "Flat Studios"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
