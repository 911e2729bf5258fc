package app

import (
	"fmt"
	"strings"
	"time"

	dbpkg "github.com/yungbote/studytrack-backend/internal/data/db"
	"github.com/yungbote/studytrack-backend/internal/platform/envutil"
	"github.com/yungbote/studytrack-backend/internal/platform/inflight"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
	"github.com/yungbote/studytrack-backend/internal/platform/openai"
)

type Config struct {
	Port        string
	ServiceName string
	Environment string

	StudyTimezone     string
	WeeklyTargetHours float64
	CatalogPath       string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	DB dbpkg.Config

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RoutineLockTTL  time.Duration
	AllowedOrigins  []string
	OpenAI          openai.Config
	ShutdownTimeout time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:        envutil.String("PORT", "8080"),
		ServiceName: envutil.String("OTEL_SERVICE_NAME", "studytrack-api"),
		Environment: envutil.String("APP_ENV", "development"),

		StudyTimezone:     envutil.String("STUDY_TIMEZONE", "UTC"),
		WeeklyTargetHours: envutil.Float("WEEKLY_TARGET_HOURS", 40),
		CatalogPath:       envutil.String("CATALOG_PATH", ""),

		JWTSecret:   envutil.String("AUTH_JWT_SECRET", ""),
		JWTIssuer:   envutil.String("AUTH_JWT_ISSUER", ""),
		JWTAudience: envutil.String("AUTH_JWT_AUDIENCE", ""),

		DB: dbpkg.Config{
			Driver:      strings.ToLower(envutil.String("DB_DRIVER", dbpkg.DriverPostgres)),
			DatabaseURL: envutil.String("DATABASE_URL", ""),
			Host:        envutil.String("POSTGRES_HOST", "localhost"),
			Port:        envutil.String("POSTGRES_PORT", "5432"),
			User:        envutil.String("POSTGRES_USER", "postgres"),
			Password:    envutil.String("POSTGRES_PASSWORD", ""),
			Name:        envutil.String("POSTGRES_NAME", "studytrack"),
			SSLMode:     envutil.String("POSTGRES_SSLMODE", "disable"),
			SQLitePath:  envutil.String("SQLITE_PATH", "studytrack.db"),
		},

		RedisAddr:       envutil.String("REDIS_ADDR", ""),
		RedisPassword:   envutil.String("REDIS_PASSWORD", ""),
		RedisDB:         envutil.Int("REDIS_DB", 0),
		RoutineLockTTL:  envutil.Seconds("ROUTINE_LOCK_TTL_SECONDS", inflight.DefaultTTL),
		AllowedOrigins:  envutil.List("CORS_ALLOWED_ORIGINS"),
		OpenAI:          openai.ConfigFromEnv(),
		ShutdownTimeout: envutil.Seconds("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
	}
	if log != nil {
		log.Info("Config loaded",
			"port", cfg.Port,
			"db_driver", cfg.DB.Driver,
			"study_timezone", cfg.StudyTimezone,
			"redis", cfg.RedisAddr != "",
			"openai_model", cfg.OpenAI.Model,
			"openai_configured", cfg.OpenAI.APIKey != "",
		)
	}
	return cfg
}

// Validate reports settings the API server cannot start without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("AUTH_JWT_SECRET is required")
	}
	switch c.DB.Driver {
	case dbpkg.DriverPostgres, dbpkg.DriverSQLite:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DB.Driver)
	}
	if c.WeeklyTargetHours <= 0 {
		return fmt.Errorf("WEEKLY_TARGET_HOURS must be positive")
	}
	return nil
}
