package db

import (
	"testing"

	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5432", User: "study", Password: "p@ss word", Name: "studytrack"}
	want := "postgres://study:p%40ss%20word@db:5432/studytrack?sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN=%q want %q", got, want)
	}
	cfg.DatabaseURL = "postgres://override"
	if got := cfg.DSN(); got != "postgres://override" {
		t.Fatalf("DatabaseURL should win, got %q", got)
	}
}

func TestSQLiteServiceMigrates(t *testing.T) {
	svc, err := NewService(logger.NewNop(), Config{Driver: DriverSQLite, SQLitePath: "file::memory:"})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	defer svc.Close()
	if err := AutoMigrateAll(svc.DB()); err != nil {
		t.Fatalf("AutoMigrateAll: %v", err)
	}
	for _, table := range []string{"daily_logs", "backlog_tracker", "ai_call_log"} {
		if !svc.DB().Migrator().HasTable(table) {
			t.Fatalf("missing table %s", table)
		}
	}
}

func TestUnknownDriver(t *testing.T) {
	if _, err := NewService(logger.NewNop(), Config{Driver: "oracle"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
