package main

import (
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/jonathan/cv-auditor/internal/audit"
)

// TestMain runs before all tests and loads .env if available
func TestMain(m *testing.M) {
	// Try to load .env file - ignore error if it doesn't exist (CI environment)
	_ = godotenv.Load()

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	newEngine = func() *audit.Engine {
		return audit.NewDefault(audit.WithClock(func() time.Time { return fixed }))
	}

	os.Exit(m.Run())
}
