package update

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	DatabasePath    string
	SchedulerBuffer int
	SoundEnabled    bool
	SeedCategories  bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DatabasePath:    defaultDatabasePath(),
		SchedulerBuffer: 64,
		SoundEnabled:    true,
		SeedCategories:  true,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("LIFEPLANNER_DB_PATH")); v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := getEnvInt("LIFEPLANNER_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	if v, ok := getEnvBool("LIFEPLANNER_SOUND"); ok {
		cfg.SoundEnabled = v
	}
	if v, ok := getEnvBool("LIFEPLANNER_SEED_CATEGORIES"); ok {
		cfg.SeedCategories = v
	}
	return cfg
}

func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "lifeplanner.db"
	}
	return filepath.Join(dir, "lifeplanner", "lifeplanner.db")
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
