package update

import "testing"

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("LIFEPLANNER_DB_PATH", "/tmp/planner.db")
	t.Setenv("LIFEPLANNER_SCHEDULER_BUFFER", "128")
	t.Setenv("LIFEPLANNER_SOUND", "off")
	t.Setenv("LIFEPLANNER_SEED_CATEGORIES", "false")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DatabasePath != "/tmp/planner.db" {
		t.Fatalf("db path = %q", cfg.DatabasePath)
	}
	if cfg.SchedulerBuffer != 128 {
		t.Fatalf("buffer = %d", cfg.SchedulerBuffer)
	}
	if cfg.SoundEnabled {
		t.Fatal("expected sound disabled")
	}
	if cfg.SeedCategories {
		t.Fatal("expected seeding disabled")
	}
}

func TestRuntimeConfigIgnoresInvalidEnv(t *testing.T) {
	t.Setenv("LIFEPLANNER_SCHEDULER_BUFFER", "not-a-number")
	t.Setenv("LIFEPLANNER_SOUND", "maybe")

	base := DefaultRuntimeConfig()
	cfg := RuntimeConfigFromEnv(base)
	if cfg.SchedulerBuffer != base.SchedulerBuffer {
		t.Fatalf("buffer changed: %d", cfg.SchedulerBuffer)
	}
	if cfg.SoundEnabled != base.SoundEnabled {
		t.Fatalf("sound changed: %v", cfg.SoundEnabled)
	}
}
