package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fu0730/ai-life-planner/internal/agenda"
	"github.com/fu0730/ai-life-planner/internal/scheduler"
	"github.com/fu0730/ai-life-planner/internal/storage"
	"github.com/fu0730/ai-life-planner/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lifeplanner failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	repo, err := storage.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer repo.Close()
	if err := storage.MigrateUp(repo.DB()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	svc := agenda.NewService(repo)
	if cfg.SeedCategories {
		if err := svc.SeedCategories(context.Background()); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
	}

	engine := scheduler.NewEngine(cfg.SchedulerBuffer)
	engine.Start()
	defer engine.Stop()
	now := time.Now()
	if err := engine.ScheduleRollover(now); err != nil {
		return fmt.Errorf("schedule rollover: %w", err)
	}
	if err := engine.ScheduleReflectionPrompt(now); err != nil {
		return fmt.Errorf("schedule reflection prompt: %w", err)
	}

	var chime agenda.Chime = agenda.NoopChime{}
	if cfg.SoundEnabled {
		chime = update.TerminalChime{}
	}

	program := tea.NewProgram(update.NewModel(svc, engine, chime))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
