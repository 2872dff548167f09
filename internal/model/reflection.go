package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DailyReflection summarises one calendar day: how much of the agenda was
// completed plus an optional free-text note. One row per date.
type DailyReflection struct {
	ID             string
	Date           string // YYYY-MM-DD, unique
	CompletedCount int
	TotalCount     int
	Note           string
	CreatedAt      time.Time
}

func (r DailyReflection) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("model: reflection id is required")
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return fmt.Errorf("model: invalid reflection date %q", r.Date)
	}
	if r.CompletedCount < 0 || r.TotalCount < 0 {
		return errors.New("model: reflection counts must not be negative")
	}
	if r.CompletedCount > r.TotalCount {
		return errors.New("model: reflection completed count exceeds total")
	}
	if r.CreatedAt.IsZero() {
		return errors.New("model: reflection created_at is required")
	}
	return nil
}
