package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	ErrNoWeekdays       = errors.New("model: routine needs at least one weekday")
	ErrDuplicateWeekday = errors.New("model: duplicate weekday in routine")
)

// Routine is a recurring, date-independent obligation that repeats on a
// fixed set of weekdays inside one time block.
type Routine struct {
	ID               string
	Title            string
	Block            TimeBlock
	EstimatedMinutes int // 0 when no estimate was given
	Days             []time.Weekday
	Order            int
	CreatedAt        time.Time
}

func (r Routine) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("model: routine id is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("model: routine title is required")
	}
	if !r.Block.IsValid() || r.Block == BlockNone {
		return fmt.Errorf("%w: %q", ErrInvalidBlock, r.Block)
	}
	if r.EstimatedMinutes < 0 {
		return errors.New("model: routine estimate must not be negative")
	}
	if len(r.Days) == 0 {
		return ErrNoWeekdays
	}
	seen := make(map[time.Weekday]bool, len(r.Days))
	for _, d := range r.Days {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("model: invalid weekday %d", d)
		}
		if seen[d] {
			return fmt.Errorf("%w: %s", ErrDuplicateWeekday, d)
		}
		seen[d] = true
	}
	if r.CreatedAt.IsZero() {
		return errors.New("model: routine created_at is required")
	}
	return nil
}

// ActiveOn reports whether the routine recurs on the day's weekday.
func (r Routine) ActiveOn(day time.Time) bool {
	for _, d := range r.Days {
		if d == day.Weekday() {
			return true
		}
	}
	return false
}

// ActiveRoutines filters routines down to those recurring on the given day.
// Pure: the input slice is never mutated.
func ActiveRoutines(routines []Routine, day time.Time) []Routine {
	out := make([]Routine, 0, len(routines))
	for _, r := range routines {
		if r.ActiveOn(day) {
			out = append(out, r)
		}
	}
	return out
}

// NormalizeDays sorts the weekday set ascending so storage and display are
// deterministic regardless of input order.
func NormalizeDays(days []time.Weekday) []time.Weekday {
	out := make([]time.Weekday, len(days))
	copy(out, days)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// RoutineCompletion records that a routine was completed on one calendar
// day. At most one row exists per (RoutineID, Date) pair.
type RoutineCompletion struct {
	ID          string
	RoutineID   string
	Date        string // YYYY-MM-DD
	CompletedAt time.Time
}

func (c RoutineCompletion) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("model: completion id is required")
	}
	if strings.TrimSpace(c.RoutineID) == "" {
		return errors.New("model: completion routine id is required")
	}
	if _, err := time.Parse(DateLayout, c.Date); err != nil {
		return fmt.Errorf("model: invalid completion date %q", c.Date)
	}
	if c.CompletedAt.IsZero() {
		return errors.New("model: completion completed_at is required")
	}
	return nil
}
