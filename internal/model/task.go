package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidPriority = errors.New("model: invalid task priority")
	ErrInvalidBlock    = errors.New("model: invalid time block")
	ErrInvalidDueDate  = errors.New("model: invalid due date")
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Rank orders priorities for sorting: high before medium before low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

type Task struct {
	ID          string
	Title       string
	Memo        string
	CategoryID  string
	Completed   bool
	Priority    Priority
	DueDate     string // YYYY-MM-DD, empty when undated
	Block       TimeBlock
	CreatedAt   time.Time
	CompletedAt *time.Time
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if strings.TrimSpace(t.CategoryID) == "" {
		return errors.New("model: task category id is required")
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if !t.Block.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidBlock, t.Block)
	}
	if t.DueDate != "" {
		if _, err := time.Parse(DateLayout, t.DueDate); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDueDate, t.DueDate)
		}
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	if t.Completed && t.CompletedAt == nil {
		return errors.New("model: completed_at is required when task is completed")
	}
	if !t.Completed && t.CompletedAt != nil {
		return errors.New("model: completed_at must be nil when task is not completed")
	}
	return nil
}

// DueOn reports whether the task is due on the given calendar day.
func (t Task) DueOn(day string) bool {
	return t.DueDate != "" && t.DueDate == day
}

// CompletedOn reports whether the task was completed on the given calendar day.
func (t Task) CompletedOn(day string) bool {
	return t.Completed && SameDay(t.CompletedAt, day)
}
