package storage

import "time"

type Category struct {
	ID           string
	Name         string
	Color        string
	DisplayOrder int
	Type         string
}

type Task struct {
	ID          string
	Title       string
	Memo        string
	CategoryID  string
	Completed   bool
	Priority    string
	DueDate     string // YYYY-MM-DD, empty when undated
	Block       string // empty when unscheduled
	CreatedAt   time.Time
	CompletedAt *time.Time
}

type Routine struct {
	ID               string
	Title            string
	Block            string
	EstimatedMinutes int
	Days             string // comma-joined weekday numbers, e.g. "1,3,5"
	DisplayOrder     int
	CreatedAt        time.Time
}

type RoutineCompletion struct {
	ID          string
	RoutineID   string
	Date        string // YYYY-MM-DD
	CompletedAt time.Time
}

type DailyReflection struct {
	ID             string
	Date           string // YYYY-MM-DD, unique
	CompletedCount int
	TotalCount     int
	Note           string
	CreatedAt      time.Time
}

type Settings struct {
	ID           string
	Theme        string
	SoundEnabled bool
	SortBy       string
}

type TaskListFilter struct {
	CategoryID string
	Completed  *bool
	DueDate    string
}
