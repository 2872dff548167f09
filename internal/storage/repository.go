package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

type Repository interface {
	CreateCategory(ctx context.Context, in Category) error
	GetCategory(ctx context.Context, id string) (Category, error)
	UpdateCategory(ctx context.Context, in Category) error
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]Category, error)
	CountCategories(ctx context.Context) (int, error)
	CountTasksInCategory(ctx context.Context, categoryID string) (int, error)

	CreateTask(ctx context.Context, in Task) error
	GetTask(ctx context.Context, id string) (Task, error)
	UpdateTask(ctx context.Context, in Task) error
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context, filter TaskListFilter) ([]Task, error)

	CreateRoutine(ctx context.Context, in Routine) error
	GetRoutine(ctx context.Context, id string) (Routine, error)
	UpdateRoutine(ctx context.Context, in Routine) error
	DeleteRoutine(ctx context.Context, id string) error
	ListRoutines(ctx context.Context) ([]Routine, error)
	CountRoutinesInBlock(ctx context.Context, block string) (int, error)

	CreateCompletion(ctx context.Context, in RoutineCompletion) error
	DeleteCompletion(ctx context.Context, id string) error
	GetCompletionForDay(ctx context.Context, routineID, date string) (RoutineCompletion, error)
	ListCompletionsForDay(ctx context.Context, date string) ([]RoutineCompletion, error)
	DeleteCompletionsForRoutine(ctx context.Context, routineID string) error

	CreateReflection(ctx context.Context, in DailyReflection) error
	UpdateReflection(ctx context.Context, in DailyReflection) error
	GetReflectionByDate(ctx context.Context, date string) (DailyReflection, error)
	ListReflectionsSince(ctx context.Context, date string) ([]DailyReflection, error)

	GetSettings(ctx context.Context) (Settings, error)
	CreateSettings(ctx context.Context, in Settings) error
	UpdateSettings(ctx context.Context, in Settings) error
}
