package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateCategory(ctx context.Context, in Category) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, color, display_order, type)
		VALUES (?, ?, ?, ?, ?)`,
		in.ID, in.Name, in.Color, in.DisplayOrder, in.Type,
	)
	return err
}

func (r *SQLiteRepository) GetCategory(ctx context.Context, id string) (Category, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, color, display_order, type
		FROM categories WHERE id = ?`, id)
	var out Category
	if err := row.Scan(&out.ID, &out.Name, &out.Color, &out.DisplayOrder, &out.Type); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Category{}, ErrNotFound
		}
		return Category{}, err
	}
	return out, nil
}

func (r *SQLiteRepository) UpdateCategory(ctx context.Context, in Category) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE categories SET name = ?, color = ?, display_order = ?, type = ?
		WHERE id = ?`,
		in.Name, in.Color, in.DisplayOrder, in.Type, in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteCategory(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, color, display_order, type
		FROM categories ORDER BY display_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var item Category
		if err := rows.Scan(&item.ID, &item.Name, &item.Color, &item.DisplayOrder, &item.Type); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CountCategories(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SQLiteRepository) CountTasksInCategory(ctx context.Context, categoryID string) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE category_id = ?`, categoryID)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SQLiteRepository) CreateTask(ctx context.Context, in Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, memo, category_id, completed, priority, due_date, block, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Title, in.Memo, in.CategoryID, boolInt(in.Completed), in.Priority,
		in.DueDate, in.Block, mustTime(in.CreatedAt), nullTime(in.CompletedAt),
	)
	return err
}

func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, memo, category_id, completed, priority, due_date, block, created_at, completed_at
		FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, err
	}
	return task, nil
}

func (r *SQLiteRepository) UpdateTask(ctx context.Context, in Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, memo = ?, category_id = ?, completed = ?, priority = ?, due_date = ?, block = ?, completed_at = ?
		WHERE id = ?`,
		in.Title, in.Memo, in.CategoryID, boolInt(in.Completed), in.Priority,
		in.DueDate, in.Block, nullTime(in.CompletedAt), in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListTasks(ctx context.Context, filter TaskListFilter) ([]Task, error) {
	query := `SELECT id, title, memo, category_id, completed, priority, due_date, block, created_at, completed_at FROM tasks`
	clauses := make([]string, 0, 3)
	args := make([]any, 0, 3)
	if filter.CategoryID != "" {
		clauses = append(clauses, "category_id = ?")
		args = append(args, filter.CategoryID)
	}
	if filter.Completed != nil {
		clauses = append(clauses, "completed = ?")
		args = append(args, boolInt(*filter.Completed))
	}
	if filter.DueDate != "" {
		clauses = append(clauses, "due_date = ?")
		args = append(args, filter.DueDate)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CreateRoutine(ctx context.Context, in Routine) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO routines (id, title, block, estimated_minutes, days, display_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Title, in.Block, in.EstimatedMinutes, in.Days, in.DisplayOrder, mustTime(in.CreatedAt),
	)
	return err
}

func (r *SQLiteRepository) GetRoutine(ctx context.Context, id string) (Routine, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, block, estimated_minutes, days, display_order, created_at
		FROM routines WHERE id = ?`, id)
	item, err := scanRoutine(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Routine{}, ErrNotFound
		}
		return Routine{}, err
	}
	return item, nil
}

func (r *SQLiteRepository) UpdateRoutine(ctx context.Context, in Routine) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE routines
		SET title = ?, block = ?, estimated_minutes = ?, days = ?, display_order = ?
		WHERE id = ?`,
		in.Title, in.Block, in.EstimatedMinutes, in.Days, in.DisplayOrder, in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteRoutine(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM routines WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListRoutines(ctx context.Context) ([]Routine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, block, estimated_minutes, days, display_order, created_at
		FROM routines ORDER BY block ASC, display_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Routine, 0)
	for rows.Next() {
		item, scanErr := scanRoutine(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CountRoutinesInBlock(ctx context.Context, block string) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM routines WHERE block = ?`, block)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SQLiteRepository) CreateCompletion(ctx context.Context, in RoutineCompletion) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO routine_completions (id, routine_id, date, completed_at)
		VALUES (?, ?, ?, ?)`,
		in.ID, in.RoutineID, in.Date, mustTime(in.CompletedAt),
	)
	return err
}

func (r *SQLiteRepository) DeleteCompletion(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM routine_completions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) GetCompletionForDay(ctx context.Context, routineID, date string) (RoutineCompletion, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, routine_id, date, completed_at
		FROM routine_completions WHERE routine_id = ? AND date = ?`, routineID, date)
	item, err := scanCompletion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RoutineCompletion{}, ErrNotFound
		}
		return RoutineCompletion{}, err
	}
	return item, nil
}

func (r *SQLiteRepository) ListCompletionsForDay(ctx context.Context, date string) ([]RoutineCompletion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, routine_id, date, completed_at
		FROM routine_completions WHERE date = ?`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RoutineCompletion, 0)
	for rows.Next() {
		item, scanErr := scanCompletion(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) DeleteCompletionsForRoutine(ctx context.Context, routineID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM routine_completions WHERE routine_id = ?`, routineID)
	return err
}

func (r *SQLiteRepository) CreateReflection(ctx context.Context, in DailyReflection) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reflections (id, date, completed_count, total_count, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		in.ID, in.Date, in.CompletedCount, in.TotalCount, in.Note, mustTime(in.CreatedAt),
	)
	return err
}

func (r *SQLiteRepository) UpdateReflection(ctx context.Context, in DailyReflection) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE reflections
		SET completed_count = ?, total_count = ?, note = ?
		WHERE id = ?`,
		in.CompletedCount, in.TotalCount, in.Note, in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) GetReflectionByDate(ctx context.Context, date string) (DailyReflection, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, date, completed_count, total_count, note, created_at
		FROM reflections WHERE date = ?`, date)
	item, err := scanReflection(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DailyReflection{}, ErrNotFound
		}
		return DailyReflection{}, err
	}
	return item, nil
}

func (r *SQLiteRepository) ListReflectionsSince(ctx context.Context, date string) ([]DailyReflection, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, completed_count, total_count, note, created_at
		FROM reflections WHERE date >= ? ORDER BY date DESC`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]DailyReflection, 0)
	for rows.Next() {
		item, scanErr := scanReflection(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) GetSettings(ctx context.Context) (Settings, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, theme, sound_enabled, sort_by FROM settings LIMIT 1`)
	var out Settings
	var sound int
	if err := row.Scan(&out.ID, &out.Theme, &sound, &out.SortBy); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Settings{}, ErrNotFound
		}
		return Settings{}, err
	}
	out.SoundEnabled = sound == 1
	return out, nil
}

func (r *SQLiteRepository) CreateSettings(ctx context.Context, in Settings) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (id, theme, sound_enabled, sort_by)
		VALUES (?, ?, ?, ?)`,
		in.ID, in.Theme, boolInt(in.SoundEnabled), in.SortBy,
	)
	return err
}

func (r *SQLiteRepository) UpdateSettings(ctx context.Context, in Settings) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE settings SET theme = ?, sound_enabled = ?, sort_by = ?
		WHERE id = ?`,
		in.Theme, boolInt(in.SoundEnabled), in.SortBy, in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func nullTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.UTC().Format(sqliteTimeLayout)
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	tm, err := time.Parse(sqliteTimeLayout, v.String)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (Task, error) {
	var out Task
	var completed int
	var created string
	var completedAt sql.NullString
	if err := s.Scan(&out.ID, &out.Title, &out.Memo, &out.CategoryID, &completed, &out.Priority, &out.DueDate, &out.Block, &created, &completedAt); err != nil {
		return Task{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Task{}, err
	}
	done, err := parseNullableTime(completedAt)
	if err != nil {
		return Task{}, err
	}
	out.Completed = completed == 1
	out.CreatedAt = createdAt
	out.CompletedAt = done
	return out, nil
}

func scanRoutine(s scanner) (Routine, error) {
	var out Routine
	var created string
	if err := s.Scan(&out.ID, &out.Title, &out.Block, &out.EstimatedMinutes, &out.Days, &out.DisplayOrder, &created); err != nil {
		return Routine{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Routine{}, err
	}
	out.CreatedAt = createdAt
	return out, nil
}

func scanCompletion(s scanner) (RoutineCompletion, error) {
	var out RoutineCompletion
	var completed string
	if err := s.Scan(&out.ID, &out.RoutineID, &out.Date, &completed); err != nil {
		return RoutineCompletion{}, err
	}
	completedAt, err := parseRequiredTime(completed)
	if err != nil {
		return RoutineCompletion{}, err
	}
	out.CompletedAt = completedAt
	return out, nil
}

func scanReflection(s scanner) (DailyReflection, error) {
	var out DailyReflection
	var created string
	if err := s.Scan(&out.ID, &out.Date, &out.CompletedCount, &out.TotalCount, &out.Note, &created); err != nil {
		return DailyReflection{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return DailyReflection{}, err
	}
	out.CreatedAt = createdAt
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
