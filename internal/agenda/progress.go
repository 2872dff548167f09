package agenda

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fu0730/ai-life-planner/internal/model"
	"github.com/fu0730/ai-life-planner/internal/storage"
)

// CompletionPercentage maps a completed/total pair to a whole percentage.
// An empty total is 0, everything else rounds half up: 3 of 4 is 75,
// 1 of 8 is 13.
func CompletionPercentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return (completed*100 + total/2) / total
}

// SaveReflection upserts the reflection record for the day: one row per
// date, counts and note replaced in place when the row already exists.
func (s *Service) SaveReflection(ctx context.Context, day time.Time, completed, total int, note string, now time.Time) error {
	date := model.DateOf(day)
	existing, err := s.repo.GetReflectionByDate(ctx, date)
	if err == nil {
		existing.CompletedCount = completed
		existing.TotalCount = total
		existing.Note = note
		if err := s.repo.UpdateReflection(ctx, existing); err != nil {
			return fmt.Errorf("update reflection: %w", err)
		}
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("load reflection: %w", err)
	}
	row := model.DailyReflection{
		ID:             uuid.NewString(),
		Date:           date,
		CompletedCount: completed,
		TotalCount:     total,
		Note:           note,
		CreatedAt:      now,
	}
	if err := row.Validate(); err != nil {
		return err
	}
	if err := s.repo.CreateReflection(ctx, reflectionRecord(row)); err != nil {
		return fmt.Errorf("create reflection: %w", err)
	}
	return nil
}

// PeriodSummary aggregates reflection counts over a review window.
type PeriodSummary struct {
	Completed  int
	Total      int
	Percentage int
}

type ReviewSummary struct {
	Week        PeriodSummary
	Month       PeriodSummary
	RecentNotes []model.DailyReflection
}

const maxRecentNotes = 7

// Review sums reflection counts over the trailing week (day minus seven
// days) and the trailing calendar month. The month boundary subtracts one
// calendar month and clamps to the last valid day of the target month, so
// March 31 looks back to the end of February rather than a fixed 30 days.
func (s *Service) Review(ctx context.Context, day time.Time) (ReviewSummary, error) {
	weekStart := model.DateOf(day.AddDate(0, 0, -7))
	monthStart := model.DateOf(monthEarlier(day))

	records, err := s.repo.ListReflectionsSince(ctx, monthStart)
	if err != nil {
		return ReviewSummary{}, fmt.Errorf("list reflections: %w", err)
	}

	var out ReviewSummary
	for _, rec := range records {
		row := reflectionModel(rec)
		out.Month.Completed += row.CompletedCount
		out.Month.Total += row.TotalCount
		if row.Date >= weekStart {
			out.Week.Completed += row.CompletedCount
			out.Week.Total += row.TotalCount
		}
		if row.Note != "" && len(out.RecentNotes) < maxRecentNotes {
			out.RecentNotes = append(out.RecentNotes, row)
		}
	}
	out.Week.Percentage = CompletionPercentage(out.Week.Completed, out.Week.Total)
	out.Month.Percentage = CompletionPercentage(out.Month.Completed, out.Month.Total)
	return out, nil
}

// ReflectionsSince returns every reflection recorded on or after the given
// day, most recent first. The calendar screen uses it to paint per-day
// completion percentages.
func (s *Service) ReflectionsSince(ctx context.Context, day time.Time) ([]model.DailyReflection, error) {
	records, err := s.repo.ListReflectionsSince(ctx, model.DateOf(day))
	if err != nil {
		return nil, fmt.Errorf("list reflections: %w", err)
	}
	out := make([]model.DailyReflection, 0, len(records))
	for _, rec := range records {
		out = append(out, reflectionModel(rec))
	}
	return out, nil
}

// monthEarlier steps back one calendar month, clamping the day of month to
// the target month's length instead of letting the overflow normalize into
// the following month.
func monthEarlier(t time.Time) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()-1, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func reflectionRecord(in model.DailyReflection) storage.DailyReflection {
	return storage.DailyReflection{
		ID:             in.ID,
		Date:           in.Date,
		CompletedCount: in.CompletedCount,
		TotalCount:     in.TotalCount,
		Note:           in.Note,
		CreatedAt:      in.CreatedAt,
	}
}

func reflectionModel(in storage.DailyReflection) model.DailyReflection {
	return model.DailyReflection{
		ID:             in.ID,
		Date:           in.Date,
		CompletedCount: in.CompletedCount,
		TotalCount:     in.TotalCount,
		Note:           in.Note,
		CreatedAt:      in.CreatedAt,
	}
}
