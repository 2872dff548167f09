package model

import "sort"

// SortTasks orders tasks for display. Incomplete tasks always come first;
// within each half the configured key decides:
//
//	priority  — high, then medium, then low
//	dueDate   — dated tasks ascending, undated tasks after every real date
//	createdAt — newest first
//
// The sort is stable, so ties keep their original relative order. The input
// slice is left untouched.
func SortTasks(tasks []Task, by SortBy) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		switch by {
		case SortByDueDate:
			if (a.DueDate == "") != (b.DueDate == "") {
				return a.DueDate != ""
			}
			return a.DueDate < b.DueDate
		case SortByCreatedAt:
			return a.CreatedAt.After(b.CreatedAt)
		default:
			return a.Priority.Rank() < b.Priority.Rank()
		}
	})
	return out
}
