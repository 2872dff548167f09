package model

import (
	"errors"
	"testing"
	"time"
)

func validRoutine() Routine {
	return Routine{
		ID:        "routine-1",
		Title:     "Morning stretch",
		Block:     BlockMorning,
		Days:      []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		CreatedAt: time.Date(2026, 8, 1, 7, 0, 0, 0, time.UTC),
	}
}

func TestRoutineValidate(t *testing.T) {
	r := validRoutine()
	if err := r.Validate(); err != nil {
		t.Fatalf("expected valid routine, got error: %v", err)
	}

	r.Days = nil
	if err := r.Validate(); !errors.Is(err, ErrNoWeekdays) {
		t.Fatalf("expected ErrNoWeekdays, got: %v", err)
	}

	r.Days = []time.Weekday{time.Monday, time.Monday}
	if err := r.Validate(); !errors.Is(err, ErrDuplicateWeekday) {
		t.Fatalf("expected ErrDuplicateWeekday, got: %v", err)
	}

	r = validRoutine()
	r.Block = BlockNone
	if err := r.Validate(); !errors.Is(err, ErrInvalidBlock) {
		t.Fatalf("expected ErrInvalidBlock for unscheduled routine, got: %v", err)
	}
}

func TestRoutineActiveOnWeekday(t *testing.T) {
	r := validRoutine()
	wednesday := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	if wednesday.Weekday() != time.Wednesday || tuesday.Weekday() != time.Tuesday {
		t.Fatalf("test dates drifted: %v %v", wednesday.Weekday(), tuesday.Weekday())
	}
	if !r.ActiveOn(wednesday) {
		t.Fatal("Mon/Wed/Fri routine must be active on Wednesday")
	}
	if r.ActiveOn(tuesday) {
		t.Fatal("Mon/Wed/Fri routine must not be active on Tuesday")
	}
}

func TestActiveRoutinesFilters(t *testing.T) {
	weekdaysOnly := validRoutine()
	daily := validRoutine()
	daily.ID = "routine-2"
	daily.Days = []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}

	tuesday := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	active := ActiveRoutines([]Routine{weekdaysOnly, daily}, tuesday)
	if len(active) != 1 || active[0].ID != "routine-2" {
		t.Fatalf("unexpected active set: %#v", active)
	}

	if got := ActiveRoutines(nil, tuesday); len(got) != 0 {
		t.Fatalf("empty input must yield empty output, got: %#v", got)
	}
}

func TestNormalizeDays(t *testing.T) {
	in := []time.Weekday{time.Friday, time.Monday, time.Wednesday}
	got := NormalizeDays(in)
	want := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: %v", got)
		}
	}
	if in[0] != time.Friday {
		t.Fatal("input slice must not be mutated")
	}
}
