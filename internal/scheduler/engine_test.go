package scheduler

import (
	"testing"
	"time"
)

func TestEngineEmitsInTriggerOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Schedule(Event{ID: "later", Kind: KindReflectionPrompt, At: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(Event{ID: "sooner", Kind: KindDayRollover, At: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.ID != "sooner" || second.ID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.ID, second.ID)
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	at := time.Now().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Schedule(Event{ID: "evt", Kind: KindDayRollover, At: at}); err != nil {
			t.Fatalf("schedule event: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0, got %d", engine.Dropped())
	}
}

func TestScheduleValidatesTriggerTime(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(Event{ID: "bad", Kind: KindDayRollover}); err != ErrInvalidTriggerTime {
		t.Fatalf("expected ErrInvalidTriggerTime, got %v", err)
	}
}

func TestNextMidnight(t *testing.T) {
	now := time.Date(2026, 9, 1, 23, 59, 30, 0, time.UTC)
	got := NextMidnight(now)
	want := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("NextMidnight = %v, want %v", got, want)
	}

	// Month boundary.
	now = time.Date(2026, 9, 30, 12, 0, 0, 0, time.UTC)
	if got := NextMidnight(now); got.Month() != time.October || got.Day() != 1 {
		t.Fatalf("NextMidnight across month = %v", got)
	}
}

func TestEveningPromptRollsToTomorrowAfterNine(t *testing.T) {
	before := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	if got := EveningPrompt(before); got.Day() != 1 || got.Hour() != 21 {
		t.Fatalf("EveningPrompt before nine = %v", got)
	}
	after := time.Date(2026, 9, 1, 22, 0, 0, 0, time.UTC)
	if got := EveningPrompt(after); got.Day() != 2 || got.Hour() != 21 {
		t.Fatalf("EveningPrompt after nine = %v", got)
	}
}

func waitEvent(t *testing.T, ch <-chan Event, timeout time.Duration) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return Event{}
	}
}
