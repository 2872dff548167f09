package commands

import (
	"errors"
	"testing"
	"time"

	"github.com/fu0730/ai-life-planner/internal/model"
)

func TestParseAddFullForm(t *testing.T) {
	cmd, err := Parse("add Buy groceries !high due:2026-09-05 block:afternoon cat:Shopping")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != TypeAdd || cmd.Add == nil {
		t.Fatalf("unexpected command: %#v", cmd)
	}
	got := *cmd.Add
	if got.Title != "Buy groceries" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Priority != model.PriorityHigh {
		t.Errorf("priority = %q", got.Priority)
	}
	if got.DueDate != "2026-09-05" {
		t.Errorf("due date = %q", got.DueDate)
	}
	if got.Block != model.BlockAfternoon {
		t.Errorf("block = %q", got.Block)
	}
	if got.Category != "Shopping" {
		t.Errorf("category = %q", got.Category)
	}
}

func TestParseAddDefaultsAndInterleavedOptions(t *testing.T) {
	cmd, err := Parse("add Water !low the plants")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Add.Title != "Water the plants" {
		t.Errorf("title = %q", cmd.Add.Title)
	}
	if cmd.Add.Priority != model.PriorityLow {
		t.Errorf("priority = %q", cmd.Add.Priority)
	}

	plain, err := Parse("add Call dentist")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if plain.Add.Priority != model.PriorityMedium {
		t.Errorf("default priority = %q", plain.Add.Priority)
	}
	if plain.Add.DueDate != "" || plain.Add.Block != model.BlockNone {
		t.Errorf("expected empty due/block, got %q %q", plain.Add.DueDate, plain.Add.Block)
	}
}

func TestParseAddRejectsBadOptions(t *testing.T) {
	cases := []string{
		"add",
		"add !high due:2026-09-05",
		"add Thing !urgent",
		"add Thing due:tomorrow",
		"add Thing block:laternoon",
	}
	for _, input := range cases {
		if _, err := Parse(input); !isCode(err, ErrCodeInvalidArgument) {
			t.Errorf("Parse(%q): expected invalid_argument, got %v", input, err)
		}
	}
}

func TestParseRoutine(t *testing.T) {
	cmd, err := Parse("routine Morning stretch block:morning days:mon,wed,fri min:15")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != TypeRoutine || cmd.Routine == nil {
		t.Fatalf("unexpected command: %#v", cmd)
	}
	got := *cmd.Routine
	if got.Title != "Morning stretch" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Block != model.BlockMorning {
		t.Errorf("block = %q", got.Block)
	}
	want := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	if len(got.Days) != len(want) {
		t.Fatalf("days = %v", got.Days)
	}
	for i := range want {
		if got.Days[i] != want[i] {
			t.Errorf("day %d = %v, want %v", i, got.Days[i], want[i])
		}
	}
	if got.EstimatedMinutes != 15 {
		t.Errorf("minutes = %d", got.EstimatedMinutes)
	}
}

func TestParseRoutineRequiresBlockAndDays(t *testing.T) {
	cases := []string{
		"routine Stretch days:mon",
		"routine Stretch block:morning",
		"routine Stretch block:morning days:mon,mon",
		"routine Stretch block:morning days:mon,funday",
		"routine block:morning days:mon",
	}
	for _, input := range cases {
		if _, err := Parse(input); !isCode(err, ErrCodeInvalidArgument) {
			t.Errorf("Parse(%q): expected invalid_argument, got %v", input, err)
		}
	}
}

func TestParseReflectKeepsWholeNote(t *testing.T) {
	cmd, err := Parse("reflect finished everything before dinner")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Reflect.Note != "finished everything before dinner" {
		t.Errorf("note = %q", cmd.Reflect.Note)
	}

	empty, err := Parse("reflect")
	if err != nil {
		t.Fatalf("empty note must parse: %v", err)
	}
	if empty.Reflect.Note != "" {
		t.Errorf("note = %q", empty.Reflect.Note)
	}
}

func TestParseSort(t *testing.T) {
	for input, want := range map[string]model.SortBy{
		"sort priority":  model.SortByPriority,
		"sort dueDate":   model.SortByDueDate,
		"sort due":       model.SortByDueDate,
		"sort createdAt": model.SortByCreatedAt,
		"sort created":   model.SortByCreatedAt,
	} {
		cmd, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		if cmd.Sort.By != want {
			t.Errorf("Parse(%q) = %q, want %q", input, cmd.Sort.By, want)
		}
	}
	if _, err := Parse("sort alphabetical"); !isCode(err, ErrCodeInvalidArgument) {
		t.Errorf("expected invalid_argument, got %v", err)
	}
}

func TestParseRejectsEmptyAndUnknown(t *testing.T) {
	if _, err := Parse("   "); !isCode(err, ErrCodeEmptyInput) {
		t.Errorf("expected empty_input, got %v", err)
	}
	if _, err := Parse("/"); !isCode(err, ErrCodeEmptyInput) {
		t.Errorf("expected empty_input, got %v", err)
	}
	if _, err := Parse("frobnicate now"); !isCode(err, ErrCodeUnknownCommand) {
		t.Errorf("expected unknown_command, got %v", err)
	}
}

func TestParseSlashPrefix(t *testing.T) {
	cmd, err := Parse("/add Pay rent")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Add.Title != "Pay rent" {
		t.Errorf("title = %q", cmd.Add.Title)
	}
}

func TestExecuteDispatchAndMissingHandler(t *testing.T) {
	cmd, err := Parse("add Pay rent")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	called := false
	handlers := Handlers{
		Add: func(args AddArgs) (Result, error) {
			called = true
			return Result{Message: "added " + args.Title}, nil
		},
	}
	res, err := Execute(cmd, handlers)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !called || res.Message != "added Pay rent" {
		t.Fatalf("unexpected result: %#v", res)
	}

	sortCmd, err := Parse("sort priority")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := Execute(sortCmd, handlers); !isCode(err, ErrCodeHandlerMissing) {
		t.Fatalf("expected handler_missing, got %v", err)
	}
}

func isCode(err error, code ErrorCode) bool {
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	return cmdErr.Code == code
}
