// Package commands parses the quick-add line into structured planner
// commands. The grammar is token based: the first word selects the
// command, bare words accumulate into the title, and option tokens
// (!high, due:2026-09-01, block:morning, cat:Work, days:mon,wed,fri,
// min:15) can appear anywhere after the head.
package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fu0730/ai-life-planner/internal/model"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeRoutine Type = "routine"
	TypeReflect Type = "reflect"
	TypeSort    Type = "sort"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title    string
	Priority model.Priority
	DueDate  string
	Block    model.TimeBlock
	Category string
}

type RoutineArgs struct {
	Title            string
	Block            model.TimeBlock
	Days             []time.Weekday
	EstimatedMinutes int
}

type ReflectArgs struct {
	Note string
}

type SortArgs struct {
	By model.SortBy
}

type Command struct {
	Type    Type
	Raw     string
	Add     *AddArgs
	Routine *RoutineArgs
	Reflect *ReflectArgs
	Sort    *SortArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeRoutine:
		return parseRoutine(input, args)
	case TypeReflect:
		return parseReflect(input, args)
	case TypeSort:
		return parseSort(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	out := AddArgs{Priority: model.PriorityMedium}
	var title []string
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(arg, "!"):
			p := model.Priority(strings.TrimPrefix(lower, "!"))
			if !p.IsValid() {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown priority: %s", arg)}
			}
			out.Priority = p
		case strings.HasPrefix(lower, "due:"):
			date := arg[len("due:"):]
			if _, err := time.Parse(model.DateLayout, date); err != nil {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("due date must be YYYY-MM-DD: %s", date)}
			}
			out.DueDate = date
		case strings.HasPrefix(lower, "block:"):
			block, err := parseBlock(strings.TrimPrefix(lower, "block:"))
			if err != nil {
				return Command{}, err
			}
			out.Block = block
		case strings.HasPrefix(lower, "cat:"):
			out.Category = arg[len("cat:"):]
		default:
			title = append(title, arg)
		}
	}
	out.Title = strings.TrimSpace(strings.Join(title, " "))
	if out.Title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseRoutine(raw string, args []string) (Command, error) {
	var out RoutineArgs
	var title []string
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(lower, "block:"):
			block, err := parseBlock(strings.TrimPrefix(lower, "block:"))
			if err != nil {
				return Command{}, err
			}
			out.Block = block
		case strings.HasPrefix(lower, "days:"):
			days, err := parseDays(strings.TrimPrefix(lower, "days:"))
			if err != nil {
				return Command{}, err
			}
			out.Days = days
		case strings.HasPrefix(lower, "min:"):
			minutes, err := strconv.Atoi(strings.TrimPrefix(lower, "min:"))
			if err != nil || minutes < 0 {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("min must be a non-negative number: %s", arg)}
			}
			out.EstimatedMinutes = minutes
		default:
			title = append(title, arg)
		}
	}
	out.Title = strings.TrimSpace(strings.Join(title, " "))
	if out.Title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "routine requires a title"}
	}
	if out.Block == model.BlockNone {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "routine requires block:<morning|forenoon|afternoon|night>"}
	}
	if len(out.Days) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "routine requires days:<mon,wed,fri>"}
	}
	return Command{Type: TypeRoutine, Raw: raw, Routine: &out}, nil
}

func parseReflect(raw string, args []string) (Command, error) {
	note := strings.TrimSpace(strings.Join(args, " "))
	return Command{Type: TypeReflect, Raw: raw, Reflect: &ReflectArgs{Note: note}}, nil
}

func parseSort(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "sort requires exactly one key: priority, dueDate or createdAt"}
	}
	by, ok := sortKeys[strings.ToLower(args[0])]
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown sort key: %s", args[0])}
	}
	return Command{Type: TypeSort, Raw: raw, Sort: &SortArgs{By: by}}, nil
}

var sortKeys = map[string]model.SortBy{
	"priority":  model.SortByPriority,
	"duedate":   model.SortByDueDate,
	"due":       model.SortByDueDate,
	"createdat": model.SortByCreatedAt,
	"created":   model.SortByCreatedAt,
}

func parseBlock(value string) (model.TimeBlock, error) {
	block := model.TimeBlock(value)
	if block == model.BlockNone || !block.IsValid() {
		return model.BlockNone, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown block: %s", value)}
	}
	return block, nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

func parseDays(value string) ([]time.Weekday, error) {
	var out []time.Weekday
	seen := make(map[time.Weekday]bool)
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		day, ok := weekdayNames[part]
		if !ok {
			return nil, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown weekday: %s", part)}
		}
		if seen[day] {
			return nil, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("duplicate weekday: %s", part)}
		}
		seen[day] = true
		out = append(out, day)
	}
	if len(out) == 0 {
		return nil, &CommandError{Code: ErrCodeInvalidArgument, Message: "days list is empty"}
	}
	return out, nil
}
