package views

import (
	"fmt"
	"strings"
)

type TodayItemData struct {
	ID       string
	Title    string
	Routine  bool
	Done     bool
	Priority string
	DueDate  string
	Minutes  int
}

type BlockGroupData struct {
	Block string
	Items []TodayItemData
}

type TodayPanelData struct {
	Date         string
	Groups       []BlockGroupData
	SelectedID   string
	ProgressView string
	Percentage   int
	AllDone      bool
}

type TasksPanelData struct {
	CategoryLine string
	ListView     string
	SortBy       string
}

type CalendarPanelData struct {
	MonthLabel string
	TableView  string
}

type PeriodSummaryData struct {
	Completed  int
	Total      int
	Percentage int
}

type ReflectionNoteData struct {
	Date string
	Note string
}

type ReviewPanelData struct {
	Week  PeriodSummaryData
	Month PeriodSummaryData
	Notes []ReflectionNoteData
}

type ReflectionEditorData struct {
	Date       string
	Completed  int
	Total      int
	EditorView string
}

type SettingsPanelData struct {
	Theme        string
	SoundEnabled bool
	SortBy       string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderTodayPanel(data TodayPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("today %s:\n", data.Date))
	b.WriteString(fmt.Sprintf("progress: %s %d%%\n", data.ProgressView, data.Percentage))
	if data.AllDone {
		b.WriteString("everything done, nice work!\n")
	}
	b.WriteString("actions: [j/k]move [space]toggle [d]delete [/]add\n")
	if len(data.Groups) == 0 {
		b.WriteString("\n(nothing planned today)")
		return strings.TrimSpace(b.String())
	}
	for _, group := range data.Groups {
		b.WriteString(fmt.Sprintf("\n%s:\n", group.Block))
		for _, item := range group.Items {
			cursor := " "
			if data.SelectedID == item.ID {
				cursor = ">"
			}
			box := "[ ]"
			if item.Done {
				box = "[x]"
			}
			b.WriteString(fmt.Sprintf("%s %s %s%s", cursor, box, routineMark(item), item.Title))
			if item.Minutes > 0 {
				b.WriteString(fmt.Sprintf(" ~%dm", item.Minutes))
			}
			if item.Priority != "" {
				b.WriteString(fmt.Sprintf(" !%s", item.Priority))
			}
			if item.DueDate != "" {
				b.WriteString(fmt.Sprintf(" due:%s", item.DueDate))
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString("categories: " + data.CategoryLine + "\n")
	b.WriteString(fmt.Sprintf("sort: %s\n", data.SortBy))
	b.WriteString("actions: [h/l]category [j/k]move [space]toggle [d]delete [o]sort\n")
	b.WriteString(data.ListView)
	return strings.TrimSpace(b.String())
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString("calendar:\n")
	b.WriteString(fmt.Sprintf("month: %s\n", data.MonthLabel))
	b.WriteString("actions: [h/l]month [t]today\n")
	b.WriteString(data.TableView)
	return strings.TrimSpace(b.String())
}

func RenderReviewPanel(data ReviewPanelData) string {
	var b strings.Builder
	b.WriteString("review:\n")
	b.WriteString(renderPeriodLine("last 7 days", data.Week))
	b.WriteString(renderPeriodLine("last month", data.Month))
	if len(data.Notes) == 0 {
		b.WriteString("\nnotes: (none yet, press r to write one)")
		return strings.TrimSpace(b.String())
	}
	b.WriteString("\nrecent notes:\n")
	for _, note := range data.Notes {
		b.WriteString(fmt.Sprintf("\n%s:\n%s\n", note.Date, note.Note))
	}
	return strings.TrimSpace(b.String())
}

func renderPeriodLine(label string, p PeriodSummaryData) string {
	if p.Total == 0 {
		return fmt.Sprintf("%s: no data\n", label)
	}
	return fmt.Sprintf("%s: %d/%d (%d%%)\n", label, p.Completed, p.Total, p.Percentage)
}

func RenderCelebration(total int) string {
	var b strings.Builder
	b.WriteString("all done!\n")
	b.WriteString(fmt.Sprintf("every one of today's %d items is finished.\n\n", total))
	b.WriteString("[m] plan something more\n")
	b.WriteString("[z] rest, write the reflection\n")
	b.WriteString("[esc] just close this")
	return strings.TrimSpace(b.String())
}

func RenderQuickAdd(inputView string) string {
	var b strings.Builder
	b.WriteString("quick add:\n")
	b.WriteString(inputView + "\n\n")
	b.WriteString("examples:\n")
	b.WriteString("  add Buy milk !high due:2026-09-05 block:afternoon cat:Shopping\n")
	b.WriteString("  routine Stretch block:morning days:mon,wed,fri min:10\n")
	b.WriteString("  reflect productive day overall\n")
	b.WriteString("  sort dueDate\n")
	b.WriteString("[enter]submit [esc]cancel")
	return strings.TrimSpace(b.String())
}

func RenderReflectionEditor(data ReflectionEditorData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("reflection for %s:\n", data.Date))
	b.WriteString(fmt.Sprintf("day score: %d/%d items done\n\n", data.Completed, data.Total))
	b.WriteString(data.EditorView + "\n")
	b.WriteString("[ctrl+s]save [esc]discard")
	return strings.TrimSpace(b.String())
}

func RenderSettingsPanel(data SettingsPanelData) string {
	sound := "off"
	if data.SoundEnabled {
		sound = "on"
	}
	var b strings.Builder
	b.WriteString("settings:\n")
	b.WriteString(fmt.Sprintf("[t] theme: %s\n", data.Theme))
	b.WriteString(fmt.Sprintf("[n] sound: %s\n", sound))
	b.WriteString(fmt.Sprintf("[o] sort: %s\n", data.SortBy))
	b.WriteString("[esc]close")
	return strings.TrimSpace(b.String())
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func routineMark(item TodayItemData) string {
	if item.Routine {
		return "* "
	}
	return ""
}
