package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTheme  = errors.New("model: invalid theme")
	ErrInvalidSortBy = errors.New("model: invalid sort key")
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

type SortBy string

const (
	SortByPriority  SortBy = "priority"
	SortByDueDate   SortBy = "dueDate"
	SortByCreatedAt SortBy = "createdAt"
)

func (s SortBy) IsValid() bool {
	switch s {
	case SortByPriority, SortByDueDate, SortByCreatedAt:
		return true
	default:
		return false
	}
}

// Settings is a singleton record, created lazily on first read.
type Settings struct {
	ID           string
	Theme        Theme
	SoundEnabled bool
	SortBy       SortBy
}

// DefaultSettings is also the in-memory fallback when the store cannot be
// read; the empty ID marks it as unpersisted.
func DefaultSettings() Settings {
	return Settings{
		Theme:        ThemeLight,
		SoundEnabled: true,
		SortBy:       SortByPriority,
	}
}

func (s Settings) Validate() error {
	if !s.Theme.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, s.Theme)
	}
	if !s.SortBy.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSortBy, s.SortBy)
	}
	return nil
}
