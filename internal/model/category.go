package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCategoryType = errors.New("model: invalid category type")

type CategoryType string

const (
	CategoryTask      CategoryType = "task"
	CategoryRoutine   CategoryType = "routine"
	CategoryChecklist CategoryType = "checklist"
)

func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryTask, CategoryRoutine, CategoryChecklist:
		return true
	default:
		return false
	}
}

type Category struct {
	ID    string
	Name  string
	Color string
	Order int
	Type  CategoryType
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("model: category id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("model: category name is required")
	}
	if !c.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategoryType, c.Type)
	}
	return nil
}
