package models

import (
	"errors"
	"time"
)

type TaskCategory string

const (
	TaskCategoryAdministrative TaskCategory = "administrative"
	TaskCategoryCreative       TaskCategory = "creative"
	TaskCategoryResearch       TaskCategory = "research"
	TaskCategoryTechnical      TaskCategory = "technical"
)

// ErrUnknownTaskCategory is returned by ParseTaskCategory for values outside the enumeration.
var ErrUnknownTaskCategory = errors.New("unknown task category")

// ParseTaskCategory converts boundary string data into a TaskCategory.
func ParseTaskCategory(raw string) (TaskCategory, error) {
	switch TaskCategory(raw) {
	case TaskCategoryAdministrative, TaskCategoryCreative, TaskCategoryResearch, TaskCategoryTechnical:
		return TaskCategory(raw), nil
	}
	return "", ErrUnknownTaskCategory
}

type Task struct {
	ID        uint64       `gorm:"primarykey" json:"id"`
	Title     string       `gorm:"not null;index" json:"title"`
	Category  TaskCategory `gorm:"type:varchar(32);not null" json:"category"`
	AssignTo  *uint64      `gorm:"index" json:"assign_to"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	// Relations
	Assignee *User `gorm:"foreignKey:AssignTo" json:"-"`
}
