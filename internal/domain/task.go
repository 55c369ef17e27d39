package domain

import (
	"context"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the three known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a single to-do item owned by exactly one user and referencing
// exactly one category. Deletion is physical; there is no soft-delete.
type Task struct {
	ID          int64
	UserID      int64
	CategoryID  int64
	Title       string
	Description string
	Priority    Priority
	DueDate     time.Time
	Completed   bool
	CreatedAt   time.Time
}

// TaskFilter narrows a task listing. Zero values mean "no constraint":
// a nil Completed, empty Priority, zero CategoryID, and empty CreatedDate
// each impose nothing. Filters compose with logical AND.
type TaskFilter struct {
	Page        int
	Limit       int
	Completed   *bool
	Priority    Priority
	CategoryID  int64
	CreatedDate string // YYYY-MM-DD, compared against the calendar date of CreatedAt
}

// TaskUpdate carries the fields that may be mutated through the update
// operation. Nil fields are left untouched; with every field nil there is
// nothing to update.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *Priority
	DueDate     *time.Time
	CategoryID  *int64
	Completed   *bool
}

// Empty reports whether no field is set.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Priority == nil &&
		u.DueDate == nil && u.CategoryID == nil && u.Completed == nil
}

// TaskSegments holds the aggregate counts over one owner's full task set.
type TaskSegments struct {
	Total        int
	Completed    int
	Pending      int
	HighPriority int
}

// TaskRepository defines persistence operations for tasks. Update and
// Delete match on both task ID and owner, so a cross-owner attempt is
// indistinguishable from a missing task and yields ErrNotFound.
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, userID, taskID int64) (*Task, error)
	ListByUser(ctx context.Context, userID int64, filter TaskFilter) ([]Task, error)
	AllByUser(ctx context.Context, userID int64) ([]Task, error)
	Update(ctx context.Context, userID, taskID int64, update TaskUpdate) (*Task, error)
	Delete(ctx context.Context, userID, taskID int64) error
}
