package service

import (
	"context"
	"fmt"
	"time"

	"github.com/msomdec/taskdeck/internal/domain"
)

const (
	maxTitleLen       = 255
	maxDescriptionLen = 1000
)

// TaskService validates task input and orchestrates the task repository.
type TaskService struct {
	tasks      domain.TaskRepository
	categories domain.CategoryRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks domain.TaskRepository, categories domain.CategoryRepository) *TaskService {
	return &TaskService{tasks: tasks, categories: categories}
}

// Create validates the input, verifies the referenced category exists,
// and persists a new task with completed defaulted to false.
func (s *TaskService) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if len(task.Title) == 0 || len(task.Title) > maxTitleLen {
		return nil, fmt.Errorf("%w: title must be between 1 and %d characters", domain.ErrInvalidInput, maxTitleLen)
	}
	if len(task.Description) > maxDescriptionLen {
		return nil, fmt.Errorf("%w: description must be at most %d characters", domain.ErrInvalidInput, maxDescriptionLen)
	}
	if !task.Priority.Valid() {
		return nil, fmt.Errorf("%w: priority must be low, medium, or high", domain.ErrInvalidInput)
	}
	if task.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: due date is required", domain.ErrInvalidInput)
	}

	exists, err := s.categories.Exists(ctx, task.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: category does not exist", domain.ErrInvalidInput)
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// List returns the owner's tasks matching the filter. Page values at or
// below zero fall back to the first page. A zero limit means the caller
// left it unset and defaults to 10; negative limits are rejected rather
// than passed through as an unbounded SQLite LIMIT.
func (s *TaskService) List(ctx context.Context, userID int64, filter domain.TaskFilter) ([]domain.Task, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidInput)
	}
	if filter.Limit == 0 {
		filter.Limit = 10
	}
	if filter.Priority != "" && !filter.Priority.Valid() {
		return nil, fmt.Errorf("%w: priority must be low, medium, or high", domain.ErrInvalidInput)
	}
	if filter.CreatedDate != "" {
		if _, err := time.Parse("2006-01-02", filter.CreatedDate); err != nil {
			return nil, fmt.Errorf("%w: created_date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
	}

	tasks, err := s.tasks.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Segments loads the owner's full task set in one unfiltered fetch and
// computes the aggregate counts in memory.
func (s *TaskService) Segments(ctx context.Context, userID int64) (domain.TaskSegments, []domain.Task, error) {
	tasks, err := s.tasks.AllByUser(ctx, userID)
	if err != nil {
		return domain.TaskSegments{}, nil, fmt.Errorf("load tasks: %w", err)
	}

	var seg domain.TaskSegments
	seg.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			seg.Completed++
		} else {
			seg.Pending++
		}
		if t.Priority == domain.PriorityHigh {
			seg.HighPriority++
		}
	}
	return seg, tasks, nil
}

// Update validates the provided fields and applies them to the owner's
// task. An update carrying no recognized fields reports ErrNotFound
// without touching storage, matching the not-found signal for a missing
// task. Category existence is not re-validated on update.
func (s *TaskService) Update(ctx context.Context, userID, taskID int64, update domain.TaskUpdate) (*domain.Task, error) {
	if update.Empty() {
		return nil, domain.ErrNotFound
	}

	if update.Title != nil && (len(*update.Title) == 0 || len(*update.Title) > maxTitleLen) {
		return nil, fmt.Errorf("%w: title must be between 1 and %d characters", domain.ErrInvalidInput, maxTitleLen)
	}
	if update.Description != nil && len(*update.Description) > maxDescriptionLen {
		return nil, fmt.Errorf("%w: description must be at most %d characters", domain.ErrInvalidInput, maxDescriptionLen)
	}
	if update.Priority != nil && !update.Priority.Valid() {
		return nil, fmt.Errorf("%w: priority must be low, medium, or high", domain.ErrInvalidInput)
	}

	task, err := s.tasks.Update(ctx, userID, taskID, update)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes the owner's task. Deleting a task that is absent or
// owned by someone else reports ErrNotFound either way.
func (s *TaskService) Delete(ctx context.Context, userID, taskID int64) error {
	return s.tasks.Delete(ctx, userID, taskID)
}
