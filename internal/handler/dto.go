package handler

import (
	"time"

	"github.com/msomdec/taskdeck/internal/domain"
)

const dateLayout = "2006-01-02"

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CreatedAt string `json:"created_at"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// TaskDTO is the JSON representation of a task.
type TaskDTO struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	CategoryID  int64  `json:"category_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
}

func toTaskDTO(t *domain.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID,
		UserID:      t.UserID,
		CategoryID:  t.CategoryID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		DueDate:     t.DueDate.Format(dateLayout),
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

func toTaskDTOs(tasks []domain.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i := range tasks {
		dtos[i] = toTaskDTO(&tasks[i])
	}
	return dtos
}

// SegmentsDTO is the JSON representation of the per-owner task summary.
type SegmentsDTO struct {
	Total        int       `json:"total"`
	Completed    int       `json:"completed"`
	Pending      int       `json:"pending"`
	HighPriority int       `json:"high_priority"`
	Tasks        []TaskDTO `json:"tasks"`
}

func toSegmentsDTO(seg domain.TaskSegments, tasks []domain.Task) SegmentsDTO {
	return SegmentsDTO{
		Total:        seg.Total,
		Completed:    seg.Completed,
		Pending:      seg.Pending,
		HighPriority: seg.HighPriority,
		Tasks:        toTaskDTOs(tasks),
	}
}

// CategoryDTO is the JSON representation of a category.
type CategoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toCategoryDTOs(categories []domain.Category) []CategoryDTO {
	dtos := make([]CategoryDTO, len(categories))
	for i, c := range categories {
		dtos[i] = CategoryDTO{ID: c.ID, Name: c.Name}
	}
	return dtos
}
