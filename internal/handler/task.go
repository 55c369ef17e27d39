package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/msomdec/taskdeck/internal/domain"
	"github.com/msomdec/taskdeck/internal/service"
)

// TaskHandler handles task-related HTTP requests. All routes require an
// authenticated user in the request context.
type TaskHandler struct {
	tasks *service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// HandleCreate processes task creation.
// POST /api/tasks
// Request:  {"title":"...","description":"...","priority":"high","due_date":"2024-01-01","category_id":1}
// Response: 201 task JSON
func (h *TaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
		DueDate     string `json:"due_date"`
		CategoryID  int64  `json:"category_id"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "due_date must be YYYY-MM-DD.")
		return
	}

	task := &domain.Task{
		UserID:      user.ID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.Priority(req.Priority),
		DueDate:     dueDate,
	}

	created, err := h.tasks.Create(r.Context(), task)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("create task", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to add task.")
		return
	}

	writeJSON(w, http.StatusCreated, toTaskDTO(created))
}

// HandleSegments returns the aggregate summary plus the full task list.
// GET /api/tasks
// Response: 200 {"total":N,"completed":N,"pending":N,"high_priority":N,"tasks":[...]}
func (h *TaskHandler) HandleSegments(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	seg, tasks, err := h.tasks.Segments(r.Context(), user.ID)
	if err != nil {
		slog.Error("task segments", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch tasks.")
		return
	}

	writeJSON(w, http.StatusOK, toSegmentsDTO(seg, tasks))
}

// HandleList returns the filtered, paginated task list.
// GET /api/tasks/list?page=&limit=&completed=&priority=&category_id=&created_date=
// Response: 200 [task JSON...]
func (h *TaskHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	filter, err := parseTaskFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tasks, err := h.tasks.List(r.Context(), user.ID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("list tasks", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch tasks.")
		return
	}

	writeJSON(w, http.StatusOK, toTaskDTOs(tasks))
}

// HandleUpdate applies the allow-listed fields from the request body to
// the caller's task.
// PATCH /api/tasks/{id}
// Response: 200 task JSON, or 404 when the task is absent, not owned by
// the caller, or the body carries nothing to update.
func (h *TaskHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	taskID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task id.")
		return
	}

	// Pointer fields distinguish absent keys from zero values; keys
	// outside this set are dropped by the decoder.
	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Priority    *string `json:"priority"`
		DueDate     *string `json:"due_date"`
		CategoryID  *int64  `json:"category_id"`
		Completed   *bool   `json:"completed"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	update := domain.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Completed:   req.Completed,
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		update.Priority = &p
	}
	if req.DueDate != nil {
		due, err := time.Parse(dateLayout, *req.DueDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "due_date must be YYYY-MM-DD.")
			return
		}
		update.DueDate = &due
	}

	task, err := h.tasks.Update(r.Context(), user.ID, taskID, update)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task not found or nothing to update.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("update task", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update task.")
		return
	}

	writeJSON(w, http.StatusOK, toTaskDTO(task))
}

// HandleDelete removes the caller's task.
// DELETE /api/tasks/{id}
// Response: 204, or 404 when absent or not owned.
func (h *TaskHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	taskID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task id.")
		return
	}

	if err := h.tasks.Delete(r.Context(), user.ID, taskID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task not found.")
			return
		}
		slog.Error("delete task", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete task.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseTaskFilter(r *http.Request) (domain.TaskFilter, error) {
	q := r.URL.Query()
	var filter domain.TaskFilter

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return filter, errors.New("page must be an integer")
		}
		filter.Page = page
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return filter, errors.New("limit must be an integer")
		}
		// An explicit limit must be usable as-is; only an absent param
		// falls back to the default page size.
		if limit <= 0 {
			return filter, errors.New("limit must be positive")
		}
		filter.Limit = limit
	}
	if v := q.Get("completed"); v != "" {
		completed, err := strconv.ParseBool(v)
		if err != nil {
			return filter, errors.New("completed must be true or false")
		}
		filter.Completed = &completed
	}
	if v := q.Get("priority"); v != "" {
		filter.Priority = domain.Priority(v)
	}
	if v := q.Get("category_id"); v != "" {
		categoryID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, errors.New("category_id must be an integer")
		}
		filter.CategoryID = categoryID
	}
	filter.CreatedDate = q.Get("created_date")

	return filter, nil
}
