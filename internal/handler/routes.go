package handler

import (
	"net/http"

	"github.com/msomdec/taskdeck/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	tasks *service.TaskService,
	categories *service.CategoryService,
	loginLimiter *service.TokenBucket,
) {
	authHandler := NewAuthHandler(auth, loginLimiter)
	taskHandler := NewTaskHandler(tasks)
	categoryHandler := NewCategoryHandler(categories)

	mux.HandleFunc("GET /api/health", HandleHealth)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)

	mux.Handle("GET /api/tasks", RequireAuth(auth, http.HandlerFunc(taskHandler.HandleSegments)))
	mux.Handle("GET /api/tasks/list", RequireAuth(auth, http.HandlerFunc(taskHandler.HandleList)))
	mux.Handle("POST /api/tasks", RequireAuth(auth, http.HandlerFunc(taskHandler.HandleCreate)))
	mux.Handle("PATCH /api/tasks/{id}", RequireAuth(auth, http.HandlerFunc(taskHandler.HandleUpdate)))
	mux.Handle("DELETE /api/tasks/{id}", RequireAuth(auth, http.HandlerFunc(taskHandler.HandleDelete)))

	mux.Handle("GET /api/categories", RequireAuth(auth, http.HandlerFunc(categoryHandler.HandleList)))
}
