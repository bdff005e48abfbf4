package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"recordstore/internal/dto"
	apierrors "recordstore/internal/errors"
	"recordstore/internal/models"
	"recordstore/internal/services"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns all tasks.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks()
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponses(tasks))
}

// CreateTask creates a new task. A dangling assign_to reference is stored as
// null rather than failing the request.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Title:    req.Title,
		Category: req.Category,
		AssignTo: req.AssignTo,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(*task))
}

// UpdateTask applies a partial update to a task.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		apierrors.BadRequest(c, "Invalid task id")
		return
	}

	var req dto.UpdateTaskRequest
	raw, err := bindPatchBody(c, &req)
	if err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if field := firstNullField(raw, "title", "category"); field != "" {
		apierrors.BadRequest(c, fmt.Sprintf("Field %s cannot be null", field))
		return
	}

	task, err := h.taskService.UpdateTask(id, services.UpdateTaskInput{
		Title:       req.Title,
		Category:    req.Category,
		AssignTo:    req.AssignTo,
		AssignToSet: hasJSONField(raw, "assign_to"),
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(*task))
}

// DeleteTask removes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		apierrors.BadRequest(c, "Invalid task id")
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Task id: %d deleted", id),
	})
}

// DeleteAllTasks removes every task.
func (h *TaskHandler) DeleteAllTasks(c *gin.Context) {
	if err := h.taskService.DeleteAllTasks(); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "All tasks deleted",
	})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrUnknownTaskCategory),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrTitleEmpty):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
