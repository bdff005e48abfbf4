package dto

import (
	"time"

	"recordstore/internal/models"
)

// CreateTaskRequest is the payload for POST /tasks
type CreateTaskRequest struct {
	Title    string  `json:"title" binding:"required"`
	Category string  `json:"category" binding:"required"`
	AssignTo *uint64 `json:"assign_to"`
}

// UpdateTaskRequest is the payload for PATCH /tasks/:id. An explicit null
// assign_to clears the assignment, so presence is tracked separately by the
// handler.
type UpdateTaskRequest struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
	AssignTo *uint64 `json:"assign_to"`
}

// TaskResponse is the projection of a stored task
type TaskResponse struct {
	ID        uint64              `json:"id"`
	Title     string              `json:"title"`
	Category  models.TaskCategory `json:"category"`
	AssignTo  *uint64             `json:"assign_to"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// ToTaskResponse converts a Task model to TaskResponse
func ToTaskResponse(task models.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Category:  task.Category,
		AssignTo:  task.AssignTo,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

// ToTaskResponses converts a slice of tasks
func ToTaskResponses(tasks []models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return responses
}
