package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"recordstore/internal/models"
	"recordstore/internal/repository"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTitleRequired = errors.New("title is required")
	ErrTitleEmpty    = errors.New("title cannot be empty")
)

// TaskService handles task business logic
type TaskService struct {
	db *gorm.DB
}

// NewTaskService creates a new TaskService
func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title    string
	Category string
	AssignTo *uint64
}

// UpdateTaskInput represents input for updating a task. Nil fields were not
// supplied, except AssignTo: AssignToSet records whether the payload carried
// the field, so an explicit null can clear the assignment.
type UpdateTaskInput struct {
	Title       *string
	Category    *string
	AssignTo    *uint64
	AssignToSet bool
}

// CreateTask creates a new task, resolving the optional assignee reference.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	category, err := models.ParseTaskCategory(input.Category)
	if err != nil {
		return nil, err
	}

	var task *models.Task
	err = s.db.Transaction(func(tx *gorm.DB) error {
		tasks := repository.NewTaskRepository(tx)
		users := repository.NewUserRepository(tx)

		assignTo, err := resolveAssignee(users, input.AssignTo)
		if err != nil {
			return err
		}

		task = &models.Task{
			Title:    title,
			Category: category,
			AssignTo: assignTo,
		}
		if err := tasks.Create(task); err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		created, err := tasks.FindByID(task.ID)
		if err != nil {
			return fmt.Errorf("failed to reload task: %w", err)
		}
		task = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// UpdateTask applies the supplied fields to an existing task.
func (s *TaskService) UpdateTask(id uint64, input UpdateTaskInput) (*models.Task, error) {
	var task *models.Task
	err := s.db.Transaction(func(tx *gorm.DB) error {
		tasks := repository.NewTaskRepository(tx)
		users := repository.NewUserRepository(tx)

		found, err := tasks.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
			}
			return fmt.Errorf("failed to find task: %w", err)
		}
		task = found

		if input.Title != nil {
			title := strings.TrimSpace(*input.Title)
			if title == "" {
				return ErrTitleEmpty
			}
			task.Title = title
		}
		if input.Category != nil {
			category, err := models.ParseTaskCategory(*input.Category)
			if err != nil {
				return err
			}
			task.Category = category
		}
		if input.AssignToSet {
			assignTo, err := resolveAssignee(users, input.AssignTo)
			if err != nil {
				return err
			}
			task.AssignTo = assignTo
		}

		if err := tasks.Save(task); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// ListTasks returns all tasks.
func (s *TaskService) ListTasks() ([]models.Task, error) {
	tasks, err := repository.NewTaskRepository(s.db).FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// DeleteTask removes a task.
func (s *TaskService) DeleteTask(id uint64) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return repository.NewTaskRepository(tx).Delete(id)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// DeleteAllTasks removes every task.
func (s *TaskService) DeleteAllTasks() error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return repository.NewTaskRepository(tx).DeleteAll()
	})
	if err != nil {
		return fmt.Errorf("failed to delete tasks: %w", err)
	}
	return nil
}

// resolveAssignee resolves the assign_to reference against the user store.
// A missing referent coerces the reference to null instead of failing the
// write; zero is the "no assignment" sentinel and never hits the store.
func resolveAssignee(users repository.UserRepository, assignTo *uint64) (*uint64, error) {
	if assignTo == nil || *assignTo == 0 {
		return nil, nil
	}

	if _, err := users.FindByID(*assignTo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve assignee: %w", err)
	}

	return assignTo, nil
}
