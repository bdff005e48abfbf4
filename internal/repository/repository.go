package repository

import (
	"recordstore/internal/models"
)

// Every repository constructor takes the *gorm.DB handle it should operate
// on. Services pass the transaction handle of the current unit of work, so a
// repository never reaches for ambient session state.

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by normalized email
	FindByEmail(email string) (*models.User, error)

	// FindAll returns every user in natural store order
	FindAll() ([]models.User, error)

	// Save persists all fields of an existing user
	Save(user *models.User) error

	// Delete removes a user and its assigned tasks
	Delete(id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// FindAll returns every task in natural store order
	FindAll() ([]models.Task, error)

	// Save persists all fields of an existing task
	Save(task *models.Task) error

	// Delete removes a task
	Delete(id uint64) error

	// DeleteAll removes every task
	DeleteAll() error
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	// Create inserts a new product
	Create(product *models.Product) error

	// FindByID finds a product by ID
	FindByID(id uint64) (*models.Product, error)

	// FindByName finds a product by name
	FindByName(name string) (*models.Product, error)

	// FindByCategory finds a product by category
	FindByCategory(category string) (*models.Product, error)

	// FindAll returns every product in natural store order
	FindAll() ([]models.Product, error)

	// Save persists all fields of an existing product
	Save(product *models.Product) error

	// Delete removes a product
	Delete(id uint64) error
}
