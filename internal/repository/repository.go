package repository

import (
	"github.com/bugtrail/bug-tracker-api/internal/models"
)

// UserRepository defines the interface for credential data access
type UserRepository interface {
	// Create persists a new user and assigns its ID
	Create(user *models.User) error

	// ExistsByEmail reports whether a user with the email is registered
	ExistsByEmail(email string) (bool, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// PageQuery describes one page of a sorted bug listing. Page is zero-based.
type PageQuery struct {
	Page      int
	Size      int
	SortBy    string
	Direction string
}

// BugRepository defines the interface for bug data access
type BugRepository interface {
	// Create persists a new bug and assigns its ID
	Create(bug *models.Bug) error

	// FindByID finds a bug by ID
	FindByID(id uint64) (*models.Bug, error)

	// FindAll retrieves every bug
	FindAll() ([]models.Bug, error)

	// FindByStatus retrieves bugs whose status matches exactly
	FindByStatus(status string) ([]models.Bug, error)

	// FindPage retrieves one sorted page of bugs plus the total count
	FindPage(q PageQuery) ([]models.Bug, int64, error)

	// Update saves all fields of an existing bug
	Update(bug *models.Bug) error

	// Delete removes a bug by ID; deleting an absent ID is not an error
	Delete(id uint64) error
}
