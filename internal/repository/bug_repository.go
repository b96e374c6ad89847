package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/bugtrail/bug-tracker-api/internal/database"
	"github.com/bugtrail/bug-tracker-api/internal/models"
)

// sortColumns whitelists client-facing sort keys against actual columns.
var sortColumns = map[string]string{
	"bugId":       "id",
	"id":          "id",
	"title":       "title",
	"status":      "status",
	"priority":    "priority",
	"reporter":    "reporter",
	"createdDate": "created_date",
}

// GormBugRepository is a GORM implementation of BugRepository
type GormBugRepository struct {
	db *gorm.DB
}

// NewBugRepository creates a new BugRepository
func NewBugRepository(db *gorm.DB) BugRepository {
	return &GormBugRepository{db: db}
}

// Create persists a new bug
func (r *GormBugRepository) Create(bug *models.Bug) error {
	return r.db.Create(bug).Error
}

// FindByID finds a bug by ID
func (r *GormBugRepository) FindByID(id uint64) (*models.Bug, error) {
	var bug models.Bug
	if err := r.db.First(&bug, id).Error; err != nil {
		return nil, err
	}
	return &bug, nil
}

// FindAll retrieves every bug
func (r *GormBugRepository) FindAll() ([]models.Bug, error) {
	var bugs []models.Bug
	if err := r.db.Find(&bugs).Error; err != nil {
		return nil, err
	}
	return bugs, nil
}

// FindByStatus retrieves bugs whose status matches the literal string.
func (r *GormBugRepository) FindByStatus(status string) ([]models.Bug, error) {
	var bugs []models.Bug
	if err := r.db.Where("status = ?", status).Find(&bugs).Error; err != nil {
		return nil, err
	}
	return bugs, nil
}

// FindPage retrieves one sorted page of bugs plus the total count. Unknown
// sort keys fall back to created_date; any direction other than asc sorts
// descending.
func (r *GormBugRepository) FindPage(q PageQuery) ([]models.Bug, int64, error) {
	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = "created_date"
	}

	direction := "DESC"
	if strings.EqualFold(q.Direction, "asc") {
		direction = "ASC"
	}

	query := r.db.Model(&models.Bug{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bugs []models.Bug
	err := query.
		Order(column + " " + direction).
		Scopes(database.Paginate(q.Page, q.Size)).
		Find(&bugs).Error
	if err != nil {
		return nil, 0, err
	}

	return bugs, total, nil
}

// Update saves all fields of an existing bug
func (r *GormBugRepository) Update(bug *models.Bug) error {
	return r.db.Save(bug).Error
}

// Delete removes a bug by ID
func (r *GormBugRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Bug{}, id).Error
}
