package dto

import (
	"github.com/bugtrail/bug-tracker-api/internal/models"
	"github.com/bugtrail/bug-tracker-api/internal/repository"
)

// BugPage is one sorted slice of the bug listing plus total-count metadata.
type BugPage struct {
	Content       []models.Bug `json:"content"`
	Page          int          `json:"page"`
	Size          int          `json:"size"`
	TotalElements int64        `json:"totalElements"`
	TotalPages    int          `json:"totalPages"`
}

// NewBugPage assembles a BugPage from a page query and its results.
func NewBugPage(bugs []models.Bug, q repository.PageQuery, total int64) BugPage {
	if bugs == nil {
		bugs = []models.Bug{}
	}

	totalPages := 0
	if q.Size > 0 {
		totalPages = int((total + int64(q.Size) - 1) / int64(q.Size))
	}

	return BugPage{
		Content:       bugs,
		Page:          q.Page,
		Size:          q.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
