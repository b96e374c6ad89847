package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bugtrail/bug-tracker-api/internal/models"
	"github.com/bugtrail/bug-tracker-api/internal/repository"
)

var (
	ErrBugNotFound = errors.New("bug not found")
	// ErrUnknownAttachmentType is returned when an attachment operation names
	// a kind other than image or document, or the bug has no such list.
	ErrUnknownAttachmentType = errors.New("unknown attachment type")
)

// BugService owns the bug lifecycle, including the attachment merge rules
// applied on update.
type BugService struct {
	bugs repository.BugRepository
}

// NewBugService creates a new BugService.
func NewBugService(bugs repository.BugRepository) *BugService {
	return &BugService{bugs: bugs}
}

// AddBug persists a new bug. Attachment lists must already contain
// storage-generated names.
func (s *BugService) AddBug(bug *models.Bug) (*models.Bug, error) {
	if err := s.bugs.Create(bug); err != nil {
		return nil, fmt.Errorf("failed to create bug: %w", err)
	}
	return bug, nil
}

// GetAllBugs retrieves every bug.
func (s *BugService) GetAllBugs() ([]models.Bug, error) {
	return s.bugs.FindAll()
}

// GetBugsByStatus retrieves bugs whose status equals the literal string.
func (s *BugService) GetBugsByStatus(status string) ([]models.Bug, error) {
	return s.bugs.FindByStatus(status)
}

// GetBugByID retrieves one bug, or ErrBugNotFound.
func (s *BugService) GetBugByID(id uint64) (*models.Bug, error) {
	bug, err := s.bugs.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBugNotFound
		}
		return nil, fmt.Errorf("failed to find bug: %w", err)
	}
	return bug, nil
}

// UpdateBug replaces the scalar fields of an existing bug with those of
// changes and merges attachments: existing names are preserved in order,
// newly stored names are appended. Returns ErrBugNotFound if the id is
// absent.
func (s *BugService) UpdateBug(id uint64, changes *models.Bug, newImages, newDocuments []string) (*models.Bug, error) {
	bug, err := s.GetBugByID(id)
	if err != nil {
		return nil, err
	}

	bug.Title = changes.Title
	bug.Description = changes.Description
	bug.Status = changes.Status
	bug.Priority = changes.Priority
	bug.Reporter = changes.Reporter
	bug.CreatedDate = changes.CreatedDate

	bug.ImageURLs = append(bug.ImageURLs, newImages...)
	bug.DocumentURLs = append(bug.DocumentURLs, newDocuments...)

	if err := s.bugs.Update(bug); err != nil {
		return nil, fmt.Errorf("failed to update bug: %w", err)
	}

	return bug, nil
}

// RemoveAttachment drops filename from the named list (kind is "image" or
// "document", case-insensitive) and persists the bug. The caller is
// responsible for deleting the stored file. A filename not present in the
// list is not an error; the bug is persisted unchanged.
func (s *BugService) RemoveAttachment(id uint64, filename, kind string) (*models.Bug, error) {
	bug, err := s.GetBugByID(id)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(kind) {
	case "image":
		if bug.ImageURLs == nil {
			return nil, ErrUnknownAttachmentType
		}
		bug.ImageURLs = removeName(bug.ImageURLs, filename)
	case "document":
		if bug.DocumentURLs == nil {
			return nil, ErrUnknownAttachmentType
		}
		bug.DocumentURLs = removeName(bug.DocumentURLs, filename)
	default:
		return nil, ErrUnknownAttachmentType
	}

	if err := s.bugs.Update(bug); err != nil {
		return nil, fmt.Errorf("failed to update bug: %w", err)
	}

	return bug, nil
}

// DeleteBug removes the record; deleting an absent id is not an error.
// File cleanup happens at the API layer before this call.
func (s *BugService) DeleteBug(id uint64) error {
	if err := s.bugs.Delete(id); err != nil {
		return fmt.Errorf("failed to delete bug: %w", err)
	}
	return nil
}

// GetBugsPaginated retrieves one sorted page of bugs plus the total count.
func (s *BugService) GetBugsPaginated(q repository.PageQuery) ([]models.Bug, int64, error) {
	return s.bugs.FindPage(q)
}

func removeName(names []string, target string) []string {
	out := names[:0]
	for _, n := range names {
		if n != target {
			out = append(out, n)
		}
	}
	return out
}
