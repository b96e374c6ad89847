package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/bugtrail/bug-tracker-api/internal/constants"
	"github.com/bugtrail/bug-tracker-api/internal/dto"
	apierrors "github.com/bugtrail/bug-tracker-api/internal/errors"
	"github.com/bugtrail/bug-tracker-api/internal/logger"
	"github.com/bugtrail/bug-tracker-api/internal/models"
	"github.com/bugtrail/bug-tracker-api/internal/services"
	"github.com/bugtrail/bug-tracker-api/internal/storage"
	"github.com/bugtrail/bug-tracker-api/internal/utils"
)

// BugHandler coordinates the bug CRUD endpoints and their file uploads.
type BugHandler struct {
	bugService *services.BugService
	storage    *storage.Storage
}

// NewBugHandler creates a new BugHandler.
func NewBugHandler(bugService *services.BugService, store *storage.Storage) *BugHandler {
	return &BugHandler{
		bugService: bugService,
		storage:    store,
	}
}

// CreateBug handles multipart bug creation: a "bug" JSON part plus optional
// "images" and "documents" file parts. Attachment lists are built from the
// stored files only; client-supplied list values are discarded.
func (h *BugHandler) CreateBug(c *gin.Context) {
	bug, ok := h.bindBugPart(c)
	if !ok {
		return
	}
	bug.ID = 0

	images, documents := formFiles(c)

	imageNames, err := h.storeUploads(images)
	if err != nil {
		logger.Logger.Error("failed to store images", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	documentNames, err := h.storeUploads(documents)
	if err != nil {
		logger.Logger.Error("failed to store documents", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	bug.ImageURLs = datatypes.NewJSONSlice(imageNames)
	bug.DocumentURLs = datatypes.NewJSONSlice(documentNames)

	saved, err := h.bugService.AddBug(bug)
	if err != nil {
		logger.Logger.Error("failed to create bug", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// ListBugs returns a status-filtered list when the status query parameter is
// present and not "all", and a sorted page otherwise.
func (h *BugHandler) ListBugs(c *gin.Context) {
	status := c.Query("status")
	if status != "" && status != "all" {
		bugs, err := h.bugService.GetBugsByStatus(status)
		if err != nil {
			logger.Logger.Error("failed to list bugs by status", "status", status, "error", err)
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, bugs)
		return
	}

	h.respondPage(c, constants.DefaultPageSize)
}

// ListBugsPaginated is the legacy paginated endpoint with a smaller default
// page size.
func (h *BugHandler) ListBugsPaginated(c *gin.Context) {
	h.respondPage(c, constants.LegacyPageSize)
}

// GetBug returns one bug by id, or 404.
func (h *BugHandler) GetBug(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	bug, err := h.bugService.GetBugByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBugNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		logger.Logger.Error("failed to fetch bug", "id", id, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, bug)
}

// GetBugsByStatus returns the unpaginated list of bugs matching the status
// path segment.
func (h *BugHandler) GetBugsByStatus(c *gin.Context) {
	bugs, err := h.bugService.GetBugsByStatus(c.Param("status"))
	if err != nil {
		logger.Logger.Error("failed to list bugs by status", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, bugs)
}

// UpdateBug replaces a bug's scalar fields and appends newly uploaded
// attachments to the existing lists.
func (h *BugHandler) UpdateBug(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// 404 before any file is written
	if _, err := h.bugService.GetBugByID(id); err != nil {
		if errors.Is(err, services.ErrBugNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		logger.Logger.Error("failed to fetch bug", "id", id, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	changes, ok := h.bindBugPart(c)
	if !ok {
		return
	}

	images, documents := formFiles(c)

	imageNames, err := h.storeUploads(images)
	if err != nil {
		logger.Logger.Error("failed to store images", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	documentNames, err := h.storeUploads(documents)
	if err != nil {
		logger.Logger.Error("failed to store documents", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	updated, err := h.bugService.UpdateBug(id, changes, imageNames, documentNames)
	if err != nil {
		if errors.Is(err, services.ErrBugNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		logger.Logger.Error("failed to update bug", "id", id, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteBug removes every referenced file, then the record. Always responds
// 204, including for ids that never existed.
func (h *BugHandler) DeleteBug(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if bug, err := h.bugService.GetBugByID(id); err == nil {
		for _, name := range bug.AttachmentNames() {
			if _, err := h.storage.Delete(name); err != nil {
				logger.Logger.Warn("failed to delete attachment file", "name", name, "error", err)
			}
		}
	}

	if err := h.bugService.DeleteBug(id); err != nil {
		logger.Logger.Error("failed to delete bug", "id", id, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAttachment removes one filename from the bug's image or document
// list (type query parameter), deletes the stored file and persists the bug.
func (h *BugHandler) DeleteAttachment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	filename := c.Param("filename")

	_, err := h.bugService.RemoveAttachment(id, filename, c.Query("type"))
	if err != nil {
		if errors.Is(err, services.ErrBugNotFound) || errors.Is(err, services.ErrUnknownAttachmentType) {
			c.Status(http.StatusNotFound)
			return
		}
		logger.Logger.Error("failed to remove attachment", "id", id, "name", filename, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	if _, err := h.storage.Delete(filename); err != nil {
		logger.Logger.Warn("failed to delete attachment file", "name", filename, "error", err)
	}

	c.Status(http.StatusNoContent)
}

// GetAttachment serves a stored attachment file by its generated name.
func (h *BugHandler) GetAttachment(c *gin.Context) {
	path := h.storage.Resolve(c.Param("filename"))
	if _, err := os.Stat(path); err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.File(path)
}

func (h *BugHandler) respondPage(c *gin.Context, defaultSize int) {
	q := utils.GetPageQuery(c, defaultSize)

	bugs, total, err := h.bugService.GetBugsPaginated(q)
	if err != nil {
		logger.Logger.Error("failed to list bugs", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.NewBugPage(bugs, q, total))
}

// bindBugPart decodes the "bug" multipart form value into a Bug. Responds
// with 400 and returns false when the part is missing or malformed.
func (h *BugHandler) bindBugPart(c *gin.Context) (*models.Bug, bool) {
	raw := c.PostForm("bug")
	if raw == "" {
		apierrors.BadRequest(c, "Missing bug part")
		return nil, false
	}

	var bug models.Bug
	if err := json.Unmarshal([]byte(raw), &bug); err != nil {
		apierrors.BadRequest(c, "Invalid bug payload")
		return nil, false
	}

	return &bug, true
}

// storeUploads stores every non-empty file and returns the generated names
// in upload order. The result is never nil so attachment lists marshal as
// [] rather than null.
func (h *BugHandler) storeUploads(files []*multipart.FileHeader) ([]string, error) {
	names := make([]string, 0, len(files))

	for _, fh := range files {
		if fh.Size == 0 {
			continue
		}

		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}

		name, err := h.storage.Store(data, fh.Filename)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, nil
}

func formFiles(c *gin.Context) (images, documents []*multipart.FileHeader) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}
	return form.File["images"], form.File["documents"]
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid bug id")
		return 0, false
	}
	return id, true
}
