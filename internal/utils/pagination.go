package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bugtrail/bug-tracker-api/internal/constants"
	"github.com/bugtrail/bug-tracker-api/internal/repository"
)

// GetPageQuery extracts and validates page/size/sortBy/direction query
// parameters. Pages are zero-based; defaultSize differs between the main
// and the legacy paginated endpoints.
func GetPageQuery(c *gin.Context, defaultSize int) repository.PageQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultSize)))

	if page < 0 {
		page = 0
	}
	if size < 1 || size > constants.MaxPageSize {
		size = defaultSize
	}

	return repository.PageQuery{
		Page:      page,
		Size:      size,
		SortBy:    c.DefaultQuery("sortBy", constants.DefaultSortField),
		Direction: c.DefaultQuery("direction", constants.DefaultSortDirection),
	}
}
