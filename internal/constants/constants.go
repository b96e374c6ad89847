package constants

const (
	// ContextKeyUserEmail is the gin context key for the authenticated user's email.
	ContextKeyUserEmail = "user_email"

	// DefaultPageSize is the page size for GET /bugs.
	DefaultPageSize = 10
	// LegacyPageSize is the page size for the legacy GET /bugs/paginated endpoint.
	LegacyPageSize = 5
	// MaxPageSize caps client-requested page sizes.
	MaxPageSize = 100

	// DefaultSortField is the default sort key for paginated listings.
	DefaultSortField = "createdDate"
	// DefaultSortDirection is the default sort direction for paginated listings.
	DefaultSortDirection = "desc"
)
