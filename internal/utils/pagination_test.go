package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/bugs?"+rawQuery, nil)
	return c
}

func TestGetPageQuery_Defaults(t *testing.T) {
	q := GetPageQuery(queryContext(t, ""), 10)

	require.Equal(t, 0, q.Page)
	require.Equal(t, 10, q.Size)
	require.Equal(t, "createdDate", q.SortBy)
	require.Equal(t, "desc", q.Direction)
}

func TestGetPageQuery_Explicit(t *testing.T) {
	q := GetPageQuery(queryContext(t, "page=2&size=25&sortBy=title&direction=asc"), 10)

	require.Equal(t, 2, q.Page)
	require.Equal(t, 25, q.Size)
	require.Equal(t, "title", q.SortBy)
	require.Equal(t, "asc", q.Direction)
}

func TestGetPageQuery_ClampsBadValues(t *testing.T) {
	q := GetPageQuery(queryContext(t, "page=-3&size=0"), 5)
	require.Equal(t, 0, q.Page)
	require.Equal(t, 5, q.Size)

	q = GetPageQuery(queryContext(t, "size=5000"), 5)
	require.Equal(t, 5, q.Size)
}
