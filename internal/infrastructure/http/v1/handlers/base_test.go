package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	require.NoError(t, err)
	c.Request = req
	return c
}

func TestListFilterFromQuery_Defaults(t *testing.T) {
	c := testContext(t, "")

	filter := listFilterFromQuery(NewBaseHandler(), c)

	assert.Equal(t, "", filter.Search)
	assert.Equal(t, 50, filter.Limit)
	assert.Equal(t, 0, filter.Offset)
	assert.Equal(t, "-date", filter.OrderBy)
	assert.False(t, filter.IncludeDeleted)
}

func TestListFilterFromQuery_Params(t *testing.T) {
	c := testContext(t, "search=morbi&limit=10&offset=20&orderBy=number&includeDeleted=true")

	filter := listFilterFromQuery(NewBaseHandler(), c)

	assert.Equal(t, "morbi", filter.Search)
	assert.Equal(t, 10, filter.Limit)
	assert.Equal(t, 20, filter.Offset)
	assert.Equal(t, "number", filter.OrderBy)
	assert.True(t, filter.IncludeDeleted)
}

func TestParseIntQuery_Invalid(t *testing.T) {
	c := testContext(t, "limit=abc")

	h := NewBaseHandler()
	assert.Equal(t, 50, h.ParseIntQuery(c, "limit", 50))
}
