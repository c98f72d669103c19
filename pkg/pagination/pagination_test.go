package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsFor(t *testing.T, query string) Params {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return Parse(c)
}

func TestParseDefaults(t *testing.T) {
	p := paramsFor(t, "")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestParseCurrentAndPageSize(t *testing.T) {
	p := paramsFor(t, "current=3&pageSize=20")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 40, p.Offset)
}

func TestParseLegacyNames(t *testing.T) {
	p := paramsFor(t, "page=2&limit=5")
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 5, p.Limit)
}

func TestParseClampsBadValues(t *testing.T) {
	p := paramsFor(t, "current=-1&pageSize=0")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)

	p = paramsFor(t, "pageSize=5000")
	assert.Equal(t, MaxLimit, p.Limit)
}

func TestMetaForRoundsPagesUp(t *testing.T) {
	p := Params{Page: 2, Limit: 10}
	meta := p.MetaFor(25)

	assert.Equal(t, 2, meta.Current)
	assert.Equal(t, 10, meta.PageSize)
	assert.Equal(t, 3, meta.Pages)
	assert.Equal(t, int64(25), meta.Total)
}

func TestMetaForEmptyResult(t *testing.T) {
	meta := Params{Page: 1, Limit: 10}.MetaFor(0)
	assert.Equal(t, 0, meta.Pages)
	assert.Equal(t, int64(0), meta.Total)
}
