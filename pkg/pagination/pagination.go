package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	MinLimit     = 1
)

// Params holds validated pagination parameters
type Params struct {
	Page   int
	Limit  int
	Offset int
}

// Meta is the pagination block returned alongside list results
type Meta struct {
	Current  int   `json:"current"`
	PageSize int   `json:"pageSize"`
	Pages    int   `json:"pages"`
	Total    int64 `json:"total"`
}

// Parse extracts and validates current/pageSize from query parameters.
// The legacy page/limit names are accepted as fallbacks.
func Parse(c *gin.Context) Params {
	page, _ := strconv.Atoi(c.DefaultQuery("current", c.DefaultQuery("page", strconv.Itoa(DefaultPage))))
	limit, _ := strconv.Atoi(c.DefaultQuery("pageSize", c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))))

	if page < 1 {
		page = DefaultPage
	}
	if limit < MinLimit {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// MetaFor computes the meta block for a result set of total rows.
func (p Params) MetaFor(total int64) Meta {
	pages := int(total) / p.Limit
	if int(total)%p.Limit != 0 {
		pages++
	}
	return Meta{
		Current:  p.Page,
		PageSize: p.Limit,
		Pages:    pages,
		Total:    total,
	}
}
