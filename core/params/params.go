package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// QueryParams carries common pagination query parameters.
type QueryParams struct {
	PageNumber int
	PageSize   int
}

// FromContext extracts pagination params with sane bounds.
func FromContext(ctx echo.Context) QueryParams {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(ctx.QueryParam("page_size"))
	if size < 1 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	return QueryParams{PageNumber: page, PageSize: size}
}
