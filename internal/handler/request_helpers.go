package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/sma-adp-api/pkg/errors"
	"github.com/noah-isme/sma-adp-api/pkg/response"
)

// bindJSON decodes the request body into dest, writing a 400 validation
// error envelope and reporting failure so the caller can return early.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return false
	}
	return true
}

// listParams holds the page/size/sort query parameters shared by every
// list endpoint's filter struct.
type listParams struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// parseListParams reads page/limit/sort/order from the query string,
// defaulting page to 1 and limit to defaultSize.
func parseListParams(c *gin.Context, defaultSize int) listParams {
	params := listParams{Page: 1, PageSize: defaultSize}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		params.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultSize))); err == nil {
		params.PageSize = size
	}
	params.SortBy = c.Query("sort")
	params.SortOrder = c.Query("order")
	return params
}

// boolQueryParam parses a tri-state boolean query param ("true"/"false"),
// returning nil when absent or unrecognized so filters can distinguish
// "not specified" from an explicit value.
func boolQueryParam(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	switch {
	case strings.EqualFold(raw, "true"):
		val := true
		return &val
	case strings.EqualFold(raw, "false"):
		val := false
		return &val
	default:
		return nil
	}
}
