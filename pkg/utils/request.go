// Package utils holds small request-parsing helpers shared by controllers.
package utils

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/hooptrack/pkg/responses"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// ParseIDParam reads a positive uint path parameter. On failure it writes a
// 400 and returns false.
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		responses.SendError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// Pagination reads page and limit, clamping them to sane values.
func Pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// OptionalUint reads an optional uint query parameter. A malformed value
// writes a 400 and returns ok=false.
func OptionalUint(c *gin.Context, name string) (value *uint, ok bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid "+name)
		return nil, false
	}
	v := uint(id)
	return &v, true
}

// OptionalBool reads an optional boolean query parameter.
func OptionalBool(c *gin.Context, name string) (value *bool, ok bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid "+name)
		return nil, false
	}
	return &b, true
}
