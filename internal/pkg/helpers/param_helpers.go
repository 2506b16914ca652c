package helpers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseIDParam reads a positive integer id from the named path parameter.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	return ParseID(c.Param(name))
}

// ParseID parses a positive integer id.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
