package params

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sportsinventory/internal/pkg/response"
)

// ID parses a positive integer path parameter. On failure it writes a 400
// and returns false.
func ID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return 0, false
	}
	return id, true
}
