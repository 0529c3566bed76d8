package v1

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

// bindBody decodes the JSON request body into a raw map so the validation
// layer can distinguish omitted fields from explicit nulls. An empty body
// validates like an empty object; only malformed JSON is rejected.
func bindBody(c *gin.Context) (map[string]any, bool) {
	body := map[string]any{}
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		return nil, false
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, true
}

// productID parses the :id route parameter. Non-numeric ids behave like ids
// that match no product.
func productID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
