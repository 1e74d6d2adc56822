package httperr

import (
	"github.com/gin-gonic/gin"
)

// Stable machine-checkable status classes; the human-readable message may
// change freely, these may not.
const (
	CodeInvalidArgument  = "invalid_argument"
	CodeNotFound         = "not_found"
	CodeAlreadyExists    = "already_exists"
	CodeDuplicateRequest = "duplicate_request"
	CodeStoreUnavailable = "store_unavailable"
	CodeInternal         = "internal"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// preserves original error for future monitoring; storage detail never
// reaches the response body
func AbortWithError(c *gin.Context, status int, err error, code, msg string) {
	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
