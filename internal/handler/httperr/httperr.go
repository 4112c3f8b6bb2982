// Package httperr defines the error envelope shared by all API
// responses. Handlers attach the original error to the gin context so the
// logging middleware can report it; clients only see the message and an
// optional detail payload (e.g. the blocking contracts on a window
// conflict).
package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the envelope and aborts the handler chain. err may
// be nil when there is no underlying cause worth logging (e.g. a missing
// auth header).
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
