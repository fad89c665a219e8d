package middleware

import (
	"mime"
	"net/http"

	"venue-marketplace/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// RequireJSONBody rejects write requests whose body is not declared as JSON.
// Requests without a body pass through untouched.
func RequireJSONBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		if c.Request.ContentLength == 0 || c.Request.Body == nil || c.Request.Body == http.NoBody {
			c.Next()
			return
		}

		mediaType, _, err := mime.ParseMediaType(c.GetHeader("Content-Type"))
		if err != nil || mediaType != gin.MIMEJSON {
			httperr.Abort(c, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		c.Next()
	}
}
