package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawansinha0612/indian-stock-api/internal/domain/dto"
	"github.com/pawansinha0612/indian-stock-api/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors attached to the
// context via c.Error() into a standardized JSON error response.
//
// Behavior:
//   - Lets the handler chain run first.
//   - If any errors were collected and no response was written yet,
//     responds with 500 and the last error wrapped in dto.ErrorResponse.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().
		Err(err).
		Str("path", c.Request.URL.Path).
		Msg("request failed")

	if !c.Writer.Written() {
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
	}
}

// AbortWithError terminates the request with the given status code and a
// standardized JSON error body.
//
// Parameters:
//   - c: the active Gin context.
//   - status: HTTP status code to return.
//   - message: user-facing error description.
//   - err: underlying error, included as details (may be nil).
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
