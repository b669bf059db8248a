package response

import "github.com/gin-gonic/gin"

// Success writes the success envelope with a payload
func Success(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, ApiResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Error writes the error envelope and matching status code
func Error(c *gin.Context, code int, err string) {
	c.JSON(code, ErrorResponse{
		Success: false,
		Error:   err,
		Code:    code,
	})
}

// AbortError writes the error envelope and stops the handler chain
func AbortError(c *gin.Context, code int, err string) {
	c.AbortWithStatusJSON(code, ErrorResponse{
		Success: false,
		Error:   err,
		Code:    code,
	})
}
