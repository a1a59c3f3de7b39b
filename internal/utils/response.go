package utils

import "github.com/gofiber/fiber/v2"

const MsgInternalError = "Internal server error"

// ServiceResponse is the envelope every game endpoint answers with.
type ServiceResponse struct {
	Message string      `json:"message,omitempty" example:"Product added"`
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse sends a success response
func SuccessResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(ServiceResponse{
		Message: message,
		Success: true,
		Data:    data,
	})
}

// ErrorResponse sends a failure response
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(ServiceResponse{
		Message: message,
		Success: false,
	})
}

// InternalErrorResponse hides the underlying error from the caller.
func InternalErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, MsgInternalError)
}
