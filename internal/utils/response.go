package utils

import "github.com/gofiber/fiber/v2"

// Respond sends a JSON response with the specified status code.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Success sends a successful JSON response.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, data)
}

// Created sends a JSON response with status 201.
func Created(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusCreated, data)
}

// Fail sends a JSON error body carrying a stable error kind and a
// human-readable message.
func Fail(c *fiber.Ctx, status int, kind, message string) error {
	return Respond(c, status, fiber.Map{"error": kind, "message": message})
}

// BadRequest sends a JSON error response with status 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusBadRequest, "BadRequest", message)
}

// Unauthorized sends a JSON error response with status 401.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusUnauthorized, "Unauthorized", message)
}

// Forbidden sends a JSON error response with status 403.
func Forbidden(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusForbidden, "Forbidden", message)
}

// NotFound sends a JSON error response with status 404.
func NotFound(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusNotFound, "NotFound", message)
}

// Conflict sends a JSON error response with status 409. Callers should
// re-fetch the current state and retry once.
func Conflict(c *fiber.Ctx, kind, message string) error {
	return Fail(c, fiber.StatusConflict, kind, message)
}

// PreconditionFailed sends a JSON error response with status 412, naming
// the precondition that failed so the UI can direct the user.
func PreconditionFailed(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusPreconditionFailed, "PreconditionFailed", message)
}

// BadGateway sends a JSON error response with status 502 for provider
// outages; safe to retry once the underlying cause is resolved.
func BadGateway(c *fiber.Ctx, kind, message string) error {
	return Fail(c, fiber.StatusBadGateway, kind, message)
}

// InternalError sends a JSON error response with status 500.
func InternalError(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusInternalServerError, "InternalError", message)
}
