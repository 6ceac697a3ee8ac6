package handlers

import (
	"fmt"

	"crm-service/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// parseUUIDParam reads a path parameter as a UUID. On failure the error
// response has already been written and ok is false.
func parseUUIDParam(c echo.Context, name string, code errors.ErrorCode) (id uuid.UUID, ok bool, err error) {
	id, parseErr := uuid.Parse(c.Param(name))
	if parseErr != nil {
		return uuid.Nil, false, SendError(c, code)
	}
	return id, true, nil
}

// bindAndValidate binds the request into req and runs the validator. On
// failure the error response has already been written and ok is false.
func bindAndValidate(c echo.Context, req interface{}) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return false, SendValidationError(c, err)
	}
	return true, nil
}
