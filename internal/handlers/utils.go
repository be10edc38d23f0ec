package handlers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseUUIDParam parses a UUID path parameter
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	param := c.Param(name)
	if param == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}

	id, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s format", name)
	}

	return id, nil
}
