package helpers

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/pkg/errors"
)

// order ids are opaque to the storefront but must be safe to embed in a URL path
var orderIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

func GenerateNewID() uuid.UUID {
	return uuid.New()
}

func IsValidUUID(u string) bool {
	_, err := uuid.Parse(u)
	return err == nil
}

func IsValidOrderID(id string) bool {
	return orderIDPattern.MatchString(id)
}

func GetOrderIDFromPathParam(c echo.Context, key string) (string, error) {
	val := c.Param(key)
	if val == "" || !IsValidOrderID(val) {
		return "", errors.ErrInvalidRequestPayload
	}

	return val, nil
}
