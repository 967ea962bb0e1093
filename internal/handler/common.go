// Package handler contains the HTTP handlers for every API area. Handlers
// bind and validate input, call into the repository layer and map its
// sentinel errors onto HTTP responses; mutations that other clients care
// about additionally fan a message out through the relevant hub.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

var errInvalidID = errors.New("invalid id")

// pathID parses the numeric :id path parameter. On failure the 400 response
// is already written; the returned error only tells the caller to stop.
func pathID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		return 0, errInvalidID
	}
	return id, nil
}
