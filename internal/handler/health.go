package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports that the process is up. Used by load balancers and
// container health checks; it does not touch the database or the cache.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
