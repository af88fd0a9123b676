package server

import (
	"net/http"

	"app/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New assembles the echo instance with routes registered.
func New(productH *handler.ProductHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	productH.RegisterRoutes(e)

	return e
}

func Start(addr string, e *echo.Echo) error {
	return e.Start(addr)
}
