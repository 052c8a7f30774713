package ipc

import (
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, player Player) {
	e.GET("/status", statusHandler(player))
	e.POST("/stop", stopHandler(player))
	e.POST("/next", nextHandler(player))
	e.POST("/prev", prevHandler(player))
	e.POST("/pause", pauseHandler(player))
	e.POST("/load", loadHandler(player))
}
