package ipc

import (
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/slidedrift/slidedrift"
	"github.com/slidedrift/slidedrift/internal/playback"
)

// GET /status
func statusHandler(p Player) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSONPretty(http.StatusOK, StatusResponse{
			Status:   "ok",
			Message:  "slidedrift is running",
			Version:  strings.Trim(slidedrift.Version, "\n\r "),
			PID:      os.Getpid(),
			Socket:   SocketPath(),
			Config:   viper.ConfigFileUsed(),
			Playback: p.Snapshot(),
		}, "  ")
	}
}

// POST /stop
func stopHandler(p Player) echo.HandlerFunc {
	return func(c echo.Context) error {
		p.Enqueue(playback.Command{Type: playback.CommandStop})
		return c.JSON(http.StatusOK, Response{Status: "ok", Message: "stopping"})
	}
}

// POST /next
func nextHandler(p Player) echo.HandlerFunc {
	return func(c echo.Context) error {
		p.Enqueue(playback.Command{Type: playback.CommandNext})
		return c.JSON(http.StatusOK, Response{Status: "ok", Message: "advancing"})
	}
}

// POST /prev
func prevHandler(p Player) echo.HandlerFunc {
	return func(c echo.Context) error {
		p.Enqueue(playback.Command{Type: playback.CommandPrev})
		return c.JSON(http.StatusOK, Response{Status: "ok", Message: "going back"})
	}
}

// POST /pause
func pauseHandler(p Player) echo.HandlerFunc {
	return func(c echo.Context) error {
		p.Enqueue(playback.Command{Type: playback.CommandPause})
		return c.JSON(http.StatusOK, Response{Status: "ok", Message: "pause toggled"})
	}
}

// POST /load
func loadHandler(p Player) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req LoadRequest
		if err := c.Bind(&req); err != nil || len(req.Folders) == 0 {
			return c.JSON(http.StatusBadRequest, Response{
				Status:  "error",
				Message: "expected a JSON object with a non-empty folders array",
			})
		}

		p.Enqueue(playback.Command{
			Type:    playback.CommandLoad,
			Folders: req.Folders,
		})

		return c.JSON(http.StatusOK, Response{
			Status:  "ok",
			Message: "folder list replaced",
			Data:    map[string]any{"loaded": len(req.Folders)},
		})
	}
}
