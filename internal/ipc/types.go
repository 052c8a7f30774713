package ipc

import (
	"github.com/slidedrift/slidedrift/internal/playback"
)

// Player is the slice of the playback controller the socket server
// needs.
type Player interface {
	Snapshot() playback.Snapshot
	Enqueue(playback.Command)
}

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type StatusResponse struct {
	Status   string            `json:"status"`
	Message  string            `json:"message"`
	Version  string            `json:"version"`
	PID      int               `json:"pid"`
	Socket   string            `json:"socket"`
	Config   string            `json:"config"`
	Playback playback.Snapshot `json:"playback"`
}

// LoadRequest replaces the watched folder set at runtime.
type LoadRequest struct {
	Folders []string `json:"folders"`
}
