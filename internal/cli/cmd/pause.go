package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/slidedrift/slidedrift/internal/ipc"
)

func NewPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Toggle pause of the slideshow",
		Run: func(cmd *cobra.Command, args []string) {
			if err := ipc.SendPause(); err != nil {
				log.Fatalf("Failed to send 'pause' command: %v", err)
			}
			log.Info("Pause command sent")
		},
	}
}
