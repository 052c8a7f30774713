package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/slidedrift/slidedrift/internal/ipc"
)

func NewPrevCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prev",
		Short: "Go back to the previous image",
		Run: func(cmd *cobra.Command, args []string) {
			if err := ipc.SendPrev(); err != nil {
				log.Fatalf("Failed to send 'prev' command: %v", err)
			}
			log.Info("Previous image command sent")
		},
	}
}
