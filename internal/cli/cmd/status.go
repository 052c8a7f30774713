package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/slidedrift/slidedrift/internal/cli/cmd/utils"
	"github.com/slidedrift/slidedrift/internal/ipc"
)

func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get slidedrift status",
		Long:  `Returns the current status of the slidedrift process, including playback position.`,
		Run: func(cmd *cobra.Command, args []string) {
			response, err := ipc.SendStatus()
			if err != nil {
				log.Errorf("Error fetching status: %v", err)
				return
			}

			utils.PrintJSONColored(response)
		},
	}
}
