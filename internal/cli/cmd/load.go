package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/slidedrift/slidedrift/internal/cli/cmd/utils"
	"github.com/slidedrift/slidedrift/internal/ipc"
)

func NewLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load [folder1] [folder2] ...",
		Short: "Replace the watched image folders",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			folders := make([]string, len(args))
			for i, f := range args {
				folders[i] = utils.CanonicalPath(f)
			}
			if err := ipc.SendLoad(folders); err != nil {
				log.Fatalf("Failed to send 'load' command: %v", err)
			}
			log.Infof("Loaded %d folders", len(folders))
		},
	}
}
