/*
Copyright © 2026 The slidedrift authors
*/
package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slidedrift/slidedrift"
	"github.com/slidedrift/slidedrift/internal/cli/cmd"
	"github.com/slidedrift/slidedrift/internal/cli/cmd/utils"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slidedrift",
	Short: "A full-screen image slideshow with animated transitions",
	Long: `Slidedrift displays the images in one or more folders full screen,
advancing on a timer with animated transitions between frames. It keeps
watching the folders and reconciles the slideshow when files change.`,
	Run: func(command *cobra.Command, args []string) {
		if v, err := command.Flags().GetBool("show-config"); err == nil && v {
			log.Infof("Using config file: %v", viper.ConfigFileUsed())
			log.Info("All settings:")
			utils.PrintJSONColored(viper.AllSettings())
			return
		}

		if v, err := command.Flags().GetBool("installconfig"); err == nil && v {
			utils.InstallDefaultConfig()
			return
		}

		babyBlue := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
		green := lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
		if v, err := command.Flags().GetBool("version"); err == nil && v {
			log.Infof("%v version %v",
				babyBlue.Render("slidedrift"),
				green.Render(strings.Trim(slidedrift.Version, "\n\r ")))
			return
		}

		if v, err := command.Flags().GetBool("debug"); err == nil && v {
			log.SetLevel(log.DebugLevel)
		}

		background, _ := command.Flags().GetBool("background")
		cmd.StartPlayer(background)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.AddCommand(cmd.NewNextCmd())
	rootCmd.AddCommand(cmd.NewPrevCmd())
	rootCmd.AddCommand(cmd.NewPauseCmd())
	rootCmd.AddCommand(cmd.NewStatusCmd())
	rootCmd.AddCommand(cmd.NewStopCmd())
	rootCmd.AddCommand(cmd.NewLoadCmd())
	rootCmd.AddCommand(cmd.NewGenManCmd(rootCmd))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	RegisterFlags(rootCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("slidedrift")
		viper.SetConfigType("toml")
		viper.AddConfigPath("$HOME/.config/slidedrift")
		viper.AddConfigPath("/etc/xdg/slidedrift")
	}

	viper.SetDefault("folders", []string{"~/Pictures"})
	viper.SetDefault("duration", 5)
	viper.SetDefault("monitor", 0)
	viper.SetDefault("transition", "fade")
	viper.SetDefault("shuffle", false)
	viper.SetDefault("transition_duration_ms", 500)
	viper.SetDefault("transition_steps", 20)
	viper.SetDefault("max_cache_entries", 10)
	viper.SetDefault("max_cache_bytes", 100*1024*1024)
	viper.SetDefault("max_failures", 3)
	viper.SetDefault("debounce_ms", 500)
	viper.SetDefault("canvas_width", 0)
	viper.SetDefault("canvas_height", 0)
	viper.SetDefault("debug", false)

	viper.AutomaticEnv() // read environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error reading config file: %v", err)
		}
		log.Debug("No config file found, using defaults")
	}
}
