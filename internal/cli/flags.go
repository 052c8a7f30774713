package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func RegisterFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/slidedrift/slidedrift.toml)")
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.PersistentFlags().BoolP("installconfig", "i", false, "Install a default config file")
	rootCmd.PersistentFlags().Bool("show-config", false, "Dump resolved config")
	rootCmd.PersistentFlags().BoolP("background", "b", false, "Run as a daemon")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolP("version", "v", false, "Print version")
	rootCmd.PersistentFlags().BoolP("help", "h", false, "Print usage")

	rootCmd.Flags().StringSlice("folder", nil, "Folder with images, repeatable")
	viper.BindPFlag("folders", rootCmd.Flags().Lookup("folder"))
	rootCmd.Flags().Int("duration", 5, "Seconds to display each image")
	viper.BindPFlag("duration", rootCmd.Flags().Lookup("duration"))
	rootCmd.Flags().Int("monitor", 0, "Monitor index to display on")
	viper.BindPFlag("monitor", rootCmd.Flags().Lookup("monitor"))
	rootCmd.Flags().String("transition", "fade", "Transition effect between images")
	viper.BindPFlag("transition", rootCmd.Flags().Lookup("transition"))
	rootCmd.Flags().Bool("shuffle", false, "Randomize the order of images")
	viper.BindPFlag("shuffle", rootCmd.Flags().Lookup("shuffle"))
}
