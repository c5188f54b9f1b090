// Package cli implements the command line surface of the program.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/desertwitch/bprop/internal/configuration"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	typeFlag   string
	configFlag string
)

var rootCmd = &cobra.Command{
	Use:   "bprop",
	Short: "Get and set properties of btrfs filesystem objects",
	Long: `bprop gets and sets properties of btrfs filesystem objects:
subvolumes, devices, mounted filesystems and individual inodes.

The object types a path qualifies as are auto-detected; pass -t to
address one kind explicitly when a path qualifies as several (a
subvolume root is also an inode, for example).

Exit Codes:
  0 - Success
  1 - General error (property operation failed)
  2 - CLI usage error (invalid arguments or flags)
  3 - Panic or unexpected system error`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(configFlag)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&typeFlag, "type", "t", "", "object type to address (subvolume, device, root, inode)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", configuration.DefaultConfigFile, "settings file to read")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})
}

func setupLogging(configFile string) error {
	configHandler := &configuration.ConfigProviderImpl{
		GenericConfigReader: &configuration.GodotenvProvider{},
	}

	config, err := configHandler.LoadAppConfiguration(configFile)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    config.NoColor,
		}),
	))

	return nil
}
