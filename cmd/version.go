package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the strmut build version, VCS revision and the Go version used to build it.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				cmd.Println("version:", unknownVersion)
				return
			}

			cmd.Println("strmut version\t", moduleVersion(info))
			cmd.Println("revision\t", buildSetting(info, "vcs.revision"))
			cmd.Println("go version\t", info.GoVersion)
		},
	}
}

func moduleVersion(info *debug.BuildInfo) string {
	if info.Main.Version == "" {
		return unknownVersion
	}

	return info.Main.Version
}

func buildSetting(info *debug.BuildInfo, key string) string {
	for _, setting := range info.Settings {
		if setting.Key == key && setting.Value != "" {
			return setting.Value
		}
	}

	return unknownVersion
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
