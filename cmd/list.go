package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/strmut/internal/domain"
	m "gooze.dev/pkg/strmut/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List mutable string literals per source file",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.List(context.Background(), domain.ListArgs{
				Paths:   parsePaths(args),
				Exclude: viper.GetStringSlice(excludeConfigKey),
				Threads: viper.GetInt(runParallelConfigKey),
				Reports: m.Path(viper.GetString(outputFlagName)),
			})
		},
	}

	cmd.Flags().IntP(runParallelFlagName, "p", defaultRunParallel, "number of files scanned in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
