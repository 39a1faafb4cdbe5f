package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gooze.dev/pkg/strmut/internal/domain"
	m "gooze.dev/pkg/strmut/internal/model"
)

// applyCmd represents the apply command.
var applyCmd = newApplyCmd()

func newApplyCmd() *cobra.Command {
	var writeTo string

	cmd := &cobra.Command{
		Use:   "apply <file> <index>",
		Short: "Apply one string mutation and show the diff",
		Long: `Apply the candidate with the given index (as shown by "list") to a single
Go file and print the resulting diff. With --write-to the mutated file is
also written under that directory, keeping its relative path.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil || index < 0 {
				return fmt.Errorf("invalid candidate index %q", args[1])
			}

			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Apply(context.Background(), domain.ApplyArgs{
				Path:   m.Path(args[0]),
				Index:  index,
				Output: m.Path(writeTo),
			})
		},
	}

	cmd.Flags().StringVarP(&writeTo, writeToFlagName, "w", "", "directory to write the mutated file into")

	return cmd
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
