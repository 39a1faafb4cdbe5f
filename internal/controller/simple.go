package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "gooze.dev/pkg/strmut/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReports prints one candidate table per source.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderReports(reports))

	return nil
}

// DisplayMutation prints the applied mutation and its diff.
func (s *SimpleUI) DisplayMutation(ctx context.Context, mutation m.Mutation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderMutationHeader(mutation))

	if len(mutation.DiffCode) > 0 {
		s.printf("\n%s", mutation.DiffCode)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
