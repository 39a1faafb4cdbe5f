package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"gooze.dev/pkg/strmut/internal/adapter"
	"gooze.dev/pkg/strmut/internal/controller"
	m "gooze.dev/pkg/strmut/internal/model"
)

// ErrNoSources is returned when the given paths resolve to no Go sources.
var ErrNoSources = errors.New("no Go sources found")

// ListArgs contains the arguments for scanning sources for candidates.
type ListArgs struct {
	Paths   []m.Path
	Exclude []string
	Threads int
	Reports m.Path
}

// ApplyArgs contains the arguments for applying a single candidate.
type ApplyArgs struct {
	Path   m.Path
	Index  int
	Output m.Path
}

// ViewArgs contains the arguments for viewing saved reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow drives the operator across user sources.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Apply(ctx context.Context, args ApplyArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI
	Mutagen
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	mutagen Mutagen,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		Mutagen:         mutagen,
	}
}

// List scans every source in parallel, one traversal per file, and reports
// the candidates found.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	sources, err := w.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		slog.Error("Failed to discover sources", "error", err)
		return fmt.Errorf("discover sources: %w", err)
	}

	reports, err := w.scanSources(ctx, sources, args.Threads)
	if err != nil {
		return err
	}

	if args.Reports != "" {
		if err := w.SaveReports(ctx, args.Reports, reports); err != nil {
			slog.Error("Failed to save reports", "reports", args.Reports, "error", err)
			return fmt.Errorf("save reports: %w", err)
		}
	}

	return w.DisplayReports(ctx, reports)
}

func (w *workflow) scanSources(ctx context.Context, sources []m.Source, threads int) ([]m.Report, error) {
	reports := make([]m.Report, len(sources))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(1, threads))

	for i, source := range sources {
		group.Go(func() error {
			mutations, err := w.GenerateMutations(groupCtx, source)
			if err != nil {
				slog.Error("Failed to generate mutations", "source", source.Origin.FullPath, "error", err)
				return err
			}

			reports[i] = buildReport(source, mutations)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("generate mutations: %w", err)
	}

	slog.Debug("Scanned sources", "count", len(sources), "threads", threads)

	return reports, nil
}

// Apply applies one candidate and, when an output directory is set, writes
// the mutant there under the source's relative path.
func (w *workflow) Apply(ctx context.Context, args ApplyArgs) error {
	sources, err := w.Get(ctx, []m.Path{args.Path})
	if err != nil {
		return fmt.Errorf("discover sources: %w", err)
	}

	if len(sources) == 0 {
		return fmt.Errorf("%w: %s", ErrNoSources, args.Path)
	}

	if len(sources) > 1 {
		return fmt.Errorf("apply expects a single file, %s resolved to %d sources", args.Path, len(sources))
	}

	mutation, err := w.ApplyMutation(ctx, sources[0], args.Index)
	if err != nil {
		slog.Error("Failed to apply mutation", "path", args.Path, "index", args.Index, "error", err)
		return err
	}

	if args.Output != "" {
		target := m.Path(filepath.Join(string(args.Output), string(mutation.Source.Origin.ShortPath)))
		if err := w.WriteFile(ctx, target, mutation.MutatedCode, 0o600); err != nil {
			return fmt.Errorf("write mutant %s: %w", target, err)
		}

		slog.Info("Wrote mutant", "path", target, "id", mutation.ID)
	}

	return w.DisplayMutation(ctx, mutation)
}

// View displays previously saved reports.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(ctx, args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	return w.DisplayReports(ctx, reports)
}

func buildReport(source m.Source, mutations []m.Mutation) m.Report {
	report := m.Report{
		Source:     source,
		Type:       m.MutationString,
		Candidates: make([]m.MutationIdentifier, 0, len(mutations)),
	}

	for _, mutation := range mutations {
		report.Source = mutation.Source
		report.Candidates = append(report.Candidates, m.MutationIdentifier{
			ID:          mutation.ID,
			Index:       mutation.Index,
			FactoryID:   mutation.FactoryID,
			Description: mutation.Description,
			Location:    mutation.Location,
		})
	}

	return report
}
