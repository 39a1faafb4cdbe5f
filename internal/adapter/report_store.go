package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/strmut/internal/model"
)

const reportExt = ".yaml"

// ReportStore persists and retrieves candidate reports.
type ReportStore interface {
	SaveReports(ctx context.Context, dir m.Path, reports []m.Report) error
	LoadReports(ctx context.Context, dir m.Path) ([]m.Report, error)
}

// LocalReportStore writes one YAML file per source, named after a hash of its path.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReports writes reports under dir, replacing earlier reports for the same sources.
func (rs *LocalReportStore) SaveReports(ctx context.Context, dir m.Path, reports []m.Report) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	for _, report := range reports {
		if err := ctx.Err(); err != nil {
			return err
		}

		if report.Source.Origin == nil {
			slog.Warn("Skipping report without source origin")
			continue
		}

		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshal report for %s: %w", report.Source.Origin.FullPath, err)
		}

		path := filepath.Join(string(dir), rs.reportFileName(report.Source.Origin.FullPath))
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("write report %s: %w", path, err)
		}

		slog.Debug("Saved report", "path", path, "candidates", len(report.Candidates))
	}

	return nil
}

// LoadReports reads every report under dir, ordered by source path.
func (rs *LocalReportStore) LoadReports(ctx context.Context, dir m.Path) ([]m.Report, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("read reports dir %s: %w", dir, err)
	}

	var reports []m.Report

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportExt) {
			continue
		}

		path := filepath.Join(string(dir), entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", path, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", path, err)
		}

		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reportPath(reports[i]) < reportPath(reports[j])
	})

	return reports, nil
}

func (rs *LocalReportStore) reportFileName(path m.Path) string {
	h := sha256.Sum256([]byte(path))
	return fmt.Sprintf("%x", h)[:16] + reportExt
}

func reportPath(report m.Report) m.Path {
	if report.Source.Origin == nil {
		return ""
	}

	return report.Source.Origin.FullPath
}
