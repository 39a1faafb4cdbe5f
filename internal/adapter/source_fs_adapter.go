// Package adapter contains infrastructure adapters for the strmut CLI.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	m "gooze.dev/pkg/strmut/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get collects Go sources for the provided roots. A root ending in "/..."
	// is walked recursively. Files matching any exclude regex are skipped.
	Get(ctx context.Context, roots []m.Path, exclude ...string) ([]m.Source, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(ctx context.Context, path m.Path) (string, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects Go source files for the provided roots.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, roots []m.Path, exclude ...string) ([]m.Source, error) {
	if len(roots) == 0 {
		roots = []m.Path{"./..."}
	}

	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	seen := make(map[m.Path]struct{})

	var sources []m.Source

	collect := func(path string) error {
		source, ok, err := a.processFilePath(ctx, cwd, path, excludes)
		if err != nil || !ok {
			return err
		}

		if _, exists := seen[source.Origin.FullPath]; exists {
			return nil
		}

		seen[source.Origin.FullPath] = struct{}{}
		sources = append(sources, source)

		return nil
	}

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(rootPath)
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := collect(rootPath); err != nil {
				return nil, err
			}

			continue
		}

		if err := walk(rootPath, recursive, collect); err != nil {
			return nil, err
		}
	}

	slog.Debug("Collected sources", "roots", len(roots), "count", len(sources))

	return sources, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(ctx context.Context, path m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

func walk(root string, recursive bool, fn func(path string) error) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path == root {
				return nil
			}

			base := filepath.Base(path)
			if !recursive || base == "vendor" || base == "testdata" || strings.HasPrefix(base, ".") {
				return filepath.SkipDir
			}

			return nil
		}

		return fn(path)
	})
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if strings.HasSuffix(rootStr, "/...") {
		return strings.TrimSuffix(rootStr, "/..."), true
	}

	return rootStr, false
}

func (a *LocalSourceFSAdapter) processFilePath(ctx context.Context, cwd, path string, excludes []*regexp.Regexp) (m.Source, bool, error) {
	if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
		return m.Source{}, false, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return m.Source{}, false, err
	}

	shortPath := absPath
	if rel, err := filepath.Rel(cwd, absPath); err == nil && !strings.HasPrefix(rel, "..") {
		shortPath = rel
	}

	for _, re := range excludes {
		if re.MatchString(shortPath) || re.MatchString(absPath) {
			slog.Debug("Excluded source", "path", shortPath, "pattern", re.String())
			return m.Source{}, false, nil
		}
	}

	hash, err := a.HashFile(ctx, m.Path(absPath))
	if err != nil {
		return m.Source{}, false, err
	}

	return m.Source{
		Origin: &m.File{
			FullPath:  m.Path(absPath),
			ShortPath: m.Path(shortPath),
			Hash:      hash,
		},
	}, true, nil
}
