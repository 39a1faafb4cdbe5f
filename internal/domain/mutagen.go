// Package domain contains the core mutation workflow and logic.
package domain

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"hash/fnv"
	"log/slog"
	"math/rand/v2"

	"github.com/pmezard/go-difflib/difflib"

	"gooze.dev/pkg/strmut/internal/adapter"
	"gooze.dev/pkg/strmut/internal/domain/mutagens"
	m "gooze.dev/pkg/strmut/internal/model"
)

// ErrCandidateNotFound is returned when the requested candidate index does
// not exist in the source.
var ErrCandidateNotFound = errors.New("mutation candidate not found")

// Mutagen discovers string-literal candidates in a source and applies one of them.
type Mutagen interface {
	GenerateMutations(ctx context.Context, source m.Source) ([]m.Mutation, error)
	ApplyMutation(ctx context.Context, source m.Source, index int) (m.Mutation, error)
}

// MutagenOption configures a Mutagen.
type MutagenOption func(*mutagen)

// WithSeed makes every traversal deterministic. Each source gets its own
// stream derived from seed and the source path.
func WithSeed(seed uint64) MutagenOption {
	return func(mg *mutagen) {
		mg.seed = &seed
	}
}

type mutagen struct {
	adapter.GoFileAdapter
	adapter.SourceFSAdapter
	factory mutagens.MutatorFactory
	seed    *uint64
}

// NewMutagen creates a new Mutagen instance.
func NewMutagen(goFileAdapter adapter.GoFileAdapter, sourceFSAdapter adapter.SourceFSAdapter, factory mutagens.MutatorFactory, opts ...MutagenOption) Mutagen {
	mg := &mutagen{
		GoFileAdapter:   goFileAdapter,
		SourceFSAdapter: sourceFSAdapter,
		factory:         factory,
	}

	for _, opt := range opts {
		opt(mg)
	}

	return mg
}

// GenerateMutations scans source with no candidate active and returns every
// candidate the operator registered.
func (mg *mutagen) GenerateMutations(ctx context.Context, source m.Source) ([]m.Mutation, error) {
	if err := mg.validate(source); err != nil {
		return nil, err
	}

	_, fset, file, err := mg.loadSourceAST(ctx, source)
	if err != nil {
		return nil, err
	}

	registry := NewRegistry(source, ScanOnly)

	visited, err := Traverse(fset, file, mg.factory.Create(registry, mg.randomSource(source)), registry)
	if err != nil {
		return nil, fmt.Errorf("failed to traverse %s: %w", source.Origin.FullPath, err)
	}

	source = withPackage(source, file)
	candidates := registry.Candidates()

	slog.Debug("Scanned source", "source", source.Origin.FullPath, "literals", visited, "candidates", len(candidates))

	mutations := make([]m.Mutation, 0, len(candidates))
	for _, id := range candidates {
		mutations = append(mutations, mutationFromID(source, id))
	}

	return mutations, nil
}

// ApplyMutation re-traverses source with the candidate at index active and
// returns the mutated code and its diff against the original.
func (mg *mutagen) ApplyMutation(ctx context.Context, source m.Source, index int) (m.Mutation, error) {
	if err := mg.validate(source); err != nil {
		return m.Mutation{}, err
	}

	if index < 0 {
		return m.Mutation{}, fmt.Errorf("%w: index %d", ErrCandidateNotFound, index)
	}

	content, fset, file, err := mg.loadSourceAST(ctx, source)
	if err != nil {
		return m.Mutation{}, err
	}

	registry := NewRegistry(source, index)

	if _, err := Traverse(fset, file, mg.factory.Create(registry, mg.randomSource(source)), registry); err != nil {
		return m.Mutation{}, fmt.Errorf("failed to traverse %s: %w", source.Origin.FullPath, err)
	}

	if !registry.Applied() {
		return m.Mutation{}, fmt.Errorf("%w: index %d in %s (%d candidates)", ErrCandidateNotFound, index, source.Origin.FullPath, len(registry.Candidates()))
	}

	mutated, err := mg.Format(ctx, fset, file)
	if err != nil {
		return m.Mutation{}, fmt.Errorf("failed to format mutated %s: %w", source.Origin.FullPath, err)
	}

	diff, err := unifiedDiff(source, content, mutated)
	if err != nil {
		return m.Mutation{}, err
	}

	mutation := mutationFromID(withPackage(source, file), registry.Candidates()[index])
	mutation.MutatedCode = mutated
	mutation.DiffCode = diff

	slog.Debug("Applied mutation", "source", source.Origin.FullPath, "id", mutation.ID, "index", index)

	return mutation, nil
}

func (mg *mutagen) validate(source m.Source) error {
	if source.Origin == nil || source.Origin.FullPath == "" {
		return fmt.Errorf("missing source origin")
	}

	if mg.GoFileAdapter == nil || mg.SourceFSAdapter == nil {
		return fmt.Errorf("missing adapters")
	}

	if mg.factory == nil {
		return fmt.Errorf("missing mutator factory")
	}

	return nil
}

func (mg *mutagen) loadSourceAST(ctx context.Context, source m.Source) ([]byte, *token.FileSet, *ast.File, error) {
	content, err := mg.ReadFile(ctx, source.Origin.FullPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read %s: %w", source.Origin.FullPath, err)
	}

	fset := token.NewFileSet()

	file, err := mg.Parse(ctx, fset, string(source.Origin.FullPath), content)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to parse %s: %w", source.Origin.FullPath, err)
	}

	return content, fset, file, nil
}

func (mg *mutagen) randomSource(source m.Source) rand.Source {
	if mg.seed == nil {
		return nil
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(source.Origin.ShortPath))

	return mutagens.NewSeededSource(*mg.seed ^ h.Sum64())
}

func withPackage(source m.Source, file *ast.File) m.Source {
	if file.Name != nil {
		pkg := file.Name.Name
		source.Package = &pkg
	}

	return source
}

func mutationFromID(source m.Source, id m.MutationIdentifier) m.Mutation {
	return m.Mutation{
		ID:          id.ID,
		Index:       id.Index,
		FactoryID:   id.FactoryID,
		Source:      source,
		Type:        m.MutationString,
		Description: id.Description,
		Location:    id.Location,
	}
}

func unifiedDiff(source m.Source, original, mutated []byte) ([]byte, error) {
	name := string(source.Origin.ShortPath)
	if name == "" {
		name = string(source.Origin.FullPath)
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(string(mutated)),
		FromFile: name,
		ToFile:   name + " (mutated)",
		Context:  3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to diff %s: %w", name, err)
	}

	return []byte(diff), nil
}
