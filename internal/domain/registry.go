package domain

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"sync"

	"gooze.dev/pkg/strmut/internal/domain/mutagens"
	m "gooze.dev/pkg/strmut/internal/model"
)

// ScanOnly is the active index of a registry that never applies a candidate.
const ScanOnly = -1

// ErrUnknownMutation is returned when the gate is asked about an identifier
// the registry did not issue.
var ErrUnknownMutation = errors.New("unknown mutation identifier")

// PositionTracker is told where the traversal is before each literal is visited.
type PositionTracker interface {
	At(loc m.Location)
}

// Registry records the candidates discovered in one source and gates at most
// one of them: the one whose index equals the active index.
type Registry struct {
	mu         sync.Mutex
	source     m.Source
	active     int
	applied    bool
	current    m.Location
	candidates []m.MutationIdentifier
}

var (
	_ mutagens.MutationContext = (*Registry)(nil)
	_ PositionTracker          = (*Registry)(nil)
)

// NewRegistry creates a registry for source. Pass ScanOnly to record without applying.
func NewRegistry(source m.Source, active int) *Registry {
	return &Registry{
		source: source,
		active: active,
	}
}

// At records the location of the literal about to be visited.
func (r *Registry) At(loc m.Location) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = loc
}

// RegisterMutation assigns the next index and a stable identifier to a candidate.
func (r *Registry) RegisterMutation(factory mutagens.MutatorFactory, description string) (m.MutationIdentifier, error) {
	if factory == nil {
		return m.MutationIdentifier{}, fmt.Errorf("register mutation: nil factory")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	index := len(r.candidates)
	id := m.MutationIdentifier{
		ID:          mutationID(r.sourcePath(), factory.GloballyUniqueID(), index),
		Index:       index,
		FactoryID:   factory.GloballyUniqueID(),
		Description: description,
		Location:    r.current,
	}

	r.candidates = append(r.candidates, id)

	return id, nil
}

// ShouldMutate reports whether id is the active candidate.
func (r *Registry) ShouldMutate(id m.MutationIdentifier) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id.Index < 0 || id.Index >= len(r.candidates) || r.candidates[id.Index].ID != id.ID {
		return false, fmt.Errorf("%w: %q", ErrUnknownMutation, id.ID)
	}

	if r.applied || id.Index != r.active {
		return false, nil
	}

	r.applied = true

	return true, nil
}

// Candidates returns a copy of every identifier registered so far.
func (r *Registry) Candidates() []m.MutationIdentifier {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]m.MutationIdentifier, len(r.candidates))
	copy(out, r.candidates)

	return out
}

// Applied reports whether the active candidate was gated in.
func (r *Registry) Applied() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.applied
}

func (r *Registry) sourcePath() m.Path {
	if r.source.Origin == nil {
		return ""
	}

	return r.source.Origin.FullPath
}

func mutationID(path m.Path, factoryID string, index int) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s-%s-%d", path, factoryID, index)))
	return fmt.Sprintf("%x", h)[:16]
}
