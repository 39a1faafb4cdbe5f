package mutagens

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"reflect"

	m "gooze.dev/pkg/strmut/internal/model"
)

const stringMutatorName = "STRING_MUTATOR"

// StringMutator replaces string literals with randomized content.
type StringMutator struct {
	policy RandomizationPolicy
}

var _ MutatorFactory = (*StringMutator)(nil)

// NewStringMutator creates a StringMutator with the given policy.
func NewStringMutator(policy RandomizationPolicy) (*StringMutator, error) {
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid randomization policy: %w", err)
	}

	return &StringMutator{policy: policy}, nil
}

// GloballyUniqueID returns the fully-qualified type name of the operator.
func (sm *StringMutator) GloballyUniqueID() string {
	t := reflect.TypeOf(*sm)
	return t.PkgPath() + "." + t.Name()
}

// Name returns the short display name of the operator.
func (sm *StringMutator) Name() string {
	return stringMutatorName
}

// Policy returns the randomization policy the operator was built with.
func (sm *StringMutator) Policy() RandomizationPolicy {
	return sm.policy
}

// Create returns a visitor for a single traversal.
func (sm *StringMutator) Create(mc MutationContext, source rand.Source) LiteralVisitor {
	return &stringVisitor{
		factory:    sm,
		mc:         mc,
		randomizer: NewRandomizer(sm.policy.Spread, source),
		singlePass: sm.policy.SinglePass,
	}
}

type stringVisitor struct {
	factory    MutatorFactory
	mc         MutationContext
	randomizer *Randomizer
	singlePass bool
}

// OnLiteral forwards non-string constants untouched and routes strings
// through the registry and gate.
func (sv *stringVisitor) OnLiteral(c m.Constant) (m.Constant, error) {
	if !c.IsString() {
		return c, nil
	}

	mutated, err := sv.attempt(c.Value)
	if err != nil {
		return m.Constant{}, err
	}

	return m.StringConstant(mutated), nil
}

func (sv *stringVisitor) attempt(original string) (string, error) {
	candidate := m.NewMutationCandidate(original, sv.randomizer.Generate(original))

	id, err := sv.mc.RegisterMutation(sv.factory, candidate.Description)
	if err != nil {
		return "", err
	}

	apply, err := sv.mc.ShouldMutate(id)
	if err != nil {
		return "", err
	}

	if !apply {
		return original, nil
	}

	slog.Debug("Applying string mutation", "id", id.ID, "index", id.Index, "singlePass", sv.singlePass)

	if sv.singlePass {
		return candidate.Replacement, nil
	}

	// The emitted value is a fresh randomization of the registered candidate,
	// not the candidate itself.
	return sv.randomizer.Generate(candidate.Replacement), nil
}
