// Package mutagens provides the literal mutation operators and the contracts
// they share with the traversal and the mutation registry.
package mutagens

import (
	"math/rand/v2"

	m "gooze.dev/pkg/strmut/internal/model"
)

// LiteralVisitor observes every literal operand of one instruction stream, in
// visitation order, and returns the constant to emit in its place.
type LiteralVisitor interface {
	OnLiteral(c m.Constant) (m.Constant, error)
}

// MutationContext is the registry and gating policy a visitor reports to.
// RegisterMutation is called once per discovered candidate, and ShouldMutate
// exactly once per registered identifier, immediately afterwards.
type MutationContext interface {
	RegisterMutation(factory MutatorFactory, description string) (m.MutationIdentifier, error)
	ShouldMutate(id m.MutationIdentifier) (bool, error)
}

// MutatorFactory creates visitors for one mutation operator. A visitor is
// created per traversal and owns the random source it is given; a nil source
// means an unseeded one.
type MutatorFactory interface {
	GloballyUniqueID() string
	Name() string
	Create(mc MutationContext, source rand.Source) LiteralVisitor
}
