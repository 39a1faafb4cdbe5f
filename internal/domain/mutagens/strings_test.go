package mutagens_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/strmut/internal/domain/mutagens"
	"gooze.dev/pkg/strmut/internal/domain/mutagens/mocks"
	m "gooze.dev/pkg/strmut/internal/model"
)

const descriptionPrefix = "Mutate string from: secret, to: "

func newStringMutator(t *testing.T, policy mutagens.RandomizationPolicy) *mutagens.StringMutator {
	t.Helper()

	sm, err := mutagens.NewStringMutator(policy)
	require.NoError(t, err)

	return sm
}

func TestStringMutator_Identity(t *testing.T) {
	sm := newStringMutator(t, mutagens.DefaultRandomizationPolicy())

	assert.Equal(t, "gooze.dev/pkg/strmut/internal/domain/mutagens.StringMutator", sm.GloballyUniqueID())
	assert.Equal(t, "STRING_MUTATOR", sm.Name())
	assert.Equal(t, mutagens.DefaultLengthSpread, sm.Policy().Spread)
}

func TestNewStringMutator_InvalidPolicy(t *testing.T) {
	_, err := mutagens.NewStringMutator(mutagens.RandomizationPolicy{Spread: -1})
	assert.Error(t, err)
}

func TestStringVisitor_NonStringPassThrough(t *testing.T) {
	sm := newStringMutator(t, mutagens.DefaultRandomizationPolicy())
	mc := mocks.NewMockMutationContext(t)
	visitor := sm.Create(mc, mutagens.NewSeededSource(1))

	inputs := []m.Constant{
		{Kind: m.KindInt, Value: "42"},
		{Kind: m.KindFloat, Value: "3.14"},
		{Kind: m.KindImag, Value: "2i"},
		{Kind: m.KindChar, Value: "'x'"},
		{Kind: m.KindType, Value: "[]string"},
	}

	for _, input := range inputs {
		t.Run(input.Kind.String(), func(t *testing.T) {
			out, err := visitor.OnLiteral(input)
			require.NoError(t, err)
			assert.Equal(t, input, out)
		})
	}

	mc.AssertNotCalled(t, "RegisterMutation", mock.Anything, mock.Anything)
	mc.AssertNotCalled(t, "ShouldMutate", mock.Anything)
}

func TestStringVisitor_GateClosed(t *testing.T) {
	sm := newStringMutator(t, mutagens.DefaultRandomizationPolicy())
	mc := mocks.NewMockMutationContext(t)
	id := m.MutationIdentifier{ID: "abc", Index: 0}

	mc.EXPECT().RegisterMutation(sm, mock.MatchedBy(func(desc string) bool {
		return strings.HasPrefix(desc, descriptionPrefix)
	})).Return(id, nil).Times(1000)
	mc.EXPECT().ShouldMutate(id).Return(false, nil).Times(1000)

	visitor := sm.Create(mc, nil)

	for range 1000 {
		out, err := visitor.OnLiteral(m.StringConstant("secret"))
		require.NoError(t, err)
		require.Equal(t, m.StringConstant("secret"), out)
	}
}

func TestStringVisitor_GateOpen_EmitsSecondRandomization(t *testing.T) {
	sm := newStringMutator(t, mutagens.DefaultRandomizationPolicy())
	mc := mocks.NewMockMutationContext(t)

	var registered []string

	mc.EXPECT().RegisterMutation(sm, mock.Anything).
		RunAndReturn(func(_ mutagens.MutatorFactory, desc string) (m.MutationIdentifier, error) {
			registered = append(registered, desc)
			return m.MutationIdentifier{Index: len(registered) - 1, Description: desc}, nil
		})
	mc.EXPECT().ShouldMutate(mock.Anything).Return(true, nil)

	visitor := sm.Create(mc, nil)
	window := mutagens.NewRandomizer(mutagens.DefaultLengthSpread, nil)

	const runs = 200

	matchedCandidate := 0

	for i := range runs {
		out, err := visitor.OnLiteral(m.StringConstant("secret"))
		require.NoError(t, err)
		require.Equal(t, m.KindString, out.Kind)
		require.Len(t, registered, i+1)

		candidate := strings.TrimPrefix(registered[i], descriptionPrefix)
		minLen, maxLen := window.LengthWindow(candidate)
		n := utf8.RuneCountInString(out.Value)

		assert.GreaterOrEqual(t, n, minLen)
		assert.Less(t, n, maxLen)
		assert.NotEqual(t, "secret", out.Value)

		if out.Value == candidate {
			matchedCandidate++
		}
	}

	// Only two empty draws in a row can make the emitted value match the candidate.
	assert.Less(t, matchedCandidate, runs/10)
}

func TestStringVisitor_SinglePassEmitsCandidate(t *testing.T) {
	sm := newStringMutator(t, mutagens.RandomizationPolicy{Spread: mutagens.DefaultLengthSpread, SinglePass: true})
	mc := mocks.NewMockMutationContext(t)

	var description string

	mc.EXPECT().RegisterMutation(sm, mock.Anything).
		RunAndReturn(func(_ mutagens.MutatorFactory, desc string) (m.MutationIdentifier, error) {
			description = desc
			return m.MutationIdentifier{Description: desc}, nil
		}).Once()
	mc.EXPECT().ShouldMutate(mock.Anything).Return(true, nil).Once()

	out, err := sm.Create(mc, mutagens.NewSeededSource(9)).OnLiteral(m.StringConstant("secret"))
	require.NoError(t, err)

	assert.Equal(t, descriptionPrefix+out.Value, description)
}

func TestStringVisitor_SeededVisitorsAgree(t *testing.T) {
	sm := newStringMutator(t, mutagens.DefaultRandomizationPolicy())

	run := func() (string, string) {
		mc := mocks.NewMockMutationContext(t)

		var description string

		mc.EXPECT().RegisterMutation(sm, mock.Anything).
			RunAndReturn(func(_ mutagens.MutatorFactory, desc string) (m.MutationIdentifier, error) {
				description = desc
				return m.MutationIdentifier{}, nil
			}).Once()
		mc.EXPECT().ShouldMutate(mock.Anything).Return(true, nil).Once()

		out, err := sm.Create(mc, mutagens.NewSeededSource(2024)).OnLiteral(m.StringConstant("hello"))
		require.NoError(t, err)

		return description, out.Value
	}

	firstDesc, firstOut := run()
	secondDesc, secondOut := run()

	assert.Equal(t, firstDesc, secondDesc)
	assert.Equal(t, firstOut, secondOut)
}

func TestStringVisitor_RegistryErrorPropagates(t *testing.T) {
	sm := newStringMutator(t, mutagens.DefaultRandomizationPolicy())
	mc := mocks.NewMockMutationContext(t)
	errBoom := errors.New("boom")

	mc.EXPECT().RegisterMutation(sm, mock.Anything).Return(m.MutationIdentifier{}, errBoom).Once()

	_, err := sm.Create(mc, nil).OnLiteral(m.StringConstant("secret"))
	require.ErrorIs(t, err, errBoom)
	mc.AssertNotCalled(t, "ShouldMutate", mock.Anything)
}

func TestStringVisitor_GateErrorPropagates(t *testing.T) {
	sm := newStringMutator(t, mutagens.DefaultRandomizationPolicy())
	mc := mocks.NewMockMutationContext(t)
	errGate := errors.New("gate unavailable")

	mc.EXPECT().RegisterMutation(sm, mock.Anything).Return(m.MutationIdentifier{ID: "x"}, nil).Once()
	mc.EXPECT().ShouldMutate(m.MutationIdentifier{ID: "x"}).Return(false, errGate).Once()

	_, err := sm.Create(mc, nil).OnLiteral(m.StringConstant("secret"))
	require.ErrorIs(t, err, errGate)
}
