package mutagens

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomizationPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		policy  RandomizationPolicy
		wantErr bool
	}{
		{"default", DefaultRandomizationPolicy(), false},
		{"single pass", RandomizationPolicy{Spread: 5, SinglePass: true}, false},
		{"zero spread", RandomizationPolicy{Spread: 0}, true},
		{"negative spread", RandomizationPolicy{Spread: -3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRandomizer_LengthWindow(t *testing.T) {
	r := NewRandomizer(DefaultLengthSpread, NewSeededSource(1))

	tests := []struct {
		input   string
		wantMin int
		wantMax int
	}{
		{"", 0, 30},
		{"hi", 0, 32},
		{"abcdefghijklmnopqrstuvwxyz0123456789", 6, 66},
		{"héllo", 0, 35},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			minLen, maxLen := r.LengthWindow(tt.input)
			assert.Equal(t, tt.wantMin, minLen)
			assert.Equal(t, tt.wantMax, maxLen)
		})
	}
}

func TestRandomizer_Generate_LengthWithinWindow(t *testing.T) {
	r := NewRandomizer(DefaultLengthSpread, nil)
	inputs := []string{"", "hi", "secret", "a somewhat longer literal that exceeds the spread"}

	for _, input := range inputs {
		minLen, maxLen := r.LengthWindow(input)

		for range 500 {
			out := r.Generate(input)
			n := utf8.RuneCountInString(out)

			require.GreaterOrEqual(t, n, minLen, "input %q", input)
			require.Less(t, n, maxLen, "input %q", input)
		}
	}
}

func TestRandomizer_Generate_ValidUTF8(t *testing.T) {
	r := NewRandomizer(DefaultLengthSpread, NewSeededSource(42))

	for range 200 {
		out := r.Generate("some input")
		require.True(t, utf8.ValidString(out))

		for _, c := range out {
			assert.False(t, c >= surrogateMin && c <= surrogateMax, "surrogate %U generated", c)
		}
	}
}

func TestRandomizer_Generate_SeededIsDeterministic(t *testing.T) {
	a := NewRandomizer(DefaultLengthSpread, NewSeededSource(7))
	b := NewRandomizer(DefaultLengthSpread, NewSeededSource(7))

	for range 20 {
		assert.Equal(t, a.Generate("secret"), b.Generate("secret"))
	}
}

func TestRandomizer_Generate_DiffersFromInput(t *testing.T) {
	r := NewRandomizer(DefaultLengthSpread, nil)

	same := 0

	for range 1000 {
		if r.Generate("secret") == "secret" {
			same++
		}
	}

	assert.Zero(t, same)
}

func TestNewRandomizer_ClampsSpread(t *testing.T) {
	r := NewRandomizer(0, NewSeededSource(3))

	minLen, maxLen := r.LengthWindow("")
	assert.Equal(t, 0, minLen)
	assert.Equal(t, 1, maxLen)
	assert.Empty(t, r.Generate(""))
}
