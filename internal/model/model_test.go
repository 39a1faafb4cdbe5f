package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstantKind_String(t *testing.T) {
	tests := []struct {
		kind ConstantKind
		want string
	}{
		{KindString, "string"},
		{KindInt, "int"},
		{KindFloat, "float"},
		{KindImag, "imag"},
		{KindChar, "char"},
		{KindType, "type"},
		{ConstantKind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestStringConstant(t *testing.T) {
	c := StringConstant("hi")
	assert.True(t, c.IsString())
	assert.Equal(t, "hi", c.Value)
	assert.False(t, Constant{Kind: KindInt, Value: "1"}.IsString())
}

func TestNewMutationCandidate(t *testing.T) {
	candidate := NewMutationCandidate("hello", "x\ny")

	assert.Equal(t, "hello", candidate.Original)
	assert.Equal(t, "x\ny", candidate.Replacement)
	assert.Equal(t, "Mutate string from: hello, to: x\ny", candidate.Description)
}

func TestLocation_String(t *testing.T) {
	assert.Equal(t, "pkg/a.go:12:5", Location{Path: "pkg/a.go", Line: 12, Column: 5}.String())
}
