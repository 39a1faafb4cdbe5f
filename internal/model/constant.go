// Package model defines the data structures for mutation testing.
package model

// ConstantKind discriminates the literal operands seen in an instruction stream.
type ConstantKind int

const (
	// KindString is a string constant; Value holds the decoded string.
	KindString ConstantKind = iota
	// KindInt is an integer constant; Value holds the literal source text.
	KindInt
	// KindFloat is a floating-point constant; Value holds the literal source text.
	KindFloat
	// KindImag is an imaginary constant; Value holds the literal source text.
	KindImag
	// KindChar is a rune constant; Value holds the literal source text.
	KindChar
	// KindType is a type-descriptor token; Value holds the type expression.
	KindType
)

var constantKindNames = map[ConstantKind]string{
	KindString: "string",
	KindInt:    "int",
	KindFloat:  "float",
	KindImag:   "imag",
	KindChar:   "char",
	KindType:   "type",
}

func (k ConstantKind) String() string {
	if name, ok := constantKindNames[k]; ok {
		return name
	}

	return "unknown"
}

// Constant is a single literal operand encountered in the instruction stream.
type Constant struct {
	Kind  ConstantKind
	Value string
}

// StringConstant builds a string-kind constant.
func StringConstant(value string) Constant {
	return Constant{Kind: KindString, Value: value}
}

// IsString reports whether the constant carries a string value.
func (c Constant) IsString() bool {
	return c.Kind == KindString
}
