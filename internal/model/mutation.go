package model

import "fmt"

// MutationType represents the category of mutation.
type MutationType struct {
	Name    string `yaml:"name"`
	Version int    `yaml:"version"`
}

// MutationString is the string literal randomization mutation.
var MutationString = MutationType{Name: "string", Version: 1}

// Location pins a candidate to one literal occurrence in a source file.
type Location struct {
	Path   Path `yaml:"path"`
	Line   int  `yaml:"line"`
	Column int  `yaml:"column"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Path, l.Line, l.Column)
}

// MutationCandidate is a proposed transformation of one string literal.
type MutationCandidate struct {
	Original    string
	Replacement string
	Description string
}

// NewMutationCandidate builds a candidate with the canonical description.
func NewMutationCandidate(original, replacement string) MutationCandidate {
	return MutationCandidate{
		Original:    original,
		Replacement: replacement,
		Description: fmt.Sprintf("Mutate string from: %s, to: %s", original, replacement),
	}
}

// MutationIdentifier correlates a registered candidate with engine-wide bookkeeping.
// It is created and owned by the registry.
type MutationIdentifier struct {
	ID          string   `yaml:"id"`
	Index       int      `yaml:"index"`
	FactoryID   string   `yaml:"factory_id"`
	Description string   `yaml:"description"`
	Location    Location `yaml:"location"`
}

// Mutation is an applied (or applicable) candidate with its rendered output.
type Mutation struct {
	ID          string
	Index       int
	FactoryID   string
	Source      Source
	Type        MutationType
	Description string
	Location    Location
	MutatedCode []byte
	DiffCode    []byte
}
