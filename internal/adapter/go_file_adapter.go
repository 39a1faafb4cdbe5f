package adapter

import (
	"bytes"
	"context"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
)

// GoFileAdapter encapsulates Go-specific parsing and printing so the domain
// layer can focus on mutation rules while delegating compilation details to
// an infrastructure component.
type GoFileAdapter interface {
	// Parse builds an AST using the provided file set and source bytes.
	Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)

	// Format prints an AST back to gofmt-formatted source.
	Format(ctx context.Context, fileSet *token.FileSet, file *ast.File) ([]byte, error)
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser and go/format.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return parser.ParseFile(fileSet, filename, src, parser.ParseComments)
}

// Format renders file with the standard Go formatting rules.
func (a *LocalGoFileAdapter) Format(ctx context.Context, fileSet *token.FileSet, file *ast.File) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fileSet, file); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
