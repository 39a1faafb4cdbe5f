package domain

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"strconv"

	"gooze.dev/pkg/strmut/internal/domain/mutagens"
	m "gooze.dev/pkg/strmut/internal/model"
)

// ErrKindChanged is returned when a visitor answers with a constant of a
// different kind than the one it was given.
var ErrKindChanged = errors.New("visitor changed constant kind")

var literalKinds = map[token.Token]m.ConstantKind{
	token.STRING: m.KindString,
	token.INT:    m.KindInt,
	token.FLOAT:  m.KindFloat,
	token.IMAG:   m.KindImag,
	token.CHAR:   m.KindChar,
}

// Traverse feeds every literal of file to visitor in source order and writes
// the returned constants back into the AST. Import paths and struct tags are
// not part of the stream. It returns the number of literals visited.
func Traverse(fset *token.FileSet, file *ast.File, visitor mutagens.LiteralVisitor, tracker PositionTracker) (int, error) {
	skip := make(map[*ast.BasicLit]struct{})

	var (
		visited int
		err     error
	)

	ast.Inspect(file, func(n ast.Node) bool {
		if err != nil {
			return false
		}

		switch node := n.(type) {
		case *ast.ImportSpec:
			return false
		case *ast.Field:
			if node.Tag != nil {
				skip[node.Tag] = struct{}{}
			}
		case *ast.BasicLit:
			if _, ok := skip[node]; ok {
				return false
			}

			if tracker != nil {
				pos := fset.Position(node.Pos())
				tracker.At(m.Location{Path: m.Path(pos.Filename), Line: pos.Line, Column: pos.Column})
			}

			visited++
			err = visitLiteral(node, visitor)

			return false
		}

		return true
	})

	return visited, err
}

func visitLiteral(lit *ast.BasicLit, visitor mutagens.LiteralVisitor) error {
	in, err := constantFromLiteral(lit)
	if err != nil {
		return err
	}

	out, err := visitor.OnLiteral(in)
	if err != nil {
		return err
	}

	if out.Kind != in.Kind {
		return fmt.Errorf("%w: %s -> %s", ErrKindChanged, in.Kind, out.Kind)
	}

	if out.Value == in.Value {
		return nil
	}

	if out.IsString() {
		lit.Value = strconv.Quote(out.Value)
		return nil
	}

	lit.Value = out.Value

	return nil
}

func constantFromLiteral(lit *ast.BasicLit) (m.Constant, error) {
	kind, ok := literalKinds[lit.Kind]
	if !ok {
		return m.Constant{}, fmt.Errorf("unsupported literal token %s", lit.Kind)
	}

	if kind != m.KindString {
		return m.Constant{Kind: kind, Value: lit.Value}, nil
	}

	value, err := strconv.Unquote(lit.Value)
	if err != nil {
		return m.Constant{}, fmt.Errorf("unquote %s: %w", lit.Value, err)
	}

	return m.StringConstant(value), nil
}
