package fastassert

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strings"
)

// conditionText recovers the source text of argument arg of the call to
// callee (plain or qualified) made at file:line.
//
// The compiler attributes a call to the line of its opening parenthesis, so
// candidates are matched on Lparen first and on span as a fallback. Two
// candidates on the same line cannot be told apart from a file:line pair, so
// the text is reported unavailable rather than guessed.
func conditionText(file string, line int, callee string, arg int) (string, int, bool) {
	src, err := os.ReadFile(file)
	if err != nil {
		return "", 0, false
	}

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, file, src, parser.SkipObjectResolution)
	if err != nil {
		return "", 0, false
	}

	var opening, spanning []*ast.CallExpr

	ast.Inspect(f, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}

		if line < fset.Position(call.Pos()).Line || line > fset.Position(call.End()).Line {
			return false
		}

		if len(call.Args) <= arg || !calleeIs(call.Fun, callee) {
			return true
		}

		if fset.Position(call.Lparen).Line == line {
			opening = append(opening, call)
		} else {
			spanning = append(spanning, call)
		}

		return true
	})

	candidates := opening
	if len(candidates) == 0 {
		candidates = spanning
	}

	if len(candidates) != 1 {
		return "", 0, false
	}

	call := candidates[0]
	expr := call.Args[arg]
	start, end := fset.Position(expr.Pos()).Offset, fset.Position(expr.End()).Offset

	if start < 0 || end > len(src) || start >= end {
		return "", 0, false
	}

	return collapseSpace(string(src[start:end])), fset.Position(call.Pos()).Column, true
}

func calleeIs(fun ast.Expr, name string) bool {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name == name
	case *ast.SelectorExpr:
		return f.Sel.Name == name
	case *ast.ParenExpr:
		return calleeIs(f.X, name)
	default:
		return false
	}
}

// collapseSpace folds line breaks and the indentation around them into a
// single space so multi-line conditions read as one line in messages.
func collapseSpace(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}

	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == '\r' })
	kept := parts[:0]

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, " ")
}
