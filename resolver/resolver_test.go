/*
File    : plox/resolver/resolver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import (
	"testing"

	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/lexer"
	"github.com/akashmaji946/plox/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveSrc(t *testing.T, src string) (*ast.Program, *Resolver) {
	t.Helper()
	lex := lexer.NewLexer(src)
	tokens := lex.ConsumeTokens()
	require.Empty(t, lex.Errors)

	p := parser.New(tokens)
	prog, perrs := p.Parse()
	require.Empty(t, perrs)

	r := New()
	r.Resolve(prog)
	return prog, r
}

func TestResolver_LocalVariableResolvesToDepthZero(t *testing.T) {
	prog, r := resolveSrc(t, `{ var a = 1; print a; }`)
	require.False(t, r.HasErrors())

	block := prog.Statements[0].(*ast.Block)
	printStmt := block.Statements[1].(*ast.PrintStmt)
	v := printStmt.Expression.(*ast.Variable)

	depth, ok := r.Locals[v]
	require.True(t, ok)
	assert.Equal(t, 0, depth)
}

func TestResolver_NestedBlockResolvesOuterDepth(t *testing.T) {
	prog, r := resolveSrc(t, `{ var a = 1; { print a; } }`)
	require.False(t, r.HasErrors())

	outer := prog.Statements[0].(*ast.Block)
	inner := outer.Statements[1].(*ast.Block)
	printStmt := inner.Statements[0].(*ast.PrintStmt)
	v := printStmt.Expression.(*ast.Variable)

	depth, ok := r.Locals[v]
	require.True(t, ok)
	assert.Equal(t, 1, depth)
}

func TestResolver_GlobalIsUnresolved(t *testing.T) {
	prog, r := resolveSrc(t, `var a = 1; print a;`)
	require.False(t, r.HasErrors())

	printStmt := prog.Statements[1].(*ast.PrintStmt)
	v := printStmt.Expression.(*ast.Variable)

	_, ok := r.Locals[v]
	assert.False(t, ok, "global reads should not appear in the locals table")
}

func TestResolver_SelfReadInInitializerIsError(t *testing.T) {
	_, r := resolveSrc(t, `{ var a = a; }`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0].Message, "own initializer")
}

func TestResolver_RedeclarationInSameScopeIsError(t *testing.T) {
	_, r := resolveSrc(t, `{ var a = 1; var a = 2; }`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0].Message, "already in this scope")
}

func TestResolver_RedeclarationAtTopLevelIsAllowed(t *testing.T) {
	_, r := resolveSrc(t, `var a = 1; var a = 2;`)
	assert.False(t, r.HasErrors())
}

func TestResolver_ReturnOutsideFunctionIsError(t *testing.T) {
	_, r := resolveSrc(t, `return 1;`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0].Message, "top-level code")
}

func TestResolver_ReturnInsideFunctionIsFine(t *testing.T) {
	_, r := resolveSrc(t, `fun f() { return 1; }`)
	assert.False(t, r.HasErrors())
}

func TestResolver_ClosureCapturesDefiningScopeDepth(t *testing.T) {
	_, r := resolveSrc(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
	`)
	require.False(t, r.HasErrors())
	// count's assignment inside increment resolves one function scope out
	found := false
	for _, depth := range r.Locals {
		if depth == 1 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestResolver_ThisOutsideClassIsError(t *testing.T) {
	_, r := resolveSrc(t, `print this;`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0].Message, "'this' outside")
}

func TestResolver_ThisInsideMethodResolves(t *testing.T) {
	_, r := resolveSrc(t, `class A { m() { return this; } }`)
	assert.False(t, r.HasErrors())
}

func TestResolver_ReturnValueFromInitializerIsError(t *testing.T) {
	_, r := resolveSrc(t, `class A { init() { return 1; } }`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0].Message, "return a value from an initializer")
}
