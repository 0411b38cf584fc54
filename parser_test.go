package kapst

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string) []Node {
	t.Helper()
	nodes, err := Parse(input, NewSettings())
	require.NoError(t, err, "parsing %q", input)
	return nodes
}

// stripped returns nodes with every source location zeroed, for structural
// comparison "up to loc" as the testable properties require.
func stripped(nodes []Node) []Node {
	return cloneNodes(nodes)
}

func diff(t *testing.T, want, got []Node) {
	t.Helper()
	if d := cmp.Diff(stripped(want), stripped(got)); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestEmptyInputParsesToEmptySequence(t *testing.T) {
	nodes := mustParse(t, "")
	assert.Nil(t, nodes)
}

func TestTrailingSemicolon(t *testing.T) {
	a := mustParse(t, "x")
	b := mustParse(t, "x;")
	diff(t, a, b)
}

func TestLastExpressionStatementWins(t *testing.T) {
	nodes := mustParse(t, "x; y")
	require.Len(t, nodes, 1)
	textord, ok := nodes[0].(*Textord)
	require.True(t, ok)
	assert.Equal(t, "y", textord.TextValue)
}

func TestEmptyParenGroup(t *testing.T) {
	nodes := mustParse(t, "()")
	require.Len(t, nodes, 1)
	og, ok := nodes[0].(*Ordgroup)
	require.True(t, ok)
	require.Len(t, og.Body, 2)
	assert.Equal(t, "(", og.Body[0].(*Atom).TextValue)
	assert.Equal(t, ")", og.Body[1].(*Atom).TextValue)
}

func TestCasesEmptyFails(t *testing.T) {
	_, err := Parse("cases()", NewSettings())
	require.Error(t, err)
	var ec *EmptyCasesError
	require.ErrorAs(t, err, &ec)
}

func TestUnknownCharacterFallsBackToTextord(t *testing.T) {
	nodes := mustParse(t, "§")
	require.Len(t, nodes, 1)
	to, ok := nodes[0].(*Textord)
	require.True(t, ok)
	assert.Equal(t, "§", to.TextValue)
}

func TestNoSupsubWithoutSupOrSub(t *testing.T) {
	// x alone must never produce a supsub node.
	nodes := mustParse(t, "x")
	require.Len(t, nodes, 1)
	_, isSupsub := nodes[0].(*Supsub)
	assert.False(t, isSupsub)
}

func TestJuxtapositionMatchesExplicitMultiplication(t *testing.T) {
	juxt := mustParse(t, "2 x")
	star := mustParse(t, "2 * x")
	require.Len(t, juxt, 2)
	require.Len(t, star, 3)
	// juxt is star with the middle \cdot atom removed.
	want := []Node{star[0], star[2]}
	diff(t, want, juxt)
}

func TestSymmetricPlusAndTimes(t *testing.T) {
	plus := mustParse(t, "x + x")
	times := mustParse(t, "x * x")
	require.Len(t, plus, 3)
	require.Len(t, times, 3)
	diff(t, []Node{plus[0]}, []Node{plus[2]})
	diff(t, []Node{times[0]}, []Node{times[2]})
}

func TestFractionPrecedence(t *testing.T) {
	// a + b/c + d has three operand positions (a, frac(b,c), d) joined by
	// two '+' symbols, five nodes in the flat sequence.
	nodes := mustParse(t, "a + b / c + d")
	require.Len(t, nodes, 5)
	_, isFrac := nodes[2].(*HandlerNode)
	require.True(t, isFrac)
	assert.Equal(t, "frac", nodes[2].(*HandlerNode).Tag)
	assert.Equal(t, "+", nodes[1].(*Atom).TextValue)
	assert.Equal(t, "+", nodes[3].(*Atom).TextValue)
}

func TestLetSubstitutionEqualsInlining(t *testing.T) {
	bound := mustParse(t, "let t = x^2; t + 1")
	inlined := mustParse(t, "x^2 + 1")
	diff(t, inlined, bound)
}

func TestCloneIndependence(t *testing.T) {
	nodes := mustParse(t, "let t = x^2; frac(t + 1, t - 1)")
	require.Len(t, nodes, 1)
	hn := nodes[0].(*HandlerNode)
	num := hn.Data["numerator"].(*Ordgroup)
	den := hn.Data["denominator"].(*Ordgroup)
	numSupsub := num.Body[0].(*Supsub)
	denSupsub := den.Body[0].(*Supsub)
	assert.NotSame(t, numSupsub, denSupsub)
	numSupsub.Sup = &Textord{TextValue: "mutated"}
	assert.NotEqual(t, "mutated", denSupsub.Sup.(*Textord).TextValue)
}

func TestScenario1_SupsubThenAdditive(t *testing.T) {
	nodes := mustParse(t, "x_1^2 + y")
	require.Len(t, nodes, 3)
	ss, ok := nodes[0].(*Supsub)
	require.True(t, ok)
	assert.Equal(t, "1", ss.Sub.(*Textord).TextValue)
	assert.Equal(t, "2", ss.Sup.(*Textord).TextValue)
	assert.Equal(t, "+", nodes[1].(*Atom).TextValue)
	assert.Equal(t, "y", nodes[2].(*Textord).TextValue)
}

func TestScenario2_DivisionLowersToFrac(t *testing.T) {
	nodes := mustParse(t, "a / b")
	require.Len(t, nodes, 1)
	hn, ok := nodes[0].(*HandlerNode)
	require.True(t, ok)
	assert.Equal(t, "frac", hn.Tag)
	assert.Equal(t, "a", hn.Data["numerator"].(*Textord).TextValue)
	assert.Equal(t, "b", hn.Data["denominator"].(*Textord).TextValue)
}

func TestScenario3_NestedCalls(t *testing.T) {
	nodes := mustParse(t, "frac(a + 1, sqrt(b))")
	require.Len(t, nodes, 1)
	frac := nodes[0].(*HandlerNode)
	num := frac.Data["numerator"].(*Ordgroup)
	require.Len(t, num.Body, 3)
	den := frac.Data["denominator"].(*HandlerNode)
	assert.Equal(t, "sqrt", den.Tag)
	assert.Equal(t, "b", den.Data["radicand"].(*Textord).TextValue)
}

func TestScenario4_LetCloneInFraction(t *testing.T) {
	nodes := mustParse(t, "let t = x^2; frac(t + 1, t - 1)")
	require.Len(t, nodes, 1)
	frac := nodes[0].(*HandlerNode)
	num := frac.Data["numerator"].(*Ordgroup)
	den := frac.Data["denominator"].(*Ordgroup)
	require.Len(t, num.Body, 3)
	require.Len(t, den.Body, 3)
	numSS := num.Body[0].(*Supsub)
	denSS := den.Body[0].(*Supsub)
	assert.NotSame(t, numSS, denSS)
	assert.Equal(t, SourceLocation{}, *numSS.Base.Location())
}

func TestScenario5_AccentArrowAliasesVec(t *testing.T) {
	nodes := mustParse(t, "accent(a, arrow)")
	require.Len(t, nodes, 1)
	hn := nodes[0].(*HandlerNode)
	assert.Equal(t, `\vec`, hn.Tag)
}

func TestScenario6_AccentArityMismatch(t *testing.T) {
	_, err := Parse("accent(x)", NewSettings())
	require.Error(t, err)
	var ae *ArityMismatchError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "accent", ae.Name)
	assert.Equal(t, 2, ae.Expected)
	assert.Equal(t, 1, ae.Got)
}

func TestScenario7_CasesArray(t *testing.T) {
	nodes := mustParse(t, `cases(x, "if x >= 0"; -x, "otherwise")`)
	require.Len(t, nodes, 1)
	lr, ok := nodes[0].(*Leftright)
	require.True(t, ok)
	assert.Equal(t, `\{`, lr.Left)
	assert.Equal(t, ".", lr.Right)
	require.Len(t, lr.Body, 1)
	arr := lr.Body[0].(*Array)
	require.Len(t, arr.Body, 2)
	require.Len(t, arr.Body[0], 2)
	assert.Equal(t, 1.0, arr.Cols[0].Postgap)
	assert.Equal(t, 0.0, arr.Cols[1].Postgap)
	cell := arr.Body[0][1].(*Styling)
	textNode := cell.Body[0].(*Text)
	var got string
	for _, c := range textNode.Body {
		got += c.(*Textord).TextValue
	}
	assert.Equal(t, "if x >= 0", got)
}

func TestDoubleSuperscriptFails(t *testing.T) {
	_, err := Parse("x^2^3", NewSettings())
	require.Error(t, err)
	var de *DoubleSuperscriptError
	require.ErrorAs(t, err, &de)
}

func TestDoubleSubscriptFails(t *testing.T) {
	_, err := Parse("x_1_2", NewSettings())
	require.Error(t, err)
	var de *DoubleSubscriptError
	require.ErrorAs(t, err, &de)
}

func TestMissingScriptArgumentFails(t *testing.T) {
	_, err := Parse("x^", NewSettings())
	require.Error(t, err)
	var se *ExpectedScriptArgumentError
	require.ErrorAs(t, err, &se)
}

func TestUnsupportedFunctionFails(t *testing.T) {
	opts := []ParseOption{DisableDefaultHandlers()}
	_, err := Parse("frac(a, b)", NewSettings(), opts...)
	require.Error(t, err)
	var ue *UnsupportedFunctionError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "frac", ue.Name)
}

func TestUnknownCallFallsBackToOrdgroup(t *testing.T) {
	nodes := mustParse(t, "foo(a, b)")
	require.Len(t, nodes, 1)
	og, ok := nodes[0].(*Ordgroup)
	require.True(t, ok)
	require.Len(t, og.Body, 2)
	nameGroup := og.Body[0].(*Ordgroup)
	require.Len(t, nameGroup.Body, 3)
}

func TestNamedOperatorCallEmitsOpThenParenArgs(t *testing.T) {
	nodes := mustParse(t, "sin(x)")
	require.Len(t, nodes, 1)
	og := nodes[0].(*Ordgroup)
	require.Len(t, og.Body, 2)
	op := og.Body[0].(*Atom)
	assert.Equal(t, FamilyOp, op.Family)
	assert.Equal(t, `\sin`, op.TextValue)
}

func TestBareNamedOperatorInvokesHandlerWithNoArgs(t *testing.T) {
	nodes := mustParse(t, "sin")
	require.Len(t, nodes, 1)
	atom, ok := nodes[0].(*Atom)
	require.True(t, ok)
	assert.Equal(t, `\sin`, atom.TextValue)
}

func TestMultiLetterIdentifierSplitsIntoOrdgroup(t *testing.T) {
	nodes := mustParse(t, "xyz")
	require.Len(t, nodes, 1)
	og, ok := nodes[0].(*Ordgroup)
	require.True(t, ok)
	require.Len(t, og.Body, 3)
}

func TestGreekLetterNamedSymbol(t *testing.T) {
	nodes := mustParse(t, "alpha")
	require.Len(t, nodes, 1)
	to := nodes[0].(*Textord)
	assert.Equal(t, `\alpha`, to.TextValue)
}

func TestStrayTokenAtStatementBoundaryFails(t *testing.T) {
	_, err := Parse("x )", NewSettings())
	require.Error(t, err)
	var se *ExpectedSemicolonOrEndError
	require.ErrorAs(t, err, &se)
}

func TestUnexpectedEndInsideParenGroupFails(t *testing.T) {
	_, err := Parse("(x", NewSettings())
	require.Error(t, err)
	var ue *UnexpectedEndError
	require.ErrorAs(t, err, &ue)
}

func TestUnexpectedEndInsideCallArgsFails(t *testing.T) {
	_, err := Parse("frac(a, b", NewSettings())
	require.Error(t, err)
	var ue *UnexpectedEndError
	require.ErrorAs(t, err, &ue)
}

func TestUnexpectedEndInsideCasesFails(t *testing.T) {
	_, err := Parse("cases(a, b", NewSettings())
	require.Error(t, err)
	var ue *UnexpectedEndError
	require.ErrorAs(t, err, &ue)
}

func TestUnexpectedEndAfterLetFails(t *testing.T) {
	_, err := Parse("let x", NewSettings())
	require.Error(t, err)
	var ue *UnexpectedEndError
	require.ErrorAs(t, err, &ue)
}

func TestAbsBuildsLeftright(t *testing.T) {
	nodes := mustParse(t, "abs(x)")
	require.Len(t, nodes, 1)
	lr := nodes[0].(*Leftright)
	assert.Equal(t, "|", lr.Left)
	assert.Equal(t, "|", lr.Right)
}

func TestRootUsesSqrtHandlerWithIndex(t *testing.T) {
	nodes := mustParse(t, "root(3, x)")
	require.Len(t, nodes, 1)
	hn := nodes[0].(*HandlerNode)
	assert.Equal(t, "sqrt", hn.Tag)
	assert.Equal(t, "3", hn.Data["index"].(*Textord).TextValue)
	assert.Equal(t, "x", hn.Data["radicand"].(*Textord).TextValue)
}

func TestStringLiteralProducesTextNode(t *testing.T) {
	nodes := mustParse(t, `"hi"`)
	require.Len(t, nodes, 1)
	tn, ok := nodes[0].(*Text)
	require.True(t, ok)
	require.Len(t, tn.Body, 2)
	assert.Equal(t, ModeText, tn.Body[0].(*Textord).NodeMode)
}
