package kapst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithHandlerOverridesDefault(t *testing.T) {
	called := false
	custom := func(ctx HandlerContext, mandatory, optional []Node) (Node, error) {
		called = true
		return &Textord{TextValue: "overridden"}, nil
	}
	nodes, err := Parse("frac(a, b)", NewSettings(), WithHandler("frac", custom))
	require.NoError(t, err)
	require.True(t, called)
	require.Len(t, nodes, 1)
	assert.Equal(t, "overridden", nodes[0].(*Textord).TextValue)
}

func TestWithSymbolTableOverridesClassification(t *testing.T) {
	table := mapSymbolTable{
		{ModeMath, "a"}: {Group: "mathord"},
	}
	nodes, err := Parse("a", NewSettings(), WithSymbolTable(table))
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	_, ok := nodes[0].(*Mathord)
	assert.True(t, ok)
}

func TestSqrtWithoutIndexLeavesIndexNil(t *testing.T) {
	nodes, err := Parse("sqrt(x)", NewSettings())
	require.NoError(t, err)
	hn := nodes[0].(*HandlerNode)
	assert.Nil(t, hn.Data["index"])
	assert.Len(t, hn.Children, 1)
}

func TestUnsupportedAccentKind(t *testing.T) {
	_, err := Parse("accent(a, wobble)", NewSettings())
	require.Error(t, err)
	var ue *UnsupportedAccentError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "wobble", ue.Kind)
}

func TestAccentKindMustReduceToPlainText(t *testing.T) {
	_, err := Parse("accent(a, sqrt(b))", NewSettings())
	require.Error(t, err)
	var ae *AccentKindMustBeTextError
	require.ErrorAs(t, err, &ae)
}
