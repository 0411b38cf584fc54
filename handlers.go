package kapst

// Handler builds a node from a call's already-lowered arguments. mandatory
// holds the fixed-position arguments a call form requires; optional holds
// positions that may be present as nil (e.g. sqrt's missing index). A
// handler never sees raw tokens beyond the call token itself in ctx.
type Handler func(ctx HandlerContext, mandatory, optional []Node) (Node, error)

// HandlerContext is passed to every handler invocation.
type HandlerContext struct {
	FuncName string
	Settings Settings
	Mode     Mode
	Token    Token
}

func fracHandler(ctx HandlerContext, mandatory, optional []Node) (Node, error) {
	num, den := mandatory[0], mandatory[1]
	return &HandlerNode{
		Tag:      "frac",
		Data:     map[string]any{"numerator": num, "denominator": den},
		Children: []Node{num, den},
	}, nil
}

func sqrtHandler(ctx HandlerContext, mandatory, optional []Node) (Node, error) {
	radicand := mandatory[0]
	var index Node
	if len(optional) > 0 {
		index = optional[0]
	}
	children := []Node{radicand}
	if index != nil {
		children = append(children, index)
	}
	return &HandlerNode{
		Tag:      "sqrt",
		Data:     map[string]any{"radicand": radicand, "index": index},
		Children: children,
	}, nil
}

// accentHandler returns a Handler that wraps a single base argument in a
// HandlerNode tagged with command.
func accentHandler(command string) Handler {
	return func(ctx HandlerContext, mandatory, optional []Node) (Node, error) {
		base := mandatory[0]
		return &HandlerNode{
			Tag:      command,
			Data:     map[string]any{"base": base},
			Children: []Node{base},
		}, nil
	}
}

// namedOperatorHandler returns a Handler for a niladic named operator like
// \sin: it ignores its arguments (identifier lowering and call lowering both
// invoke it with none) and emits a single "op" atom.
func namedOperatorHandler(command string) Handler {
	return func(ctx HandlerContext, mandatory, optional []Node) (Node, error) {
		return &Atom{Family: FamilyOp, TextValue: command, NodeMode: ctx.Mode, Loc: ctx.Token.Loc}, nil
	}
}

// DefaultHandlers is a small, testable set of function handlers covering the
// fixed-arity forms (frac, sqrt/root, the accent family) and the named
// operators. A production host overrides or extends this via WithHandler /
// WithHandlers; nothing in the core requires exactly this set.
var DefaultHandlers = map[string]Handler{
	"frac": fracHandler,
	"sqrt": sqrtHandler,

	"hat":       accentHandler(`\hat`),
	"bar":       accentHandler(`\bar`),
	"tilde":     accentHandler(`\tilde`),
	"dot":       accentHandler(`\dot`),
	"ddot":      accentHandler(`\ddot`),
	"vec":       accentHandler(`\vec`),
	"acute":     accentHandler(`\acute`),
	"grave":     accentHandler(`\grave`),
	"check":     accentHandler(`\check`),
	"breve":     accentHandler(`\breve`),
	"overline":  accentHandler(`\overline`),
	"underline": accentHandler(`\underline`),

	"sin":  namedOperatorHandler(`\sin`),
	"cos":  namedOperatorHandler(`\cos`),
	"tan":  namedOperatorHandler(`\tan`),
	"ln":   namedOperatorHandler(`\ln`),
	"log":  namedOperatorHandler(`\log`),
	"exp":  namedOperatorHandler(`\exp`),
	"lim":  namedOperatorHandler(`\lim`),
	"max":  namedOperatorHandler(`\max`),
	"min":  namedOperatorHandler(`\min`),
	"sum":  namedOperatorHandler(`\sum`),
	"prod": namedOperatorHandler(`\prod`),
	"int":  namedOperatorHandler(`\int`),
}

func cloneHandlers(src map[string]Handler) map[string]Handler {
	out := make(map[string]Handler, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
