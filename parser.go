package kapst

// Parser turns a source string into a node sequence. It holds a single
// token of lookahead, the current binding environment, and the resolved
// external collaborators (symbol table and function handlers).
type Parser struct {
	lex      *Lexer
	settings Settings
	mode     Mode
	env      bindings
	cfg      parseConfig

	peeked   Token
	havePeek bool
}

type parseConfig struct {
	symbols  SymbolTable
	handlers map[string]Handler
}

// ParseOption configures a Parser before it runs.
type ParseOption func(*parseConfig)

// WithSymbolTable overrides the symbol table consulted for literal-symbol
// classification.
func WithSymbolTable(t SymbolTable) ParseOption {
	return func(c *parseConfig) { c.symbols = t }
}

// WithHandler registers or overrides a single function handler by name.
func WithHandler(name string, h Handler) ParseOption {
	return func(c *parseConfig) { c.handlers[name] = h }
}

// WithHandlers registers or overrides a batch of function handlers.
func WithHandlers(hs map[string]Handler) ParseOption {
	return func(c *parseConfig) {
		for name, h := range hs {
			c.handlers[name] = h
		}
	}
}

// DisableDefaultHandlers removes every DefaultHandlers entry, leaving only
// handlers subsequently added by WithHandler / WithHandlers.
func DisableDefaultHandlers() ParseOption {
	return func(c *parseConfig) { c.handlers = map[string]Handler{} }
}

// stopSet names the token texts that terminate expression parsing in the
// current context (statement separator, argument separator, ...). It is
// consulted by parsePrimary, and by parsePostfixExpr for '^' and '_' (a
// script argument stops before its own base's next script).
type stopSet map[string]bool

// nonPrefixOps is the set of operator texts that never start a primary; a
// primary hitting one of these returns nothing, letting the caller decide
// whether that is an error.
var nonPrefixOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "^": true, "_": true,
	"=": true, "==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
}

var comparisonOps = map[string]bool{
	"=": true, "==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
	"->": true, "<-": true, "<->": true, "=>": true, "<=>": true,
}

// operatorSymbolMap gives the literal command text emitted for an operator
// token, for the handful of operators the core remaps rather than passing
// through verbatim.
var operatorSymbolMap = map[string]string{
	"*":   `\cdot`,
	"==":  "=",
	"!=":  `\ne`,
	"<=":  `\leq`,
	">=":  `\geq`,
	"->":  `\to`,
	"<-":  `\leftarrow`,
	"<->": `\leftrightarrow`,
	"=>":  `\Rightarrow`,
	"<=>": `\Leftrightarrow`,
}

func operatorSymbolText(op string) string {
	if s, ok := operatorSymbolMap[op]; ok {
		return s
	}
	return op
}

// Parse lexes and parses input, returning the resulting node sequence. The
// entire input must be consumed; anything left over after the final
// statement is a parse error rather than being silently ignored.
func Parse(input string, settings Settings, opts ...ParseOption) ([]Node, error) {
	cfg := parseConfig{
		symbols:  DefaultSymbolTable,
		handlers: cloneHandlers(DefaultHandlers),
	}
	for _, o := range opts {
		o(&cfg)
	}
	p := &Parser{
		lex:      NewLexer(input),
		settings: settings,
		mode:     ModeMath,
		env:      bindings{},
		cfg:      cfg,
	}
	return p.parseProgram()
}

func (p *Parser) fetch() (Token, error) {
	if p.havePeek {
		return p.peeked, nil
	}
	tok, err := p.lex.Lex()
	if err != nil {
		return Token{}, err
	}
	p.peeked = tok
	p.havePeek = true
	return tok, nil
}

func (p *Parser) consume() {
	p.havePeek = false
}

func (p *Parser) expectPunct(text string) (Token, error) {
	tok, err := p.fetch()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind == TokenEOF {
		return Token{}, &UnexpectedEndError{Got: tok}
	}
	if tok.Kind != TokenPunctuation || tok.Text != text {
		return Token{}, &ExpectedTokenError{Want: text, Got: tok}
	}
	p.consume()
	return tok, nil
}

// parseProgram parses the statement list: a sequence of let-bindings and
// expression statements separated by ';', ending at end of input. The
// result is the node sequence of the last expression statement, or nil if
// the input held none (including empty input).
func (p *Parser) parseProgram() ([]Node, error) {
	var result []Node
	for {
		tok, err := p.fetch()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			p.consume()
			return result, nil
		}
		if tok.Kind == TokenIdentifier && tok.Text == "let" {
			p.consume()
			if err := p.parseLetBinding(); err != nil {
				return nil, err
			}
		} else {
			seq, err := p.parseComparisonExpr(stopSet{";": true})
			if err != nil {
				return nil, err
			}
			result = seq
		}
		sep, err := p.fetch()
		if err != nil {
			return nil, err
		}
		switch {
		case sep.Kind == TokenPunctuation && sep.Text == ";":
			p.consume()
		case sep.Kind == TokenEOF:
			p.consume()
			return result, nil
		default:
			return nil, &ExpectedSemicolonOrEndError{Got: sep}
		}
	}
}

func (p *Parser) parseLetBinding() error {
	name, err := p.fetch()
	if err != nil {
		return err
	}
	if name.Kind != TokenIdentifier {
		return &ExpectedIdentifierAfterLetError{Got: name}
	}
	p.consume()
	if _, err := p.expectEqualsForLet(); err != nil {
		return err
	}
	seq, err := p.parseComparisonExpr(stopSet{";": true})
	if err != nil {
		return err
	}
	p.env[name.Text] = cloneNodes(seq)
	return nil
}

func (p *Parser) expectEqualsForLet() (Token, error) {
	tok, err := p.fetch()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind == TokenEOF {
		return Token{}, &UnexpectedEndError{Got: tok}
	}
	if tok.Kind != TokenOperator || tok.Text != "=" {
		return Token{}, &ExpectedTokenError{Want: "=", Got: tok}
	}
	p.consume()
	return tok, nil
}

// --- Precedence levels ---
// Each level below comparison is written as its own function rather than a
// single precedence-climbing loop, since the six levels aren't uniform: a
// script argument needs to enter at unary precedence directly, and fraction
// lowering needs to intercept multiplicative's own loop.

func (p *Parser) parseComparisonExpr(stop stopSet) ([]Node, error) {
	left, err := p.parseAdditiveExpr(stop)
	if err != nil {
		return nil, err
	}
	if len(left) == 0 {
		return left, nil
	}
	for {
		tok, err := p.fetch()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenOperator || !comparisonOps[tok.Text] {
			return left, nil
		}
		p.consume()
		opNode := lookupSymbol(p.cfg.symbols, p.mode, operatorSymbolText(tok.Text), tok.Loc)
		rhs, err := p.parseAdditiveExpr(stop)
		if err != nil {
			return nil, err
		}
		if len(rhs) == 0 {
			return nil, &ExpectedExpressionAfterOperatorError{Got: tok}
		}
		left = append(left, opNode)
		left = append(left, rhs...)
	}
}

func (p *Parser) parseAdditiveExpr(stop stopSet) ([]Node, error) {
	left, err := p.parseMultiplicativeExpr(stop)
	if err != nil {
		return nil, err
	}
	if len(left) == 0 {
		return left, nil
	}
	for {
		tok, err := p.fetch()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenOperator || (tok.Text != "+" && tok.Text != "-") {
			return left, nil
		}
		p.consume()
		opNode := lookupSymbol(p.cfg.symbols, p.mode, tok.Text, tok.Loc)
		rhs, err := p.parseMultiplicativeExpr(stop)
		if err != nil {
			return nil, err
		}
		if len(rhs) == 0 {
			return nil, &ExpectedExpressionAfterOperatorError{Got: tok}
		}
		left = append(left, opNode)
		left = append(left, rhs...)
	}
}

func (p *Parser) parseMultiplicativeExpr(stop stopSet) ([]Node, error) {
	left, err := p.parseUnaryExpr(stop)
	if err != nil {
		return nil, err
	}
	if len(left) == 0 {
		return left, nil
	}
	for {
		tok, err := p.fetch()
		if err != nil {
			return nil, err
		}
		switch {
		case tok.Kind == TokenOperator && tok.Text == "/":
			p.consume()
			denominator, err := p.parseUnaryExpr(stop)
			if err != nil {
				return nil, err
			}
			if len(denominator) == 0 {
				return nil, &ExpectedExpressionAfterOperatorError{Got: tok}
			}
			num := argify(left)
			den := argify(denominator)
			fracNode, err := p.invokeHandler("frac", tok, []Node{num, den}, nil)
			if err != nil {
				return nil, err
			}
			left = []Node{fracNode}
		case tok.Kind == TokenOperator && tok.Text == "*":
			p.consume()
			opNode := lookupSymbol(p.cfg.symbols, p.mode, operatorSymbolText(tok.Text), tok.Loc)
			rhs, err := p.parseUnaryExpr(stop)
			if err != nil {
				return nil, err
			}
			if len(rhs) == 0 {
				return nil, &ExpectedExpressionAfterOperatorError{Got: tok}
			}
			left = append(left, opNode)
			left = append(left, rhs...)
		case canStartPrimary(tok):
			rhs, err := p.parseUnaryExpr(stop)
			if err != nil {
				return nil, err
			}
			if len(rhs) == 0 {
				return left, nil
			}
			left = append(left, rhs...)
		default:
			return left, nil
		}
	}
}

// canStartPrimary reports whether tok could begin a primary, used to gate
// implicit multiplication by juxtaposition.
func canStartPrimary(tok Token) bool {
	switch tok.Kind {
	case TokenIdentifier, TokenNumber, TokenString, TokenSymbol:
		return true
	case TokenPunctuation:
		return tok.Text == "(" || tok.Text == "[" || tok.Text == "{"
	default:
		return false
	}
}

func (p *Parser) parseUnaryExpr(stop stopSet) ([]Node, error) {
	tok, err := p.fetch()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenOperator && tok.Text == "+" {
		p.consume()
		body, err := p.parseUnaryExpr(stop)
		if err != nil {
			return nil, err
		}
		if len(body) == 0 {
			return nil, &ExpectedExpressionAfterOperatorError{Got: tok}
		}
		return body, nil
	}
	if tok.Kind == TokenOperator && tok.Text == "-" {
		p.consume()
		body, err := p.parseUnaryExpr(stop)
		if err != nil {
			return nil, err
		}
		if len(body) == 0 {
			return nil, &ExpectedExpressionAfterOperatorError{Got: tok}
		}
		minusNode := lookupSymbol(p.cfg.symbols, p.mode, "-", tok.Loc)
		return append([]Node{minusNode}, body...), nil
	}
	n, err := p.parsePostfixExpr(stop)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	return []Node{n}, nil
}

func (p *Parser) parsePostfixExpr(stop stopSet) (Node, error) {
	base, err := p.parsePrimary(stop)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, nil
	}
	var sup, sub Node
	for {
		tok, err := p.fetch()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenOperator || (tok.Text != "^" && tok.Text != "_") || stop[tok.Text] {
			break
		}
		p.consume()
		arg, err := p.parseScriptArgument(tok)
		if err != nil {
			return nil, err
		}
		if tok.Text == "^" {
			if sup != nil {
				return nil, &DoubleSuperscriptError{Got: tok}
			}
			sup = arg
		} else {
			if sub != nil {
				return nil, &DoubleSubscriptError{Got: tok}
			}
			sub = arg
		}
	}
	if sup == nil && sub == nil {
		return base, nil
	}
	return &Supsub{Base: base, Sup: sup, Sub: sub}, nil
}

// parseScriptArgument parses the argument of a '^' or '_' already consumed
// (tok). A brace-delimited argument is parsed with the full grammar down to
// its own '}'; otherwise the argument is a single unary-precedence
// expression whose stop set holds '^' and '_', so a following script
// attaches to the outer base (and a repeated one is reported as a double
// script) rather than to the argument.
func (p *Parser) parseScriptArgument(tok Token) (Node, error) {
	peek, err := p.fetch()
	if err != nil {
		return nil, err
	}
	if peek.Kind == TokenPunctuation && peek.Text == "{" {
		p.consume()
		inner, err := p.parseComparisonExpr(stopSet{})
		if err != nil {
			return nil, err
		}
		if _, err := p.expectPunct("}"); err != nil {
			return nil, err
		}
		if len(inner) == 0 {
			return nil, &ExpectedScriptArgumentError{Got: tok}
		}
		return argify(inner), nil
	}
	seq, err := p.parseUnaryExpr(stopSet{"^": true, "_": true})
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, &ExpectedScriptArgumentError{Got: tok}
	}
	return argify(seq), nil
}

// argify collapses a node sequence into a single node: empty becomes an
// empty ordgroup, length 1 collapses to its element, otherwise it becomes an
// ordgroup.
func argify(seq []Node) Node {
	switch len(seq) {
	case 0:
		return &Ordgroup{Body: nil}
	case 1:
		return seq[0]
	default:
		return &Ordgroup{Body: seq}
	}
}

// --- Primary ---

func (p *Parser) parsePrimary(stop stopSet) (Node, error) {
	tok, err := p.fetch()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case TokenIdentifier:
		p.consume()
		return p.lowerIdentifier(tok)
	case TokenNumber:
		p.consume()
		return &Textord{TextValue: tok.Text, NodeMode: p.mode, Loc: tok.Loc}, nil
	case TokenString:
		p.consume()
		return p.lowerString(tok), nil
	case TokenSymbol:
		p.consume()
		return lookupSymbol(p.cfg.symbols, p.mode, tok.Text, tok.Loc), nil
	case TokenPunctuation:
		if stop[tok.Text] {
			return nil, nil
		}
		switch tok.Text {
		case "(", "[":
			p.consume()
			return p.parseVisibleGroup(tok)
		case "{":
			p.consume()
			return p.parseInvisibleGroup(tok)
		case ")", "]", "}":
			return nil, nil
		default:
			p.consume()
			return lookupSymbol(p.cfg.symbols, p.mode, tok.Text, tok.Loc), nil
		}
	case TokenOperator:
		if stop[tok.Text] || nonPrefixOps[tok.Text] {
			return nil, nil
		}
		p.consume()
		return lookupSymbol(p.cfg.symbols, p.mode, tok.Text, tok.Loc), nil
	default: // TokenEOF
		return nil, nil
	}
}

func normalizeDelimText(s string) string {
	switch s {
	case "{":
		return `\{`
	case "}":
		return `\}`
	default:
		return s
	}
}

func matchingCloser(open string) string {
	if open == "(" {
		return ")"
	}
	return "]"
}

func (p *Parser) parseVisibleGroup(openTok Token) (Node, error) {
	inner, err := p.parseComparisonExpr(stopSet{})
	if err != nil {
		return nil, err
	}
	closeTok, err := p.expectPunct(matchingCloser(openTok.Text))
	if err != nil {
		return nil, err
	}
	body := make([]Node, 0, len(inner)+2)
	body = append(body, lookupSymbol(p.cfg.symbols, p.mode, normalizeDelimText(openTok.Text), openTok.Loc))
	body = append(body, inner...)
	body = append(body, lookupSymbol(p.cfg.symbols, p.mode, normalizeDelimText(closeTok.Text), closeTok.Loc))
	return &Ordgroup{Body: body}, nil
}

func (p *Parser) parseInvisibleGroup(openTok Token) (Node, error) {
	inner, err := p.parseComparisonExpr(stopSet{})
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	return &Ordgroup{Body: inner}, nil
}

func (p *Parser) lowerString(tok Token) Node {
	body := make([]Node, 0, len(tok.Text))
	for i := 0; i < len(tok.Text); i++ {
		body = append(body, &Textord{TextValue: string(tok.Text[i]), NodeMode: ModeText, Loc: tok.Loc})
	}
	return &Text{Body: body}
}

// --- Identifier lowering ---

func (p *Parser) lowerIdentifier(tok Token) (Node, error) {
	name := tok.Text
	next, err := p.fetch()
	if err != nil {
		return nil, err
	}
	if next.Kind == TokenPunctuation && next.Text == "(" {
		p.consume()
		return p.lowerCall(tok, name)
	}
	if bound, ok := p.env[name]; ok {
		cloned := cloneNodes(bound)
		return argify(cloned), nil
	}
	if sym, ok := namedSymbols[name]; ok {
		return lookupSymbol(p.cfg.symbols, p.mode, sym, tok.Loc), nil
	}
	if isNamedOperator(name) {
		return p.invokeHandler(name, tok, nil, nil)
	}
	return nameAsSymbols(name, p.mode, tok.Loc, p.cfg.symbols), nil
}

func (p *Parser) invokeHandler(name string, tok Token, mandatory, optional []Node) (Node, error) {
	h, ok := p.cfg.handlers[name]
	if !ok || h == nil {
		return nil, &UnsupportedFunctionError{Name: name, Token: tok}
	}
	ctx := HandlerContext{FuncName: name, Settings: p.settings, Mode: p.mode, Token: tok}
	n, err := h(ctx, mandatory, optional)
	if err != nil {
		return nil, wrapHandlerError(name, tok, err)
	}
	return n, nil
}

// --- Call parsing and lowering ---

type callArgs struct {
	args  [][]Node
	seps  []Token
	open  Token
	close Token
}

// parseArgList parses a standard comma-separated argument list up to and
// including the closing ')'. The opening '(' has already been consumed.
func (p *Parser) parseArgList(open Token) (callArgs, error) {
	var out callArgs
	out.open = open
	tok, err := p.fetch()
	if err != nil {
		return out, err
	}
	if tok.Kind == TokenPunctuation && tok.Text == ")" {
		p.consume()
		out.close = tok
		return out, nil
	}
	stop := stopSet{",": true}
	for {
		seq, err := p.parseComparisonExpr(stop)
		if err != nil {
			return out, err
		}
		out.args = append(out.args, seq)
		sep, err := p.fetch()
		if err != nil {
			return out, err
		}
		switch {
		case sep.Kind == TokenPunctuation && sep.Text == ",":
			p.consume()
			out.seps = append(out.seps, sep)
		case sep.Kind == TokenPunctuation && sep.Text == ")":
			p.consume()
			out.close = sep
			return out, nil
		case sep.Kind == TokenEOF:
			return out, &UnexpectedEndError{Got: sep}
		default:
			return out, &ExpectedTokenError{Want: ")", Got: sep}
		}
	}
}

func (p *Parser) buildParenArgs(a callArgs) Node {
	body := make([]Node, 0, 2*len(a.args)+1)
	body = append(body, lookupSymbol(p.cfg.symbols, p.mode, "(", a.open.Loc))
	for i, arg := range a.args {
		if i > 0 {
			body = append(body, lookupSymbol(p.cfg.symbols, p.mode, ",", a.seps[i-1].Loc))
		}
		body = append(body, argify(arg))
	}
	body = append(body, lookupSymbol(p.cfg.symbols, p.mode, ")", a.close.Loc))
	return &Ordgroup{Body: body}
}

func (p *Parser) lowerCall(tok Token, name string) (Node, error) {
	if name == "cases" {
		return p.lowerCases(tok)
	}
	a, err := p.parseArgList(tok)
	if err != nil {
		return nil, err
	}
	switch {
	case name == "frac":
		if len(a.args) != 2 {
			return nil, &ArityMismatchError{Name: name, Expected: 2, Got: len(a.args), Token: tok}
		}
		return p.invokeHandler("frac", tok, []Node{argify(a.args[0]), argify(a.args[1])}, nil)
	case name == "sqrt":
		if len(a.args) != 1 {
			return nil, &ArityMismatchError{Name: name, Expected: 1, Got: len(a.args), Token: tok}
		}
		return p.invokeHandler("sqrt", tok, []Node{argify(a.args[0])}, []Node{nil})
	case name == "root":
		if len(a.args) != 2 {
			return nil, &ArityMismatchError{Name: name, Expected: 2, Got: len(a.args), Token: tok}
		}
		index := argify(a.args[0])
		return p.invokeHandler("sqrt", tok, []Node{argify(a.args[1])}, []Node{index})
	case name == "accent":
		if len(a.args) != 2 {
			return nil, &ArityMismatchError{Name: name, Expected: 2, Got: len(a.args), Token: tok}
		}
		base := argify(a.args[0])
		kindText, ok := extractPlainText(a.args[1])
		if !ok {
			return nil, &AccentKindMustBeTextError{Token: tok}
		}
		handlerName, ok := accentKindTable[normalizeAccentKind(kindText)]
		if !ok {
			return nil, &UnsupportedAccentError{Kind: kindText, Token: tok}
		}
		return p.invokeHandler(handlerName, tok, []Node{base}, nil)
	case shortAccentForms[name]:
		if len(a.args) != 1 {
			return nil, &ArityMismatchError{Name: name, Expected: 1, Got: len(a.args), Token: tok}
		}
		return p.invokeHandler(name, tok, []Node{argify(a.args[0])}, nil)
	case delimPairsHas(name):
		if len(a.args) != 1 {
			return nil, &ArityMismatchError{Name: name, Expected: 1, Got: len(a.args), Token: tok}
		}
		pair := delimPairs[name]
		return &Leftright{Left: pair[0], Right: pair[1], Body: a.args[0]}, nil
	case isNamedOperator(name):
		opNode, err := p.invokeHandler(name, tok, nil, nil)
		if err != nil {
			return nil, err
		}
		return &Ordgroup{Body: []Node{opNode, p.buildParenArgs(a)}}, nil
	default:
		nameNode := nameAsSymbols(name, p.mode, tok.Loc, p.cfg.symbols)
		return &Ordgroup{Body: []Node{nameNode, p.buildParenArgs(a)}}, nil
	}
}

// --- cases(...) lowering ---

func (p *Parser) lowerCases(tok Token) (Node, error) {
	peek, err := p.fetch()
	if err != nil {
		return nil, err
	}
	if peek.Kind == TokenPunctuation && peek.Text == ")" {
		p.consume()
		return nil, &EmptyCasesError{Token: tok}
	}
	stop := stopSet{",": true, ";": true}
	var rows [][][]Node
	var row [][]Node
	for {
		seq, err := p.parseComparisonExpr(stop)
		if err != nil {
			return nil, err
		}
		row = append(row, seq)
		sep, err := p.fetch()
		if err != nil {
			return nil, err
		}
		switch {
		case sep.Kind == TokenPunctuation && sep.Text == ",":
			p.consume()
		case sep.Kind == TokenPunctuation && sep.Text == ";":
			p.consume()
			rows = append(rows, row)
			row = nil
			nxt, err := p.fetch()
			if err != nil {
				return nil, err
			}
			if nxt.Kind == TokenPunctuation && nxt.Text == ")" {
				p.consume()
				return p.buildCasesArray(rows)
			}
		case sep.Kind == TokenPunctuation && sep.Text == ")":
			p.consume()
			rows = append(rows, row)
			return p.buildCasesArray(rows)
		case sep.Kind == TokenEOF:
			return nil, &UnexpectedEndError{Got: sep}
		default:
			return nil, &ExpectedTokenError{Want: ")", Got: sep}
		}
	}
}

func (p *Parser) buildCasesArray(rows [][][]Node) (Node, error) {
	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	cols := make([]ColumnDef, maxCols)
	for i := range cols {
		cols[i] = ColumnDef{Align: "l"}
	}
	if maxCols > 1 {
		cols[0].Postgap = 1.0
	}
	body := make([][]Node, len(rows))
	for ri, row := range rows {
		cells := make([]Node, maxCols)
		for ci := 0; ci < maxCols; ci++ {
			var seq []Node
			if ci < len(row) {
				seq = row[ci]
			}
			cells[ci] = &Styling{Style: "text", Body: []Node{argify(seq)}}
		}
		body[ri] = cells
	}
	var rowGaps []*float64
	if len(rows) > 1 {
		rowGaps = make([]*float64, len(rows)-1)
	}
	hlines := make([][]string, len(rows)+1)
	for i := range hlines {
		hlines[i] = []string{}
	}
	arr := &Array{Cols: cols, Body: body, RowGaps: rowGaps, HLinesBeforeRow: hlines, Arraystretch: 1.2}
	return &Leftright{Left: `\{`, Right: ".", Body: []Node{arr}}, nil
}
