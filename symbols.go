package kapst

// Atom families the symbol table may return. Any other Group value is used
// directly as the tag of the emitted node (e.g. "mathord", "textord", "op").
const (
	FamilyOrd   = "ord"
	FamilyOp    = "op"
	FamilyBin   = "bin"
	FamilyRel   = "rel"
	FamilyOpen  = "open"
	FamilyClose = "close"
	FamilyPunct = "punct"
)

var atomFamilies = map[string]bool{
	FamilyOrd:   true,
	FamilyOp:    true,
	FamilyBin:   true,
	FamilyRel:   true,
	FamilyOpen:  true,
	FamilyClose: true,
	FamilyPunct: true,
}

// SymbolEntry is the result of a successful symbol table lookup.
type SymbolEntry struct {
	// Group is either one of the atom family constants above, in which case
	// the parser emits an Atom{Family: Group}, or any other tag ("mathord",
	// "textord", "op", ...) used directly.
	Group string
}

// SymbolTable is the read-only, mode-indexed table the parser consults to
// classify atoms. A production host supplies its own full catalogue; the
// core ships only a small DefaultSymbolTable so the package is testable in
// isolation.
type SymbolTable interface {
	Lookup(mode Mode, text string) (SymbolEntry, bool)
}

type symbolKey struct {
	mode Mode
	text string
}

// mapSymbolTable is a SymbolTable backed by a plain map, keyed by mode and
// literal text.
type mapSymbolTable map[symbolKey]SymbolEntry

func (t mapSymbolTable) Lookup(mode Mode, text string) (SymbolEntry, bool) {
	e, ok := t[symbolKey{mode, text}]
	return e, ok
}

// DefaultSymbolTable is a small, explicitly non-exhaustive symbol table
// covering common relation and binary operator glyphs plus the delimiter and
// punctuation glyphs. Any lookup miss falls back to Textord in the parser, so
// omissions never lose content.
var DefaultSymbolTable SymbolTable = mapSymbolTable{
	{ModeMath, "="}:              {Group: FamilyRel},
	{ModeMath, "<"}:              {Group: FamilyRel},
	{ModeMath, ">"}:              {Group: FamilyRel},
	{ModeMath, `\leq`}:           {Group: FamilyRel},
	{ModeMath, `\geq`}:           {Group: FamilyRel},
	{ModeMath, `\ne`}:            {Group: FamilyRel},
	{ModeMath, `\to`}:            {Group: FamilyRel},
	{ModeMath, `\leftarrow`}:     {Group: FamilyRel},
	{ModeMath, `\leftrightarrow`}: {Group: FamilyRel},
	{ModeMath, `\Rightarrow`}:    {Group: FamilyRel},
	{ModeMath, `\Leftrightarrow`}: {Group: FamilyRel},
	{ModeMath, "+"}:              {Group: FamilyBin},
	{ModeMath, "-"}:              {Group: FamilyBin},
	{ModeMath, `\cdot`}:          {Group: FamilyBin},
	{ModeMath, "("}:              {Group: FamilyOpen},
	{ModeMath, "["}:              {Group: FamilyOpen},
	{ModeMath, `\{`}:             {Group: FamilyOpen},
	{ModeMath, ")"}:              {Group: FamilyClose},
	{ModeMath, "]"}:              {Group: FamilyClose},
	{ModeMath, `\}`}:             {Group: FamilyClose},
	{ModeMath, ","}:              {Group: FamilyPunct},
	{ModeMath, ";"}:              {Group: FamilyPunct},
	{ModeMath, "|"}:              {Group: FamilyPunct},
}

// lookupSymbol classifies text in mode using table, falling back to
// Textord{text} when the table has no entry, so an unrecognized symbol
// never loses content.
func lookupSymbol(table SymbolTable, mode Mode, text string, loc SourceLocation) Node {
	if table != nil {
		if e, ok := table.Lookup(mode, text); ok {
			if atomFamilies[e.Group] {
				return &Atom{Family: e.Group, TextValue: text, NodeMode: mode, Loc: loc}
			}
			return newTaggedLeaf(e.Group, text, mode, loc)
		}
	}
	return &Textord{TextValue: text, NodeMode: mode, Loc: loc}
}

// newTaggedLeaf constructs a leaf node whose tag is exactly group, for the
// small set of non-atom tags the symbol table interface may return.
func newTaggedLeaf(group, text string, mode Mode, loc SourceLocation) Node {
	switch group {
	case "mathord":
		return &Mathord{TextValue: text, NodeMode: mode, Loc: loc}
	case "textord":
		return &Textord{TextValue: text, NodeMode: mode, Loc: loc}
	default:
		// Any other tag (e.g. "op") is represented as an Atom carrying the
		// tag as its family so downstream builders can still type-switch on
		// Type(); the core does not define bespoke Go types for every
		// conceivable symbol-table tag, since the catalogue itself is a
		// Non-goal.
		return &Atom{Family: group, TextValue: text, NodeMode: mode, Loc: loc}
	}
}
