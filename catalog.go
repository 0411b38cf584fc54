package kapst

import "strings"

// namedSymbols maps a bare identifier spelling to the literal command text
// emitted for it. This table exists purely so common Greek letters and a
// couple of aliases work without requiring the host's symbol table to know
// about identifiers at all; a production host is free to shadow any of these
// via a bound name or a richer SymbolTable entry for the emitted text.
var namedSymbols = map[string]string{
	"alpha": `\alpha`, "beta": `\beta`, "gamma": `\gamma`, "delta": `\delta`,
	"epsilon": `\epsilon`, "zeta": `\zeta`, "eta": `\eta`, "theta": `\theta`,
	"iota": `\iota`, "kappa": `\kappa`, "lambda": `\lambda`, "mu": `\mu`,
	"nu": `\nu`, "xi": `\xi`, "pi": `\pi`, "rho": `\rho`, "sigma": `\sigma`,
	"tau": `\tau`, "upsilon": `\upsilon`, "phi": `\phi`, "chi": `\chi`,
	"psi": `\psi`, "omega": `\omega`,
	"Gamma": `\Gamma`, "Delta": `\Delta`, "Theta": `\Theta`, "Lambda": `\Lambda`,
	"Xi": `\Xi`, "Pi": `\Pi`, "Sigma": `\Sigma`, "Upsilon": `\Upsilon`,
	"Phi": `\Phi`, "Psi": `\Psi`, "Omega": `\Omega`,
	"oo": `\infty`, "infty": `\infty`,
}

// namedOperators is the fixed set of identifiers that lower to an external
// handler invocation both bare (identifier lowering) and as a call head
// (call lowering).
var namedOperators = map[string]bool{
	"sin": true, "cos": true, "tan": true, "ln": true, "log": true,
	"exp": true, "lim": true, "max": true, "min": true, "sum": true,
	"prod": true, "int": true,
}

func isNamedOperator(name string) bool { return namedOperators[name] }

// accentKindTable maps a normalized accent(base, kind) kind string to the
// DefaultHandlers key that builds it. "arrow" aliases "vec".
var accentKindTable = map[string]string{
	"hat": "hat", "bar": "bar", "tilde": "tilde", "dot": "dot", "ddot": "ddot",
	"vec": "vec", "arrow": "vec", "acute": "acute", "grave": "grave",
	"check": "check", "breve": "breve", "overline": "overline",
	"underline": "underline",
}

func normalizeAccentKind(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// delimPairs gives the left/right delimiter command text for the fixed-arity
// leftright-producing call forms.
var delimPairs = map[string][2]string{
	"abs":   {"|", "|"},
	"norm":  {`\|`, `\|`},
	"floor": {`\lfloor`, `\rfloor`},
	"ceil":  {`\lceil`, `\rceil`},
}

func delimPairsHas(name string) bool {
	_, ok := delimPairs[name]
	return ok
}

// shortAccentForms is the set of call names that lower directly to an accent
// handler with the call name itself as the accent kind.
var shortAccentForms = map[string]bool{
	"hat": true, "bar": true, "tilde": true, "dot": true, "ddot": true,
	"vec": true, "overline": true, "underline": true,
}

// nameAsSymbols renders name as either a single symbol node (length 1) or an
// ordgroup of one symbol node per byte (length > 1), used both for
// identifier lowering and for the unrecognized-call fallback.
func nameAsSymbols(name string, mode Mode, loc SourceLocation, table SymbolTable) Node {
	if len(name) == 1 {
		return lookupSymbol(table, mode, name, loc)
	}
	return splitIdentifierChars(name, mode, loc, table)
}

func splitIdentifierChars(name string, mode Mode, loc SourceLocation, table SymbolTable) Node {
	body := make([]Node, 0, len(name))
	for i := 0; i < len(name); i++ {
		charLoc := SourceLocation{Start: loc.Start + i, End: loc.Start + i + 1, Source: loc.Source}
		body = append(body, lookupSymbol(table, mode, string(name[i]), charLoc))
	}
	return &Ordgroup{Body: body}
}
