package kapst

// extractPlainText reduces a node sequence to plain text, used for the
// second argument of accent(base, kind). It succeeds only when every node in
// the sequence (recursively through ordgroups) is a character-bearing leaf
// or a Text run of such leaves; anything else (a supsub, a handler node, an
// array, ...) fails the reduction.
func extractPlainText(nodes []Node) (string, bool) {
	var sb []byte
	var walk func([]Node) bool
	walk = func(ns []Node) bool {
		for _, n := range ns {
			switch v := n.(type) {
			case *Textord:
				sb = append(sb, v.TextValue...)
			case *Mathord:
				sb = append(sb, v.TextValue...)
			case *Atom:
				sb = append(sb, v.TextValue...)
			case *Ordgroup:
				if !walk(v.Body) {
					return false
				}
			case *Text:
				for _, c := range v.Body {
					to, ok := c.(*Textord)
					if !ok {
						return false
					}
					sb = append(sb, to.TextValue...)
				}
			default:
				return false
			}
		}
		return true
	}
	if !walk(nodes) {
		return "", false
	}
	return string(sb), true
}
