package kapst

// bindings is the flat let-binding environment: each name maps to the node
// sequence it was bound to. There is no scoping beyond the single statement
// list a Parser processes; a later let simply overwrites an earlier one.
type bindings map[string][]Node

// cloneNodes deep-clones a node sequence, stripping source locations from
// every leaf so that a substituted binding never claims a source range it
// does not occupy.
func cloneNodes(ns []Node) []Node {
	if ns == nil {
		return nil
	}
	out := make([]Node, len(ns))
	for i, n := range ns {
		out[i] = cloneNode(n)
	}
	return out
}

func cloneNode(n Node) Node {
	if n == nil {
		return nil
	}
	switch v := n.(type) {
	case *Textord:
		return &Textord{TextValue: v.TextValue, NodeMode: v.NodeMode}
	case *Mathord:
		return &Mathord{TextValue: v.TextValue, NodeMode: v.NodeMode}
	case *Atom:
		return &Atom{Family: v.Family, TextValue: v.TextValue, NodeMode: v.NodeMode}
	case *Ordgroup:
		return &Ordgroup{Body: cloneNodes(v.Body)}
	case *Supsub:
		return &Supsub{Base: cloneNode(v.Base), Sup: cloneNode(v.Sup), Sub: cloneNode(v.Sub)}
	case *Leftright:
		return &Leftright{Left: v.Left, Right: v.Right, Body: cloneNodes(v.Body)}
	case *Text:
		return &Text{Body: cloneNodes(v.Body)}
	case *Array:
		cols := append([]ColumnDef(nil), v.Cols...)
		body := make([][]Node, len(v.Body))
		for i, row := range v.Body {
			body[i] = cloneNodes(row)
		}
		gaps := append([]*float64(nil), v.RowGaps...)
		hlines := make([][]string, len(v.HLinesBeforeRow))
		for i, h := range v.HLinesBeforeRow {
			hlines[i] = append([]string(nil), h...)
		}
		return &Array{Cols: cols, Body: body, RowGaps: gaps, HLinesBeforeRow: hlines, Arraystretch: v.Arraystretch}
	case *Styling:
		return &Styling{Style: v.Style, Body: cloneNodes(v.Body)}
	case *HandlerNode:
		data := make(map[string]any, len(v.Data))
		for k, val := range v.Data {
			if nv, ok := val.(Node); ok {
				data[k] = cloneNode(nv)
			} else {
				data[k] = val
			}
		}
		return &HandlerNode{Tag: v.Tag, Data: data, Children: cloneNodes(v.Children)}
	default:
		return n
	}
}
