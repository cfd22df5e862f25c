package dom

import (
	g "maragu.dev/gomponents"
)

// Gomponent lowers a parsed tree onto gomponents, so that fragments
// parsed at runtime can be spliced into gomponents views.
func Gomponent(n Node) g.Node {
	switch t := n.(type) {
	case Element:
		args := make([]g.Node, 0, len(t.Attributes)+len(t.Children))
		for _, name := range attrOrder(t) {
			args = append(args, g.Attr(name, t.Attributes[name]))
		}
		for _, child := range t.Children {
			args = append(args, Gomponent(child))
		}
		return g.El(t.Tag, args...)
	case Text:
		return g.Text(t.Content)
	default:
		return nil
	}
}
