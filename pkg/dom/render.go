package dom

import (
	"io"
	"sort"
	"strings"
)

// voidTags are rendered in self-closing form when they have no children.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

var textEscaper = strings.NewReplacer("<", "&lt;")

// Render serializes a tree back into markup. Attributes come out with
// id and class first and the rest in name order, so output is
// deterministic regardless of map iteration.
func Render(n Node) string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}

// Fprint writes the serialized tree to w.
func Fprint(w io.Writer, n Node) error {
	_, err := io.WriteString(w, Render(n))
	return err
}

func writeNode(sb *strings.Builder, n Node) {
	switch t := n.(type) {
	case Element:
		writeElement(sb, t)
	case Text:
		sb.WriteString(textEscaper.Replace(t.Content))
	}
}

func writeElement(sb *strings.Builder, el Element) {
	sb.WriteByte('<')
	sb.WriteString(el.Tag)
	for _, name := range attrOrder(el) {
		sb.WriteByte(' ')
		sb.WriteString(name)
		sb.WriteString(`="`)
		sb.WriteString(el.Attributes[name])
		sb.WriteByte('"')
	}

	if len(el.Children) == 0 && voidTags[el.Tag] {
		sb.WriteString("/>")
		return
	}

	sb.WriteByte('>')
	for _, child := range el.Children {
		writeNode(sb, child)
	}
	sb.WriteString("</")
	sb.WriteString(el.Tag)
	sb.WriteByte('>')
}

// attrOrder returns attribute names with id and class pulled to the
// front, the remainder sorted.
func attrOrder(el Element) []string {
	names := make([]string, 0, len(el.Attributes))
	for _, special := range []string{"id", "class"} {
		if _, ok := el.Attributes[special]; ok {
			names = append(names, special)
		}
	}
	rest := make([]string, 0, len(el.Attributes))
	for name := range el.Attributes {
		if name == "id" || name == "class" {
			continue
		}
		rest = append(rest, name)
	}
	sort.Strings(rest)
	return append(names, rest...)
}
