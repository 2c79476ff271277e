package svg

import (
	"strings"

	"github.com/beevik/etree"
)

// serializeBody re-serializes the children of the root <svg> element into a
// single markup string, excluding the wrapper itself. Comments and
// processing instructions are dropped; whitespace-only text is elided.
func serializeBody(root *etree.Element) string {
	var sb strings.Builder
	for _, child := range root.Child {
		writeNode(&sb, child)
	}
	return sb.String()
}

func writeNode(sb *strings.Builder, tok etree.Token) {
	switch node := tok.(type) {
	case *etree.Element:
		writeElement(sb, node)
	case *etree.CharData:
		if strings.TrimSpace(node.Data) != "" {
			sb.WriteString(escapeXML(node.Data))
		}
	}
}

func writeElement(sb *strings.Builder, el *etree.Element) {
	sb.WriteByte('<')
	sb.WriteString(el.Tag)

	for _, attr := range el.Attr {
		sb.WriteByte(' ')
		sb.WriteString(attr.Key)
		sb.WriteString(`="`)
		sb.WriteString(escapeXML(attr.Value))
		sb.WriteByte('"')
	}

	if hasRenderableChildren(el) {
		sb.WriteByte('>')
		for _, child := range el.Child {
			writeNode(sb, child)
		}
		sb.WriteString("</")
		sb.WriteString(el.Tag)
		sb.WriteByte('>')
	} else {
		sb.WriteString("/>")
	}
}

// hasRenderableChildren reports whether the element must be written with an
// explicit end tag: any non-text child, or text with non-whitespace content.
// Elements with only whitespace text stay self-closing.
func hasRenderableChildren(el *etree.Element) bool {
	for _, child := range el.Child {
		cd, isText := child.(*etree.CharData)
		if !isText {
			return true
		}
		if strings.TrimSpace(cd.Data) != "" {
			return true
		}
	}
	return false
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escapeXML escapes the five XML special characters.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
