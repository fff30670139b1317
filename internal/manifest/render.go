package manifest

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/romanpravda/scormpack/pkg/scormpack"
)

// IndentUnit is written once per nesting level.
const IndentUnit = "  "

// Render serializes nodes into a single XML document with a UTF-8 declaration.
// Every node must have a name, and every rendered value and attribute must be
// valid UTF-8 without characters XML 1.0 forbids (control characters other
// than tab, newline and carriage return). Otherwise the error matches
// scormpack.ErrInvalidSchema and no output is produced.
//
// An empty string value renders like an absent one, as <x></x>.
func Render(nodes []*Node) (string, error) {
	var b strings.Builder
	if err := RenderTo(&b, nodes); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderTo writes the document for nodes to w. The tree is validated before
// anything is written.
func RenderTo(w io.Writer, nodes []*Node) error {
	for i, n := range nodes {
		if err := validate(n, fmt.Sprintf("[%d]", i)); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", IndentUnit)
	for _, n := range nodes {
		if err := encodeNode(enc, n); err != nil {
			return err
		}
	}
	if err := enc.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}

func validate(n *Node, path string) error {
	if n == nil {
		return fmt.Errorf("nil node at %s: %w", path, scormpack.ErrInvalidSchema)
	}
	if n.Name == "" {
		return fmt.Errorf("node without name at %s: %w", path, scormpack.ErrInvalidSchema)
	}
	for _, a := range n.Attrs {
		if !isXMLText(a.Value.Text()) {
			return fmt.Errorf("attribute %s of %s/%s is not valid XML text: %w", a.Name, path, n.Name, scormpack.ErrInvalidSchema)
		}
	}
	if len(n.Children) == 0 && n.Value.IsSet() && !isXMLText(n.Value.Text()) {
		return fmt.Errorf("value of %s/%s is not valid XML text: %w", path, n.Name, scormpack.ErrInvalidSchema)
	}
	for i, c := range n.Children {
		if err := validate(c, fmt.Sprintf("%s/%s[%d]", path, n.Name, i)); err != nil {
			return err
		}
	}
	return nil
}

func encodeNode(enc *xml.Encoder, n *Node) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Name}}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value.Text()})
	}
	if err := enc.EncodeToken(start); err != nil {
		return fmt.Errorf("failed to encode <%s>: %w", n.Name, err)
	}

	if len(n.Children) > 0 {
		for _, c := range n.Children {
			if err := encodeNode(enc, c); err != nil {
				return err
			}
		}
	} else if n.Value.IsSet() {
		if err := enc.EncodeToken(xml.CharData(n.Value.Text())); err != nil {
			return fmt.Errorf("failed to encode text of <%s>: %w", n.Name, err)
		}
	}

	return enc.EncodeToken(start.End())
}

// isXMLText reports whether s is valid UTF-8 made only of XML 1.0 Char runes.
func isXMLText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= 0x10FFFF:
		default:
			return false
		}
	}
	return true
}
