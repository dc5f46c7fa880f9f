package schemaxml

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"

	"github.com/vvka-141/traceschema/pkg/traceschema"
)

// Serialize renders ctx as an indented XML document.
func Serialize(ctx *traceschema.SchemaContext) (string, error) {
	return SerializeIndent(ctx, DefaultIndent)
}

// SerializeIndent renders ctx using indent spaces per level.
// A non-positive indent produces a single line.
func SerializeIndent(ctx *traceschema.SchemaContext, indent int) (string, error) {
	var b strings.Builder
	if err := Write(&b, ctx, indent); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Write renders ctx to w using indent spaces per level.
// Nothing is written when a name holds a character XML 1.0 cannot carry.
func Write(w io.Writer, ctx *traceschema.SchemaContext, indent int) error {
	root := EncodeContext(ctx)
	if err := checkEncodable(root); err != nil {
		return err
	}

	doc := etree.NewDocument()
	// tab, CR and LF in attribute values survive only as character references
	doc.WriteSettings.CanonicalAttrVal = true
	doc.SetRoot(root)
	if indent > 0 {
		doc.Indent(indent)
	}
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write schema document: %w", err)
	}
	return nil
}

// Deserialize decodes a document held in a string.
func (d *Decoder) Deserialize(text string) (*traceschema.SchemaContext, error) {
	return d.DeserializeBytes([]byte(text))
}

// DeserializeBytes decodes a document held in memory.
func (d *Decoder) DeserializeBytes(data []byte) (*traceschema.SchemaContext, error) {
	return d.DeserializeReader(bytes.NewReader(data))
}

// DeserializeReader decodes a document read from r.
func (d *Decoder) DeserializeReader(r io.Reader) (*traceschema.SchemaContext, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, wrapParseError(err)
	}
	if err := checkTopLevel(doc); err != nil {
		return nil, err
	}
	return d.DecodeContext(doc.Root())
}

// checkTopLevel rejects content the parser accepts around the root element.
func checkTopLevel(doc *etree.Document) error {
	roots := 0
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			roots++
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return malformed(fmt.Sprintf("text outside the root element: %q", strings.TrimSpace(t.Data)))
			}
		}
	}
	if roots > 1 {
		return malformed(fmt.Sprintf("document has %d root elements", roots))
	}
	return nil
}

// checkEncodable reports the first attribute value under el that XML 1.0
// cannot represent.
func checkEncodable(el *etree.Element) error {
	for _, a := range el.Attr {
		if i := invalidCharIndex(a.Value); i >= 0 {
			return fmt.Errorf("cannot encode %s [field: %s]: byte %d is not a valid XML character: %w",
				describeElement(el), a.Key, i, traceschema.ErrUnencodableText)
		}
	}
	for _, child := range el.ChildElements() {
		if err := checkEncodable(child); err != nil {
			return err
		}
	}
	return nil
}

// invalidCharIndex returns the byte offset of the first rune in s outside the
// XML 1.0 Char production, or -1.
func invalidCharIndex(s string) int {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return i
			}
			continue
		}
		if !isXMLChar(r) {
			return i
		}
	}
	return -1
}

func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}

// DeserializeFile decodes the document stored at path.
func (d *Decoder) DeserializeFile(path string) (*traceschema.SchemaContext, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema document: %w", err)
	}
	defer f.Close()

	ctx, err := d.DeserializeReader(f)
	if err != nil {
		return nil, WithSource(err, path)
	}
	return ctx, nil
}

// Deserialize decodes text with a default Decoder.
func Deserialize(text string) (*traceschema.SchemaContext, error) {
	return NewDecoder().Deserialize(text)
}

// DeserializeBytes decodes data with a default Decoder.
func DeserializeBytes(data []byte) (*traceschema.SchemaContext, error) {
	return NewDecoder().DeserializeBytes(data)
}

// DeserializeReader decodes the content of r with a default Decoder.
func DeserializeReader(r io.Reader) (*traceschema.SchemaContext, error) {
	return NewDecoder().DeserializeReader(r)
}

// DeserializeFile decodes the file at path with a default Decoder.
func DeserializeFile(path string) (*traceschema.SchemaContext, error) {
	return NewDecoder().DeserializeFile(path)
}
