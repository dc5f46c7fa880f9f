package schemaxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/vvka-141/traceschema/pkg/traceschema"
)

// DecodeError represents a structured decoding failure with context and a hint.
// Unwrap returns traceschema.ErrMalformedDocument or
// traceschema.ErrMissingAttribute.
type DecodeError struct {
	Source  string // File path, if decoding from a file
	Line    int    // Line number (0 if unknown)
	Schema  string // Name of the schema node being decoded, if any
	Node    string // Rendering of the offending node
	Field   string // Attribute name if applicable
	Message string // Primary error message
	Hint    string // Actionable suggestion for fixing
	Err     error  // Sentinel classifying the failure
}

// Error implements the error interface with rich formatting.
func (e *DecodeError) Error() string {
	location := e.Source
	if location == "" {
		location = "document"
	}
	if e.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", location, e.Line)
	}
	if e.Node != "" {
		location = fmt.Sprintf("%s, schema '%s'", location, e.Schema)
	}

	msg := fmt.Sprintf("schema document error in %s: %s", location, e.Message)
	if e.Field != "" {
		msg = fmt.Sprintf("schema document error in %s [field: %s]: %s", location, e.Field, e.Message)
	}

	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}

	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// missingAttribute reports a structurally required attribute that is absent.
func missingAttribute(schema string, el *etree.Element, field string) error {
	node := describeElement(el)
	return &DecodeError{
		Schema:  schema,
		Node:    node,
		Field:   field,
		Message: fmt.Sprintf("Missing attribute '%s' in %s", field, node),
		Hint:    hintFor(el.Tag),
		Err:     traceschema.ErrMissingAttribute,
	}
}

func hintFor(tag string) string {
	switch tag {
	case ElemElement:
		return `Element nodes need a schema: <element index="0" schema="Thread"/>`
	case ElemAttribute:
		return `Attribute nodes need a schema: <attribute name="_pc" schema="ADDRESS"/>`
	case ElemAttributeAlias:
		return `Alias nodes need both ends: <attribute-alias from="State" to="_state"/>`
	case ElemInterface:
		return `Interface nodes need a name: <interface name="Thread"/>`
	}
	return ""
}

// malformed reports a document that cannot be decoded at all.
func malformed(message string) error {
	return &DecodeError{
		Message: message,
		Hint: "The document must be well-formed XML with a <context> root:\n" +
			"  <context>\n" +
			"    <schema name=\"...\">...</schema>\n" +
			"  </context>",
		Err: traceschema.ErrMalformedDocument,
	}
}

// wrapParseError converts XML parser errors to DecodeError with line numbers.
func wrapParseError(err error) error {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		de := malformed(syntaxErr.Msg).(*DecodeError)
		de.Line = syntaxErr.Line
		return de
	}
	return malformed(err.Error())
}

// WithSource records source as the originating file of a DecodeError.
// Other errors are returned unchanged.
func WithSource(err error, source string) error {
	var de *DecodeError
	if errors.As(err, &de) && de.Source == "" {
		de.Source = source
	}
	return err
}

// describeElement renders the start tag of el, e.g. <element index="0">.
func describeElement(el *etree.Element) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(el.FullTag())
	for _, a := range el.Attr {
		fmt.Fprintf(&b, " %s=%q", a.FullKey(), a.Value)
	}
	b.WriteString(">")
	return b.String()
}
