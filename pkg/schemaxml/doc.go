// Package schemaxml encodes schema contexts to XML and decodes them back.
//
// # Document Format
//
//	<context>
//	  <schema name="Thread" canonical="yes">
//	    <interface name="Thread"/>
//	    <element index="0" schema="Frame"/>
//	    <element schema="OBJECT"/>
//	    <attribute name="_state" schema="EXECUTION_STATE" required="yes" fixed="yes" hidden="yes"/>
//	    <attribute schema="VOID" hidden="no"/>
//	    <attribute-alias from="State" to="_state"/>
//	  </schema>
//	</context>
//
// An element or attribute node without index/name sets the schema's default
// entry. Defaults equal to the builder's sentinels are never written.
//
// # Decoding Rules
//
//   - schema on element and attribute nodes, from and to on alias nodes, and
//     name on interface nodes are required; a missing one fails the whole
//     document with traceschema.ErrMissingAttribute
//   - unknown interface names are logged as warnings and skipped
//   - boolean flags accept true, yes, y, 1 (any case); anything else is false
//   - hidden accepts the true synonyms, false, no, n, 0; anything else is DEFAULT
//
// # Usage
//
//	ctx, err := schemaxml.DeserializeFile("session.xml")
//	if err != nil {
//	    return err
//	}
//	text, err := schemaxml.Serialize(ctx)
package schemaxml
