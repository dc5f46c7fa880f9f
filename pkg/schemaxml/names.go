package schemaxml

// Element and attribute names of the document format.
const (
	ElemContext        = "context"
	ElemSchema         = "schema"
	ElemInterface      = "interface"
	ElemElement        = "element"
	ElemAttribute      = "attribute"
	ElemAttributeAlias = "attribute-alias"

	AttrName      = "name"
	AttrCanonical = "canonical"
	AttrIndex     = "index"
	AttrSchema    = "schema"
	AttrRequired  = "required"
	AttrFixed     = "fixed"
	AttrHidden    = "hidden"
	AttrFrom      = "from"
	AttrTo        = "to"
)

const (
	yes          = "yes"
	no           = "no"
	hiddenAbsent = "default"
)

// DefaultIndent is the indentation used by Serialize.
const DefaultIndent = 2
