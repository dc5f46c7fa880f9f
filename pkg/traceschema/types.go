package traceschema

// Type is the runtime value family a schema describes.
type Type int

const (
	TypeObject Type = iota
	TypeAny
	TypeVoid
	TypeBool
	TypeByte
	TypeChar
	TypeShort
	TypeInt
	TypeLong
	TypeString
	TypeAddress
	TypeRange
	TypeExecutionState
	TypeType
)

// IsObject reports whether values of this type are nodes in the object tree.
func (t Type) IsObject() bool {
	return t == TypeObject
}

// Names of the built-in primitive schemas.
const (
	ObjectSchemaName         = "OBJECT"
	AnySchemaName            = "ANY"
	VoidSchemaName           = "VOID"
	BoolSchemaName           = "BOOL"
	ByteSchemaName           = "BYTE"
	CharSchemaName           = "CHAR"
	ShortSchemaName          = "SHORT"
	IntSchemaName            = "INT"
	LongSchemaName           = "LONG"
	StringSchemaName         = "STRING"
	AddressSchemaName        = "ADDRESS"
	RangeSchemaName          = "RANGE"
	ExecutionStateSchemaName = "EXECUTION_STATE"
	TypeSchemaName           = "TYPE"
)

var primitiveTypes = []struct {
	name string
	typ  Type
}{
	{AnySchemaName, TypeAny},
	{ObjectSchemaName, TypeObject},
	{VoidSchemaName, TypeVoid},
	{BoolSchemaName, TypeBool},
	{ByteSchemaName, TypeByte},
	{CharSchemaName, TypeChar},
	{ShortSchemaName, TypeShort},
	{IntSchemaName, TypeInt},
	{LongSchemaName, TypeLong},
	{StringSchemaName, TypeString},
	{AddressSchemaName, TypeAddress},
	{RangeSchemaName, TypeRange},
	{ExecutionStateSchemaName, TypeExecutionState},
	{TypeSchemaName, TypeType},
}

// newPrimitive builds a primitive schema. OBJECT is the universal
// placeholder: it accepts any element or attribute and is never serialized.
func newPrimitive(name SchemaName, typ Type, objectName, anyName SchemaName) *TraceObjectSchema {
	return &TraceObjectSchema{
		name:                   name,
		typ:                    typ,
		primitive:              true,
		elements:               newOrderedMap[string, SchemaName](),
		defaultElementSchema:   objectName,
		attributes:             newOrderedMap[string, AttributeSchema](),
		defaultAttributeSchema: NewAttributeSchema("", anyName, false, false, HiddenDefault),
		aliases:                newOrderedMap[string, string](),
	}
}
