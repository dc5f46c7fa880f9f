package traceschema

import "sort"

// Constructor wraps a runtime object in an interface implementation.
// The object runtime is supplied by the caller; a nil Constructor is allowed
// when only the interface name matters.
type Constructor func(obj interface{}) interface{}

// Interface identifies one interface that objects of a schema implement.
type Interface struct {
	name string
	ctor Constructor
}

// NewInterface creates an interface reference.
func NewInterface(name string, ctor Constructor) Interface {
	return Interface{name: name, ctor: ctor}
}

// Name returns the interface's schema name, as written in documents.
func (i Interface) Name() string { return i.name }

// Construct applies the interface's constructor to obj.
// Returns nil if the interface has no constructor.
func (i Interface) Construct(obj interface{}) interface{} {
	if i.ctor == nil {
		return nil
	}
	return i.ctor(obj)
}

// InterfaceTable maps interface names to interface references.
// Decoders use it to resolve interface names found in documents.
type InterfaceTable struct {
	byName map[string]Interface
}

// NewInterfaceTable creates a table holding ifaces.
func NewInterfaceTable(ifaces ...Interface) *InterfaceTable {
	t := &InterfaceTable{byName: make(map[string]Interface, len(ifaces))}
	for _, iface := range ifaces {
		t.Register(iface)
	}
	return t
}

// Register adds iface, replacing any entry with the same name.
func (t *InterfaceTable) Register(iface Interface) {
	t.byName[iface.name] = iface
}

// Lookup finds an interface by name. A nil table knows no interfaces.
func (t *InterfaceTable) Lookup(name string) (Interface, bool) {
	if t == nil {
		return Interface{}, false
	}
	iface, ok := t.byName[name]
	return iface, ok
}

// Len returns the number of entries.
func (t *InterfaceTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byName)
}

// Names returns the registered names in sorted order.
func (t *InterfaceTable) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.byName))
	for name := range t.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Standard interface names of the trace object model.
const (
	IfaceActivatable        = "Activatable"
	IfaceAggregate          = "Aggregate"
	IfaceBreakpointLocation = "BreakpointLocation"
	IfaceBreakpointSpec     = "BreakpointSpec"
	IfaceEnvironment        = "Environment"
	IfaceEventScope         = "EventScope"
	IfaceExecutionStateful  = "ExecutionStateful"
	IfaceFocusScope         = "FocusScope"
	IfaceMemory             = "Memory"
	IfaceMemoryRegion       = "MemoryRegion"
	IfaceMethod             = "Method"
	IfaceModule             = "Module"
	IfaceProcess            = "Process"
	IfaceRegister           = "Register"
	IfaceRegisterContainer  = "RegisterContainer"
	IfaceSection            = "Section"
	IfaceStack              = "Stack"
	IfaceStackFrame         = "StackFrame"
	IfaceThread             = "Thread"
	IfaceTogglable          = "Togglable"
)

var standardInterfaces = []string{
	IfaceActivatable,
	IfaceAggregate,
	IfaceBreakpointLocation,
	IfaceBreakpointSpec,
	IfaceEnvironment,
	IfaceEventScope,
	IfaceExecutionStateful,
	IfaceFocusScope,
	IfaceMemory,
	IfaceMemoryRegion,
	IfaceMethod,
	IfaceModule,
	IfaceProcess,
	IfaceRegister,
	IfaceRegisterContainer,
	IfaceSection,
	IfaceStack,
	IfaceStackFrame,
	IfaceThread,
	IfaceTogglable,
}

// DefaultInterfaces returns a new table of the standard interfaces, without
// constructors. Each call returns an independent table.
func DefaultInterfaces() *InterfaceTable {
	t := NewInterfaceTable()
	for _, name := range standardInterfaces {
		t.Register(NewInterface(name, nil))
	}
	return t
}
