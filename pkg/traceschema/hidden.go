package traceschema

// Hidden is the tri-state visibility flag of an attribute schema.
type Hidden int

const (
	// HiddenDefault defers to the implicit rule: attributes whose names
	// start with an underscore are hidden.
	HiddenDefault Hidden = iota
	// HiddenTrue hides the attribute.
	HiddenTrue
	// HiddenFalse shows the attribute.
	HiddenFalse
)

// String returns a readable form of the flag.
func (h Hidden) String() string {
	switch h {
	case HiddenTrue:
		return "true"
	case HiddenFalse:
		return "false"
	default:
		return "default"
	}
}

// IsHidden resolves the flag for the named attribute.
func (h Hidden) IsHidden(name string) bool {
	switch h {
	case HiddenTrue:
		return true
	case HiddenFalse:
		return false
	default:
		return len(name) > 0 && name[0] == '_'
	}
}
