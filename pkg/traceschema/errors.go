package traceschema

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	ctx, err := schemaxml.DeserializeFile(path)
//	if errors.Is(err, traceschema.ErrMissingAttribute) {
//	    // The document is structurally incomplete
//	}
var (
	// ErrMalformedDocument indicates the document could not be parsed or
	// does not have a context root.
	ErrMalformedDocument = errors.New("malformed schema document")

	// ErrMissingAttribute indicates a structurally required attribute is
	// absent from a document node.
	ErrMissingAttribute = errors.New("missing required attribute")

	// ErrBuilderConsumed indicates a SchemaBuilder was used after BuildAndAdd.
	ErrBuilderConsumed = errors.New("schema builder already built")

	// ErrStrictWarnings indicates warnings were reported while strict
	// checking was requested.
	ErrStrictWarnings = errors.New("warnings reported in strict mode")

	// ErrUnencodableText indicates a name or value holds a character that
	// an XML document cannot represent.
	ErrUnencodableText = errors.New("text cannot be encoded as XML")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrMissingAttribute):
		return ExitMissingAttribute
	case errors.Is(err, ErrMalformedDocument):
		return ExitMalformedDocument
	case errors.Is(err, ErrStrictWarnings):
		return ExitStrictWarnings
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
