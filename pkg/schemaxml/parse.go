package schemaxml

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/vvka-141/traceschema/pkg/traceschema"
)

var (
	trueSynonyms  = map[string]bool{"true": true, yes: true, "y": true, "1": true}
	falseSynonyms = map[string]bool{"false": true, no: true, "n": true, "0": true}
)

// ParseBool reports whether value is one of the true synonyms, ignoring case.
// It never fails: unrecognized text is false.
func ParseBool(value string) bool {
	return trueSynonyms[strings.ToLower(value)]
}

// ParseHidden maps value onto the tri-state visibility flag, ignoring case.
// Unrecognized text is HiddenDefault.
func ParseHidden(value string) traceschema.Hidden {
	v := strings.ToLower(value)
	switch {
	case trueSynonyms[v]:
		return traceschema.HiddenTrue
	case falseSynonyms[v]:
		return traceschema.HiddenFalse
	default:
		return traceschema.HiddenDefault
	}
}

// boolAttr reads a flag attribute; absent means "no".
func boolAttr(el *etree.Element, key string) bool {
	return ParseBool(el.SelectAttrValue(key, no))
}

// hiddenAttr reads the hidden attribute; absent means DEFAULT.
func hiddenAttr(el *etree.Element, key string) traceschema.Hidden {
	return ParseHidden(el.SelectAttrValue(key, hiddenAbsent))
}
