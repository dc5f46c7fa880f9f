// Package samples embeds example schema documents shipped with the binary.
package samples

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/vvka-141/traceschema/internal/files/filesystem"
)

//go:embed data/*.xml
var data embed.FS

// ErrUnknownSample is returned by Get for names not in Names.
var ErrUnknownSample = errors.New("unknown sample")

// Default is the sample printed when no name is given.
const Default = "session"

// FS returns a read-only provider rooted at the sample directory.
func FS() filesystem.Provider {
	return filesystem.NewEmbedFileSystem(data, "data")
}

// Names lists the available samples without extension, sorted.
func Names() []string {
	docs, err := FS().Documents(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		names = append(names, strings.TrimSuffix(path.Base(doc), path.Ext(doc)))
	}
	return names
}

// Get returns the document for name. The extension is optional.
func Get(name string) ([]byte, error) {
	name = strings.TrimSuffix(name, filesystem.DocumentExt)
	for _, known := range Names() {
		if known == name {
			return FS().ReadFile(name + filesystem.DocumentExt)
		}
	}
	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownSample, name, strings.Join(Names(), ", "))
}
