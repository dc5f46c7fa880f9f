package filesystem

import (
	"errors"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// ErrReadOnly is returned by WriteFile on providers that cannot be written.
var ErrReadOnly = errors.New("filesystem is read-only")

// DocumentExt is the extension of schema documents.
const DocumentExt = ".xml"

// Provider is the file access used by commands.
type Provider interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error

	// Documents expands name into document paths. A file yields itself
	// regardless of extension; a directory yields every document beneath it.
	// Results are sorted.
	Documents(name string) ([]string, error)
}

// IsDocument reports whether name has the document extension.
func IsDocument(name string) bool {
	return strings.EqualFold(path.Ext(name), DocumentExt)
}

// CollectDocuments expands each argument with p.Documents and returns the
// concatenation, keeping argument order and dropping duplicates.
func CollectDocuments(p Provider, names ...string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string
	for _, name := range names {
		docs, err := p.Documents(name)
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			if seen[doc] {
				continue
			}
			seen[doc] = true
			result = append(result, doc)
		}
	}
	return result, nil
}

// walkDocuments runs fs.WalkDir from root and collects document paths.
func walkDocuments(fsys fs.FS, root string) ([]string, error) {
	var docs []string
	err := fs.WalkDir(fsys, root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && IsDocument(p) {
			docs = append(docs, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(docs)
	return docs, nil
}
