package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// EmbedFileSystem is a read-only Provider over an fs.FS, typically an
// embed.FS. Paths are relative to root and always use forward slashes.
type EmbedFileSystem struct {
	fsys fs.FS
	root string
}

func NewEmbedFileSystem(fsys fs.FS, root string) *EmbedFileSystem {
	return &EmbedFileSystem{fsys: fsys, root: path.Clean(root)}
}

func (e *EmbedFileSystem) resolve(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.TrimPrefix(name, "/")
	return path.Join(e.root, name)
}

func (e *EmbedFileSystem) ReadFile(name string) ([]byte, error) {
	content, err := fs.ReadFile(e.fsys, e.resolve(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}
	return content, nil
}

func (e *EmbedFileSystem) WriteFile(name string, _ []byte) error {
	return &fs.PathError{Op: "write", Path: name, Err: ErrReadOnly}
}

// Documents returns paths relative to root.
func (e *EmbedFileSystem) Documents(name string) ([]string, error) {
	full := e.resolve(name)
	info, err := fs.Stat(e.fsys, full)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return []string{e.trim(full)}, nil
	}

	docs, err := walkDocuments(e.fsys, full)
	if err != nil {
		return nil, err
	}
	for i, doc := range docs {
		docs[i] = e.trim(doc)
	}
	return docs, nil
}

func (e *EmbedFileSystem) trim(full string) string {
	if e.root == "." {
		return full
	}
	return strings.TrimPrefix(full, e.root+"/")
}
