package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// MemoryFileSystem implements Provider over an in-memory tree.
// Paths use forward slashes; relative paths resolve against root.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	root  string
	files map[string][]byte
	times map[string]time.Time
}

func NewMemoryFileSystem(root string) *MemoryFileSystem {
	return &MemoryFileSystem{
		root:  path.Clean(filepath.ToSlash(root)),
		files: make(map[string][]byte),
		times: make(map[string]time.Time),
	}
}

// AddFile stores content at name.
func (m *MemoryFileSystem) AddFile(name, content string) {
	_ = m.WriteFile(name, []byte(content))
}

func (m *MemoryFileSystem) abs(name string) string {
	name = filepath.ToSlash(name)
	if name == "" || name == "." {
		return m.root
	}
	if path.IsAbs(name) {
		return path.Clean(name)
	}
	return path.Join(m.root, name)
}

func (m *MemoryFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.files[m.abs(name)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryFileSystem) WriteFile(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	abs := m.abs(name)
	buf := make([]byte, len(data))
	copy(buf, data)
	m.files[abs] = buf
	m.times[abs] = time.Now()
	return nil
}

func (m *MemoryFileSystem) Documents(name string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	abs := m.abs(name)
	if _, ok := m.files[abs]; ok {
		return []string{abs}, nil
	}

	snap := m.snapshot()
	rel := m.rel(abs)
	if _, err := fs.Stat(snap, rel); err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	docs, err := walkDocuments(snap, rel)
	if err != nil {
		return nil, err
	}
	for i, doc := range docs {
		docs[i] = path.Join(m.root, doc)
	}
	return docs, nil
}

// rel maps an absolute path to an fs.FS name under root.
func (m *MemoryFileSystem) rel(abs string) string {
	if abs == m.root {
		return "."
	}
	if m.root == "." {
		return abs
	}
	prefix := strings.TrimSuffix(m.root, "/") + "/"
	return strings.TrimPrefix(abs, prefix)
}

// snapshot exposes files under root as an fs.FS. Callers hold mu.
func (m *MemoryFileSystem) snapshot() fstest.MapFS {
	snap := fstest.MapFS{}
	for p, data := range m.files {
		rel := m.rel(p)
		if rel == p && m.root != "." {
			continue
		}
		snap[rel] = &fstest.MapFile{Data: data, Mode: 0644, ModTime: m.times[p]}
	}
	return snap
}
