package fsops

import (
	"os"
	"path/filepath"
	"sort"
	"time"
)

// MemFS is an in-memory FS for tests. Failures can be injected per path.
type MemFS struct {
	files map[string][]byte
	dirs  map[string]bool

	// FailWrite makes WriteFile, AppendFile and MkdirAll fail for the given paths.
	FailWrite map[string]error
}

// NewMemFS creates an empty MemFS.
func NewMemFS() *MemFS {
	return &MemFS{
		files:     make(map[string][]byte),
		dirs:      make(map[string]bool),
		FailWrite: make(map[string]error),
	}
}

func (m *MemFS) Stat(path string) (os.FileInfo, error) {
	path = filepath.Clean(path)
	if data, ok := m.files[path]; ok {
		return &memFileInfo{name: filepath.Base(path), size: int64(len(data))}, nil
	}
	if m.dirs[path] {
		return &memFileInfo{name: filepath.Base(path), isDir: true}, nil
	}
	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

// MkdirAll marks path and its parents as directories. It is not part of FS;
// tests use it to lay out a starting tree.
func (m *MemFS) MkdirAll(path string, perm os.FileMode) error {
	path = filepath.Clean(path)
	if err := m.FailWrite[path]; err != nil {
		return err
	}
	for p := path; ; p = filepath.Dir(p) {
		m.dirs[p] = true
		if parent := filepath.Dir(p); parent == p {
			break
		}
	}
	return nil
}

func (m *MemFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	path = filepath.Clean(path)
	if err := m.FailWrite[path]; err != nil {
		return err
	}
	if err := m.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	m.files[path] = append([]byte(nil), data...)
	return nil
}

func (m *MemFS) AppendFile(path string, data []byte) error {
	path = filepath.Clean(path)
	if err := m.FailWrite[path]; err != nil {
		return err
	}
	existing, ok := m.files[path]
	if !ok {
		return &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	m.files[path] = append(existing, data...)
	return nil
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	path = filepath.Clean(path)
	data, ok := m.files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (m *MemFS) Exists(path string) (bool, error) {
	path = filepath.Clean(path)
	_, isFile := m.files[path]
	return isFile || m.dirs[path], nil
}

// Files returns the paths of all files in sorted order.
func (m *MemFS) Files() []string {
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

type memFileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (fi *memFileInfo) Name() string { return fi.name }
func (fi *memFileInfo) Size() int64  { return fi.size }
func (fi *memFileInfo) Mode() os.FileMode {
	if fi.isDir {
		return os.ModeDir | 0755
	}
	return 0644
}
func (fi *memFileInfo) ModTime() time.Time { return time.Time{} }
func (fi *memFileInfo) IsDir() bool        { return fi.isDir }
func (fi *memFileInfo) Sys() interface{}   { return nil }
