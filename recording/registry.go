package recording

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// BackendFactory creates a fresh backend for one render.
type BackendFactory func() Backend

// Format describes an output format provided by a backend package.
type Format struct {
	// Name is the canonical format name, such as "png".
	Name string
	// Extensions are the file extensions, without the dot, that select
	// the format. Name is always accepted as well.
	Extensions []string
	New        BackendFactory
}

var (
	registryMu sync.RWMutex
	formats    = make(map[string]Format)
	extensions = make(map[string]string)
)

// Register makes a format available by name. Backend packages call it
// from init, so importing a backend for side effects is enough:
//
//	import _ "github.com/gogpu/scenerender/recording/backends/pdf"
//
// Register panics when the factory is nil or when the name or one of the
// extensions is already taken.
func Register(f Format) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if f.New == nil {
		panic("recording: Register factory is nil")
	}
	if f.Name == "" {
		panic("recording: Register called without a name")
	}
	if _, dup := formats[f.Name]; dup {
		panic("recording: Register called twice for " + f.Name)
	}
	keys := append([]string{f.Name}, f.Extensions...)
	for _, ext := range keys {
		ext = strings.ToLower(ext)
		if owner, dup := extensions[ext]; dup && owner != f.Name {
			panic("recording: extension " + ext + " already registered by " + owner)
		}
	}
	formats[f.Name] = f
	for _, ext := range keys {
		extensions[strings.ToLower(ext)] = f.Name
	}
}

// Lookup resolves a format name or file extension ("jpg", ".svg"),
// ignoring case, to the registered format name.
func Lookup(s string) (string, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	name, ok := extensions[strings.ToLower(strings.TrimPrefix(s, "."))]
	return name, ok
}

// NewBackend creates a backend for the named format.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	f, ok := formats[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (forgotten import?)", name)
	}
	return f.New(), nil
}

// NewWriterBackend creates a backend by name and checks that it can
// write its output to a stream.
func NewWriterBackend(name string) (WriterBackend, error) {
	b, err := NewBackend(name)
	if err != nil {
		return nil, err
	}
	wb, ok := b.(WriterBackend)
	if !ok {
		return nil, fmt.Errorf("recording: backend %q cannot write to a stream", name)
	}
	return wb, nil
}

// Backends returns the registered format names in alphabetical order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a format with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := formats[name]
	return ok
}
