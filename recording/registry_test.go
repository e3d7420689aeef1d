package recording

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// resetRegistry clears all registered formats for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	formats = make(map[string]Format)
	extensions = make(map[string]string)
}

func mockFormat(name string, exts ...string) Format {
	return Format{
		Name:       name,
		Extensions: exts,
		New:        func() Backend { return newMockBackend(name) },
	}
}

func TestRegisterAndNewBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register(mockFormat("test"))

	backend, err := NewBackend("test")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	mock, ok := backend.(*mockBackend)
	if !ok {
		t.Fatal("backend is not a mockBackend")
	}
	if mock.name != "test" {
		t.Errorf("got name %q, want %q", mock.name, "test")
	}

	again, _ := NewBackend("test")
	if again == backend {
		t.Error("NewBackend returned a shared instance")
	}
}

func TestNewBackendUnknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	_, err := NewBackend("unknown")
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if !strings.Contains(err.Error(), "forgotten import") {
		t.Errorf("error %q does not hint at a missing import", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name  string
		setup []Format
		f     Format
	}{
		{"nil factory", nil, Format{Name: "nil"}},
		{"no name", nil, Format{New: func() Backend { return nil }}},
		{"duplicate name", []Format{mockFormat("dup")}, mockFormat("dup")},
		{"extension taken", []Format{mockFormat("jpeg", "jpg")}, mockFormat("other", "JPG")},
		{"extension shadows a name", []Format{mockFormat("png")}, mockFormat("other", "png")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetRegistry()
			defer resetRegistry()
			for _, f := range tt.setup {
				Register(f)
			}
			defer func() {
				if r := recover(); r == nil {
					t.Error("expected panic")
				}
			}()
			Register(tt.f)
		})
	}
}

func TestLookup(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register(mockFormat("jpeg", "jpg"))
	Register(mockFormat("svg"))

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"jpeg", "jpeg", true},
		{"jpg", "jpeg", true},
		{".JPG", "jpeg", true},
		{".svg", "svg", true},
		{"gif", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := Lookup(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Lookup(%q) = %q, %t; want %q, %t", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBackendsAndIsRegistered(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	if got := Backends(); len(got) != 0 {
		t.Errorf("empty registry lists %v", got)
	}
	for _, name := range []string{"svg", "pdf", "png"} {
		Register(mockFormat(name))
	}
	if got := strings.Join(Backends(), ","); got != "pdf,png,svg" {
		t.Errorf("Backends() = %s, want pdf,png,svg", got)
	}
	if !IsRegistered("pdf") {
		t.Error("pdf is not registered")
	}
	if IsRegistered("jpeg") {
		t.Error("jpeg is registered")
	}
}

func TestNewWriterBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register(mockFormat("stream"))
	Register(Format{Name: "plain", New: func() Backend { return &plainBackend{} }})

	wb, err := NewWriterBackend("stream")
	if err != nil {
		t.Fatalf("NewWriterBackend failed: %v", err)
	}
	var sb strings.Builder
	if _, err := wb.WriteTo(&sb); err != nil || sb.String() != "stream" {
		t.Errorf("WriteTo wrote %q, %v", sb.String(), err)
	}

	if _, err := NewWriterBackend("plain"); err == nil {
		t.Error("expected error for a backend without WriteTo")
	}
	if _, err := NewWriterBackend("missing"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestConcurrentRegistration(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Register(mockFormat(fmt.Sprintf("format%d", i), fmt.Sprintf("ext%d", i)))
		}()
		go func() {
			defer wg.Done()
			_ = Backends()
			_, _ = Lookup("ext0")
			_ = IsRegistered("format0")
		}()
	}
	wg.Wait()

	if n := len(Backends()); n != 8 {
		t.Errorf("registered %d formats, want 8", n)
	}
}
