package registry

import (
	"testing"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/parsekit/flattenast/internal/langspec"
)

// mockAdapter is the smallest langspec.Adapter implementation needed to
// exercise the registry without parsing anything.
type mockAdapter struct {
	lang string
	aliases []string
	extensions []string
}

func (m *mockAdapter) Language() string { return m.lang }
func (m *mockAdapter) Aliases() []string { return m.aliases }
func (m *mockAdapter) Extensions() []string { return m.extensions }
func (m *mockAdapter) SitterLanguage() *sitter.Language { return nil }
func (m *mockAdapter) Classify(string) langspec.TypeEntry { return langspec.TypeEntry{} }
func (m *mockAdapter) ExtractName(*sitter.Node, []byte) string { return "" }
func (m *mockAdapter) ExtractSignatureType(*sitter.Node, []byte, langspec.TypeEntry) string {
	return ""
}
func (m *mockAdapter) ExtractParameters(*sitter.Node, []byte, langspec.TypeEntry) []string {
	return nil
}
func (m *mockAdapter) ExtractModifiers(*sitter.Node, []byte) []string { return nil }
func (m *mockAdapter) IncludeAnonymous(string) bool { return false }

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()
	if reg == nil {
		t.Fatal("expected non-nil registry")
	}
	if len(reg.adapters) != 0 {
		t.Error("expected empty registry")
	}
	if _, err := reg.GetProvider("go"); err == nil {
		t.Error("expected error looking up adapter in empty registry")
	}
}

func TestRegisterProvider(t *testing.T) {
	reg := NewRegistry()
	a := &mockAdapter{lang: "go", aliases: []string{"golang"}, extensions: []string{".go"}}

	if err := reg.RegisterProvider(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reg.adapters) != 1 {
		t.Error("expected 1 adapter")
	}
	if _, err := reg.GetProvider("golang"); err != nil {
		t.Errorf("expected to find adapter by alias, got error: %v", err)
	}
	if _, err := reg.GetProviderForFile("main.go"); err != nil {
		t.Errorf("expected to find adapter by extension, got error: %v", err)
	}
}

func TestRegisterProviderNil(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterProvider(nil); err == nil {
		t.Error("expected error registering nil adapter")
	}
}

func TestRegisterProviderDuplicateLanguage(t *testing.T) {
	reg := NewRegistry()
	a1 := &mockAdapter{lang: "go", extensions: []string{".go"}}
	a2 := &mockAdapter{lang: "go", extensions: []string{".go2"}}

	if err := reg.RegisterProvider(a1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.RegisterProvider(a2); err == nil {
		t.Error("expected error registering duplicate language")
	}
}

func TestRegisterProviderConflictingAlias(t *testing.T) {
	reg := NewRegistry()
	a1 := &mockAdapter{lang: "go", aliases: []string{"golang"}}
	a2 := &mockAdapter{lang: "python", aliases: []string{"golang"}}

	if err := reg.RegisterProvider(a1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.RegisterProvider(a2); err == nil {
		t.Error("expected error registering conflicting alias")
	}
}

func TestRegisterProviderConflictingExtension(t *testing.T) {
	reg := NewRegistry()
	a1 := &mockAdapter{lang: "go", extensions: []string{".go"}}
	a2 := &mockAdapter{lang: "other", extensions: []string{".go"}}

	if err := reg.RegisterProvider(a1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.RegisterProvider(a2); err == nil {
		t.Error("expected error registering conflicting extension")
	}
}

func TestGetProviderForFileNoExtension(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.GetProviderForFile("Makefile"); err == nil {
		t.Error("expected error for a filename without an extension")
	}
}

func TestListProvidersAndExtensions(t *testing.T) {
	reg := NewRegistry()
	_ = reg.RegisterProvider(&mockAdapter{lang: "go", extensions: []string{".go"}})
	_ = reg.RegisterProvider(&mockAdapter{lang: "python", extensions: []string{".py"}})

	if got := reg.ListProviders(); len(got) != 2 {
		t.Errorf("ListProviders() returned %d entries, want 2", len(got))
	}
	if got := reg.ListExtensions(); len(got) != 2 {
		t.Errorf("ListExtensions() returned %d entries, want 2", len(got))
	}
}

func TestUnregisterProvider(t *testing.T) {
	reg := NewRegistry()
	a := &mockAdapter{lang: "go", aliases: []string{"golang"}, extensions: []string{".go"}}
	_ = reg.RegisterProvider(a)

	if err := reg.Unregister("go"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.HasProvider("go") || reg.HasProvider("golang") || reg.HasProvider(".go") {
		t.Error("expected all lookups to fail after unregister")
	}
	if err := reg.Unregister("go"); err == nil {
		t.Error("expected error unregistering a nonexistent adapter")
	}
}

func TestClear(t *testing.T) {
	reg := NewRegistry()
	_ = reg.RegisterProvider(&mockAdapter{lang: "go", extensions: []string{".go"}})
	reg.Clear()
	if len(reg.adapters) != 0 || len(reg.extensions) != 0 {
		t.Error("expected registry to be empty after Clear")
	}
}

func TestGetProviderInfo(t *testing.T) {
	reg := NewRegistry()
	_ = reg.RegisterProvider(&mockAdapter{lang: "go", aliases: []string{"golang"}, extensions: []string{".go"}})

	info, err := reg.GetProviderInfo("go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Name != "go" || len(info.Aliases) != 1 || len(info.Extensions) != 1 {
		t.Errorf("unexpected ProviderInfo: %+v", info)
	}
}

func TestConcurrentAccess(t *testing.T) {
	reg := NewRegistry()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			reg.ListProviders()
			reg.HasProvider("go")
			_, _ = reg.GetProvider("go")
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

type fakeVersioner struct{ version int }

func (f fakeVersioner) Version() int { return f.version }

func TestCheckLanguageABI(t *testing.T) {
	if err := checkLanguageABI("go", fakeVersioner{version: 14}); err != nil {
		t.Errorf("expected in-range version to pass, got %v", err)
	}
	if err := checkLanguageABI("go", fakeVersioner{version: 99}); err == nil {
		t.Error("expected out-of-range version to be rejected")
	}
	if err := checkLanguageABI("go", fakeVersioner{version: 1}); err == nil {
		t.Error("expected too-low version to be rejected")
	}
}

func TestDefaultRegistryFunctions(t *testing.T) {
	DefaultRegistry.Clear()
	defer DefaultRegistry.Clear()

	a := &mockAdapter{lang: "go", aliases: []string{"golang"}, extensions: []string{".go"}}
	if err := RegisterProvider(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !HasProvider("go") {
		t.Error("expected default registry to have 'go'")
	}
	if got := ListProviders(); len(got) != 1 {
		t.Errorf("ListProviders() = %v, want 1 entry", got)
	}
	if _, err := GetProviderForFile("main.go"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
