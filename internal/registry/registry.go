// Package registry implements the process-wide language registry:
// canonical-name / alias / extension lookup tables holding
// langspec.Adapter implementations, built once at startup and shared
// read-only thereafter.
package registry

import (
	"fmt"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/parsekit/flattenast/internal/langspec"
)

// Tree-sitter's C ABI has been stable across versions 13-15 for the
// grammars this registry bundles (smacker/go-tree-sitter vendors grammars
// built against that range). RegisterProvider refuses a grammar outside
// it rather than risk undefined behavior from an ABI mismatch.
const (
	minSupportedLanguageVersion = 13
	maxSupportedLanguageVersion = 15
)

// Registry manages language adapters with thread-safe operations. It has no
// built-in knowledge of any specific language; adapters register themselves
// via their package init() (see internal/lang/<language>).
type Registry struct {
	mu sync.RWMutex
	adapters map[string]langspec.Adapter // canonical name -> adapter
	aliases map[string]string // alias -> canonical name
	extensions map[string]string // extension -> canonical name
}

// NewRegistry creates an empty language registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[string]langspec.Adapter),
		aliases: make(map[string]string),
		extensions: make(map[string]string),
	}
}

// RegisterProvider adds a language adapter to the registry. Rejects nil
// adapters, duplicate languages, conflicting aliases/extensions, and
// grammars whose reported ABI version falls outside the supported range.
func (r *Registry) RegisterProvider(a langspec.Adapter) error {
	if a == nil {
		return fmt.Errorf("adapter cannot be nil")
	}
	if reflect.ValueOf(a).IsNil() {
		return fmt.Errorf("adapter cannot be nil")
	}

	lang := a.Language()
	if lang == "" {
		return fmt.Errorf("adapter must have a non-empty language name")
	}

	if sl := a.SitterLanguage(); sl != nil {
		if err := checkLanguageABI(lang, sl); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.adapters[lang]; exists {
		return fmt.Errorf("adapter for language '%s' already registered", lang)
	}

	for _, alias := range a.Aliases() {
		if alias == "" {
			continue
		}
		if existing, exists := r.aliases[alias]; exists {
			return fmt.Errorf("alias '%s' conflicts with existing mapping to '%s'", alias, existing)
		}
	}

	var exts []string
	for _, ext := range a.Extensions() {
		if ext == "" {
			continue
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		if existing, exists := r.extensions[ext]; exists {
			return fmt.Errorf("extension '%s' conflicts with existing mapping to '%s'", ext, existing)
		}
		exts = append(exts, ext)
	}

	r.adapters[lang] = a
	for _, alias := range a.Aliases() {
		if alias != "" {
			r.aliases[alias] = lang
		}
	}
	for _, ext := range exts {
		r.extensions[ext] = lang
	}

	return nil
}

// checkLanguageABI refuses to register a grammar whose reported version
// falls outside the range this runtime was built to understand.
func checkLanguageABI(lang string, sl abiVersioner) error {
	v := sl.Version()
	if v < minSupportedLanguageVersion || v > maxSupportedLanguageVersion {
		return fmt.Errorf(
			"grammar for language '%s' reports ABI version %d, outside supported range [%d, %d]",
			lang, v, minSupportedLanguageVersion, maxSupportedLanguageVersion,
		)
	}
	return nil
}

// abiVersioner is satisfied by *sitter.Language; declared locally so this
// file's ABI check has a narrow, test-mockable dependency rather than the
// full tree-sitter type.
type abiVersioner interface {
	Version() int
}

// GetProvider retrieves an adapter by language name, alias, or file
// extension.
func (r *Registry) GetProvider(identifier string) (langspec.Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if a, exists := r.adapters[identifier]; exists {
		return a, nil
	}
	if canonical, exists := r.aliases[identifier]; exists {
		if a, exists := r.adapters[canonical]; exists {
			return a, nil
		}
	}
	ext := identifier
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	if canonical, exists := r.extensions[ext]; exists {
		if a, exists := r.adapters[canonical]; exists {
			return a, nil
		}
	}
	return nil, fmt.Errorf("no adapter found for identifier '%s'", identifier)
}

// GetProviderForFile retrieves an adapter based on a file's extension.
func (r *Registry) GetProviderForFile(filename string) (langspec.Adapter, error) {
	if filename == "" {
		return nil, fmt.Errorf("filename cannot be empty")
	}
	ext := filepath.Ext(filename)
	if ext == "" {
		return nil, fmt.Errorf("file %s has no extension", filename)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	canonical, exists := r.extensions[ext]
	if !exists {
		return nil, fmt.Errorf("no adapter found for file extension '%s'", ext)
	}
	a, exists := r.adapters[canonical]
	if !exists {
		return nil, fmt.Errorf("adapter '%s' not found for extension '%s'", canonical, ext)
	}
	return a, nil
}

// ListProviders returns all registered language names.
func (r *Registry) ListProviders() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	languages := make([]string, 0, len(r.adapters))
	for lang := range r.adapters {
		languages = append(languages, lang)
	}
	return languages
}

// ListExtensions returns all registered file extensions.
func (r *Registry) ListExtensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	extensions := make([]string, 0, len(r.extensions))
	for ext := range r.extensions {
		extensions = append(extensions, ext)
	}
	return extensions
}

// HasProvider reports whether an adapter is registered for identifier (a
// language name, alias, or file extension).
func (r *Registry) HasProvider(identifier string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, exists := r.adapters[identifier]; exists {
		return true
	}
	if canonical, exists := r.aliases[identifier]; exists {
		_, exists := r.adapters[canonical]
		return exists
	}
	ext := identifier
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	if canonical, exists := r.extensions[ext]; exists {
		_, exists := r.adapters[canonical]
		return exists
	}
	return false
}

// Unregister removes an adapter from the registry. Primarily used by tests.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, exists := r.adapters[name]
	if !exists {
		return fmt.Errorf("adapter '%s' not found", name)
	}
	delete(r.adapters, name)
	for _, alias := range a.Aliases() {
		if r.aliases[alias] == name {
			delete(r.aliases, alias)
		}
	}
	for _, ext := range a.Extensions() {
		if ext[0] != '.' {
			ext = "." + ext
		}
		if r.extensions[ext] == name {
			delete(r.extensions, ext)
		}
	}
	return nil
}

// Clear removes all adapters from the registry. Primarily used by tests.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.adapters = make(map[string]langspec.Adapter)
	r.aliases = make(map[string]string)
	r.extensions = make(map[string]string)
}

// ProviderInfo contains metadata about a registered adapter.
type ProviderInfo struct {
	Name string `json:"name"`
	Aliases []string `json:"aliases"`
	Extensions []string `json:"extensions"`
}

// GetProviderInfo returns detailed information about a registered adapter.
func (r *Registry) GetProviderInfo(name string) (*ProviderInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.adapters[name]
	if !exists {
		return nil, fmt.Errorf("adapter '%s' not found", name)
	}
	return &ProviderInfo{
		Name: a.Language(),
		Aliases: a.Aliases(),
		Extensions: a.Extensions(),
	}, nil
}

// DefaultRegistry is the process-wide registry every internal/lang package
// registers itself into via init().
var DefaultRegistry = NewRegistry()

// RegisterProvider adds an adapter to the default registry.
func RegisterProvider(a langspec.Adapter) error {
	return DefaultRegistry.RegisterProvider(a)
}

// GetProvider retrieves an adapter from the default registry.
func GetProvider(identifier string) (langspec.Adapter, error) {
	return DefaultRegistry.GetProvider(identifier)
}

// GetProviderForFile retrieves an adapter by file extension from the
// default registry.
func GetProviderForFile(filename string) (langspec.Adapter, error) {
	return DefaultRegistry.GetProviderForFile(filename)
}

// ListProviders returns all adapters registered in the default registry.
func ListProviders() []string {
	return DefaultRegistry.ListProviders()
}

// HasProvider checks if an adapter exists in the default registry.
func HasProvider(identifier string) bool {
	return DefaultRegistry.HasProvider(identifier)
}
