package tokenize

import (
	"fmt"
	"sort"
	"sync"
)

// Built-in tokenizer names.
const (
	NamePunkt = "punkt"
	NameRules = "rules"

	// DefaultName is used when configuration does not pick a tokenizer.
	DefaultName = NamePunkt
)

// Factory builds a fresh Tokenizer. Registries hand out new instances so
// concurrent callers never share one.
type Factory func() (Tokenizer, error)

// Registry maps tokenizer names to factories.
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates a Registry with the built-in tokenizers registered.
func NewRegistry() *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
	}
	r.factories[NamePunkt] = func() (Tokenizer, error) { return NewPunkt() }
	r.factories[NameRules] = func() (Tokenizer, error) { return NewRules(), nil }
	return r
}

// New builds the tokenizer registered under name.
func (r *Registry) New(name string) (Tokenizer, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown tokenizer: %q", name)
	}
	return factory()
}

// Register adds a custom tokenizer factory.
func (r *Registry) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("tokenizer already registered: %q", name)
	}
	r.factories[name] = factory
	return nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
