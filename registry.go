// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vfsopt

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Factory constructs an Option from its raw JSON value. A factory is a
// thin pass through to the option kind's JSON constructor; semantic
// validation is the constructor's responsibility.
type Factory func(value json.RawMessage) (Option, error)

// Registry maps stable option names to factories. It is append-only:
// entries are contributed once, typically at process start, after which
// Resolve is safe for concurrent use without external locking.
type Registry struct {
	log *zap.Logger

	mu      sync.RWMutex
	entries map[string]Factory
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// Logger sets the logger used for registration and resolution
// diagnostics. The default is a nop logger.
func Logger(log *zap.Logger) RegistryOption {
	return func(r *Registry) {
		r.log = log
	}
}

// NewRegistry returns an empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		log:     zap.NewNop(),
		entries: make(map[string]Factory),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register contributes a factory under the given name. Name uniqueness
// across contributors is the caller's invariant; registering an already
// registered name overwrites the previous entry.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[name] = f
	r.log.Debug("registered option kind", zap.String("option", name))
}

// Resolve constructs an Option from the factory registered under name.
// It returns UnknownOptionError if no factory was registered under
// name. Any construction failure is returned as-is from the factory.
func (r *Registry) Resolve(name string, value json.RawMessage) (Option, error) {
	r.mu.RLock()
	f, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		r.log.Debug("no option kind registered", zap.String("option", name))
		return nil, UnknownOptionError{Name: name}
	}
	return f(value)
}

// Names returns the names of all registered entries, in no particular order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	return names
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry which Register and Resolve
// forward to.
func Default() *Registry {
	return defaultRegistry
}

// Register contributes a factory to the default registry.
func Register(name string, f Factory) {
	defaultRegistry.Register(name, f)
}

// Resolve constructs an Option through the default registry.
func Resolve(name string, value json.RawMessage) (Option, error) {
	return defaultRegistry.Resolve(name, value)
}
