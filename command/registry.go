package command

import (
	"errors"
	"sync"
)

var (
	// ErrRegistryFrozen is returned by Register after Freeze.
	ErrRegistryFrozen = errors.New("command registry frozen")
	// ErrEmptyName is returned when a command is registered without a name.
	ErrEmptyName = errors.New("command name cannot be empty")
	// ErrDuplicateCommand is returned when a name is registered twice.
	ErrDuplicateCommand = errors.New("command already registered")
	// ErrNilHandler is returned when a command is registered without a handler.
	ErrNilHandler = errors.New("command handler cannot be nil")
)

// HandlerFunc produces one chunk of command output. It fills out with at
// most len(out) bytes, returns the number of bytes written and whether more
// output is pending. When it returns more=true it is re-invoked with the
// same line after the chunk has been transmitted.
type HandlerFunc func(line string, out []byte) (n int, more bool)

// Definition describes one registered command.
type Definition struct {
	// Name is the first whitespace-delimited token that selects this command.
	Name string
	// Help is the line streamed by the built-in help command.
	Help string
	// Handler produces the command's output chunks.
	Handler HandlerFunc
}

// Registry maps command names to their definitions. Registrations happen at
// startup; [Registry.Freeze] must be called before the registry is used for
// interpretation.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Definition
	ordered []Definition
	frozen  bool
}

// NewRegistry creates an empty command [Registry].
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Definition),
	}
}

// Register adds a command. Must be called before [Registry.Freeze].
func (r *Registry) Register(def Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrRegistryFrozen
	}
	if def.Name == "" {
		return ErrEmptyName
	}
	if def.Handler == nil {
		return ErrNilHandler
	}
	if _, exists := r.byName[def.Name]; exists {
		return ErrDuplicateCommand
	}

	r.byName[def.Name] = def
	r.ordered = append(r.ordered, def)
	return nil
}

// Lookup returns the definition for the named command, or false if not
// registered.
func (r *Registry) Lookup(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.byName[name]
	return def, ok
}

// Freeze prevents further registrations. Must be called before the registry
// is used for interpretation.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Count returns the number of registered commands.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}

// Definitions returns the registered commands in registration order.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Definition, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Fill copies s into out, truncating at the buffer boundary, and returns the
// number of bytes written. Handlers use it to emit fixed responses.
func Fill(out []byte, s string) int {
	return copy(out, s)
}
