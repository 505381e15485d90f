// registry.go holds the global extension registry.
//
// Kept apart from extension.go so the interface definition stays free of
// mutable state. Extensions self-register from init(), triggered by the
// blank import of extension/all in main, so the registry is complete
// before the root command or the MCP server asks for it.
//
// Design: duplicate names panic, in the manner of database/sql.Register.
// A duplicate can only come from a programming mistake (two extensions
// claiming "date", or one registered twice), and init-time is too early
// for error returns anyone would check. Registration order is kept so
// command listings and tool registration come out the same every run.

package extension

import "sync"

var (
	mu         sync.RWMutex
	extensions = make(map[string]Extension)
	order      []string
)

// Register adds an extension under its Name. It panics if the name is
// already taken. Called from init() functions only.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if _, taken := extensions[name]; taken {
		panic("extension already registered: " + name)
	}

	extensions[name] = e
	order = append(order, name)
}

// All returns the registered extensions in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]Extension, 0, len(order))
	for _, name := range order {
		exts = append(exts, extensions[name])
	}
	return exts
}

// Names returns the registered extension names in registration order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, len(order))
	copy(names, order)
	return names
}
