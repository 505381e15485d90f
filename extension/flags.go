// flags.go defines shared flag name constants used across extensions.
//
// Separated so extensions and core commands agree on flag spelling
// without importing each other.

package extension

// Flag names shared across extension commands.
const (
	// FlagLocal selects the local (.datecheck/) config scope.
	FlagLocal = "local"
)
