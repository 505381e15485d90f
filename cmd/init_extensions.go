/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension command registration.
//
// Separated from root.go to keep cobra setup apart from the extension
// wiring.
//
// Design: Extensions register themselves during init() (triggered by the
// extension/all import in main); their commands are attached to the root
// command exactly once here. Unlike a tool with a backing store, there is
// no second initialisation phase - every datecheck command is stateless.

package cmd

import (
	"sync"

	"github.com/jpl-au/datecheck/extension"
)

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
	})
}
