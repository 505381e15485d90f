// Package log provides centralised audit logging for datecheck
// operations. Logs are stored in ~/.datecheck/log/datecheck-log.db and
// track all CLI commands and MCP tool invocations across working
// directories.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("date:check", "check").
//		Author(cmd.Author()).
//		Parts(y, m, d).
//		Verdict(ok).
//		Write(err)
//
//	log.Event("date:days", "days").
//		Author(cmd.Author()).
//		Parts(y, m).
//		Days(n).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for
// CLI commands or "mcp:{tool}" for MCP tools. Examples: "date:check",
// "date:any", "mcp:date_days_in_month".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "date:check", "mcp:date_check"
	Author string // who performed the action
	Action string // verb: check, any, days
	Parts  []int  // input: the integers submitted for validation

	// Output fields - populated after the operation runs
	Verdict *bool // output: validation verdict (nil for days queries)
	Days    int   // output: resolved day count (days queries only)

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether the operation itself succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "date:check", "date:any")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:date_check")
//
// The action describes what operation was performed: "check", "any",
// "days", "config", etc.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who performed the operation.
//
// For CLI commands, use cmd.Author() which returns the configured author.
// For MCP tools, use "mcp" as the author.
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Parts records the input integers the operation was asked to judge.
func (b *Builder) Parts(parts ...int) *Builder {
	b.entry.Parts = parts
	return b
}

// Verdict records the validation verdict (output).
//
// Distinct from Success: an operation that cleanly determines a date to
// be invalid has Verdict=false and Success=true.
func (b *Builder) Verdict(valid bool) *Builder {
	b.entry.Verdict = &valid
	return b
}

// Days records the resolved day count for days-in-month queries (output).
func (b *Builder) Days(n int) *Builder {
	b.entry.Days = n
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// the matched ordering, config keys, etc. Can be called multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
//
// This is the standard way to complete a log entry after an operation:
//
//	d, ok := julian.ValidOrdering(a, b, c)
//	log.Event("date:any", "any").Parts(a, b, c).Verdict(ok).Write(nil)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetWorkdir sets the working-directory identifier for subsequent log
// entries. The dir should be an absolute path; only its hash is stored.
func SetWorkdir(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.workdir = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
