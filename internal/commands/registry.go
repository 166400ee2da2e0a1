package commands

// Registry holds the canonical set of registered commands and answers every
// query the palette and the dispatcher need: lookup by name or alias,
// category listings, free-text parsing, and relevance-ranked search.
//
// A Registry is an explicitly constructed object (see NewRegistry) passed to
// its collaborators; there is no process-wide instance. It is exclusively
// owned mutable state: only the registry itself touches its internal indices.
// The registry does no internal locking — it assumes a single event-loop
// style caller, and callers running across goroutines must serialize
// registration against search and execution themselves.
type Registry interface {
	// Register adds a command to the registry.
	// Returns ErrInvalidCommand if the name is empty, the handler is nil,
	// or an alias collides with a different command's name or alias.
	// Re-registering an existing name replaces the previous command
	// (its aliases and category membership are removed first).
	Register(cmd Command) error

	// RegisterAll registers commands in order, stopping at the first error.
	RegisterAll(cmds ...Command) error

	// Unregister removes the named command together with its aliases and
	// category membership. It is idempotent: unknown names return false
	// with no mutation.
	Unregister(name string) bool

	// Get resolves a canonical name or an alias to its command.
	// Resolution ignores the command's condition; availability is the
	// dispatcher's concern.
	Get(nameOrAlias string) (*Command, bool)

	// All returns every command whose condition currently allows it,
	// sorted lexicographically by name.
	All() []Command

	// ByCategory returns the available commands in a category, sorted
	// lexicographically by name.
	ByCategory(category string) []Command

	// Categories returns every category with at least one registered
	// command, sorted.
	Categories() []string

	// Parse resolves free text into a command name plus arguments using
	// longest-match-first resolution against all names and aliases.
	// Parse never fails: unknown first tokens fall back to a naive
	// whitespace split and are reported by the dispatcher instead.
	Parse(input string) ParseResult

	// Search ranks the available commands against a query for interactive
	// per-keystroke filtering and returns at most MaxSearchResults of
	// them, best first. An empty query lists the first commands in
	// lexicographic order. Results reflect the registry state at the
	// moment of the call; nothing is cached.
	Search(query string) []Command
}
