// Package commands implements the command registry and dispatch engine of
// the Fantasy Forgewright editor: the component that stores every invocable
// command, turns free-text input into a resolved command plus argument list,
// and ranks candidate commands for the interactive command palette.
//
// # Overview
//
// The package is built from five cooperating pieces:
//
//   - Registry: the canonical command table with its alias map and category
//     index. Commands enter the system exclusively through Register and
//     RegisterAll, typically from feature modules at application start-up.
//   - Parser: longest-match-first resolution of free text into a command
//     name plus whitespace-split arguments. Command names may contain
//     spaces and may be prefixes of one another ("search" vs. "search
//     advanced"); scanning candidates longest-first keeps multi-word
//     commands greedy and unambiguous. Parsing never fails.
//   - Ranker: Search computes an additive relevance score per command
//     blending exact, prefix, substring, multi-word, alias, and subsequence
//     ("fuzzy") signals, and returns the top commands. It runs on every
//     keystroke of the palette, so there is no backtracking anywhere in the
//     pipeline.
//   - Executor: the dispatcher. It resolves the parsed name (or alias),
//     checks the command's availability condition, validates declared
//     parameters, records history, runs the handler, and broadcasts
//     execute/error notifications to subscribers.
//   - History: a bounded, deduplicated, most-recently-used ledger of
//     executed inputs.
//
// # Usage
//
// Construct the pieces explicitly and pass them where they are needed;
// nothing in this package is a global:
//
//	registry := commands.NewRegistry()
//	err := registry.Register(commands.Command{
//	    Name:        "new document",
//	    Description: "Create a new markdown document",
//	    Category:    "file",
//	    Aliases:     []string{":n"},
//	    Handler: func(ctx context.Context, args []string, parsed commands.ParseResult) (any, error) {
//	        return editor.NewDocument(ctx, args)
//	    },
//	})
//
//	executor := commands.NewExecutor(registry, commands.NewHistory(50))
//	cancel := executor.Subscribe(func(ev commands.Event) {
//	    // refresh a status display, show a toast, ...
//	})
//	defer cancel()
//
//	result, err := executor.Execute(ctx, "new document")
//
// The palette calls registry.Search(query) on every input change and
// executor.Execute(input) when the user confirms a selection.
//
// # Shortcut queries
//
// A query beginning with ShortcutPrefix (":") signals an exact alias lookup:
// ":w" must surface the command aliased to ":w" as the unique top result and
// is never eligible for substring or fuzzy matching. Trailing arguments are
// stripped through the parser first, so ":goto 3" still finds ":goto".
//
// # Error handling
//
// Register and Execute wrap the sentinel errors of the taxonomy
// (ErrInvalidCommand, ErrCommandNotFound, ErrCommandUnavailable,
// ErrMissingParameters, ErrInvalidParameterType) with %w, so callers branch
// with errors.Is. Errors raised by a command's own handler propagate through
// Execute unchanged. Every failure is additionally broadcast as an
// EventError so passive observers react without caller cooperation; the
// dispatcher never swallows or retries.
//
// # Concurrency
//
// The package assumes a single event-loop style caller and does no internal
// locking. All operations are synchronous except Execute, whose only
// suspension point is the command handler itself; a hung handler leaves the
// calling context suspended, and any cancellation policy belongs to the
// handler's own collaborator. Callers using the registry from multiple
// goroutines must serialize registration and unregistration relative to
// search and execution. Search reflects exactly the registry state at the
// moment of the call; results are never cached.
package commands
