package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"
)

// maxSuggestions caps the "did you mean" list attached to a
// command-not-found error.
const maxSuggestions = 3

// Executor is the dispatcher: it turns free text into a validated command
// invocation, records history, and broadcasts execute/error notifications.
//
// Execute is the only operation with a suspension point — it blocks while
// the command's handler runs, with no timeout or cancellation of its own
// (the handler observes the caller's context). Like the registry, the
// executor assumes a single event-loop style caller and does no locking.
type Executor interface {
	// Execute parses input, resolves the command by name or alias,
	// checks its condition, validates declared parameters, records the
	// input to history, and runs the handler.
	//
	// Failures before the handler runs wrap one of the sentinel errors
	// of the taxonomy; handler errors propagate unchanged. Every failure
	// is also broadcast as an EventError, and every success as an
	// EventExecute, before Execute returns.
	Execute(ctx context.Context, input string) (any, error)

	// Subscribe registers an observer for execute/error events and
	// returns a function that cancels the subscription.
	Subscribe(fn Subscriber) (cancel func())

	// History returns a most-recent-first copy of executed inputs.
	History() []string

	// ClearHistory discards the execution history.
	ClearHistory()
}

// executor is the concrete implementation of the Executor interface.
type executor struct {
	registry Registry
	history  *History
	events   notifier
}

// NewExecutor creates a dispatcher over the given registry. A nil history
// gets a fresh ledger with the default limit.
func NewExecutor(registry Registry, history *History) Executor {
	if history == nil {
		history = NewHistory(DefaultHistoryLimit)
	}
	return &executor{
		registry: registry,
		history:  history,
	}
}

// Execute implements the Executor interface.
func (e *executor) Execute(ctx context.Context, input string) (any, error) {
	eventID := newEventID()
	parsed := e.registry.Parse(input)

	cmd, ok := e.registry.Get(parsed.Name)
	if !ok {
		slog.Warn("Command not found",
			"input", parsed.CleanInput,
			"name", parsed.Name,
		)
		err := fmt.Errorf("%w: %q", ErrCommandNotFound, parsed.Name)
		if suggestions := e.suggestSimilar(parsed.Name); len(suggestions) > 0 {
			err = fmt.Errorf("%w. Did you mean: %s?", err, strings.Join(suggestions, ", "))
		}
		return nil, e.fail(eventID, input, err)
	}

	if !cmd.Available() {
		err := fmt.Errorf("%w: %q cannot run right now", ErrCommandUnavailable, cmd.Name)
		return nil, e.fail(eventID, input, err)
	}

	if len(cmd.Parameters) > 0 {
		if err := validateParameters(cmd, parsed.Args); err != nil {
			return nil, e.fail(eventID, input, err)
		}
	}

	e.history.Record(parsed.CleanInput)

	slog.Info("Executing command",
		"command", cmd.Name,
		"args_count", len(parsed.Args),
		"event_id", eventID,
	)

	result, err := cmd.Handler(ctx, parsed.Args, parsed)
	if err != nil {
		// Handler errors are the command's own; propagate unchanged.
		slog.Error("Command execution failed",
			"command", cmd.Name,
			"event_id", eventID,
			"error", err,
		)
		e.events.emit(Event{Type: EventError, ID: eventID, Input: input, Err: err})
		return nil, err
	}

	e.events.emit(Event{
		Type:    EventExecute,
		ID:      eventID,
		Command: cmd,
		Args:    parsed.Args,
		Result:  result,
	})
	return result, nil
}

// fail broadcasts an error event and hands the error back to the caller.
func (e *executor) fail(eventID, input string, err error) error {
	e.events.emit(Event{Type: EventError, ID: eventID, Input: input, Err: err})
	return err
}

// Subscribe implements the Executor interface.
func (e *executor) Subscribe(fn Subscriber) (cancel func()) {
	return e.events.subscribe(fn)
}

// History implements the Executor interface.
func (e *executor) History() []string {
	return e.history.All()
}

// ClearHistory implements the Executor interface.
func (e *executor) ClearHistory() {
	e.history.Clear()
}

// suggestSimilar finds up to maxSuggestions registered command names close
// to the unresolved name, for the not-found error message.
func (e *executor) suggestSimilar(name string) []string {
	all := e.registry.All()
	if len(all) == 0 {
		return nil
	}

	names := make([]string, len(all))
	for i, cmd := range all {
		names[i] = cmd.Name
	}

	matches := fuzzy.Find(name, names)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	suggestions := make([]string, 0, len(matches))
	for _, match := range matches {
		suggestions = append(suggestions, names[match.Index])
	}
	return suggestions
}
