package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExecutor(t *testing.T) (Registry, Executor) {
	t.Helper()
	registry := NewRegistry()
	require.NoError(t, registry.RegisterAll(
		Command{
			Name:        "new document",
			Description: "Create a new markdown document",
			Category:    "file",
			Aliases:     []string{":n"},
			Parameters: []Parameter{
				{Name: "title", Required: false, Type: ParamString},
			},
			Handler: func(ctx context.Context, args []string, parsed ParseResult) (any, error) {
				title := "Untitled"
				if len(args) > 0 {
					title = args[0]
				}
				return title, nil
			},
		},
		Command{
			Name:     "goto line",
			Category: "navigation",
			Parameters: []Parameter{
				{Name: "line", Required: true, Type: ParamNumber},
			},
			Handler: func(ctx context.Context, args []string, parsed ParseResult) (any, error) {
				return args[0], nil
			},
		},
	))
	return registry, NewExecutor(registry, NewHistory(DefaultHistoryLimit))
}

func TestExecutor_Execute_Success(t *testing.T) {
	_, executor := newTestExecutor(t)

	result, err := executor.Execute(context.Background(), "new document Notes")
	require.NoError(t, err)
	assert.Equal(t, "Notes", result)
}

func TestExecutor_Execute_ByAlias(t *testing.T) {
	_, executor := newTestExecutor(t)

	result, err := executor.Execute(context.Background(), ":n")
	require.NoError(t, err)
	assert.Equal(t, "Untitled", result)
}

func TestExecutor_Execute_CommandNotFound(t *testing.T) {
	_, executor := newTestExecutor(t)

	_, err := executor.Execute(context.Background(), "frobnicate")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCommandNotFound)
}

func TestExecutor_Execute_NotFoundSuggestsSimilar(t *testing.T) {
	_, executor := newTestExecutor(t)

	_, err := executor.Execute(context.Background(), "new doc")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCommandNotFound)
	assert.Contains(t, err.Error(), "new document")
}

func TestExecutor_Execute_CommandUnavailable(t *testing.T) {
	registry, _ := newTestExecutor(t)
	executor := NewExecutor(registry, nil)

	authenticated := false
	require.NoError(t, registry.Register(Command{
		Name:      "sync now",
		Condition: ConditionFunc(func() bool { return authenticated }),
		Handler:   nopHandler,
	}))

	_, err := executor.Execute(context.Background(), "sync now")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCommandUnavailable)

	authenticated = true
	_, err = executor.Execute(context.Background(), "sync now")
	assert.NoError(t, err)
}

func TestExecutor_Execute_ValidationFailures(t *testing.T) {
	_, executor := newTestExecutor(t)

	_, err := executor.Execute(context.Background(), "goto line")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingParameters)
	assert.Contains(t, err.Error(), "line")

	_, err = executor.Execute(context.Background(), "goto line ten")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameterType)
}

func TestExecutor_Execute_HandlerErrorPropagatesUnchanged(t *testing.T) {
	registry := NewRegistry()
	handlerErr := errors.New("disk full")
	require.NoError(t, registry.Register(Command{
		Name: "save",
		Handler: func(ctx context.Context, args []string, parsed ParseResult) (any, error) {
			return nil, handlerErr
		},
	}))
	executor := NewExecutor(registry, nil)

	_, err := executor.Execute(context.Background(), "save")
	assert.Equal(t, handlerErr, err)
}

func TestExecutor_Execute_HandlerReceivesParseResult(t *testing.T) {
	registry := NewRegistry()
	var got ParseResult
	require.NoError(t, registry.Register(Command{
		Name: "search advanced",
		Handler: func(ctx context.Context, args []string, parsed ParseResult) (any, error) {
			got = parsed
			return nil, nil
		},
	}))
	executor := NewExecutor(registry, nil)

	_, err := executor.Execute(context.Background(), "  search advanced now  ")
	require.NoError(t, err)
	assert.Equal(t, "search advanced", got.Name)
	assert.Equal(t, []string{"now"}, got.Args)
	assert.Equal(t, "search advanced now", got.CleanInput)
}

func TestExecutor_Events(t *testing.T) {
	_, executor := newTestExecutor(t)

	var events []Event
	cancel := executor.Subscribe(func(ev Event) {
		events = append(events, ev)
	})
	defer cancel()

	_, err := executor.Execute(context.Background(), "new document Notes")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventExecute, events[0].Type)
	assert.Equal(t, "new document", events[0].Command.Name)
	assert.Equal(t, []string{"Notes"}, events[0].Args)
	assert.Equal(t, "Notes", events[0].Result)
	assert.NotEmpty(t, events[0].ID)

	_, err = executor.Execute(context.Background(), "frobnicate")
	require.Error(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, EventError, events[1].Type)
	assert.Equal(t, "frobnicate", events[1].Input)
	assert.ErrorIs(t, events[1].Err, ErrCommandNotFound)

	// Each execution attempt carries its own event ID.
	assert.NotEqual(t, events[0].ID, events[1].ID)
}

func TestExecutor_Events_HandlerErrorBroadcast(t *testing.T) {
	registry := NewRegistry()
	handlerErr := errors.New("boom")
	require.NoError(t, registry.Register(Command{
		Name: "explode",
		Handler: func(ctx context.Context, args []string, parsed ParseResult) (any, error) {
			return nil, handlerErr
		},
	}))
	executor := NewExecutor(registry, nil)

	var events []Event
	executor.Subscribe(func(ev Event) { events = append(events, ev) })

	_, err := executor.Execute(context.Background(), "explode")
	require.Error(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventError, events[0].Type)
	assert.Equal(t, handlerErr, events[0].Err)
}

func TestExecutor_SubscribeCancel(t *testing.T) {
	_, executor := newTestExecutor(t)

	calls := 0
	cancel := executor.Subscribe(func(Event) { calls++ })

	_, err := executor.Execute(context.Background(), "new document")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	cancel()
	_, err = executor.Execute(context.Background(), "new document")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecutor_HistoryRecording(t *testing.T) {
	_, executor := newTestExecutor(t)

	_, err := executor.Execute(context.Background(), "new document One")
	require.NoError(t, err)
	_, err = executor.Execute(context.Background(), "new document Two")
	require.NoError(t, err)
	_, err = executor.Execute(context.Background(), "new document One")
	require.NoError(t, err)

	assert.Equal(t, []string{"new document One", "new document Two"}, executor.History())

	executor.ClearHistory()
	assert.Empty(t, executor.History())
}

func TestExecutor_FailedExecutionNotRecorded(t *testing.T) {
	_, executor := newTestExecutor(t)

	// Validation failures happen before the history append.
	_, err := executor.Execute(context.Background(), "goto line")
	require.Error(t, err)
	assert.Empty(t, executor.History())

	_, err = executor.Execute(context.Background(), "frobnicate")
	require.Error(t, err)
	assert.Empty(t, executor.History())
}

func TestExecutor_ContextPassthrough(t *testing.T) {
	registry := NewRegistry()
	type ctxKey struct{}
	require.NoError(t, registry.Register(Command{
		Name: "whoami",
		Handler: func(ctx context.Context, args []string, parsed ParseResult) (any, error) {
			return ctx.Value(ctxKey{}), nil
		},
	}))
	executor := NewExecutor(registry, nil)

	ctx := context.WithValue(context.Background(), ctxKey{}, "scribe")
	result, err := executor.Execute(ctx, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "scribe", result)
}
