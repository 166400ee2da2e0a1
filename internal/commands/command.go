package commands

import (
	"context"
	"fmt"
)

// ParamType is the declared type of a command parameter. Supplied arguments
// are validated against it positionally before the command runs.
type ParamType string

const (
	// ParamString accepts any argument.
	ParamString ParamType = "string"

	// ParamNumber accepts arguments that parse as a (possibly fractional) number.
	ParamNumber ParamType = "number"

	// ParamBoolean accepts true/false/1/0/yes/no, case-insensitively.
	ParamBoolean ParamType = "boolean"
)

// Parameter describes one positional parameter of a command.
type Parameter struct {
	// Name identifies the parameter in help output and error messages.
	Name string

	// Required marks the parameter as mandatory. Execution fails with
	// ErrMissingParameters when fewer arguments than required parameters
	// are supplied.
	Required bool

	// Type selects the validation applied to the supplied argument.
	// The zero value behaves like ParamString.
	Type ParamType
}

// Condition gates a command's visibility and availability. It is evaluated
// at query time (All, ByCategory, Search) and again at execute time, so a
// command can appear and disappear as application state changes.
//
// A nil Condition on a Command means always available.
type Condition interface {
	// IsAvailable reports whether the command may be listed and executed
	// right now.
	IsAvailable() bool
}

// ConditionFunc adapts an ordinary function to the Condition interface.
type ConditionFunc func() bool

// IsAvailable implements Condition.
func (f ConditionFunc) IsAvailable() bool { return f() }

// Handler is the invocable behavior of a command. It receives the
// whitespace-split arguments and the full parse result of the input that
// triggered it. The context is passed through from Execute unchanged; the
// registry imposes no timeout or cancellation of its own.
type Handler func(ctx context.Context, args []string, parsed ParseResult) (any, error)

// Command is a named, invocable unit of editor functionality.
//
// Commands are registered by feature modules at start-up (and occasionally
// later) and normally live for the process lifetime. Names may contain
// internal whitespace ("multi-word" commands such as "search advanced");
// the parser resolves those greedily, longest name first.
type Command struct {
	// Name is the unique canonical name, e.g. "new document".
	// It may contain spaces. Must be non-empty.
	Name string

	// Description is shown in the palette and in help output.
	// Defaults to a generated value when empty.
	Description string

	// Category groups related commands for help output and ByCategory
	// listings. Defaults to "general" when empty.
	Category string

	// Aliases are short alternate names, conventionally shortcut-prefixed
	// (":n", ":w"). Each alias must be unique across the whole registry.
	Aliases []string

	// Parameters declares the positional parameters, in order.
	// Arguments beyond the declared list are passed through unchecked.
	Parameters []Parameter

	// Condition gates visibility and availability. Nil means always.
	Condition Condition

	// Handler is the command's effect. Required.
	Handler Handler
}

// Available reports whether the command's condition currently allows it.
func (c *Command) Available() bool {
	return c.Condition == nil || c.Condition.IsAvailable()
}

// DisplayDescription returns the description, generating a fallback from the
// name when none was registered.
func (c *Command) DisplayDescription() string {
	if c.Description != "" {
		return c.Description
	}
	return fmt.Sprintf("Run the %q command", c.Name)
}

// DisplayCategory returns the category, defaulting to "general".
func (c *Command) DisplayCategory() string {
	if c.Category != "" {
		return c.Category
	}
	return defaultCategory
}

// defaultCategory groups commands registered without an explicit category.
const defaultCategory = "general"

// requiredParameters returns the declared parameters marked Required,
// preserving declaration order.
func (c *Command) requiredParameters() []Parameter {
	var required []Parameter
	for _, p := range c.Parameters {
		if p.Required {
			required = append(required, p)
		}
	}
	return required
}
