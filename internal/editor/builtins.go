package editor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/wellingtongranja/fantasy-forgewright-sub001/internal/commands"
)

// RegisterBuiltins registers the editor's built-in command set against the
// registry. The executor is needed by the history commands; pass the one
// that will dispatch these commands.
func RegisterBuiltins(registry commands.Registry, executor commands.Executor, e *Editor) error {
	return registry.RegisterAll(e.builtins(registry, executor)...)
}

// builtins is the editor's command table: names, shortcuts, categories,
// parameters, and conditions for everything the palette offers out of the
// box.
func (e *Editor) builtins(registry commands.Registry, executor commands.Executor) []commands.Command {
	hasDocument := commands.ConditionFunc(func() bool { return e.Current() != nil })
	authenticated := commands.ConditionFunc(func() bool { return e.Authenticated() })

	return []commands.Command{
		{
			Name:        "new document",
			Description: "Create a new markdown document",
			Category:    "file",
			Aliases:     []string{":n"},
			Parameters: []commands.Parameter{
				{Name: "title", Required: false, Type: commands.ParamString},
			},
			Handler: func(ctx context.Context, args []string, parsed commands.ParseResult) (any, error) {
				doc := e.NewDocument(strings.Join(args, " "))
				return fmt.Sprintf("Created %q", doc.Title), nil
			},
		},
		{
			Name:        "open document",
			Description: "Open a document by title",
			Category:    "file",
			Aliases:     []string{":o"},
			Parameters: []commands.Parameter{
				{Name: "title", Required: true, Type: commands.ParamString},
			},
			Handler: func(ctx context.Context, args []string, parsed commands.ParseResult) (any, error) {
				doc, err := e.Open(strings.Join(args, " "))
				if err != nil {
					return nil, err
				}
				return fmt.Sprintf("Opened %q", doc.Title), nil
			},
		},
		{
			Name:        "save document",
			Description: "Save the current document",
			Category:    "file",
			Aliases:     []string{":w"},
			Condition:   hasDocument,
			Handler: func(ctx context.Context, args []string, parsed commands.ParseResult) (any, error) {
				doc, err := e.Save()
				if err != nil {
					return nil, err
				}
				return fmt.Sprintf("Saved %q", doc.Title), nil
			},
		},
		{
			Name:        "delete document",
			Description: "Delete a document by title",
			Category:    "file",
			Aliases:     []string{":d"},
			Parameters: []commands.Parameter{
				{Name: "title", Required: true, Type: commands.ParamString},
			},
			Handler: func(ctx context.Context, args []string, parsed commands.ParseResult) (any, error) {
				title := strings.Join(args, " ")
				if err := e.Delete(title); err != nil {
					return nil, err
				}
				return fmt.Sprintf("Deleted %q", title), nil
			},
		},
		{
			Name:        "list documents",
			Description: "List all documents",
			Category:    "file",
			Aliases:     []string{":ls"},
			Handler: func(ctx context.Context, args []string, parsed commands.ParseResult) (any, error) {
				titles := e.Titles()
				if len(titles) == 0 {
					return "No documents", nil
				}
				return strings.Join(titles, "\n"), nil
			},
		},
		{
			Name:        "search",
			Description: "Search document titles",
			Category:    "navigation",
			Aliases:     []string{":f"},
			Parameters: []commands.Parameter{
				{Name: "query", Required: false, Type: commands.ParamString},
			},
			Handler: func(ctx context.Context, args []string, parsed commands.ParseResult) (any, error) {
				matches := e.SearchTitles(strings.Join(args, " "))
				if len(matches) == 0 {
					return "No matches", nil
				}
				return strings.Join(matches, "\n"), nil
			},
		},
		{
			Name:        "search advanced",
			Description: "Search titles with a tag filter",
			Category:    "navigation",
			Parameters: []commands.Parameter{
				{Name: "query", Required: true, Type: commands.ParamString},
				{Name: "tag", Required: false, Type: commands.ParamString},
			},
			Handler: func(ctx context.Context, args []string, parsed commands.ParseResult) (any, error) {
				matches := e.SearchTitles(args[0])
				return fmt.Sprintf("%d match(es) for %q", len(matches), args[0]), nil
			},
		},
		{
			Name:        "goto line",
			Description: "Jump to a line in the current document",
			Category:    "navigation",
			Aliases:     []string{":g"},
			Condition:   hasDocument,
			Parameters: []commands.Parameter{
				{Name: "line", Required: true, Type: commands.ParamNumber},
				{Name: "column", Required: false, Type: commands.ParamNumber},
			},
			Handler: func(ctx context.Context, args []string, parsed commands.ParseResult) (any, error) {
				line, _ := strconv.Atoi(args[0])
				return fmt.Sprintf("Line %d", line), nil
			},
		},
		{
			Name:        "toggle preview",
			Description: "Toggle the markdown preview pane",
			Category:    "view",
			Aliases:     []string{":p"},
			Handler: func(ctx context.Context, args []string, parsed commands.ParseResult) (any, error) {
				if e.TogglePreview() {
					return "Preview on", nil
				}
				return "Preview off", nil
			},
		},
		{
			Name:        "set wrap",
			Description: "Turn word wrapping on or off",
			Category:    "view",
			Parameters: []commands.Parameter{
				{Name: "enabled", Required: true, Type: commands.ParamBoolean},
			},
			Handler: func(ctx context.Context, args []string, parsed commands.ParseResult) (any, error) {
				enabled := parseBoolToken(args[0])
				e.SetWordWrap(enabled)
				return fmt.Sprintf("Word wrap %v", enabled), nil
			},
		},
		{
			Name:        "set theme",
			Description: "Switch the editor theme",
			Category:    "view",
			Aliases:     []string{":t"},
			Parameters: []commands.Parameter{
				{Name: "name", Required: true, Type: commands.ParamString},
			},
			Handler: func(ctx context.Context, args []string, parsed commands.ParseResult) (any, error) {
				e.SetTheme(args[0])
				return fmt.Sprintf("Theme %q", args[0]), nil
			},
		},
		{
			Name:        "login",
			Description: "Authenticate the session",
			Category:    "session",
			Handler: func(ctx context.Context, args []string, parsed commands.ParseResult) (any, error) {
				e.Login()
				return "Logged in", nil
			},
		},
		{
			Name:        "logout",
			Description: "End the authenticated session",
			Category:    "session",
			Condition:   authenticated,
			Handler: func(ctx context.Context, args []string, parsed commands.ParseResult) (any, error) {
				e.Logout()
				return "Logged out", nil
			},
		},
		{
			Name:        "sync documents",
			Description: "Synchronize documents with the remote library",
			Category:    "session",
			Condition:   authenticated,
			Handler: func(ctx context.Context, args []string, parsed commands.ParseResult) (any, error) {
				return fmt.Sprintf("Synced %d document(s)", len(e.Titles())), nil
			},
		},
		{
			Name:        "help",
			Description: "Show all available commands",
			Category:    "general",
			Aliases:     []string{":h", ":?"},
			Handler: func(ctx context.Context, args []string, parsed commands.ParseResult) (any, error) {
				return commands.NewHelpHandler(registry).GenerateHelp(), nil
			},
		},
		{
			Name:        "history",
			Description: "Show recently executed commands",
			Category:    "general",
			Handler: func(ctx context.Context, args []string, parsed commands.ParseResult) (any, error) {
				entries := executor.History()
				if len(entries) == 0 {
					return "No history", nil
				}
				return strings.Join(entries, "\n"), nil
			},
		},
		{
			Name:        "clear history",
			Description: "Forget recently executed commands",
			Category:    "general",
			Handler: func(ctx context.Context, args []string, parsed commands.ParseResult) (any, error) {
				executor.ClearHistory()
				return "History cleared", nil
			},
		},
	}
}

// parseBoolToken maps the accepted boolean argument tokens to their value.
// Validation has already rejected anything outside the set.
func parseBoolToken(arg string) bool {
	switch strings.ToLower(arg) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
