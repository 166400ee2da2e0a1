package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHelp(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.RegisterAll(
		Command{
			Name:        "save document",
			Description: "Save the current document",
			Category:    "file",
			Aliases:     []string{":w"},
			Handler:     nopHandler,
		},
		Command{
			Name:     "goto line",
			Category: "navigation",
			Parameters: []Parameter{
				{Name: "line", Required: true, Type: ParamNumber},
				{Name: "column", Required: false, Type: ParamNumber},
			},
			Handler: nopHandler,
		},
	))

	help := NewHelpHandler(registry).GenerateHelp()

	assert.Contains(t, help, "Available Commands:")
	assert.Contains(t, help, "File:")
	assert.Contains(t, help, "Navigation:")
	assert.Contains(t, help, "save document - Save the current document (:w)")
	assert.Contains(t, help, "goto line <line> [column]")

	// Categories appear in sorted order.
	assert.Less(t, strings.Index(help, "File:"), strings.Index(help, "Navigation:"))
}

func TestGenerateHelp_SkipsUnavailable(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.RegisterAll(
		Command{Name: "visible", Handler: nopHandler},
		Command{
			Name:      "hidden",
			Condition: ConditionFunc(func() bool { return false }),
			Handler:   nopHandler,
		},
	))

	help := NewHelpHandler(registry).GenerateHelp()
	assert.Contains(t, help, "visible")
	assert.NotContains(t, help, "hidden")
}
