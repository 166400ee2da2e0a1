package commands

import (
	"fmt"
	"strings"
)

// HelpHandler generates the text for the built-in help command: every
// currently available command, grouped by category, with descriptions,
// aliases, and parameter hints.
type HelpHandler struct {
	registry Registry
}

// NewHelpHandler creates a help generator over the given registry.
func NewHelpHandler(registry Registry) *HelpHandler {
	return &HelpHandler{registry: registry}
}

// GenerateHelp formats the available commands for display.
//
// Categories are emitted in sorted order, and within each category the
// commands are sorted by name, matching ByCategory's ordering.
func (h *HelpHandler) GenerateHelp() string {
	var output strings.Builder
	output.WriteString("Available Commands:\n")

	for _, category := range h.registry.Categories() {
		cmds := h.registry.ByCategory(category)
		if len(cmds) == 0 {
			continue
		}

		fmt.Fprintf(&output, "\n%s:\n", strings.ToUpper(category[:1])+category[1:])
		for _, cmd := range cmds {
			fmt.Fprintf(&output, "  %s", cmd.Name)
			if hint := parameterHint(cmd); hint != "" {
				fmt.Fprintf(&output, " %s", hint)
			}
			fmt.Fprintf(&output, " - %s", cmd.DisplayDescription())
			if len(cmd.Aliases) > 0 {
				fmt.Fprintf(&output, " (%s)", strings.Join(cmd.Aliases, ", "))
			}
			output.WriteString("\n")
		}
	}

	return output.String()
}

// parameterHint renders a command's parameters as "[name] <name>", angle
// brackets marking required parameters.
func parameterHint(cmd Command) string {
	if len(cmd.Parameters) == 0 {
		return ""
	}
	parts := make([]string, 0, len(cmd.Parameters))
	for _, p := range cmd.Parameters {
		if p.Required {
			parts = append(parts, "<"+p.Name+">")
		} else {
			parts = append(parts, "["+p.Name+"]")
		}
	}
	return strings.Join(parts, " ")
}
