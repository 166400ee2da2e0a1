package commands

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// booleanTokens is the accepted-token set for ParamBoolean arguments,
// compared case-insensitively.
var booleanTokens = map[string]struct{}{
	"true":  {},
	"false": {},
	"1":     {},
	"0":     {},
	"yes":   {},
	"no":    {},
}

// validateParameters checks the supplied arguments against the command's
// declared parameters.
//
// Missing required parameters fail with ErrMissingParameters, naming the
// unfilled tail of the required list in declared order. Each positionally
// aligned argument is then checked against its declared type; extra
// arguments beyond the declared list pass through unchecked.
func validateParameters(cmd *Command, args []string) error {
	required := cmd.requiredParameters()
	if len(args) < len(required) {
		missing := make([]string, 0, len(required)-len(args))
		for _, p := range required[len(args):] {
			missing = append(missing, p.Name)
		}
		slog.Warn("Missing required arguments",
			"command", cmd.Name,
			"required", len(required),
			"provided", len(args),
			"missing", missing,
		)
		return fmt.Errorf("%w: command %q requires %d argument(s), but %d provided. Missing: %s",
			ErrMissingParameters, cmd.Name, len(required), len(args), strings.Join(missing, ", "))
	}

	for i, arg := range args {
		if i >= len(cmd.Parameters) {
			break
		}
		param := cmd.Parameters[i]
		switch param.Type {
		case ParamNumber:
			if _, err := strconv.ParseFloat(arg, 64); err != nil {
				return fmt.Errorf("%w: parameter %q of command %q expects a number, got %q",
					ErrInvalidParameterType, param.Name, cmd.Name, arg)
			}
		case ParamBoolean:
			if _, ok := booleanTokens[strings.ToLower(arg)]; !ok {
				return fmt.Errorf("%w: parameter %q of command %q expects a boolean (true/false/1/0/yes/no), got %q",
					ErrInvalidParameterType, param.Name, cmd.Name, arg)
			}
		}
	}

	return nil
}
