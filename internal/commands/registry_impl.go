package commands

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
)

// registry is the concrete implementation of the Registry interface.
type registry struct {
	// commands maps canonical name to the registered command
	commands map[string]*Command
	// aliases maps each alias to the owning command's canonical name
	aliases map[string]string
	// categories maps category to the names registered under it, in
	// registration order
	categories map[string][]string
}

// NewRegistry creates an empty command registry. Feature modules register
// their commands against it at load time; nothing is pre-registered.
func NewRegistry() Registry {
	return &registry{
		commands:   make(map[string]*Command),
		aliases:    make(map[string]string),
		categories: make(map[string][]string),
	}
}

// Register adds a command, enforcing the invariant that names and aliases
// never collide across the registry. Re-registering an existing name is
// last-write-wins: the previous command is fully unregistered first so the
// alias map and category index stay symmetric.
func (r *registry) Register(cmd Command) error {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidCommand)
	}
	if cmd.Handler == nil {
		return fmt.Errorf("%w: command %q has no handler", ErrInvalidCommand, name)
	}
	cmd.Name = name

	for _, alias := range cmd.Aliases {
		if alias == name {
			return fmt.Errorf("%w: alias %q duplicates the command name", ErrInvalidCommand, alias)
		}
		if owner, taken := r.aliases[alias]; taken && owner != name {
			return fmt.Errorf("%w: alias %q already registered for command %q", ErrInvalidCommand, alias, owner)
		}
		if _, taken := r.commands[alias]; taken {
			return fmt.Errorf("%w: alias %q collides with the command named %q", ErrInvalidCommand, alias, alias)
		}
	}

	if existing, exists := r.commands[name]; exists {
		slog.Warn("Command name conflict detected",
			"command", name,
			"existing_category", existing.DisplayCategory(),
			"resolution", "newer registration overwrites",
		)
		r.Unregister(name)
	}

	stored := cmd
	r.commands[name] = &stored
	for _, alias := range cmd.Aliases {
		r.aliases[alias] = name
	}
	category := stored.DisplayCategory()
	r.categories[category] = append(r.categories[category], name)

	slog.Debug("Registered command",
		"command", name,
		"category", category,
		"aliases", len(cmd.Aliases),
	)
	return nil
}

// RegisterAll registers commands in order, stopping at the first failure.
func (r *registry) RegisterAll(cmds ...Command) error {
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Unregister removes the named command symmetrically from all three indices.
func (r *registry) Unregister(name string) bool {
	cmd, exists := r.commands[name]
	if !exists {
		slog.Debug("Unregister of unknown command ignored", "command", name)
		return false
	}

	for _, alias := range cmd.Aliases {
		delete(r.aliases, alias)
	}

	category := cmd.DisplayCategory()
	members := slices.DeleteFunc(r.categories[category], func(n string) bool {
		return n == name
	})
	if len(members) == 0 {
		delete(r.categories, category)
	} else {
		r.categories[category] = members
	}

	delete(r.commands, name)
	slog.Debug("Unregistered command", "command", name, "category", category)
	return true
}

// Get resolves a canonical name or alias. Condition is not consulted here.
func (r *registry) Get(nameOrAlias string) (*Command, bool) {
	if cmd, ok := r.commands[nameOrAlias]; ok {
		return cmd, true
	}
	if name, ok := r.aliases[nameOrAlias]; ok {
		return r.commands[name], true
	}
	return nil, false
}

// All returns the currently available commands sorted by name.
func (r *registry) All() []Command {
	result := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		if cmd.Available() {
			result = append(result, *cmd)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// ByCategory returns the available commands of one category sorted by name.
func (r *registry) ByCategory(category string) []Command {
	names := r.categories[category]
	result := make([]Command, 0, len(names))
	for _, name := range names {
		if cmd, ok := r.commands[name]; ok && cmd.Available() {
			result = append(result, *cmd)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Categories returns the sorted category names.
func (r *registry) Categories() []string {
	result := make([]string, 0, len(r.categories))
	for category := range r.categories {
		result = append(result, category)
	}
	sort.Strings(result)
	return result
}
