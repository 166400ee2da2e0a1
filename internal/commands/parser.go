package commands

import (
	"sort"
	"strings"
	"unicode"
)

// ParseResult is the outcome of resolving free text into a command
// invocation. Parsing is best-effort and never fails; a name that resolves
// to no registered command is reported by the dispatcher as
// ErrCommandNotFound instead.
type ParseResult struct {
	// Name is the resolved command name or alias, or the first input
	// token when nothing matched.
	Name string

	// Args are the whitespace-split tokens following the name.
	Args []string

	// RawInput is the input exactly as received.
	RawInput string

	// CleanInput is the input with surrounding whitespace trimmed.
	CleanInput string
}

// Parse resolves input into a command name plus arguments.
//
// Candidate names are the union of every registered command name and every
// alias, scanned longest first. A candidate matches when the trimmed input
// starts with it and the remainder is empty or begins with whitespace.
// Longest-first scanning makes multi-word commands greedy-resolve correctly:
// with both "search" and "search advanced" registered, "search advanced now"
// resolves to "search advanced" with args ["now"], not to "search".
//
// When no candidate matches, the input is naively whitespace-split: the
// first token becomes the name and the rest the arguments.
func (r *registry) Parse(input string) ParseResult {
	clean := strings.TrimSpace(input)
	result := ParseResult{
		Args:       []string{},
		RawInput:   input,
		CleanInput: clean,
	}
	if clean == "" {
		return result
	}

	for _, candidate := range r.parseCandidates() {
		if !strings.HasPrefix(clean, candidate) {
			continue
		}
		rest := clean[len(candidate):]
		if rest != "" && !startsWithSpace(rest) {
			// "searcher" must not resolve to "search"
			continue
		}
		result.Name = candidate
		result.Args = strings.Fields(rest)
		return result
	}

	tokens := strings.Fields(clean)
	result.Name = tokens[0]
	result.Args = tokens[1:]
	return result
}

// parseCandidates returns all command names and aliases, longest first.
// Equal lengths are ordered lexicographically so the scan is deterministic.
func (r *registry) parseCandidates() []string {
	candidates := make([]string, 0, len(r.commands)+len(r.aliases))
	for name := range r.commands {
		candidates = append(candidates, name)
	}
	for alias := range r.aliases {
		candidates = append(candidates, alias)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i]) != len(candidates[j]) {
			return len(candidates[i]) > len(candidates[j])
		}
		return candidates[i] < candidates[j]
	})
	return candidates
}

func startsWithSpace(s string) bool {
	for _, r := range s {
		return unicode.IsSpace(r)
	}
	return false
}
