package commands

import (
	"sort"
	"strings"
)

// MaxSearchResults caps the number of commands returned by Search.
const MaxSearchResults = 10

// ShortcutPrefix is the sentinel that marks a query as a shortcut-style
// alias lookup (":w", ":n 3"). Shortcut queries only ever match aliases
// exactly; they are not eligible for substring or fuzzy matching.
const ShortcutPrefix = ":"

// Score weights for the ranking heuristic. The tier structure and the exact
// values are a behavioral contract relied on by the palette ordering tests;
// they are summed per command, not chained with early returns.
const (
	shortcutExactScore = 2000

	scoreNameExact    = 1000
	scoreNamePrefix   = 800
	scoreNameContains = 600

	scoreAllWordsMatch  = 750
	scoreSomeWordsBase  = 400
	scoreSomeWordsEach  = 100
	scoreFirstWordStart = 550

	scoreAliasExact    = 900
	scoreAliasPrefix   = 700
	scoreAliasContains = 500

	scoreDescContains     = 200
	scoreCategoryContains = 100

	scoreFuzzyName = 300
	scoreFuzzyDesc = 100
)

// Search ranks the available commands against a query and returns at most
// MaxSearchResults of them, best first. Ties are broken by name so results
// are stable across calls.
func (r *registry) Search(query string) []Command {
	q := strings.TrimSpace(query)
	if q == "" {
		all := r.All()
		if len(all) > MaxSearchResults {
			all = all[:MaxSearchResults]
		}
		return all
	}

	shortcut := strings.HasPrefix(q, ShortcutPrefix)
	if shortcut {
		// Only the name token matters for alias lookup; a trailing
		// argument list (":goto 3") must not defeat the exact match.
		q = r.Parse(q).Name
	}
	lowered := strings.ToLower(q)

	type scoredCommand struct {
		cmd   Command
		score int
	}
	var matches []scoredCommand
	for _, cmd := range r.commands {
		if !cmd.Available() {
			continue
		}
		var score int
		if shortcut {
			score = shortcutScore(cmd, lowered)
		} else {
			score = commandScore(cmd, lowered)
		}
		if score > 0 {
			matches = append(matches, scoredCommand{cmd: *cmd, score: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].cmd.Name < matches[j].cmd.Name
	})
	if len(matches) > MaxSearchResults {
		matches = matches[:MaxSearchResults]
	}

	result := make([]Command, len(matches))
	for i, m := range matches {
		result[i] = m.cmd
	}
	return result
}

// shortcutScore scores a shortcut-style query: an exact alias match wins
// with a score far above anything commandScore can produce, so a typed
// shortcut always ranks first. Nothing else matches at all.
func shortcutScore(cmd *Command, token string) int {
	for _, alias := range cmd.Aliases {
		if strings.ToLower(alias) == token {
			return shortcutExactScore
		}
	}
	return 0
}

// commandScore computes the additive relevance of one command for a normal
// query. The query must already be lowercased. Each signal contributes
// independently; only the name tiers (exact/prefix/contains) are mutually
// exclusive, strongest applicable tier winning.
func commandScore(cmd *Command, query string) int {
	name := strings.ToLower(cmd.Name)
	score := 0

	switch {
	case name == query:
		score += scoreNameExact
	case strings.HasPrefix(name, query):
		score += scoreNamePrefix
	case strings.Contains(name, query):
		score += scoreNameContains
	}

	nameWords := strings.Fields(name)
	queryWords := strings.Fields(query)
	if len(queryWords) >= 2 && len(nameWords) >= 2 {
		matching := 0
		for _, qw := range queryWords {
			for _, nw := range nameWords {
				if strings.HasPrefix(nw, qw) {
					matching++
					break
				}
			}
		}
		if matching == len(queryWords) {
			score += scoreAllWordsMatch
		} else if matching > 0 {
			score += scoreSomeWordsBase + scoreSomeWordsEach*matching
		}
	}

	if len(nameWords) > 0 && strings.HasPrefix(nameWords[0], query) {
		score += scoreFirstWordStart
	}

	for _, alias := range cmd.Aliases {
		lowered := strings.ToLower(alias)
		switch {
		case lowered == query:
			score += scoreAliasExact
		case strings.HasPrefix(lowered, query):
			score += scoreAliasPrefix
		case strings.Contains(lowered, query):
			score += scoreAliasContains
		}
	}

	description := strings.ToLower(cmd.DisplayDescription())
	if strings.Contains(description, query) {
		score += scoreDescContains
	}
	if strings.Contains(strings.ToLower(cmd.DisplayCategory()), query) {
		score += scoreCategoryContains
	}

	// Fuzzy subsequence matching is a last resort: it only runs when no
	// stronger signal fired, and single-character queries are too noisy.
	if score == 0 && len(query) >= 2 {
		if fuzzyMatches(query, name) {
			score += scoreFuzzyName
		} else if fuzzyMatches(query, description) {
			score += scoreFuzzyDesc
		}
	}

	return score
}

// fuzzyMatches reports whether every character of query appears in text in
// order, not necessarily contiguously. Comparison is case-insensitive and
// rune-aware. The query is expected to be lowercased already.
func fuzzyMatches(query, text string) bool {
	if query == "" {
		return true
	}
	queryRunes := []rune(query)
	i := 0
	for _, r := range strings.ToLower(text) {
		if queryRunes[i] == r {
			i++
			if i == len(queryRunes) {
				return true
			}
		}
	}
	return false
}
