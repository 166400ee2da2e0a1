package commands

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchRegistry(t *testing.T) Registry {
	t.Helper()
	registry := NewRegistry()
	require.NoError(t, registry.RegisterAll(
		Command{
			Name:        "new document",
			Description: "Create a new markdown document",
			Category:    "file",
			Aliases:     []string{":n"},
			Handler:     nopHandler,
		},
		Command{
			Name:        "save document",
			Description: "Save the current document",
			Category:    "file",
			Aliases:     []string{":w"},
			Handler:     nopHandler,
		},
		Command{
			Name:        "delete document",
			Description: "Delete the current document",
			Category:    "file",
			Aliases:     []string{":d"},
			Handler:     nopHandler,
		},
		Command{
			Name:        "archive",
			Description: "Move a document to the archive",
			Category:    "library",
			Handler:     nopHandler,
		},
		Command{
			Name:        "toggle preview",
			Description: "Toggle the markdown preview pane",
			Category:    "view",
			Aliases:     []string{":p"},
			Handler:     nopHandler,
		},
	))
	return registry
}

func TestSearch_EmptyQuery_ListsLexicographically(t *testing.T) {
	registry := newSearchRegistry(t)
	results := registry.Search("")
	require.Len(t, results, 5)
	assert.Equal(t, "archive", results[0].Name)
	assert.Equal(t, "delete document", results[1].Name)
	assert.Equal(t, "new document", results[2].Name)
}

func TestSearch_CapsResults(t *testing.T) {
	registry := NewRegistry()
	for i := 0; i < 25; i++ {
		require.NoError(t, registry.Register(Command{
			Name:    fmt.Sprintf("command %02d", i),
			Handler: nopHandler,
		}))
	}

	assert.Len(t, registry.Search(""), MaxSearchResults)
	assert.Len(t, registry.Search("command"), MaxSearchResults)
}

func TestSearch_ShortcutExactness(t *testing.T) {
	// ":d" must surface the aliased command as the sole result even
	// though other names textually contain "d".
	registry := newSearchRegistry(t)
	results := registry.Search(":d")
	require.Len(t, results, 1)
	assert.Equal(t, "delete document", results[0].Name)
}

func TestSearch_ShortcutStripsArguments(t *testing.T) {
	registry := newSearchRegistry(t)
	results := registry.Search(":n My Novel")
	require.Len(t, results, 1)
	assert.Equal(t, "new document", results[0].Name)
}

func TestSearch_ShortcutNotEligibleForFuzzy(t *testing.T) {
	// A shortcut-style query that matches no alias exactly matches
	// nothing, regardless of substring or subsequence hits elsewhere.
	registry := newSearchRegistry(t)
	assert.Empty(t, registry.Search(":doc"))
	assert.Empty(t, registry.Search(":z"))
}

func TestSearch_ScoreMonotonicity(t *testing.T) {
	// An exact name match must rank strictly above a command merely
	// containing the query in its description.
	registry := newSearchRegistry(t)
	results := registry.Search("new document")
	require.NotEmpty(t, results)
	assert.Equal(t, "new document", results[0].Name)
}

func TestSearch_PrefixBeatsSubstring(t *testing.T) {
	registry := newSearchRegistry(t)
	results := registry.Search("new")
	require.NotEmpty(t, results)
	assert.Equal(t, "new document", results[0].Name)
}

func TestSearch_ExcludesUnavailableCommands(t *testing.T) {
	registry := newSearchRegistry(t)
	available := true
	require.NoError(t, registry.Register(Command{
		Name:      "sync settings",
		Category:  "settings",
		Condition: ConditionFunc(func() bool { return available }),
		Handler:   nopHandler,
	}))

	results := registry.Search("sync settings")
	require.NotEmpty(t, results)
	assert.Equal(t, "sync settings", results[0].Name)

	available = false
	assert.Empty(t, registry.Search("sync settings"))
}

func TestSearch_FuzzySubsequenceFallback(t *testing.T) {
	registry := newSearchRegistry(t)

	// "tgl pv" has no direct hit anywhere; "tglpv" is not tested since
	// fields differ — use a subsequence of "toggle preview".
	results := registry.Search("tgprv")
	require.NotEmpty(t, results)
	assert.Equal(t, "toggle preview", results[0].Name)
}

func TestSearch_SingleCharQueryNotFuzzy(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(Command{
		Name:    "zebra",
		Handler: nopHandler,
	}))

	// "b" is a subsequence of "zebra" but single-character queries are
	// not eligible for the fuzzy fallback, and "b" is a substring hit
	// anyway; "q" matches nothing at all.
	assert.Empty(t, registry.Search("q"))
}

func TestCommandScore_Tiers(t *testing.T) {
	tests := []struct {
		name  string
		cmd   Command
		query string
		want  int
	}{
		{
			name:  "exact name plus first word prefix",
			cmd:   Command{Name: "archive", Description: "x", Category: "library"},
			query: "archive",
			want:  scoreNameExact + scoreFirstWordStart,
		},
		{
			name:  "name prefix plus first word prefix",
			cmd:   Command{Name: "archive", Description: "x", Category: "library"},
			query: "arch",
			want:  scoreNamePrefix + scoreFirstWordStart,
		},
		{
			name:  "name substring only",
			cmd:   Command{Name: "archive", Description: "x", Category: "library"},
			query: "chive",
			want:  scoreNameContains,
		},
		{
			name:  "multi-word all query words prefix name words",
			cmd:   Command{Name: "search advanced", Description: "x", Category: "tools"},
			query: "se ad",
			want:  scoreAllWordsMatch,
		},
		{
			name:  "multi-word partial match",
			cmd:   Command{Name: "search advanced", Description: "x", Category: "tools"},
			query: "se zz",
			want:  scoreSomeWordsBase + scoreSomeWordsEach*1,
		},
		{
			name:  "alias exact accumulates with name substring",
			cmd:   Command{Name: "delete", Aliases: []string{"del"}, Description: "x", Category: "file"},
			query: "del",
			want:  scoreNamePrefix + scoreFirstWordStart + scoreAliasExact,
		},
		{
			name:  "description contains",
			cmd:   Command{Name: "archive", Description: "move a document away", Category: "library"},
			query: "document",
			want:  scoreDescContains,
		},
		{
			name:  "category contains",
			cmd:   Command{Name: "archive", Description: "x", Category: "library"},
			query: "libr",
			want:  scoreCategoryContains,
		},
		{
			name:  "fuzzy name fallback",
			cmd:   Command{Name: "toggle preview", Description: "x", Category: "view"},
			query: "tgprv",
			want:  scoreFuzzyName,
		},
		{
			name:  "fuzzy description fallback",
			cmd:   Command{Name: "archive", Description: "move to long-term storage", Category: "library"},
			query: "lgtrm",
			want:  scoreFuzzyDesc,
		},
		{
			name:  "no match",
			cmd:   Command{Name: "archive", Description: "x", Category: "library"},
			query: "zzz",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commandScore(&tt.cmd, tt.query))
		})
	}
}

func TestFuzzyMatches(t *testing.T) {
	tests := []struct {
		query string
		text  string
		want  bool
	}{
		{"nd", "new document", true},
		{"nwdc", "new document", true},
		{"document", "new document", true},
		{"tw", "new document", false},
		{"", "anything", true},
		{"sv", "Save", true},
		{"xyz", "save", false},
	}

	for _, tt := range tests {
		t.Run(tt.query+"/"+tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, fuzzyMatches(tt.query, tt.text))
		})
	}
}
