// Package editor holds the in-memory document model of the Fantasy
// Forgewright editor and registers its built-in command set against the
// command registry. It is a consumer of the registry's public surface:
// nothing here reaches into the registry's internals.
package editor

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Document is a single markdown document held in memory. Documents are not
// persisted across sessions; storage and sync are external collaborators.
type Document struct {
	Title    string
	Content  string
	Modified time.Time
}

// Editor is the mutable application state the built-in commands act on.
type Editor struct {
	documents     map[string]*Document
	current       string
	preview       bool
	wordWrap      bool
	theme         string
	authenticated bool
}

// New creates an editor with no documents, the default theme, and word wrap
// enabled.
func New() *Editor {
	return &Editor{
		documents: make(map[string]*Document),
		theme:     "parchment",
		wordWrap:  true,
	}
}

// NewDocument creates and focuses a document. Duplicate titles get a
// numeric suffix rather than clobbering the existing document.
func (e *Editor) NewDocument(title string) *Document {
	if title == "" {
		title = "Untitled"
	}
	unique := title
	for i := 2; ; i++ {
		if _, taken := e.documents[unique]; !taken {
			break
		}
		unique = fmt.Sprintf("%s %d", title, i)
	}
	doc := &Document{Title: unique, Modified: time.Now()}
	e.documents[unique] = doc
	e.current = unique
	return doc
}

// Open focuses an existing document by title.
func (e *Editor) Open(title string) (*Document, error) {
	doc, ok := e.documents[title]
	if !ok {
		return nil, fmt.Errorf("no document titled %q", title)
	}
	e.current = title
	return doc, nil
}

// Current returns the focused document, or nil when none is open.
func (e *Editor) Current() *Document {
	if e.current == "" {
		return nil
	}
	return e.documents[e.current]
}

// Save stamps the focused document. The document only lives in memory; the
// stamp is what the status line reports.
func (e *Editor) Save() (*Document, error) {
	doc := e.Current()
	if doc == nil {
		return nil, fmt.Errorf("no document is open")
	}
	doc.Modified = time.Now()
	return doc, nil
}

// Delete removes a document by title, clearing focus if it was current.
func (e *Editor) Delete(title string) error {
	if _, ok := e.documents[title]; !ok {
		return fmt.Errorf("no document titled %q", title)
	}
	delete(e.documents, title)
	if e.current == title {
		e.current = ""
	}
	return nil
}

// Titles returns all document titles, sorted.
func (e *Editor) Titles() []string {
	titles := make([]string, 0, len(e.documents))
	for title := range e.documents {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

// SearchTitles returns the sorted titles containing the query,
// case-insensitively. An empty query matches everything.
func (e *Editor) SearchTitles(query string) []string {
	query = strings.ToLower(query)
	var matches []string
	for _, title := range e.Titles() {
		if strings.Contains(strings.ToLower(title), query) {
			matches = append(matches, title)
		}
	}
	return matches
}

// TogglePreview flips the preview pane and returns the new state.
func (e *Editor) TogglePreview() bool {
	e.preview = !e.preview
	return e.preview
}

// SetWordWrap sets word wrapping.
func (e *Editor) SetWordWrap(enabled bool) {
	e.wordWrap = enabled
}

// WordWrap reports whether word wrapping is on.
func (e *Editor) WordWrap() bool {
	return e.wordWrap
}

// SetTheme switches the UI theme.
func (e *Editor) SetTheme(name string) {
	e.theme = name
}

// Theme returns the active theme name.
func (e *Editor) Theme() string {
	return e.theme
}

// Login marks the session authenticated, unlocking sync commands.
func (e *Editor) Login() {
	e.authenticated = true
}

// Logout drops authentication.
func (e *Editor) Logout() {
	e.authenticated = false
}

// Authenticated reports the session state.
func (e *Editor) Authenticated() bool {
	return e.authenticated
}
