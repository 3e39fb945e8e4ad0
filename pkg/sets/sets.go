package sets

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSet reports a selector that names no registered set.
var ErrUnknownSet = errors.New("unknown set")

// allAliases are selectors that resolve to the union of every set.
var allAliases = []string{"all", "-a", "--all"}

// Registry maps set names to ordered folder lists. Registration order is
// preserved so the "all" union is stable across runs.
type Registry struct {
	names   []string
	folders map[string][]string
}

func NewRegistry() *Registry {
	return &Registry{folders: make(map[string][]string)}
}

// Add registers a named set. Re-adding a name replaces its folder list
// without changing its position.
func (r *Registry) Add(name string, folders ...string) {
	if _, ok := r.folders[name]; !ok {
		r.names = append(r.names, name)
	}
	r.folders[name] = folders
}

// Names returns the set names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Folders returns the folder list registered under name.
func (r *Registry) Folders(name string) ([]string, bool) {
	folders, ok := r.folders[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(folders))
	copy(out, folders)
	return out, true
}

// Resolve maps a selector to the ordered list of folders to process. An
// empty selector or an "all" alias (case-insensitive) yields the union of
// every registered set, de-duplicated in first-seen order. A set name
// yields that set's folders verbatim, duplicates included.
func (r *Registry) Resolve(selector string) ([]string, error) {
	if isAllSelector(selector) {
		return r.union(), nil
	}

	folders, ok := r.Folders(selector)
	if !ok {
		return nil, fmt.Errorf("%w: %s (try 'htmlbak help')", ErrUnknownSet, selector)
	}
	return folders, nil
}

func (r *Registry) union() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, name := range r.names {
		for _, folder := range r.folders[name] {
			if _, ok := seen[folder]; ok {
				continue
			}
			seen[folder] = struct{}{}
			out = append(out, folder)
		}
	}
	return out
}

func isAllSelector(selector string) bool {
	if selector == "" {
		return true
	}
	lowered := strings.ToLower(selector)
	for _, alias := range allAliases {
		if lowered == alias {
			return true
		}
	}
	return false
}

// NormalizeRel strips the leading separator from a configured folder path
// so it can be joined onto the base directory.
func NormalizeRel(folder string) string {
	return strings.TrimLeft(folder, "/\\")
}

// Default returns the built-in registry used when no sets file is present.
func Default() *Registry {
	r := NewRegistry()
	r.Add("branch-01",
		"/phone",
		"/phone/specs",
		"/phone/compare",
	)
	r.Add("branch-02",
		"/watch",
		"/watch/compare",
		"/watch/feature-availity",
	)
	r.Add("branch-03",
		"/os",
		"/os/ios",
		"/os/macos",
		"/os/watchos",
	)
	return r
}
