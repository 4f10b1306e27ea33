package locale

import (
	"sort"
	"sync"

	"golang.org/x/text/language"
)

// Entry is a registered locale and its short-date pattern.
type Entry struct {
	Tag          language.Tag
	ShortPattern string
}

// Registry maps locale tags to short-date patterns. The zero value is not
// usable; build one with NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	entries map[language.Tag]*Entry
	index   *matchIndex
}

// matchIndex pairs a matcher with the tag slice its indices refer to. It is
// rebuilt lazily after every Register.
type matchIndex struct {
	matcher language.Matcher
	tags    []language.Tag
}

var defaultRegistry = NewRegistry(nil, nil)

// Default returns the process wide registry holding the built-in patterns.
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry returns a registry holding a copy of parent's entries with
// overrides layered on top. parent is not modified by later Register calls
// on the result, nor the result by calls on parent.
func NewRegistry(parent *Registry, overrides map[language.Tag]string) *Registry {
	r := &Registry{entries: map[language.Tag]*Entry{}}
	if parent != nil {
		parent.mu.RLock()
		for tag, e := range parent.entries {
			r.entries[tag] = e
		}
		parent.mu.RUnlock()
	}
	for tag, p := range overrides {
		r.entries[tag] = &Entry{Tag: tag, ShortPattern: p}
	}
	return r
}

// Register adds or replaces the short-date pattern for tag in the default
// registry.
func Register(tag language.Tag, shortPattern string) {
	defaultRegistry.Register(tag, shortPattern)
}

// Lookup is Lookup on the default registry.
func Lookup(tag language.Tag) (*Entry, bool) {
	return defaultRegistry.Lookup(tag)
}

// All is All on the default registry.
func All() []Entry {
	return defaultRegistry.All()
}

// Register adds or replaces the short-date pattern for tag.
func (r *Registry) Register(tag language.Tag, shortPattern string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[tag] = &Entry{Tag: tag, ShortPattern: shortPattern}
	r.index = nil
}

// Lookup returns the registered entry that best matches tag. Regional
// variants fall back to a sibling of the same language, so de-LU finds a
// de-* entry when it is not registered itself. A tag whose language has no
// entry at all has no pattern.
func (r *Registry) Lookup(tag language.Tag) (*Entry, bool) {
	r.mu.RLock()
	e, ok := r.entries[tag]
	r.mu.RUnlock()
	if ok {
		return e, true
	}
	idx := r.currentIndex()
	if len(idx.tags) == 0 {
		return nil, false
	}
	_, i, conf := idx.matcher.Match(tag)
	if conf == language.No {
		return nil, false
	}
	// The matcher falls back to its first tag with High confidence for
	// unrelated languages.
	want, _ := tag.Base()
	got, _ := idx.tags[i].Base()
	if want != got {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok = r.entries[idx.tags[i]]
	return e, ok
}

func (r *Registry) currentIndex() *matchIndex {
	r.mu.RLock()
	idx := r.index
	r.mu.RUnlock()
	if idx != nil {
		return idx
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.index == nil {
		tags := r.sortedTags()
		r.index = &matchIndex{tags: tags}
		if len(tags) > 0 {
			r.index.matcher = language.NewMatcher(tags)
		}
	}
	return r.index
}

// All returns every registered entry ordered by tag.
func (r *Registry) All() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.entries))
	for _, tag := range r.sortedTags() {
		out = append(out, *r.entries[tag])
	}
	return out
}

// sortedTags must be called with mu held.
func (r *Registry) sortedTags() []language.Tag {
	tags := make([]language.Tag, 0, len(r.entries))
	for tag := range r.entries {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].String() < tags[j].String() })
	return tags
}
