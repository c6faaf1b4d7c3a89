package step

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Listing is a static pseudo-code listing shown next to an animation.
type Listing struct {
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// Format renders the listing with the current line passed through mark.
// Lines outside the listing leave every line unmarked.
func (l Listing) Format(current int, mark func(string) string) string {
	var b strings.Builder
	for i, line := range l.Lines {
		if i == current && mark != nil {
			line = mark(line)
		}
		b.WriteString(line)
		if i < len(l.Lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

var (
	listingsMu sync.RWMutex
	listings   = map[string]Listing{}
)

// Register makes a listing available to tracers. Engines register their
// listings from init; registering the same name twice panics.
func Register(l Listing) {
	listingsMu.Lock()
	defer listingsMu.Unlock()
	if _, dup := listings[l.Name]; dup {
		panic(fmt.Sprintf("step: listing %q registered twice", l.Name))
	}
	listings[l.Name] = l
}

// Lookup returns the listing registered under name.
func Lookup(name string) (Listing, bool) {
	listingsMu.RLock()
	defer listingsMu.RUnlock()
	l, ok := listings[name]
	return l, ok
}

// Names returns the registered listing names in sorted order.
func Names() []string {
	listingsMu.RLock()
	defer listingsMu.RUnlock()
	names := make([]string, 0, len(listings))
	for name := range listings {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ListingTracer is a [Tracer] that remembers the current algorithm and line
// and optionally notifies a callback on every change.
type ListingTracer struct {
	// OnChange, if set, is called after every highlight.
	OnChange func(algorithm string, line int)

	mu        sync.Mutex
	algorithm string
	line      int
}

// Highlight records the current position.
func (t *ListingTracer) Highlight(algorithm string, line int) {
	t.mu.Lock()
	t.algorithm, t.line = algorithm, line
	fn := t.OnChange
	t.mu.Unlock()
	if fn != nil {
		fn(algorithm, line)
	}
}

// Current returns the last highlighted algorithm and line.
func (t *ListingTracer) Current() (string, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.algorithm, t.line
}

// Render formats the current listing, marking the highlighted line with ▸.
func (t *ListingTracer) Render() string {
	algorithm, line := t.Current()
	l, ok := Lookup(algorithm)
	if !ok {
		return ""
	}
	marked := l.Format(line, func(s string) string { return "▸" + s })
	var b strings.Builder
	for i, s := range strings.Split(marked, "\n") {
		if i != line {
			s = " " + s
		}
		b.WriteString(s)
		b.WriteByte('\n')
	}
	return b.String()
}
