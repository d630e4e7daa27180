// Package viewer holds the interactive selection state of the example viewer:
// which version, which example and which serialization is shown, plus the
// transient copy feedback.
package viewer

import (
	"errors"
	"sync"
	"time"

	"github.com/ziadkadry99/oas-examples/internal/catalog"
)

// Format is a serialization the viewer can display.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the selectable formats in toggle order.
var Formats = []Format{FormatJSON, FormatYAML}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	return f == FormatJSON || f == FormatYAML
}

// CopyFeedbackDelay is how long the copied flag stays raised after the last copy.
const CopyFeedbackDelay = 800 * time.Millisecond

var (
	ErrUnknownVersion = errors.New("viewer: unknown version")
	ErrUnknownExample = errors.New("viewer: example not in selected version")
	ErrUnknownFormat  = errors.New("viewer: unknown format")
	ErrEmptyCatalog   = errors.New("viewer: catalog has no examples to show")
)

// Clipboard receives copied text. Write errors are ignored by the viewer.
type Clipboard interface {
	WriteText(text string) error
}

// ClipboardFunc adapts a function to Clipboard.
type ClipboardFunc func(text string) error

func (f ClipboardFunc) WriteText(text string) error { return f(text) }

// stopper is the part of *time.Timer the state needs.
type stopper interface {
	Stop() bool
}

type afterFunc func(d time.Duration, f func()) stopper

func realAfterFunc(d time.Duration, f func()) stopper { return time.AfterFunc(d, f) }

// Option configures a State.
type Option func(*State)

// WithClipboard sets the clipboard copies are written to.
func WithClipboard(c Clipboard) Option {
	return func(s *State) { s.clipboard = c }
}

// WithDefaultVersion overrides the default version policy. Unknown labels
// fall back to the policy.
func WithDefaultVersion(label string) Option {
	return func(s *State) { s.defaultVersion = label }
}

// WithCopyFeedbackDelay changes how long the copied flag stays raised.
func WithCopyFeedbackDelay(d time.Duration) Option {
	return func(s *State) { s.copyDelay = d }
}

// WithOnChange registers a callback run, outside the state lock, whenever the
// state changes on its own (the copied flag resetting).
func WithOnChange(fn func(Snapshot)) Option {
	return func(s *State) { s.onChange = fn }
}

// State is one visitor's view of the catalog. Transitions are serialized; the
// catalog itself is never modified.
type State struct {
	mu sync.Mutex

	cat            *catalog.Catalog
	clipboard      Clipboard
	defaultVersion string
	copyDelay      time.Duration
	onChange       func(Snapshot)
	after          afterFunc

	version     string
	example     catalog.ExampleRecord
	format      Format
	copied      bool
	filtersOpen bool

	copyGen   uint64
	copyTimer stopper
}

// New creates the view-state for a fresh page load: the default version, its
// first example, JSON format.
func New(cat *catalog.Catalog, opts ...Option) (*State, error) {
	s := &State{
		cat:       cat,
		copyDelay: CopyFeedbackDelay,
		after:     realAfterFunc,
		format:    FormatJSON,
	}
	for _, opt := range opts {
		opt(s)
	}

	labels := cat.Labels()
	version := s.defaultVersion
	if !cat.Has(version) {
		version = SecondDeclaredVersion(labels)
	}
	first, ok := cat.First(version)
	if !ok {
		return nil, ErrEmptyCatalog
	}
	s.version = version
	s.example = first
	return s, nil
}

// SecondDeclaredVersion is the default version policy: the second declared
// version, or the first when only one exists. The published site has always
// opened on v3.0, the second of 2.0, 3.0 and 3.1.
func SecondDeclaredVersion(labels []string) string {
	switch len(labels) {
	case 0:
		return ""
	case 1:
		return labels[0]
	default:
		return labels[1]
	}
}

// SelectVersion switches version and resets the example to that version's
// first one. The format is kept. Unknown labels leave the state untouched.
func (s *State) SelectVersion(label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	first, ok := s.cat.First(label)
	if !ok {
		return ErrUnknownVersion
	}
	s.version = label
	s.example = first
	return nil
}

// SelectExample switches to an example of the selected version.
func (s *State) SelectExample(identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.cat.Example(s.version, identifier)
	if !ok {
		return ErrUnknownExample
	}
	s.example = rec
	return nil
}

// SelectFormat switches the displayed serialization.
func (s *State) SelectFormat(f Format) error {
	if !f.Valid() {
		return ErrUnknownFormat
	}
	s.mu.Lock()
	s.format = f
	s.mu.Unlock()
	return nil
}

// SetFiltersOpen shows or hides the mobile filter drawer.
func (s *State) SetFiltersOpen(open bool) {
	s.mu.Lock()
	s.filtersOpen = open
	s.mu.Unlock()
}

// ToggleFilters flips the mobile filter drawer.
func (s *State) ToggleFilters() {
	s.mu.Lock()
	s.filtersOpen = !s.filtersOpen
	s.mu.Unlock()
}

// CurrentText returns the selected example in the selected format.
func (s *State) CurrentText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentTextLocked()
}

func (s *State) currentTextLocked() string {
	if s.format == FormatYAML {
		return s.example.YAMLText
	}
	return s.example.JSONText
}

// CopyCurrentText writes the current text to the clipboard and raises the
// copied flag. The flag drops once the feedback delay has passed since the
// latest copy; a newer copy replaces the pending reset. Clipboard failures
// are ignored and do not affect the flag.
func (s *State) CopyCurrentText() {
	s.mu.Lock()
	text := s.currentTextLocked()
	s.copied = true
	s.copyGen++
	gen := s.copyGen
	if s.copyTimer != nil {
		s.copyTimer.Stop()
	}
	s.copyTimer = s.after(s.copyDelay, func() { s.resetCopied(gen) })
	clip := s.clipboard
	s.mu.Unlock()

	if clip != nil {
		_ = clip.WriteText(text)
	}
}

// resetCopied lowers the flag unless a newer copy has superseded gen.
func (s *State) resetCopied(gen uint64) {
	s.mu.Lock()
	if gen != s.copyGen {
		s.mu.Unlock()
		return
	}
	s.copied = false
	s.copyTimer = nil
	snap := s.snapshotLocked()
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(snap)
	}
}

// Close cancels a pending copied-flag reset.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.copyTimer != nil {
		s.copyTimer.Stop()
		s.copyTimer = nil
	}
	s.copyGen++
}

// Version returns the selected version label.
func (s *State) Version() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Example returns the selected example.
func (s *State) Example() catalog.ExampleRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.example
}

// Format returns the selected format.
func (s *State) Format() Format {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.format
}

// Copied reports whether copy feedback is showing.
func (s *State) Copied() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copied
}

// FiltersOpen reports whether the mobile filter drawer is open.
func (s *State) FiltersOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filtersOpen
}
