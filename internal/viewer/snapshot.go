package viewer

// Tab is one entry of the version navigation.
type Tab struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Active  bool   `json:"active"`
}

// Entry is one example in the sidebar of the selected version.
type Entry struct {
	Identifier  string `json:"identifier"`
	DisplayName string `json:"displayName"`
	Active      bool   `json:"active"`
}

// Snapshot is an immutable copy of the state and the navigation derived from
// it, ready for rendering or encoding.
type Snapshot struct {
	Version     string  `json:"version"`
	Example     string  `json:"example"`
	DisplayName string  `json:"displayName"`
	Format      Format  `json:"format"`
	Copied      bool    `json:"copied"`
	FiltersOpen bool    `json:"filtersOpen"`
	Tabs        []Tab   `json:"tabs"`
	Examples    []Entry `json:"examples"`
	Text        string  `json:"-"`
	JSONText    string  `json:"-"`
	YAMLText    string  `json:"-"`
}

// TabName is the label shown on a version tab.
func TabName(version string) string {
	return "v" + version
}

// Tabs returns one tab per catalog version in declared order. These are the
// only version values the presentation layer offers back to SelectVersion.
func (s *State) Tabs() []Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tabsLocked()
}

func (s *State) tabsLocked() []Tab {
	labels := s.cat.Labels()
	tabs := make([]Tab, len(labels))
	for i, label := range labels {
		tabs[i] = Tab{Name: TabName(label), Version: label, Active: label == s.version}
	}
	return tabs
}

// Examples returns the selected version's examples in catalog order.
func (s *State) Examples() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.examplesLocked()
}

func (s *State) examplesLocked() []Entry {
	recs, _ := s.cat.Examples(s.version)
	entries := make([]Entry, len(recs))
	for i, r := range recs {
		entries[i] = Entry{
			Identifier:  r.Identifier,
			DisplayName: r.DisplayName,
			Active:      r.Identifier == s.example.Identifier,
		}
	}
	return entries
}

// Snapshot returns a consistent copy of the whole state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *State) snapshotLocked() Snapshot {
	return Snapshot{
		Version:     s.version,
		Example:     s.example.Identifier,
		DisplayName: s.example.DisplayName,
		Format:      s.format,
		Copied:      s.copied,
		FiltersOpen: s.filtersOpen,
		Tabs:        s.tabsLocked(),
		Examples:    s.examplesLocked(),
		Text:        s.currentTextLocked(),
		JSONText:    s.example.JSONText,
		YAMLText:    s.example.YAMLText,
	}
}
